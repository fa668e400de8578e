package content

import (
	"fmt"
	"strings"
)

// Page names a static page that can be rendered as Markdown.
type Page string

const (
	PageHome      Page = "home"
	PageEducation Page = "education"
	PageSafety    Page = "safety"
)

// Markdown composes the named page. The second result is false for pages
// that are not static.
func (c *Content) Markdown(p Page) (string, bool) {
	switch p {
	case PageHome:
		return c.homeMarkdown(), true
	case PageEducation:
		return c.educationMarkdown(), true
	case PageSafety:
		return c.safetyMarkdown(), true
	default:
		return "", false
	}
}

func (c *Content) homeMarkdown() string {
	h := c.Home
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n", h.Headline, h.Intro)

	n := 1
	b.WriteString("## Get Started\n\n")
	for _, l := range h.Primary {
		fmt.Fprintf(&b, "%d. **%s**\n", n, l.Title)
		n++
	}
	b.WriteString("\n## Quick Actions\n\n")
	for _, l := range h.QuickActions {
		fmt.Fprintf(&b, "%d. **%s**: %s\n", n, l.Title, l.Description)
		n++
	}
	b.WriteString("\n## Information Resources\n\n")
	for _, l := range h.InfoSections {
		fmt.Fprintf(&b, "%d. **%s** (%s): %s\n", n, l.Title, l.Stats, l.Description)
		n++
	}
	b.WriteString("\n## Platform Statistics\n\n| Statistic | Value |\n|---|---:|\n")
	for _, s := range h.Stats {
		fmt.Fprintf(&b, "| %s | %s |\n", s.Label, s.Value)
	}
	return b.String()
}

func (c *Content) educationMarkdown() string {
	e := c.Education
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n## Food Certifications\n\n", e.Title, e.Intro)
	for _, cert := range e.Certifications {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n**Requirements:**\n\n", cert.Name, cert.Description)
		bullets(&b, cert.Requirements)
	}

	b.WriteString("## Food Safety Guidelines\n\n")
	for _, g := range e.Guidelines {
		marker := "Recommended"
		if g.Priority == "high" {
			marker = "Critical"
		}
		fmt.Fprintf(&b, "- **%s** _(%s)_: %s\n", g.Title, marker, g.Description)
	}

	b.WriteString("\n## Local Food Culture & Nutrition\n\n")
	for _, s := range e.Specialties {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n> Health benefits: %s\n\n", s.Name, s.Description, s.HealthBenefits)
	}

	b.WriteString("## Additional Resources\n\n### Training Materials\n\n")
	bullets(&b, e.TrainingMaterials)
	b.WriteString("### Contact Information\n\n")
	bullets(&b, e.Contacts)
	return b.String()
}

func (c *Content) safetyMarkdown() string {
	s := c.Safety
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n\n## Four Basic Food Safety Principles\n\n", s.Title, s.Intro)
	for _, p := range s.Principles {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", p.Title, p.Description)
		bullets(&b, p.Tips)
	}

	fmt.Fprintf(&b, "## Temperature Danger Zone\n\n> **Danger Zone: %s**\n>\n> %s\n>\n> Time limit: %s\n\n",
		s.DangerZone.Range, s.DangerZone.Description, s.DangerZone.TimeLimit)

	b.WriteString("## Safe Cooking Temperatures\n\n| Food | Minimum internal temperature |\n|---|---|\n")
	for _, t := range s.Temperatures {
		temp := t.Temp
		if t.Critical {
			temp = "**" + temp + "**"
		}
		fmt.Fprintf(&b, "| %s | %s |\n", t.Food, temp)
	}
	b.WriteString("\nAlways use a food thermometer to verify internal temperatures.\n\n")

	b.WriteString("## Food Storage Guidelines\n\n")
	for _, st := range s.Storage {
		fmt.Fprintf(&b, "### %s\n\nTemperature: %s  \nDuration: %s\n\n**Common Items:**\n\n", st.Category, st.Temp, st.Duration)
		bullets(&b, st.Items)
	}

	b.WriteString("## Emergency Contacts\n\n")
	for _, ct := range s.Emergency {
		fmt.Fprintf(&b, "### %s\n\n", ct.Title)
		bullets(&b, ct.Lines)
	}
	return b.String()
}

func bullets(b *strings.Builder, items []string) {
	for _, it := range items {
		fmt.Fprintf(b, "- %s\n", it)
	}
	b.WriteString("\n")
}
