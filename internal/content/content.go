// Package content holds the static portal pages and renders them for the
// terminal.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/content.yaml
var sampleContent []byte

// Link is a call to action that navigates to a page.
type Link struct {
	Page        string `yaml:"page"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Stats       string `yaml:"stats"`
}

// Stat is a headline number.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Home is the landing page.
type Home struct {
	Headline     string `yaml:"headline"`
	Intro        string `yaml:"intro"`
	Primary      []Link `yaml:"primary"`
	QuickActions []Link `yaml:"quick_actions"`
	InfoSections []Link `yaml:"info_sections"`
	Stats        []Stat `yaml:"stats"`
}

// Actions returns every navigable link on the home page in display order:
// primary buttons, quick actions, then info sections.
func (h Home) Actions() []Link {
	out := make([]Link, 0, len(h.Primary)+len(h.QuickActions)+len(h.InfoSections))
	out = append(out, h.Primary...)
	out = append(out, h.QuickActions...)
	return append(out, h.InfoSections...)
}

type Certification struct {
	Name         string   `yaml:"name"`
	Description  string   `yaml:"description"`
	Requirements []string `yaml:"requirements"`
}

type Guideline struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Priority    string `yaml:"priority"`
}

type Specialty struct {
	Name           string `yaml:"name"`
	Description    string `yaml:"description"`
	HealthBenefits string `yaml:"health_benefits"`
}

// Education is the food education page.
type Education struct {
	Title             string          `yaml:"title"`
	Intro             string          `yaml:"intro"`
	Certifications    []Certification `yaml:"certifications"`
	Guidelines        []Guideline     `yaml:"guidelines"`
	Specialties       []Specialty     `yaml:"specialties"`
	TrainingMaterials []string        `yaml:"training_materials"`
	Contacts          []string        `yaml:"contacts"`
}

type Principle struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Tips        []string `yaml:"tips"`
}

type DangerZone struct {
	Range       string `yaml:"range"`
	Description string `yaml:"description"`
	TimeLimit   string `yaml:"time_limit"`
}

type Temperature struct {
	Food     string `yaml:"food"`
	Temp     string `yaml:"temp"`
	Critical bool   `yaml:"critical"`
}

type Storage struct {
	Category string   `yaml:"category"`
	Temp     string   `yaml:"temp"`
	Duration string   `yaml:"duration"`
	Items    []string `yaml:"items"`
}

type Contact struct {
	Title string   `yaml:"title"`
	Lines []string `yaml:"lines"`
}

// Safety is the food safety page.
type Safety struct {
	Title        string        `yaml:"title"`
	Intro        string        `yaml:"intro"`
	Principles   []Principle   `yaml:"principles"`
	DangerZone   DangerZone    `yaml:"danger_zone"`
	Temperatures []Temperature `yaml:"temperatures"`
	Storage      []Storage     `yaml:"storage"`
	Emergency    []Contact     `yaml:"emergency"`
}

// Content is every static page.
type Content struct {
	Home      Home      `yaml:"home"`
	Education Education `yaml:"education"`
	Safety    Safety    `yaml:"safety"`
}

// Load decodes the embedded pages.
func Load() (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(sampleContent, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	return &c, nil
}
