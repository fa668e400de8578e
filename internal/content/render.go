package content

import (
	"fmt"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/patrickmn/go-cache"
)

// Styles accepted by Render. "notty" produces plain text.
const (
	StyleDark  = "dark"
	StyleLight = "light"
	StyleNoTTY = "notty"
)

const minWrap = 20

// Renderer turns static pages into terminal output. Rendered pages are
// cached per page, width and style since glamour is slow relative to a
// frame.
type Renderer struct {
	content *Content
	cache   *cache.Cache
}

// NewRenderer returns a renderer over c.
func NewRenderer(c *Content) *Renderer {
	return &Renderer{
		content: c,
		cache:   cache.New(30*time.Minute, 10*time.Minute),
	}
}

// Content returns the pages this renderer draws.
func (r *Renderer) Content() *Content { return r.content }

// Render returns page p word-wrapped to width.
func (r *Renderer) Render(p Page, width int, style string) (string, error) {
	if width < minWrap {
		width = minWrap
	}
	if style == "" {
		style = StyleDark
	}
	key := fmt.Sprintf("%s/%d/%s", p, width, style)
	if out, ok := r.cache.Get(key); ok {
		return out.(string), nil
	}

	md, ok := r.content.Markdown(p)
	if !ok {
		return "", fmt.Errorf("render %s: not a static page", p)
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStylePath(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", p, err)
	}
	out, err := tr.Render(md)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", p, err)
	}
	r.cache.SetDefault(key, out)
	return out, nil
}

// Cached reports how many rendered pages are held.
func (r *Renderer) Cached() int { return r.cache.ItemCount() }

// Flush drops every cached page. The UI calls it on theme changes.
func (r *Renderer) Flush() { r.cache.Flush() }
