// Package markdown converts between markdown with placeholders and the HTML
// a rich-text editor works with.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/yaklabco/varedit/pkg/decoration"
	"github.com/yaklabco/varedit/pkg/placeholder"
)

// Supported markdown flavors.
const (
	FlavorCommonMark = "commonmark"
	FlavorGFM        = "gfm"
)

// Option configures a Converter.
type Option func(*Converter)

// WithFlavor selects the markdown flavor. Unknown flavors fall back to CommonMark.
func WithFlavor(flavor string) Option {
	return func(c *Converter) {
		c.flavor = flavorOrDefault(flavor)
	}
}

// WithDelimiters sets the placeholder delimiters.
func WithDelimiters(d placeholder.Delimiters) Option {
	return func(c *Converter) {
		c.delims = d
	}
}

// WithClassName sets the CSS class of rendered placeholder spans.
func WithClassName(name string) Option {
	return func(c *Converter) {
		if name != "" {
			c.class = name
		}
	}
}

// WithHardWraps controls whether single newlines render as line breaks.
func WithHardWraps(enabled bool) Option {
	return func(c *Converter) {
		c.hardWraps = enabled
	}
}

// Converter renders markdown to HTML and back.
type Converter struct {
	flavor    string
	delims    placeholder.Delimiters
	class     string
	hardWraps bool

	md goldmark.Markdown
}

// New returns a Converter. It fails when the delimiters are invalid.
func New(opts ...Option) (*Converter, error) {
	c := &Converter{
		flavor:    FlavorCommonMark,
		delims:    placeholder.DefaultDelimiters(),
		class:     decoration.DefaultFormat,
		hardWraps: true,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := c.delims.Validate(); err != nil {
		return nil, err
	}

	c.md = c.newGoldmark()
	return c, nil
}

// Flavor returns the configured markdown flavor.
func (c *Converter) Flavor() string {
	return c.flavor
}

// ToHTML renders md. Placeholders become spans carrying their name.
func (c *Converter) ToHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := c.md.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

//nolint:ireturn // goldmark.Markdown is an external interface type
func (c *Converter) newGoldmark() goldmark.Markdown {
	extensions := []goldmark.Extender{
		&placeholderExtension{delims: c.delims, class: c.class},
	}
	if c.flavor == FlavorGFM {
		extensions = append(extensions, extension.GFM)
	}

	var rendererOpts []renderer.Option
	if c.hardWraps {
		rendererOpts = append(rendererOpts, html.WithHardWraps())
	}

	return goldmark.New(
		goldmark.WithExtensions(extensions...),
		goldmark.WithRendererOptions(rendererOpts...),
	)
}

func flavorOrDefault(flavor string) string {
	switch flavor {
	case FlavorCommonMark, FlavorGFM:
		return flavor
	default:
		return FlavorCommonMark
	}
}
