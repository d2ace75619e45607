package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/varedit/pkg/markdown"
	"github.com/yaklabco/varedit/pkg/placeholder"
)

func newConverter(t *testing.T, opts ...markdown.Option) *markdown.Converter {
	t.Helper()

	c, err := markdown.New(opts...)
	require.NoError(t, err)
	return c
}

func TestNew_InvalidDelimiters(t *testing.T) {
	t.Parallel()

	_, err := markdown.New(markdown.WithDelimiters(placeholder.Delimiters{Open: "{{"}))
	require.ErrorIs(t, err, placeholder.ErrInvalidConfiguration)
}

func TestNew_FlavorFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, markdown.FlavorCommonMark, newConverter(t, markdown.WithFlavor("wiki")).Flavor())
	assert.Equal(t, markdown.FlavorGFM, newConverter(t, markdown.WithFlavor("gfm")).Flavor())
}

func TestToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []markdown.Option
		md   string
		want string
	}{
		{
			name: "placeholder span",
			md:   "Hi {{first_name}}, welcome",
			want: `<p>Hi <span class="template-variable" data-template="first_name">{{first_name}}</span>, welcome</p>` + "\n",
		},
		{
			name: "underscores stay inside placeholders",
			md:   "{{a_b}} and {{c_d}}",
			want: `<p><span class="template-variable" data-template="a_b">{{a_b}}</span> and ` +
				`<span class="template-variable" data-template="c_d">{{c_d}}</span></p>` + "\n",
		},
		{
			name: "unterminated placeholder is text",
			md:   "{{abc",
			want: "<p>{{abc</p>\n",
		},
		{
			name: "code span is not a placeholder",
			md:   "`{{x}}`",
			want: "<p><code>{{x}}</code></p>\n",
		},
		{
			name: "placeholder name is escaped",
			md:   "{{<b>}}",
			want: `<p><span class="template-variable" data-template="&lt;b&gt;">{{&lt;b&gt;}}</span></p>` + "\n",
		},
		{
			name: "single newline is a line break",
			md:   "one\ntwo",
			want: "<p>one<br>\ntwo</p>\n",
		},
		{
			name: "hard wraps disabled",
			opts: []markdown.Option{markdown.WithHardWraps(false)},
			md:   "one\ntwo",
			want: "<p>one\ntwo</p>\n",
		},
		{
			name: "gfm strikethrough",
			opts: []markdown.Option{markdown.WithFlavor(markdown.FlavorGFM)},
			md:   "~~gone~~",
			want: "<p><del>gone</del></p>\n",
		},
		{
			name: "commonmark leaves tildes",
			md:   "~~gone~~",
			want: "<p>~~gone~~</p>\n",
		},
		{
			name: "custom delimiters and class",
			opts: []markdown.Option{
				markdown.WithDelimiters(placeholder.Delimiters{Open: "<%", Close: "%>"}),
				markdown.WithClassName("var"),
			},
			md:   "Hi <%name%>",
			want: `<p>Hi <span class="var" data-template="name">&lt;%name%&gt;</span></p>` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := newConverter(t, tt.opts...).ToHTML(tt.md)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFromHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "paragraphs and emphasis",
			html: "<p>Hello <strong>bold</strong> and <em>it</em></p><p>Second<br>line</p>",
			want: "Hello **bold** and *it*\n\nSecond\nline",
		},
		{
			name: "placeholder span",
			html: `<p>Dear <span class="template-variable" data-template="first_name">{{first_name}}</span>,</p>`,
			want: "Dear {{first_name}},",
		},
		{
			name: "placeholder span without name keeps text",
			html: `<p><span class="template-variable">{{x}}</span></p>`,
			want: "{{x}}",
		},
		{
			name: "bullet list",
			html: "<ul>\n<li>one</li>\n<li>two</li>\n</ul>",
			want: "- one\n- two",
		},
		{
			name: "ordered list",
			html: "<ol><li>a</li><li>b</li></ol>",
			want: "1. a\n2. b",
		},
		{
			name: "nested list",
			html: "<ul><li>a<ul><li>b</li></ul></li></ul>",
			want: "- a\n  - b",
		},
		{
			name: "heading",
			html: "<h2>Title</h2><p>body</p>",
			want: "## Title\n\nbody",
		},
		{
			name: "horizontal rule",
			html: "<p>a</p><hr><p>b</p>",
			want: "a\n\n---\n\nb",
		},
		{
			name: "fenced code with language",
			html: "<pre><code class=\"language-go\">x := 1\n</code></pre>",
			want: "```go\nx := 1\n```",
		},
		{
			name: "fenced code with detected language",
			html: "<pre><code>package main\n</code></pre>",
			want: "```go\npackage main\n```",
		},
		{
			name: "blockquote",
			html: "<blockquote><p>quoted</p><p>twice</p></blockquote>",
			want: "> quoted\n>\n> twice",
		},
		{
			name: "link",
			html: `<p>See <a href="https://example.com">the site</a>.</p>`,
			want: "See [the site](https://example.com).",
		},
		{
			name: "inline code",
			html: "<p>run <code>make</code></p>",
			want: "run `make`",
		},
		{
			name: "script is dropped",
			html: "<p>a</p><script>alert(1)</script>",
			want: "a",
		},
	}

	c := newConverter(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.FromHTML(tt.html)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip_KeepsPlaceholders(t *testing.T) {
	t.Parallel()

	c := newConverter(t)
	md := "Dear {{first_name}},\nThanks for **ordering** {{product}}."

	out, err := c.ToHTML(md)
	require.NoError(t, err)

	back, err := c.FromHTML(out)
	require.NoError(t, err)

	assert.Equal(t, md, back)
	assert.Equal(t, placeholder.Names(md, placeholder.DefaultDelimiters()),
		placeholder.Names(back, placeholder.DefaultDelimiters()))
}
