package editor

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/yaklabco/varedit/pkg/caret"
	"github.com/yaklabco/varedit/pkg/commit"
	"github.com/yaklabco/varedit/pkg/decoration"
	"github.com/yaklabco/varedit/pkg/placeholder"
	"github.com/yaklabco/varedit/pkg/suggest"
)

// Option configures a Session.
type Option func(*Session)

// WithDelimiters sets the placeholder delimiters. Invalid delimiters make
// NewSession fail.
func WithDelimiters(d placeholder.Delimiters) Option {
	return func(s *Session) {
		s.delims = d
	}
}

// WithCatalog sets the suggestion catalog.
func WithCatalog(items []suggest.Item) Option {
	return func(s *Session) {
		s.catalog = items
	}
}

// WithMatcher sets the strategy used to filter the catalog.
func WithMatcher(m suggest.Matcher) Option {
	return func(s *Session) {
		if m != nil {
			s.matcher = m
		}
	}
}

// WithFormatName sets the inline format used to highlight placeholders.
func WithFormatName(name string) Option {
	return func(s *Session) {
		if name != "" {
			s.format = name
		}
	}
}

// WithIndexPolicy sets how the highlighted suggestion reacts to query changes.
func WithIndexPolicy(p suggest.IndexPolicy) Option {
	return func(s *Session) {
		s.policy = p
	}
}

// WithLogger sets the logger. Sessions log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithDropdown sets the dropdown size limits.
func WithDropdown(l Limits) Option {
	return func(s *Session) {
		s.limits = l
	}
}

// View is a snapshot of the dropdown.
type View struct {
	Open     bool
	Items    []suggest.Item
	Selected int
	Context  caret.Context
	Position Point
	Size     Size
}

// Session keeps an Adapter's placeholder highlighting and suggestion
// dropdown in step with its text. It is not safe for concurrent use.
type Session struct {
	adapter Adapter
	delims  placeholder.Delimiters
	catalog []suggest.Item
	matcher suggest.Matcher
	format  string
	policy  suggest.IndexPolicy
	limits  Limits
	logger  *log.Logger

	selection *suggest.Selection
	ctx       caret.Context
	open      bool
	dismissed bool
	applying  bool

	unsubscribe func()
}

// NewSession attaches a session to adapter, highlights the placeholders
// already present and resolves the current caret.
func NewSession(adapter Adapter, opts ...Option) (*Session, error) {
	s := &Session{
		adapter: adapter,
		delims:  placeholder.DefaultDelimiters(),
		matcher: suggest.SubstringMatcher{},
		format:  decoration.DefaultFormat,
		policy:  suggest.ResetAlways,
		limits:  DefaultLimits(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.delims.Validate(); err != nil {
		return nil, err
	}
	if !s.policy.IsValid() {
		return nil, fmt.Errorf("%w: unknown index policy %q", placeholder.ErrInvalidConfiguration, s.policy)
	}

	s.selection = suggest.NewSelection(s.policy)
	s.unsubscribe = adapter.OnChange(s.handleChange)
	s.Refresh()

	return s, nil
}

// Close detaches the session from its adapter.
func (s *Session) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

// SetDelimiters switches to new delimiters and re-highlights the text.
func (s *Session) SetDelimiters(open, closing string) error {
	d := placeholder.Delimiters{Open: open, Close: closing}
	if err := d.Validate(); err != nil {
		return err
	}
	s.delims = d
	s.Refresh()
	return nil
}

// SetCatalog replaces the suggestion catalog.
func (s *Session) SetCatalog(items []suggest.Item) {
	s.catalog = items
	s.open = false
	s.refresh()
}

// Delimiters returns the delimiters in use.
func (s *Session) Delimiters() placeholder.Delimiters {
	return s.delims
}

// Value returns the adapter's current plain text.
func (s *Session) Value() string {
	return s.adapter.Text()
}

// Context returns the caret context from the most recent change.
func (s *Session) Context() caret.Context {
	return s.ctx
}

// Refresh re-highlights the text and re-resolves the caret.
func (s *Session) Refresh() {
	s.redecorate()
	s.refresh()
}

// Visible reports whether the dropdown is showing.
func (s *Session) Visible() bool {
	return s.open && !s.selection.Empty()
}

// Dropdown returns the dropdown state placed within viewport.
func (s *Session) Dropdown(viewport Size) View {
	view := View{
		Open:    s.Visible(),
		Context: s.ctx,
	}
	if !view.Open {
		return view
	}

	view.Items = s.selection.Items
	view.Selected = s.selection.Index

	labels := make([]string, len(view.Items))
	for i, item := range view.Items {
		labels[i] = item.DisplayLabel()
	}
	view.Size = s.limits.Measure(labels)
	view.Position = PlaceDropdown(s.adapter.BoundingBox(s.ctx.Caret), viewport, view.Size, s.limits.Margin)

	return view
}

// HandleKey reacts to a navigation key and reports whether it was consumed.
// Keys pass through while the dropdown is hidden.
func (s *Session) HandleKey(k Key) bool {
	if !s.Visible() {
		return false
	}

	switch k {
	case KeyDown:
		s.selection.Down()
	case KeyUp:
		s.selection.Up()
	case KeyEnter, KeyTab:
		item, ok := s.selection.Selected()
		if !ok {
			return false
		}
		if err := s.Accept(item); err != nil {
			s.logger.Warn("commit failed", "value", item.Value, "error", err)
		}
	case KeyEscape:
		s.dismissed = true
		s.open = false
	default:
		return false
	}

	return true
}

// Accept commits item at the current caret. When the text no longer has an
// open placeholder at the recorded query start the commit is dropped and
// Accept returns nil.
func (s *Session) Accept(item suggest.Item) error {
	text := s.adapter.Text()
	ctx := caret.Resolve(text, s.adapter.Caret(), s.delims)

	if !ctx.Active() || !s.ctx.Active() || ctx.QueryStart != s.ctx.QueryStart {
		s.logger.Debug("dropping stale commit",
			"value", item.Value, "query_start", s.ctx.QueryStart, "state", ctx.State)
		s.open = false
		return nil
	}

	res, err := commit.FromContext(text, ctx, item, s.delims)
	if errors.Is(err, commit.ErrStaleCommit) {
		s.logger.Debug("dropping stale commit", "value", item.Value, "error", err)
		s.open = false
		return nil
	}
	if err != nil {
		return fmt.Errorf("commit %q: %w", item.Value, err)
	}

	s.apply(func() {
		s.adapter.ReplaceRange(res.Edit.StartOffset, res.Edit.EndOffset, res.Edit.NewText)
		s.adapter.SetCaret(res.NewCaret, 0)
	})
	s.logger.Debug("committed suggestion",
		"value", item.Value, "caret", res.NewCaret, "closed_inserted", res.ClosedInserted)

	s.redecorate()
	s.open = false
	s.dismissed = true
	s.ctx = caret.Resolve(s.adapter.Text(), s.adapter.Caret(), s.delims)

	return nil
}

func (s *Session) handleChange(reason ChangeReason) {
	if s.applying {
		return
	}
	if reason == ReasonText {
		s.dismissed = false
		s.redecorate()
	}
	s.refresh()
}

// apply runs fn with change notifications suppressed.
func (s *Session) apply(fn func()) {
	prev := s.applying
	s.applying = true
	defer func() { s.applying = prev }()
	fn()
}

func (s *Session) redecorate() {
	spans := placeholder.Scan(s.adapter.Text(), s.delims)
	plan := decoration.Sync(spans, s.adapter.InlineFormats(s.format))
	if plan.Empty() {
		return
	}

	s.apply(func() {
		for _, op := range plan.Ops() {
			switch op.Kind {
			case decoration.OpRemove:
				s.adapter.RemoveInlineFormat(op.Range.Start, op.Range.End, s.format)
			case decoration.OpAdd:
				s.adapter.AddInlineFormat(op.Range.Start, op.Range.End, s.format)
			}
		}
	})
	s.logger.Debug("synced highlights", "added", len(plan.ToAdd), "removed", len(plan.ToRemove))
}

func (s *Session) refresh() {
	ctx := caret.Resolve(s.adapter.Text(), s.adapter.Caret(), s.delims)
	if ctx.QueryStart != s.ctx.QueryStart {
		s.dismissed = false
	}

	if !ctx.Active() || s.dismissed {
		s.ctx = ctx
		s.open = false
		return
	}

	if !s.open || ctx.Query != s.ctx.Query || ctx.QueryStart != s.ctx.QueryStart {
		s.selection.Update(s.matcher.Match(s.catalog, ctx.Query), ctx.Query)
	}
	s.ctx = ctx
	s.open = true
}
