// Package x_play drives one visualization: it builds the tree, draws it and
// animates the traversal frame by frame.
package x_play

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/nats-io/nuid"
	"github.com/rskv-p/bintree/config"
	"github.com/rskv-p/bintree/constant"
	"github.com/rskv-p/bintree/pkg/x_log"
	"github.com/rskv-p/bintree/pkg/x_prompt"
	"github.com/rskv-p/bintree/pkg/x_render"
	"github.com/rskv-p/bintree/pkg/x_tree"
)

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Session owns a single tree for its whole lifetime.
type Session struct {
	ID string

	cfg    *config.Config
	out    io.Writer
	render *x_render.Renderer
	prompt *x_prompt.Prompter
	src    x_tree.Source
	log    x_log.Logger
	sleep  SleepFunc
	wait   bool
	ctx    context.Context

	tree *x_tree.Tree
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets where frames are written, stdout by default.
func WithOutput(w io.Writer) Option {
	return func(s *Session) { s.out = w }
}

// WithRenderer replaces the renderer built from the config.
func WithRenderer(r *x_render.Renderer) Option {
	return func(s *Session) { s.render = r }
}

// WithPrompter enables asking for missing values and waiting for Enter.
func WithPrompter(p *x_prompt.Prompter) Option {
	return func(s *Session) { s.prompt = p }
}

// WithSource replaces the seeded random source.
func WithSource(src x_tree.Source) Option {
	return func(s *Session) { s.src = src }
}

// WithSleep replaces the frame delay implementation.
func WithSleep(fn SleepFunc) Option {
	return func(s *Session) { s.sleep = fn }
}

// WithWait controls whether Run waits for Enter before animating.
func WithWait(on bool) Option {
	return func(s *Session) { s.wait = on }
}

// WithContext takes the scoped logger stored in ctx by x_log.WithLogger.
func WithContext(ctx context.Context) Option {
	return func(s *Session) { s.ctx = ctx }
}

// New returns a Session for cfg.
func New(cfg *config.Config, opts ...Option) *Session {
	s := &Session{
		ID:    nuid.Next(),
		cfg:   cfg,
		out:   os.Stdout,
		sleep: sleepCtx,
		wait:  true,
		ctx:   context.Background(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.render == nil {
		ropts := []x_render.Option{x_render.WithTheme(cfg.Theme)}
		if cfg.NoColor {
			ropts = append(ropts, x_render.WithColor(false))
		}
		s.render = x_render.New(s.out, ropts...)
	}
	if s.src == nil {
		s.src = x_tree.NewSource(cfg.Seed)
	}
	s.log = x_log.Sugar(x_log.From(s.ctx).With().Str("session", s.ID).Logger())
	return s
}

// Tree returns the built tree, nil before Build.
func (s *Session) Tree() *x_tree.Tree { return s.tree }

//---------------------
// Build
//---------------------

// Build asks for any missing setting and builds the tree.
func (s *Session) Build() (*x_tree.Tree, error) {
	if s.tree != nil {
		return s.tree, nil
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}

	t, err := x_tree.New(s.cfg.Level, s.cfg.Nodes, s.cfg.Traversal,
		x_tree.WithSource(s.src),
		x_tree.WithValueRange(s.cfg.ValueMin, s.cfg.ValueMax),
	)
	if err != nil {
		return nil, err
	}
	if err := t.Build(); err != nil {
		s.log.Errorw("build failed", "err", err)
		return nil, fmt.Errorf("build tree: %w", err)
	}

	s.log.Infow("tree built",
		"max_level", t.MaxLevel, "nodes", t.NodeCount, "traversal", t.Kind.String(), "depth", t.Depth())
	var shape strings.Builder
	t.Dump(&shape)
	s.log.Debugw("tree shape", "config", s.cfg.String(), "tree", shape.String())

	s.tree = t
	return t, nil
}

// Dump writes the resolved config and an indented dump of the tree to w.
func (s *Session) Dump(w io.Writer) error {
	t, err := s.Build()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	s.cfg.Dump(w)
	fmt.Fprintln(w)
	t.Dump(w)
	return nil
}

// resolve fills level, nodes and traversal from the prompter when unset.
func (s *Session) resolve() error {
	if s.cfg.Complete() {
		return x_tree.Validate(s.cfg.Level, s.cfg.Nodes)
	}
	if s.prompt == nil {
		return fmt.Errorf("%w: level, nodes and traversal are required", constant.ErrNoTerminal)
	}

	var err error
	if s.cfg.Level == 0 {
		if s.cfg.Level, err = s.prompt.AskLevel(); err != nil {
			return err
		}
	}
	if s.cfg.Nodes == 0 {
		if s.cfg.Nodes, err = s.prompt.AskNodes(s.cfg.Level); err != nil {
			return err
		}
	}
	if s.cfg.Traversal == "" {
		if s.cfg.Traversal, err = s.prompt.AskTraversal(); err != nil {
			return err
		}
	}
	return x_tree.Validate(s.cfg.Level, s.cfg.Nodes)
}

//---------------------
// Run
//---------------------

// Run draws the tree and animates its traversal, one highlighted node per
// frame. Cancelling ctx stops between frames.
func (s *Session) Run(ctx context.Context) error {
	t, err := s.Build()
	if err != nil {
		return err
	}
	seq, err := t.Traverse()
	if err != nil {
		return err
	}

	// the shape never changes, only the highlight does
	layout := t.Layout()
	if err := s.render.Draw(layout, x_render.None); err != nil {
		return err
	}
	if s.wait && s.prompt != nil {
		if err := s.prompt.WaitEnter(constant.StartPrompt); err != nil {
			return err
		}
	}

	kind := t.Kind.String()
	visited := make([]int, 0, t.NodeCount)
	for v := range seq {
		if err := ctx.Err(); err != nil {
			s.log.Warnw("traversal interrupted", "visited", len(visited))
			return err
		}
		visited = append(visited, v)

		if err := s.frame(layout, kind, v, visited); err != nil {
			return err
		}
		s.log.Debugw("frame", "value", v, "step", len(visited))

		if err := s.sleep(ctx, s.cfg.Delay); err != nil {
			return err
		}
	}

	s.log.Infow("traversal done", "traversal", kind, "visited", len(visited))
	return nil
}

func (s *Session) frame(layout x_tree.Layout, kind string, v int, visited []int) error {
	if err := s.render.Clear(); err != nil {
		return err
	}
	if err := s.render.Draw(layout, x_render.Mark(v)); err != nil {
		return err
	}
	return s.render.Output(kind, visited)
}

//---------------------
// Show
//---------------------

// Show draws the tree once followed by all three traversal orders.
func (s *Session) Show() error {
	t, err := s.Build()
	if err != nil {
		return err
	}
	if err := s.render.Draw(t.Layout(), x_render.None); err != nil {
		return err
	}
	fmt.Fprintln(s.out)
	for _, k := range x_tree.Traversals() {
		vals, err := t.Values(k)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%-10s %v\n", k.String()+":", vals)
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
