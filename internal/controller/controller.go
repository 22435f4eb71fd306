// internal/controller/controller.go
//
// Interaction state machine for one visualizer session.
// Responsibilities:
//   - Own the session state: board length, generator text and parsed set,
//     the displayed position, the undo history.
//   - Turn intents into state changes and, where needed, a lookup command.
//   - Apply lookup results: success replaces the position wholesale, failure
//     keeps it and records the error.
//
// States:
//   Idle    → nothing loaded yet
//   Loading → at least one lookup in flight
//   Loaded  → last resolution succeeded
//   Error   → last resolution failed (previous position, if any, retained)
//
// Notes:
//   - The pre-fetch generator set is recorded in history before the lookup
//     is dispatched, so a failed lookup still leaves an undo trail.
//   - Invalid input or length blocks the lookup; the fields are flagged.
//   - Overlapping lookups are not cancelled. Whichever resolves last wins,
//     even if it was initiated first.
//   - Update is not safe for concurrent use. The TUI runtime serialises
//     messages; the web front end holds a per-session lock.

package controller

import (
	"context"
	"errors"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/sylver/apps/go-viz/internal/generators"
	"github.com/robalobadob/sylver/apps/go-viz/internal/history"
	"github.com/robalobadob/sylver/apps/go-viz/internal/metrics"
	"github.com/robalobadob/sylver/apps/go-viz/internal/position"
	"github.com/robalobadob/sylver/apps/go-viz/internal/sylverapi"
)

const (
	MinLength     = 100
	DefaultLength = 100
	DefaultInput  = "9,11"
)

var errEmptyResult = errors.New("lookup returned no position")

// State is the controller's coarse lifecycle state.
type State int

const (
	Idle State = iota
	Loading
	Loaded
	Error
)

func (s State) String() string {
	switch s {
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Error:
		return "error"
	default:
		return "idle"
	}
}

// Fetcher performs position lookups. *sylverapi.Client satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, req sylverapi.Request) (*position.Position, error)
}

// Controller is the session state machine.
type Controller struct {
	fetcher  Fetcher
	ctx      context.Context
	children bool

	length    int
	inputText string
	input     generators.Set
	position  *position.Position
	history   *history.Stack
	state     State
	lastErr   error
	blocked   error
	seq       uint64
	inFlight  int
}

// Option configures a Controller.
type Option func(*Controller)

// WithLength sets the initial board length.
func WithLength(n int) Option { return func(c *Controller) { c.length = n } }

// WithInput sets the initial generator text.
func WithInput(text string) Option {
	return func(c *Controller) {
		c.inputText = text
		c.input = generators.Parse(text)
	}
}

// WithHistory seeds the undo log, oldest first.
func WithHistory(entries ...string) Option {
	return func(c *Controller) { c.history = history.New(entries...) }
}

// WithChildren controls whether lookups ask for child statuses (default true).
func WithChildren(on bool) Option { return func(c *Controller) { c.children = on } }

// WithContext sets the context lookups run under.
func WithContext(ctx context.Context) Option { return func(c *Controller) { c.ctx = ctx } }

// New builds a controller in the Idle state.
func New(f Fetcher, opts ...Option) *Controller {
	c := &Controller{
		fetcher:   f,
		ctx:       context.Background(),
		children:  true,
		length:    DefaultLength,
		inputText: DefaultInput,
		input:     generators.Parse(DefaultInput),
		history:   history.New(),
		state:     Idle,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Update applies msg and returns the lookup command to run, if any.
// Unknown messages are ignored.
func (c *Controller) Update(msg tea.Msg) tea.Cmd {
	switch m := msg.(type) {
	case InputChanged:
		metrics.Intent("input")
		c.inputText = m.Text
		c.input = generators.Parse(m.Text)
		c.blocked = nil
		return nil

	case LengthChanged:
		metrics.Intent("length")
		c.length = m.Value
		c.blocked = nil
		return nil

	case SubmitInput:
		metrics.Intent("submit")
		return c.submit()

	case CellClicked:
		metrics.Intent("click")
		return c.click(m.Index)

	case Undo:
		metrics.Intent("undo")
		return c.undo()

	case FetchResolved:
		c.resolve(m)
		return nil
	}
	return nil
}

func (c *Controller) submit() tea.Cmd {
	if err := c.input.Validate(); err != nil {
		c.blocked = err
		metrics.SubmitBlocked("input")
		log.Info().Str("input", c.inputText).Err(err).Msg("lookup blocked")
		return nil
	}
	if c.length < MinLength {
		c.blocked = &LengthError{Value: c.length}
		metrics.SubmitBlocked("length")
		log.Info().Int("length", c.length).Msg("lookup blocked")
		return nil
	}
	c.blocked = nil

	key := c.input.String()
	c.history.Record(key)
	c.seq++
	c.inFlight++
	c.state = Loading

	req := sylverapi.Request{Length: c.length, Input: c.input, Children: c.children}
	seq, f, ctx := c.seq, c.fetcher, c.ctx
	log.Debug().Uint64("seq", seq).Str("input", key).Int("length", c.length).Msg("lookup dispatched")

	return func() tea.Msg {
		pos, err := f.Fetch(ctx, req)
		return FetchResolved{Seq: seq, Input: key, Position: pos, Err: err}
	}
}

func (c *Controller) click(i int) tea.Cmd {
	// Number 0 is never a legal move.
	if c.position == nil || i < 1 || !c.position.Open(i) {
		return nil
	}
	c.inputText = c.inputText + "," + strconv.Itoa(i)
	c.input = c.input.Append(i)
	return c.submit()
}

func (c *Controller) undo() tea.Cmd {
	prev, ok := c.history.Undo()
	if !ok {
		return nil
	}
	c.inputText = prev
	c.input = generators.Parse(prev)
	return c.submit()
}

func (c *Controller) resolve(m FetchResolved) {
	if c.inFlight > 0 {
		c.inFlight--
	}
	if m.Seq < c.seq {
		log.Debug().Uint64("seq", m.Seq).Uint64("latest", c.seq).Msg("applying out-of-order lookup result")
	}

	err := m.Err
	if err == nil && m.Position == nil {
		err = errEmptyResult
	}
	if err != nil {
		c.lastErr = err
		c.state = Error
		log.Warn().Err(err).Str("input", m.Input).Msg("lookup failed; keeping current position")
	} else {
		c.position = m.Position
		c.lastErr = nil
		c.state = Loaded
	}
	if c.inFlight > 0 {
		c.state = Loading
	}
}

// Snapshot returns a copy of the state for rendering.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		State:       c.state,
		Length:      c.length,
		LengthValid: c.length >= MinLength,
		InputText:   c.inputText,
		Input:       append(generators.Set(nil), c.input...),
		InputValid:  c.input.Valid(),
		Position:    c.position,
		History:     c.history.Entries(),
		Err:         c.lastErr,
		Blocked:     c.blocked,
		InFlight:    c.inFlight,
		Seq:         c.seq,
	}
}
