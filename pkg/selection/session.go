// Package selection keeps the pick state of an interactive measuring session
// and the highlight it leaves on scene objects.
package selection

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"github.com/philipparndt/gosurf/pkg/mesh"
	"github.com/philipparndt/gosurf/pkg/surface"
)

// ErrNotReady is returned by Measurement until two surfaces are selected.
var ErrNotReady = errors.New("measurement needs two selected surfaces")

// Mode selects how picks accumulate.
type Mode int

const (
	// Inspect keeps a single selection; every pick replaces it.
	Inspect Mode = iota
	// Distance collects two picks and measures between them. A third pick
	// starts a new pair.
	Distance
)

func (m Mode) String() string {
	switch m {
	case Inspect:
		return "inspect"
	case Distance:
		return "distance"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// State is the number of active selections.
type State int

const (
	Empty State = iota
	One
	Two
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case One:
		return "one"
	case Two:
		return "two"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// DefaultHighlight is applied to picked objects unless WithHighlight says otherwise.
var DefaultHighlight = Appearance{
	Color:    color.RGBA{R: 255, G: 200, B: 0, A: 255},
	Opacity:  1,
	Emissive: color.RGBA{R: 90, G: 70, B: 0, A: 255},
}

// Selection is one analyzed pick.
type Selection struct {
	Object     ObjectID
	Mesh       *mesh.Mesh
	Pick       surface.Pick
	Descriptor surface.Descriptor
}

// Session is the pick state machine of one view. It is not safe for
// concurrent use.
type Session struct {
	analyzer  *surface.Analyzer
	registry  *Registry
	logger    *slog.Logger
	highlight Appearance
	mode      Mode

	lease      *Lease
	selections []Selection
	result     *surface.MeasurementResult
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithHighlight sets the appearance applied to picked objects.
func WithHighlight(a Appearance) SessionOption {
	return func(s *Session) { s.highlight = a }
}

// WithMode sets the initial mode.
func WithMode(m Mode) SessionOption {
	return func(s *Session) { s.mode = m }
}

// WithLogger sets the session logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = logger }
}

// NewSession creates an empty session in Inspect mode.
func NewSession(analyzer *surface.Analyzer, registry *Registry, opts ...SessionOption) *Session {
	s := &Session{
		analyzer:  analyzer,
		registry:  registry,
		logger:    slog.Default(),
		highlight: DefaultHighlight,
		mode:      Inspect,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Pick analyzes p on m and highlights object id. If anything fails the
// session is cleared before the error is returned.
func (s *Session) Pick(id ObjectID, m *mesh.Mesh, p surface.Pick) (err error) {
	defer func() {
		if err != nil {
			s.Clear()
		}
	}()

	if s.mode == Inspect || len(s.selections) == 2 {
		s.Clear()
	}
	if s.lease == nil {
		s.lease = s.registry.Acquire()
	}

	d, err := s.analyzer.Analyze(m, p)
	if err != nil {
		return fmt.Errorf("failed to analyze pick on %s: %w", id, err)
	}
	if err := s.lease.Highlight(id, s.highlight); err != nil {
		return err
	}

	s.selections = append(s.selections, Selection{Object: id, Mesh: m, Pick: p, Descriptor: d})
	if s.mode == Distance && len(s.selections) == 2 {
		r := surface.Distance(s.selections[0].Descriptor, s.selections[1].Descriptor)
		s.result = &r
		s.logger.Debug("measured", "perpendicular", r.Perpendicular, "direct", r.Direct)
	}
	s.logger.Debug("picked", "object", id, "kind", d.Kind, "state", s.State())
	return nil
}

// Clear restores every highlight and returns to Empty.
func (s *Session) Clear() {
	if s.lease != nil {
		s.lease.Release()
		s.lease = nil
	}
	s.selections = nil
	s.result = nil
}

// SetMode clears the session and switches to m.
func (s *Session) SetMode(m Mode) {
	s.Clear()
	s.mode = m
}

// Mode returns the current mode.
func (s *Session) Mode() Mode { return s.mode }

// State returns how many surfaces are selected.
func (s *Session) State() State { return State(len(s.selections)) }

// Selections returns a copy of the active selections, oldest first.
func (s *Session) Selections() []Selection {
	return append([]Selection(nil), s.selections...)
}

// Measurement returns the result of the current pair.
func (s *Session) Measurement() (surface.MeasurementResult, error) {
	if s.result == nil {
		return surface.MeasurementResult{}, ErrNotReady
	}
	return *s.result, nil
}
