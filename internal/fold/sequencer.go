package fold

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Phase is the sequencer's position in a run.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseBuilding
	PhaseAnimating
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhaseAnimating:
		return "animating"
	case PhaseSettling:
		return "settling"
	default:
		return "idle"
	}
}

// State is the persistent fold state of one cell.
type State struct {
	Unfolded   bool
	InProgress bool
}

// View is a live child the sequencer hides while the scaffold stands in
// for it.
type View interface {
	Show()
	Hide()
}

// Host is the widget side of a sequencer.
type Host interface {
	// Views returns the live title and content. ok is false while either
	// slot is empty.
	Views() (title, content View, ok bool)

	// Snapshot measures v at the host's width and rasterizes it.
	Snapshot(v View) image.Image

	// Mount inserts a scaffold holding panels top to bottom and returns
	// the target its frames are drawn on.
	Mount(panels []PanelImage) Target

	// Unmount removes the scaffold.
	Unmount()

	// SetHeight sets the container height outside of a run.
	SetHeight(height int)

	// Relayout asks the host to lay out again.
	Relayout()
}

// Clock drives a run from the host's frame loop. tick receives the time
// since Start and must be called on the same loop as the other host calls,
// finishing with a call at total.
type Clock interface {
	Start(total time.Duration, tick func(elapsed time.Duration))
}

// Sequencer turns fold and unfold requests into animation runs for one cell.
// All methods must be called from the host's event loop.
type Sequencer struct {
	host   Host
	clock  Clock
	logger *slog.Logger

	config Config
	ease   Interpolator
	state  State
	phase  Phase
	run    *Run

	onState func(State)
}

// NewSequencer creates a folded, idle sequencer.
func NewSequencer(host Host, clock Clock, logger *slog.Logger) *Sequencer {
	return &Sequencer{
		host:   host,
		clock:  clock,
		logger: logger,
		config: DefaultConfig(),
		ease:   Decelerate,
	}
}

// Configure replaces the settings used by the next run.
func (s *Sequencer) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configure: %w", err)
	}
	s.config = cfg
	return nil
}

// Config returns the current settings.
func (s *Sequencer) Config() Config {
	return s.config
}

// SetInterpolator sets the easing used by future runs.
func (s *Sequencer) SetInterpolator(ease Interpolator) {
	if ease == nil {
		ease = Decelerate
	}
	s.ease = ease
}

// SetOnStateChange registers a callback fired whenever State changes.
func (s *Sequencer) SetOnStateChange(fn func(State)) {
	s.onState = fn
}

// State returns the current fold state.
func (s *Sequencer) State() State {
	return s.state
}

// Phase returns the current run phase.
func (s *Sequencer) Phase() Phase {
	return s.phase
}

// Unfold expands the cell. It is a no-op while a run is in progress, when
// already unfolded, or when a child slot is empty.
func (s *Sequencer) Unfold(skipAnimation bool) error {
	return s.start(Unfold, skipAnimation)
}

// Fold collapses the cell. It is a no-op while a run is in progress, when
// already folded, or when a child slot is empty.
func (s *Sequencer) Fold(skipAnimation bool) error {
	return s.start(Fold, skipAnimation)
}

// Toggle folds an unfolded cell and unfolds a folded one.
func (s *Sequencer) Toggle(skipAnimation bool) error {
	if s.state.Unfolded {
		return s.Fold(skipAnimation)
	}
	if err := s.Unfold(skipAnimation); err != nil {
		return err
	}
	s.host.Relayout()
	return nil
}

func (s *Sequencer) start(dir Direction, skipAnimation bool) error {
	wantUnfolded := dir == Unfold
	if s.state.InProgress || s.state.Unfolded == wantUnfolded {
		s.logger.Debug("fold request ignored",
			slog.String("direction", dir.String()),
			slog.Bool("unfolded", s.state.Unfolded),
			slog.Bool("in_progress", s.state.InProgress),
		)
		return nil
	}

	title, content, ok := s.host.Views()
	if !ok {
		return nil
	}

	// rasterize while still visible; hidden objects render blank
	titleImg := s.host.Snapshot(title)
	contentImg := s.host.Snapshot(content)

	if skipAnimation {
		title.Hide()
		content.Hide()
		if dir == Unfold {
			s.host.SetHeight(contentImg.Bounds().Dy())
		} else {
			s.host.SetHeight(titleImg.Bounds().Dy())
		}
		s.settle(dir, title, content)
		return nil
	}

	cfg := s.config
	runID := uuid.NewString()
	logger := s.logger.With(
		slog.String("run_id", runID),
		slog.String("direction", dir.String()),
	)

	s.setPhase(logger, PhaseBuilding)
	plan, panels, err := s.prepare(dir, cfg, titleImg, contentImg)
	if err != nil {
		logger.Warn("fold run rejected", slog.String("error", err.Error()))
		s.phase = PhaseIdle
		return fmt.Errorf("%s: %w", dir, err)
	}

	title.Hide()
	content.Hide()
	target := s.host.Mount(panels)

	s.state.InProgress = true
	s.notify()

	logger.Debug("fold run started",
		slog.Int("panels", len(panels)),
		slog.Duration("duration", plan.Total),
		slog.Duration("part", plan.Part),
	)

	s.setPhase(logger, PhaseAnimating)
	s.run = plan.Start(target, RunOptions{
		CameraHeight: cfg.CameraHeight,
		Width:        titleImg.Bounds().Dx(),
		Interpolator: s.ease,
		OnComplete: func() {
			s.setPhase(logger, PhaseSettling)
			s.host.Unmount()
			s.settle(dir, title, content)
			logger.Debug("fold run finished")
		},
	})
	s.clock.Start(plan.Total, s.run.Advance)
	return nil
}

// prepare partitions the snapshots and builds the scaffold panels and plan.
// It touches no live view, so a failure leaves the cell as it was.
func (s *Sequencer) prepare(dir Direction, cfg Config, titleImg, contentImg image.Image) (*Plan, []PanelImage, error) {
	heights, err := Partition(titleImg.Bounds().Dy(), contentImg.Bounds().Dy(), cfg.AdditionalFlips)
	if err != nil {
		return nil, nil, err
	}
	panels, err := BuildPanels(heights, titleImg, contentImg, cfg.BackSideColor)
	if err != nil {
		return nil, nil, err
	}
	plan, err := BuildPlan(dir, heights, cfg.AnimationDuration)
	if err != nil {
		return nil, nil, err
	}
	return plan, panels, nil
}

// settle shows the live view for the new state and records it.
func (s *Sequencer) settle(dir Direction, title, content View) {
	if dir == Unfold {
		content.Show()
	} else {
		title.Show()
	}
	s.state = State{Unfolded: dir == Unfold, InProgress: false}
	s.run = nil
	s.phase = PhaseIdle
	s.notify()
	s.host.Relayout()
}

func (s *Sequencer) setPhase(logger *slog.Logger, p Phase) {
	logger.Debug("fold phase", slog.String("from", s.phase.String()), slog.String("to", p.String()))
	s.phase = p
}

func (s *Sequencer) notify() {
	if s.onState != nil {
		s.onState(s.state)
	}
}
