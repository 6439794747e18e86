package fold

import (
	"time"
)

// Target receives the frames produced by a run.
type Target interface {
	// SetRotation poses one panel face.
	SetRotation(panel int, face Face, m Matrix)
	// SetHeight resizes the cell container.
	SetHeight(height int)
}

// RunOptions configures how a plan is played.
type RunOptions struct {
	CameraHeight int
	Width        int
	Interpolator Interpolator

	// OnComplete fires once, when the last rotation link completes.
	OnComplete func()
}

// segment is one link compiled for playback.
type segment struct {
	offset   time.Duration
	duration time.Duration
	apply    func(progress float64)
	done     func()
}

// chain plays segments strictly in order; a segment starts only after
// the previous one has completed.
type chain struct {
	segments []segment
	next     int
}

func (c *chain) finished() bool {
	return c.next >= len(c.segments)
}

func (c *chain) advance(elapsed time.Duration, ease Interpolator) {
	for !c.finished() {
		s := c.segments[c.next]
		if elapsed < s.offset {
			return
		}
		if elapsed < s.offset+s.duration {
			s.apply(ease(float64(elapsed-s.offset) / float64(s.duration)))
			return
		}
		s.apply(1)
		c.next++
		if s.done != nil {
			s.done()
		}
	}
}

// Run plays a Plan against a Target. It holds no timer of its own: the
// host calls Advance from its frame loop with the time since the start.
type Run struct {
	plan      *Plan
	opts      RunOptions
	rotations chain
	resizes   chain
	elapsed   time.Duration
	completed bool
}

// Start poses every rotation link at its starting angle, sets the
// starting height, and returns a Run ready to advance.
func (p *Plan) Start(target Target, opts RunOptions) *Run {
	if opts.Interpolator == nil {
		opts.Interpolator = Decelerate
	}
	r := &Run{plan: p, opts: opts}

	for i, link := range p.Rotations {
		faceHeight := p.FaceSize(link.Panel, link.Face)
		pose := func(progress float64) {
			m := Transform(link.Mode, opts.CameraHeight, opts.Width, faceHeight, progress)
			target.SetRotation(link.Panel, link.Face, m)
		}
		seg := segment{offset: link.Offset, duration: link.Duration, apply: pose}
		if i == len(p.Rotations)-1 {
			seg.done = r.complete
		}
		r.rotations.segments = append(r.rotations.segments, seg)
		pose(0)
	}

	for _, link := range p.Resizes {
		r.resizes.segments = append(r.resizes.segments, segment{
			offset:   link.Offset,
			duration: link.Duration,
			apply: func(progress float64) {
				target.SetHeight(HeightAt(link.From, link.To, progress))
			},
		})
	}
	if len(p.Resizes) > 0 {
		target.SetHeight(p.Resizes[0].From)
	}

	return r
}

// Advance moves the run to elapsed time since Start. Time never runs
// backwards; an earlier elapsed is ignored.
func (r *Run) Advance(elapsed time.Duration) {
	if r.completed || elapsed < r.elapsed {
		return
	}
	r.elapsed = elapsed

	// heights first, so the final size is in place before completion fires
	r.resizes.advance(elapsed, r.opts.Interpolator)
	r.rotations.advance(elapsed, r.opts.Interpolator)
}

// Completed reports whether the terminal rotation has finished.
func (r *Run) Completed() bool {
	return r.completed
}

func (r *Run) complete() {
	if r.completed {
		return
	}
	r.completed = true
	if r.opts.OnComplete != nil {
		r.opts.OnComplete()
	}
}
