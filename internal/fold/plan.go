package fold

import (
	"fmt"
	"slices"
	"time"

	apperrors "github.com/shhac/foldingcell/internal/errors"
)

// Direction says whether a run expands or collapses the cell.
type Direction int

const (
	Unfold Direction = iota
	Fold
)

func (d Direction) String() string {
	if d == Fold {
		return "fold"
	}
	return "unfold"
}

// Face selects which part of a panel a rotation link moves.
type Face int

const (
	// FaceWhole rotates the panel together with its front face.
	FaceWhole Face = iota
	// FaceFront rotates only the front face, revealing the back beneath.
	FaceFront
)

func (f Face) String() string {
	if f == FaceFront {
		return "front"
	}
	return "whole"
}

// Link is one scheduled rotation of a panel face.
type Link struct {
	Panel    int
	Face     Face
	Mode     Mode
	Offset   time.Duration
	Duration time.Duration
}

// HeightLink is one container resize across a panel boundary.
type HeightLink struct {
	From     int
	To       int
	Offset   time.Duration
	Duration time.Duration
}

// Plan is the complete choreography of one run. Rotations and Heights are
// two independent chains; each link starts when the previous one in the
// same chain ends, and both chains end at Total.
type Plan struct {
	Direction Direction
	Heights   []int
	Part      time.Duration
	Total     time.Duration
	Rotations []Link
	Resizes   []HeightLink
}

// step is a face rotation used by a traversal.
type step struct {
	face Face
	mode Mode
}

// traversal describes how one direction walks the panels. Every panel
// but the first visited runs enter; every panel but the last runs exit.
type traversal struct {
	reverse bool
	enter   step
	exit    step
}

var traversals = map[Direction]traversal{
	// top panel first: each panel swings down from its top edge, then its
	// front folds down to become the back of the next panel
	Unfold: {
		reverse: false,
		enter:   step{FaceWhole, UnfoldDown},
		exit:    step{FaceFront, FoldDown},
	},
	// bottom panel first: each front swings back up, then the whole panel
	// folds up under the one above it
	Fold: {
		reverse: true,
		enter:   step{FaceFront, UnfoldUp},
		exit:    step{FaceWhole, FoldUp},
	},
}

// BuildPlan lays out the rotation and height chains for heights.
// total is split into 2*len(heights) equal 90° parts, truncated to whole
// milliseconds.
func BuildPlan(dir Direction, heights []int, total time.Duration) (*Plan, error) {
	n := len(heights)
	if n < 2 {
		return nil, fmt.Errorf("build plan: need at least 2 panels, got %d: %w", n, apperrors.ErrInvalidInput)
	}
	tr, ok := traversals[dir]
	if !ok {
		return nil, fmt.Errorf("build plan: unknown direction %d: %w", dir, apperrors.ErrInvalidInput)
	}

	if total < 0 {
		return nil, fmt.Errorf("build plan: negative duration %s: %w", total, apperrors.ErrInvalidInput)
	}
	// a total shorter than 1ms per part truncates to zero-length links,
	// which complete on the first tick
	part := (total / time.Duration(n*2)).Truncate(time.Millisecond)

	plan := &Plan{
		Direction: dir,
		Heights:   append([]int(nil), heights...),
		Part:      part,
	}

	var offset time.Duration
	add := func(panel int, s step) {
		plan.Rotations = append(plan.Rotations, Link{
			Panel:    panel,
			Face:     s.face,
			Mode:     s.mode,
			Offset:   offset,
			Duration: part,
		})
		offset += part
	}
	for i := 0; i < n; i++ {
		panel := i
		if tr.reverse {
			panel = n - 1 - i
		}
		if i != 0 {
			add(panel, tr.enter)
		}
		if i != n-1 {
			add(panel, tr.exit)
		}
	}
	plan.Total = offset

	plan.Resizes = buildResizes(dir, heights, part*2)
	return plan, nil
}

// buildResizes returns one resize per panel boundary after the first.
// Growing runs title height up to content height; collapsing runs the
// same boundaries in reverse with from and to swapped.
func buildResizes(dir Direction, heights []int, d time.Duration) []HeightLink {
	links := make([]HeightLink, 0, len(heights)-1)
	from := heights[0]
	for _, h := range heights[1:] {
		to := from + h
		if dir == Fold {
			links = append(links, HeightLink{From: to, To: from, Duration: d})
		} else {
			links = append(links, HeightLink{From: from, To: to, Duration: d})
		}
		from = to
	}

	if dir == Fold {
		slices.Reverse(links)
	}

	var offset time.Duration
	for i := range links {
		links[i].Offset = offset
		offset += links[i].Duration
	}
	return links
}

// FaceSize returns the pixel height of a panel face.
func (p *Plan) FaceSize(panel int, face Face) int {
	if face == FaceWhole {
		return p.Heights[panel]
	}
	if panel+1 < len(p.Heights) {
		return p.Heights[panel+1]
	}
	return 0
}
