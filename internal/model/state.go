package model

import "fyne.io/fyne/v2/data/binding"

// FoldState mirrors a folding cell's state into Fyne data bindings so
// labels, buttons and status bars can react to it.
type FoldState struct {
	Unfolded  binding.Bool
	Animating binding.Bool
}

// NewFoldState creates a FoldState for a folded, idle cell.
func NewFoldState() *FoldState {
	return &FoldState{
		Unfolded:  binding.NewBool(),
		Animating: binding.NewBool(),
	}
}

// Set updates both bindings.
func (s *FoldState) Set(unfolded, animating bool) {
	_ = s.Unfolded.Set(unfolded)
	_ = s.Animating.Set(animating)
}

// Label returns a short description of the state: "folded", "unfolding",
// "unfolded" or "folding".
func (s *FoldState) Label() string {
	unfolded, _ := s.Unfolded.Get()
	animating, _ := s.Animating.Get()

	switch {
	case animating && unfolded:
		return "folding"
	case animating:
		return "unfolding"
	case unfolded:
		return "unfolded"
	default:
		return "folded"
	}
}

// DemoState is the state of the demo window.
type DemoState struct {
	// SkipAnimation makes toggles switch instantly.
	SkipAnimation binding.Bool

	// Status is the message shown in the status bar.
	Status binding.String
}

// NewDemoState creates a DemoState with animations enabled.
func NewDemoState() *DemoState {
	status := binding.NewString()
	_ = status.Set("Ready")

	return &DemoState{
		SkipAnimation: binding.NewBool(),
		Status:        status,
	}
}
