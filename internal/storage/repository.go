package storage

import "github.com/shhac/foldingcell/internal/fold"

// Repository persists the style the demo applies to its cells.
type Repository interface {
	// LoadStyle returns the saved style. ok is false when nothing has been
	// saved yet.
	LoadStyle() (cfg fold.Config, ok bool, err error)
	SaveStyle(cfg fold.Config) error
}
