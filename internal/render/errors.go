package render

import "errors"

var (
	// ErrNoContext indicates a drawing context could not be acquired.
	ErrNoContext = errors.New("render: 2d context unavailable")

	// ErrNoDefault indicates a catalog without the mandatory default program.
	ErrNoDefault = errors.New("render: catalog has no default program")
)
