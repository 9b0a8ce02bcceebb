package culture

import (
	"errors"
	"strings"
)

// ID identifies the active visual identity of the storefront.
type ID string

const (
	Default ID = "default"
	Tokyo   ID = "tokyo"
	NewYork ID = "newyork"
	Lagos   ID = "lagos"
	Seoul   ID = "seoul"
	London  ID = "london"

	// Berlin is a culture of the wider application. It has an info record but
	// no procedural program, so the backdrop shows the default scene for it.
	Berlin ID = "berlin"
)

// ErrUnknown is returned by Parse for identifiers outside the known set.
var ErrUnknown = errors.New("culture: unknown identifier")

var known = []ID{Default, Tokyo, NewYork, Lagos, Seoul, London, Berlin}

// All returns every known identifier in display order, default first.
func All() []ID {
	out := make([]ID, len(known))
	copy(out, known)
	return out
}

func (id ID) String() string { return string(id) }

// IsDefault reports whether id is the neutral culture. The empty ID counts as
// default so a zero-valued state behaves like a fresh one.
func (id ID) IsDefault() bool { return id == Default || id == "" }

// Known reports whether id is one of the identifiers returned by All.
func (id ID) Known() bool {
	for _, k := range known {
		if k == id {
			return true
		}
	}
	return false
}

// Parse normalizes user input ("New York", "new-york", " TOKYO ") into an ID.
func Parse(s string) (ID, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(norm)
	if norm == "" {
		return Default, nil
	}
	id := ID(norm)
	if !id.Known() {
		return "", ErrUnknown
	}
	return id, nil
}
