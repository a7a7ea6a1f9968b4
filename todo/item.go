// Package todo wires a todo collection through an eddy dataflow graph.
//
// The package has three layers: a domain model (Item, Visibility), pure
// derivation functions over collection snapshots, and a Bloc that assembles
// input channels, a Store collaborator, and derived output channels into a
// single reactive graph.
package todo

import "errors"

// Item is a single todo entry. Identity is the ID: two items with the same
// ID refer to the same entry regardless of their other fields. The ID is
// immutable once assigned; Title, Note, and Complete may change across
// updates.
type Item struct {
	ID       string `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
	Complete bool   `json:"complete" yaml:"complete"`
}

// Visibility selects which items appear in the visible list.
type Visibility int32

const (
	// ShowAll keeps every item.
	ShowAll Visibility = iota

	// ShowActive keeps only incomplete items.
	ShowActive

	// ShowCompleted keeps only complete items.
	ShowCompleted
)

// DefaultVisibility seeds the active-visibility behavior at graph
// construction.
const DefaultVisibility = ShowAll

// ErrInvalidVisibility reports a visibility value outside the closed
// enumeration reaching a derivation. This is a programmer or data error and
// is fatal by design: derivations panic with it rather than silently
// treating unknown values as ShowAll.
var ErrInvalidVisibility = errors.New("todo: invalid visibility value")

// Valid reports whether v is a member of the closed enumeration.
func (v Visibility) Valid() bool {
	switch v {
	case ShowAll, ShowActive, ShowCompleted:
		return true
	default:
		return false
	}
}

// String returns the string representation of the visibility.
func (v Visibility) String() string {
	switch v {
	case ShowAll:
		return "all"
	case ShowActive:
		return "active"
	case ShowCompleted:
		return "completed"
	default:
		return "unknown"
	}
}
