// Package layout implements the arena-allocated binary layout tree: frames
// holding tabbed windows, splits dividing rectangular regions, and the
// workspace set that owns one tree per workspace.
//
// Cyclic parent/child references never appear as Go pointers: every node is
// stored in a slice-backed arena and referenced by a generational NodeId.
// Parent fields store ids, never owning references, which is what makes
// serialising the tree for IPC (internal/ipc) trivial — see spec.md §9.
package layout

import (
	"encoding/json"
	"fmt"

	"github.com/adereth/ttwm/internal/geom"
)

// WindowHandle identifies an externally owned window. It is opaque and is
// never invented by the layout package.
type WindowHandle uint32

// NodeId is a generational handle into a Tree's arena. It stays stable
// across mutations that don't remove the node it refers to.
type NodeId struct {
	index int
	gen   uint32
}

// Nil is the zero NodeId; no real node ever has this value.
var Nil = NodeId{}

func (id NodeId) String() string {
	if id == Nil {
		return "nil"
	}
	return fmt.Sprintf("#%d.%d", id.index, id.gen)
}

// Valid reports whether id is a non-nil handle. It does not verify the node
// is still alive in any particular tree.
func (id NodeId) Valid() bool { return id != Nil }

// MarshalJSON renders a NodeId as its String() form: NodeId's fields are
// unexported arena internals that IPC clients (internal/ipc) have no use
// for, only the opaque identifier does.
func (id NodeId) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.String())
}

type kind uint8

const (
	kindFree kind = iota
	kindFrame
	kindSplit
)

// node is the arena slot. Only fields relevant to `kind` are meaningful.
type node struct {
	kind   kind
	gen    uint32
	parent NodeId

	// frame fields
	windows      []WindowHandle
	focusedTab   int
	verticalTabs bool

	// split fields
	direction geom.Orientation
	ratio     float64
	first     NodeId
	second    NodeId
}
