package component

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/kiloc/canvas"
	"github.com/lixenwraith/kiloc/terminal"
)

// ID identifies a node and doubles as its arena index; 0 is the root
type ID int

// RootID is the pre-registered root node
const RootID ID = 0

var (
	ErrIDOutOfRange   = errors.New("component id out of range")
	ErrDuplicateID    = errors.New("component id already registered")
	ErrParentNotFound = errors.New("parent not registered")
	ErrRootReserved   = errors.New("root id is reserved")
	ErrNotParent      = errors.New("parent kind cannot own children")
	ErrNilPayload     = errors.New("nil payload")
)

// Point is an absolute canvas coordinate
type Point struct {
	X, Y int
}

// Node is one entry of the component tree
// Abs is derived during Walk; Children is kept in registration order
type Node struct {
	ID       ID
	Parent   ID
	Abs      Point
	Children []ID
	Payload  Payload
}

// Kind returns the payload kind
func (n *Node) Kind() Kind {
	return n.Payload.Kind()
}

// Tree is an arena of nodes indexed by ID
// Not safe for concurrent use: one goroutine owns the tree and the frames drawn from it
type Tree struct {
	nodes []*Node
	count int
}

// NewTree allocates a tree for ids in [0, capacity) and registers the root
func NewTree(capacity int) *Tree {
	capacity = max(capacity, 1)
	t := &Tree{nodes: make([]*Node, capacity)}
	t.nodes[RootID] = &Node{ID: RootID, Parent: RootID, Payload: root{}}
	t.count = 1
	return t
}

// Capacity returns the exclusive upper bound on ids
func (t *Tree) Capacity() int {
	return len(t.nodes)
}

// Len returns the number of registered nodes, root included
func (t *Tree) Len() int {
	return t.count
}

// Node returns the node registered under id
func (t *Tree) Node(id ID) (*Node, bool) {
	if id < 0 || int(id) >= len(t.nodes) {
		return nil, false
	}
	n := t.nodes[id]
	return n, n != nil
}

// Root returns the root node
func (t *Tree) Root() *Node {
	return t.nodes[RootID]
}

// Register stores p under id and links it as the last child of parent
// The tree is left unchanged when an error is returned
func (t *Tree) Register(id, parent ID, p Payload) error {
	switch {
	case p == nil:
		return fmt.Errorf("register %d: %w", id, ErrNilPayload)
	case id == RootID:
		return fmt.Errorf("register %d: %w", id, ErrRootReserved)
	case id < 0 || int(id) >= len(t.nodes):
		return fmt.Errorf("register %d (capacity %d): %w", id, len(t.nodes), ErrIDOutOfRange)
	case t.nodes[id] != nil:
		return fmt.Errorf("register %d: %w", id, ErrDuplicateID)
	}

	pn, ok := t.Node(parent)
	if !ok {
		return fmt.Errorf("register %d under %d: %w", id, parent, ErrParentNotFound)
	}
	if !canParent(pn.Kind()) {
		return fmt.Errorf("register %d under %s %d: %w", id, pn.Kind(), parent, ErrNotParent)
	}

	t.nodes[id] = &Node{ID: id, Parent: parent, Payload: p}
	pn.Children = append(pn.Children, id)
	t.count++
	return nil
}

// AddContainer registers a container and returns it for later mutation
func (t *Tree) AddContainer(id, parent ID, x, y, w, h int) (*Container, error) {
	c := &Container{X: x, Y: y, W: w, H: h}
	if err := t.Register(id, parent, c); err != nil {
		return nil, err
	}
	return c, nil
}

// AddText registers a text node and returns it for later mutation
func (t *Tree) AddText(id, parent ID, x, y int, content string, st terminal.Style) (*Text, error) {
	tx := &Text{X: x, Y: y, Content: content, Style: st}
	if err := t.Register(id, parent, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

// AddBox registers a box and returns it for later mutation
func (t *Tree) AddBox(id, parent ID, x, y, w, h int, title string, border terminal.Style, line canvas.LineType) (*Box, error) {
	b := &Box{X: x, Y: y, W: w, H: h, Title: title, Border: border, Line: line}
	if err := t.Register(id, parent, b); err != nil {
		return nil, err
	}
	return b, nil
}
