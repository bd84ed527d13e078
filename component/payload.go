package component

import (
	"github.com/lixenwraith/kiloc/canvas"
	"github.com/lixenwraith/kiloc/terminal"
)

// Kind tags the payload carried by a node
type Kind uint8

const (
	KindRoot Kind = iota
	KindContainer
	KindText
	KindBox
)

var kindNames = [...]string{
	KindRoot:      "root",
	KindContainer: "container",
	KindText:      "text",
	KindBox:       "box",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Payload is the closed set of kind-specific node data
// Implemented only by *Container, *Text, *Box and the root
type Payload interface {
	Kind() Kind
	// Offset is the position relative to the parent's absolute origin
	Offset() (x, y int)
	payload()
}

// Container groups children under a shared origin
// W and H are advisory; rendering does not clip to them
type Container struct {
	X, Y int
	W, H int
}

func (*Container) Kind() Kind { return KindContainer }
func (c *Container) Offset() (int, int) { return c.X, c.Y }
func (*Container) payload() {}

// Text is a single line of styled UTF-8 content
type Text struct {
	X, Y    int
	Content string
	Style   terminal.Style
}

func (*Text) Kind() Kind { return KindText }
func (t *Text) Offset() (int, int) { return t.X, t.Y }
func (*Text) payload() {}

// Box is a bordered rectangle with an optional title
// Children are positioned relative to the box's top-left corner
type Box struct {
	X, Y   int
	W, H   int
	Title  string
	Border terminal.Style
	Line   canvas.LineType
}

func (*Box) Kind() Kind { return KindBox }
func (b *Box) Offset() (int, int) { return b.X, b.Y }
func (*Box) payload() {}

// root sits at the canvas origin
type root struct{}

func (root) Kind() Kind { return KindRoot }
func (root) Offset() (int, int) { return 0, 0 }
func (root) payload() {}

// canParent reports whether nodes of kind k may own children
func canParent(k Kind) bool {
	return k == KindRoot || k == KindContainer || k == KindBox
}
