package component

// Walk visits every node in pre-order starting at the root, siblings in registration order
// Each node's Abs is recomputed from its parent's Abs plus its own offset before visit runs,
// so offsets mutated between frames are always picked up
func (t *Tree) Walk(visit func(n *Node)) {
	r := t.Root()
	r.Abs = Point{}
	t.walk(r, visit)
}

func (t *Tree) walk(n *Node, visit func(n *Node)) {
	if visit != nil {
		visit(n)
	}
	for _, cid := range n.Children {
		c := t.nodes[cid]
		dx, dy := c.Payload.Offset()
		c.Abs = Point{X: n.Abs.X + dx, Y: n.Abs.Y + dy}
		t.walk(c, visit)
	}
}

// Resolve recomputes every absolute position without visiting
func (t *Tree) Resolve() {
	t.Walk(nil)
}
