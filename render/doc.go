// Package render turns a component tree into terminal output one frame at a time.
//
// A Renderer owns two canvas grids. Each Frame probes the terminal size, composes
// the tree into the back grid, then writes only the cells that differ from the
// front grid (the last painted state) and commits them. A size change clears the
// screen and invalidates the front grid so the next pass repaints everything.
//
//	tree := component.NewTree(16)
//	tree.AddText(1, component.RootID, 2, 1, "hello", terminal.Pack(0xFFFFFF, 0, true, false, false))
//	r, _ := render.New(terminal.NewTTY(os.Stdin, os.Stdout), render.Bounds{MaxW: 40, MaxH: 10}, tree)
//	r.Frame()
package render
