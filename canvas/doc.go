// Package canvas holds the fixed-size cell grid the renderer composes into.
//
// A Grid is allocated once at the canvas size and rewritten every frame. Text is
// placed one scalar at a time; wide glyphs take two columns, the second stored as
// an empty continuation cell carrying the same style. Writes outside the grid are
// dropped rather than reported.
package canvas
