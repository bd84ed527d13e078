package main

import (
	"fmt"
	"time"

	"github.com/lixenwraith/kiloc/canvas"
	"github.com/lixenwraith/kiloc/component"
	"github.com/lixenwraith/kiloc/config"
	"github.com/lixenwraith/kiloc/terminal"
)

// Component ids used by the demo layout
const (
	idHeader component.ID = iota + 1
	idTitle
	idPanel
	idClock
	idFrames
	idWide
	idStatusBox
	idStatus
	idHint
)

var (
	accent = terminal.Pack(0x64C8DC, 0, true, false, false)
	warn   = terminal.Pack(0xFFB464, 0, false, true, false)
	good   = terminal.Pack(0x50C850, 0, false, false, true)
)

type demo struct {
	tree   *component.Tree
	clock  *component.Text
	frames *component.Text
	status *component.Text
	panel  *component.Container
	count  int
}

func newDemo(cfg config.Config) (*demo, error) {
	d := &demo{tree: component.NewTree(cfg.Canvas.Capacity)}
	t := d.tree
	text := cfg.TextStyle()

	header, err := t.AddContainer(idHeader, component.RootID, 1, 0, cfg.Canvas.MaxWidth-2, 1)
	if err != nil {
		return nil, err
	}
	if _, err := t.AddText(idTitle, idHeader, 0, 0, "kiloc demo", accent); err != nil {
		return nil, err
	}

	d.panel, err = t.AddContainer(idPanel, component.RootID, 2, 2, header.W-2, 4)
	if err != nil {
		return nil, err
	}
	if d.clock, err = t.AddText(idClock, idPanel, 0, 0, "", text); err != nil {
		return nil, err
	}
	if d.frames, err = t.AddText(idFrames, idPanel, 0, 1, "", text); err != nil {
		return nil, err
	}
	if _, err := t.AddText(idWide, idPanel, 0, 2, "宽字符 → wide glyphs", warn); err != nil {
		return nil, err
	}

	if _, err := t.AddBox(idStatusBox, component.RootID, 1, 7, cfg.Canvas.MaxWidth-2, 3, "status", text, canvas.LineRounded); err != nil {
		return nil, err
	}
	if d.status, err = t.AddText(idStatus, idStatusBox, 2, 1, "", good); err != nil {
		return nil, err
	}
	if _, err := t.AddText(idHint, component.RootID, 1, cfg.Canvas.MaxHeight-1, "q to quit", text); err != nil {
		return nil, err
	}

	return d, nil
}

// tick mutates the tree between frames
func (d *demo) tick(now time.Time) {
	d.count++
	d.clock.Content = now.Format("15:04:05")
	d.frames.Content = fmt.Sprintf("frame %d", d.count)
	d.status.Content = fmt.Sprintf("%d nodes", d.tree.Len())
	// Slide the panel to show relative positioning
	d.panel.X = 2 + d.count/10%4
}
