// @focus: #render { style }
package terminal

// RGB is a 24-bit color packed as 0xRRGGBB
// Zero means "no color" for the channel it is used on, so true black is not expressible
type RGB uint32

// R returns the red component
func (c RGB) R() uint8 { return uint8(c >> 16) }

// G returns the green component
func (c RGB) G() uint8 { return uint8(c >> 8) }

// B returns the blue component
func (c RGB) B() uint8 { return uint8(c) }

// NewRGB builds a color from components
func NewRGB(r, g, b uint8) RGB {
	return RGB(r)<<16 | RGB(g)<<8 | RGB(b)
}

// Style is the packed attribute word carried by every cell
//
// Layout:
//
//	63..40  foreground RGB
//	39..16  background RGB
//	15..3   reserved, never set by Pack
//	 2..0   flags: underline, italic, bold
type Style uint64

const (
	FlagBold      uint8 = 1 << 0
	FlagItalic    uint8 = 1 << 1
	FlagUnderline uint8 = 1 << 2

	flagMask  = 0x7
	rgbMask   = 0xFFFFFF
	fgShift   = 40
	bgShift   = 16
	reserved  = Style(0xFFF8)
	StyleNone = Style(0)
)

// StyleInvalid has reserved bits set, so it never equals a packed style
// Front buffer cells are set to it to force a repaint
const StyleInvalid = reserved

// Pack builds a style word from colors and flags
// Colors are masked to 24 bits
func Pack(fg, bg RGB, bold, italic, underline bool) Style {
	s := Style(fg&rgbMask)<<fgShift | Style(bg&rgbMask)<<bgShift
	if bold {
		s |= Style(FlagBold)
	}
	if italic {
		s |= Style(FlagItalic)
	}
	if underline {
		s |= Style(FlagUnderline)
	}
	return s
}

// Fg returns the foreground color
func (s Style) Fg() RGB { return RGB(s>>fgShift) & rgbMask }

// Bg returns the background color
func (s Style) Bg() RGB { return RGB(s>>bgShift) & rgbMask }

// Flags returns the three attribute bits
func (s Style) Flags() uint8 { return uint8(s) & flagMask }

func (s Style) Bold() bool { return s.Flags()&FlagBold != 0 }
func (s Style) Italic() bool { return s.Flags()&FlagItalic != 0 }
func (s Style) Underline() bool { return s.Flags()&FlagUnderline != 0 }

// Valid reports whether s could have been produced by Pack
func (s Style) Valid() bool { return s&reserved == 0 }

// WithFg returns s with the foreground replaced
func (s Style) WithFg(fg RGB) Style {
	return s&^(Style(rgbMask)<<fgShift) | Style(fg&rgbMask)<<fgShift
}

// WithBg returns s with the background replaced
func (s Style) WithBg(bg RGB) Style {
	return s&^(Style(rgbMask)<<bgShift) | Style(bg&rgbMask)<<bgShift
}
