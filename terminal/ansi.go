// @focus: #terminal { ansi }
package terminal

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	csi      = []byte("\x1b[")
	CSIReset = []byte("\x1b[0m")
	CSIClear = []byte("\x1b[2J")
	csiRIS   = []byte("\x1bc") // Reset to Initial State (emergency)

	CSICursorHide = []byte("\x1b[?25l")
	CSICursorShow = []byte("\x1b[?25h")

	// DECAWM: ?7l keeps the cursor at the right edge instead of wrapping,
	// so writing the bottom-right cell does not scroll the screen
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// AppendInt appends a non-negative decimal without allocation
// Optimized for terminal values (0-255 common, 0-999 typical max)
func AppendInt(dst []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(dst, byte(n)+'0')
	}
	if n < 100 {
		return append(dst, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(dst, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(dst, buf[i:]...)
}

// AppendCursorPos appends ESC[row;colH for a 0-indexed position
func AppendCursorPos(dst []byte, x, y int) []byte {
	dst = append(dst, csi...)
	dst = AppendInt(dst, y+1)
	dst = append(dst, ';')
	dst = AppendInt(dst, x+1)
	return append(dst, 'H')
}

// AppendSGR appends the full attribute sequence for a style
// Always starts from reset, then flags, then each nonzero color channel
func AppendSGR(dst []byte, st Style, mode ColorMode) []byte {
	dst = append(dst, csi...)
	dst = append(dst, '0')

	if st.Bold() {
		dst = append(dst, ";1"...)
	}
	if st.Italic() {
		dst = append(dst, ";3"...)
	}
	if st.Underline() {
		dst = append(dst, ";4"...)
	}
	if fg := st.Fg(); fg != 0 {
		dst = appendColor(dst, "38", fg, mode)
	}
	if bg := st.Bg(); bg != 0 {
		dst = appendColor(dst, "48", bg, mode)
	}

	return append(dst, 'm')
}

// appendColor writes ;38;2;R;G;B (or ;38;5;N in 256 mode) without CSI prefix or suffix
func appendColor(dst []byte, channel string, c RGB, mode ColorMode) []byte {
	dst = append(dst, ';')
	dst = append(dst, channel...)
	if mode == ColorMode256 {
		dst = append(dst, ";5;"...)
		return AppendInt(dst, int(RGBTo256(c)))
	}
	dst = append(dst, ";2;"...)
	dst = AppendInt(dst, int(c.R()))
	dst = append(dst, ';')
	dst = AppendInt(dst, int(c.G()))
	dst = append(dst, ';')
	return AppendInt(dst, int(c.B()))
}
