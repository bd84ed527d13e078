package terminal

import (
	"os"
	"slices"
	"strings"
)

// ColorMode indicates terminal color capability
type ColorMode uint8

const (
	ColorModeTrueColor ColorMode = iota // 24-bit RGB, the default
	ColorMode256                        // xterm-256 palette fallback
)

// String returns the config spelling of the mode
func (m ColorMode) String() string {
	if m == ColorMode256 {
		return "256"
	}
	return "truecolor"
}

// ParseColorMode maps a config value to a mode, "auto" and "" defer to DetectColorMode
func ParseColorMode(s string) ColorMode {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "256":
		return ColorMode256
	case "truecolor", "true", "24bit":
		return ColorModeTrueColor
	default:
		return DetectColorMode()
	}
}

// Environment variables whose presence identifies a truecolor-capable emulator
var truecolorEnv = []string{
	"KITTY_WINDOW_ID",
	"KONSOLE_VERSION",
	"ITERM_SESSION_ID",
	"ALACRITTY_WINDOW_ID",
	"WEZTERM_PANE",
}

// DetectColorMode picks truecolor when COLORTERM, a known emulator or TERM says so,
// and the 256-color palette otherwise
func DetectColorMode() ColorMode {
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return ColorModeTrueColor
	}
	if slices.ContainsFunc(truecolorEnv, func(k string) bool { return os.Getenv(k) != "" }) {
		return ColorModeTrueColor
	}
	term := strings.ToLower(os.Getenv("TERM"))
	for _, marker := range []string{"truecolor", "24bit", "direct"} {
		if strings.Contains(term, marker) {
			return ColorModeTrueColor
		}
	}
	return ColorMode256
}

// Channel levels of the 6x6x6 cube at palette indices 16-231
var cubeValues = [6]uint8{0, 95, 135, 175, 215, 255}

// cubeLevel returns the index of the cube level nearest to v
// Levels above 95 are 40 apart, so the midpoints past 115 fall on (v-35)/40
func cubeLevel(v uint8) uint8 {
	switch {
	case v < 48:
		return 0
	case v < 115:
		return 1
	default:
		return (v - 35) / 40
	}
}

// grayStep returns the index 0-23 of the gray ramp level (8 + 10*i) nearest to v
func grayStep(v int) int {
	return min(max((v-3)/10, 0), 23)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// RGBTo256 returns whichever of the nearest cube color and the nearest gray ramp
// entry is closer to c, by summed channel distance
func RGBTo256(c RGB) uint8 {
	r, g, b := c.R(), c.G(), c.B()

	lr, lg, lb := cubeLevel(r), cubeLevel(g), cubeLevel(b)
	cubeDist := absDiff(r, cubeValues[lr]) + absDiff(g, cubeValues[lg]) + absDiff(b, cubeValues[lb])
	if cubeDist == 0 {
		return 16 + 36*lr + 6*lg + lb
	}

	step := grayStep((int(r) + int(g) + int(b)) / 3)
	level := uint8(8 + 10*step)
	grayDist := absDiff(r, level) + absDiff(g, level) + absDiff(b, level)
	if grayDist < cubeDist {
		return uint8(232 + step)
	}
	return 16 + 36*lr + 6*lg + lb
}
