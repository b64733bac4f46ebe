package buttons

import (
	"fmt"
	"image/color"
	"math"
	"slices"
	"sort"

	"github.com/milk9111/leveleditor/levels"
)

const (
	MinNumber = 1
	MaxNumber = 99
)

func number(e levels.Entity) (float64, bool) {
	if e.Type != levels.TypeButton {
		return 0, false
	}
	return e.Properties.Number(levels.PropButtonNumber)
}

// MaxButtonNumber is the highest number carried by a button, or 0.
func MaxButtonNumber(objects []levels.Entity) int {
	highest := 0.0
	for _, o := range objects {
		if n, ok := number(o); ok && n > highest {
			highest = n
		}
	}
	return int(highest)
}

// AssignButtonNumber returns the next number. Gaps left by deleted buttons are never reused.
func AssignButtonNumber(objects []levels.Entity) int {
	return MaxButtonNumber(objects) + 1
}

func ValidateButtonNumber(n float64) bool {
	return n == math.Trunc(n) && n >= MinNumber && n <= MaxNumber
}

// DuplicateButtonNumbers maps each number used by more than one button to
// the ids carrying it. Duplicates are allowed, so this is only advisory.
func DuplicateButtonNumbers(objects []levels.Entity) map[int][]string {
	byNumber := make(map[int][]string)
	for _, o := range objects {
		if n, ok := number(o); ok {
			byNumber[int(n)] = append(byNumber[int(n)], o.ID)
		}
	}
	for n, ids := range byNumber {
		if len(ids) < 2 {
			delete(byNumber, n)
		}
	}
	return byNumber
}

// ButtonsLinkingToDoor returns the buttons that trigger door. Other linkers such as levers are left out.
func ButtonsLinkingToDoor(door levels.Entity, objects []levels.Entity) []levels.Entity {
	var out []levels.Entity
	for _, o := range objects {
		if o.Type == levels.TypeButton && slices.Contains(o.Properties.Strings(levels.PropLinkedObjects), door.ID) {
			out = append(out, o)
		}
	}
	return out
}

// Numbers lists the sorted, de-duplicated button numbers in use.
func Numbers(objects []levels.Entity) []int {
	seen := make(map[int]bool)
	var out []int
	for _, o := range objects {
		if n, ok := number(o); ok && !seen[int(n)] {
			seen[int(n)] = true
			out = append(out, int(n))
		}
	}
	sort.Ints(out)
	return out
}

// Luminance is the perceptual luma of an sRGB color, in [0,1].
func Luminance(r, g, b uint8) float64 {
	return 0.299*float64(r)/255 + 0.587*float64(g)/255 + 0.114*float64(b)/255
}

type ColorScheme struct {
	Text    string
	Bg      string
	Opacity float64
}

// BadgeColorScheme picks a badge that contrasts with a background of the given luminance.
func BadgeColorScheme(luminance float64) ColorScheme {
	if luminance < 0.5 {
		return ColorScheme{Text: "#ffffff", Bg: "#000000", Opacity: 0.7}
	}
	return ColorScheme{Text: "#000000", Bg: "#ffffff", Opacity: 0.8}
}

// ParseHexColor parses "#rrggbb". ok is false for anything else.
func ParseHexColor(s string) (c color.RGBA, ok bool) {
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, false
	}
	var r, g, b uint32
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xff}, true
}

// SchemeForBackground combines ParseHexColor, Luminance and BadgeColorScheme.
// Unparseable colors such as "transparent" are treated as dark.
func SchemeForBackground(hex string) ColorScheme {
	c, ok := ParseHexColor(hex)
	if !ok {
		return BadgeColorScheme(0)
	}
	return BadgeColorScheme(Luminance(c.R, c.G, c.B))
}
