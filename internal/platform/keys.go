package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/pgr-skeleton/pkg/input"
)

// TranslatePrintable maps a GLFW key to the character it produces on a US
// layout, plus the control characters the application treats as keys.
func TranslatePrintable(key glfw.Key) (rune, bool) {
	switch key {
	case glfw.KeyEscape:
		return input.KeyEscape, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return input.KeyEnter, true
	case glfw.KeyTab:
		return input.KeyTab, true
	case glfw.KeyBackspace:
		return input.KeyBackspace, true
	}

	// GLFW numbers printable keys by their ASCII code
	if key >= glfw.KeySpace && key <= glfw.KeyGraveAccent {
		return rune(key), true
	}
	return 0, false
}

var specialKeys = map[glfw.Key]input.SpecialKey{
	glfw.KeyUp:       input.SpecialUp,
	glfw.KeyDown:     input.SpecialDown,
	glfw.KeyLeft:     input.SpecialLeft,
	glfw.KeyRight:    input.SpecialRight,
	glfw.KeyPageUp:   input.SpecialPageUp,
	glfw.KeyPageDown: input.SpecialPageDown,
	glfw.KeyHome:     input.SpecialHome,
	glfw.KeyEnd:      input.SpecialEnd,
	glfw.KeyInsert:   input.SpecialInsert,
	glfw.KeyF1:       input.SpecialF1,
	glfw.KeyF2:       input.SpecialF2,
	glfw.KeyF3:       input.SpecialF3,
	glfw.KeyF4:       input.SpecialF4,
	glfw.KeyF5:       input.SpecialF5,
	glfw.KeyF6:       input.SpecialF6,
	glfw.KeyF7:       input.SpecialF7,
	glfw.KeyF8:       input.SpecialF8,
	glfw.KeyF9:       input.SpecialF9,
	glfw.KeyF10:      input.SpecialF10,
	glfw.KeyF11:      input.SpecialF11,
	glfw.KeyF12:      input.SpecialF12,
}

// TranslateSpecial maps a GLFW key to a special key, or SpecialUnknown
func TranslateSpecial(key glfw.Key) input.SpecialKey {
	return specialKeys[key]
}
