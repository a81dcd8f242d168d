package terminal

import "runtime"

// Figures is the set of glyphs prompts use for pointers, results and radios.
type Figures struct {
	ArrowUp      string
	ArrowDown    string
	ArrowLeft    string
	ArrowRight   string
	RadioOn      string
	RadioOff     string
	Tick         string
	Cross        string
	Ellipsis     string
	PointerSmall string
	Line         string
	Pointer      string
}

var (
	unicodeFigures = Figures{
		ArrowUp:      "↑",
		ArrowDown:    "↓",
		ArrowLeft:    "←",
		ArrowRight:   "→",
		RadioOn:      "◉",
		RadioOff:     "◯",
		Tick:         "✔",
		Cross:        "✖",
		Ellipsis:     "…",
		PointerSmall: "›",
		Line:         "─",
		Pointer:      "❯",
	}

	// Windows consoles lack most of the dingbats above.
	windowsFigures = Figures{
		ArrowUp:      "↑",
		ArrowDown:    "↓",
		ArrowLeft:    "←",
		ArrowRight:   "→",
		RadioOn:      "(*)",
		RadioOff:     "( )",
		Tick:         "√",
		Cross:        "×",
		Ellipsis:     "...",
		PointerSmall: "»",
		Line:         "─",
		Pointer:      ">",
	}
)

// DefaultFigures returns the glyph set for the running platform.
func DefaultFigures() Figures {
	return FiguresFor(runtime.GOOS)
}

// FiguresFor returns the glyph set for the given GOOS value.
func FiguresFor(goos string) Figures {
	if goos == "windows" {
		return windowsFigures
	}
	return unicodeFigures
}
