package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/custodia-labs/fraction/internal/adapters/driving/tui/styles"
)

// Colour modes accepted by --color.
const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

var colorMode = colorAuto

// useColor decides whether output written to w is styled.
// auto colours only terminals and honours NO_COLOR.
func useColor(w io.Writer, mode string) (bool, error) {
	switch mode {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && term.IsTerminal(int(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid --color %q: use auto, always or never", mode)
	}
}

// newStyles returns styles bound to w with the colour profile chosen by mode.
func newStyles(w io.Writer, mode string) (*styles.Styles, error) {
	color, err := useColor(w, mode)
	if err != nil {
		return nil, err
	}

	r := lipgloss.NewRenderer(w)
	if color {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles.NewStylesWithRenderer(styles.DefaultTheme(), r), nil
}
