package table

import (
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/kobzarvs/gridsel/internal/config"
)

// Styles are the resolved tcell styles the table draws with.
type Styles struct {
	Normal    tcell.Style
	Header    tcell.Style
	Selected  tcell.Style
	Status    tcell.Style
	Indicator tcell.Style
}

func NewStyles(theme config.Theme) Styles {
	fg := parseColor(theme.Foreground, tcell.ColorWhite)
	bg := parseColor(theme.Background, tcell.ColorBlack)
	headerFg := parseColor(theme.HeaderForeground, tcell.ColorGray)
	headerBg := parseColor(theme.HeaderBackground, bg)
	selFg := parseColor(theme.SelectionForeground, bg)
	selBg := parseColor(theme.SelectionBackground, tcell.ColorYellow)
	statusFg := parseColor(theme.StatuslineForeground, fg)
	statusBg := parseColor(theme.StatuslineBackground, tcell.ColorGray)
	indicator := parseColor(theme.ModifierIndicator, tcell.ColorBlue)

	base := tcell.StyleDefault
	return Styles{
		Normal:    base.Foreground(fg).Background(bg),
		Header:    base.Foreground(headerFg).Background(headerBg),
		Selected:  base.Foreground(selFg).Background(selBg),
		Status:    base.Foreground(statusFg).Background(statusBg),
		Indicator: base.Foreground(indicator).Background(statusBg).Bold(true),
	}
}

func parseColor(name string, fallback tcell.Color) tcell.Color {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if strings.HasPrefix(name, "#") && len(name) == 7 {
		r, err1 := strconv.ParseInt(name[1:3], 16, 32)
		g, err2 := strconv.ParseInt(name[3:5], 16, 32)
		b, err3 := strconv.ParseInt(name[5:7], 16, 32)
		if err1 == nil && err2 == nil && err3 == nil {
			return tcell.NewRGBColor(int32(r), int32(g), int32(b))
		}
		return fallback
	}
	name = strings.ToLower(name)
	if name == "default" {
		return tcell.ColorDefault
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
