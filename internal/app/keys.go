package app

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// keyString names a key event the way keymap entries are written:
// "q", "space", "esc", "ctrl+c", "cmd+a".
func keyString(ev *tcell.EventKey) string {
	switch ev.Key() {
	case tcell.KeyEscape:
		return "esc"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyTab:
		return "tab"
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return "backspace"
	case tcell.KeyDelete:
		return "del"
	case tcell.KeyRune:
		r := ev.Rune()
		name := string(r)
		if r == ' ' {
			name = "space"
		}
		if ev.Modifiers()&tcell.ModMeta != 0 {
			return "cmd+" + strings.ToLower(name)
		}
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return "alt+" + name
		}
		return name
	}
	if ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ {
		return "ctrl+" + string(rune('a'+int(ev.Key()-tcell.KeyCtrlA)))
	}
	if ev.Key() == tcell.KeyCtrlSpace {
		return "ctrl+space"
	}
	return strings.ToLower(tcell.KeyNames[ev.Key()])
}
