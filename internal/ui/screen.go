package ui

import "strings"

// Screen identifies one of the top-level widgets.
type Screen int

const (
	ScreenComments Screen = iota
	ScreenCounter
	ScreenHover
	ScreenNews
	ScreenSearch
)

// Screens lists all screens in tab order.
var Screens = []Screen{ScreenComments, ScreenCounter, ScreenHover, ScreenNews, ScreenSearch}

func (s Screen) String() string {
	switch s {
	case ScreenComments:
		return "Comments"
	case ScreenCounter:
		return "Counter"
	case ScreenHover:
		return "Hover"
	case ScreenNews:
		return "News"
	case ScreenSearch:
		return "Search"
	default:
		return "Unknown"
	}
}

// ParseScreen maps a case-insensitive screen name to a Screen.
func ParseScreen(name string) (Screen, bool) {
	for _, s := range Screens {
		if strings.EqualFold(s.String(), strings.TrimSpace(name)) {
			return s, true
		}
	}
	return ScreenNews, false
}

// next returns the screen after s in tab order, wrapping around.
func (s Screen) next() Screen {
	return Screens[(s.index()+1)%len(Screens)]
}

// prev returns the screen before s in tab order, wrapping around.
func (s Screen) prev() Screen {
	return Screens[(s.index()+len(Screens)-1)%len(Screens)]
}

func (s Screen) index() int {
	for i, o := range Screens {
		if o == s {
			return i
		}
	}
	return 0
}
