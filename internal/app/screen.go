package app

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"assessctl/internal/console"
	"assessctl/internal/view"
)

// BannerWidth is the width of the application banner.
const BannerWidth = 69

var (
	primary     = lipgloss.Color("#4d9375")
	bannerStyle = lipgloss.NewStyle().Foreground(primary).Bold(true)
)

// Banner returns the three banner lines drawn at the top of every screen.
func Banner(heading, title string) []string {
	heading = " " + heading + " "
	left := max(0, (BannerWidth-ansi.StringWidth(heading))/2)
	right := max(0, BannerWidth-left-ansi.StringWidth(heading))
	return []string{
		strings.Repeat("=", left) + heading + strings.Repeat("=", right),
		"||" + view.Center(BannerWidth-4, title) + "||",
		strings.Repeat("=", BannerWidth),
	}
}

// Screen is a Terminal whose Clear redraws the banner, so every view
// starts below it.
type Screen struct {
	console.Terminal
	banner []string
}

// NewScreen wraps term with the default banner.
func NewScreen(term console.Terminal) *Screen {
	return &Screen{Terminal: term, banner: Banner("Welcome", "CONTINUES ASSESSMENT APP")}
}

func (s *Screen) Clear() {
	s.Terminal.Clear()
	for _, l := range s.banner {
		s.Terminal.WriteLine(bannerStyle.Render(l))
	}
	s.Terminal.WriteLine("")
}
