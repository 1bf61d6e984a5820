package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/redkatdev/hovercat/internal/core"
	"github.com/redkatdev/hovercat/internal/game"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:      lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			startColor := cell.Color

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

const (
	pipeChar   = '█'
	groundChar = '▔'
)

// catOpen and catClosed are the two player sprites: eyes open in flight,
// eyes closed right after a flap and after a crash.
var catOpen = []string{`/\_/\`, `(o.o)`}
var catClosed = []string{`/\_/\`, `(-.-)`}

// renderFrame draws the full simulation frame into the screen buffer.
// The virtual play field is projected onto the terminal cell grid, so
// the game looks the same at any terminal size.
func renderFrame(dst *core.Screen, s *game.Session) {
	dst.Clear()

	cfg := s.Config()
	scaleX := float64(dst.Width()) / cfg.Field.Width
	scaleY := float64(dst.Height()) / cfg.Field.Height

	drawGround(dst, s.ScrollOffset()*scaleX)

	for _, ob := range s.Obstacles() {
		drawPipe(dst, ob, s, scaleX, scaleY)
	}

	drawPlayer(dst, s, scaleX, scaleY)
	drawHUD(dst, s)
	drawOverlay(dst, s)
}

// drawGround renders the scrolling bottom edge. The dash pattern shifts
// with the scroll offset so forward motion reads even with no pipes on
// screen.
func drawGround(dst *core.Screen, offset float64) {
	y := dst.Height() - 1
	shift := int(offset) % 4
	for x := 0; x < dst.Width(); x++ {
		if (x+shift)%4 == 0 {
			dst.SetCell(x, y, '╌', core.ColorGray)
		} else {
			dst.SetCell(x, y, groundChar, core.ColorGray)
		}
	}
}

func drawPipe(dst *core.Screen, ob game.Obstacle, s *game.Session, scaleX, scaleY float64) {
	x0 := int(ob.X * scaleX)
	x1 := int((ob.X + s.ObstacleWidth()) * scaleX)
	gapTop := int((ob.GapCenter - s.GapHeight()/2) * scaleY)
	gapBottom := int((ob.GapCenter + s.GapHeight()/2) * scaleY)
	groundY := dst.Height() - 1

	for x := x0; x < x1; x++ {
		dst.DrawVLineColor(x, 0, gapTop, pipeChar, core.ColorGreen)
		dst.DrawVLineColor(x, gapBottom, groundY-gapBottom, pipeChar, core.ColorGreen)
	}
}

func drawPlayer(dst *core.Screen, s *game.Session, scaleX, scaleY float64) {
	sprite := catOpen
	if s.EyesClosed() {
		sprite = catClosed
	}

	cx := int(s.PlayerX() * scaleX)
	cy := int(s.PlayerY() * scaleY)
	for dy, row := range sprite {
		y := cy - len(sprite)/2 + dy
		x := cx - len(row)/2
		dst.DrawTextColor(x, y, row, core.ColorBrightYellow)
	}
}

func drawHUD(dst *core.Screen, s *game.Session) {
	hud := fmt.Sprintf(" Score: %d  Best: %d  Speed: %.0f ", s.Score(), s.HighScore(), s.Speed())
	dst.DrawTextColor(2, 0, hud, core.ColorBrightWhite)

	if s.MusicEnabled() {
		dst.DrawTextColor(dst.Width()-4, 0, "♪", core.ColorCyan)
	}
}

func drawOverlay(dst *core.Screen, s *game.Session) {
	switch s.State() {
	case game.StateIntro:
		drawCenteredMessage(dst, "H O V E R C A T", "Press Space to start  |  M music  |  Q quit")
	case game.StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case game.StateUnfocused:
		drawCenteredMessage(dst, "PAUSED", "Focus the window to resume")
	case game.StateExitConfirm:
		drawCenteredMessage(dst, "QUIT?", "Enter/Y to quit  |  N to keep playing")
	case game.StateGameOver:
		sub := fmt.Sprintf("Score: %d  |  Best: %d", s.Score(), s.HighScore())
		if s.LockoutRemaining() <= 0 {
			sub += "  |  Press Enter to restart"
		}
		drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// drawCenteredMessage renders a boxed two-line message in the middle of
// the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	width := len(subtitle) + 6
	if len(title)+6 > width {
		width = len(title) + 6
	}
	if width > dst.Width() {
		width = dst.Width()
	}

	boxH := 5
	box := core.Rect{
		X: (dst.Width() - width) / 2,
		Y: dst.Height()/2 - boxH/2,
		W: width,
		H: boxH,
	}
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, title)
	dst.DrawTextCentered(box.Y+3, subtitle)
}
