package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocket-arcade/internal/geom"
	"github.com/vovakirdan/rocket-arcade/internal/rocket"
)

// colorStyles maps Color to lipgloss styles.
var colorStyles = map[Color]lipgloss.Style{
	ColorDefault: lipgloss.NewStyle(),
	ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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
				style = colorStyles[ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

// projectX maps a world x coordinate onto a screen column.
func projectX(s *Screen, arena geom.Size, wx float64) int {
	if arena.Width <= 0 {
		return 0
	}
	x := int(wx / arena.Width * float64(s.Width()))
	if x >= s.Width() {
		x = s.Width() - 1
	}
	if x < 0 {
		x = 0
	}
	return x
}

// projectY maps a world y coordinate onto a screen row below the HUD.
func projectY(s *Screen, arena geom.Size, wy float64) int {
	rows := s.Height() - hudRows
	if arena.Height <= 0 || rows <= 0 {
		return hudRows
	}
	y := int(wy/arena.Height*float64(rows)) + hudRows
	if y >= s.Height() {
		y = s.Height() - 1
	}
	if y < hudRows {
		y = hudRows
	}
	return y
}

// rocketGlyph picks the ship rune for the current facing direction.
func rocketGlyph(facing geom.Vector) rune {
	if abs(facing.Dx) >= abs(facing.Dy) {
		if facing.Dx < 0 {
			return '◀'
		}
		return '▶'
	}
	if facing.Dy < 0 {
		return '▲'
	}
	return '▼'
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// DrawFrame renders the world and HUD into the screen buffer.
func DrawFrame(s *Screen, gs *rocket.GameState, keys GameKeyMap, highScore int, flash string) {
	s.Clear()

	arena := gs.ArenaSize

	for _, p := range gs.Particles {
		s.SetCell(projectX(s, arena, p.Pos.X), projectY(s, arena, p.Pos.Y), '·', ColorGray)
	}
	for _, b := range gs.Bullets {
		s.SetCell(projectX(s, arena, b.Pos.X), projectY(s, arena, b.Pos.Y), '•', ColorYellow)
	}
	for _, e := range gs.Enemies {
		s.SetCell(projectX(s, arena, e.Pos.X), projectY(s, arena, e.Pos.Y), '◆', ColorRed)
	}
	if !gs.GameOver() {
		s.SetCell(
			projectX(s, arena, gs.Rocket.Pos.X),
			projectY(s, arena, gs.Rocket.Pos.Y),
			rocketGlyph(gs.Rocket.Facing),
			ColorCyan,
		)
	}

	drawHUD(s, gs, highScore, flash)

	if gs.GameOver() {
		drawGameOver(s, gs, keys)
	}
}

// drawHUD renders the score line across the top row.
func drawHUD(s *Screen, gs *rocket.GameState, highScore int, flash string) {
	s.DrawHLine(0, 0, s.Width(), ' ', ColorDefault)
	s.DrawText(1, 0, fmt.Sprintf("SCORE %d", gs.Score), ColorWhite)

	if highScore > 0 {
		hi := fmt.Sprintf("BEST %d", highScore)
		s.DrawText(s.Width()-len(hi)-1, 0, hi, ColorGray)
	}

	if flash != "" {
		s.DrawTextCentered(0, flash, ColorYellow)
	}
}

// drawGameOver renders the terminal message box over the playfield, with
// the key hints taken from the platform bindings.
func drawGameOver(s *Screen, gs *rocket.GameState, keys GameKeyMap) {
	restart, quit := keys.Restart.Help(), keys.Quit.Help()
	lines := []string{
		gs.Message,
		fmt.Sprintf("final score %d", gs.Score),
		fmt.Sprintf("press %s to %s, %s to %s", restart.Key, restart.Desc, quit.Key, quit.Desc),
	}

	w := 0
	for _, l := range lines {
		if len(l) > w {
			w = len(l)
		}
	}
	w += 4
	h := len(lines) + 2
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	for j := y; j < y+h; j++ {
		s.DrawHLine(x, j, w, ' ', ColorDefault)
	}
	s.DrawBox(x, y, w, h, ColorRed)
	for i, l := range lines {
		s.DrawTextCentered(y+1+i, l, ColorWhite)
	}
}
