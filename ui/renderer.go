// Package ui renders the menu, level-select and game screens with raylib.
// It only reads core state after a tick has completed; it never mutates it.
package ui

import (
	"fmt"
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"pacman-search/config"
	"pacman-search/game"
	"pacman-search/maze"
)

const borderPadding = 10

// ghostColors fixes the palette per ghost ID; unknown IDs render white.
var ghostColors = map[string]rl.Color{
	"blue":   rl.SkyBlue,
	"pink":   rl.Pink,
	"orange": rl.Orange,
	"red":    rl.Red,
}

// pathOffsets keep concurrent path overlays visually separable.
var pathOffsets = map[string]int32{
	"blue":   -2,
	"pink":   2,
	"orange": -4,
	"red":    4,
}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	statsPanel   int32
	cellSize     int32
	offsetX      int32
	offsetY      int32
}

func NewRenderer() *Renderer {
	r := &Renderer{}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.statsPanel = r.screenWidth / 4
}

// DrawMenu draws the title screen.
func (r *Renderer) DrawMenu() {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawCentered("Pac-Man Search Algorithms", 100, 36, rl.Yellow)
	r.drawCentered("Press SPACE to Start", 300, 24, rl.White)
	r.drawCentered("Press Q to Quit", 350, 24, rl.White)
	r.drawCentered("Ghost pathfinding: BFS / DFS / UCS / A*", 500, 24, rl.Gray)

	rl.EndDrawing()
}

// DrawLevelSelect draws the level list with the current selection
// highlighted.
func (r *Renderer) DrawLevelSelect(levels []config.Level, selected int) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	r.drawCentered("Select Level", 50, 36, rl.Yellow)
	for i, level := range levels {
		color := rl.White
		if i == selected {
			color = rl.Yellow
		}
		r.drawCentered(fmt.Sprintf("%d. %s", level.Number, level.Name), int32(120+i*60), 24, color)
	}
	r.drawCentered("UP/DOWN to select, ENTER to start, ESC to go back", r.screenHeight-50, 20, rl.White)

	rl.EndDrawing()
}

// DrawGame draws the maze, food, Pac-Man, ghosts and the optional path and
// stats overlays. animTime drives Pac-Man's mouth.
func (r *Renderer) DrawGame(s *game.Session, showPath, showStats bool, animTime float32) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	graph := s.Graph()
	r.layoutMaze(graph)

	r.drawMaze(s, graph)
	if showPath {
		r.drawPaths(s)
	}
	pacman, dir := s.Pacman()
	r.drawPacman(pacman, dir, animTime)
	for _, ghost := range s.Coordinator().Ghosts() {
		r.drawGhost(ghost.Position(), ghostColor(ghost.ID))
	}

	rl.DrawText(fmt.Sprintf("Level %d: %s", s.Level.Number, s.Level.Name), 10, 10, 24, rl.White)
	toggle := "Show"
	if showPath {
		toggle = "Hide"
	}
	rl.DrawText(fmt.Sprintf("P: %s Path", toggle), 10, 40, 20, rl.White)
	toggle = "Show"
	if showStats {
		toggle = "Hide"
	}
	rl.DrawText(fmt.Sprintf("S: %s Stats", toggle), 10, 70, 20, rl.White)
	back := "ESC: Back to Menu"
	rl.DrawText(back, r.screenWidth-rl.MeasureText(back, 20)-10, 10, 20, rl.White)
	if s.Level.UserControlled {
		rl.DrawText("Use ARROW keys to move Pac-Man", 10, r.screenHeight-30, 20, rl.White)
	}

	if showStats {
		r.drawStatsPanel(s)
	}
	if s.LevelComplete() {
		r.drawLevelComplete()
	}

	rl.EndDrawing()
}

func (r *Renderer) layoutMaze(graph *maze.Graph) {
	availableWidth := r.screenWidth - r.statsPanel - borderPadding*2
	availableHeight := r.screenHeight - borderPadding*2
	cellW := availableWidth / int32(graph.Cols())
	cellH := availableHeight / int32(graph.Rows())
	r.cellSize = min(cellW, cellH)
	r.offsetX = (r.screenWidth - r.statsPanel - r.cellSize*int32(graph.Cols())) / 2
	r.offsetY = (r.screenHeight - r.cellSize*int32(graph.Rows())) / 2
}

func (r *Renderer) cellOrigin(c maze.Cell) (int32, int32) {
	return r.offsetX + int32(c.Col)*r.cellSize, r.offsetY + int32(c.Row)*r.cellSize
}

func (r *Renderer) cellCenter(c maze.Cell) (int32, int32) {
	x, y := r.cellOrigin(c)
	return x + r.cellSize/2, y + r.cellSize/2
}

func (r *Renderer) drawMaze(s *game.Session, graph *maze.Graph) {
	for row := 0; row < graph.Rows(); row++ {
		for col := 0; col < graph.Cols(); col++ {
			cell := maze.Cell{Row: row, Col: col}
			walkable, err := graph.IsWalkable(cell)
			if err != nil {
				continue
			}
			if !walkable {
				x, y := r.cellOrigin(cell)
				rl.DrawRectangle(x, y, r.cellSize, r.cellSize, rl.DarkBlue)
				continue
			}
			if s.HasFood(cell) {
				x, y := r.cellCenter(cell)
				rl.DrawCircle(x, y, 3, rl.White)
			}
		}
	}
}

func (r *Renderer) drawPaths(s *game.Session) {
	for _, ghost := range s.Coordinator().Ghosts() {
		path := ghost.Executor().Path()
		if len(path) < 2 {
			continue
		}
		color := ghostColor(ghost.ID)
		offset := pathOffsets[ghost.ID]
		for i := 0; i < len(path)-1; i++ {
			x1, y1 := r.cellCenter(path[i])
			x2, y2 := r.cellCenter(path[i+1])
			rl.DrawLine(x1+offset, y1+offset, x2+offset, y2+offset, color)
			rl.DrawCircle(x1+offset, y1+offset, 3, color)
		}
		x, y := r.cellCenter(path[len(path)-1])
		rl.DrawCircle(x+offset, y+offset, 3, color)
	}
}

func (r *Renderer) drawPacman(cell maze.Cell, dir game.Direction, animTime float32) {
	x, y := r.cellCenter(cell)
	radius := float32(r.cellSize/2 - 2)

	var heading float32
	switch dir {
	case game.DirRight:
		heading = 0
	case game.DirDown:
		heading = 90
	case game.DirLeft:
		heading = 180
	case game.DirUp:
		heading = 270
	}
	mouth := 45 * float32(math.Abs(math.Sin(float64(animTime))))
	center := rl.Vector2{X: float32(x), Y: float32(y)}
	rl.DrawCircleSector(center, radius, heading+mouth, heading+360-mouth, 32, rl.Yellow)
}

func (r *Renderer) drawGhost(cell maze.Cell, color rl.Color) {
	x, y := r.cellCenter(cell)
	radius := r.cellSize/2 - 2
	rl.DrawCircle(x, y, float32(radius), color)
	rl.DrawRectangle(x-radius, y, radius*2, radius, color)

	eyeOffset := r.cellSize / 6
	rl.DrawCircle(x-eyeOffset, y-eyeOffset, 4, rl.White)
	rl.DrawCircle(x+eyeOffset, y-eyeOffset, 4, rl.White)
	rl.DrawCircle(x-eyeOffset, y-eyeOffset, 2, rl.Black)
	rl.DrawCircle(x+eyeOffset, y-eyeOffset, 2, rl.Black)
}

func (r *Renderer) drawStatsPanel(s *game.Session) {
	statsX := r.screenWidth - r.statsPanel + 5
	statsY := int32(10)
	fontSize := int32(18)
	lineHeight := fontSize + 6

	rl.DrawRectangle(r.screenWidth-r.statsPanel, 0, r.statsPanel, r.screenHeight, rl.DarkGray)
	rl.DrawText("Search Statistics", statsX, statsY, fontSize, rl.White)
	statsY += lineHeight * 2

	diagnostics := s.Coordinator().Diagnostics()
	ids := make([]string, 0, len(diagnostics))
	for id := range diagnostics {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		d := diagnostics[id]
		color := ghostColor(id)
		rl.DrawText(fmt.Sprintf("%s (%s)", id, d.Strategy), statsX, statsY, fontSize, color)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("  expanded: %d", d.LastStats.Expanded), statsX, statsY, fontSize, color)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("  time: %s", d.LastStats.Duration), statsX, statsY, fontSize, color)
		statsY += lineHeight
		rl.DrawText(fmt.Sprintf("  path left: %d", d.PathLeft), statsX, statsY, fontSize, color)
		statsY += lineHeight
		if d.Err != nil {
			rl.DrawText("  search failed", statsX, statsY, fontSize, rl.Red)
			statsY += lineHeight
		}
		statsY += lineHeight / 2
	}

	rl.DrawText(fmt.Sprintf("Food left: %d", s.FoodLeft()), statsX, r.screenHeight-lineHeight*2, fontSize, rl.White)
}

func (r *Renderer) drawLevelComplete() {
	rl.DrawRectangle(0, 0, r.screenWidth, r.screenHeight, rl.Color{R: 0, G: 0, B: 0, A: 150})
	r.drawCentered("Level Complete!", r.screenHeight/2-30, 36, rl.Yellow)
	r.drawCentered("Press ENTER to continue", r.screenHeight/2+30, 24, rl.White)
}

func (r *Renderer) drawCentered(text string, y, size int32, color rl.Color) {
	rl.DrawText(text, (r.screenWidth-rl.MeasureText(text, size))/2, y, size, color)
}

func ghostColor(id string) rl.Color {
	if color, ok := ghostColors[id]; ok {
		return color
	}
	return rl.White
}

func min(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}
