package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/glass/debugui"
	"github.com/plus3/glass/internal/config"
	"github.com/plus3/glass/session"
)

var (
	backgroundColor = color.RGBA{33, 55, 122, 255}
	borderColor     = color.RGBA{135, 55, 5, 255}
	settledColor    = color.RGBA{133, 123, 55, 255}
	activeColor     = color.RGBA{230, 200, 90, 255}
	gridLineColor   = color.RGBA{20, 30, 70, 255}
)

var keyActions = []struct {
	key    ebiten.Key
	action session.Action
}{
	{ebiten.KeyArrowLeft, session.MoveLeft},
	{ebiten.KeyArrowRight, session.MoveRight},
	{ebiten.KeyArrowDown, session.SoftDrop},
	{ebiten.KeyArrowUp, session.Rotate},
	{ebiten.KeySpace, session.HardDrop},
}

// Game implements ebiten.Game. It only pushes commands and reads the glass
// back for drawing; every rule lives in the session systems.
type Game struct {
	cfg       *config.Config
	session   *session.Session
	scheduler *session.Scheduler
	imgui     *debugui.Backend
}

func (g *Game) screenSize() (int, int) {
	cell := g.cfg.Window.CellSize
	return g.cfg.Glass.Width*cell + 2*margin + panelWidth, g.cfg.Glass.Height*cell + 2*margin
}

func (g *Game) Update() error {
	if g.imgui != nil {
		g.imgui.BeginFrame()
	}

	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if g.imgui == nil || !debugui.CapturesKeyboard() {
		g.handleInput()
	}

	g.scheduler.Once(1.0 / float64(ebiten.TPS()))

	if g.imgui != nil {
		g.imgui.EndFrame()
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
		return
	}
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			g.session.Commands().Push(ka.action)
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	gl := g.session.Glass()
	cell := float32(g.cfg.Window.CellSize)
	x0 := float32(margin)
	y0 := float32(margin)

	for row := 0; row < gl.Height(); row++ {
		for col := 0; col < gl.Width(); col++ {
			x := x0 + float32(col)*cell
			y := y0 + float32(row)*cell
			if gl.Filled(row, col) {
				vector.DrawFilledRect(screen, x, y, cell, cell, settledColor, false)
			}
			vector.StrokeRect(screen, x, y, cell, cell, 1, gridLineColor, false)
		}
	}

	if blocks, ok := gl.ActiveBlocks(); ok {
		for _, b := range blocks {
			x := x0 + float32(b.Col)*cell
			y := y0 + float32(b.Row)*cell
			vector.DrawFilledRect(screen, x, y, cell, cell, activeColor, false)
			vector.StrokeRect(screen, x, y, cell, cell, 1, borderColor, false)
		}
	}

	vector.StrokeRect(screen, x0-2, y0-2, float32(gl.Width())*cell+4, float32(gl.Height())*cell+4, 2, borderColor, false)

	stats := g.session.Stats()
	textX := margin + gl.Width()*g.cfg.Window.CellSize + 16
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ROWS %d\nPIECES %d", stats.RowsCleared, stats.TotalSpawned()), textX, margin)
	if g.session.GameOver() {
		ebitenutil.DebugPrintAt(screen, "GAME OVER\nPress R to restart", textX, margin+48)
	}

	if g.imgui != nil {
		g.imgui.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.imgui != nil {
		g.imgui.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.screenSize()
}
