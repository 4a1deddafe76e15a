// Package debugui renders Dear ImGui diagnostics for a running session on
// top of an ebiten game.
package debugui

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/glass/session"
)

// Backend wraps the Ebiten-specific Dear ImGui backend. Call BeginFrame
// before running the scheduler, EndFrame after it, and Draw on top of the
// game screen.
type Backend struct {
	*ebitenbackend.EbitenBackend
}

// NewBackend creates the ebiten window through the ImGui backend.
func NewBackend(title string, width, height int) *Backend {
	b := ebitenbackend.NewEbitenBackend()
	b.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("") // Disable imgui.ini
	return &Backend{EbitenBackend: b}
}

// CapturesKeyboard reports whether ImGui is consuming keyboard input, in
// which case game keys should be ignored.
func CapturesKeyboard() bool {
	return imgui.CurrentIO().WantCaptureKeyboard()
}

// OverlaySystem renders the stats panel once per tick. Register it last so
// it reports the state the other systems left behind.
type OverlaySystem struct {
	Panel     *StatsPanel
	Scheduler *session.Scheduler
}

func (o *OverlaySystem) Execute(frame *session.Frame) {
	o.Panel.Render(o.Scheduler, float32(frame.DeltaTime))
}
