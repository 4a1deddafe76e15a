package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/glass/figures"
	"github.com/plus3/glass/session"
)

// StatsPanel shows the session counters, the spawn histogram and the
// scheduler timings.
type StatsPanel struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}

func NewStatsPanel(historyFrames int) *StatsPanel {
	return &StatsPanel{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
	}
}

func (ps *StatsPanel) Render(sched *session.Scheduler, deltaTime float32) {
	if !imgui.BeginV("Glass Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames

	s := sched.Session()
	stats := s.Stats()

	imgui.Text(fmt.Sprintf("Session: %s", s.ID))
	if s.GameOver() {
		imgui.Text("State: game over")
	} else {
		imgui.Text("State: playing")
	}
	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Pieces: %d spawned, %d frozen", stats.TotalSpawned(), stats.Frozen))
	imgui.Text(fmt.Sprintf("Rows cleared: %d", stats.RowsCleared))

	var avgFrameTime float32
	for _, ft := range ps.frameHistory {
		avgFrameTime += ft
	}
	avgFrameTime /= float32(ps.historyFrames)

	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms", avgFrameTime))
	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg

	if imgui.TreeNodeStr("Spawned Shapes") {
		if imgui.BeginTableV("ShapeTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("Shape")
			imgui.TableSetupColumn("Count")
			imgui.TableHeadersRow()

			for _, shape := range figures.Shapes {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(shape.String())
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", stats.SpawnCount(shape)))
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Systems") {
		if imgui.BeginTableV("SystemTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Runs")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableHeadersRow()

			for _, sys := range sched.GetStats().Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(fmt.Sprintf("%d", sys.ExecutionCount))
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	imgui.End()
}
