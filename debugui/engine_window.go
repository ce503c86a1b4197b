package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/ledtris/game"
	"github.com/plus3/ledtris/loop"
)

func renderEngineWindow(engine Engine, timer *loop.DropTimer) {
	snap := engine.Snapshot()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 520), imgui.CondOnce)

	if !imgui.BeginV("Engine", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	switch snap.Status {
	case game.StatusRunning:
		imgui.TextColored(imgui.NewVec4(0.0, 1.0, 0.0, 1.0), "RUNNING")
	case game.StatusPaused:
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), "PAUSED")
	case game.StatusGameOver:
		imgui.TextColored(imgui.NewVec4(1.0, 0.3, 0.3, 1.0), "GAME OVER")
	default:
		imgui.Text("IDLE")
	}

	if imgui.Button("Start") {
		engine.Start()
	}
	imgui.SameLine()
	if imgui.Button("Pause") {
		engine.TogglePause()
	}
	imgui.SameLine()
	if imgui.Button("Reset") {
		engine.Reset()
	}
	imgui.SameLine()
	if imgui.Button("Tick") {
		engine.Tick()
	}

	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d (best %d)", snap.Score, snap.HighScore))
	imgui.Text(fmt.Sprintf("Level: %d  Lines: %d", snap.Level, snap.Lines))
	imgui.Text(fmt.Sprintf("Drop interval: %s", snap.DropInterval))
	if snap.NewRecord {
		imgui.TextColored(imgui.NewVec4(1.0, 0.85, 0.2, 1.0), "New record")
	}

	if timer != nil {
		imgui.Separator()
		imgui.Text(fmt.Sprintf("Timer: running=%t elapsed=%s", timer.Running(), timer.Elapsed()))
		imgui.Text(fmt.Sprintf("Restarts: %d  Fired: %d", timer.Restarts(), timer.Fired()))
	}

	imgui.Separator()
	imgui.Text("Current: " + describePiece(snap.Current))
	imgui.Text("Next:    " + describePiece(snap.Next))

	if imgui.TreeNodeStr("Board") {
		for _, line := range boardLines(snap) {
			imgui.Text(line)
		}
		imgui.TreePop()
	}

	imgui.End()
}

func describePiece(p *game.Piece) string {
	if p == nil {
		return "-"
	}
	return fmt.Sprintf("%s @ (%d,%d) %dx%d", p.Variant, p.Col, p.Row, p.Width(), p.Height())
}

// boardLines renders the locked cells as '#' and the current piece as '@'.
func boardLines(snap game.Snapshot) []string {
	grid := make([][]byte, len(snap.Rows))
	for r, row := range snap.Rows {
		grid[r] = make([]byte, len(row))
		for c, cell := range row {
			if cell.Filled {
				grid[r][c] = '#'
			} else {
				grid[r][c] = '.'
			}
		}
	}

	if snap.Current != nil {
		for c, r := range snap.Current.Cells() {
			if r < 0 || r >= len(grid) || c < 0 || c >= len(grid[r]) {
				continue
			}
			grid[r][c] = '@'
		}
	}

	lines := make([]string, len(grid))
	for i, row := range grid {
		lines[i] = string(row)
	}
	return lines
}

func renderSpawnWindow(stats *game.SpawnStats) {
	imgui.SetNextWindowPosV(imgui.NewVec2(280, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(260, 190), imgui.CondOnce)

	if !imgui.BeginV("Spawns", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	imgui.Text(fmt.Sprintf("Pieces this game: %d", stats.Total()))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SpawnTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Variant")
		imgui.TableSetupColumn("Count")
		imgui.TableSetupColumn("Share")
		imgui.TableHeadersRow()

		for _, row := range spawnRows(stats) {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(row[0])
			imgui.TableNextColumn()
			imgui.Text(row[1])
			imgui.TableNextColumn()
			imgui.Text(row[2])
		}

		imgui.EndTable()
	}

	imgui.End()
}

func spawnRows(stats *game.SpawnStats) [][3]string {
	variants := game.Variants()
	rows := make([][3]string, 0, len(variants))
	for _, v := range variants {
		rows = append(rows, [3]string{
			strings.ToUpper(v.ID.String()[:1]) + v.ID.String()[1:],
			fmt.Sprintf("%d", stats.Count(v.ID)),
			fmt.Sprintf("%.0f%%", stats.Share(v.ID)*100),
		})
	}
	return rows
}
