package days

import (
	"testing"

	"github.com/chazu/intcode/geom"
	"github.com/chazu/intcode/ocr"
	"github.com/chazu/intcode/vm"
)

func TestPaintHullScriptedRobot(t *testing.T) {
	// The worked example: seven paint/turn pairs touching six panels.
	script := "104,1,104,0," +
		"104,0,104,0," +
		"104,1,104,0," +
		"104,1,104,0," +
		"104,0,104,1," +
		"104,1,104,0," +
		"104,1,104,0,99"

	panels := paintHull(vm.MustParse(script), colourBlack)
	if len(panels) != 6 {
		t.Fatalf("painted %d panels, want 6", len(panels))
	}

	white := []geom.Vec{{X: -1, Y: -1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: 1, Y: 1}}
	for _, pos := range white {
		if panels[pos] != colourWhite {
			t.Errorf("panel %v = %d, want white", pos, panels[pos])
		}
	}
	if panels[geom.Vec{X: 0, Y: 0}] != colourBlack {
		t.Errorf("origin repainted to %d, want black", panels[geom.Vec{X: 0, Y: 0}])
	}
}

func TestDirectionTurns(t *testing.T) {
	tests := []struct {
		from direction
		to   int64
		want direction
	}{
		{dirUp, 0, dirLeft},
		{dirUp, 1, dirRight},
		{dirLeft, 0, dirDown},
		{dirRight, 1, dirDown},
		{dirDown, 0, dirRight},
		{dirDown, 1, dirLeft},
	}
	for _, tt := range tests {
		if got := tt.from.turn(tt.to); got != tt.want {
			t.Errorf("%d.turn(%d) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestRenderPanelsRecognizable(t *testing.T) {
	// Paint an H and make sure the rendering survives recognition.
	rows := []string{"#..#", "#..#", "####", "#..#", "#..#", "#..#"}
	panels := map[geom.Vec]int64{}
	for r, row := range rows {
		for x := 0; x < len(row); x++ {
			colour := colourBlack
			if row[x] == '#' {
				colour = colourWhite
			}
			panels[geom.Vec{X: int64(x), Y: int64(len(rows) - 1 - r)}] = colour
		}
	}

	rendered := renderPanels(panels)
	want := "@  @\n@  @\n@@@@\n@  @\n@  @\n@  @"
	if rendered != want {
		t.Errorf("renderPanels = %q, want %q", rendered, want)
	}
	if got := ocr.RecognizeRow(rendered); got != "H" {
		t.Errorf("RecognizeRow = %q, want %q", got, "H")
	}
}
