package cardtable

import (
	"strconv"
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{"steps": [
		{"action": "click", "x": 100, "y": 200},
		{"action": "wait", "frames": 5},
		{"action": "key", "key": "escape"},
		{"action": "drag", "fromX": 1, "fromY": 2, "toX": 3, "toY": 4, "frames": 3, "mods": ["shift"]},
		{"action": "screenshot", "label": "after-drag"}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[0].X != 100 || runner.steps[0].Y != 200 {
		t.Errorf("click = (%f, %f), want (100, 200)", runner.steps[0].X, runner.steps[0].Y)
	}
	if runner.steps[3].Mods[0] != "shift" {
		t.Errorf("drag mods = %v, want [shift]", runner.steps[3].Mods)
	}
	if runner.Done() {
		t.Error("fresh runner should not be done")
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"invalid json", `{`, "parse test script"},
		{"no steps", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`, "unknown action"},
		{"unknown key", `{"steps": [{"action": "key", "key": "f13"}]}`, "unknown key"},
		{"unknown modifier", `{"steps": [{"action": "click", "mods": ["hyper"]}]}`, "unknown modifier"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestRunnerStep_Wait(t *testing.T) {
	tb := newTestTable(t, nil)
	data := []byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "done"}
	]}`)
	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatal(err)
	}

	// Frame 1: execute wait (waitCount becomes 2).
	runner.step(tb)
	// Frames 2 and 3: countdown.
	runner.step(tb)
	runner.step(tb)
	if runner.Done() {
		t.Error("should not be done before the screenshot step")
	}

	// Frame 4: screenshot.
	runner.step(tb)
	reqs := tb.TakeScreenshotRequests()
	if len(reqs) != 1 || reqs[0] != "done" {
		t.Errorf("expected screenshot 'done', got %v", reqs)
	}

	// Frame 5: no steps left.
	runner.step(tb)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed")
	}
}

func TestRunnerWaitsForInputToDrain(t *testing.T) {
	tb := newTestTable(t, nil)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "click", "x": 5, "y": 5}]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(tb)
	if runner.Input().Pending() != 2 {
		t.Fatalf("expected 2 queued frames, got %d", runner.Input().Pending())
	}
	runner.step(tb)
	if runner.Done() {
		t.Error("runner should not be done while input is pending")
	}
	runner.Input().Advance()
	runner.Input().Advance()
	runner.step(tb)
	if !runner.Done() {
		t.Error("runner should be done once the queue has drained")
	}
}

func TestRunnerStep_Drag(t *testing.T) {
	tb := newTestTable(t, nil)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "drag", "fromX": 10, "fromY": 10, "toX": 200, "toY": 200, "frames": 4}]}`))
	if err != nil {
		t.Fatal(err)
	}
	runner.step(tb)
	if runner.Input().Pending() != 4 {
		t.Fatalf("expected 4 queued frames for drag, got %d", runner.Input().Pending())
	}
}

func TestRunnerDrivesTable(t *testing.T) {
	tb := newTestTable(t, []string{"2♣", "3♣"})
	d := tb.Deck()
	sx, sy := screenOf(tb, d, tb.Config().CardSize.X/2, tb.Config().CardSize.Y/2)

	script := `{"steps": [
		{"action": "click", "x": ` + ftoa(sx) + `, "y": ` + ftoa(sy) + `},
		{"action": "screenshot", "label": "drawn"}
	]}`
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	tb.SetTestRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		tb.Update(nil, frameDT)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if d.Remaining() != 1 {
		t.Errorf("deck remaining = %d, want 1 after one click", d.Remaining())
	}
	if tb.Registry().Len() != 3 {
		t.Errorf("objects = %d, want 3 after drawing", tb.Registry().Len())
	}
	reqs := tb.TakeScreenshotRequests()
	if len(reqs) != 1 || reqs[0] != "drawn" {
		t.Errorf("screenshots = %v, want [drawn]", reqs)
	}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
