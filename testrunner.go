package cardtable

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string   `json:"action"`
	Label  string   `json:"label,omitempty"`
	X      float64  `json:"x,omitempty"`
	Y      float64  `json:"y,omitempty"`
	FromX  float64  `json:"fromX,omitempty"`
	FromY  float64  `json:"fromY,omitempty"`
	ToX    float64  `json:"toX,omitempty"`
	ToY    float64  `json:"toY,omitempty"`
	Delta  float64  `json:"delta,omitempty"`
	Key    string   `json:"key,omitempty"`
	Mods   []string `json:"mods,omitempty"`
	Frames int      `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var stepKeys = map[string]Key{
	"escape": KeyEscape,
	"f12":    KeyF12,
}

var stepMods = map[string]KeyModifiers{
	"shift": ModShift,
	"ctrl":  ModCtrl,
	"alt":   ModAlt,
	"meta":  ModMeta,
}

// TestRunner feeds scripted input and screenshot requests to a Table frame by
// frame. Attach it with Table.SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	input     *SyntheticInput
}

// LoadTestScript parses a JSON test script. Supported actions are press,
// move, hover, release, click, drag, wheel, key, wait, and screenshot.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press", "move", "hover", "release", "click", "drag", "wheel", "wait", "screenshot":
		case "key":
			if _, ok := stepKeys[st.Key]; !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown key %q", i, st.Key)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
		for _, m := range st.Mods {
			if _, ok := stepMods[m]; !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown modifier %q", i, m)
			}
		}
	}
	return &TestRunner{steps: script.Steps, input: NewSyntheticInput()}, nil
}

// Done reports whether all steps have run and their input has drained.
func (r *TestRunner) Done() bool {
	return r.done
}

// Input returns the synthetic input the runner drives.
func (r *TestRunner) Input() *SyntheticInput {
	return r.input
}

// step advances the runner by one frame. Called from Table.Update.
func (r *TestRunner) step(t *Table) {
	if r.done {
		return
	}
	// Wait for queued input to drain before advancing.
	if r.input.Pending() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	var mods KeyModifiers
	for _, m := range st.Mods {
		mods |= stepMods[m]
	}
	r.input.SetModifiers(mods)

	switch st.Action {
	case "screenshot":
		t.Screenshot(st.Label)
	case "press":
		r.input.Press(st.X, st.Y)
	case "move":
		r.input.Move(st.X, st.Y)
	case "hover":
		r.input.Hover(st.X, st.Y)
	case "release":
		r.input.Release(st.X, st.Y)
	case "click":
		r.input.Click(st.X, st.Y)
	case "drag":
		r.input.Drag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wheel":
		r.input.Wheel(st.X, st.Y, st.Delta)
	case "key":
		r.input.Key(stepKeys[st.Key])
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}
}
