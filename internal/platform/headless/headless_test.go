package headless

import (
	"context"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/loop"
)

func TestParseScript(t *testing.T) {
	script, err := ParseScript("3:down, 7:left,7:pause,9:RESET")
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}

	tests := []struct {
		tick     int
		expected []core.Action
	}{
		{3, []core.Action{core.ActionDown}},
		{7, []core.Action{core.ActionLeft, core.ActionPause}},
		{9, []core.Action{core.ActionRestart}},
		{4, nil},
	}
	for _, tc := range tests {
		got := script[tc.tick]
		if len(got) != len(tc.expected) {
			t.Errorf("tick %d: %v, expected %v", tc.tick, got, tc.expected)
			continue
		}
		for i := range got {
			if got[i] != tc.expected[i] {
				t.Errorf("tick %d action %d: %s, expected %s", tc.tick, i, got[i], tc.expected[i])
			}
		}
	}

	if s := script.String(); s != "3:down,7:left,7:pause,9:restart" {
		t.Errorf("String() = %q", s)
	}
}

func TestParseScriptErrors(t *testing.T) {
	for _, in := range []string{"down", "0:down", "x:down", "3:jump"} {
		if _, err := ParseScript(in); err == nil {
			t.Errorf("ParseScript(%q) should fail", in)
		}
	}
	if s, err := ParseScript(""); err != nil || len(s) != 0 {
		t.Errorf("ParseScript(\"\") = %v, %v; expected empty script", s, err)
	}
}

func TestDriverQuitsAfterMaxTicks(t *testing.T) {
	d := New(core.NewBoard(4, 3), core.DefaultPalette(), nil, 2)

	for i := 1; i <= 2; i++ {
		for _, a := range d.PollInput() {
			if a == core.ActionQuit {
				t.Fatalf("quit on poll %d", i)
			}
		}
	}
	actions := d.PollInput()
	if len(actions) != 1 || actions[0] != core.ActionQuit {
		t.Errorf("poll 3 = %v, expected quit", actions)
	}
}

func TestDriverFrame(t *testing.T) {
	palette := core.DefaultPalette()
	d := New(core.NewBoard(4, 2), palette, nil, 0)

	if f := d.Frame(); f != "....\n....\n" {
		t.Errorf("initial Frame() = %q", f)
	}

	d.Clear(palette.Background)
	d.DrawCell(core.Cell{X: 0, Y: 0}, palette.Snake, palette.Border)
	d.DrawCell(core.Cell{X: 3, Y: 1}, palette.Food, palette.Border)
	d.DrawCell(core.Cell{X: 9, Y: 9}, palette.Food, palette.Border)

	if f := d.Frame(); f != "....\n....\n" {
		t.Errorf("Frame() changed before Present: %q", f)
	}
	d.Present()
	if f := d.Frame(); f != "o...\n...*\n" {
		t.Errorf("Frame() = %q", f)
	}
}

func TestSimulation(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 7
	g := snake.New()
	g.Reset(cfg)

	script, err := ParseScript("2:down,4:left")
	if err != nil {
		t.Fatal(err)
	}
	d := New(cfg.Board, cfg.Palette, script, 5)

	if err := loop.New(g, d).Run(context.Background()); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if d.Ticks() != 5 {
		t.Errorf("Ticks() = %d, expected 5", d.Ticks())
	}

	// right, down, down, left, left from (5,5)
	if g.Snake().Head() != (core.Cell{X: 4, Y: 7}) {
		t.Errorf("Head() = %v, expected (4,7)", g.Snake().Head())
	}

	rows := strings.Split(d.Frame(), "\n")
	if rows[7][4] != snakeGlyph {
		t.Errorf("head not drawn in frame:\n%s", d.Frame())
	}
	if strings.Count(d.Frame(), string(snakeGlyph)) != g.Snake().Len() {
		t.Errorf("frame shows %d snake cells, expected %d", strings.Count(d.Frame(), "o"), g.Snake().Len())
	}
	if !strings.Contains(d.Status(), "Length") {
		t.Errorf("Status() = %q", d.Status())
	}
}

func TestSimulationDeterministic(t *testing.T) {
	run := func() snake.Snapshot {
		cfg := core.DefaultConfig()
		cfg.Seed = 99
		g := snake.New()
		g.Reset(cfg)
		script, _ := ParseScript("5:down,12:left,20:up,31:right,40:down")
		if err := loop.New(g, New(cfg.Board, cfg.Palette, script, 200)).Run(context.Background()); err != nil {
			t.Fatal(err)
		}
		return g.Snapshot()
	}

	if a, b := run(), run(); !a.Equal(b) {
		t.Errorf("runs diverged:\n%+v\n%+v", a, b)
	}
}
