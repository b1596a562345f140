package terminal

import (
	"image/color"
	"strings"
	"testing"

	cfg "github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/runner"
	"github.com/automoto/buildyguy/shared/gamemath"
	"github.com/gdamore/tcell/v2"
)

func TestCells(t *testing.T) {
	tests := []struct {
		name           string
		r              gamemath.Rect
		x0, y0, x1, y1 int
		ok             bool
	}{
		{"aligned", gamemath.NewRect(2, 3, 4, 2), 2, 3, 5, 4, true},
		{"thin platform", gamemath.NewRect(1.2, 5.6, 3, 0.3), 1, 5, 4, 5, true},
		{"clipped", gamemath.NewRect(-3, -1, 5, 3), 0, 0, 1, 1, true},
		{"right of grid", gamemath.NewRect(12, 1, 2, 2), 12, 1, 9, 2, false},
		{"below grid", gamemath.NewRect(1, 20, 2, 2), 1, 20, 2, 9, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1, ok := Cells(tt.r, 10, 10)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if ok && (x0 != tt.x0 || y0 != tt.y0 || x1 != tt.x1 || y1 != tt.y1) {
				t.Errorf("Cells = %d,%d..%d,%d, want %d,%d..%d,%d", x0, y0, x1, y1, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func backgroundAt(t *testing.T, screen tcell.Screen, x, y int) tcell.Color {
	t.Helper()
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func styleColor(c color.RGBA) tcell.Color {
	_, bg, _ := styleOf(c).Decompose()
	return bg
}

func TestRendererDrawsRun(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 25)

	c := cfg.Default()
	g := runner.New(c, 1, nil)
	NewRenderer(screen).Draw(g, 2.5)

	p := c.Palette
	// Player covers columns 40..42 and rows 9..11 of the playfield.
	if got, want := backgroundAt(t, screen, 41, 10+hudRows), styleColor(p.Player); got != want {
		t.Errorf("player cell = %v, want %v", got, want)
	}
	// The start platform spans columns 10..69 at rows 15..16.
	if got, want := backgroundAt(t, screen, 20, 16+hudRows), styleColor(p.Platform); got != want {
		t.Errorf("platform cell = %v, want %v", got, want)
	}
	if got, want := backgroundAt(t, screen, 5, 5+hudRows), styleColor(p.Background); got != want {
		t.Errorf("sky cell = %v, want %v", got, want)
	}

	if ch, _, _, _ := screen.GetContent(1, 0); ch != 'D' {
		t.Errorf("HUD starts with %q, want 'D'", ch)
	}
}

func rowText(screen tcell.Screen, y int) string {
	cols, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < cols; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestRendererDebugHUD(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	defer screen.Fini()
	screen.SetSize(80, 25)

	c := cfg.Default()
	g := runner.New(c, 1, nil)
	r := NewRenderer(screen)

	r.Draw(g, 0)
	if hud := rowText(screen, 0); strings.Contains(hud, "Fallbacks") {
		t.Errorf("HUD %q shows fallbacks without debugging", hud)
	}

	c.Physics.DebugCollisions = true
	r.Draw(g, 0)
	if hud := rowText(screen, 0); !strings.Contains(hud, "Fallbacks 0") {
		t.Errorf("HUD %q, want a fallback count", hud)
	}
}
