package scenes

import (
	"fmt"

	"github.com/automoto/buildyguy/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// MenuScene is the title screen
type MenuScene struct {
	session      *Session
	sceneChanger SceneChanger
}

func NewMenuScene(sc SceneChanger, session *Session) *MenuScene {
	return &MenuScene{sceneChanger: sc, session: session}
}

func (ms *MenuScene) Update() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace), inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		ms.sceneChanger.ChangeScene(NewRunnerScene(ms.sceneChanger, ms.session))
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		ms.session.CycleLevel(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		ms.session.CycleLevel(1)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		ms.session.ClearRecords()
	}
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	palette := ms.session.Config.Palette
	screen.Fill(palette.Background)

	h := float64(screen.Bounds().Dy())
	drawCentered(screen, "BUILDY GUY", fonts.Title, h/3, palette.Player)
	if r := ms.session.Records; r.Runs > 0 {
		drawCentered(screen, fmt.Sprintf("Best %.1f over %d runs", r.Best, r.Runs), fonts.HUD, h/2, palette.HUDText)
	}
	if name := ms.session.LevelName(); name != "" {
		drawCentered(screen, fmt.Sprintf("< %s >", name), fonts.HUD, h/2+28, palette.HUDText)
	}
	drawCentered(screen, "A/D move, Space jump, J/K/L build, I float, P pause", fonts.Small, h-60, palette.HUDText)
	drawCentered(screen, "Space to start, Left/Right level, C clear records, Esc to quit", fonts.Small, h-40, palette.HUDText)
}
