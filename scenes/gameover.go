package scenes

import (
	"fmt"

	"github.com/automoto/buildyguy/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// GameOverScene displays the result of the last run
type GameOverScene struct {
	session      *Session
	sceneChanger SceneChanger
	distance     float64
	newBest      bool
}

func NewGameOverScene(sc SceneChanger, session *Session, distance float64, newBest bool) *GameOverScene {
	return &GameOverScene{
		session:      session,
		sceneChanger: sc,
		distance:     distance,
		newBest:      newBest,
	}
}

func (gs *GameOverScene) Update() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		gs.sceneChanger.ChangeScene(NewRunnerScene(gs.sceneChanger, gs.session))
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger, gs.session))
	}
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	palette := gs.session.Config.Palette
	screen.Fill(palette.Background)

	h := float64(screen.Bounds().Dy())
	drawCentered(screen, "GAME OVER", fonts.Title, h/3, palette.Wall)
	drawCentered(screen, fmt.Sprintf("Distance %.1f", gs.distance), fonts.HUD, h/2, palette.HUDText)
	if gs.newBest {
		drawCentered(screen, "New best!", fonts.HUD, h/2+24, palette.Player)
	} else {
		drawCentered(screen, fmt.Sprintf("Best %.1f", gs.session.Records.Best), fonts.HUD, h/2+24, palette.HUDText)
	}
	drawCentered(screen, "R to retry, Esc for menu", fonts.Small, h-40, palette.HUDText)
}
