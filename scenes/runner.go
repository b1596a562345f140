package scenes

import (
	"fmt"
	"sync"

	"github.com/automoto/buildyguy/fonts"
	"github.com/automoto/buildyguy/runner"
	"github.com/hajimehoshi/ebiten/v2"
)

// RunnerScene plays one run and hands over to the game over screen.
type RunnerScene struct {
	session      *Session
	sceneChanger SceneChanger
	game         *runner.Game
	drawables    []runner.Drawable
	once         sync.Once
}

func NewRunnerScene(sc SceneChanger, session *Session) *RunnerScene {
	return &RunnerScene{sceneChanger: sc, session: session}
}

func (rs *RunnerScene) configure() {
	rs.game = runner.New(rs.session.Config, rs.session.nextSeed(), rs.session.Layout)
}

func (rs *RunnerScene) Update() {
	rs.once.Do(rs.configure)
	rs.game.Update(readInput())

	if rs.game.Dead() {
		distance := rs.game.Distance()
		newBest := rs.session.Submit(distance)
		rs.sceneChanger.ChangeScene(NewGameOverScene(rs.sceneChanger, rs.session, distance, newBest))
	}
}

func (rs *RunnerScene) Draw(screen *ebiten.Image) {
	palette := rs.session.Config.Palette
	screen.Fill(palette.Background)

	if rs.game == nil {
		return
	}

	rs.drawables = rs.game.Drawables(rs.drawables[:0])
	drawWorld(screen, rs.drawables, rs.game.View(), rs.session.Config.Physics.DebugCollisions)

	drawText(screen, fmt.Sprintf("Distance %.1f", rs.game.Distance()), fonts.HUD, 12, 8, palette.HUDText)
	drawText(screen, fmt.Sprintf("Best %.1f", rs.session.Records.Best), fonts.Small, 12, 30, palette.HUDText)
	if rs.session.Config.Physics.DebugCollisions {
		drawText(screen, fmt.Sprintf("Fallbacks %d", rs.game.Simulation().Fallbacks()), fonts.Small, 12, 48, palette.HUDText)
	}
	if rs.game.Paused() {
		drawCentered(screen, "PAUSED", fonts.Title, float64(screen.Bounds().Dy())/2-16, palette.HUDText)
	}
}
