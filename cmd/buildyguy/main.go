package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/fonts"
	"github.com/automoto/buildyguy/persistence"
	"github.com/automoto/buildyguy/scenes"
	"github.com/automoto/buildyguy/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	config *config.Config
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(session *scenes.Session) *Game {
	g := &Game{config: session.Config}
	g.scene = scenes.NewMenuScene(g, session)
	return g
}

func (g *Game) Update() error {
	if _, ok := g.scene.(*scenes.MenuScene); ok && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return g.config.Screen.Width, g.config.Screen.Height
}

func main() {
	c := config.Default()
	c.RegisterFlags(flag.CommandLine)
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed of the first run")
	level := flag.String("level", "", "TMX layout to start from, or a level name with -levels (empty = default start)")
	levels := flag.String("levels", "", "Directory of TMX layouts to choose from in the menu")
	noSave := flag.Bool("nosave", false, "Do not read or write records")
	flag.Parse()
	c.ApplyEnv()

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	session := &scenes.Session{Config: c, Seed: *seed}

	if *levels != "" {
		catalog, err := leveldata.LoadCatalog(os.DirFS(*levels), ".")
		if err != nil {
			log.Fatalf("Failed to load levels: %v", err)
		}
		if *level != "" && !catalog.Select(*level) {
			log.Fatalf("Unknown level %q in %s", *level, *levels)
		}
		session.Levels = catalog
		_, session.Layout = catalog.Current()
	} else if *level != "" {
		layout, err := leveldata.LoadLayout(os.DirFS(filepath.Dir(*level)), filepath.Base(*level))
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		session.Layout = layout
	}

	if !*noSave {
		store, err := persistence.Open("buildyguy")
		if err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		} else {
			session.Store = store
			session.LoadRecords()
		}
	}

	ebiten.SetWindowSize(c.Screen.Width, c.Screen.Height)
	ebiten.SetWindowTitle("Buildy Guy")
	ebiten.SetTPS(c.Screen.TPS)

	if err := ebiten.RunGame(NewGame(session)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
