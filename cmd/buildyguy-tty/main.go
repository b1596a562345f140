package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/persistence"
	"github.com/automoto/buildyguy/runner"
	"github.com/automoto/buildyguy/shared/leveldata"
	"github.com/automoto/buildyguy/terminal"
	"github.com/gdamore/tcell/v2"
)

func main() {
	c := config.Default()
	c.RegisterFlags(flag.CommandLine)
	seed := flag.Int64("seed", time.Now().UnixNano(), "Seed of the first run")
	level := flag.String("level", "", "TMX layout to start from, or a level name with -levels (empty = default start)")
	levels := flag.String("levels", "", "Directory of TMX layouts to pick -level from")
	clearRecords := flag.Bool("clearrecords", false, "Forget saved records before playing")
	noSave := flag.Bool("nosave", false, "Do not read or write records")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()
	c.ApplyEnv()

	var layout *leveldata.Layout
	if *levels != "" {
		catalog, err := leveldata.LoadCatalog(os.DirFS(*levels), ".")
		if err != nil {
			log.Fatalf("Failed to load levels: %v", err)
		}
		if *level != "" && !catalog.Select(*level) {
			log.Fatalf("Unknown level %q in %s", *level, *levels)
		}
		_, layout = catalog.Current()
	} else if *level != "" {
		l, err := leveldata.LoadLayout(os.DirFS(filepath.Dir(*level)), filepath.Base(*level))
		if err != nil {
			log.Fatalf("Failed to load level: %v", err)
		}
		layout = l
	}

	var (
		store   *persistence.Store
		records persistence.Records
	)
	if !*noSave {
		s, err := persistence.Open("buildyguy")
		if err != nil {
			log.Printf("Warning: Could not initialize persistence: %v", err)
		} else {
			store = s
			if *clearRecords {
				if err := s.Clear(); err != nil {
					log.Printf("Warning: Could not clear records: %v", err)
				}
			}
			if records, err = s.Load(); err != nil {
				log.Printf("Warning: Could not load records: %v", err)
			}
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to initialize screen: %v", err)
	}
	defer screen.Fini()

	sounds := terminal.NewSounds()
	if !*mute {
		if err := sounds.Init(); err != nil {
			log.Printf("Warning: Could not initialize audio: %v", err)
		}
	}
	defer sounds.Close()

	// Only this goroutine reads the terminal; all game state stays on the loop.
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	game := runner.New(c, *seed, layout)
	renderer := terminal.NewRenderer(screen)
	var keys terminal.Keys
	recorded := false

	ticker := time.NewTicker(time.Second / time.Duration(c.Screen.TPS))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					return
				}
				if action, ok := terminal.ActionForKey(ev); ok {
					keys.Press(action)
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			game.Update(keys.Tick())
			sounds.Play(game.Events())

			switch {
			case game.Dead() && !recorded:
				recorded = true
				records = submit(store, records, game.Distance())
			case !game.Dead():
				recorded = false
			}

			renderer.Draw(game, records.Best)
		}
	}
}

// submit records a finished run, in memory when store is nil.
func submit(store *persistence.Store, records persistence.Records, distance float64) persistence.Records {
	if store == nil {
		records, _ = records.Submit(distance)
		return records
	}
	r, _, err := store.Submit(distance)
	if err != nil {
		log.Printf("Warning: Could not save records: %v", err)
	}
	return r
}
