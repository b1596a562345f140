package scenes

import (
	"log"

	cfg "github.com/automoto/buildyguy/config"
	"github.com/automoto/buildyguy/persistence"
	"github.com/automoto/buildyguy/shared/leveldata"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Session is the state shared by every scene of one process.
type Session struct {
	Config *cfg.Config
	Layout *leveldata.Layout  // nil for the default start
	Levels *leveldata.Catalog // nil when no levels directory was given
	Seed   int64

	// Store may be nil; records are then kept for this process only.
	Store   *persistence.Store
	Records persistence.Records
}

// LoadRecords reads saved records into the session.
func (s *Session) LoadRecords() {
	if s.Store == nil {
		return
	}
	r, err := s.Store.Load()
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return
	}
	s.Records = r
}

// Submit records a finished run and reports whether it set a new best.
func (s *Session) Submit(distance float64) bool {
	if s.Store == nil {
		var best bool
		s.Records, best = s.Records.Submit(distance)
		return best
	}
	r, best, err := s.Store.Submit(distance)
	if err != nil {
		log.Printf("Warning: Could not save records: %v", err)
	}
	s.Records = r
	return best
}

// CycleLevel moves the level selection by step and starts runs from it.
func (s *Session) CycleLevel(step int) {
	if s.Levels == nil {
		return
	}
	s.Levels.Cycle(step)
	_, s.Layout = s.Levels.Current()
}

// LevelName is the display name of the selected level.
func (s *Session) LevelName() string {
	if s.Levels == nil {
		return ""
	}
	name, _ := s.Levels.Current()
	return leveldata.DisplayName(name)
}

// ClearRecords forgets every saved run.
func (s *Session) ClearRecords() {
	if s.Store != nil {
		if err := s.Store.Clear(); err != nil {
			log.Printf("Warning: Could not clear records: %v", err)
			return
		}
	}
	s.Records = persistence.Records{}
}

// nextSeed returns the seed for a new run.
func (s *Session) nextSeed() int64 {
	seed := s.Seed
	s.Seed++
	return seed
}
