// Package persistence keeps best-distance records between runs.
package persistence

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/quasilyte/gdata"
)

const recordsItem = "records"

// Records is the data stored on disk
type Records struct {
	Best float64 `json:"best"`
	Last float64 `json:"last"`
	Runs int     `json:"runs"`
}

// Submit returns r updated with a finished run and whether it set a new best.
func (r Records) Submit(distance float64) (Records, bool) {
	r.Runs++
	r.Last = distance
	if distance > r.Best {
		r.Best = distance
		return r, true
	}
	return r, false
}

// ItemStore is the key/value storage records are kept in. *gdata.Manager
// satisfies it.
type ItemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

type Store struct {
	items ItemStore
}

// Open creates a store backed by the platform's app data directory.
func Open(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("open app data %s: %w", appName, err)
	}
	return NewStore(m), nil
}

func NewStore(items ItemStore) *Store {
	return &Store{items: items}
}

// Load returns the saved records. A missing or unreadable item yields zero
// records; only corrupt data is reported.
func (s *Store) Load() (Records, error) {
	data, err := s.items.LoadItem(recordsItem)
	if err != nil {
		log.Printf("Warning: Could not load records: %v", err)
		return Records{}, nil
	}
	if len(data) == 0 {
		// Nothing saved yet
		return Records{}, nil
	}

	var r Records
	if err := json.Unmarshal(data, &r); err != nil {
		return Records{}, fmt.Errorf("parse records: %w", err)
	}
	return r, nil
}

func (s *Store) Save(r Records) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("serialize records: %w", err)
	}
	if err := s.items.SaveItem(recordsItem, data); err != nil {
		return fmt.Errorf("save records: %w", err)
	}
	return nil
}

// Submit records a finished run and saves the result. Corrupt saved data is
// replaced rather than blocking new records.
func (s *Store) Submit(distance float64) (Records, bool, error) {
	r, err := s.Load()
	if err != nil {
		log.Printf("Warning: Discarding saved records: %v", err)
	}
	r, best := r.Submit(distance)
	return r, best, s.Save(r)
}

// Clear removes the saved records.
func (s *Store) Clear() error {
	if err := s.items.SaveItem(recordsItem, nil); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}
	return nil
}
