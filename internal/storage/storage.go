package storage

import (
	"encoding/json"
	"time"

	"github.com/dgraph-io/badger/v4"
)

// Storage keys
const (
	keyPreferences    = "preferences"
	manifestKeyPrefix = "render/"
)

// Preferences stores viewer settings.
type Preferences struct {
	LastScene  string    `json:"last_scene"`
	FPS        int       `json:"fps"`
	OutputDir  string    `json:"output_dir"`
	ShowLabels bool      `json:"show_labels"`
	LastOpened time.Time `json:"last_opened"`
}

// DefaultPreferences returns default viewer preferences.
func DefaultPreferences() *Preferences {
	return &Preferences{
		LastScene:  "coordinate-system",
		FPS:        10,
		ShowLabels: true,
		LastOpened: time.Now(),
	}
}

// RenderRecord describes one completed render of a scene.
type RenderRecord struct {
	Scene      string    `json:"scene"`
	File       string    `json:"file"`
	RenderedAt time.Time `json:"rendered_at"`
	Bytes      int64     `json:"bytes"`
	Frames     int       `json:"frames"`
}

// Storage wraps BadgerDB for persistent storage.
type Storage struct {
	db *badger.DB
}

// NewStorage opens the database in the platform data directory.
func NewStorage() (*Storage, error) {
	dbDir, err := GetDatabaseDir()
	if err != nil {
		return nil, err
	}
	return NewStorageAt(dbDir)
}

// NewStorageAt opens the database in an explicit directory. Tests use this
// with a temp dir.
func NewStorageAt(dir string) (*Storage, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &Storage{db: db}, nil
}

// Close closes the database.
func (s *Storage) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreferences saves viewer preferences.
func (s *Storage) SavePreferences(prefs *Preferences) error {
	prefs.LastOpened = time.Now()

	data, err := json.Marshal(prefs)
	if err != nil {
		return err
	}

	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(keyPreferences), data)
	})
}

// LoadPreferences loads viewer preferences, returns defaults if not found.
func (s *Storage) LoadPreferences() (*Preferences, error) {
	prefs := DefaultPreferences()

	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPreferences))
		if err == badger.ErrKeyNotFound {
			return nil // Use defaults
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, prefs)
		})
	})

	return prefs, err
}

// RecordRender records a completed render, replacing any earlier record for
// the same scene and file.
func (s *Storage) RecordRender(rec RenderRecord) error {
	if rec.RenderedAt.IsZero() {
		rec.RenderedAt = time.Now()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	key := manifestKeyPrefix + rec.Scene + "/" + rec.File
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

// LoadManifest returns all render records, ordered by key.
func (s *Storage) LoadManifest() ([]RenderRecord, error) {
	var records []RenderRecord

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(manifestKeyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec RenderRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return records, err
}
