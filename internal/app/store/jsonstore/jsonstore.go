// Package jsonstore persists each entity collection as a single JSON file
// holding an ordered array of records.
//
// Every mutation in the application follows the same shape: load the full
// collection, edit it in memory, and write the full collection back. There
// is no locking and no cross-collection transaction; two concurrent writers
// to the same collection race and the second full overwrite silently
// discards the first. That lost-update hazard is an accepted limitation of
// the design (the data volumes are tiny), not something callers may rely
// on being fixed here.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Collection file names, one flat file per entity collection.
const (
	Users            = "users"
	Videos           = "videos"
	Likes            = "likes"
	Enrollments      = "enrollments"
	Suggestions      = "suggestions"
	Ads              = "ads"
	DonationComments = "donation_comments"
)

// Collections lists every collection the application uses, in the order
// they are initialized at startup.
var Collections = []string{
	Users, Videos, Likes, Enrollments, Suggestions, Ads, DonationComments,
}

// ErrIO wraps any failure to read, write, or decode a backing file. It is
// the only error kind this package surfaces; handlers treat it as fatal
// for the request and never leak the underlying path to the user.
var ErrIO = errors.New("jsonstore: I/O failure")

// DB is a handle on the data directory that holds the collection files.
type DB struct {
	dir string
	log *zap.Logger
}

// Open creates the data directory if needed and returns a handle on it.
func Open(dir string, logger *zap.Logger) (*DB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create data dir: %v", ErrIO, err)
	}
	return &DB{dir: dir, log: logger}, nil
}

// Dir returns the data directory path.
func (db *DB) Dir() string { return db.dir }

func (db *DB) path(collection string) string {
	return filepath.Join(db.dir, collection+".json")
}

// Load reads the full collection. An absent or empty backing file is
// initialized to an empty array on disk before an empty slice is returned,
// so a collection that has been loaded once always exists as "[]".
func Load[T any](db *DB, collection string) ([]T, error) {
	raw, err := os.ReadFile(db.path(collection))
	switch {
	case errors.Is(err, os.ErrNotExist), err == nil && len(raw) == 0:
		if err := Save(db, collection, []T{}); err != nil {
			return nil, err
		}
		return []T{}, nil
	case err != nil:
		return nil, fmt.Errorf("%w: read %s: %v", ErrIO, collection, err)
	}

	var records []T
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrIO, collection, err)
	}
	if records == nil {
		records = []T{}
	}
	return records, nil
}

// Save overwrites the full collection. Partial or append writes are not
// supported; the file always holds exactly the records passed in.
func Save[T any](db *DB, collection string, records []T) error {
	if records == nil {
		records = []T{}
	}
	raw, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrIO, collection, err)
	}
	if err := os.WriteFile(db.path(collection), raw, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrIO, collection, err)
	}
	return nil
}

// EnsureCollections initializes every named collection file that is absent
// or empty, mirroring what Load would do on first touch. Called once at
// startup so the data directory is fully populated before serving.
func (db *DB) EnsureCollections(names ...string) error {
	for _, name := range names {
		if _, err := Load[json.RawMessage](db, name); err != nil {
			return err
		}
		if db.log != nil {
			db.log.Debug("collection ready", zap.String("collection", name))
		}
	}
	return nil
}
