// Package database persists the conference system state as three opaque
// whole-collection snapshots: the attendee directory, the exhibition
// catalog, and the sales ledger. Snapshots are read once at startup and
// written once at shutdown; there is no partial persistence.
package database

import (
	"encoding/json"
	"os"
	"path/filepath"

	"greenwave-ticketing/model"
)

// Snapshot is the full persisted state of the system aggregate.
type Snapshot struct {
	Attendees   []*model.Attendee
	Exhibitions []*model.Exhibition
	Sales       []model.SaleEvent
}

// SnapshotStore loads and stores whole snapshots. Load never fails: each
// collection independently falls back to empty when its blob is unreadable
// or absent, which is indistinguishable from a first run.
type SnapshotStore interface {
	Load() Snapshot
	Save(snapshot Snapshot) error
}

const (
	attendeesFile   = "attendees.json"
	exhibitionsFile = "exhibitions.json"
	salesFile       = "sales.json"
)

// LocalStore keeps the three snapshot blobs as JSON files in one directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) *LocalStore {
	return &LocalStore{dir: dir}
}

func (s *LocalStore) Load() Snapshot {
	snapshot := Snapshot{
		Attendees:   []*model.Attendee{},
		Exhibitions: []*model.Exhibition{},
		Sales:       []model.SaleEvent{},
	}

	var attendees []*model.Attendee
	if loadCollection(filepath.Join(s.dir, attendeesFile), &attendees) && attendees != nil {
		snapshot.Attendees = attendees
	}
	var exhibitions []*model.Exhibition
	if loadCollection(filepath.Join(s.dir, exhibitionsFile), &exhibitions) && exhibitions != nil {
		snapshot.Exhibitions = exhibitions
	}
	var sales []model.SaleEvent
	if loadCollection(filepath.Join(s.dir, salesFile), &sales) && sales != nil {
		snapshot.Sales = sales
	}
	return snapshot
}

func (s *LocalStore) Save(snapshot Snapshot) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}
	if err := saveCollection(filepath.Join(s.dir, attendeesFile), snapshot.Attendees); err != nil {
		return err
	}
	if err := saveCollection(filepath.Join(s.dir, exhibitionsFile), snapshot.Exhibitions); err != nil {
		return err
	}
	return saveCollection(filepath.Join(s.dir, salesFile), snapshot.Sales)
}

// loadCollection fills target from a JSON file and reports whether the blob
// was read and decoded in full. A false result means the caller should treat
// the collection as empty.
func loadCollection(path string, target interface{}) bool {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return json.Unmarshal(fileBytes, target) == nil
}

func saveCollection(path string, collection interface{}) error {
	collectionBytes, err := json.MarshalIndent(collection, "", "	")
	if err != nil {
		return err
	}
	return os.WriteFile(path, collectionBytes, 0644)
}
