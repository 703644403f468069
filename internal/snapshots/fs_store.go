package snapshots

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"nba-matchup-service/internal/app/matchups"
)

// Store defines how snapshots are loaded.
type Store interface {
	LoadMatchups(date string) (matchups.Daily, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadMatchups reads a snapshot for the given date (YYYY-MM-DD) from disk.
// Files are expected at {basePath}/matchups/{date}.json with a Daily payload.
func (s *FSStore) LoadMatchups(date string) (matchups.Daily, error) {
	var payload matchups.Daily
	if err := s.load(kindMatchups, date, &payload); err != nil {
		return matchups.Daily{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// FindDataset searches the snapshot for the given date and returns the dataset if found.
func (s *FSStore) FindDataset(date, id string) (matchups.Dataset, bool) {
	daily, err := s.LoadMatchups(date)
	if err != nil {
		return matchups.Dataset{}, false
	}
	for _, d := range daily.Datasets {
		if d.ID == id {
			return d, true
		}
	}
	return matchups.Dataset{}, false
}

func (s *FSStore) load(kind snapshotKind, date string, payload any) error {
	if s == nil {
		return errors.New("snapshot store not configured")
	}
	if date == "" {
		return errors.New("snapshot date required")
	}
	path := filepath.Join(s.basePath, string(kind), fmt.Sprintf("%s.json", date))
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return json.NewDecoder(f).Decode(payload)
}
