package snapshots

import (
	"fmt"
	"path/filepath"
)

// MatchupSnapshotPath builds the path to a matchups snapshot for a given date.
func MatchupSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "matchups", fmt.Sprintf("%s.json", date))
}
