// Package storage persists the tracker state as an opaque versioned
// snapshot. The medium is pluggable: a JSON file, a postgres row or an S3
// object, all with plain get/set last-write-wins semantics.
package storage

import (
	"context"
	"errors"

	"github.com/yuyuan12138/food-cal/models"
)

// SnapshotName keys the snapshot in whatever medium backs the store.
const SnapshotName = "food-calorie-tracker-storage"

// SchemaVersion is bumped on incompatible snapshot layout changes. A loaded
// snapshot with a different version is discarded and the tracker starts
// fresh.
const SchemaVersion = 1

// ErrNoSnapshot is returned by Load when nothing has been saved yet.
var ErrNoSnapshot = errors.New("no snapshot")

// Snapshot is everything the tracker persists between runs.
type Snapshot struct {
	Version        int                `json:"version"`
	Profile        models.UserProfile `json:"profile"`
	Entries        []models.LogEntry  `json:"entries"`
	SelectedDate   string             `json:"selected_date"`
	SelectedMeal   models.MealType    `json:"selected_meal"`
	RecentSearches []string           `json:"recent_searches"`
}

type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}
