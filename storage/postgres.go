package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotRow is the single-row table backing the postgres store.
type snapshotRow struct {
	Name      string `gorm:"primaryKey;type:varchar(255)"`
	Version   int
	State     string `gorm:"type:jsonb"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli"`
}

func (snapshotRow) TableName() string { return "state_snapshots" }

// PostgresStore keeps the snapshot in a postgres row, keyed by
// SnapshotName. Last write wins.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects with the usual DB_* environment variables and
// migrates the snapshot table.
func NewPostgresStore() (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	if err := db.AutoMigrate(&snapshotRow{}); err != nil {
		return nil, fmt.Errorf("migrate snapshot table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) Load(ctx context.Context) (*Snapshot, error) {
	var row snapshotRow
	err := s.db.WithContext(ctx).Where("name = ?", SnapshotName).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, err
	}
	var snap Snapshot
	if err := json.Unmarshal([]byte(row.State), &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

func (s *PostgresStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	row := snapshotRow{Name: SnapshotName, Version: snap.Version, State: string(data)}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "name"}}, UpdateAll: true}).
		Create(&row).Error
}
