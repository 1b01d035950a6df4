package repository

import (
	"context"
	"database/sql"
	"time"

	"climatesim"
	"climatesim/internal/repository/db"
)

// Persistence keys. Values are the serialized data-model structures; a
// malformed or absent entry is treated as absent by callers.
const (
	KeyRoomData       = "roomData"
	KeyScheduledTemps = "scheduledTemps"
	KeyDarkMode       = "darkMode"
	KeyTempUnit       = "tempUnit"
	KeySelectedRoom   = "selectedRoom"
)

// KVStore is the opaque key-value persistence boundary.
type KVStore interface {
	Put(ctx context.Context, key, value string) error
	Get(ctx context.Context, key string) (string, bool, error)
}

// EventRepo is the append-only activity log.
type EventRepo interface {
	Append(ctx context.Context, e climatesim.ClimateEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]climatesim.ClimateEvent, error)
}

type Repository struct {
	KV     KVStore
	Events EventRepo
}

func NewRepository(sqlDB *sql.DB) *Repository {
	return &Repository{
		KV:     NewKVSQLite(sqlDB),
		Events: NewEventSQLite(sqlDB),
	}
}

// InitDB re-exports the sqlite bootstrap for main.
func InitDB(path string) (*sql.DB, error) {
	return db.InitDB(path)
}
