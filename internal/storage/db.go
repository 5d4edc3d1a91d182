package storage

import (
	. "chatroom/pkg/chat"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const DefaultDSN = "file::memory:?cache=shared"

func Connect(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// An in-memory sqlite database exists per connection; keep the pool
	// at one so every query sees the same state.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&User{},
		&Message{},
	)

	if err != nil {
		return nil, err
	}

	return db, nil
}
