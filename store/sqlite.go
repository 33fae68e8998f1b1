package store

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/miosa/osa-vocab/vocab"
)

// wordRecord is the row layout of the words table.
type wordRecord struct {
	ID        uint   `gorm:"primaryKey"`
	Term      string `gorm:"not null;index"`
	Phonetic  string
	Meaning   string
	Example   string
	Notes     string `gorm:"type:text"`
	Topic     string `gorm:"index"`
	CreatedAt time.Time
}

func (wordRecord) TableName() string { return "words" }

func (r wordRecord) word() vocab.Word {
	return vocab.Word{
		ID:        strconv.FormatUint(uint64(r.ID), 10),
		Term:      r.Term,
		Phonetic:  r.Phonetic,
		Meaning:   r.Meaning,
		Example:   r.Example,
		Notes:     r.Notes,
		Topic:     r.Topic,
		CreatedAt: r.CreatedAt,
	}
}

func recordOf(w vocab.Word) wordRecord {
	return wordRecord{
		Term:      w.Term,
		Phonetic:  w.Phonetic,
		Meaning:   w.Meaning,
		Example:   w.Example,
		Notes:     w.Notes,
		Topic:     w.Topic,
		CreatedAt: w.CreatedAt,
	}
}

// SQLite reads words from a local database.
type SQLite struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the database at path and makes
// sure the words table exists.
func OpenSQLite(path string, debug bool) (*SQLite, error) {
	level := logger.Silent
	if debug {
		level = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := db.AutoMigrate(&wordRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Printf("sqlite source ready at %s", path)
	return &SQLite{db: db}, nil
}

// Words returns every word, newest first.
func (s *SQLite) Words(ctx context.Context) ([]vocab.Word, error) {
	var recs []wordRecord
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("query words: %w", err)
	}
	words := make([]vocab.Word, len(recs))
	for i, r := range recs {
		words[i] = r.word()
	}
	return words, nil
}

// Import inserts words in one transaction. IDs are assigned by the
// database; a zero CreatedAt is stamped with the current time.
func (s *SQLite) Import(ctx context.Context, words []vocab.Word) (int, error) {
	if len(words) == 0 {
		return 0, nil
	}
	recs := make([]wordRecord, len(words))
	for i, w := range words {
		recs[i] = recordOf(w)
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(recs, 200).Error
	})
	if err != nil {
		return 0, fmt.Errorf("import words: %w", err)
	}
	return len(recs), nil
}

// Close releases the underlying connection pool.
func (s *SQLite) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
