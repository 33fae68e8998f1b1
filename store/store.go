// Package store loads word collections from the places they live: a
// local SQLite database, a YAML file, or a remote document API.
//
// # Usage
//
//	src, err := store.Open(cfg)
//	words, err := src.Words(ctx)
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/miosa/osa-vocab/config"
	"github.com/miosa/osa-vocab/vocab"
)

// Source kinds accepted by Open.
const (
	KindSQLite = "sqlite"
	KindYAML   = "yaml"
	KindHTTP   = "http"
)

// ErrUnknownSource is returned by Open for an unrecognised source kind.
var ErrUnknownSource = errors.New("unknown word source")

// Source yields the full word collection.
type Source interface {
	Words(ctx context.Context) ([]vocab.Word, error)
}

// Open builds the Source selected by cfg.Source. The returned closer
// releases any held resources and is never nil.
func Open(cfg config.Config) (Source, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Source {
	case KindSQLite:
		if cfg.DatabasePath == "" {
			return nil, noop, errors.New("sqlite source: database_path is not set")
		}
		db, err := OpenSQLite(cfg.DatabasePath, cfg.Debug)
		if err != nil {
			return nil, noop, err
		}
		return db, db.Close, nil
	case KindYAML:
		if cfg.WordsFile == "" {
			return nil, noop, errors.New("yaml source: words_file is not set")
		}
		return NewYAMLFile(cfg.WordsFile), noop, nil
	case KindHTTP:
		if cfg.APIURL == "" {
			return nil, noop, errors.New("http source: api_url is not set")
		}
		return NewHTTP(cfg.APIURL, cfg.APIToken), noop, nil
	}
	return nil, noop, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
}
