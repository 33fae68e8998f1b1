package store

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/miosa/osa-vocab/vocab"
)

// wordsDocument is the on-disk layout:
//
//	words:
//	  - term: laconic
//	    meaning: using few words
//	    topic: adjectives
type wordsDocument struct {
	Words []vocab.Word `yaml:"words"`
}

// YAMLFile reads words from a YAML document.
type YAMLFile struct {
	Path string
}

// NewYAMLFile returns a source backed by path.
func NewYAMLFile(path string) *YAMLFile {
	return &YAMLFile{Path: path}
}

// Words parses the file. Entries without an ID get their 1-based
// position in the document.
func (f *YAMLFile) Words(ctx context.Context) ([]vocab.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	var doc wordsDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", f.Path, err)
	}
	for i := range doc.Words {
		if doc.Words[i].ID == "" {
			doc.Words[i].ID = fmt.Sprintf("%d", i+1)
		}
	}
	return doc.Words, nil
}

// Write replaces the file with words.
func (f *YAMLFile) Write(words []vocab.Word) error {
	data, err := yaml.Marshal(wordsDocument{Words: words})
	if err != nil {
		return fmt.Errorf("marshal words: %w", err)
	}
	if err := os.WriteFile(f.Path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}
