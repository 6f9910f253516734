// Package pkg provides shared utilities for sabot.
package pkg

import (
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSpill buffers a stream of T on disk so large mutation runs never
// hold every result in memory. Appends share one gob stream; Range
// re-reads the backing file from the start, so it also works after
// Close.
type FileSpill[T any] interface {
	// Append encodes one item at the end of the stream.
	Append(item T) error

	// Len reports the number of appended items.
	Len() uint64

	// Range decodes the items in append order. An error from fn aborts
	// the scan and is returned unchanged.
	Range(fn func(index uint64, item T) error) error

	// Path names the backing file.
	Path() string

	// Close releases the write handle. The backing file stays on disk.
	Close() error
}

type fileSpill[T any] struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	encoder *gob.Encoder
	length  uint64
}

// NewFileSpill creates a spill backed by a fresh file under the system
// temp directory.
func NewFileSpill[T any]() (FileSpill[T], error) {
	dir := filepath.Join(os.TempDir(), "sabot-spill")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create spill directory: %w", err)
	}

	file, err := os.CreateTemp(dir, "spill-*.gob")
	if err != nil {
		return nil, fmt.Errorf("create spill file: %w", err)
	}

	return &fileSpill[T]{
		path:    file.Name(),
		file:    file,
		encoder: gob.NewEncoder(file),
	}, nil
}

func (s *fileSpill[T]) Append(item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return fmt.Errorf("spill %s is closed", s.path)
	}

	if err := s.encoder.Encode(item); err != nil {
		return fmt.Errorf("encode item %d: %w", s.length, err)
	}

	s.length++

	return nil
}

func (s *fileSpill[T]) Len() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.length
}

func (s *fileSpill[T]) Path() string {
	return s.path
}

func (s *fileSpill[T]) Range(fn func(index uint64, item T) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	reader, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open spill: %w", err)
	}

	defer func() {
		_ = reader.Close()
	}()

	decoder := gob.NewDecoder(reader)

	for i := uint64(0); i < s.length; i++ {
		// A fresh value per item: gob merges into non-zero fields.
		var item T
		if err := decoder.Decode(&item); err != nil {
			return fmt.Errorf("decode item %d: %w", i, err)
		}

		if err := fn(i, item); err != nil {
			return err
		}
	}

	return nil
}

func (s *fileSpill[T]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}

	err := s.file.Close()
	s.file = nil

	if err != nil {
		return fmt.Errorf("close spill: %w", err)
	}

	return nil
}
