// Package jsonstore persists whole collections as JSON files on disk.
//
// Every mutation is a read-modify-write of the full file under a
// per-file lock, and the replacement is written to a temp file and
// renamed over the original, so readers never observe a partial write:
// either the whole collection is replaced or the prior state survives.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
)

var (
	// ErrNotFound reports a missing collection file.
	ErrNotFound = errors.New("jsonstore: file not found")
	// ErrInvalidName rejects file names that escape the data directory.
	ErrInvalidName = errors.New("jsonstore: invalid file name")
)

type Store struct {
	dir    string
	mu     sync.Mutex
	locks  map[string]*sync.Mutex
	logger *zap.Logger
}

func New(dir string, logger ...*zap.Logger) *Store {
	l := zap.L().Named("jsonstore")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("jsonstore")
	}
	return &Store{
		dir:    dir,
		locks:  make(map[string]*sync.Mutex),
		logger: l,
	}
}

// Dir returns the directory the store serves; the router mounts it
// read-only under /files.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) fileLock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[name]
	if !ok {
		l = &sync.Mutex{}
		s.locks[name] = l
	}
	return l
}

func (s *Store) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}

// Read unmarshals the named file into v.
func (s *Store) Read(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}

	lock := s.fileLock(name)
	lock.Lock()
	defer lock.Unlock()

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(raw, v)
}

// Write replaces the named file with the JSON encoding of v.
func (s *Store) Write(ctx context.Context, name string, v any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := s.path(name); err != nil {
		return err
	}

	lock := s.fileLock(name)
	lock.Lock()
	defer lock.Unlock()

	return s.replace(name, v)
}

// Update runs fn over the current raw contents and persists its result
// atomically. A missing file yields raw == nil so callers can start a
// fresh collection. If fn fails nothing is written.
func (s *Store) Update(ctx context.Context, name string, fn func(raw []byte) (any, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path, err := s.path(name)
	if err != nil {
		return err
	}

	lock := s.fileLock(name)
	lock.Lock()
	defer lock.Unlock()

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return err
		}
		raw = nil
	}

	next, err := fn(raw)
	if err != nil {
		return err
	}
	return s.replace(name, next)
}

// replace writes v next to the target and renames it into place.
// Callers must hold the file lock.
func (s *Store) replace(name string, v any) error {
	path := filepath.Join(s.dir, name)
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	s.logger.Debug("collection replaced",
		zap.String("file", name),
		zap.Int("bytes", len(encoded)),
	)
	return nil
}
