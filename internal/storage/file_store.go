package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// FileStore keeps every key in one protobuf-encoded structpb.Struct on disk.
// Each Set rewrites the file through a temp file and rename.
type FileStore struct {
	path string

	mu   sync.Mutex
	data *structpb.Struct
}

// OpenFileStore loads path if it exists. A missing file is an empty store; a
// corrupt one is logged and replaced on the next write.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: &structpb.Struct{Fields: make(map[string]*structpb.Value)},
	}

	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store %s: %w", path, err)
	}

	var loaded structpb.Struct
	if err := proto.Unmarshal(raw, &loaded); err != nil {
		log.Printf("Store %s is unreadable, starting empty: %v", path, err)
		return s, nil
	}
	if loaded.Fields != nil {
		s.data = &loaded
	}
	return s, nil
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Get(key string) (*structpb.Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, ok := s.data.Fields[key]
	if !ok {
		return nil, false
	}
	return proto.Clone(v).(*structpb.Value), true
}

func (s *FileStore) Set(key string, value *structpb.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data.Fields[key] = proto.Clone(value).(*structpb.Value)
	return s.writeLocked()
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.Fields[key]; !ok {
		return ErrNotFound
	}
	delete(s.data.Fields, key)
	return s.writeLocked()
}

func (s *FileStore) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writeLocked()
}

func (s *FileStore) writeLocked() error {
	raw, err := proto.MarshalOptions{Deterministic: true}.Marshal(s.data)
	if err != nil {
		return fmt.Errorf("failed to encode store: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close store: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace store: %w", err)
	}
	return nil
}
