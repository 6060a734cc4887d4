// Package storage keeps the few values that outlive a session: the best
// score and the player's preferences. Values are protobuf structpb values so
// that the file format stays self-describing.
package storage

import (
	"errors"
	"sync"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

var ErrNotFound = errors.New("key not found")

type Store interface {
	Get(key string) (*structpb.Value, bool)
	Set(key string, value *structpb.Value) error
	Delete(key string) error
	Flush() error
}

// MemoryStore is a Store that never touches disk.
type MemoryStore struct {
	mu     sync.RWMutex
	fields map[string]*structpb.Value
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		fields: make(map[string]*structpb.Value),
	}
}

func (s *MemoryStore) Get(key string) (*structpb.Value, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.fields[key]
	if !ok {
		return nil, false
	}
	return proto.Clone(v).(*structpb.Value), true
}

func (s *MemoryStore) Set(key string, value *structpb.Value) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fields[key] = proto.Clone(value).(*structpb.Value)
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.fields[key]; !ok {
		return ErrNotFound
	}
	delete(s.fields, key)
	return nil
}

func (s *MemoryStore) Flush() error {
	return nil
}

func GetInt(s Store, key string) (int64, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false
	}
	return int64(n.NumberValue), true
}

func SetInt(s Store, key string, n int64) error {
	return s.Set(key, structpb.NewNumberValue(float64(n)))
}

func GetFloat(s Store, key string) (float64, bool) {
	v, ok := s.Get(key)
	if !ok {
		return 0, false
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, false
	}
	return n.NumberValue, true
}

func SetFloat(s Store, key string, f float64) error {
	return s.Set(key, structpb.NewNumberValue(f))
}

func GetString(s Store, key string) (string, bool) {
	v, ok := s.Get(key)
	if !ok {
		return "", false
	}
	str, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", false
	}
	return str.StringValue, true
}

func SetString(s Store, key, str string) error {
	return s.Set(key, structpb.NewStringValue(str))
}

func GetBool(s Store, key string) (bool, bool) {
	v, ok := s.Get(key)
	if !ok {
		return false, false
	}
	b, ok := v.GetKind().(*structpb.Value_BoolValue)
	if !ok {
		return false, false
	}
	return b.BoolValue, true
}

func SetBool(s Store, key string, b bool) error {
	return s.Set(key, structpb.NewBoolValue(b))
}
