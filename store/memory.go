package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is an in-memory Store used in tests. Documents go through a BSON
// round trip so that tags, ids, and decoding behave like the real store.
type Memory struct {
	mu          sync.RWMutex
	collections map[string][]bson.Raw
}

func NewMemory() *Memory {
	return &Memory{collections: make(map[string][]bson.Raw)}
}

func (m *Memory) CreateDocument(ctx context.Context, collection string, doc any) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}
	var d bson.D
	if err := bson.Unmarshal(data, &d); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}

	hasID := false
	for _, e := range d {
		if e.Key == "_id" {
			hasID = true
			break
		}
	}
	if !hasID {
		d = append(bson.D{{Key: "_id", Value: primitive.NewObjectID()}}, d...)
	}

	raw, err := bson.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	m.mu.Lock()
	m.collections[collection] = append(m.collections[collection], bson.Raw(raw))
	m.mu.Unlock()
	return nil
}

func (m *Memory) GetDocuments(ctx context.Context, collection string) ([]bson.Raw, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs := make([]bson.Raw, len(m.collections[collection]))
	copy(docs, m.collections[collection])
	return docs, nil
}

func (m *Memory) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, raw := range m.collections[collection] {
		if matchesFilter(raw, filter) {
			return bson.Unmarshal(raw, out)
		}
	}
	return ErrNotFound
}

func (m *Memory) CountDocuments(ctx context.Context, collection string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.collections[collection])), nil
}

func (m *Memory) Stats(ctx context.Context) Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.collections))
	for name := range m.collections {
		names = append(names, name)
	}
	sort.Strings(names)
	return Stats{Connected: true, DatabaseName: "memory", Collections: names}
}

// matchesFilter supports top-level string equality, which is all the service
// filters by (slug lookups).
func matchesFilter(raw bson.Raw, filter bson.M) bool {
	for key, want := range filter {
		val, ok := raw.Lookup(key).StringValueOK()
		if !ok {
			return false
		}
		str, ok := want.(string)
		if !ok || val != str {
			return false
		}
	}
	return true
}
