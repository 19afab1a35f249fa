package store

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches the filter.
var ErrNotFound = errors.New("document not found")

// Store is a collection-scoped document store. The service treats the backing
// database as a black box: inserts and full-collection scans, nothing more.
type Store interface {
	CreateDocument(ctx context.Context, collection string, doc any) error
	GetDocuments(ctx context.Context, collection string) ([]bson.Raw, error)
	FindOne(ctx context.Context, collection string, filter bson.M, out any) error
	CountDocuments(ctx context.Context, collection string) (int64, error)
	Stats(ctx context.Context) Stats
}

// Stats describes store connectivity for the diagnostic endpoint.
type Stats struct {
	Connected    bool
	DatabaseName string
	Collections  []string
	Error        string
}

// Disconnected returns a Store for running without a configured database.
// Writes are dropped and reads come back empty; callers are expected to
// tolerate an unavailable store rather than fail hard.
func Disconnected() Store {
	return disconnected{}
}

type disconnected struct{}

func (disconnected) CreateDocument(ctx context.Context, collection string, doc any) error {
	return nil
}

func (disconnected) GetDocuments(ctx context.Context, collection string) ([]bson.Raw, error) {
	return nil, nil
}

func (disconnected) FindOne(ctx context.Context, collection string, filter bson.M, out any) error {
	return ErrNotFound
}

func (disconnected) CountDocuments(ctx context.Context, collection string) (int64, error) {
	return 0, nil
}

func (disconnected) Stats(ctx context.Context) Stats {
	return Stats{Connected: false}
}
