// path: database/store.go
package database

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"github.com/pcgaming-glitch/SafeNet-Blacklist/models"
)

// Store is the record collection behind the submission and retrieval
// handlers. Append must be durable before it returns; All returns every
// record, newest first.
type Store interface {
	Append(ctx context.Context, r models.Report) error
	All(ctx context.Context) ([]models.Report, error)
}

// StorageError marks a failure of the underlying medium (unreadable or
// corrupt store). Handlers map it to an opaque 500.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return fmt.Sprintf("storage %s: %v", e.Op, e.Err) }
func (e *StorageError) Unwrap() error { return e.Err }

// Open resolves the configured backend and returns a ready Store.
//
// STORE_BACKEND=json   always uses the JSON file at REPORT_FILE.
// STORE_BACKEND=mongo  always uses MongoDB at MONGO_URI.
// STORE_BACKEND=auto   (default) prefers Mongo when MONGO_URI is set,
//	otherwise falls back to the JSON file.
func Open(ctx context.Context) (Store, error) {
	mode := strings.ToLower(getenv("STORE_BACKEND", "auto"))
	reportFile := getenv("REPORT_FILE", "reports.json")
	mongoURI := strings.TrimSpace(os.Getenv("MONGO_URI"))

	switch mode {
	case "json":
		log.Printf("store: backend=json file=%s (STORE_BACKEND=json)", reportFile)
		return NewJSONStore(reportFile)
	case "mongo":
		if mongoURI == "" {
			return nil, fmt.Errorf("store: STORE_BACKEND=mongo but MONGO_URI is empty")
		}
		log.Printf("store: backend=mongo uri=%s (STORE_BACKEND=mongo)", redactURI(mongoURI))
		return OpenMongo(ctx, mongoURI, getenv("MONGO_DB", "safenet"))
	default: // auto
		if mongoURI != "" {
			log.Printf("store: backend=mongo uri=%s (auto: MONGO_URI present)", redactURI(mongoURI))
			return OpenMongo(ctx, mongoURI, getenv("MONGO_DB", "safenet"))
		}
		log.Printf("store: backend=json file=%s (auto: no MONGO_URI)", reportFile)
		return NewJSONStore(reportFile)
	}
}

// --- utils ---

func redactURI(raw string) string {
	if raw == "" || !strings.Contains(raw, "://") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	u.User = url.UserPassword("****", "****")
	return u.String()
}

func getenv(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}
