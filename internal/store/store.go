// Package store keeps simulation and forecast results so they can be
// fetched again by ID.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("result not found")

// Record is a stored result. Payload is the result's JSON encoding.
type Record struct {
	ID        string          `json:"id"`
	Kind      string          `json:"kind"`
	CreatedAt time.Time       `json:"createdAt"`
	Payload   json.RawMessage `json:"result"`
}

type Store interface {
	// Save stores result under a new ID and returns it.
	Save(ctx context.Context, kind string, result any) (string, error)
	// Get returns ErrNotFound for unknown or expired IDs.
	Get(ctx context.Context, id string) (*Record, error)
	Close() error
}

func newRecord(kind string, result any, now time.Time) (*Record, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encode %s result: %w", kind, err)
	}
	return &Record{
		ID:        uuid.NewString(),
		Kind:      kind,
		CreatedAt: now.UTC(),
		Payload:   payload,
	}, nil
}
