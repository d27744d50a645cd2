package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/artem13815/resumeai/pkg/kvstore"
	"github.com/artem13815/resumeai/pkg/scan"
)

// MaxEntries caps the per-user scan history; the oldest record is evicted
// first once the cap is reached.
const MaxEntries = 50

// Store is the append-only scan history. The analysis pipeline never reads
// it; only callers append after a completed scan.
type Store struct {
	kv kvstore.Store
}

func New(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

func key(userID string) string { return "history:" + userID }

// Append puts a result at the head of the user's history, evicting the
// oldest entry beyond MaxEntries.
func (s *Store) Append(ctx context.Context, userID string, result scan.AnalysisResult) error {
	list, err := s.List(ctx, userID)
	if err != nil {
		return err
	}
	list = append([]scan.AnalysisResult{result}, list...)
	if len(list) > MaxEntries {
		list = list[:MaxEntries]
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("history: marshal: %w", err)
	}
	return s.kv.Set(ctx, key(userID), raw)
}

// List returns the user's history, newest first. A missing key is an empty
// history, not an error.
func (s *Store) List(ctx context.Context, userID string) ([]scan.AnalysisResult, error) {
	raw, err := s.kv.Get(ctx, key(userID))
	if errors.Is(err, kvstore.ErrNotFound) {
		return []scan.AnalysisResult{}, nil
	}
	if err != nil {
		return nil, err
	}
	var list []scan.AnalysisResult
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("history: unmarshal: %w", err)
	}
	return list, nil
}

// Clear removes the user's entire history.
func (s *Store) Clear(ctx context.Context, userID string) error {
	return s.kv.Delete(ctx, key(userID))
}
