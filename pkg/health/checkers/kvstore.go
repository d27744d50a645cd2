package checkers

import (
	"bytes"
	"context"
	"errors"
	"time"

	"github.com/artem13815/resumeai/pkg/kvstore"
)

const probeKey = "health:probe"

// KVChecker verifies the key-value store can be written and read back.
type KVChecker struct {
	store kvstore.Store
}

func NewKVChecker(store kvstore.Store) *KVChecker {
	return &KVChecker{store: store}
}

func (c *KVChecker) Name() string { return "kvstore" }

func (c *KVChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	stamp := []byte(time.Now().UTC().Format(time.RFC3339Nano))
	if err := c.store.Set(ctx, probeKey, stamp); err != nil {
		return err
	}
	got, err := c.store.Get(ctx, probeKey)
	if err != nil {
		return err
	}
	if !bytes.Equal(got, stamp) {
		return errors.New("probe value mismatch")
	}
	return nil
}
