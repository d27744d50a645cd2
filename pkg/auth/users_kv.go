package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/artem13815/resumeai/pkg/kvstore"
)

const adminMarkerKey = "auth:admin"

func userKey(email string) string { return "user:" + email }

// KVUserRepository persists users in the key-value store.
type KVUserRepository struct {
	kv kvstore.Store
}

func NewKVUserRepository(kv kvstore.Store) *KVUserRepository {
	return &KVUserRepository{kv: kv}
}

func (r *KVUserRepository) Create(ctx context.Context, user User) error {
	raw, err := json.Marshal(struct {
		User
		PasswordHash string `json:"passwordHash"`
	}{User: user, PasswordHash: user.PasswordHash})
	if err != nil {
		return fmt.Errorf("auth: marshal user: %w", err)
	}
	if err := r.kv.Set(ctx, userKey(user.Email), raw); err != nil {
		return err
	}
	if user.IsAdmin {
		return r.kv.Set(ctx, adminMarkerKey, []byte(user.Email))
	}
	return nil
}

func (r *KVUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	raw, err := r.kv.Get(ctx, userKey(email))
	if errors.Is(err, kvstore.ErrNotFound) {
		return User{}, ErrNotFound
	}
	if err != nil {
		return User{}, err
	}
	var rec struct {
		User
		PasswordHash string `json:"passwordHash"`
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return User{}, fmt.Errorf("auth: unmarshal user: %w", err)
	}
	u := rec.User
	u.PasswordHash = rec.PasswordHash
	return u, nil
}

func (r *KVUserRepository) HasAdmin(ctx context.Context) (bool, error) {
	_, err := r.kv.Get(ctx, adminMarkerKey)
	if errors.Is(err, kvstore.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
