package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/reportcal/internal/repository"
	"github.com/google/uuid"
)

// IdentityKey holds the generated device identity sent with notifications.
const IdentityKey = "identity"

// ResolveIdentity returns configured when set, otherwise the stored device
// identity, generating and storing one on first use.
func ResolveIdentity(ctx context.Context, kv repository.KVRepo, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	id, err := kv.Get(ctx, IdentityKey)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return "", fmt.Errorf("reading identity: %w", err)
	}
	id = uuid.New().String()
	if err := kv.Put(ctx, IdentityKey, id); err != nil {
		return "", fmt.Errorf("storing identity: %w", err)
	}
	return id, nil
}
