// Package identity owns the credential table and the provider that the
// session store authenticates against.
package identity

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/dcode-github/nestora/backend/models"
)

var (
	ErrNotFound    = errors.New("identity not found")
	ErrEmailExists = errors.New("email already exists")
)

type Repository interface {
	FindByEmail(ctx context.Context, email string) (models.Credential, error)
	Create(ctx context.Context, cred models.Credential) error
}

// MemoryRepository is an explicitly owned credential table. It starts
// empty; each instance is independent.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]models.Credential
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byEmail: make(map[string]models.Credential)}
}

func (r *MemoryRepository) FindByEmail(_ context.Context, email string) (models.Credential, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cred, ok := r.byEmail[normalizeEmail(email)]
	if !ok {
		return models.Credential{}, ErrNotFound
	}
	return cred, nil
}

func (r *MemoryRepository) Create(_ context.Context, cred models.Credential) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := normalizeEmail(cred.Email)
	if _, exists := r.byEmail[key]; exists {
		return ErrEmailExists
	}
	r.byEmail[key] = cred
	return nil
}

func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byEmail)
}

func normalizeEmail(email string) string {
	return strings.TrimSpace(email)
}
