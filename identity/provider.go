package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dcode-github/nestora/backend/models"
	"github.com/dcode-github/nestora/backend/utils"
	"github.com/google/uuid"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// DefaultDelay stands in for a network round trip.
const DefaultDelay = time.Second

// Provider resolves credentials to identities. The session store only
// depends on this interface, so a real backend can replace MockProvider.
type Provider interface {
	Authenticate(ctx context.Context, email, password string) (models.Identity, error)
	Register(ctx context.Context, name, email, password string) (models.Identity, error)
}

// MockProvider answers from a Repository after a fixed delay.
type MockProvider struct {
	repo  Repository
	delay time.Duration
	now   func() time.Time
}

func NewMockProvider(repo Repository, delay time.Duration) *MockProvider {
	return &MockProvider{repo: repo, delay: delay, now: time.Now}
}

func (p *MockProvider) Authenticate(ctx context.Context, email, password string) (models.Identity, error) {
	if err := p.wait(ctx); err != nil {
		return models.Identity{}, err
	}

	cred, err := p.repo.FindByEmail(ctx, email)
	if errors.Is(err, ErrNotFound) {
		return models.Identity{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.Identity{}, fmt.Errorf("authenticate: %w", err)
	}

	if !utils.CheckPasswordHash(password, cred.PasswordHash) {
		return models.Identity{}, ErrInvalidCredentials
	}
	return cred.Identity(), nil
}

func (p *MockProvider) Register(ctx context.Context, name, email, password string) (models.Identity, error) {
	if err := p.wait(ctx); err != nil {
		return models.Identity{}, err
	}

	if _, err := p.repo.FindByEmail(ctx, email); err == nil {
		return models.Identity{}, ErrEmailExists
	} else if !errors.Is(err, ErrNotFound) {
		return models.Identity{}, fmt.Errorf("register: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return models.Identity{}, fmt.Errorf("hash password: %w", err)
	}

	cred := models.Credential{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        normalizeEmail(email),
		PasswordHash: hash,
		CreatedAt:    p.now(),
	}
	if err := p.repo.Create(ctx, cred); err != nil {
		if errors.Is(err, ErrEmailExists) {
			return models.Identity{}, ErrEmailExists
		}
		return models.Identity{}, fmt.Errorf("register: %w", err)
	}

	utils.Logger.Infof("Registered identity %s", cred.UserID)
	return cred.Identity(), nil
}

func (p *MockProvider) wait(ctx context.Context) error {
	if p.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(p.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
