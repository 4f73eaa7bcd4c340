package ports

import (
	"context"

	"github.com/cinewatch/movienight/internal/core/domain"
)

// CredentialStore defines the interface for user identity persistence.
// Email uniqueness is enforced by the store at creation time; it is the
// sole serialization point for concurrent registrations.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
