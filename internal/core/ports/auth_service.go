package ports

import (
	"context"

	"github.com/cinewatch/movienight/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
