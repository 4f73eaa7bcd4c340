package ports

import "github.com/cinewatch/movienight/internal/core/domain"

// TokenIssuer signs a self-contained session token for the given identity.
type TokenIssuer interface {
	Issue(session domain.Session) (string, error)
}

// TokenVerifier validates a token's signature and expiration. It never
// returns an error: a token either decodes to an identity or it does not.
type TokenVerifier interface {
	Verify(token string) (domain.Session, bool)
}
