package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/icconsult/customer-service/pkg/util/errorutil"
)

const credentialKey = "auth_credential"

// Credential is a validated bearer token and its subject claim.
type Credential struct {
	Token   string
	Subject string
}

// AuthMiddleware validates bearer tokens and attaches the credential.
type AuthMiddleware struct {
	tokens *TokenManager
}

// NewAuthMiddleware constructs middleware.
func NewAuthMiddleware(tokens *TokenManager) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// Handle rejects malformed or invalid tokens. Requests without an
// Authorization header pass through without a credential; handlers decide.
func (m *AuthMiddleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return c.Next()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}
	raw := strings.TrimSpace(parts[1])
	if raw == "" {
		return apperrors.NewUnauthorized("missing bearer token")
	}

	claims, err := m.tokens.ParseToken(raw)
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	c.Locals(credentialKey, &Credential{Token: raw, Subject: claims.Subject})
	return c.Next()
}

// CredentialFromContext retrieves the credential, or nil when none was presented.
func CredentialFromContext(c *fiber.Ctx) *Credential {
	cred, _ := c.Locals(credentialKey).(*Credential)
	return cred
}
