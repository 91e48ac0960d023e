package auth

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/icconsult/customer-service/pkg/util/errorutil"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", 5, "iss", "aud")

	token, exp, err := tm.GenerateToken("sub-1", "customer:write")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(5*time.Minute), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "sub-1", claims.Subject)
	assert.Equal(t, "customer:write", claims.Scope)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", 5, "iss", "aud")

	other, _, err := NewTokenManager("other", 5, "iss", "aud").GenerateToken("sub-1", "")
	require.NoError(t, err)
	_, err = tm.ParseToken(other)
	assert.Error(t, err, "wrong signature")

	wrongIss, _, err := NewTokenManager("secret", 5, "elsewhere", "aud").GenerateToken("sub-1", "")
	require.NoError(t, err)
	_, err = tm.ParseToken(wrongIss)
	assert.Error(t, err, "wrong issuer")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   "sub-1",
		Issuer:    "iss",
		Audience:  jwt.ClaimStrings{"aud"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}})
	signed, err := expired.SignedString([]byte("secret"))
	require.NoError(t, err)
	_, err = tm.ParseToken(signed)
	assert.Error(t, err, "expired")

	none := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-1"}})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tm.ParseToken(unsigned)
	assert.Error(t, err, "alg none")
}

func TestExtractor_ReturnsSubject(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := NewExtractor(zap.New(core), false)

	sub, err := e.Extract(&Credential{Token: "raw.jwt.value", Subject: "sub-1"}, OperationWrite)

	require.NoError(t, err)
	assert.Equal(t, "sub-1", sub)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "User attempting write operation: [sub-1].", logs.All()[0].Message)
	assert.Zero(t, logs.FilterField(zap.String("token", "raw.jwt.value")).Len())
}

func TestExtractor_RawTokenLoggingIsOptIn(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	e := NewExtractor(zap.New(core), true)

	_, err := e.Extract(&Credential{Token: "raw.jwt.value", Subject: "sub-1"}, OperationRead)

	require.NoError(t, err)
	assert.Equal(t, 1, logs.FilterField(zap.String("token", "raw.jwt.value")).Len())
	assert.Equal(t, 1, logs.FilterMessage("User attempting read operation: [sub-1].").Len())
}

func TestExtractor_Unauthorized(t *testing.T) {
	e := NewExtractor(zap.NewNop(), true)

	for _, cred := range []*Credential{nil, {Token: "raw.jwt.value"}} {
		_, err := e.Extract(cred, OperationRead)
		assert.True(t, apperrors.IsCode(err, apperrors.CodeUnauthorized))
	}
}

func newMiddlewareApp(tm *TokenManager) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Message)
		},
	})
	app.Use(NewAuthMiddleware(tm).Handle)
	app.Get("/probe", func(c *fiber.Ctx) error {
		cred := CredentialFromContext(c)
		if cred == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(cred.Subject)
	})
	return app
}

func TestAuthMiddleware(t *testing.T) {
	tm := NewTokenManager("secret", 5, "", "")
	app := newMiddlewareApp(tm)

	valid, _, err := tm.GenerateToken("sub-1", "")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"no header", "", http.StatusOK, "anonymous"},
		{"valid bearer", "Bearer " + valid, http.StatusOK, "sub-1"},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, "sub-1"},
		{"basic scheme", "Basic dXNlcjpwYXNz", http.StatusUnauthorized, "invalid authorization header"},
		{"scheme only", "Bearer", http.StatusUnauthorized, "invalid authorization header"},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized, "invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Equal(t, tt.wantBody, string(body))
		})
	}
}
