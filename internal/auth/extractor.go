package auth

import (
	"go.uber.org/zap"

	apperrors "github.com/icconsult/customer-service/pkg/util/errorutil"
)

// Operation is the kind of access a caller attempts.
type Operation string

const (
	OperationRead  Operation = "read"
	OperationWrite Operation = "write"
)

// Extractor yields the caller identity from a credential.
type Extractor struct {
	logger      *zap.Logger
	logRawToken bool
}

// NewExtractor builds an extractor. logRawToken enables a debug line with the raw token.
func NewExtractor(logger *zap.Logger, logRawToken bool) *Extractor {
	return &Extractor{logger: logger, logRawToken: logRawToken}
}

// Extract returns the credential's subject, or an Unauthorized error when
// there is no credential or it carries no subject.
func (e *Extractor) Extract(cred *Credential, op Operation) (string, error) {
	if cred == nil || cred.Subject == "" {
		return "", apperrors.NewUnauthorized("No subject assigned.")
	}
	if e.logRawToken {
		e.logger.Debug("Obtained token", zap.String("token", cred.Token))
	}
	e.logger.Info("User attempting " + string(op) + " operation: [" + cred.Subject + "].")
	return cred.Subject, nil
}
