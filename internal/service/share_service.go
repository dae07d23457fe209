package service

import (
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
)

// ShareService mints and verifies read-only share tokens for stored results.
// A token is the result ID encrypted and signed with a fernet key; anyone
// holding the link can fetch the snapshot until the TTL expires, without the
// ID itself being guessable from the URL.
type ShareService struct {
	key *fernet.Key
	ttl time.Duration
}

// NewShareService creates a ShareService from a base64 fernet key.
// An empty key is a configuration choice that disables sharing; both methods
// then return ErrInvalidShareToken.
func NewShareService(encodedKey string, ttl time.Duration) (*ShareService, error) {
	if encodedKey == "" {
		return &ShareService{ttl: ttl}, nil
	}

	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode share key: %w", err)
	}

	return &ShareService{key: key, ttl: ttl}, nil
}

// Enabled reports whether a share key is configured.
func (s *ShareService) Enabled() bool {
	return s.key != nil
}

// MintToken creates a share token wrapping the given result ID.
func (s *ShareService) MintToken(resultID string) (string, error) {
	if s.key == nil {
		return "", apperrors.ErrInvalidShareToken
	}

	token, err := fernet.EncryptAndSign([]byte(resultID), s.key)
	if err != nil {
		return "", fmt.Errorf("failed to mint share token: %w", err)
	}

	return string(token), nil
}

// VerifyToken verifies a share token and returns the wrapped result ID.
// Expired, tampered or foreign tokens all map to ErrInvalidShareToken.
func (s *ShareService) VerifyToken(token string) (string, error) {
	if s.key == nil {
		return "", apperrors.ErrInvalidShareToken
	}

	resultID := fernet.VerifyAndDecrypt([]byte(token), s.ttl, []*fernet.Key{s.key})
	if resultID == nil {
		return "", apperrors.ErrInvalidShareToken
	}

	return string(resultID), nil
}
