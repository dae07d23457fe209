package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/joya-energy/solar-simulation-backend/internal/apperrors"
	"github.com/joya-energy/solar-simulation-backend/internal/service"
	"github.com/joya-energy/solar-simulation-backend/internal/testutil"
)

// TestShareService_RoundTrip verifies that a minted token resolves back to
// the wrapped result ID.
func TestShareService_RoundTrip(t *testing.T) {
	shareService := testutil.NewTestShareService(t, time.Hour)

	resultID := testutil.MakeID()

	token, err := shareService.MintToken(resultID)
	if err != nil {
		t.Fatalf("MintToken() returned unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("Expected a non-empty token")
	}
	if token == resultID {
		t.Fatal("Token must not expose the raw result ID")
	}

	resolved, err := shareService.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() returned unexpected error: %v", err)
	}
	if resolved != resultID {
		t.Errorf("Expected resolved ID %s, got %s", resultID, resolved)
	}
}

// TestShareService_RejectsBadTokens verifies tampered and expired tokens map
// to the share-token sentinel.
//
// WHY: share links are the only unauthenticated read path; anything short of
// a valid, fresh token must be indistinguishable from garbage.
func TestShareService_RejectsBadTokens(t *testing.T) {
	t.Run("tampered token", func(t *testing.T) {
		shareService := testutil.NewTestShareService(t, time.Hour)

		token, err := shareService.MintToken(testutil.MakeID())
		if err != nil {
			t.Fatalf("MintToken() returned unexpected error: %v", err)
		}

		_, err = shareService.VerifyToken(token + "x")
		if !errors.Is(err, apperrors.ErrInvalidShareToken) {
			t.Errorf("Expected ErrInvalidShareToken, got %v", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		shareService := testutil.NewTestShareService(t, time.Nanosecond)

		token, err := shareService.MintToken(testutil.MakeID())
		if err != nil {
			t.Fatalf("MintToken() returned unexpected error: %v", err)
		}

		time.Sleep(5 * time.Millisecond)

		_, err = shareService.VerifyToken(token)
		if !errors.Is(err, apperrors.ErrInvalidShareToken) {
			t.Errorf("Expected ErrInvalidShareToken, got %v", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		shareService := testutil.NewTestShareService(t, time.Hour)

		_, err := shareService.VerifyToken("not-a-token")
		if !errors.Is(err, apperrors.ErrInvalidShareToken) {
			t.Errorf("Expected ErrInvalidShareToken, got %v", err)
		}
	})
}

// TestShareService_Disabled verifies behavior without a configured key.
func TestShareService_Disabled(t *testing.T) {
	shareService, err := service.NewShareService("", time.Hour)
	if err != nil {
		t.Fatalf("NewShareService() returned unexpected error: %v", err)
	}

	if shareService.Enabled() {
		t.Error("Expected sharing to be disabled without a key")
	}

	if _, err := shareService.MintToken("someid"); !errors.Is(err, apperrors.ErrInvalidShareToken) {
		t.Errorf("Expected ErrInvalidShareToken from MintToken, got %v", err)
	}
	if _, err := shareService.VerifyToken("sometoken"); !errors.Is(err, apperrors.ErrInvalidShareToken) {
		t.Errorf("Expected ErrInvalidShareToken from VerifyToken, got %v", err)
	}
}
