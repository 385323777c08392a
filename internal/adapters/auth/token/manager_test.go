package token

import (
	"context"
	"testing"
	"time"
)

func TestIssueAndVerify(t *testing.T) {
	mgr, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	tok, err := mgr.Issue("u1", "ana@example.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if tok == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := mgr.Verify(context.Background(), tok)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.UserID != "u1" || claims.Email != "ana@example.com" {
		t.Fatalf("unexpected claims %#v", claims)
	}
}

func TestVerify_RejectsBadTokens(t *testing.T) {
	mgr, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	ctx := context.Background()

	if _, err := mgr.Verify(ctx, ""); err != ErrTokenEmpty {
		t.Fatalf("empty token: expected ErrTokenEmpty, got %v", err)
	}
	if _, err := mgr.Verify(ctx, "not-a-jwt"); err != ErrTokenInvalid {
		t.Fatalf("garbage token: expected ErrTokenInvalid, got %v", err)
	}

	// Token firmado con otro secret.
	other, err := NewManager("other-secret", time.Hour)
	if err != nil {
		t.Fatalf("other manager: %v", err)
	}
	tok, err := other.Issue("u1", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := mgr.Verify(ctx, tok); err != ErrTokenInvalid {
		t.Fatalf("wrong secret: expected ErrTokenInvalid, got %v", err)
	}
}

func TestVerify_RejectsExpiredToken(t *testing.T) {
	mgr, err := NewManager("test-secret", time.Minute)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}

	issuedAt := time.Now().Add(-time.Hour)
	mgr.now = func() time.Time { return issuedAt }

	tok, err := mgr.Issue("u1", "")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	// De vuelta al presente: el token ya venció.
	mgr.now = time.Now
	if _, err := mgr.Verify(context.Background(), tok); err != ErrTokenInvalid {
		t.Fatalf("expired token: expected ErrTokenInvalid, got %v", err)
	}
}

func TestNewManager_RequiresSecret(t *testing.T) {
	if _, err := NewManager("  ", time.Hour); err == nil {
		t.Fatalf("expected error for blank secret")
	}
}

func TestIssue_RequiresUserID(t *testing.T) {
	mgr, err := NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new manager: %v", err)
	}
	if _, err := mgr.Issue("", "ana@example.com"); err == nil {
		t.Fatalf("expected error for empty user id")
	}
}
