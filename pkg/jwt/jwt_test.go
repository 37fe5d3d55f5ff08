package jwt

import (
	"testing"
	"time"
)

func newTestManager(t *testing.T, duration time.Duration) *Manager {
	t.Helper()

	privateKeyPEM, publicKeyPEM, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	manager, err := NewManager(privateKeyPEM, publicKeyPEM, duration)
	if err != nil {
		t.Fatalf("NewManager() error = %v", err)
	}

	return manager
}

func TestGenerateKeyPair(t *testing.T) {
	privateKeyPEM, publicKeyPEM, err := GenerateKeyPair()
	if err != nil {
		t.Fatalf("GenerateKeyPair() error = %v", err)
	}

	if len(privateKeyPEM) < 100 {
		t.Error("Private key seems too short")
	}
	if len(publicKeyPEM) < 100 {
		t.Error("Public key seems too short")
	}
}

func TestNewManagerInvalidKeys(t *testing.T) {
	if _, err := NewManager("not a key", "also not a key", time.Hour); err == nil {
		t.Error("NewManager() should fail on garbage PEM input")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	manager := newTestManager(t, 24*time.Hour)

	token, err := manager.GenerateToken("user-1", "acme", "subcontractor")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}

	claims, err := manager.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}

	if claims.UserID != "user-1" {
		t.Errorf("UserID = %v, want user-1", claims.UserID)
	}
	if claims.Username != "acme" {
		t.Errorf("Username = %v, want acme", claims.Username)
	}
	if claims.Role != "subcontractor" {
		t.Errorf("Role = %v, want subcontractor", claims.Role)
	}
}

func TestValidateTokenTampered(t *testing.T) {
	manager := newTestManager(t, time.Hour)

	token, err := manager.GenerateToken("user-1", "acme", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tampered := token[:len(token)-4] + "AAAA"
	if _, err := manager.ValidateToken(tampered); err == nil {
		t.Error("ValidateToken() should reject a tampered token")
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	manager := newTestManager(t, time.Hour)
	other := newTestManager(t, time.Hour)

	token, err := manager.GenerateToken("user-1", "acme", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	if _, err := other.ValidateToken(token); err == nil {
		t.Error("ValidateToken() should reject a token signed with a different key")
	}
}

func TestValidateTokenExpired(t *testing.T) {
	manager := newTestManager(t, -time.Minute)

	token, err := manager.GenerateToken("user-1", "acme", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	_, err = manager.ValidateToken(token)
	if err != ErrTokenExpired {
		t.Errorf("ValidateToken() error = %v, want ErrTokenExpired", err)
	}
}
