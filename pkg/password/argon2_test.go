package password

import (
	"strings"
	"testing"
)

func TestHash(t *testing.T) {
	tests := []struct {
		name     string
		password string
		params   *Params
	}{
		{
			name:     "hash with default params",
			password: "SecurePassword123!",
			params:   nil,
		},
		{
			name:     "hash with custom params",
			password: "AnotherPassword456!",
			params:   &Params{Memory: 32 * 1024, Iterations: 2, Parallelism: 1, SaltLength: 16, KeyLength: 32},
		},
		{
			name:     "hash empty password",
			password: "",
			params:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := Hash(tt.password, tt.params)
			if err != nil {
				t.Fatalf("Hash() error = %v", err)
			}
			if !strings.HasPrefix(hash, "$argon2id$v=19$") {
				t.Errorf("Hash() invalid format: %s", hash)
			}
		})
	}
}

func TestHashUniqueSalt(t *testing.T) {
	first, err := Hash("same-password", nil)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	second, err := Hash("same-password", nil)
	if err != nil {
		t.Fatalf("Hash() error = %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password should differ (random salt)")
	}
}

func TestVerify(t *testing.T) {
	hash, err := Hash("TestPassword123!", nil)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	t.Run("correct password", func(t *testing.T) {
		ok, err := Verify("TestPassword123!", hash)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if !ok {
			t.Error("Verify() = false for correct password")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		ok, err := Verify("WrongPassword", hash)
		if err != nil {
			t.Fatalf("Verify() error = %v", err)
		}
		if ok {
			t.Error("Verify() = true for wrong password")
		}
	})

	t.Run("malformed hash", func(t *testing.T) {
		if _, err := Verify("whatever", "$argon2id$broken"); err == nil {
			t.Error("Verify() should fail on a malformed hash")
		}
	})

	t.Run("unsupported algorithm", func(t *testing.T) {
		if _, err := Verify("whatever", "$bcrypt$v=19$m=1,t=1,p=1$c2FsdA$aGFzaA"); err != ErrInvalidHash {
			t.Errorf("Verify() error = %v, want ErrInvalidHash", err)
		}
	})
}
