package api

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/polsala/Depths-of-the-Fractured-Mind-sub000/internal/constants"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	t.Setenv(constants.EnvSessionSecret, "test-secret")

	token, err := createSessionToken("ada@example.com", "Ada", time.Hour)
	if err != nil {
		t.Fatalf("createSessionToken: %v", err)
	}
	claims, err := parseAndValidateSession(token)
	if err != nil {
		t.Fatalf("parseAndValidateSession: %v", err)
	}
	if claims.Sub != "ada@example.com" || claims.Name != "Ada" {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestSessionTokenRejectsTampering(t *testing.T) {
	t.Setenv(constants.EnvSessionSecret, "test-secret")

	token, err := createSessionToken("ada@example.com", "Ada", time.Hour)
	if err != nil {
		t.Fatalf("createSessionToken: %v", err)
	}
	if _, err := parseAndValidateSession(token + "x"); err == nil {
		t.Fatal("tampered signature must be rejected")
	}
	if _, err := parseAndValidateSession("not.a.token"); err == nil {
		t.Fatal("garbage token must be rejected")
	}
}

func TestDevSecretIsStableUnderConcurrency(t *testing.T) {
	t.Setenv(constants.EnvSessionSecret, "")

	const n = 16
	secrets := make([][]byte, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s, err := getSessionSecret()
			if err != nil {
				t.Errorf("getSessionSecret: %v", err)
				return
			}
			secrets[i] = s
		}(i)
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		if !bytes.Equal(secrets[0], secrets[i]) {
			t.Fatal("concurrent callers must see the same dev secret")
		}
	}
}
