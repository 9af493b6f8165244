package services

import (
	"testing"

	"promasterBack/utils"
)

func TestSessionHelperCarriesTokenManager(t *testing.T) {
	m, err := utils.NewManager("test-signing-key")
	if err != nil {
		t.Fatalf("NewManager returned error: %v", err)
	}

	s := &CompanyService{TokenManager: m, SigningKey: "test-signing-key"}
	helper := s.sessionHelper()

	if helper.TokenManager != m {
		t.Fatal("expected company sign-in sessions to use the shared token manager")
	}
	if helper.SigningKey != s.SigningKey {
		t.Errorf("expected signing key to carry over, got %q", helper.SigningKey)
	}
}
