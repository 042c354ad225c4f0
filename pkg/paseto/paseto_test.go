package paseto

import (
	"encoding/base64"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"dayflow-backend/models"
)

func testKey(t *testing.T, raw string) string {
	t.Helper()
	if len(raw) != 32 {
		t.Fatalf("test key must be 32 bytes, got %d", len(raw))
	}
	return base64.URLEncoding.EncodeToString([]byte(raw))
}

func TestGenerateAndValidateRoundtrip(t *testing.T) {
	maker, err := NewMaker(testKey(t, "0123456789abcdef0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewMaker: %v", err)
	}

	user := &models.User{
		ID:    primitive.NewObjectID(),
		Email: "priya.sharma@dayflow.io",
		Role:  models.RoleAdmin,
	}

	token, err := maker.GenerateToken(user)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := maker.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user_id = %s, want %s", claims.UserID.Hex(), user.ID.Hex())
	}
	if claims.Email != user.Email {
		t.Errorf("email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("role = %q, want %q", claims.Role, models.RoleAdmin)
	}
}

func TestValidateRejectsTokenFromDifferentKey(t *testing.T) {
	issuer, err := NewMaker(testKey(t, "0123456789abcdef0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewMaker: %v", err)
	}
	verifier, err := NewMaker(testKey(t, "fedcba9876543210fedcba9876543210"))
	if err != nil {
		t.Fatalf("NewMaker: %v", err)
	}

	token, err := issuer.GenerateToken(&models.User{
		ID:    primitive.NewObjectID(),
		Email: "priya.sharma@dayflow.io",
		Role:  models.RoleEmployee,
	})
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("token issued under a different key must not validate")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	maker, err := NewMaker(testKey(t, "0123456789abcdef0123456789abcdef"))
	if err != nil {
		t.Fatalf("NewMaker: %v", err)
	}

	if _, err := maker.ValidateToken("v2.local.not-a-real-token"); err == nil {
		t.Fatal("garbage token must not validate")
	}
}

func TestNewMakerRejectsBadSecrets(t *testing.T) {
	cases := []struct {
		name   string
		secret string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"wrong length", base64.URLEncoding.EncodeToString([]byte("too-short"))},
		{"empty", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewMaker(tc.secret); err == nil {
				t.Fatal("NewMaker must reject an unusable secret")
			}
		})
	}
}
