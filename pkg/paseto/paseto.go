package paseto

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"dayflow-backend/models"
)

const tokenDuration = 24 * time.Hour

// Maker issues and validates v2.local PASETO tokens with a symmetric key.
type Maker struct {
	paseto       *paseto.V2
	symmetricKey []byte
}

// NewMaker decodes the base64 URL-encoded secret and builds a token maker.
// PASETO v2 local requires exactly 32 key bytes.
func NewMaker(secretBase64 string) (*Maker, error) {
	key, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		key, err = base64.StdEncoding.DecodeString(secretBase64)
		if err != nil {
			return nil, fmt.Errorf("PASETO secret is not valid base64: %w", err)
		}
	}

	if len(key) != 32 {
		return nil, fmt.Errorf("PASETO secret must decode to exactly 32 bytes, got %d", len(key))
	}

	return &Maker{
		paseto:       paseto.NewV2(),
		symmetricKey: key,
	}, nil
}

func (m *Maker) GenerateToken(user *models.User) (string, error) {
	now := time.Now()

	token := paseto.JSONToken{
		Jti:        uuid.NewString(),
		IssuedAt:   now,
		NotBefore:  now,
		Expiration: now.Add(tokenDuration),
	}

	token.Set("user_id", user.ID.Hex())
	token.Set("email", user.Email)
	token.Set("role", user.Role)

	return m.paseto.Encrypt(m.symmetricKey, token, "")
}

func (m *Maker) ValidateToken(tokenString string) (*models.Claims, error) {
	var token paseto.JSONToken
	var footer string

	if err := m.paseto.Decrypt(tokenString, m.symmetricKey, &token, &footer); err != nil {
		return nil, fmt.Errorf("failed to decrypt token: %w", err)
	}

	if err := token.Validate(); err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	userID, err := primitive.ObjectIDFromHex(token.Get("user_id"))
	if err != nil {
		return nil, fmt.Errorf("invalid user_id claim: %w", err)
	}

	return &models.Claims{
		UserID: userID,
		Email:  token.Get("email"),
		Role:   token.Get("role"),
	}, nil
}
