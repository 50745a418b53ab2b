package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// RoundTokens issues and checks the bearer tokens that tie a player to the
// round they started.
type RoundTokens struct {
	secret []byte
	ttl    time.Duration
}

func NewRoundTokens(secret string, ttl time.Duration) (*RoundTokens, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RoundTokens{secret: []byte(secret), ttl: ttl}, nil
}

func (t *RoundTokens) Generate(roundID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"round_id": roundID,
		"exp":      now.Add(t.ttl).Unix(),
		"iat":      now.Unix(),
		"nbf":      now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse returns the round id carried by a valid token.
func (t *RoundTokens) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(tok *jwt.Token) (interface{}, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}

	now := time.Now().Unix()
	if nbf, ok := claims["nbf"].(float64); ok && int64(nbf) > now {
		return "", errors.New("token not valid yet")
	}

	roundID, ok := claims["round_id"].(string)
	if !ok || roundID == "" {
		return "", errors.New("round_id not found")
	}
	return roundID, nil
}
