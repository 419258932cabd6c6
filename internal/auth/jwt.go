package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/kiwari-pos/barista/internal/enum"
)

// DefaultTTL is how long a terminal token stays valid when no TTL is given.
const DefaultTTL = 12 * time.Hour

// Claims identify a POS terminal and the price board it publishes to.
type Claims struct {
	TerminalID uuid.UUID `json:"terminal_id"`
	Board      string    `json:"board"`
	Role       string    `json:"role"`
	jwt.RegisteredClaims
}

// CanAccess reports whether the holder may publish to or watch board.
// Managers may use any board, terminals only their own.
func (c *Claims) CanAccess(board string) bool {
	if c == nil {
		return false
	}
	return c.Role == enum.RoleManager || c.Board == board
}

func GenerateToken(secret string, terminalID uuid.UUID, board, role string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	now := time.Now()
	claims := Claims{
		TerminalID: terminalID,
		Board:      board,
		Role:       role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   terminalID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Role != enum.RoleTerminal && claims.Role != enum.RoleManager {
		return nil, fmt.Errorf("unknown role %q", claims.Role)
	}
	return claims, nil
}
