package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"labdesk/internal/domain/actor"
	"labdesk/internal/shared/biztime"
)

// Claims carries the authenticated identity: an opaque subject id plus the
// role set the dispatcher's guards reason over.
type Claims struct {
	Roles []actor.Role `json:"roles"`
	jwt.RegisteredClaims
}

// JWTService verifies bearer tokens into actors. The dispatcher trusts the
// token issuer for identity and roles; it never issues credentials of its
// own beyond Generate, which exists for tooling and tests.
type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

func (s *JWTService) Generate(subjectID string, roles []actor.Role) (string, error) {
	now := biztime.NowUTC()

	claims := &Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.accessExpMinutes) * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("token missing subject")
	}

	return claims, nil
}

// Actor converts verified claims into the domain's acting identity.
func (c *Claims) Actor() actor.Actor {
	return actor.New(c.Subject, c.Roles...)
}
