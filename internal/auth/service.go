package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// machineGrantType is the gty claim of client-credentials (M2M) tokens
const machineGrantType = "client-credentials"

// AuthClaims is the authenticated principal extracted from a bearer token
type AuthClaims struct {
	UserID               string   `json:"userId" example:"40158994"`
	Handle               string   `json:"handle" example:"jdoe"`
	Roles                []string `json:"roles" example:"Topcoder Staff"`
	IsMachine            bool     `json:"isMachine" example:"false"`
	jwt.RegisteredClaims `swaggerignore:"true"`
}

// HasRole reports whether the claims carry role, ignoring case
func (c *AuthClaims) HasRole(role string) bool {
	if role == "" {
		return false
	}
	for _, r := range c.Roles {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}

// AuthService validates bearer tokens signed with the shared HS256 secret
type AuthService struct {
	secret []byte
}

// NewAuthService creates a new authentication service
func NewAuthService(secret string) (*AuthService, error) {
	if secret == "" {
		return nil, errors.New("JWT secret is required")
	}
	return &AuthService{secret: []byte(secret)}, nil
}

// ValidateJWT verifies tokenString and maps its claims. Identity claims may
// be namespaced (for example https://topcoder.com/handle) or plain.
func (s *AuthService) ValidateJWT(tokenString string) (*AuthClaims, error) {
	mapClaims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, mapClaims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims := &AuthClaims{
		UserID:    claimString(mapClaims, "userId"),
		Handle:    claimString(mapClaims, "handle"),
		Roles:     claimStrings(mapClaims, "roles"),
		IsMachine: claimString(mapClaims, "gty") == machineGrantType,
	}
	if sub, err := mapClaims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if iss, err := mapClaims.GetIssuer(); err == nil {
		claims.Issuer = iss
	}
	if exp, err := mapClaims.GetExpirationTime(); err == nil {
		claims.ExpiresAt = exp
	}

	if !claims.IsMachine && claims.UserID == "" {
		return nil, errors.New("token carries no user id")
	}
	return claims, nil
}

// GenerateJWT signs claims with the service secret. Used by tooling and tests.
func (s *AuthService) GenerateJWT(claims *AuthClaims) (string, error) {
	body := jwt.MapClaims{
		"userId": claims.UserID,
		"handle": claims.Handle,
		"roles":  claims.Roles,
	}
	if claims.IsMachine {
		body["gty"] = machineGrantType
	}
	if claims.Subject != "" {
		body["sub"] = claims.Subject
	}
	if claims.Issuer != "" {
		body["iss"] = claims.Issuer
	}
	if claims.ExpiresAt != nil {
		body["exp"] = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		body["iat"] = claims.IssuedAt.Unix()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, body)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// lookupClaim finds name either as a plain key or as the last path segment
// of a namespaced claim.
func lookupClaim(claims jwt.MapClaims, name string) (interface{}, bool) {
	if v, ok := claims[name]; ok {
		return v, true
	}
	for key, v := range claims {
		if strings.HasSuffix(key, "/"+name) {
			return v, true
		}
	}
	return nil, false
}

func claimString(claims jwt.MapClaims, name string) string {
	v, ok := lookupClaim(claims, name)
	if !ok || v == nil {
		return ""
	}
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}

func claimStrings(claims jwt.MapClaims, name string) []string {
	v, ok := lookupClaim(claims, name)
	if !ok || v == nil {
		return []string{}
	}
	switch val := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return val
	case string:
		return []string{val}
	}
	return []string{}
}
