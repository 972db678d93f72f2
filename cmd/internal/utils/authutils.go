package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v3"
	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

var ErrNoToken = errors.New("no token provided")

type TokenData struct {
	UserID int64
	Exp    int64
}

// TokenVerifier validates bearer tokens either against a shared HMAC
// secret or against keys published at a JWKS endpoint.
type TokenVerifier struct {
	keyfunc jwt.Keyfunc
	methods []string
}

// NewHMACVerifier verifies HS256 tokens signed with 'secret'.
func NewHMACVerifier(secret []byte) *TokenVerifier {
	return &TokenVerifier{
		keyfunc: func(*jwt.Token) (any, error) {
			return secret, nil
		},
		methods: []string{jwt.SigningMethodHS256.Alg()},
	}
}

// NewJWKSVerifier verifies tokens against the keys served at jwksURL.
func NewJWKSVerifier(jwksURL string) (*TokenVerifier, error) {
	jwks, err := keyfunc.NewDefault([]string{jwksURL})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS from resource at %s: %w", jwksURL, err)
	}

	log.Infof("JWKS initialized. Keys loaded from %s", jwksURL)
	return &TokenVerifier{
		keyfunc: jwks.Keyfunc,
		methods: []string{"RS256", "ES256"},
	}, nil
}

// ValidateToken parses AND validates the signature locally.
// It returns the data if the token is authentic and unexpired.
func (v *TokenVerifier) ValidateToken(tokenString string) (*TokenData, error) {
	clean := sanitizeToken(tokenString)
	if clean == "" {
		return nil, ErrNoToken
	}

	token, err := jwt.Parse(clean, v.keyfunc, jwt.WithValidMethods(v.methods), jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims format")
	}

	userID, err := strconv.ParseInt(getValue(claims, "sub"), 10, 64)
	if err != nil || userID <= 0 {
		return nil, errors.New("subject is not a user id")
	}

	return &TokenData{
		UserID: userID,
		Exp:    getInt64(claims, "exp"),
	}, nil
}

// ParseTokenDataCtx returns ErrNoToken when the request carries no Authorization header.
func (v *TokenVerifier) ParseTokenDataCtx(ctx echo.Context) (*TokenData, error) {
	token := ctx.Request().Header.Get(echo.HeaderAuthorization)
	return v.ValidateToken(token)
}

// IssueToken signs an HS256 token for 'userID', used by the operator CLI and tests.
func IssueToken(secret []byte, userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatInt(userID, 10),
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

func sanitizeToken(token string) string {
	return strings.TrimSpace(strings.TrimPrefix(token, "Bearer "))
}

func getValue(claims jwt.MapClaims, key string) string {
	if val, ok := claims[key].(string); ok {
		return val
	}
	return ""
}

func getInt64(claims jwt.MapClaims, key string) int64 {
	val, ok := claims[key]
	if !ok {
		return 0
	}
	if f, ok := val.(float64); ok {
		return int64(f)
	}
	if i, ok := val.(int64); ok {
		return i
	}
	return 0
}
