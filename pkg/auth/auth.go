package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleStaff     Role = "staff"
	RoleLibrarian Role = "librarian"
	RoleReader    Role = "reader"
	RoleAdmin     Role = "admin"
)

type Config struct {
	Secret string `yaml:"secret" envconfig:"ACCESS_TOKEN_SECRET" required:"true"`
}

// Claims is the payload the identity provider signs into access tokens.
type Claims struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

type Identity struct {
	UserID string
	Role   Role
	Name   string
}

type ctxKey struct{}

var ErrNoIdentity = errors.New("identity is missing")

func SetAuthContext(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

func FromContext(ctx context.Context) (Identity, error) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	if !ok {
		return Identity{}, ErrNoIdentity
	}
	return id, nil
}

// NewToken signs claims with HS256. The library service only verifies tokens;
// this is used by tooling and tests.
func NewToken(secret string, id Identity, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID: id.UserID,
		Role:   id.Role,
		Name:   id.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ParseToken(secret, tokenStr string) (Identity, error) {
	claims := new(Claims)
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return Identity{}, err
	}
	if !token.Valid {
		return Identity{}, errors.New("token is invalid")
	}
	return Identity{UserID: claims.UserID, Role: claims.Role, Name: claims.Name}, nil
}
