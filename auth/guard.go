// Package auth guards the admin area behind the shared admin password.
package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/barinistanbul/storefront/config"
	"github.com/barinistanbul/storefront/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken = errors.New("invalid or expired token")
	ErrRevokedToken = errors.New("token has been revoked")
)

// Guard decides who may use the admin area.
type Guard interface {
	Login(password string) (token string, ok bool)
	Logout(token string)
	Authenticate(token string) (*Claims, error)
}

type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// PasswordGuard checks a single admin password and issues signed tokens for the session.
// Logged out tokens are remembered until they would have expired anyway.
type PasswordGuard struct {
	hash   []byte
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewPasswordGuard uses cfg.AdminPasswordHash when set and hashes cfg.AdminPassword otherwise.
// An empty JWT secret is replaced by a random one, which invalidates tokens on restart.
func NewPasswordGuard(cfg config.AuthConfig) (*PasswordGuard, error) {
	hash := []byte(strings.TrimSpace(cfg.AdminPasswordHash))
	if len(hash) > 0 {
		if _, err := bcrypt.Cost(hash); err != nil {
			return nil, fmt.Errorf("admin password hash: %w", err)
		}
	} else {
		if cfg.AdminPassword == "" {
			return nil, errors.New("admin password is not configured")
		}
		h, err := HashPassword(cfg.AdminPassword)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
		hash = []byte(h)
	}

	secret := []byte(cfg.JWTSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("generate jwt secret: %w", err)
		}
	}

	return &PasswordGuard{
		hash:    hash,
		secret:  secret,
		ttl:     cfg.AccessTTL(),
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}, nil
}

func (g *PasswordGuard) Login(password string) (string, bool) {
	if bcrypt.CompareHashAndPassword(g.hash, []byte(password)) != nil {
		return "", false
	}
	token, err := g.issue()
	if err != nil {
		return "", false
	}
	return token, true
}

func (g *PasswordGuard) issue() (string, error) {
	now := g.now()
	claims := Claims{
		Role: models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(g.secret)
}

func (g *PasswordGuard) parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return g.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(g.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.Role != models.RoleAdmin {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

func (g *PasswordGuard) Authenticate(tokenStr string) (*Claims, error) {
	claims, err := g.parse(tokenStr)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.revoked[claims.ID]; ok {
		return nil, ErrRevokedToken
	}
	return claims, nil
}

// Logout revokes the token. Invalid tokens are ignored.
func (g *PasswordGuard) Logout(tokenStr string) {
	claims, err := g.parse(tokenStr)
	if err != nil {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	now := g.now()
	for id, exp := range g.revoked {
		if !exp.After(now) {
			delete(g.revoked, id)
		}
	}
	g.revoked[claims.ID] = claims.ExpiresAt.Time
}
