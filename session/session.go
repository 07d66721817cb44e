// Package session persists the signed-in employee between requests.
//
// Identification is by first name alone: whoever types a matching name is
// signed in as that employee. There is no credential, and the signed cookie
// only proves the server issued it, not who is holding it. Treat a session
// as a convenience marker, not as authentication.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"worklog/models"

	"github.com/golang-jwt/jwt/v5"
)

const CookieName = "worklog_session"

// ErrNoSession is returned when there is no usable session: the cookie is
// missing, unparsable, expired or signed with another key.
var ErrNoSession = errors.New("no session")

// Identity is the client-held record of who is signed in.
type Identity struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Salary *float64 `json:"salary"`
}

// FromEmployee snapshots the employee's id, display name and salary.
func FromEmployee(e *models.Employee) Identity {
	return Identity{
		ID:     e.ID,
		Name:   e.DisplayName(),
		Salary: e.Salary,
	}
}

type claims struct {
	Identity Identity `json:"identity"`
	jwt.RegisteredClaims
}

// Store signs the identity into an HttpOnly cookie.
type Store struct {
	secret []byte
	ttl    time.Duration
	secure bool
	now    func() time.Time
}

func NewStore(secret string, ttl time.Duration, secure bool) *Store {
	return &Store{
		secret: []byte(secret),
		ttl:    ttl,
		secure: secure,
		now:    time.Now,
	}
}

// Encode signs id into a token.
func (s *Store) Encode(id Identity) (string, error) {
	now := s.now()
	c := &claims{
		Identity: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign session: %w", err)
	}
	return token, nil
}

// Decode verifies a token and returns its identity, or ErrNoSession.
func (s *Store) Decode(token string) (*Identity, error) {
	c := &claims{}
	parsed, err := jwt.ParseWithClaims(token, c, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, ErrNoSession
	}
	if c.Identity.ID == "" {
		return nil, ErrNoSession
	}
	return &c.Identity, nil
}

// Load restores the identity from the request cookie.
func (s *Store) Load(r *http.Request) (*Identity, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return nil, ErrNoSession
	}
	return s.Decode(cookie.Value)
}

// Save persists id for subsequent requests.
func (s *Store) Save(w http.ResponseWriter, id Identity) error {
	token, err := s.Encode(id)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.ttl.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear removes the persisted identity.
func (s *Store) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
	})
}
