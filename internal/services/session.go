package services

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Ragi-1016/Geektwitter/internal/config"
)

// ErrNoSession is returned when the request carries no valid session cookie.
var ErrNoSession = errors.New("no valid session")

// SessionService tracks the logged-in user for a request. The session is an
// HS256-signed token carrying the user id, stored in an HttpOnly cookie.
type SessionService struct {
	secret       []byte
	cookieName   string
	cookieSecure bool
	ttl          time.Duration
}

type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

func NewSessionService(cfg *config.Config) *SessionService {
	return &SessionService{
		secret:       []byte(cfg.Session.Secret),
		cookieName:   cfg.Session.CookieName,
		cookieSecure: cfg.Session.CookieSecure,
		ttl:          time.Duration(cfg.Session.TTLHours) * time.Hour,
	}
}

// Login establishes a session for the given user by setting the cookie.
func (s *SessionService) Login(c *gin.Context, userID uint) error {
	token, err := s.sign(userID)
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, token, int(s.ttl.Seconds()), "/", "", s.cookieSecure, true)
	return nil
}

// Logout removes the session cookie.
func (s *SessionService) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.cookieSecure, true)
}

// CurrentUserID resolves the authenticated user for the request, or
// ErrNoSession when the cookie is absent, expired, or tampered with.
func (s *SessionService) CurrentUserID(c *gin.Context) (uint, error) {
	token, err := c.Cookie(s.cookieName)
	if err != nil || token == "" {
		return 0, ErrNoSession
	}
	claims, err := s.validate(token)
	if err != nil {
		return 0, ErrNoSession
	}
	return claims.UserID, nil
}

func (s *SessionService) sign(userID uint) (string, error) {
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *SessionService) validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrNoSession
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrNoSession
	}
	return claims, nil
}
