package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ai-scheduler/internal/model"
	"ai-scheduler/pkg/response"
)

var errNoSession = errors.New("no session")

// Auth rejects requests without a valid session cookie.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, err := m.readSession(c)
		if err != nil {
			response.Unauthorized(c, nil)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		c.Next()
	}
}

// OptionalAuth attaches the session scope when present and never rejects.
func (m Middleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if sc, err := m.readSession(c); err == nil {
			c.Request = c.Request.WithContext(model.SetScopeToContext(c.Request.Context(), sc))
		}
		c.Next()
	}
}

// SetSession issues the encrypted session cookie for userID.
func (m Middleware) SetSession(c *gin.Context, userID string) error {
	if m.encrypter == nil {
		return errNoSession
	}
	value, err := m.encrypter.EncryptString(userID)
	if err != nil {
		return err
	}

	c.SetSameSite(m.sameSite())
	c.SetCookie(m.cookieConfig.Name, value, m.cookieConfig.MaxAge, "/", m.cookieConfig.Domain, m.cookieConfig.Secure, true)
	return nil
}

// ClearSession expires the session cookie.
func (m Middleware) ClearSession(c *gin.Context) {
	c.SetSameSite(m.sameSite())
	c.SetCookie(m.cookieConfig.Name, "", -1, "/", m.cookieConfig.Domain, m.cookieConfig.Secure, true)
}

func (m Middleware) readSession(c *gin.Context) (model.Scope, error) {
	if m.encrypter == nil {
		return model.Scope{}, errNoSession
	}
	value, err := c.Cookie(m.cookieConfig.Name)
	if err != nil || value == "" {
		return model.Scope{}, errNoSession
	}

	userID, err := m.encrypter.DecryptString(value)
	if err != nil {
		m.l.Debugf(c.Request.Context(), "middleware.readSession: %v", err)
		return model.Scope{}, err
	}
	if userID == "" {
		return model.Scope{}, errNoSession
	}
	return model.Scope{UserID: userID}, nil
}

func (m Middleware) sameSite() http.SameSite {
	switch strings.ToLower(m.cookieConfig.SameSite) {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
