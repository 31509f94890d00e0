package middleware

import (
	"time"

	"github.com/kdlibiran/gradecalculator/app/config"
	"github.com/kdlibiran/gradecalculator/app/logger"
	"github.com/kdlibiran/gradecalculator/app/session"

	"github.com/gofiber/fiber/v2"
)

const sessionKey = "session"

// SessionMiddleware resolves the session cookie to a session, starting a new
// one when the cookie is missing, invalid or expired, and stores it in
// c.Locals. The cookie is re-issued on every request so the session slides.
func SessionMiddleware(store *session.Store, cfg config.SessionConfig, log *logger.Logger) fiber.Handler {
	secret := []byte(cfg.Secret)

	return func(c *fiber.Ctx) error {
		var s *session.Session

		if tokenString := c.Cookies(cfg.CookieName); tokenString != "" {
			id, err := session.ParseToken(tokenString, secret)
			if err != nil {
				log.Debug("Rejected session cookie", "path", c.Path(), "error", err)
			} else if found, ok := store.Get(id); ok {
				s = found
			}
		}
		if s == nil {
			s = store.Create()
			log.Debug("Session started", "session_id", s.ID)
		}

		token, err := session.SignToken(s.ID, secret, store.TTL())
		if err != nil {
			log.Error("Failed to sign session token", "session_id", s.ID, "error", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to start session")
		}
		c.Cookie(&fiber.Cookie{
			Name:     cfg.CookieName,
			Value:    token,
			Expires:  time.Now().Add(store.TTL()),
			HTTPOnly: true,
			Secure:   cfg.Secure,
			SameSite: "Lax",
		})

		c.Locals(sessionKey, s)
		return c.Next()
	}
}

// CurrentSession returns the session set by SessionMiddleware.
func CurrentSession(c *fiber.Ctx) *session.Session {
	s, _ := c.Locals(sessionKey).(*session.Session)
	return s
}
