package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const sidCookie = "sid"

// ensureSID returns the visitor id, issuing one when the cookie is missing
// or malformed. It names the visitor's storage partition.
func ensureSID(c *fiber.Ctx) string {
	if sid, err := uuid.Parse(c.Cookies(sidCookie)); err == nil {
		return sid.String()
	}
	sid := uuid.NewString()
	c.Cookie(&fiber.Cookie{
		Name:     sidCookie,
		Value:    sid,
		Path:     "/",
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
		Secure:   false, // enable true behind TLS
		Expires:  time.Now().Add(365 * 24 * time.Hour),
	})
	return sid
}
