package handlers

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// csrfToken picks up the token the CSRF middleware put into Locals, falling
// back to the cookie so hidden fields are never empty.
func csrfToken(c *fiber.Ctx) string {
	if tok, _ := c.Locals("CSRFToken").(string); tok != "" {
		return tok
	}
	return c.Cookies("csrf_")
}

// renderHTML executes a template into memory so the result can be mounted
// before it is written.
func renderHTML(c *fiber.Ctx, tmpl string, data fiber.Map) ([]byte, error) {
	if data == nil {
		data = fiber.Map{}
	}
	if tok := csrfToken(c); tok != "" {
		data["CSRFToken"] = tok
	}
	views := c.App().Config().Views
	if views == nil {
		return nil, fmt.Errorf("render %s: no view engine", tmpl)
	}
	var buf bytes.Buffer
	if err := views.Render(&buf, tmpl, data); err != nil {
		return nil, fmt.Errorf("render %s: %w", tmpl, err)
	}
	return buf.Bytes(), nil
}

func notFound(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": msg})
}
