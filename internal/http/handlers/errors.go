package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "biomae/internal/log"
)

const friendlyError = "Something went wrong. Please try again."

// ErrorHandler logs the failure and shows a friendly page that never
// carries internal details.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < 500 {
		code = fe.Code
	}
	applog.Error("server.error", err, reqFields(c, map[string]any{"status": code}))

	msg := friendlyError
	if code == fiber.StatusNotFound {
		msg = "Page not found"
	}
	if rerr := c.Status(code).Render("notfound", fiber.Map{"Message": msg}); rerr != nil {
		return c.Status(code).SendString(msg)
	}
	return nil
}

func NotFound(c *fiber.Ctx) error { return notFound(c, "Page not found") }

func Health(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) }
