package handlers

import (
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"

	applog "biomae/internal/log"
)

// Media serves product images from dir, refusing anything that could
// escape it.
func Media(dir string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		path := c.Params("*")
		rawLower := strings.ToLower(path)
		// Block encoded traversal attempts as well as raw .. or null bytes
		if strings.Contains(rawLower, "..") || strings.Contains(rawLower, "%2e") || strings.Contains(rawLower, "\x00") {
			applog.Security("media.traversal.block", reqFields(c, map[string]any{"file": path}))
			return c.SendStatus(fiber.StatusNotFound)
		}
		clean := filepath.Clean(path)
		if clean == "." || strings.Contains(clean, "..") || filepath.IsAbs(clean) {
			applog.Security("media.traversal.block", reqFields(c, map[string]any{"file": path}))
			return c.SendStatus(fiber.StatusNotFound)
		}
		return c.SendFile(filepath.Join(dir, clean), true)
	}
}
