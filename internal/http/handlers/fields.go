package handlers

import "github.com/gofiber/fiber/v2"

// reqFields adds the request context to a log field map.
func reqFields(c *fiber.Ctx, extra map[string]any) map[string]any {
	f := map[string]any{
		"ip":     c.IP(),
		"method": c.Method(),
		"path":   c.Path(),
	}
	if rid, ok := c.Locals("requestid").(string); ok && rid != "" {
		f["request_id"] = rid
	}
	for k, v := range extra {
		f[k] = v
	}
	return f
}
