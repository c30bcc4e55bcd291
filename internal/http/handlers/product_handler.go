package handlers

import (
	"errors"

	"biomae/internal/catalog"
	"biomae/internal/domain"
	"biomae/internal/log"
	"biomae/internal/outbound"
	"biomae/internal/validate"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Catalog *catalog.Catalog
	Link    outbound.WhatsApp
	Metrics *Metrics
}

type productView struct {
	domain.Product
	OrderURL string `json:"orderUrl"`
}

func (h *ProductHandler) view(p domain.Product) productView {
	return productView{Product: p, OrderURL: h.Link.URL(outbound.OrderMessage(p.Name, p.Price))}
}

func (h *ProductHandler) List(c *fiber.Ctx) error {
	products := h.Catalog.List()
	out := make([]productView, 0, len(products))
	for _, p := range products {
		out = append(out, h.view(p))
	}
	return c.JSON(fiber.Map{"products": out})
}

func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		h.Metrics.lookup("invalid")
		log.Security("validation.fail", reqFields(c, map[string]any{"field": "product"}))
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	p, err := h.Catalog.Get(id)
	if errors.Is(err, catalog.ErrNotFound) {
		h.Metrics.lookup("miss")
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "product not found"})
	}
	if err != nil {
		return err
	}
	h.Metrics.lookup("hit")
	return c.JSON(h.view(p))
}
