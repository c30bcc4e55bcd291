// Package catalog is the static, read-only product table loaded once at
// startup.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"biomae/internal/domain"
	"biomae/internal/validate"
)

//go:embed catalog.yaml
var defaultYAML []byte

var ErrNotFound = errors.New("product not found")

type file struct {
	MediaBase    string               `yaml:"media_base"`
	Products     []domain.Product     `yaml:"products"`
	Testimonials []domain.Testimonial `yaml:"testimonials"`
}

type Catalog struct {
	byID         map[string]domain.Product
	order        []string
	testimonials []domain.Testimonial
}

func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	c := &Catalog{byID: make(map[string]domain.Product, len(f.Products))}
	for i, p := range f.Products {
		id, ok := validate.ID(p.ID)
		if !ok {
			return nil, fmt.Errorf("catalog product %d: invalid id %q", i, p.ID)
		}
		if _, dup := c.byID[id]; dup {
			return nil, fmt.Errorf("catalog product %d: duplicate id %q", i, id)
		}
		if p.Name == "" || p.Price == "" {
			return nil, fmt.Errorf("catalog product %q: name and price are required", id)
		}
		p.ID = id
		for j, img := range p.Images {
			p.Images[j] = resolveMedia(f.MediaBase, img)
		}
		c.byID[id] = p
		c.order = append(c.order, id)
	}
	for _, t := range f.Testimonials {
		t.Rating = validate.RatingNumber(float64(t.Rating))
		c.testimonials = append(c.testimonials, t)
	}
	return c, nil
}

// resolveMedia prefixes relative image names with base. Rooted paths and
// absolute URLs are kept.
func resolveMedia(base, img string) string {
	if base == "" || strings.HasPrefix(img, "/") || strings.Contains(img, "://") {
		return img
	}
	return base + img
}

// Default returns the catalog embedded in the binary.
func Default() *Catalog {
	c, err := Parse(defaultYAML)
	if err != nil {
		panic(err)
	}
	return c
}

func clone(p domain.Product) domain.Product {
	p.Benefits = slices.Clone(p.Benefits)
	p.Images = slices.Clone(p.Images)
	return p
}

// Lookup returns a copy of the descriptor; callers cannot mutate the table.
func (c *Catalog) Lookup(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return clone(p), true
}

func (c *Catalog) Get(id string) (domain.Product, error) {
	p, ok := c.Lookup(id)
	if !ok {
		return domain.Product{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return p, nil
}

// List returns every product in file order.
func (c *Catalog) List() []domain.Product {
	out := make([]domain.Product, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, clone(c.byID[id]))
	}
	return out
}

func (c *Catalog) Testimonials() []domain.Testimonial {
	return slices.Clone(c.testimonials)
}
