package domain

import "time"

// Review is one visitor-submitted testimonial. The JSON shape matches what
// the browser keeps in local storage.
type Review struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	Rating    int    `json:"rating"`
	Message   string `json:"message"`
	CreatedAt int64  `json:"createdAt"` // unix milliseconds
}

func (r Review) Created() time.Time { return time.UnixMilli(r.CreatedAt) }

// Product is a static catalog entry shown in the product modal.
type Product struct {
	ID          string   `json:"id" yaml:"id"`
	Tag         string   `json:"tag" yaml:"tag"`
	Name        string   `json:"name" yaml:"name"`
	OldPrice    string   `json:"oldPrice,omitempty" yaml:"old_price"`
	Price       string   `json:"price" yaml:"price"`
	Description string   `json:"description" yaml:"description"`
	Benefits    []string `json:"benefits" yaml:"benefits"`
	Images      []string `json:"images" yaml:"images"`
}

// Testimonial is an editorial review baked into the page markup.
type Testimonial struct {
	Name    string `yaml:"name"`
	City    string `yaml:"city"`
	Rating  int    `yaml:"rating"`
	Message string `yaml:"message"`
}
