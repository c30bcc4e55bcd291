package handlers

import (
	html "github.com/gofiber/template/html/v2"

	"biomae/internal/reviews"
)

// NewEngine loads the page templates with the helpers they use.
func NewEngine(dir string, reload bool) *html.Engine {
	engine := html.New(dir, ".html")
	engine.Reload(reload)
	engine.AddFunc("stars", reviews.Stars)
	engine.AddFunc("first", func(images []string) string {
		if len(images) == 0 {
			return ""
		}
		return images[0]
	})
	return engine
}
