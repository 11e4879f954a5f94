// Package templates holds the server-rendered screens.
package templates

import (
	"embed"
	"html/template"

	"github.com/yeremiapane/fudr-web/models"
	"github.com/yeremiapane/fudr-web/utils"
)

//go:embed *.gohtml
var files embed.FS

// Funcs are the helpers every screen may call.
var Funcs = template.FuncMap{
	"rupee":      utils.FormatRupee,
	"amount":     utils.FormatAmount,
	"categories": func() []models.Category { return models.Categories },
	"lineTotal": func(price float64, quantity int) float64 {
		return price * float64(quantity)
	},
}

// Load parses all screens once; handlers only execute them.
func Load() (*template.Template, error) {
	return template.New("").Funcs(Funcs).ParseFS(files, "*.gohtml")
}
