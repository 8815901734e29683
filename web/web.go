// Package web embeds the versus front page and exposes the fiber view
// engine that renders it.
package web

import (
	"embed"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed index.html
var views embed.FS

// Engine returns a fiber view engine backed by the embedded templates.
func Engine() *html.Engine {
	return html.NewFileSystem(http.FS(views), ".html")
}
