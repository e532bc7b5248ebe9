// Package web holds the embedded chat page served at "/".
package web

import (
	"embed"
	"html/template"
)

//go:embed index.html
var files embed.FS

// PageData fills the status line under the input box.
type PageData struct {
	Available bool
	Model     string
}

func ParsePage() (*template.Template, error) {
	return template.ParseFS(files, "index.html")
}
