// Package web — встроенные шаблоны страниц и статика сайта.
package web

import "embed"

//go:embed templates/*.html static
var FS embed.FS
