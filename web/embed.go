// Package web embeds the static admin page served at /.
package web

import "embed"

//go:embed index.html
var StaticFS embed.FS
