// Package templates embeds the page templates so the binary runs from any
// working directory.
package templates

import "embed"

//go:embed *.html layouts/*.html grades/*.html partials/*.html
var FS embed.FS
