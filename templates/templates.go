// Package templates embeds the server-rendered HTML pages. Markup and styling
// carry no contract; handlers only guarantee the data handed to each page.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
