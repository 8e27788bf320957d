// Package assets embeds the site's static files.
package assets

import _ "embed"

// StyleCSS is the main stylesheet served at /static/style.css
//
//go:embed style.css
var StyleCSS []byte
