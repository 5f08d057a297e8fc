package web

import _ "embed"

// Stylesheet defines the utility classes emitted by Document.
//
//go:embed assets/page.css
var Stylesheet string
