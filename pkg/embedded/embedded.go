// Package embedded provides embedded static assets for the application.
package embedded

import (
	"embed"
)

// Files contains all files embedded in the Go binary:
// - translations/translations.json - UI string table, one entry per key in display order
//
//go:embed translations
var Files embed.FS

// TranslationsPath is the location of the UI string table inside Files
const TranslationsPath = "translations/translations.json"
