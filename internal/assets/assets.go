package assets

import (
	"embed"
	"io/fs"
)

// DefaultPageYAML is used when no page file is found on disk.
//
//go:embed page.yaml
var DefaultPageYAML []byte

//go:embed web
var webFS embed.FS

// WebUI is an embedded filesystem rooted at internal/assets/web.
var WebUI fs.FS

func init() {
	// Embed paths include the leading directory; strip it for serving at '/'.
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	WebUI = sub
}
