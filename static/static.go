// Package static embeds the browser assets served under /static.
package static

import (
	"embed"
	"io/fs"
)

//go:embed css js smritikc-CV.pdf
var files embed.FS

// FS returns the embedded assets
func FS() fs.FS {
	return files
}
