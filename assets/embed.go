// assets/embed.go
//
// Embedded browser front end: index.html plus the static JS/CSS it loads.

package assets

import "embed"

//go:embed index.html static
var FS embed.FS

// Index returns the page served at "/".
func Index() []byte {
	b, err := FS.ReadFile("index.html")
	if err != nil {
		return nil
	}
	return b
}
