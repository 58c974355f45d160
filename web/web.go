// Package web embeds the browser front-end: the index template and its static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed templates static
var assets embed.FS

// GetTemplatesFS returns the page templates rooted at templates/
func GetTemplatesFS() fs.FS {
	return subtree("templates")
}

// GetStaticFS returns the stylesheets and scripts served under /static/
func GetStaticFS() fs.FS {
	return subtree("static")
}

// subtree panics only if the embed directive and dir disagree, which is a build mistake
func subtree(dir string) fs.FS {
	sub, err := fs.Sub(assets, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
