// Package web holds the default asset roots compiled into the binary. They
// are used when the configured directories are missing on disk.
package web

import (
	"embed"
	"io/fs"
)

//go:embed dist
var dist embed.FS

// AppRoot is the compiled page: entry document template and stylesheet.
func AppRoot() fs.FS {
	return sub("dist/sc2ladder")
}

// DataRoot holds the ranking data artifact.
func DataRoot() fs.FS {
	return sub("dist/sc2ladder.json")
}

func sub(dir string) fs.FS {
	fsys, err := fs.Sub(dist, dir)
	if err != nil {
		panic(err) // the directory is embedded above
	}

	return fsys
}
