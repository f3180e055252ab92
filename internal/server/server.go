// Package server answers every GET with a static asset or, when nothing
// matches, with the entry document that carries the ranking table.
package server

import (
	"io/fs"

	"sc2ladder/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Root is a named static asset tree.
type Root struct {
	Name string
	FS   fs.FS
}

type Server struct {
	roots         []Root
	entryDocument []byte
}

// NewServer searches roots in order. A nil entryDocument makes unmatched
// paths answer 404.
func NewServer(entryDocument []byte, roots ...Root) Server {
	return Server{
		roots:         roots,
		entryDocument: entryDocument,
	}
}

// Ready reports whether the entry document is available.
func (s Server) Ready() bool {
	return s.entryDocument != nil
}
