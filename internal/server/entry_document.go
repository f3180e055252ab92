package server

import (
	"errors"
	"fmt"
	"io/fs"

	"sc2ladder/internal/domain"
	"sc2ladder/internal/view"
	"sc2ladder/pkg/errcodes"
)

// BuildEntryDocument renders the entry document template of the application
// root around the ranking table.
func BuildEntryDocument(app fs.FS, title string, table *view.RankingTable) ([]byte, error) {
	source, err := fs.ReadFile(app, view.EntryDocumentName)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.WrapError(err, errcodes.EntryDocumentNotFound, "fs.ReadFile")
		}

		return nil, fmt.Errorf("fs.ReadFile: %w", err)
	}

	document, err := view.RenderEntryDocument(source, title, table)
	if err != nil {
		return nil, domain.WrapError(err, errcodes.InvalidEntryDocument, "view.RenderEntryDocument")
	}

	return document, nil
}
