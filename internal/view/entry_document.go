package view

import (
	"bytes"
	"fmt"
	"html/template"
)

// EntryDocumentName is the file in the application root that bootstraps the
// page. It is an html/template executed with Page.
const EntryDocumentName = "index.html"

type Page struct {
	Title string
	Count int
	Table template.HTML
}

// RenderEntryDocument executes the entry document template once. The result
// is immutable for the life of the process.
func RenderEntryDocument(source []byte, title string, table *RankingTable) ([]byte, error) {
	tmpl, err := template.New(EntryDocumentName).Parse(string(source))
	if err != nil {
		return nil, fmt.Errorf("template.Parse: %w", err)
	}

	tableHTML, err := table.HTML()
	if err != nil {
		return nil, fmt.Errorf("table.HTML: %w", err)
	}

	var buf bytes.Buffer

	if err = tmpl.Execute(&buf, Page{
		Title: title,
		Count: table.Len(),
		Table: tableHTML,
	}); err != nil {
		return nil, fmt.Errorf("tmpl.Execute: %w", err)
	}

	return buf.Bytes(), nil
}
