// Package view renders the ladder page.
package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"sc2ladder/internal/domain/entity"
	"sc2ladder/pkg/lox"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

//go:embed templates/ranking_table.html
var templates embed.FS

var rankingTableTemplate = template.Must( //nolint:gochecknoglobals
	template.ParseFS(templates, "templates/ranking_table.html"),
)

// Row is one rendered record. Position is 1-based dataset order, Cells line
// up with the table columns.
type Row struct {
	Position int
	Cells    []string
}

// RankingTable binds a ranking once and renders it as an HTML table, one row
// per record in dataset order.
type RankingTable struct {
	columns []string
	rows    []Row
}

func NewRankingTable(ranking entity.Ranking) *RankingTable {
	columns := ranking.Columns

	return &RankingTable{
		columns: columns,
		rows: lox.Map(lox.Indexed(ranking.Records), func(item lox.Item[entity.Record]) Row {
			return Row{
				Position: item.Index + 1,
				Cells: lox.Map(columns, func(column string) string {
					value, ok := item.Value.Get(column)
					if !ok {
						return ""
					}

					return FormatValue(value)
				}),
			}
		}),
	}
}

func (t *RankingTable) Columns() []string {
	return t.columns
}

func (t *RankingTable) Rows() []Row {
	return t.rows
}

func (t *RankingTable) Len() int {
	return len(t.rows)
}

func (t *RankingTable) Render(w io.Writer) error {
	if err := rankingTableTemplate.Execute(w, t); err != nil {
		return fmt.Errorf("rankingTableTemplate.Execute: %w", err)
	}

	return nil
}

// HTML returns the rendered table for embedding into another template.
func (t *RankingTable) HTML() (template.HTML, error) {
	var buf bytes.Buffer

	if err := t.Render(&buf); err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil //nolint:gosec // produced by html/template
}

// FormatValue turns a dataset value into cell text. Whole numbers print
// without a fraction, nested values as compact JSON.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}

		return string(b)
	}
}
