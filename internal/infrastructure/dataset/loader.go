// Package dataset reads the ranking data artifact that ships with the page.
//
// The artifact is a JSON array of objects, one per player, or an object
// whose "players" key holds that array. Object key order is kept: it is the
// column order of the table.
package dataset

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"sc2ladder/internal/domain"
	"sc2ladder/internal/domain/entity"
	"sc2ladder/pkg/errcodes"
)

const DefaultFile = "players.json"

const playersKey = "players"

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Load reads name from fsys once and returns the immutable ranking.
func Load(fsys fs.FS, name string) (entity.Ranking, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entity.Ranking{}, domain.WrapError(err, errcodes.DatasetNotFound, "fs.ReadFile")
		}

		return entity.Ranking{}, fmt.Errorf("fs.ReadFile: %w", err)
	}

	records, err := Parse(data)
	if err != nil {
		return entity.Ranking{}, fmt.Errorf("dataset.Parse %s: %w", name, err)
	}

	return newRanking(records), nil
}

// Parse decodes the artifact into records in dataset order.
func Parse(data []byte) ([]entity.Record, error) {
	iter := json.BorrowIterator(data)
	defer json.ReturnIterator(iter)

	var records []entity.Record

	switch iter.WhatIsNext() {
	case jsoniter.ArrayValue:
		records = readRecords(iter)
	case jsoniter.ObjectValue:
		found := false

		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			if key != playersKey || it.WhatIsNext() != jsoniter.ArrayValue {
				it.Skip()

				return true
			}

			found = true
			records = readRecords(it)

			return it.Error == nil
		})

		if iter.Error == nil && !found {
			return nil, domain.NewError(errcodes.InvalidDataset, `object has no "players" array`)
		}
	default:
		return nil, domain.NewError(errcodes.InvalidDataset, "top level is neither an array nor an object")
	}

	if iter.Error != nil && !errors.Is(iter.Error, io.EOF) {
		return nil, domain.WrapError(iter.Error, errcodes.InvalidDataset, "malformed json")
	}

	return records, nil
}

func readRecords(iter *jsoniter.Iterator) []entity.Record {
	records := make([]entity.Record, 0)

	iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
		if it.WhatIsNext() != jsoniter.ObjectValue {
			it.ReportError("readRecords", fmt.Sprintf("record #%d is not an object", len(records)+1))

			return false
		}

		records = append(records, readRecord(it))

		return it.Error == nil
	})

	return records
}

// readRecord keeps the first position of a repeated key and its last value.
func readRecord(iter *jsoniter.Iterator) entity.Record {
	var record entity.Record

	index := make(map[string]int)

	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		value := it.Read()

		if i, ok := index[key]; ok {
			record.Fields[i].Value = value

			return true
		}

		index[key] = len(record.Fields)
		record.Fields = append(record.Fields, entity.Field{Name: key, Value: value})

		return true
	})

	return record
}

func newRanking(records []entity.Record) entity.Ranking {
	columns := lo.Uniq(lo.FlatMap(records, func(r entity.Record, _ int) []string {
		return lo.Map(r.Fields, func(f entity.Field, _ int) string { return f.Name })
	}))

	return entity.Ranking{
		Columns: columns,
		Records: records,
	}
}
