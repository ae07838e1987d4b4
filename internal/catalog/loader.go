// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrCatalogLoad is returned when the catalog source is missing or unparseable.
// It is a startup failure: the engine must not serve without a catalog.
var ErrCatalogLoad = errors.New("catalog load failed")

// Column names expected in the catalog header.
const (
	ColID                 = "id"
	ColGender             = "gender"
	ColMasterCategory     = "masterCategory"
	ColSubCategory        = "subCategory"
	ColArticleType        = "articleType"
	ColBaseColour         = "baseColour"
	ColSeason             = "season"
	ColYear               = "year"
	ColUsage              = "usage"
	ColProductDisplayName = "productDisplayName"
	ColLink               = "link"
)

// requiredColumns must all be present in the header.
var requiredColumns = []string{
	ColID, ColGender, ColMasterCategory, ColSubCategory, ColArticleType,
	ColBaseColour, ColSeason, ColYear, ColUsage, ColProductDisplayName, ColLink,
}

// LoadCSV reads the catalog file at path.
func LoadCSV(path string) ([]*Item, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrCatalogLoad, path, err)
	}
	defer f.Close()

	items, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// ReadCSV parses catalog rows from r. Columns are mapped by header name.
// Extra columns are ignored; a missing required column, a malformed row or an
// unparseable id fails the whole load.
func ReadCSV(r io.Reader) ([]*Item, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty catalog (no header)", ErrCatalogLoad)
		}
		return nil, fmt.Errorf("%w: read header: %w", ErrCatalogLoad, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", ErrCatalogLoad, name)
		}
	}

	var items []*Item
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCatalogLoad, line, err)
		}

		item, err := parseRecord(record, cols)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrCatalogLoad, line, err)
		}
		items = append(items, item)
	}

	return items, nil
}

func parseRecord(record []string, cols map[string]int) (*Item, error) {
	field := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	id, err := strconv.ParseInt(field(ColID), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q: %w", field(ColID), err)
	}

	year, err := parseYear(field(ColYear))
	if err != nil {
		return nil, err
	}

	return &Item{
		ID:                 id,
		Gender:             field(ColGender),
		MasterCategory:     field(ColMasterCategory),
		SubCategory:        field(ColSubCategory),
		ArticleType:        field(ColArticleType),
		BaseColour:         field(ColBaseColour),
		Season:             field(ColSeason),
		Year:               year,
		Usage:              field(ColUsage),
		ProductDisplayName: field(ColProductDisplayName),
		Link:               field(ColLink),
	}, nil
}

// parseYear accepts an empty value (0) and float renderings such as "2012.0"
// that spreadsheet exports produce for integer columns with gaps.
func parseYear(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: %w", s, err)
	}
	return int(f), nil
}
