// Package ratesheet loads hospital tie-up reference catalogues from disk,
// per §4.K's note that rate sheets arrive as JSON or spreadsheet exports, or
// as a bulk Parquet export for chains whose catalogues are too large for
// either.
package ratesheet

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	bv "billverify"
)

// jsonRateSheet mirrors bv.TieUpRateSheet for the canonical on-disk format.
type jsonRateSheet struct {
	HospitalName string              `json:"hospital_name"`
	Categories   []jsonRateCategory  `json:"categories"`
}

type jsonRateCategory struct {
	CategoryName string         `json:"category_name"`
	Items        []jsonRateItem `json:"items"`
}

type jsonRateItem struct {
	ItemName string `json:"item_name"`
	Rate     string `json:"rate"`
	Type     string `json:"type"`
}

// parquetRateRow is the flat, one-row-per-item schema used for bulk catalogue
// ingestion of large rate sheets, mirrored on gyeh-pricetool's RateRow.
type parquetRateRow struct {
	HospitalName string `parquet:"hospital_name"`
	CategoryName string `parquet:"category_name"`
	ItemName     string `parquet:"item_name"`
	Rate         string `parquet:"rate"`
	Type         string `parquet:"type"`
}

const parquetReadBatch = 1024

// LoadDirectory reads every .json, .xlsx and .parquet file directly under dir
// and returns one bv.TieUpRateSheet per file. A single malformed file is
// skipped with its error collected rather than aborting the whole load,
// so that one bad upload cannot take down every already-working hospital.
func LoadDirectory(dir string) ([]bv.TieUpRateSheet, []error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, []error{fmt.Errorf("failed to read rate sheet directory %q: %w", dir, err)}
	}

	var sheets []bv.TieUpRateSheet
	var errs []error

	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(dir, e.Name())
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json":
			sheet, err := LoadJSON(path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			sheets = append(sheets, sheet)
		case ".xlsx":
			sheet, err := LoadXLSX(path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			sheets = append(sheets, sheet)
		case ".parquet":
			sheet, err := LoadParquet(path)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			sheets = append(sheets, sheet)
		}
	}

	return sheets, errs
}

// LoadJSON reads the canonical rate-sheet format.
func LoadJSON(path string) (bv.TieUpRateSheet, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return bv.TieUpRateSheet{}, fmt.Errorf("failed to read %q: %w", path, err)
	}

	var parsed jsonRateSheet
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return bv.TieUpRateSheet{}, fmt.Errorf("failed to parse rate sheet %q: %w", path, err)
	}

	sheet := bv.TieUpRateSheet{HospitalName: parsed.HospitalName}
	for _, cat := range parsed.Categories {
		out := bv.TieUpCategory{CategoryName: cat.CategoryName}
		for _, item := range cat.Items {
			rate, err := decimal.NewFromString(item.Rate)
			if err != nil {
				return bv.TieUpRateSheet{}, fmt.Errorf("rate sheet %q: invalid rate %q for item %q: %w", path, item.Rate, item.ItemName, err)
			}
			out.Items = append(out.Items, bv.TieUpItem{
				ItemName: item.ItemName,
				Rate:     rate,
				Type:     parseTieUpType(item.Type),
			})
		}
		sheet.Categories = append(sheet.Categories, out)
	}

	return sheet, nil
}

// LoadXLSX reads a spreadsheet export: one sheet per category, one row per
// item, columns Item Name / Rate / Type (header row skipped), hospital name
// taken from the workbook's file name.
func LoadXLSX(path string) (bv.TieUpRateSheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return bv.TieUpRateSheet{}, fmt.Errorf("failed to open rate sheet workbook %q: %w", path, err)
	}
	defer f.Close()

	base := filepath.Base(path)
	hospitalName := strings.TrimSuffix(base, filepath.Ext(base))
	sheet := bv.TieUpRateSheet{HospitalName: hospitalName}

	for _, sheetName := range f.GetSheetList() {
		rows, err := f.GetRows(sheetName)
		if err != nil {
			return bv.TieUpRateSheet{}, fmt.Errorf("rate sheet %q: failed to read sheet %q: %w", path, sheetName, err)
		}
		cat := bv.TieUpCategory{CategoryName: sheetName}

		for i, row := range rows {
			if i == 0 {
				continue // header row
			}
			if len(row) < 2 {
				continue
			}
			name := strings.TrimSpace(row[0])
			if name == "" {
				continue
			}
			rateStr := strings.TrimSpace(row[1])
			rate, err := decimal.NewFromString(rateStr)
			if err != nil {
				return bv.TieUpRateSheet{}, fmt.Errorf("rate sheet %q sheet %q row %d: invalid rate %q: %w", path, sheetName, i+1, rateStr, err)
			}
			typeStr := ""
			if len(row) >= 3 {
				typeStr = row[2]
			}
			cat.Items = append(cat.Items, bv.TieUpItem{
				ItemName: name,
				Rate:     rate,
				Type:     parseTieUpType(typeStr),
			})
		}

		sheet.Categories = append(sheet.Categories, cat)
	}

	return sheet, nil
}

// LoadParquet reads a bulk catalogue export in parquetRateRow schema,
// one row per item, grouping rows into categories in first-seen order.
// Intended for hospital chains whose tie-up catalogues are too large for a
// single JSON or XLSX upload.
func LoadParquet(path string) (bv.TieUpRateSheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return bv.TieUpRateSheet{}, fmt.Errorf("failed to open rate sheet %q: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return bv.TieUpRateSheet{}, fmt.Errorf("failed to stat rate sheet %q: %w", path, err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return bv.TieUpRateSheet{}, fmt.Errorf("failed to open parquet file %q: %w", path, err)
	}

	reader := parquet.NewGenericReader[parquetRateRow](pf)
	defer reader.Close()

	var sheet bv.TieUpRateSheet
	catIndex := map[string]int{}
	buf := make([]parquetRateRow, parquetReadBatch)

	for {
		n, readErr := reader.Read(buf)

		for i := 0; i < n; i++ {
			row := buf[i]
			if sheet.HospitalName == "" {
				sheet.HospitalName = row.HospitalName
			}

			rate, err := decimal.NewFromString(row.Rate)
			if err != nil {
				return bv.TieUpRateSheet{}, fmt.Errorf("rate sheet %q: invalid rate %q for item %q: %w", path, row.Rate, row.ItemName, err)
			}

			idx, ok := catIndex[row.CategoryName]
			if !ok {
				idx = len(sheet.Categories)
				catIndex[row.CategoryName] = idx
				sheet.Categories = append(sheet.Categories, bv.TieUpCategory{CategoryName: row.CategoryName})
			}
			sheet.Categories[idx].Items = append(sheet.Categories[idx].Items, bv.TieUpItem{
				ItemName: row.ItemName,
				Rate:     rate,
				Type:     parseTieUpType(row.Type),
			})
		}

		if readErr != nil {
			if readErr == io.EOF {
				break
			}
			return bv.TieUpRateSheet{}, fmt.Errorf("failed to read rate sheet %q: %w", path, readErr)
		}
	}

	return sheet, nil
}

func parseTieUpType(s string) bv.TieUpType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unit":
		return bv.TieUpUnit
	case "bundle":
		return bv.TieUpBundle
	default:
		return bv.TieUpService
	}
}
