package ratesheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"
	"github.com/shopspring/decimal"

	bv "billverify"
)

const sampleJSON = `{
	"hospital_name": "Apollo Hospitals",
	"categories": [
		{
			"category_name": "Medicines",
			"items": [
				{"item_name": "Paracetamol 500mg Tablet", "rate": "15.00", "type": "unit"},
				{"item_name": "IV Fluid Bag", "rate": "120.00", "type": "service"}
			]
		}
	]
}`

func TestLoadJSONParsesHospitalCategoriesAndItems(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "apollo.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	sheet, err := LoadJSON(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.HospitalName != "Apollo Hospitals" {
		t.Errorf("expected hospital name Apollo Hospitals, got %q", sheet.HospitalName)
	}
	if len(sheet.Categories) != 1 {
		t.Fatalf("expected 1 category, got %d", len(sheet.Categories))
	}
	cat := sheet.Categories[0]
	if len(cat.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(cat.Items))
	}
	if !cat.Items[0].Rate.Equal(decimal.NewFromFloat(15.00)) {
		t.Errorf("expected rate 15.00, got %s", cat.Items[0].Rate)
	}
	if cat.Items[0].Type != bv.TieUpUnit {
		t.Errorf("expected unit pricing, got %v", cat.Items[0].Type)
	}
	if cat.Items[1].Type != bv.TieUpService {
		t.Errorf("expected service pricing, got %v", cat.Items[1].Type)
	}
}

func TestLoadJSONRejectsInvalidRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	bad := `{"hospital_name":"X","categories":[{"category_name":"Medicines","items":[{"item_name":"A","rate":"not-a-number","type":"unit"}]}]}`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if _, err := LoadJSON(path); err == nil {
		t.Error("expected an error for a non-numeric rate")
	}
}

func TestLoadDirectoryCollectsPerFileErrorsWithoutAborting(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "good.json"), []byte(sampleJSON), 0o644)
	os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644)
	os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("irrelevant"), 0o644)

	sheets, errs := LoadDirectory(dir)
	if len(sheets) != 1 {
		t.Fatalf("expected the one valid sheet to load, got %d", len(sheets))
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly one collected error, got %d: %v", len(errs), errs)
	}
}

func TestLoadParquetGroupsRowsIntoCategories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fortis.parquet")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	writer := parquet.NewGenericWriter[parquetRateRow](f)
	rows := []parquetRateRow{
		{HospitalName: "Fortis Hospitals", CategoryName: "Medicines", ItemName: "Ibuprofen 400mg Tablet", Rate: "8.50", Type: "unit"},
		{HospitalName: "Fortis Hospitals", CategoryName: "Medicines", ItemName: "Cough Syrup 100ml", Rate: "45.00", Type: "unit"},
		{HospitalName: "Fortis Hospitals", CategoryName: "Diagnostics", ItemName: "MRI Brain Scan", Rate: "6000.00", Type: "service"},
	}
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write fixture rows: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close fixture writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close fixture file: %v", err)
	}

	sheet, err := LoadParquet(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sheet.HospitalName != "Fortis Hospitals" {
		t.Errorf("expected hospital name Fortis Hospitals, got %q", sheet.HospitalName)
	}
	if len(sheet.Categories) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(sheet.Categories))
	}
	if sheet.Categories[0].CategoryName != "Medicines" || len(sheet.Categories[0].Items) != 2 {
		t.Fatalf("expected Medicines category with 2 items, got %+v", sheet.Categories[0])
	}
	if sheet.Categories[1].CategoryName != "Diagnostics" || len(sheet.Categories[1].Items) != 1 {
		t.Fatalf("expected Diagnostics category with 1 item, got %+v", sheet.Categories[1])
	}
	if !sheet.Categories[0].Items[0].Rate.Equal(decimal.NewFromFloat(8.50)) {
		t.Errorf("expected rate 8.50, got %s", sheet.Categories[0].Items[0].Rate)
	}
	if sheet.Categories[1].Items[0].Type != bv.TieUpService {
		t.Errorf("expected service pricing, got %v", sheet.Categories[1].Items[0].Type)
	}
}

func TestLoadParquetRejectsInvalidRate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.parquet")

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	writer := parquet.NewGenericWriter[parquetRateRow](f)
	if _, err := writer.Write([]parquetRateRow{
		{HospitalName: "X", CategoryName: "Medicines", ItemName: "A", Rate: "not-a-number", Type: "unit"},
	}); err != nil {
		t.Fatalf("failed to write fixture rows: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close fixture writer: %v", err)
	}
	f.Close()

	if _, err := LoadParquet(path); err == nil {
		t.Error("expected an error for a non-numeric rate")
	}
}

func TestParseTieUpType(t *testing.T) {
	tests := []struct {
		in   string
		want bv.TieUpType
	}{
		{"unit", bv.TieUpUnit},
		{"UNIT", bv.TieUpUnit},
		{"bundle", bv.TieUpBundle},
		{"service", bv.TieUpService},
		{"", bv.TieUpService},
		{"garbage", bv.TieUpService},
	}
	for _, tt := range tests {
		if got := parseTieUpType(tt.in); got != tt.want {
			t.Errorf("parseTieUpType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
