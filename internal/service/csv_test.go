package service

import (
	"testing"

	"chatcore/internal/model"
)

func TestExportCSV(t *testing.T) {
	table := &model.TableModel{
		Title:   "조회 결과",
		Headers: []string{"a", "b"},
		Rows:    [][]any{{1, 2}, {3, 4}},
	}

	got := string(ExportCSV(table))
	want := "\uFEFFa,b\n1,2\n3,4"
	if got != want {
		t.Errorf("ExportCSV = %q, want %q", got, want)
	}
}

func TestExportCSV_HeadersOnly(t *testing.T) {
	table := &model.TableModel{Headers: []string{"a", "b"}}
	if got := string(ExportCSV(table)); got != "\uFEFFa,b" {
		t.Errorf("ExportCSV = %q, want headers only", got)
	}
}

func TestExportCSV_NilAndFloatCells(t *testing.T) {
	table := &model.TableModel{
		Headers: []string{"gu", "price"},
		Rows:    [][]any{{"강남구", 100.0}, {nil, 0.5}},
	}
	want := "\uFEFFgu,price\n강남구,100\n,0.5"
	if got := string(ExportCSV(table)); got != want {
		t.Errorf("ExportCSV = %q, want %q", got, want)
	}
}

func TestCSVFilename(t *testing.T) {
	table := &model.TableModel{Title: "Search Results"}
	if got := CSVFilename(table); got != "Search Results.csv" {
		t.Errorf("CSVFilename = %q", got)
	}
}
