package saver

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/parquet-go/parquet-go"

	"tao-data/internal/model"
)

var sample = model.Dataset{
	{Timestamp: 1700000000, Price: 9.5},
	{Timestamp: 1700086400, Price: 9.7},
}

func TestNewByFormat(t *testing.T) {
	tests := []struct {
		format string
		ext    string
	}{
		{"json", "json"},
		{"CSV", "csv"},
		{" parquet ", "parquet"},
	}
	for _, tt := range tests {
		s := New(tt.format)
		if s == nil {
			t.Fatalf("New(%q) returned nil", tt.format)
		}
		if s.Extension() != tt.ext {
			t.Fatalf("New(%q).Extension() = %s, want %s", tt.format, s.Extension(), tt.ext)
		}
	}

	if s := New("xml"); s != nil {
		t.Fatalf("expected nil for unsupported format, got %T", s)
	}
}

func TestJSONSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	if err := (JSONSaver{}).Save(sample, path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var got model.Dataset
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, sample) {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestCSVSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.csv")
	if err := (CSVSaver{}).Save(sample, path); err != nil {
		t.Fatal(err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := "timestamp,price\n1700000000,9.5\n1700086400,9.7\n"
	if string(raw) != want {
		t.Fatalf("unexpected CSV content:\n got %q\nwant %q", raw, want)
	}
}

func TestParquetSaver(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.parquet")
	if err := (ParquetSaver{}).Save(sample, path); err != nil {
		t.Fatal(err)
	}

	rows, err := parquet.ReadFile[row](path)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(sample) {
		t.Fatalf("expected %d rows, got %d", len(sample), len(rows))
	}
	for i, r := range rows {
		if r.Timestamp != sample[i].Timestamp || r.Price != sample[i].Price {
			t.Fatalf("row %d mismatch: %+v", i, r)
		}
	}
}
