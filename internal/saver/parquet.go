package saver

import (
	"github.com/parquet-go/parquet-go"

	"tao-data/internal/model"
)

// row is the parquet schema for one point.
type row struct {
	Timestamp int64   `parquet:"timestamp"`
	Price     float64 `parquet:"price"`
}

// ParquetSaver writes the snapshot as Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(ds model.Dataset, path string) error {
	rows := make([]row, len(ds))
	for i, p := range ds {
		rows[i] = row{Timestamp: p.Timestamp, Price: p.Price}
	}
	return parquet.WriteFile(path, rows)
}
