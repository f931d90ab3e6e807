package saver

import (
	"strings"

	"tao-data/internal/model"
)

// Saver writes a dataset snapshot for downstream consumers. The canonical
// store file stays JSON; snapshots never feed back into it.
type Saver interface {
	Save(ds model.Dataset, path string) error
	Extension() string
}

// New creates an implementation by format (json, csv, parquet).
// Returns nil if the format is not supported.
func New(format string) Saver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return JSONSaver{}
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	default:
		return nil
	}
}
