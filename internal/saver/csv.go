package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"tao-data/internal/model"
)

// CSVSaver writes the snapshot as CSV (header: timestamp,price).
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(ds model.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	if err := w.Write([]string{"timestamp", "price"}); err != nil {
		return err
	}
	for _, p := range ds {
		if err := w.Write([]string{
			strconv.FormatInt(p.Timestamp, 10),
			strconv.FormatFloat(p.Price, 'f', -1, 64),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
