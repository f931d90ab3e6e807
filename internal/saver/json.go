package saver

import (
	"encoding/json"
	"os"

	"tao-data/internal/model"
)

// JSONSaver writes the snapshot as an indented JSON array of pairs, the same
// layout as the store file.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(ds model.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(ds)
}
