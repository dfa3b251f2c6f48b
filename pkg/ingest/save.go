package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/inkline-labs/inkline/pkg/plotdoc"
)

// SaveDocument encodes doc in the given format. The output round-trips
// through LoadDocument.
func SaveDocument(doc plotdoc.Document, format Format) ([]byte, error) {
	switch format {
	case JSON:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("ingest: encoding document: %w", err)
		}
		return data, nil
	case YAML:
		data, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("ingest: encoding document: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("ingest: unknown format %d", format)
	}
}

// SaveDocumentFile writes doc to path, picking the format from the file
// extension. The file is created with 0644 permissions.
func SaveDocumentFile(doc plotdoc.Document, path string) error {
	data, err := SaveDocument(doc, FormatFromExt(filepath.Ext(path)))
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
