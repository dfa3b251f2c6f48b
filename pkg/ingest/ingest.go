package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/plotdoc"
)

// Format selects the on-disk encoding of a plot document.
type Format int

const (
	// YAML decodes the document with gopkg.in/yaml.v3.
	YAML Format = iota
	// JSON decodes the document with encoding/json.
	JSON
)

// Sentinel errors distinguishing a structurally broken document from a
// decodable but empty one.
var (
	// ErrMalformedDocument wraps the underlying decode error.
	ErrMalformedDocument = errors.New("ingest: malformed document")
	// ErrEmptyDocument is returned when the input has no content at all.
	ErrEmptyDocument = errors.New("ingest: empty document")
)

// LoadDocument decodes a plotdoc.Document from r in the given format. It
// does not call Document.Validate; callers decide when to validate.
func LoadDocument(r io.Reader, format Format) (plotdoc.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return plotdoc.Document{}, fmt.Errorf("ingest: reading input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return plotdoc.Document{}, ErrEmptyDocument
	}

	doc := plotdoc.Default()
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return plotdoc.Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return plotdoc.Document{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	default:
		return plotdoc.Document{}, fmt.Errorf("ingest: unknown format %d", format)
	}
	return doc, nil
}

// LoadPolygons decodes a bare polygon list (no fill or stage
// configuration) from r, the shape an external shape parser hands over.
// The polygons slot into a default Document via plotdoc.Default.
func LoadPolygons(r io.Reader, format Format) ([]geom.Polygon, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading input: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var polygons []geom.Polygon
	switch format {
	case JSON:
		if err := json.Unmarshal(data, &polygons); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	case YAML:
		if err := yaml.Unmarshal(data, &polygons); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	default:
		return nil, fmt.Errorf("ingest: unknown format %d", format)
	}
	if len(polygons) == 0 {
		return nil, ErrEmptyDocument
	}
	return polygons, nil
}

// LoadDocumentFile opens path and decodes it per format.
func LoadDocumentFile(path string, format Format) (plotdoc.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return plotdoc.Document{}, fmt.Errorf("ingest: opening %s: %w", path, err)
	}
	defer f.Close()
	return LoadDocument(f, format)
}

// FormatFromExt maps a filename extension (".yaml", ".yml", ".json") to a
// Format, defaulting to YAML for any other or missing extension.
func FormatFromExt(ext string) Format {
	switch ext {
	case ".json":
		return JSON
	default:
		return YAML
	}
}
