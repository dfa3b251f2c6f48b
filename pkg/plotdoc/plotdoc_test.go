package plotdoc_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/plotdoc"
)

func unitSquare() geom.Polygon {
	return geom.Polygon{
		Outer: geom.Ring{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}},
	}
}

func TestValidateRejectsNoPolygons(t *testing.T) {
	doc := plotdoc.Default()
	require.ErrorIs(t, doc.Validate(), plotdoc.ErrNoPolygons)
}

func TestValidateRejectsUnknownPattern(t *testing.T) {
	doc := plotdoc.Default()
	doc.Polygons = []geom.Polygon{unitSquare()}
	doc.Fill.Pattern = "not-a-real-pattern"

	require.ErrorIs(t, doc.Validate(), plotdoc.ErrUnknownPattern)
}

func TestValidateAcceptsWellFormedDocument(t *testing.T) {
	doc := plotdoc.Default()
	doc.Polygons = []geom.Polygon{unitSquare()}

	require.NoError(t, doc.Validate())
}

func TestValidateRejectsDegeneratePolygon(t *testing.T) {
	doc := plotdoc.Default()
	doc.Polygons = []geom.Polygon{{Outer: geom.Ring{{X: 0, Y: 0}, {X: 1, Y: 1}}}}

	require.Error(t, doc.Validate())
}

func TestValidateRejectsNonPositiveSpacing(t *testing.T) {
	doc := plotdoc.Default()
	doc.Polygons = []geom.Polygon{unitSquare()}
	doc.Fill.Spacing = 0

	require.Error(t, doc.Validate())
}

func TestDocumentDecodesOutputSection(t *testing.T) {
	src := `
polygons:
  - outer:
      - {x: 0, y: 0}
      - {x: 10, y: 0}
      - {x: 10, y: 10}
fill:
  pattern: Lines
  spacing: 5
output:
  title: Demo
  paper: a4-landscape
  stroke_width: 0.5
  show_outlines: false
`
	doc := plotdoc.Default()
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.NoError(t, doc.Validate())
	require.Equal(t, "Demo", doc.Output.Title)
	require.Equal(t, "a4-landscape", doc.Output.Paper)
	require.Equal(t, 0.5, doc.Output.StrokeWidth)
	require.NotNil(t, doc.Output.ShowOutlines)
	require.False(t, *doc.Output.ShowOutlines)
}

func TestValidateRejectsNegativeOutputDimensions(t *testing.T) {
	doc := plotdoc.Default()
	doc.Polygons = []geom.Polygon{unitSquare()}
	doc.Output.Width = -100

	require.Error(t, doc.Validate())
}

func TestValidateAcceptsZeroOutputAsDefaults(t *testing.T) {
	doc := plotdoc.Default()
	doc.Polygons = []geom.Polygon{unitSquare()}
	doc.Output = plotdoc.OutputConfig{}

	require.NoError(t, doc.Validate())
}

func TestValidateRejectsUnknownOrderingStrategy(t *testing.T) {
	doc := plotdoc.Default()
	doc.Polygons = []geom.Polygon{unitSquare()}
	doc.Ordering.Strategy = "salesman"

	require.Error(t, doc.Validate())
}
