package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/inkline-labs/inkline/pkg/chain"
	"github.com/inkline-labs/inkline/pkg/emit"
	"github.com/inkline-labs/inkline/pkg/geom"
	"github.com/inkline-labs/inkline/pkg/ingest"
	"github.com/inkline-labs/inkline/pkg/order"
	"github.com/inkline-labs/inkline/pkg/pattern"
	"github.com/inkline-labs/inkline/pkg/plotdoc"
	"github.com/inkline-labs/inkline/pkg/sketchy"
)

const version = "0.1.0"

var (
	configPath   = flag.String("config", "", "Path to a plot document (YAML or JSON, required)")
	outputDir    = flag.String("output", ".", "Output directory for generated files")
	formatFlag   = flag.String("format", "svg", "Emit format: svg, json, or all")
	seedFlag     = flag.Uint64("seed", 0, "Override the fill pattern's seed (0 = use document/default seed)")
	patternFlag  = flag.String("pattern", "", "Override the document's fill pattern")
	spacingFlag  = flag.Float64("spacing", 0, "Override the document's fill spacing")
	angleFlag    = flag.Float64("angle", 0, "Override the document's fill angle in degrees")
	verbose      = flag.Bool("verbose", false, "Enable verbose output")
	listPatterns = flag.Bool("list-patterns", false, "List the available fill patterns and exit")
	versionF     = flag.Bool("version", false, "Print version and exit")
	help         = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("inkline version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *listPatterns {
		printPatterns()
		os.Exit(0)
	}
	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -config flag is required")
		printUsage()
		os.Exit(1)
	}

	validFormats := map[string]bool{"svg": true, "json": true, "all": true}
	if !validFormats[*formatFlag] {
		fmt.Fprintf(os.Stderr, "Error: invalid format %q, must be one of: svg, json, all\n", *formatFlag)
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if *verbose {
		fmt.Printf("Loading document from %s\n", *configPath)
	}

	format := ingest.FormatFromExt(filepath.Ext(*configPath))
	doc, err := ingest.LoadDocumentFile(*configPath, format)
	if err != nil {
		return fmt.Errorf("failed to load document: %w", err)
	}

	// Command-line fill overrides take effect before validation, so a bad
	// -pattern or -spacing is reported the same way as a bad document.
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if *patternFlag != "" {
		doc.Fill.Pattern = *patternFlag
	}
	if set["spacing"] {
		doc.Fill.Spacing = *spacingFlag
	}
	if set["angle"] {
		doc.Fill.Angle = *angleFlag
	}

	if err := doc.Validate(); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}

	p, ok := pattern.FromName(doc.Fill.Pattern)
	if !ok {
		return fmt.Errorf("unknown fill pattern %q", doc.Fill.Pattern)
	}

	opts := pattern.Options{Seed: doc.Fill.Seed}
	if opts.Seed == nil {
		opts.Seed = doc.Seed
	}
	if *seedFlag != 0 {
		seed := *seedFlag
		opts.Seed = &seed
	}

	strategy := order.Document
	if doc.Ordering.Strategy == "nearest_neighbor" {
		strategy = order.NearestNeighbor
	}
	indices, orderReport := order.Order(doc.Polygons, strategy)
	if *verbose {
		fmt.Printf("Ordering: %d polygons, estimated travel reduction %.1f%%\n",
			len(indices), orderReport.Reduction*100)
	}

	start := time.Now()
	ordered := make([]geom.Polygon, len(indices))
	for k, i := range indices {
		ordered[k] = doc.Polygons[i]
	}
	var lines []geom.Line
	for _, polyLines := range pattern.GenerateAll(p, ordered, doc.Fill.Spacing, doc.Fill.Angle, opts, 0) {
		lines = append(lines, polyLines...)
	}
	if *verbose {
		fmt.Printf("Generated %d line segments in %v\n", len(lines), time.Since(start))
	}

	if doc.Sketchy.Enabled {
		cfg := sketchy.Config{
			Roughness:    doc.Sketchy.Roughness,
			Bowing:       doc.Sketchy.Bowing,
			DoubleStroke: doc.Sketchy.DoubleStroke,
			Seed:         doc.Sketchy.Seed,
		}
		if cfg.Seed == nil {
			cfg.Seed = doc.Seed
		}
		lines = sketchy.Apply(lines, cfg)
		if *verbose {
			fmt.Printf("Sketchy filter produced %d segments\n", len(lines))
		}
	}

	info := &emit.Info{
		Pattern: p.String(),
		Spacing: doc.Fill.Spacing,
		Angle:   doc.Fill.Angle,
		Seed:    opts.Seed,
	}
	drawing := emit.Drawing{Lines: lines, Polygons: doc.Polygons, Info: info}
	if doc.Chaining.Enabled {
		chains, stats := chain.Chain(lines, chain.Config{Tolerance: doc.Chaining.Tolerance})
		if *verbose {
			fmt.Printf("Chained %d lines into %d chains (total length %.1f)\n",
				stats.InputLines, stats.OutputChains, stats.TotalLength)
		}
		drawing = emit.Drawing{Chains: chains, Polygons: doc.Polygons, Info: info}
	}

	if err := os.MkdirAll(*outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	baseName := fmt.Sprintf("plot_%s", p.String())

	if *formatFlag == "svg" || *formatFlag == "all" {
		if err := emitSVG(drawing, baseName, doc.Output); err != nil {
			return err
		}
	}
	if *formatFlag == "json" || *formatFlag == "all" {
		if err := emitJSON(drawing, baseName); err != nil {
			return err
		}
	}

	fmt.Printf("Successfully generated plot (pattern=%s) in %v\n", p.String(), time.Since(start))
	return nil
}

func emitSVG(d emit.Drawing, baseName string, out plotdoc.OutputConfig) error {
	filename := filepath.Join(*outputDir, baseName+".svg")
	if *verbose {
		fmt.Printf("Emitting SVG to %s\n", filename)
	}
	if err := emit.SaveSVGToFile(d, filename, svgOptions(out)); err != nil {
		return fmt.Errorf("failed to emit SVG: %w", err)
	}
	return nil
}

// svgOptions maps the document's output section onto the emitter's
// options: paper preset first, explicit dimensions over it, zero values
// left on the emitter's defaults.
func svgOptions(out plotdoc.OutputConfig) emit.SVGOptions {
	opts := emit.DefaultSVGOptions()
	if paper, ok := emit.PaperFromName(out.Paper); ok {
		opts = paper.Options()
	} else {
		fmt.Fprintf(os.Stderr, "Warning: unknown paper preset %q, using defaults\n", out.Paper)
	}
	opts.Title = out.Title
	if out.Width > 0 {
		opts.Width = out.Width
	}
	if out.Height > 0 {
		opts.Height = out.Height
	}
	if out.Margin > 0 {
		opts.Margin = out.Margin
	}
	if out.StrokeWidth > 0 {
		opts.StrokeWidth = out.StrokeWidth
	}
	if out.ShowOutlines != nil {
		opts.ShowOutlines = *out.ShowOutlines
	}
	if out.ShowLegend != nil {
		opts.ShowLegend = *out.ShowLegend
	}
	if out.ShowStats != nil {
		opts.ShowStats = *out.ShowStats
	}
	return opts
}

func emitJSON(d emit.Drawing, baseName string) error {
	filename := filepath.Join(*outputDir, baseName+".json")
	if *verbose {
		fmt.Printf("Emitting JSON to %s\n", filename)
	}
	if err := emit.SaveJSONToFile(d, filename); err != nil {
		return fmt.Errorf("failed to emit JSON: %w", err)
	}
	return nil
}

// printPatterns lists every built-in pattern in enumeration (UI) order
// with its spacing multiplier and tunable-axis labels.
func printPatterns() {
	fmt.Println("Available fill patterns:")
	for _, p := range pattern.All() {
		meta, ok := p.Metadata()
		if !ok {
			continue
		}
		line := fmt.Sprintf("  %-14s %s / %s", meta.Name, meta.SpacingLabel, meta.AngleLabel)
		if meta.SpacingMultiplier != 1 {
			line += fmt.Sprintf("  (spacing x%g)", meta.SpacingMultiplier)
		}
		if meta.DefaultAngle != 0 {
			line += fmt.Sprintf("  (default angle %g)", meta.DefaultAngle)
		}
		fmt.Println(line)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: inkline -config <document.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'inkline -help' for detailed help")
}

func printHelp() {
	fmt.Printf("inkline version %s\n\n", version)
	fmt.Println("A command-line tool for generating pen-plotter stroke-fill patterns.")
	fmt.Println("\nUsage:")
	fmt.Println("  inkline -config <document.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to a plot document (YAML or JSON)")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for generated files (default: current directory)")
	fmt.Println("  -format string")
	fmt.Println("        Emit format: svg, json, or all (default: svg)")
	fmt.Println("  -seed uint")
	fmt.Println("        Override the fill pattern's seed (0 = use document/default seed)")
	fmt.Println("  -pattern string")
	fmt.Println("        Override the document's fill pattern")
	fmt.Println("  -spacing float")
	fmt.Println("        Override the document's fill spacing")
	fmt.Println("  -angle float")
	fmt.Println("        Override the document's fill angle in degrees")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -list-patterns")
	fmt.Println("        List the available fill patterns and exit")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  # Fill the polygons in a document with its configured pattern")
	fmt.Println("  inkline -config plot.yaml")
	fmt.Println("\n  # Override the seed and emit both SVG and JSON")
	fmt.Println("  inkline -config plot.yaml -seed 12345 -format all -output ./out")
	fmt.Println("\nDocument File:")
	fmt.Println("  The YAML or JSON document specifies the polygons to fill and the")
	fmt.Println("  fill/sketchy/ordering/chaining configuration. See pkg/plotdoc for")
	fmt.Println("  the document schema.")
}
