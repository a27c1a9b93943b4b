package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/punishboard/pkg/pipeline"
)

// defaultBase is the output base name when -o is not given.
const defaultBase = "board"

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string // output file (single artifact) or base path
	vizTypes    string // comma-separated visualization types
	formats     string // comma-separated output formats
	spaces      string // comma-separated spaces overriding the saved list
	topRight    string
	bottomRight string
	bottomLeft  string
	noCache     bool
}

// renderCommand creates the render command for writing board artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var ro renderOpts
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the board to files",
		Long: `Render the board to files.

The saved space list is used unless --spaces is given. Visualization types:
  board   the square board (svg, png, pdf, json, txt)
  ring    a Graphviz ring of the perimeter walk (svg, png, pdf, dot)

With one artifact, -o names the file ("-" writes to stdout). With several,
-o is a base path and files are named base.format, or base_type.format when
more than one type is requested. Unsupported type/format pairs are skipped.

PNG and PDF output of the board needs rsvg-convert on PATH.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.VizTypes = parseVizTypes(ro.vizTypes)
			opts.Formats = parseFormats(ro.formats)
			for _, v := range opts.VizTypes {
				if err := pipeline.ValidateVizType(v); err != nil {
					return err
				}
			}
			for _, f := range opts.Formats {
				if err := pipeline.ValidateFormat(f); err != nil {
					return err
				}
			}
			return c.runRender(cmd.Context(), opts, ro)
		},
	}

	cmd.Flags().StringVarP(&ro.output, "output", "o", "", "output file (single artifact) or base path (multiple)")
	cmd.Flags().StringVarP(&ro.vizTypes, "type", "t", "", "visualization type(s): board (default), ring (comma-separated)")
	cmd.Flags().StringVarP(&ro.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, txt, dot (comma-separated)")
	cmd.Flags().StringVar(&ro.spaces, "spaces", "", "comma-separated spaces instead of the saved list")
	cmd.Flags().StringVar(&ro.topRight, "top-right", "", "top right corner label")
	cmd.Flags().StringVar(&ro.bottomRight, "bottom-right", "", "bottom right corner label")
	cmd.Flags().StringVar(&ro.bottomLeft, "bottom-left", "", "bottom left corner label")
	cmd.Flags().BoolVar(&ro.noCache, "no-cache", false, "disable the artifact cache")

	cmd.Flags().StringVar(&opts.Name, "name", "", "board name shown in the centre")
	cmd.Flags().IntVar(&opts.Position, "position", 0, "token position on the perimeter (0 is GO!)")
	cmd.Flags().IntVar(&opts.LastRoll, "roll", 0, "last roll to show in the centre")
	cmd.Flags().Float64Var(&opts.TileSize, "tile-size", 0, "tile size in pixels (default from config)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.Detailed, "detailed", false, "label ring nodes with their index and side")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even if cached")

	return cmd
}

// runRender resolves the space list, runs the pipeline and writes artifacts.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, ro renderOpts) error {
	logger := loggerFromContext(ctx)

	if ro.spaces != "" {
		opts.Spaces = splitList(ro.spaces)
	} else {
		s, closeFn, err := c.openSession(ctx)
		if err != nil {
			return err
		}
		opts.Spaces = s.Names()
		closeFn()
	}
	opts.Corners = c.corners(ro.topRight, ro.bottomRight, ro.bottomLeft)
	if opts.TileSize == 0 {
		opts.TileSize = c.Config.Game.TileSize
	}
	opts.Logger = logger

	runner, err := c.newRunner(ro.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return err
	}
	if len(result.Artifacts) == 0 {
		return fmt.Errorf("nothing to render: no requested type supports %s", strings.Join(opts.Formats, ", "))
	}
	prog.done(fmt.Sprintf("Rendered %d artifacts", len(result.Artifacts)))

	targets := artifactPaths(result.Artifacts, opts.VizTypes, opts.Formats, ro.output)
	var written []string
	for _, t := range targets {
		if err := writeArtifact(t.path, result.Artifacts[t.name]); err != nil {
			return err
		}
		if t.path != "-" {
			written = append(written, t.path)
		}
	}

	if len(written) == 0 {
		return nil
	}
	printSuccess("Board rendered")
	for _, path := range written {
		printFile(path)
	}
	printStats(result.Stats.SpaceCount, result.Stats.Perimeter, result.CacheHits == len(result.Artifacts))
	return nil
}

type artifactTarget struct {
	name string // key in the artifact map
	path string // file path, or "-" for stdout
}

// artifactPaths decides where each rendered artifact goes, in request order.
func artifactPaths(artifacts map[string][]byte, vizTypes, formats []string, output string) []artifactTarget {
	var names []string
	for _, viz := range vizTypes {
		for _, format := range formats {
			if _, ok := artifacts[pipeline.ArtifactName(viz, format)]; ok {
				names = append(names, pipeline.ArtifactName(viz, format))
			}
		}
	}

	if len(names) == 1 {
		path := output
		switch {
		case output == "" && strings.HasSuffix(names[0], "."+pipeline.FormatTXT):
			path = "-"
		case output == "":
			path = defaultBase + filepath.Ext(names[0])
		}
		return []artifactTarget{{name: names[0], path: path}}
	}

	base := basePath(output, defaultBase)
	targets := make([]artifactTarget, 0, len(names))
	for _, name := range names {
		viz, format, _ := strings.Cut(name, ".")
		path := base + "." + format
		if len(vizTypes) > 1 {
			path = fmt.Sprintf("%s_%s.%s", base, viz, format)
		}
		targets = append(targets, artifactTarget{name: name, path: path})
	}
	return targets
}

// basePath derives the base output path. If output is empty, fallback is
// used. A known format extension on output is stripped.
func basePath(output, fallback string) string {
	if output == "" || output == "-" {
		return fallback
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeArtifact writes data to path, creating parent directories. "-"
// writes to stdout.
func writeArtifact(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
