package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-constrain/internal/report"
	"github.com/grindlemire/go-constrain/internal/script"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

var formats = []string{formatText, formatJSON, formatDOT, formatSVG}

// applyOpts holds the flags of the apply command.
type applyOpts struct {
	format string // one of formats
	output string // file to write; stdout when empty
}

func newApplyCmd() *cobra.Command {
	opts := applyOpts{format: formatText}

	cmd := &cobra.Command{
		Use:   "apply [file]",
		Short: "Run a layout document and print the constraints it installs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(formats, opts.format) {
				return fmt.Errorf("unknown format %q (want one of %v)", opts.format, formats)
			}
			return runApply(cmd.Context(), args[0], opts, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, dot or svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write to this file instead of stdout")
	return cmd
}

func runApply(ctx context.Context, path string, opts applyOpts, stdout io.Writer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := script.Load(path)
	if err != nil {
		return err
	}
	res, err := script.Run(doc, script.Options{Logger: logger})
	if err != nil {
		return err
	}
	prog.done("Applied document", "path", path, "constraints", res.Installed)

	if opts.output == "" {
		return render(ctx, stdout, path, res, opts.format)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("create %s: %w", opts.output, err)
	}
	if err := render(ctx, f, path, res, opts.format); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	newPrinter(stdout).printFile(opts.output)
	return nil
}

func render(ctx context.Context, w io.Writer, path string, res *script.Result, format string) error {
	switch format {
	case formatJSON:
		return report.JSON(w, path, res.Roots)
	case formatDOT:
		_, err := io.WriteString(w, report.DOT(res.Roots))
		return err
	case formatSVG:
		svg, err := report.SVG(ctx, report.DOT(res.Roots))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	default:
		return report.Text(w, res.Roots)
	}
}
