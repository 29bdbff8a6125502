package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-constrain/internal/report"
	"github.com/grindlemire/go-constrain/internal/script"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [file...]",
		Short: "Check that layout documents load and apply cleanly",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), args, newPrinter(cmd.OutOrStdout()))
		},
	}
}

// checkResult is the outcome of checking one document.
type checkResult struct {
	path        string
	elements    int
	constraints int
	err         error
}

// runCheck applies every document on its own tree, in parallel, and prints
// the results in argument order.
func runCheck(ctx context.Context, paths []string, p *printer) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	results := make([]checkResult, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = checkFile(path)
			logger.Debug("checked document", "path", path, "err", results[i].err)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var failed int
	for _, r := range results {
		if r.err != nil {
			failed++
			p.printError("%s", r.path)
			p.printDetail("%v", r.err)
			continue
		}
		p.printSuccess("%s (%d elements, %d constraints)", r.path, r.elements, r.constraints)
	}
	prog.done("Checked documents", "files", len(paths), "failed", failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d document(s) failed", failed, len(paths))
	}
	return nil
}

func checkFile(path string) checkResult {
	r := checkResult{path: path}
	doc, err := script.Load(path)
	if err != nil {
		r.err = err
		return r
	}
	res, err := script.Run(doc, script.Options{})
	if res != nil {
		r.elements, r.constraints = report.Count(res.Roots)
	}
	r.err = err
	return r
}
