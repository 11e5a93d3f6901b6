// Package cli implements the mm2md command-line interface.
//
// This package wraps the conversion engine in two user surfaces: a batch
// mode that converts the files named on the command line, and an
// interactive picker (shown when no files are given) that lists the
// supported mind maps in the working directory. The CLI is built using
// cobra and supports verbose logging via the charmbracelet/log library.
//
// The engine itself performs no file writes; this package owns destination
// selection and persists each result as one full-content write.
package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/reyanb/MindManager-to-Md/layout"
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  = "none"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the mm2md CLI and returns an error if the command fails.
//
// With file arguments, each is converted sequentially; a failure on one
// file is reported and does not stop the rest, but any failure makes the
// whole run fail. Without arguments, the interactive picker starts.
func Execute() error {
	var (
		verbose bool
		opts    convertOptions
	)

	root := &cobra.Command{
		Use:   "mm2md [files...]",
		Short: "mm2md converts MindManager mind maps to Markdown",
		Long: `mm2md converts MindManager documents (.mmap, .xmmap) to Markdown,
picking a layout-aware rendering: canvas grids become tables, free-form
boards become sections, and everything else becomes an outline.

Run without arguments to pick a file interactively.`,
		Version:      version,
		SilenceUsage: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if opts.output != "" && len(args) != 1 {
				return fmt.Errorf("--output requires exactly one input file")
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			if len(args) == 0 {
				return runPicker(logger, opts)
			}

			failed := 0
			for _, path := range args {
				if err := convertFile(logger, path, opts); err != nil {
					logger.Error("conversion failed", "file", path, "err", err)
					failed++
				}
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d conversions failed", failed, len(args))
			}
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("mm2md %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "destination file (single input only)")
	root.Flags().BoolVar(&opts.stdout, "stdout", false, "print Markdown instead of writing a file")
	root.Flags().BoolVar(&opts.html, "html", false, "also write an .html preview next to the .md")
	root.Flags().Float64Var(&opts.tolerance, "tolerance", layout.DefaultTolerance,
		"position-clustering tolerance in canvas units")

	return root.ExecuteContext(context.Background())
}
