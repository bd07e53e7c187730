package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/textscope/textscope/internal/config"
	"github.com/textscope/textscope/internal/dup"
	"github.com/textscope/textscope/internal/freq"
	"github.com/textscope/textscope/internal/linelen"
	"github.com/textscope/textscope/internal/render"
	"github.com/textscope/textscope/internal/scan"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "textscope",
		Short:         "Analyze text files for word frequency and duplicated line blocks",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDuplicationCmd(), newHistogramCmd(), newLineLengthCmd())
	return root
}

func newDuplicationCmd() *cobra.Command {
	var (
		minLines  int
		filesOnly bool
		asJSON    bool
		detail    bool
		excludes  []string
	)

	cmd := &cobra.Command{
		Use:   "duplication [paths...]",
		Short: "Report duplicated line blocks across the given files and directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configDir(args))
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("exclude") {
				excludes = append(excludes, cfg.Exclude...)
			}
			if !cmd.Flags().Changed("min-lines") && cfg.MinLines > 0 {
				minLines = cfg.MinLines
			}

			paths, err := collectPaths(cmd.OutOrStdout(), args, excludes)
			if err != nil {
				return err
			}

			files := scan.Load(paths)
			defer files.Close()

			sources := make([]dup.Source, len(files))
			for i, f := range files {
				sources[i] = f
			}
			blocks, err := dup.Find(sources, minLines)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch {
			case asJSON:
				return render.WriteDuplications(out, blocks)
			case filesOnly:
				render.FilesOnly(out, blocks)
			case detail:
				render.Detail(out, blocks)
			default:
				render.Duplications(out, blocks)
				render.Hotspots(out, blocks)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minLines, "min-lines", 2, "Minimum non-empty lines per reported block; 1 reports single duplicated lines")
	cmd.Flags().BoolVar(&filesOnly, "files-only", false, "Only list the files containing duplications")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&detail, "detail", false, "Render blocks as styled markdown snippets")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "Exclude files matching these base-name globs (e.g. '*.pb.go')")
	return cmd
}

func newHistogramCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "histogram <file>",
		Short: "Print a histogram of word frequency in a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			counts := freq.Map(string(data))
			if asJSON {
				return render.WriteJSON(cmd.OutOrStdout(), freq.Items(counts))
			}
			fmt.Fprint(cmd.OutOrStdout(), freq.Format(counts))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit results as JSON")
	return cmd
}

func newLineLengthCmd() *cobra.Command {
	var (
		asJSON   bool
		excludes []string
	)

	cmd := &cobra.Command{
		Use:   "line-length [paths...]",
		Short: "Print a histogram of line lengths across the given files and directories",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := collectPaths(cmd.OutOrStdout(), args, excludes)
			if err != nil {
				return err
			}

			files := scan.Load(paths)
			defer files.Close()
			if len(files) == 0 {
				return dup.ErrNoInput
			}

			sources := make([]linelen.Source, len(files))
			for i, f := range files {
				sources[i] = f
			}
			histogram := linelen.Histogram(sources)
			if asJSON {
				return render.WriteJSON(cmd.OutOrStdout(), linelen.Rows(histogram))
			}
			fmt.Fprint(cmd.OutOrStdout(), linelen.Format(histogram))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit results as JSON")
	cmd.Flags().StringSliceVar(&excludes, "exclude", nil, "Exclude files matching these base-name globs")
	return cmd
}

// collectPaths expands each argument into concrete file paths: files pass
// through, directories are walked. A path that does not exist is an error.
func collectPaths(w io.Writer, args, excludes []string) ([]string, error) {
	var paths []string
	scannedFiles := 0

	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("path does not exist: %s", arg)
		}
		if info.IsDir() {
			found, err := scan.FindFiles(arg, excludes)
			if err != nil {
				return nil, err
			}
			render.PrintScanStart(w, len(found), arg)
			paths = append(paths, found...)
			continue
		}
		paths = append(paths, arg)
		scannedFiles++
	}

	if scannedFiles > 0 && scannedFiles == len(args) {
		render.PrintScanStart(w, len(paths), "")
	}
	return paths, nil
}

// configDir picks where to look for .textscope.yaml: the first directory
// argument, or the working directory when only files were given.
func configDir(args []string) string {
	for _, arg := range args {
		if info, err := os.Stat(arg); err == nil && info.IsDir() {
			return arg
		}
	}
	return "."
}
