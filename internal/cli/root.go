package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tabwrap/tabwrap/pkg/buildinfo"
	"github.com/tabwrap/tabwrap/pkg/errors"
	"github.com/tabwrap/tabwrap/pkg/pipeline"
	"github.com/tabwrap/tabwrap/pkg/render"
)

// formatCommand creates the root command, which is the formatter
// itself.
func (c *CLI) formatCommand() *cobra.Command {
	var (
		verbose    bool
		widthsFlag string
		tableWidth int
		layout     string
		delimiter  string
		escapes    bool
		strict     bool
		breakWords bool
		output     string
	)

	cmd := &cobra.Command{
		Use:   "tabwrap [file]",
		Short: "Tabwrap formats delimited text as a word-wrapped table",
		Long: `Tabwrap reads delimiter-separated text from stdin or a file and prints
it as a fixed-width table, word-wrapping cells so the table fits the
terminal (or a given width). Column widths can be fixed with -W; the
remaining columns are sized to minimize the table's height.`,
		Example: `  ps aux | head -5 | tr -s ' ' '\t' | tabwrap
  tabwrap -d ',' -W '12,*,8' -T 100 data.csv
  tabwrap -L grid -e notes.tsv`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		Args:         cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
				registerLogHooks(c.Logger)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("layout") && cfg.Layout != "" {
				layout = cfg.Layout
			}
			if !cmd.Flags().Changed("delimiter") && cfg.Delimiter != "" {
				delimiter = cfg.Delimiter
			}
			if !cmd.Flags().Changed("table-width") && cfg.TableWidth != nil {
				tableWidth = *cfg.TableWidth
			}
			if !cmd.Flags().Changed("break-words") && cfg.BreakWords != nil {
				breakWords = *cfg.BreakWords
			}

			widths, err := parseWidths(widthsFlag)
			if err != nil {
				return err
			}

			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(errors.ErrCodeIO, err, "open %s", args[0])
				}
				defer f.Close()
				in = f
			}

			out := io.Writer(os.Stdout)
			var outFile *os.File
			if output != "" {
				outFile, err = os.Create(output)
				if err != nil {
					return errors.Wrap(errors.ErrCodeIO, err, "create %s", output)
				}
				out = outFile
			}

			runner := pipeline.New(c.Logger, pipeline.Options{
				Layout:        layout,
				Delimiter:     delimiter,
				DecodeEscapes: escapes,
				Widths:        widths,
				TotalWidth:    tableWidth,
				BreakWords:    breakWords,
				Strict:        strict,
			})

			p := newProgress(c.Logger)
			runErr := runner.Run(cmd.Context(), in, out)
			if outFile != nil {
				if closeErr := outFile.Close(); closeErr != nil && runErr == nil {
					runErr = errors.Wrap(errors.ErrCodeIO, closeErr, "close %s", output)
				}
			}
			if runErr != nil {
				return runErr
			}
			if verbose {
				p.done("formatted table")
			}
			if outFile != nil {
				printFile(output)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	cmd.Flags().StringVarP(&widthsFlag, "widths", "W", "",
		"comma-separated column widths, * leaves a column to the planner (e.g. '12,*,8')")
	cmd.Flags().IntVarP(&tableWidth, "table-width", "T", -1,
		"total table width (default: terminal width)")
	cmd.Flags().StringVarP(&layout, "layout", "L", "grid_no_header",
		fmt.Sprintf("table layout, one of: %v", render.Names()))
	cmd.Flags().StringVarP(&delimiter, "delimiter", "d", "\t", "input field delimiter")
	cmd.Flags().BoolVarP(&escapes, "escapes", "e", false,
		"decode backslash escapes in input fields (echo -e style)")
	cmd.Flags().BoolVarP(&strict, "strict", "S", false,
		"fail when a cell cannot fit its column instead of warning")
	cmd.Flags().BoolVar(&breakWords, "break-words", false,
		"hard-break words longer than their column")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the table to a file instead of stdout")

	return cmd
}
