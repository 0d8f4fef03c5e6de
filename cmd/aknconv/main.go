package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/coolbeans/aknconv/pkg/akn"
	"github.com/coolbeans/aknconv/pkg/pdftext"
	"github.com/coolbeans/aknconv/pkg/pipeline"
	"github.com/coolbeans/aknconv/pkg/scrape"
)

var version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "aknconv",
		Short: "Legislative document to Akoma Ntoso converter",
		Long: `Aknconv converts legislative plain text into Akoma Ntoso 3.0 XML.

It recognizes the sectioning conventions of US state legislation
(sections, statutory subsections, lettered and numbered items) and
produces standards-conformant acts with full FRBR metadata:

  - convert  turn a text or PDF document into Akoma Ntoso XML
  - extract  pull plain text out of a PDF
  - scrape   download source PDFs from a legislature website
  - watch    convert documents continuously as they arrive`,
		Version: version,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	rootCmd.AddCommand(convertCmd())
	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(scrapeCmd())
	rootCmd.AddCommand(watchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the shared logger, honoring the root --verbose flag.
func newLogger(cmd *cobra.Command) hclog.Logger {
	level := hclog.Info
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "aknconv",
		Level:  level,
		Output: os.Stderr,
	})
}

// addConvertFlags registers the bibliographic flags shared by the commands
// that produce XML.
func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().String("jurisdiction", akn.DefaultJurisdiction, "ISO country code for the work URI")
	cmd.Flags().String("state", "", "state or subdivision code (e.g. vt)")
	cmd.Flags().String("date", "", "enactment date, YYYY-MM-DD (default: today)")
	cmd.Flags().String("title", "", "document title (default: derived from the filename)")
	cmd.Flags().String("act-number", "", "act number for the work URI (default: derived from the filename)")
}

// convertConfig reads the bibliographic flags into an akn.Config.
func convertConfig(cmd *cobra.Command) akn.Config {
	jurisdiction, _ := cmd.Flags().GetString("jurisdiction")
	state, _ := cmd.Flags().GetString("state")
	date, _ := cmd.Flags().GetString("date")
	title, _ := cmd.Flags().GetString("title")
	actNumber, _ := cmd.Flags().GetString("act-number")

	return akn.Config{
		Jurisdiction:  jurisdiction,
		State:         state,
		EnactmentDate: date,
		Title:         title,
		ActNumber:     actNumber,
	}
}

func convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <source>",
		Short: "Convert a document to Akoma Ntoso XML",
		Long: `Convert a legislative text or PDF document to Akoma Ntoso 3.0 XML.

The source may be a single .txt or .pdf file, or a directory, in which
case every text and PDF document inside it is converted.

Example:
  aknconv convert act_042.txt --state vt --date 2024-03-15
  aknconv convert downloads/acts/ --output-dir xml/ --state vt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			outputDir, _ := cmd.Flags().GetString("output-dir")
			output, _ := cmd.Flags().GetString("output")
			logger := newLogger(cmd)

			info, err := os.Stat(source)
			if err != nil {
				return fmt.Errorf("failed to stat source: %w", err)
			}

			if info.IsDir() {
				if output != "" {
					return fmt.Errorf("--output only applies to single files; use --output-dir")
				}
				if outputDir == "" {
					outputDir = source
				}
				runner := pipeline.NewRunner(pipeline.Options{
					InputDir:  source,
					OutputDir: outputDir,
					Convert:   convertConfig(cmd),
				}, logger)
				results, err := runner.Run()
				if err != nil {
					return err
				}
				fmt.Printf("Converted %d documents to %s\n", len(results), outputDir)
				return nil
			}

			if outputDir == "" {
				outputDir = filepath.Dir(source)
			}
			runner := pipeline.NewRunner(pipeline.Options{
				InputDir:  filepath.Dir(source),
				OutputDir: outputDir,
				Convert:   convertConfig(cmd),
			}, logger)
			result, err := runner.ProcessFile(source)
			if err != nil {
				return err
			}

			if output != "" && output != result.XMLPath {
				if err := os.Rename(result.XMLPath, output); err != nil {
					return fmt.Errorf("failed to move output to %s: %w", output, err)
				}
				result.XMLPath = output
			}
			fmt.Printf("Wrote %s\n", result.XMLPath)
			return nil
		},
	}

	addConvertFlags(cmd)
	cmd.Flags().String("output", "", "output file path (single-file mode)")
	cmd.Flags().String("output-dir", "", "output directory (default: alongside the source)")
	return cmd
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <source.pdf>",
		Short: "Extract plain text from a PDF",
		Long: `Extract the plain text of a PDF document.

The text is written next to the source with a .txt extension unless
--output is given.

Example:
  aknconv extract downloads/acts/ACT042.pdf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := args[0]
			output, _ := cmd.Flags().GetString("output")

			text, err := pdftext.ExtractFile(source)
			if err != nil {
				return err
			}

			if output == "" {
				output = strings.TrimSuffix(source, filepath.Ext(source)) + ".txt"
			}
			if err := os.WriteFile(output, []byte(text), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", output, err)
			}
			fmt.Printf("Wrote %s (%d bytes)\n", output, len(text))
			return nil
		},
	}

	cmd.Flags().String("output", "", "output file path")
	return cmd
}

func scrapeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrape <statute|bill|act>",
		Short: "Download source PDFs from a legislature website",
		Long: `Scrape a legislature website for PDF documents of the given kind
and download them into the configured download directory.

Example:
  aknconv scrape act --limit 10
  aknconv scrape statute --config scraper.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := scrape.DocumentKind(args[0])
			limit, _ := cmd.Flags().GetInt("limit")
			configPath, _ := cmd.Flags().GetString("config")
			logger := newLogger(cmd)

			config := scrape.DefaultConfig()
			if configPath != "" {
				loaded, err := scrape.LoadConfig(configPath)
				if err != nil {
					return err
				}
				config = loaded
			}

			scraper := scrape.NewScraper(config, logger)
			startTime := time.Now()

			downloads, err := scraper.Scrape(cmd.Context(), kind, limit)
			if err != nil {
				return err
			}

			fmt.Printf("Downloaded %d %s documents in %s\n", len(downloads), kind, time.Since(startTime).Round(time.Millisecond))
			for _, download := range downloads {
				fmt.Printf("  - %s\n", download.Path)
			}
			return nil
		},
	}

	cmd.Flags().Int("limit", 0, "maximum number of documents to download (0 = no limit)")
	cmd.Flags().String("config", "", "scraper configuration file (YAML)")
	return cmd
}

func watchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <input-dir>",
		Short: "Convert documents continuously as they arrive",
		Long: `Watch a directory and convert each PDF that appears in it to
Akoma Ntoso XML. Runs until interrupted.

Example:
  aknconv watch downloads/acts/ --output-dir xml/ --state vt`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputDir := args[0]
			outputDir, _ := cmd.Flags().GetString("output-dir")
			if outputDir == "" {
				outputDir = inputDir
			}
			logger := newLogger(cmd)

			runner := pipeline.NewRunner(pipeline.Options{
				InputDir:  inputDir,
				OutputDir: outputDir,
				Convert:   convertConfig(cmd),
			}, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Watching %s (Ctrl-C to stop)\n", inputDir)
			if err := runner.Watch(ctx); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	addConvertFlags(cmd)
	cmd.Flags().String("output-dir", "", "output directory (default: the input directory)")
	return cmd
}
