// Package pipeline orchestrates the PDF-to-XML conversion flow: it walks an
// input directory for source documents, extracts and stages their text, and
// writes Akoma Ntoso XML to an output directory.
package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/coolbeans/aknconv/pkg/akn"
	"github.com/coolbeans/aknconv/pkg/pdftext"
)

// Options configures a conversion run.
type Options struct {
	// InputDir is scanned for .pdf and .txt source documents.
	InputDir string

	// OutputDir receives one .xml file per converted document.
	OutputDir string

	// Convert carries the bibliographic configuration. Title and ActNumber
	// are derived per file from its name when left empty.
	Convert akn.Config
}

// Result records one successfully converted document.
type Result struct {
	// Source is the input file the conversion started from.
	Source string

	// TextPath is the staged plain-text file, empty when the source was
	// already text.
	TextPath string

	// XMLPath is the generated Akoma Ntoso XML file.
	XMLPath string
}

// Runner executes conversion runs over a directory of documents.
type Runner struct {
	options Options
	logger  hclog.Logger
	titler  cases.Caser
}

// NewRunner creates a Runner. A nil logger is replaced with a no-op logger.
func NewRunner(options Options, logger hclog.Logger) *Runner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Runner{
		options: options,
		logger:  logger,
		titler:  cases.Title(language.English),
	}
}

// Run converts every .pdf and .txt file in the input directory, in name
// order. Per-file failures are logged and skipped; Run only fails when the
// input directory cannot be read or the output directory cannot be created.
func (runner *Runner) Run() ([]Result, error) {
	if err := os.MkdirAll(runner.options.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", runner.options.OutputDir, err)
	}

	entries, err := os.ReadDir(runner.options.InputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read input directory %s: %w", runner.options.InputDir, err)
	}

	var sources []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".pdf", ".txt":
			sources = append(sources, filepath.Join(runner.options.InputDir, entry.Name()))
		}
	}
	sort.Strings(sources)

	var results []Result
	for _, source := range sources {
		result, err := runner.ProcessFile(source)
		if err != nil {
			runner.logger.Error("conversion failed", "source", source, "error", err)
			continue
		}
		results = append(results, result)
	}

	runner.logger.Info("conversion run finished", "sources", len(sources), "converted", len(results))
	return results, nil
}

// ProcessFile converts a single .pdf or .txt document. PDF sources get
// their extracted text staged as a sibling .txt file, mirroring what the
// scraper's staging step produces.
func (runner *Runner) ProcessFile(source string) (Result, error) {
	result := Result{Source: source}
	baseName := strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))

	var text string
	switch strings.ToLower(filepath.Ext(source)) {
	case ".pdf":
		extracted, err := pdftext.ExtractFile(source)
		if err != nil {
			return result, err
		}
		if strings.TrimSpace(extracted) == "" {
			return result, fmt.Errorf("extracted empty text from %s", source)
		}
		text = extracted

		result.TextPath = filepath.Join(filepath.Dir(source), baseName+".txt")
		if err := os.WriteFile(result.TextPath, []byte(text), 0644); err != nil {
			return result, fmt.Errorf("failed to stage text %s: %w", result.TextPath, err)
		}
		runner.logger.Debug("staged extracted text", "path", result.TextPath)

	case ".txt":
		data, err := os.ReadFile(source)
		if err != nil {
			return result, fmt.Errorf("failed to read %s: %w", source, err)
		}
		text = pdftext.Normalize(string(data))

	default:
		return result, fmt.Errorf("unsupported source file %s", source)
	}

	config := runner.options.Convert
	if config.Title == "" {
		config.Title = runner.titler.String(strings.ReplaceAll(baseName, "_", " "))
	}
	if config.ActNumber == "" {
		config.ActNumber = baseName
	}

	xmlOutput, err := akn.Convert(text, config)
	if err != nil {
		return result, err
	}

	result.XMLPath = filepath.Join(runner.options.OutputDir, baseName+".xml")
	if err := os.WriteFile(result.XMLPath, []byte(xmlOutput), 0644); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", result.XMLPath, err)
	}

	runner.logger.Info("converted document", "source", source, "xml", result.XMLPath)
	return result, nil
}
