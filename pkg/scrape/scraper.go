package scrape

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Download records one downloaded PDF and the link metadata it came from.
type Download struct {
	// Path is the local file the PDF was written to.
	Path string

	// Link is the discovered link the file was downloaded from.
	Link PDFLink
}

// Scraper discovers and downloads legislative PDFs for one or more document
// kinds.
type Scraper struct {
	client *Client
	config Config
	logger hclog.Logger
}

// NewScraper creates a Scraper. A nil logger is replaced with a no-op logger.
func NewScraper(config Config, logger hclog.Logger) *Scraper {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Scraper{
		client: NewClient(config, logger),
		config: config,
		logger: logger,
	}
}

// Scrape fetches the index page for the given kind, discovers PDF links,
// and downloads up to limit PDFs (limit <= 0 means all) into the kind's
// subdirectory. Individual download failures are logged and skipped.
func (scraper *Scraper) Scrape(ctx context.Context, kind DocumentKind, limit int) ([]Download, error) {
	baseURL, ok := scraper.config.BaseURLs[kind]
	if !ok || baseURL == "" {
		return nil, fmt.Errorf("no base URL configured for document kind %q", kind)
	}

	scraper.logger.Info("starting scrape", "kind", kind, "url", baseURL)

	page, err := scraper.client.FetchPage(ctx, baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch index page for %s: %w", kind, err)
	}

	links, err := DiscoverPDFLinks(baseURL, page, kind)
	if err != nil {
		return nil, err
	}
	scraper.logger.Info("discovered PDF links", "kind", kind, "count", len(links))

	outputDir := filepath.Join(scraper.config.DownloadDirectory, kind.DirName())
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create download directory %s: %w", outputDir, err)
	}

	var downloads []Download
	for index, link := range links {
		if limit > 0 && len(downloads) >= limit {
			break
		}
		if err := ctx.Err(); err != nil {
			return downloads, err
		}

		localPath := filepath.Join(outputDir, generateFilename(link, index))
		if err := scraper.downloadPDF(ctx, link.URL, localPath); err != nil {
			scraper.logger.Warn("skipping PDF", "url", link.URL, "error", err)
			continue
		}

		scraper.logger.Info("downloaded PDF", "url", link.URL, "path", localPath)
		downloads = append(downloads, Download{Path: localPath, Link: link})
	}

	scraper.logger.Info("scrape finished", "kind", kind, "downloaded", len(downloads))
	return downloads, nil
}

// downloadPDF fetches a PDF and writes it to localPath. Existing non-empty
// files are kept as-is so re-runs resume instead of re-downloading.
func (scraper *Scraper) downloadPDF(ctx context.Context, pdfURL, localPath string) error {
	if info, err := os.Stat(localPath); err == nil && info.Size() > 0 {
		scraper.logger.Debug("already downloaded", "path", localPath)
		return nil
	}

	body, err := scraper.client.Fetch(ctx, pdfURL)
	if err != nil {
		return err
	}

	if err := os.WriteFile(localPath, body, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", localPath, err)
	}
	return nil
}

// generateFilename builds a safe, reasonably descriptive filename for a
// downloaded PDF from its link title, falling back to the index.
func generateFilename(link PDFLink, index int) string {
	safeTitle := sanitizeTitle(link.Title)
	if safeTitle == "" {
		return fmt.Sprintf("%s_%d.pdf", link.Kind, index)
	}
	return fmt.Sprintf("%s_%s_%d.pdf", link.Kind, safeTitle, index)
}

// sanitizeTitle keeps alphanumerics, spaces, dashes, and underscores, then
// replaces spaces with underscores and caps the length.
func sanitizeTitle(title string) string {
	var builder strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			builder.WriteRune(r)
		case r == ' ', r == '-', r == '_':
			builder.WriteRune(r)
		}
	}

	safe := strings.ReplaceAll(strings.TrimSpace(builder.String()), " ", "_")
	if len(safe) > 50 {
		safe = safe[:50]
	}
	return safe
}
