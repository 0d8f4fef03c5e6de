// Package scrape downloads statute, bill, and act PDFs from a legislature
// website: it fetches index pages, discovers PDF links with their metadata,
// and stages the documents on disk for conversion.
package scrape

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// DocumentKind identifies the kind of legislative document being scraped.
type DocumentKind string

const (
	KindStatute DocumentKind = "statute"
	KindBill    DocumentKind = "bill"
	KindAct     DocumentKind = "act"
)

// DirName returns the plural subdirectory name documents of this kind are
// downloaded into.
func (kind DocumentKind) DirName() string {
	switch kind {
	case KindStatute:
		return "statutes"
	case KindBill:
		return "bills"
	case KindAct:
		return "acts"
	default:
		return string(kind)
	}
}

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "aknconv-scraper/1.0 (educational/research purpose)"

// Config holds scraper settings. The zero value is not usable; start from
// DefaultConfig or load a YAML file with LoadConfig.
type Config struct {
	// BaseURLs maps a document kind to its index page URL.
	BaseURLs map[DocumentKind]string

	// DownloadDirectory is the root directory PDFs are staged under, with a
	// per-kind subdirectory.
	DownloadDirectory string

	// RequestTimeout bounds each HTTP request.
	RequestTimeout time.Duration

	// MaxRetries is the number of attempts per request.
	MaxRetries int

	// RetryDelay is the pause between attempts.
	RetryDelay time.Duration

	// PageCacheTTL is how long fetched index pages are reused.
	PageCacheTTL time.Duration

	// UserAgent is the User-Agent header sent with requests.
	UserAgent string
}

// configFile is the YAML shape of a config file. Durations are strings in
// time.ParseDuration form ("30s", "2m"). Absent fields keep their defaults.
type configFile struct {
	BaseURLs          map[DocumentKind]string `yaml:"base_urls"`
	DownloadDirectory string                  `yaml:"download_directory"`
	RequestTimeout    string                  `yaml:"request_timeout"`
	MaxRetries        *int                    `yaml:"max_retries"`
	RetryDelay        string                  `yaml:"retry_delay"`
	PageCacheTTL      string                  `yaml:"page_cache_ttl"`
	UserAgent         string                  `yaml:"user_agent"`
}

// DefaultConfig returns a Config pointed at the Vermont legislature site.
func DefaultConfig() Config {
	return Config{
		BaseURLs: map[DocumentKind]string{
			KindStatute: "https://legislature.vermont.gov/statutes/",
			KindBill:    "https://legislature.vermont.gov/bills/",
			KindAct:     "https://legislature.vermont.gov/acts/",
		},
		DownloadDirectory: "data/pdfs",
		RequestTimeout:    30 * time.Second,
		MaxRetries:        3,
		RetryDelay:        2 * time.Second,
		PageCacheTTL:      1 * time.Hour,
		UserAgent:         DefaultUserAgent,
	}
}

// LoadConfig reads a YAML config file and overlays it on the defaults, so a
// file may set only the fields it cares about.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	var file configFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	for kind, baseURL := range file.BaseURLs {
		config.BaseURLs[kind] = baseURL
	}
	if file.DownloadDirectory != "" {
		config.DownloadDirectory = file.DownloadDirectory
	}
	if file.MaxRetries != nil {
		config.MaxRetries = *file.MaxRetries
	}
	if file.UserAgent != "" {
		config.UserAgent = file.UserAgent
	}

	durations := []struct {
		value  string
		field  string
		target *time.Duration
	}{
		{file.RequestTimeout, "request_timeout", &config.RequestTimeout},
		{file.RetryDelay, "retry_delay", &config.RetryDelay},
		{file.PageCacheTTL, "page_cache_ttl", &config.PageCacheTTL},
	}
	for _, entry := range durations {
		if entry.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(entry.value)
		if err != nil {
			return config, fmt.Errorf("invalid %s %q in %s: %w", entry.field, entry.value, path, err)
		}
		*entry.target = parsed
	}

	return config, nil
}
