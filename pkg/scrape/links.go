package scrape

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// PDFLink is a discovered PDF document link and the metadata extracted from
// its anchor text and URL.
type PDFLink struct {
	// URL is the absolute PDF URL.
	URL string

	// Title is the anchor text of the link.
	Title string

	// Kind is the document kind the link was discovered for.
	Kind DocumentKind

	// BillNumber is the bill identifier ("H.123", "S.456") when detected.
	BillNumber string

	// ActNumber is the act identifier ("Act No. 78") when detected.
	ActNumber string

	// Year is the four-digit year found in the URL, if any.
	Year string

	// StatuteTitle is the statute title text when the anchor names one.
	StatuteTitle string
}

var (
	billNumberPattern = regexp.MustCompile(`(?i)[HS]\.?\s*\d+`)
	actNumberPattern  = regexp.MustCompile(`(?i)Act\s*No\.\s*\d+`)
	yearPattern       = regexp.MustCompile(`20\d{2}`)
)

// DiscoverPDFLinks parses an index page and collects every anchor that
// points at a PDF, resolving relative URLs against baseURL and annotating
// each link with kind-specific metadata.
func DiscoverPDFLinks(baseURL string, page []byte, kind DocumentKind) ([]PDFLink, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %s: %w", baseURL, err)
	}

	root, err := html.Parse(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", baseURL, err)
	}

	var links []PDFLink
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		if node.Type == html.ElementNode && node.Data == "a" {
			if href, ok := anchorHref(node); ok && looksLikePDF(href) {
				resolved, err := base.Parse(href)
				if err == nil {
					links = append(links, annotateLink(PDFLink{
						URL:   resolved.String(),
						Title: anchorText(node),
						Kind:  kind,
					}))
				}
			}
		}
		for child := node.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)

	return links, nil
}

// looksLikePDF reports whether a href plausibly points at a PDF document.
func looksLikePDF(href string) bool {
	lowered := strings.ToLower(href)
	return strings.HasSuffix(lowered, ".pdf") || strings.Contains(lowered, "/pdf/")
}

// annotateLink fills in kind-specific metadata from the link's title and URL.
func annotateLink(link PDFLink) PDFLink {
	switch link.Kind {
	case KindBill:
		if m := billNumberPattern.FindString(link.Title); m != "" {
			link.BillNumber = m
		}
	case KindAct:
		if m := actNumberPattern.FindString(link.Title); m != "" {
			link.ActNumber = m
		}
	case KindStatute:
		if strings.Contains(strings.ToLower(link.Title), "title") {
			link.StatuteTitle = link.Title
		}
	}

	if m := yearPattern.FindString(link.URL); m != "" {
		link.Year = m
	}
	return link
}

func anchorHref(node *html.Node) (string, bool) {
	for _, attr := range node.Attr {
		if attr.Key == "href" && attr.Val != "" {
			return attr.Val, true
		}
	}
	return "", false
}

func anchorText(node *html.Node) string {
	var builder strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(node)
	return strings.TrimSpace(builder.String())
}
