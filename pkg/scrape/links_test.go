package scrape

import "testing"

func TestDiscoverPDFLinks(t *testing.T) {
	page := []byte(`<html><body>
		<a href="/Documents/acts/ACT078.pdf">Act No. 78 (H.123) of 2024</a>
		<a href="https://legislature.example.gov/bills/2024/H-0123.pdf">H.123 as passed</a>
		<a href="/statutes/title01.pdf">Title 1: General Provisions</a>
		<a href="/statutes/index.html">Browse statutes</a>
		<a href="/pdf/session-law">Session law</a>
	</body></html>`)

	links, err := DiscoverPDFLinks("https://legislature.example.gov/acts/", page, KindAct)
	if err != nil {
		t.Fatalf("DiscoverPDFLinks failed: %v", err)
	}

	// The .html link is skipped; the /pdf/ path is kept.
	if len(links) != 4 {
		t.Fatalf("links: got %d, want 4", len(links))
	}

	first := links[0]
	if first.URL != "https://legislature.example.gov/Documents/acts/ACT078.pdf" {
		t.Errorf("relative URL not resolved: got %q", first.URL)
	}
	if first.ActNumber != "Act No. 78" {
		t.Errorf("act number: got %q", first.ActNumber)
	}

	if links[1].URL != "https://legislature.example.gov/bills/2024/H-0123.pdf" {
		t.Errorf("absolute URL mangled: got %q", links[1].URL)
	}
	if links[1].Year != "2024" {
		t.Errorf("year from URL: got %q", links[1].Year)
	}
}

func TestDiscoverPDFLinksKindMetadata(t *testing.T) {
	page := []byte(`<html><body>
		<a href="/a.pdf">H. 456 An act relating to water quality</a>
		<a href="/b.pdf">Title 10: Conservation</a>
	</body></html>`)

	cases := []struct {
		name  string
		kind  DocumentKind
		check func(t *testing.T, links []PDFLink)
	}{
		{
			name: "bill_number",
			kind: KindBill,
			check: func(t *testing.T, links []PDFLink) {
				if links[0].BillNumber != "H. 456" {
					t.Errorf("bill number: got %q", links[0].BillNumber)
				}
				if links[0].ActNumber != "" {
					t.Errorf("unexpected act number %q on bill link", links[0].ActNumber)
				}
			},
		},
		{
			name: "statute_title",
			kind: KindStatute,
			check: func(t *testing.T, links []PDFLink) {
				if links[1].StatuteTitle != "Title 10: Conservation" {
					t.Errorf("statute title: got %q", links[1].StatuteTitle)
				}
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			links, err := DiscoverPDFLinks("https://example.gov/", page, tc.kind)
			if err != nil {
				t.Fatalf("DiscoverPDFLinks failed: %v", err)
			}
			if len(links) != 2 {
				t.Fatalf("links: got %d, want 2", len(links))
			}
			tc.check(t, links)
		})
	}
}

func TestDiscoverPDFLinksNestedAnchorText(t *testing.T) {
	page := []byte(`<a href="/x.pdf"><span>Act No. 9</span> <em>of 2023</em></a>`)

	links, err := DiscoverPDFLinks("https://example.gov/", page, KindAct)
	if err != nil {
		t.Fatalf("DiscoverPDFLinks failed: %v", err)
	}
	if len(links) != 1 {
		t.Fatalf("links: got %d, want 1", len(links))
	}
	if links[0].Title != "Act No. 9 of 2023" {
		t.Errorf("anchor text: got %q", links[0].Title)
	}
}

func TestDiscoverPDFLinksEmptyPage(t *testing.T) {
	links, err := DiscoverPDFLinks("https://example.gov/", []byte(""), KindStatute)
	if err != nil {
		t.Fatalf("DiscoverPDFLinks failed: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("links: got %d, want 0", len(links))
	}
}
