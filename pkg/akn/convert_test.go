package akn

import (
	"strings"
	"testing"
)

// fixedConfig keeps the manifestation date stable so test output is
// reproducible byte for byte.
var fixedConfig = Config{
	Jurisdiction:   "us",
	State:          "vt",
	EnactmentDate:  "2024-03-15",
	ActNumber:      "act_042",
	ProcessingDate: "2025-01-02",
}

func TestConvertSectionElements(t *testing.T) {
	text := "Sec. 1. First.\nSec. 2. Second.\nSec. 12a. Twelfth-a.\n"

	output, err := Convert(text, fixedConfig)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if count := strings.Count(output, "<section "); count != 3 {
		t.Errorf("section elements: got %d, want 3", count)
	}
	for _, expected := range []string{
		`<section eId="sec_1">`,
		`<section eId="sec_2">`,
		`<section eId="sec_12a">`,
		"<num>Sec. 12a.</num>",
		"<heading>Twelfth-a.</heading>",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("output missing %q", expected)
		}
	}
}

func TestConvertDemotedLetteredItems(t *testing.T) {
	// No § line opens a subsection, so the lettered markers are demoted to
	// plain content paragraphs under the section.
	text := "Sec. 1. Definitions.\n(a) First term.\n(b) Second term."

	output, err := Convert(text, fixedConfig)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if !strings.Contains(output, `<section eId="sec_1">`) {
		t.Error("output missing section sec_1")
	}
	if !strings.Contains(output, "<heading>Definitions.</heading>") {
		t.Error("output missing section heading")
	}
	if strings.Contains(output, "<subsection") {
		t.Error("output has a subsection element, want none")
	}
	if !strings.Contains(output, "<p>(a) First term.</p>") ||
		!strings.Contains(output, "<p>(b) Second term.</p>") {
		t.Error("demoted lettered items not rendered as plain paragraphs")
	}
}

func TestConvertNestedStructure(t *testing.T) {
	text := "Sec. 1. Title.\n" +
		"§ 1. Purpose.\n" +
		"(a) Clause one.\n" +
		"continued text.\n" +
		"(1) Item one."

	output, err := Convert(text, fixedConfig)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	for _, expected := range []string{
		`<subsection eId="sec_1__subsec_1">`,
		"<num>§ 1.</num>",
		`<subsection eId="sec_1__subsec_1__subsec_a">`,
		"<num>(a)</num>",
		"<p>Clause one.</p>",
		"<p>continued text.</p>",
		`<blockList eId="sec_1__subsec_1__list_1">`,
		`<item eId="sec_1__subsec_1__list_1__item_1">`,
		"<num>(1)</num>",
		"<p>Item one.</p>",
	} {
		if !strings.Contains(output, expected) {
			t.Errorf("output missing %q", expected)
		}
	}

	// The lettered subsection holds exactly the two accumulated lines.
	lettered := extractElement(t, output, `<subsection eId="sec_1__subsec_1__subsec_a">`, "</subsection>")
	if count := strings.Count(lettered, "<p>"); count != 2 {
		t.Errorf("lettered item paragraphs: got %d, want 2", count)
	}
}

func TestConvertItemContinuationLines(t *testing.T) {
	text := "Sec. 1. Lists.\n" +
		"§ 1. Things.\n" +
		"(1)\n" +
		"first continuation\n" +
		"second continuation\n"

	output, err := Convert(text, fixedConfig)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	item := extractElement(t, output, `<item eId="sec_1__subsec_1__list_1__item_1">`, "</item>")
	// The empty header remainder is dropped; continuation lines remain in order.
	if count := strings.Count(item, "<p>"); count != 2 {
		t.Errorf("item paragraphs: got %d, want 2", count)
	}
	firstIndex := strings.Index(item, "<p>first continuation</p>")
	secondIndex := strings.Index(item, "<p>second continuation</p>")
	if firstIndex == -1 || secondIndex == -1 || secondIndex < firstIndex {
		t.Errorf("item paragraph order wrong:\n%s", item)
	}
}

func TestConvertPreambleAndPreface(t *testing.T) {
	text := "It is hereby enacted.\nSec. 1. Short title.\n"

	config := fixedConfig
	config.Title = "Example Act"

	output, err := Convert(text, config)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if !strings.Contains(output, "<docType>Example Act</docType>") {
		t.Error("output missing preface docType")
	}

	preamble := extractElement(t, output, "<preamble>", "</preamble>")
	if !strings.Contains(preamble, "<p>It is hereby enacted.</p>") {
		t.Errorf("preamble missing line:\n%s", preamble)
	}

	body := extractElement(t, output, "<body>", "</body>")
	if strings.Contains(body, "It is hereby enacted.") {
		t.Error("preamble line leaked into body")
	}
}

func TestConvertEmptyInput(t *testing.T) {
	for _, input := range []string{"", "  \n\t\n"} {
		output, err := Convert(input, fixedConfig)
		if err != nil {
			t.Fatalf("Convert(%q) failed: %v", input, err)
		}
		if !strings.Contains(output, "<body></body>") {
			t.Errorf("Convert(%q): body not empty:\n%s", input, output)
		}
		if strings.Contains(output, "<preamble>") {
			t.Errorf("Convert(%q): unexpected preamble element", input)
		}
		if !strings.HasPrefix(output, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>") {
			t.Errorf("Convert(%q): missing XML declaration", input)
		}
	}
}

func TestConvertMetaIdempotent(t *testing.T) {
	text := "Sec. 1. Stability.\n"

	first, err := Convert(text, fixedConfig)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	second, err := Convert(text, fixedConfig)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}

	if first != second {
		t.Error("two conversions with identical input and config differ")
	}

	meta := extractElement(t, first, "<meta>", "</meta>")
	for _, expected := range []string{
		`<FRBRuri value="/akn/us-vt/act/2024/act_042"></FRBRuri>`,
		`<FRBRdate date="2024-03-15" name="Generation"></FRBRdate>`,
		`<FRBRlanguage language="eng"></FRBRlanguage>`,
		`<FRBRdate date="2025-01-02" name="XMLConversion"></FRBRdate>`,
		`<publication date="2024-03-15" name="enacted" showAs="Enacted"></publication>`,
		`<TLCOrganization eId="legislature" href="/akn/us-vt/legislature" showAs="Legislature"></TLCOrganization>`,
		`<TLCPerson eId="converter" href="#" showAs="Document Converter"></TLCPerson>`,
	} {
		if !strings.Contains(meta, expected) {
			t.Errorf("meta missing %q", expected)
		}
	}
}

func TestConvertRejectsInvalidDates(t *testing.T) {
	if _, err := Convert("Sec. 1. X.", Config{EnactmentDate: "not-a-date"}); err == nil {
		t.Error("expected error for invalid enactment date")
	}
}

func TestConvertEscapesXMLSpecials(t *testing.T) {
	text := "Sec. 1. Limits.\namounts < $5 & > $1.\n"

	output, err := Convert(text, fixedConfig)
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if !strings.Contains(output, "amounts &lt; $5 &amp; &gt; $1.") {
		t.Errorf("special characters not escaped:\n%s", output)
	}
}

// extractElement returns the slice of output between the first occurrence of
// start and the next occurrence of end after it.
func extractElement(t *testing.T, output, start, end string) string {
	t.Helper()
	startIndex := strings.Index(output, start)
	if startIndex == -1 {
		t.Fatalf("output missing %q:\n%s", start, output)
	}
	rest := output[startIndex:]
	endIndex := strings.Index(rest, end)
	if endIndex == -1 {
		t.Fatalf("output missing closing %q", end)
	}
	return rest[:endIndex+len(end)]
}
