package akn

import "regexp"

// LineKind identifies the structural role of a single text line.
type LineKind int

const (
	// LinePlainText is any line that matches no header pattern.
	LinePlainText LineKind = iota

	// LineSectionHeader is a section header, "Sec. 12. Heading" or "Section 12a. Heading".
	LineSectionHeader

	// LineSubsectionHeader is a symbol-marked subsection header, "§ 1. Heading".
	LineSubsectionHeader

	// LineLetteredItemHeader is a lettered item header, "(a) text".
	LineLetteredItemHeader

	// LineNumberedItemHeader is a numbered item header, "(1) text".
	LineNumberedItemHeader
)

// ClassifiedLine is the result of classifying one line. Which fields are
// populated depends on Kind: headers capture Number or Letter plus the
// heading/first-line remainder; plain text carries the full line in Text.
type ClassifiedLine struct {
	Kind LineKind

	// Number is the captured section, subsection, or item number.
	Number string

	// Letter is the captured lowercase letter of a lettered item header.
	Letter string

	// Heading is the remainder of a section or subsection header line.
	Heading string

	// Text is the full line for plain text, or the inline remainder of an
	// item header. May be empty for an item header with no inline text.
	Text string
}

// Classifier maps one trimmed, non-empty line to its structural role.
// Classification is purely local (no surrounding lines are consulted) and
// total: a line that matches no header pattern is plain text.
type Classifier struct {
	sectionPattern      *regexp.Regexp
	subsectionPattern   *regexp.Regexp
	letteredItemPattern *regexp.Regexp
	numberedItemPattern *regexp.Regexp
}

// NewClassifier creates a Classifier with the statute header patterns.
func NewClassifier() *Classifier {
	return &Classifier{
		sectionPattern:      regexp.MustCompile(`^(?:Sec\.|Section)\s+(\d+[A-Za-z]?)\.\s*(.*)$`),
		subsectionPattern:   regexp.MustCompile(`^§\s*(\d+[A-Za-z]?)\.\s*(.*)$`),
		letteredItemPattern: regexp.MustCompile(`^\(([a-z])\)\s*(.*)$`),
		numberedItemPattern: regexp.MustCompile(`^\((\d+)\)\s*(.*)$`),
	}
}

// Classify returns the classification of a single trimmed line. Patterns
// are tested in fixed priority order (section, subsection, lettered item,
// numbered item) with first match winning.
func (classifier *Classifier) Classify(line string) ClassifiedLine {
	if m := classifier.sectionPattern.FindStringSubmatch(line); m != nil {
		return ClassifiedLine{Kind: LineSectionHeader, Number: m[1], Heading: m[2]}
	}
	if m := classifier.subsectionPattern.FindStringSubmatch(line); m != nil {
		return ClassifiedLine{Kind: LineSubsectionHeader, Number: m[1], Heading: m[2]}
	}
	if m := classifier.letteredItemPattern.FindStringSubmatch(line); m != nil {
		return ClassifiedLine{Kind: LineLetteredItemHeader, Letter: m[1], Text: m[2]}
	}
	if m := classifier.numberedItemPattern.FindStringSubmatch(line); m != nil {
		return ClassifiedLine{Kind: LineNumberedItemHeader, Number: m[1], Text: m[2]}
	}
	return ClassifiedLine{Kind: LinePlainText, Text: line}
}
