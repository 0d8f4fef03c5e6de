// Package akn converts plain-text legislative documents (statutes, bills,
// acts) into Akoma Ntoso 3.0 XML with FRBR identification metadata.
//
// The conversion is a pure transform: text and configuration in, XML string
// out. Parsing never fails; text that does not match the expected
// section/subsection/item grammar degrades to flat paragraph content.
package akn

// Document is the parsed representation of a legislative text. It is built
// in one pass over the input lines and is read-only afterwards.
type Document struct {
	// Preamble holds plain lines that appear before the first section header.
	Preamble []string

	// Sections holds the document's sections in input order.
	Sections []*Section
}

// Section is a numbered section ("Sec. 12." or "Section 12a.").
type Section struct {
	// Number is the alphanumeric section number, e.g. "12" or "12a".
	Number string

	// Heading is the remainder of the header line after the number. May be empty.
	Heading string

	// Content holds free content belonging directly to the section:
	// plain lines and numbered items, in input order.
	Content []ContentItem

	// Subsections holds the section's subsections in input order.
	Subsections []*Subsection
}

// Subsection is a symbol-marked subsection ("§ 1.") within a section.
type Subsection struct {
	// Number is the subsection number following the section symbol.
	Number string

	// Heading is the remainder of the header line after the number. May be empty.
	Heading string

	// Content holds free plain lines belonging directly to the subsection.
	Content []string

	// Items holds lettered and numbered items in input order.
	Items []Item
}

// Item is a lettered or numbered item within a subsection.
// The two concrete types are *LetteredItem and *NumberedItem.
type Item interface {
	isItem()
}

// ContentItem is an entry in a Section's free content: either a PlainLine
// or a *NumberedItem. Numbered items may appear directly under a section
// without an enclosing subsection.
type ContentItem interface {
	isContentItem()
}

// LetteredItem is an item marked with a single lowercase letter, "(a)".
type LetteredItem struct {
	// Letter is the single lowercase marker letter.
	Letter string

	// Lines holds the item's text lines: the header's inline remainder
	// followed by any continuation lines.
	Lines []string
}

func (*LetteredItem) isItem() {}

// NumberedItem is an item marked with digits, "(1)". Lines is never empty:
// the header line always seeds the first entry, possibly with an empty
// string when the header carries no inline text.
type NumberedItem struct {
	// Number is the item's digit string.
	Number string

	// Lines holds the item's text lines in input order.
	Lines []string
}

func (*NumberedItem) isItem()        {}
func (*NumberedItem) isContentItem() {}

// PlainLine is a free-form content line under a section.
type PlainLine string

func (PlainLine) isContentItem() {}
