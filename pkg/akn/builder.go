package akn

import "strings"

// builderMode tracks whether the builder is still collecting preamble lines.
type builderMode int

const (
	modePreamble builderMode = iota
	modeInBody
)

// StructureBuilder consumes classified lines in input order and incrementally
// builds a Document tree. The current section and subsection are tracked as
// indices into the document so the tree stays single-rooted and acyclic.
//
// The builder never fails: a header that cannot attach at its own level
// (a subsection outside any section, a lettered item outside any subsection)
// is demoted to plain content, and every plain line has a defined home.
type StructureBuilder struct {
	classifier *Classifier
	doc        *Document
	mode       builderMode

	// currentSection indexes doc.Sections; -1 when no section is open.
	currentSection int

	// currentSubsection indexes the current section's Subsections; -1 when
	// no subsection is open.
	currentSubsection int
}

// NewStructureBuilder creates a builder with an empty document.
func NewStructureBuilder() *StructureBuilder {
	return &StructureBuilder{
		classifier:        NewClassifier(),
		doc:               &Document{},
		mode:              modePreamble,
		currentSection:    -1,
		currentSubsection: -1,
	}
}

// ParseText splits the text into lines, discards blanks, and builds the
// document tree. Lines are trimmed before classification. Carriage returns
// are tolerated for callers that skip pdftext normalization.
func ParseText(text string) *Document {
	builder := NewStructureBuilder()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		builder.Feed(line)
	}
	return builder.Document()
}

// Document returns the tree built so far.
func (builder *StructureBuilder) Document() *Document {
	return builder.doc
}

// Feed processes one trimmed, non-empty line.
func (builder *StructureBuilder) Feed(line string) {
	classified := builder.classifier.Classify(line)

	switch classified.Kind {
	case LineSectionHeader:
		builder.mode = modeInBody
		builder.doc.Sections = append(builder.doc.Sections, &Section{
			Number:  classified.Number,
			Heading: classified.Heading,
		})
		builder.currentSection = len(builder.doc.Sections) - 1
		builder.currentSubsection = -1

	case LineSubsectionHeader:
		section := builder.openSection()
		if section == nil {
			// A subsection header cannot exist outside a section.
			builder.attachPlain(line)
			return
		}
		section.Subsections = append(section.Subsections, &Subsection{
			Number:  classified.Number,
			Heading: classified.Heading,
		})
		builder.currentSubsection = len(section.Subsections) - 1

	case LineLetteredItemHeader:
		subsection := builder.openSubsection()
		if subsection == nil {
			builder.attachPlain(line)
			return
		}
		subsection.Items = append(subsection.Items, &LetteredItem{
			Letter: classified.Letter,
			Lines:  []string{classified.Text},
		})

	case LineNumberedItemHeader:
		item := &NumberedItem{
			Number: classified.Number,
			Lines:  []string{classified.Text},
		}
		if subsection := builder.openSubsection(); subsection != nil {
			subsection.Items = append(subsection.Items, item)
		} else if section := builder.openSection(); section != nil {
			section.Content = append(section.Content, item)
		} else {
			builder.attachPlain(line)
		}

	default:
		builder.attachPlain(classified.Text)
	}
}

// attachPlain places a plain content line with the innermost currently-open
// structural unit, in fixed priority: preamble while no section has been
// seen, then the most recent item of the open subsection, the open
// subsection itself, the most recent numbered item of the open section, the
// open section, and finally the preamble as a catch-all.
func (builder *StructureBuilder) attachPlain(line string) {
	if builder.mode == modePreamble {
		builder.doc.Preamble = append(builder.doc.Preamble, line)
		return
	}

	if subsection := builder.openSubsection(); subsection != nil {
		if len(subsection.Items) > 0 {
			switch item := subsection.Items[len(subsection.Items)-1].(type) {
			case *LetteredItem:
				item.Lines = append(item.Lines, line)
			case *NumberedItem:
				item.Lines = append(item.Lines, line)
			}
			return
		}
		subsection.Content = append(subsection.Content, line)
		return
	}

	if section := builder.openSection(); section != nil {
		if len(section.Content) > 0 {
			if item, ok := section.Content[len(section.Content)-1].(*NumberedItem); ok {
				item.Lines = append(item.Lines, line)
				return
			}
		}
		section.Content = append(section.Content, PlainLine(line))
		return
	}

	builder.doc.Preamble = append(builder.doc.Preamble, line)
}

// openSection returns the currently open section, or nil.
func (builder *StructureBuilder) openSection() *Section {
	if builder.currentSection < 0 || builder.currentSection >= len(builder.doc.Sections) {
		return nil
	}
	return builder.doc.Sections[builder.currentSection]
}

// openSubsection returns the currently open subsection, or nil.
func (builder *StructureBuilder) openSubsection() *Subsection {
	section := builder.openSection()
	if section == nil {
		return nil
	}
	if builder.currentSubsection < 0 || builder.currentSubsection >= len(section.Subsections) {
		return nil
	}
	return section.Subsections[builder.currentSubsection]
}
