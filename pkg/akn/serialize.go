package akn

import (
	"encoding/xml"
	"fmt"
)

// AKNNamespace is the Akoma Ntoso 3.0 XML namespace.
const AKNNamespace = "http://docs.oasis-open.org/legaldocml/ns/akn/3.0"

// --- Akoma Ntoso element structures ---
// Field order matters: encoding/xml marshals struct fields in declaration
// order, and the AKN schema fixes the child order of act, section, and
// subsection elements.

type akomaNtosoXML struct {
	XMLName   xml.Name `xml:"akomaNtoso"`
	Namespace string   `xml:"xmlns,attr"`
	Act       actXML   `xml:"act"`
}

type actXML struct {
	Name     string       `xml:"name,attr"`
	Meta     Meta         `xml:"meta"`
	Preface  *prefaceXML  `xml:"preface,omitempty"`
	Preamble *preambleXML `xml:"preamble,omitempty"`
	Body     bodyXML      `xml:"body"`
}

type prefaceXML struct {
	P prefaceParagraphXML `xml:"p"`
}

type prefaceParagraphXML struct {
	DocType string `xml:"docType"`
}

type preambleXML struct {
	Paragraphs []string `xml:"p"`
}

type bodyXML struct {
	Sections []sectionXML `xml:"section"`
}

type sectionXML struct {
	EID         string          `xml:"eId,attr"`
	Num         string          `xml:"num"`
	Heading     string          `xml:"heading,omitempty"`
	Content     *contentXML     `xml:"content,omitempty"`
	Subsections []subsectionXML `xml:"subsection"`
}

type subsectionXML struct {
	EID     string `xml:"eId,attr"`
	Num     string `xml:"num"`
	Heading string `xml:"heading,omitempty"`

	// Children holds lettered items rendered as nested subsections.
	Children []subsectionXML `xml:"subsection"`
	Content  *contentXML     `xml:"content,omitempty"`
}

type contentXML struct {
	BlockList  *blockListXML `xml:"blockList,omitempty"`
	Paragraphs []string      `xml:"p"`
}

type blockListXML struct {
	EID   string    `xml:"eId,attr"`
	Items []itemXML `xml:"item"`
}

type itemXML struct {
	EID        string   `xml:"eId,attr"`
	Num        string   `xml:"num"`
	Paragraphs []string `xml:"p"`
}

// Serialize renders a Document and its metadata as a pretty-printed Akoma
// Ntoso XML string. Config defaults are applied first; the only possible
// error is a malformed date in the config.
func Serialize(doc *Document, config Config) (string, error) {
	config, err := config.normalize()
	if err != nil {
		return "", err
	}

	root := akomaNtosoXML{
		Namespace: AKNNamespace,
		Act: actXML{
			Name: "act",
			Meta: BuildMeta(config),
		},
	}

	if config.Title != "" {
		root.Act.Preface = &prefaceXML{P: prefaceParagraphXML{DocType: config.Title}}
	}

	if len(doc.Preamble) > 0 {
		root.Act.Preamble = &preambleXML{Paragraphs: doc.Preamble}
	}

	for _, section := range doc.Sections {
		root.Act.Body.Sections = append(root.Act.Body.Sections, buildSectionXML(section))
	}

	marshaled, err := xml.MarshalIndent(root, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal document: %w", err)
	}

	return xml.Header + string(marshaled) + "\n", nil
}

// buildSectionXML renders one section: num, optional heading, free content,
// then subsections.
func buildSectionXML(section *Section) sectionXML {
	sectionEID := SectionEID(section.Number)

	rendered := sectionXML{
		EID:     sectionEID,
		Num:     fmt.Sprintf("Sec. %s.", section.Number),
		Heading: section.Heading,
		Content: buildSectionContent(sectionEID, section.Content),
	}

	for _, subsection := range section.Subsections {
		rendered.Subsections = append(rendered.Subsections, buildSubsectionXML(sectionEID, subsection))
	}

	return rendered
}

// buildSectionContent renders a section's free content block. Numbered items
// are grouped into a single blockList; plain lines follow as sibling p
// elements. Returns nil when there is nothing to render.
func buildSectionContent(sectionEID string, content []ContentItem) *contentXML {
	if len(content) == 0 {
		return nil
	}

	rendered := &contentXML{}
	listEID := ListEID(sectionEID)

	for _, entry := range content {
		switch entry := entry.(type) {
		case *NumberedItem:
			if rendered.BlockList == nil {
				rendered.BlockList = &blockListXML{EID: listEID}
			}
			rendered.BlockList.Items = append(rendered.BlockList.Items, buildItemXML(listEID, entry))
		case PlainLine:
			rendered.Paragraphs = append(rendered.Paragraphs, string(entry))
		}
	}

	return rendered
}

// buildSubsectionXML renders one subsection: num, optional heading, lettered
// items as nested subsections, then numbered items and free lines in one
// content block.
func buildSubsectionXML(sectionEID string, subsection *Subsection) subsectionXML {
	subsectionEID := SubsectionEID(sectionEID, subsection.Number)

	rendered := subsectionXML{
		EID:     subsectionEID,
		Num:     fmt.Sprintf("§ %s.", subsection.Number),
		Heading: subsection.Heading,
	}

	var numbered []*NumberedItem
	for _, item := range subsection.Items {
		switch item := item.(type) {
		case *LetteredItem:
			rendered.Children = append(rendered.Children, subsectionXML{
				EID:     LetteredItemEID(subsectionEID, item.Letter),
				Num:     fmt.Sprintf("(%s)", item.Letter),
				Content: &contentXML{Paragraphs: item.Lines},
			})
		case *NumberedItem:
			numbered = append(numbered, item)
		}
	}

	if len(numbered) > 0 || len(subsection.Content) > 0 {
		content := &contentXML{Paragraphs: subsection.Content}
		if len(numbered) > 0 {
			listEID := ListEID(subsectionEID)
			content.BlockList = &blockListXML{EID: listEID}
			for _, item := range numbered {
				content.BlockList.Items = append(content.BlockList.Items, buildItemXML(listEID, item))
			}
		}
		rendered.Content = content
	}

	return rendered
}

// buildItemXML renders one numbered item. An empty header remainder is
// dropped so items whose header carried no inline text start with their
// first continuation line.
func buildItemXML(listEID string, item *NumberedItem) itemXML {
	rendered := itemXML{
		EID: ItemEID(listEID, item.Number),
		Num: fmt.Sprintf("(%s)", item.Number),
	}
	for _, line := range item.Lines {
		if line == "" {
			continue
		}
		rendered.Paragraphs = append(rendered.Paragraphs, line)
	}
	return rendered
}
