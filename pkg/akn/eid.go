package akn

import "strings"

// Element identifiers (eIds) are built compositionally from ancestor
// identifiers plus a local suffix, so a node's eId is deterministic given
// the tree alone. No uniqueness check is performed: sibling nodes with
// duplicate numbers produce duplicate eIds, mirroring the source numbering.

// SectionEID returns the eId of a section, "sec_12". Dots in the section
// number are replaced with underscores to keep the eId token-safe.
func SectionEID(number string) string {
	return "sec_" + strings.ReplaceAll(number, ".", "_")
}

// SubsectionEID returns the eId of a subsection under its parent section,
// "sec_12__subsec_1".
func SubsectionEID(sectionEID, number string) string {
	return sectionEID + "__subsec_" + number
}

// LetteredItemEID returns the eId of a lettered item, rendered as a nested
// subsection under its parent subsection, "sec_12__subsec_1__subsec_a".
func LetteredItemEID(subsectionEID, letter string) string {
	return subsectionEID + "__subsec_" + letter
}

// ListEID returns the eId of the single numbered-item list container under
// a parent element. Lists are not nested, so the ordinal is always 1.
func ListEID(parentEID string) string {
	return parentEID + "__list_1"
}

// ItemEID returns the eId of a numbered item within a list container,
// "sec_12__list_1__item_3".
func ItemEID(listEID, number string) string {
	return listEID + "__item_" + number
}
