package akn

import "testing"

func TestEIDComposition(t *testing.T) {
	cases := []struct {
		name     string
		got      string
		expected string
	}{
		{"section", SectionEID("12"), "sec_12"},
		{"section_with_letter", SectionEID("12a"), "sec_12a"},
		{"section_dots_replaced", SectionEID("1798.100"), "sec_1798_100"},
		{"subsection", SubsectionEID("sec_1", "2"), "sec_1__subsec_2"},
		{"lettered_item", LetteredItemEID("sec_1__subsec_2", "a"), "sec_1__subsec_2__subsec_a"},
		{"list", ListEID("sec_1__subsec_2"), "sec_1__subsec_2__list_1"},
		{"item", ItemEID("sec_1__subsec_2__list_1", "3"), "sec_1__subsec_2__list_1__item_3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.expected {
				t.Errorf("got %q, want %q", tc.got, tc.expected)
			}
		})
	}
}
