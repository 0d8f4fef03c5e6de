package akn

import (
	"fmt"
	"time"
)

// isoDateLayout is the date layout used throughout AKN metadata.
const isoDateLayout = "2006-01-02"

// DefaultJurisdiction is used when a Config carries no jurisdiction code.
const DefaultJurisdiction = "us"

// Config carries the bibliographic inputs for a conversion.
type Config struct {
	// Jurisdiction is the ISO country code, e.g. "us". Defaults to "us".
	Jurisdiction string

	// State is an optional state code, e.g. "vt" for Vermont.
	State string

	// EnactmentDate is the enactment date in YYYY-MM-DD form.
	// Defaults to the processing date.
	EnactmentDate string

	// Title is the act's display title. When empty, no preface is emitted.
	Title string

	// ActNumber identifies the act in FRBR URIs. Defaults to "statute".
	ActNumber string

	// ProcessingDate is the conversion date in YYYY-MM-DD form, recorded on
	// the FRBRManifestation block. Defaults to today; fix it for
	// byte-reproducible output.
	ProcessingDate string
}

// normalize applies defaults and validates the date fields.
func (config Config) normalize() (Config, error) {
	if config.Jurisdiction == "" {
		config.Jurisdiction = DefaultJurisdiction
	}
	if config.ProcessingDate == "" {
		config.ProcessingDate = time.Now().Format(isoDateLayout)
	} else if _, err := time.Parse(isoDateLayout, config.ProcessingDate); err != nil {
		return config, fmt.Errorf("invalid processing date %q: %w", config.ProcessingDate, err)
	}
	if config.EnactmentDate == "" {
		config.EnactmentDate = config.ProcessingDate
	} else if _, err := time.Parse(isoDateLayout, config.EnactmentDate); err != nil {
		return config, fmt.Errorf("invalid enactment date %q: %w", config.EnactmentDate, err)
	}
	return config, nil
}

// WorkURI returns the canonical FRBR work URI stem,
// "/akn/us-vt/act/2024/act_042" or "/akn/us/act/2024/statute".
func (config Config) WorkURI() string {
	uri := "/akn/" + config.Jurisdiction
	if config.State != "" {
		uri += "-" + config.State
	}
	actNumber := config.ActNumber
	if actNumber == "" {
		actNumber = "statute"
	}
	return uri + "/act/" + config.EnactmentDate[:4] + "/" + actNumber
}

// Meta is the <meta> block of an Akoma Ntoso act: FRBR identification,
// publication record, and ontology references.
type Meta struct {
	Identification Identification `xml:"identification"`
	Publication    Publication    `xml:"publication"`
	References     References     `xml:"references"`
}

// Identification holds the three FRBR triples.
type Identification struct {
	Source        string            `xml:"source,attr"`
	Work          FRBRWork          `xml:"FRBRWork"`
	Expression    FRBRExpression    `xml:"FRBRExpression"`
	Manifestation FRBRManifestation `xml:"FRBRManifestation"`
}

// FRBRWork identifies the abstract intellectual creation.
type FRBRWork struct {
	This    ValueElem `xml:"FRBRthis"`
	URI     ValueElem `xml:"FRBRuri"`
	Date    DateElem  `xml:"FRBRdate"`
	Author  HrefElem  `xml:"FRBRauthor"`
	Country ValueElem `xml:"FRBRcountry"`
}

// FRBRExpression identifies a specific textual version of the work.
type FRBRExpression struct {
	This     ValueElem    `xml:"FRBRthis"`
	URI      ValueElem    `xml:"FRBRuri"`
	Date     DateElem     `xml:"FRBRdate"`
	Author   HrefElem     `xml:"FRBRauthor"`
	Language LanguageElem `xml:"FRBRlanguage"`
}

// FRBRManifestation identifies the XML embodiment of the expression.
type FRBRManifestation struct {
	This   ValueElem `xml:"FRBRthis"`
	URI    ValueElem `xml:"FRBRuri"`
	Date   DateElem  `xml:"FRBRdate"`
	Author HrefElem  `xml:"FRBRauthor"`
}

// Publication records the act's publication event.
type Publication struct {
	Date   string `xml:"date,attr"`
	Name   string `xml:"name,attr"`
	ShowAs string `xml:"showAs,attr"`
}

// References lists the named parties referenced from the FRBR blocks.
type References struct {
	Source        string         `xml:"source,attr"`
	Organizations []TLCReference `xml:"TLCOrganization"`
	Persons       []TLCReference `xml:"TLCPerson"`
}

// TLCReference is a top-level-class ontology reference entry.
type TLCReference struct {
	EID    string `xml:"eId,attr"`
	Href   string `xml:"href,attr"`
	ShowAs string `xml:"showAs,attr"`
}

// ValueElem is an empty element carrying a value attribute.
type ValueElem struct {
	Value string `xml:"value,attr"`
}

// DateElem is an empty element carrying a date and its named role.
type DateElem struct {
	Date string `xml:"date,attr"`
	Name string `xml:"name,attr"`
}

// HrefElem is an empty element carrying an href attribute.
type HrefElem struct {
	Href string `xml:"href,attr"`
}

// LanguageElem is an empty element carrying a language attribute.
type LanguageElem struct {
	Language string `xml:"language,attr"`
}

// BuildMeta assembles the full <meta> block from a normalized Config.
// For a fixed Config (including ProcessingDate) the result is identical
// across calls.
func BuildMeta(config Config) Meta {
	workURI := config.WorkURI()
	expressionURI := workURI + "/eng@" + config.EnactmentDate

	legislatureHref := "/akn/" + config.Jurisdiction
	if config.State != "" {
		legislatureHref += "-" + config.State
	}
	legislatureHref += "/legislature"

	return Meta{
		Identification: Identification{
			Source: "#source",
			Work: FRBRWork{
				This:    ValueElem{Value: workURI + "/!main"},
				URI:     ValueElem{Value: workURI},
				Date:    DateElem{Date: config.EnactmentDate, Name: "Generation"},
				Author:  HrefElem{Href: "#legislature"},
				Country: ValueElem{Value: config.Jurisdiction},
			},
			Expression: FRBRExpression{
				This:     ValueElem{Value: expressionURI + "/!main"},
				URI:      ValueElem{Value: expressionURI},
				Date:     DateElem{Date: config.EnactmentDate, Name: "Expression"},
				Author:   HrefElem{Href: "#legislature"},
				Language: LanguageElem{Language: "eng"},
			},
			Manifestation: FRBRManifestation{
				This:   ValueElem{Value: expressionURI + "/!main.xml"},
				URI:    ValueElem{Value: expressionURI + ".xml"},
				Date:   DateElem{Date: config.ProcessingDate, Name: "XMLConversion"},
				Author: HrefElem{Href: "#converter"},
			},
		},
		Publication: Publication{
			Date:   config.EnactmentDate,
			Name:   "enacted",
			ShowAs: "Enacted",
		},
		References: References{
			Source: "#source",
			Organizations: []TLCReference{
				{EID: "legislature", Href: legislatureHref, ShowAs: "Legislature"},
				{EID: "source", Href: "#", ShowAs: "Original Source"},
			},
			Persons: []TLCReference{
				{EID: "converter", Href: "#", ShowAs: "Document Converter"},
			},
		},
	}
}
