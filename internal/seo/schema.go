package seo

import (
	"encoding/json"

	"github.com/openautomate/website/internal/config"
)

const schemaContext = "https://schema.org"

type OrganizationSchema struct {
	Context      string             `json:"@context"`
	Type         string             `json:"@type"`
	Name         string             `json:"name"`
	URL          string             `json:"url"`
	Logo         string             `json:"logo"`
	Description  string             `json:"description"`
	FoundingDate string             `json:"foundingDate"`
	Industry     string             `json:"industry"`
	ContactPoint ContactPointSchema `json:"contactPoint"`
	SameAs       []string           `json:"sameAs"`
}

type ContactPointSchema struct {
	Type        string `json:"@type"`
	Telephone   string `json:"telephone"`
	ContactType string `json:"contactType"`
	Email       string `json:"email"`
}

type WebsiteSchema struct {
	Context         string             `json:"@context"`
	Type            string             `json:"@type"`
	Name            string             `json:"name"`
	URL             string             `json:"url"`
	Description     string             `json:"description"`
	Publisher       OrganizationRef    `json:"publisher"`
	PotentialAction SearchActionSchema `json:"potentialAction"`
}

type OrganizationRef struct {
	Type string `json:"@type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

type SearchActionSchema struct {
	Type       string           `json:"@type"`
	Target     EntryPointSchema `json:"target"`
	QueryInput string           `json:"query-input"`
}

type EntryPointSchema struct {
	Type        string `json:"@type"`
	URLTemplate string `json:"urlTemplate"`
}

type SoftwareApplicationSchema struct {
	Context             string          `json:"@context"`
	Type                string          `json:"@type"`
	Name                string          `json:"name"`
	Description         string          `json:"description"`
	URL                 string          `json:"url"`
	ApplicationCategory string          `json:"applicationCategory"`
	OperatingSystem     string          `json:"operatingSystem"`
	Offers              OfferSchema     `json:"offers"`
	Author              OrganizationRef `json:"author"`
	SoftwareVersion     string          `json:"softwareVersion"`
	ReleaseNotes        string          `json:"releaseNotes"`
}

type OfferSchema struct {
	Type          string `json:"@type"`
	Price         string `json:"price"`
	PriceCurrency string `json:"priceCurrency"`
	Description   string `json:"description"`
}

type BreadcrumbListSchema struct {
	Context         string           `json:"@context"`
	Type            string           `json:"@type"`
	ItemListElement []ListItemSchema `json:"itemListElement"`
}

type ListItemSchema struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item"`
}

type FAQPageSchema struct {
	Context    string           `json:"@context"`
	Type       string           `json:"@type"`
	MainEntity []QuestionSchema `json:"mainEntity"`
}

type QuestionSchema struct {
	Type           string       `json:"@type"`
	Name           string       `json:"name"`
	AcceptedAnswer AnswerSchema `json:"acceptedAnswer"`
}

type AnswerSchema struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

// FAQ is one question and answer pair.
type FAQ struct {
	Question string
	Answer   string
}

func Organization(site config.Site) OrganizationSchema {
	org := site.Organization
	sameAs := org.SameAs
	if sameAs == nil {
		sameAs = []string{}
	}

	return OrganizationSchema{
		Context:      schemaContext,
		Type:         "Organization",
		Name:         org.Name,
		URL:          org.URL,
		Logo:         site.URL + org.Logo,
		Description:  org.Description,
		FoundingDate: org.FoundingDate,
		Industry:     org.Industry,
		ContactPoint: ContactPointSchema{
			Type:        "ContactPoint",
			Telephone:   org.ContactPoint.Telephone,
			ContactType: org.ContactPoint.ContactType,
			Email:       org.ContactPoint.Email,
		},
		SameAs: sameAs,
	}
}

func Website(site config.Site) WebsiteSchema {
	return WebsiteSchema{
		Context:     schemaContext,
		Type:        "WebSite",
		Name:        site.Name,
		URL:         site.URL,
		Description: site.Description,
		Publisher: OrganizationRef{
			Type: "Organization",
			Name: site.Organization.Name,
			URL:  site.Organization.URL,
		},
		PotentialAction: SearchActionSchema{
			Type: "SearchAction",
			Target: EntryPointSchema{
				Type:        "EntryPoint",
				URLTemplate: site.URL + "/search?q={search_term_string}",
			},
			QueryInput: "required name=search_term_string",
		},
	}
}

func SoftwareApplication(site config.Site) SoftwareApplicationSchema {
	return SoftwareApplicationSchema{
		Context:             schemaContext,
		Type:                "SoftwareApplication",
		Name:                site.Name,
		Description:         site.Description,
		URL:                 site.URL,
		ApplicationCategory: "BusinessApplication",
		OperatingSystem:     "Cross-platform",
		Offers: OfferSchema{
			Type:          "Offer",
			Price:         "0",
			PriceCurrency: "USD",
			Description:   "Open source software - free to use",
		},
		Author: OrganizationRef{
			Type: "Organization",
			Name: site.Organization.Name,
			URL:  site.Organization.URL,
		},
		SoftwareVersion: "1.0",
		ReleaseNotes:    "Open source business process automation platform",
	}
}

// BreadcrumbList numbers crumbs from 1 and makes every item absolute.
func BreadcrumbList(site config.Site, crumbs []Breadcrumb) BreadcrumbListSchema {
	items := make([]ListItemSchema, 0, len(crumbs))
	for i, c := range crumbs {
		items = append(items, ListItemSchema{
			Type:     "ListItem",
			Position: i + 1,
			Name:     c.Name,
			Item:     site.URL + c.URL,
		})
	}

	return BreadcrumbListSchema{
		Context:         schemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}

func FAQPage(faqs []FAQ) FAQPageSchema {
	entities := make([]QuestionSchema, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, QuestionSchema{
			Type: "Question",
			Name: f.Question,
			AcceptedAnswer: AnswerSchema{
				Type: "Answer",
				Text: f.Answer,
			},
		})
	}

	return FAQPageSchema{
		Context:    schemaContext,
		Type:       "FAQPage",
		MainEntity: entities,
	}
}

// MarshalJSONLD encodes a schema for embedding in a script element. The
// standard encoder escapes <, > and &, which keeps the payload from closing
// the surrounding script tag.
func MarshalJSONLD(schema any) (string, error) {
	b, err := json.Marshal(schema)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
