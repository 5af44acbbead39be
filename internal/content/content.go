// Package content holds the page copy. It is embedded at build time and
// never changes while the page runs; every accessor hands out copies.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var embedded []byte

// EnterprisePlan is the plan whose call to action asks visitors to get in touch.
const EnterprisePlan = "Enterprise"

// Section sizes the layout is designed for.
const (
	FeatureCount = 3
	PlanCount    = 3
	FAQCount     = 5
)

// Link is a navigation or call-to-action anchor. CTA marks the highlighted nav entry.
type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
	CTA   bool   `yaml:"cta"`
}

// Stat is one headline figure in the hero.
type Stat struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
}

// Hero is the top-of-page pitch.
type Hero struct {
	Badge       string `yaml:"badge"`
	Title       string `yaml:"title"`
	TitleAccent string `yaml:"title_accent"`
	Lead        string `yaml:"lead"`
	Primary     Link   `yaml:"primary"`
	Secondary   Link   `yaml:"secondary"`
	Stats       []Stat `yaml:"stats"`
}

// SectionHeader is the label/title/lead block at the top of a section.
type SectionHeader struct {
	Label string `yaml:"label"`
	Title string `yaml:"title"`
	Lead  string `yaml:"lead"`
}

// Feature is one card in the features grid.
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// PricingSection is the pricing header plus the labels shared by every card.
type PricingSection struct {
	SectionHeader `yaml:",inline"`
	PopularBadge  string `yaml:"popular_badge"`
	CTAStart      string `yaml:"cta_start"`
	CTAContact    string `yaml:"cta_contact"`
}

// Plan is one pricing tier.
type Plan struct {
	Name        string   `yaml:"name"`
	Price       string   `yaml:"price"`
	Period      string   `yaml:"period"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Popular     bool     `yaml:"popular"`
}

// IsEnterprise reports whether the plan is the enterprise tier.
func (p Plan) IsEnterprise() bool {
	return p.Name == EnterprisePlan
}

// FAQ is one accordion entry.
type FAQ struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

// Field is the label and placeholder of one contact input.
type Field struct {
	Label       string `yaml:"label"`
	Placeholder string `yaml:"placeholder"`
}

// Contact is the copy of the lead-capture section.
type Contact struct {
	Title        string `yaml:"title"`
	Lead         string `yaml:"lead"`
	Name         Field  `yaml:"name"`
	Email        Field  `yaml:"email"`
	Company      Field  `yaml:"company"`
	Message      Field  `yaml:"message"`
	Submit       string `yaml:"submit"`
	Submitting   string `yaml:"submitting"`
	SuccessTitle string `yaml:"success_title"`
	SuccessBody  string `yaml:"success_body"`
	Failure      string `yaml:"failure"`
}

// Footer holds the bottom links and copyright line.
type Footer struct {
	Links     []Link `yaml:"links"`
	Copyright string `yaml:"copyright"`
}

// Page is the complete copy for the landing page.
type Page struct {
	Brand           string         `yaml:"brand"`
	Nav             []Link         `yaml:"nav"`
	MenuLabel       string         `yaml:"menu_label"`
	Hero            Hero           `yaml:"hero"`
	FeaturesSection SectionHeader  `yaml:"features_section"`
	Features        []Feature      `yaml:"features"`
	PricingSection  PricingSection `yaml:"pricing_section"`
	Plans           []Plan         `yaml:"plans"`
	FAQSection      SectionHeader  `yaml:"faq_section"`
	FAQs            []FAQ          `yaml:"faqs"`
	Contact         Contact        `yaml:"contact"`
	Footer          Footer         `yaml:"footer"`
}

var (
	defaultOnce sync.Once
	defaultPage *Page
)

// Default returns a copy of the embedded page copy. The YAML ships with the
// binary, so a parse or validation failure is a build defect and panics.
func Default() *Page {
	defaultOnce.Do(func() {
		p, err := Load(embedded)
		if err != nil {
			panic(fmt.Sprintf("content: embedded page copy: %v", err))
		}
		defaultPage = p
	})
	return defaultPage.Clone()
}

// Load parses page copy from YAML and validates it.
func Load(data []byte) (*Page, error) {
	var p Page
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode page copy: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks the invariants the page layout relies on.
func (p *Page) Validate() error {
	var errs []error
	if len(p.Features) != FeatureCount {
		errs = append(errs, fmt.Errorf("want %d features, got %d", FeatureCount, len(p.Features)))
	}
	if len(p.Plans) != PlanCount {
		errs = append(errs, fmt.Errorf("want %d plans, got %d", PlanCount, len(p.Plans)))
	}
	if len(p.FAQs) != FAQCount {
		errs = append(errs, fmt.Errorf("want %d faqs, got %d", FAQCount, len(p.FAQs)))
	}

	popular, enterprise := 0, 0
	for i, plan := range p.Plans {
		if plan.Name == "" {
			errs = append(errs, fmt.Errorf("plan %d: missing name", i))
		}
		if plan.Popular {
			popular++
		}
		if plan.IsEnterprise() {
			enterprise++
		}
	}
	if len(p.Plans) > 0 && popular != 1 {
		errs = append(errs, fmt.Errorf("want exactly one popular plan, got %d", popular))
	}
	if len(p.Plans) > 0 && enterprise != 1 {
		errs = append(errs, fmt.Errorf("want exactly one %s plan, got %d", EnterprisePlan, enterprise))
	}

	for i, f := range p.FAQs {
		if f.Question == "" || f.Answer == "" {
			errs = append(errs, fmt.Errorf("faq %d: question and answer are required", i))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid page copy: %w", err)
	}
	return nil
}

// Clone returns a deep copy of p.
func (p *Page) Clone() *Page {
	c := *p
	c.Nav = slices.Clone(p.Nav)
	c.Hero.Stats = slices.Clone(p.Hero.Stats)
	c.Features = slices.Clone(p.Features)
	c.Plans = make([]Plan, len(p.Plans))
	for i, plan := range p.Plans {
		plan.Features = slices.Clone(plan.Features)
		c.Plans[i] = plan
	}
	c.FAQs = slices.Clone(p.FAQs)
	c.Footer.Links = slices.Clone(p.Footer.Links)
	return &c
}
