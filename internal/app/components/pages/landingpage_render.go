package pages

import (
	"github.com/vcrobe/dataflow/events"
	"github.com/vcrobe/dataflow/internal/app/components/shared/contact"
	"github.com/vcrobe/dataflow/internal/app/components/shared/faq"
	"github.com/vcrobe/dataflow/internal/content"
	"github.com/vcrobe/dataflow/internal/landing"
	"github.com/vcrobe/dataflow/runtime"
	"github.com/vcrobe/dataflow/vdom"
)

// Child component keys.
const (
	faqListKey     = "faq-list"
	contactFormKey = "contact-form"
)

// Render is a pure function of the page copy and the current state. The FAQ
// list and the contact form are child components; the form leaves the tree
// once a submission succeeds.
func (c *LandingPage) Render(r runtime.Renderer) *vdom.VNode {
	s := c.State()
	p := c.Content

	return vdom.Div(vdom.Attrs{"class": "landing-page"},
		c.renderHeader(p, s),
		c.renderMobileNav(p, s),
		renderHero(p.Hero),
		renderFeatures(p),
		renderPricing(p),
		c.renderFAQ(r, p, s),
		c.renderContact(r, p.Contact, s),
		renderFooter(p.Footer),
	)
}

// classIf returns base, plus " "+extra when cond holds.
func classIf(base string, cond bool, extra string) string {
	if cond {
		return base + " " + extra
	}
	return base
}

func (c *LandingPage) renderHeader(p *content.Page, s landing.State) *vdom.VNode {
	links := make([]*vdom.VNode, 0, len(p.Nav))
	for _, l := range p.Nav {
		var attrs vdom.Attrs
		if l.CTA {
			attrs = vdom.Attrs{"class": "nav-cta"}
		}
		links = append(links, vdom.Link(l.Href, l.Label, attrs))
	}

	menuIcon := "☰"
	if s.Nav.MobileMenuOpen {
		menuIcon = "✕"
	}

	return vdom.Element("header", vdom.Attrs{"class": classIf("header", s.Nav.Scrolled, "scrolled")},
		vdom.Element("nav", vdom.Attrs{"class": "nav"},
			vdom.TextElement("div", p.Brand, vdom.Attrs{"class": "logo"}),
			vdom.Div(vdom.Attrs{"class": "nav-links"}, links...),
			vdom.Button(menuIcon, vdom.Attrs{
				"class":      "mobile-menu-btn",
				"aria-label": p.MenuLabel,
				"onClick":    events.AdaptNoArgEvent(c.ToggleMenu),
			}),
		),
	)
}

func (c *LandingPage) renderMobileNav(p *content.Page, s landing.State) *vdom.VNode {
	links := make([]*vdom.VNode, 0, len(p.Nav))
	for _, l := range p.Nav {
		links = append(links, vdom.Link(l.Href, l.Label, vdom.Attrs{
			"onClick": events.AdaptNoArgEvent(c.CloseMenu),
		}))
	}
	return vdom.Div(vdom.Attrs{"class": classIf("mobile-nav", s.Nav.MobileMenuOpen, "open")}, links...)
}

func renderHero(h content.Hero) *vdom.VNode {
	stats := make([]*vdom.VNode, 0, len(h.Stats))
	for _, st := range h.Stats {
		stats = append(stats, vdom.Div(vdom.Attrs{"class": "hero-stat"},
			vdom.TextElement("h3", st.Value, nil),
			vdom.Paragraph(st.Label, nil),
		))
	}

	return vdom.Element("section", vdom.Attrs{"class": "hero"},
		vdom.Div(vdom.Attrs{"class": "hero-content"},
			vdom.Span(h.Badge, vdom.Attrs{"class": "hero-badge"}),
			vdom.Element("h1", nil,
				vdom.Text(h.Title),
				vdom.Br(),
				vdom.Span(h.TitleAccent, vdom.Attrs{"class": "gradient-text"}),
			),
			vdom.Paragraph(h.Lead, nil),
			vdom.Div(vdom.Attrs{"class": "hero-buttons"},
				vdom.Link(h.Primary.Href, h.Primary.Label, vdom.Attrs{"class": "btn-primary"}),
				vdom.Link(h.Secondary.Href, h.Secondary.Label, vdom.Attrs{"class": "btn-secondary"}),
			),
			vdom.Div(vdom.Attrs{"class": "hero-stats"}, stats...),
		),
	)
}

func renderSectionHeader(h content.SectionHeader) *vdom.VNode {
	return vdom.Div(vdom.Attrs{"class": "section-header"},
		vdom.Span(h.Label, vdom.Attrs{"class": "section-label"}),
		vdom.TextElement("h2", h.Title, nil),
		vdom.Paragraph(h.Lead, nil),
	)
}

func renderFeatures(p *content.Page) *vdom.VNode {
	cards := make([]*vdom.VNode, 0, len(p.Features))
	for _, f := range p.Features {
		cards = append(cards, vdom.Div(vdom.Attrs{"class": "feature-card"},
			vdom.TextElement("div", f.Icon, vdom.Attrs{"class": "feature-icon"}),
			vdom.TextElement("h3", f.Title, nil),
			vdom.Paragraph(f.Description, nil),
		))
	}

	return vdom.Element("section", vdom.Attrs{"id": "features", "class": "section features"},
		renderSectionHeader(p.FeaturesSection),
		vdom.Div(vdom.Attrs{"class": "features-grid"}, cards...),
	)
}

func renderPricing(p *content.Page) *vdom.VNode {
	ps := p.PricingSection
	cards := make([]*vdom.VNode, 0, len(p.Plans))
	for _, plan := range p.Plans {
		var badge *vdom.VNode
		if plan.Popular {
			badge = vdom.Span(ps.PopularBadge, vdom.Attrs{"class": "popular-badge"})
		}

		cta := ps.CTAStart
		if plan.IsEnterprise() {
			cta = ps.CTAContact
		}

		cards = append(cards, vdom.Div(vdom.Attrs{"class": classIf("pricing-card", plan.Popular, "popular")},
			badge,
			vdom.TextElement("h3", plan.Name, nil),
			vdom.Div(vdom.Attrs{"class": "price"},
				vdom.Text(plan.Price),
				vdom.Span(plan.Period, nil),
			),
			vdom.Paragraph(plan.Description, vdom.Attrs{"class": "price-desc"}),
			vdom.List(vdom.Attrs{"class": "pricing-features"}, plan.Features),
			vdom.Link("#contact", cta, vdom.Attrs{
				"class": "pricing-btn " + pricingButtonStyle(plan.Popular),
			}),
		))
	}

	return vdom.Element("section", vdom.Attrs{"id": "pricing", "class": "section pricing"},
		renderSectionHeader(ps.SectionHeader),
		vdom.Div(vdom.Attrs{"class": "pricing-grid"}, cards...),
	)
}

func pricingButtonStyle(popular bool) string {
	if popular {
		return "pricing-btn-fill"
	}
	return "pricing-btn-outline"
}

func (c *LandingPage) renderFAQ(r runtime.Renderer, p *content.Page, s landing.State) *vdom.VNode {
	return vdom.Element("section", vdom.Attrs{"id": "faq", "class": "section faq"},
		renderSectionHeader(p.FAQSection),
		r.RenderChild(faqListKey, &faq.List{
			Items:    p.FAQs,
			Open:     s.FAQ,
			OnSelect: c.SelectFaq,
		}),
	)
}

func (c *LandingPage) renderContact(r runtime.Renderer, ct content.Contact, s landing.State) *vdom.VNode {
	var body *vdom.VNode
	if s.Submission == landing.Submitted {
		body = vdom.Div(vdom.Attrs{"class": "form-success"},
			vdom.TextElement("h3", ct.SuccessTitle, nil),
			vdom.Paragraph(ct.SuccessBody, nil),
		)
	} else {
		body = r.RenderChild(contactFormKey, &contact.Form{
			Copy:        ct,
			Values:      s.Form,
			Submission:  s.Submission,
			SubmitError: s.SubmitError,
			OnInput:     c.SetField,
			OnSubmit:    c.Submit,
		})
	}

	return vdom.Element("section", vdom.Attrs{"id": "contact", "class": "cta-section"},
		vdom.Div(vdom.Attrs{"class": "cta-content"},
			vdom.TextElement("h2", ct.Title, nil),
			vdom.Paragraph(ct.Lead, nil),
			body,
		),
	)
}

func renderFooter(f content.Footer) *vdom.VNode {
	links := make([]*vdom.VNode, 0, len(f.Links))
	for _, l := range f.Links {
		links = append(links, vdom.Link(l.Href, l.Label, nil))
	}
	return vdom.Element("footer", vdom.Attrs{"class": "footer"},
		vdom.Div(vdom.Attrs{"class": "footer-links"}, links...),
		vdom.Paragraph(f.Copyright, nil),
	)
}
