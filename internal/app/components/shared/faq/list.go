package faq

import (
	"github.com/vcrobe/dataflow/events"
	"github.com/vcrobe/dataflow/internal/content"
	"github.com/vcrobe/dataflow/internal/landing"
	"github.com/vcrobe/dataflow/runtime"
	"github.com/vcrobe/dataflow/vdom"
)

// List is the exclusive-open FAQ accordion. It holds no state of its own:
// the parent owns which entry is open and is told about selections.
type List struct {
	runtime.ComponentBase

	// --- PROPS ---

	Items []content.FAQ

	Open landing.FaqState

	// OnSelect is called with the index of the clicked question.
	OnSelect func(i int)
}

// ApplyProps copies the props of a freshly built List into the live instance.
func (c *List) ApplyProps(next runtime.Component) {
	n, ok := next.(*List)
	if !ok {
		return
	}
	c.Items = n.Items
	c.Open = n.Open
	c.OnSelect = n.OnSelect
}

func (c *List) Render(r runtime.Renderer) *vdom.VNode {
	// Handlers keep the callback of this render, not whatever the next
	// ApplyProps installs.
	onSelect := c.OnSelect

	items := make([]*vdom.VNode, 0, len(c.Items))
	for i, f := range c.Items {
		class := "faq-item"
		if c.Open.IsOpen(i) {
			class += " open"
		}
		items = append(items, vdom.Div(vdom.Attrs{"class": class},
			vdom.Button("", vdom.Attrs{
				"class": "faq-question",
				"onClick": events.AdaptNoArgEvent(func() {
					if onSelect != nil {
						onSelect(i)
					}
				}),
			},
				vdom.Text(f.Question),
				vdom.Span("+", vdom.Attrs{"class": "faq-icon"}),
			),
			vdom.Div(vdom.Attrs{"class": "faq-answer"},
				vdom.Paragraph(f.Answer, nil),
			),
		))
	}

	return vdom.Div(vdom.Attrs{"class": "faq-list"}, items...)
}
