// Package contact renders the lead-capture form.
package contact

import (
	"github.com/vcrobe/dataflow/events"
	"github.com/vcrobe/dataflow/internal/content"
	"github.com/vcrobe/dataflow/internal/landing"
	"github.com/vcrobe/dataflow/runtime"
	"github.com/vcrobe/dataflow/vdom"
)

// Form is the contact form shown until a submission succeeds. Field values
// and the submission status are props; edits and submits go back to the
// parent through the callbacks.
type Form struct {
	runtime.ComponentBase

	// --- PROPS ---

	Copy        content.Contact
	Values      landing.ContactForm
	Submission  landing.Submission
	SubmitError string

	OnInput  func(f landing.Field, value string)
	OnSubmit func()

	// --- DERIVED in OnParametersSet ---

	submitting  bool
	submitLabel string
	showError   bool
}

// ApplyProps copies the props of a freshly built Form into the live instance.
func (c *Form) ApplyProps(next runtime.Component) {
	n, ok := next.(*Form)
	if !ok {
		return
	}
	c.Copy = n.Copy
	c.Values = n.Values
	c.Submission = n.Submission
	c.SubmitError = n.SubmitError
	c.OnInput = n.OnInput
	c.OnSubmit = n.OnSubmit
}

// OnParametersSet derives the button state from the submission status.
func (c *Form) OnParametersSet() {
	c.submitting = c.Submission == landing.Submitting
	c.submitLabel = c.Copy.Submit
	if c.submitting {
		c.submitLabel = c.Copy.Submitting
	}
	c.showError = c.SubmitError != ""
}

func (c *Form) Render(r runtime.Renderer) *vdom.VNode {
	onSubmit := c.OnSubmit

	var failure *vdom.VNode
	if c.showError {
		failure = vdom.Paragraph(c.Copy.Failure, vdom.Attrs{"class": "form-error", "role": "alert"})
	}

	return vdom.Element("form", vdom.Attrs{
		"class": "contact-form",
		"onSubmit": events.AdaptFormEvent(func(events.FormEventArgs) {
			if onSubmit != nil {
				onSubmit()
			}
		}),
	},
		c.renderField(landing.FieldName, "text", c.Copy.Name),
		c.renderField(landing.FieldEmail, "email", c.Copy.Email),
		c.renderField(landing.FieldCompany, "text", c.Copy.Company),
		c.renderField(landing.FieldMessage, "", c.Copy.Message),
		vdom.Button(c.submitLabel, vdom.Attrs{
			"type":     "submit",
			"class":    "form-submit",
			"disabled": c.submitting,
		}),
		failure,
	)
}

// renderField renders one labelled control. An empty inputType means a textarea.
func (c *Form) renderField(f landing.Field, inputType string, fc content.Field) *vdom.VNode {
	onInput := c.OnInput
	attrs := vdom.Attrs{
		"id":          string(f),
		"name":        string(f),
		"placeholder": fc.Placeholder,
		"onInput": events.AdaptChangeEvent(func(e events.ChangeEventArgs) {
			if onInput != nil {
				onInput(f, e.Value)
			}
		}),
	}
	if f.Required() {
		attrs["required"] = true
	}

	var control *vdom.VNode
	if inputType == "" {
		attrs["rows"] = 4
		control = vdom.Textarea(c.Values.Get(f), attrs)
	} else {
		control = vdom.Input(inputType, c.Values.Get(f), attrs)
	}

	return vdom.Div(vdom.Attrs{"class": "form-group"},
		vdom.TextElement("label", fc.Label, vdom.Attrs{"for": string(f)}),
		control,
	)
}
