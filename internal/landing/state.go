// Package landing holds the landing page's view state and the pure
// transitions that move it from one state to the next.
package landing

// ScrollThreshold is the vertical offset past which the header is drawn in
// its scrolled style.
const ScrollThreshold = 10

// NoneOpen is the FAQ index meaning every entry is collapsed.
const NoneOpen = -1

// Submission is the contact form's lifecycle.
type Submission int

const (
	Idle Submission = iota
	Submitting
	Submitted
)

func (s Submission) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Submitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// NavState is the header style and the mobile menu flag.
type NavState struct {
	Scrolled       bool
	MobileMenuOpen bool
}

// FaqState tracks the single expanded FAQ entry, or NoneOpen.
type FaqState struct {
	Open int
}

// IsOpen reports whether entry i is expanded.
func (f FaqState) IsOpen(i int) bool {
	return f.Open != NoneOpen && f.Open == i
}

// Field names a contact form input.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldCompany Field = "company"
	FieldMessage Field = "message"
)

// Fields lists the contact form inputs in display order.
var Fields = []Field{FieldName, FieldEmail, FieldCompany, FieldMessage}

// Required reports whether the browser must see a value before submitting.
func (f Field) Required() bool {
	return f == FieldName || f == FieldEmail
}

// ContactForm holds the current value of each contact input.
type ContactForm struct {
	Name    string
	Email   string
	Company string
	Message string
}

// Get returns the value of field f.
func (c ContactForm) Get(f Field) string {
	switch f {
	case FieldName:
		return c.Name
	case FieldEmail:
		return c.Email
	case FieldCompany:
		return c.Company
	case FieldMessage:
		return c.Message
	}
	return ""
}

// With returns a copy of c with field f set to v. Unknown fields leave c unchanged.
func (c ContactForm) With(f Field, v string) ContactForm {
	switch f {
	case FieldName:
		c.Name = v
	case FieldEmail:
		c.Email = v
	case FieldCompany:
		c.Company = v
	case FieldMessage:
		c.Message = v
	}
	return c
}

// Complete reports whether every required field has a value, matching the
// browser's check for inputs marked required.
func (c ContactForm) Complete() bool {
	for _, f := range Fields {
		if f.Required() && c.Get(f) == "" {
			return false
		}
	}
	return true
}

// State is everything the landing page shows that can change.
type State struct {
	Nav        NavState
	FAQ        FaqState
	Form       ContactForm
	Submission Submission

	// SubmitError is the message of the last failed submission, if any.
	SubmitError string
}

// Initial is the state on page load.
func Initial() State {
	return State{FAQ: FaqState{Open: NoneOpen}}
}
