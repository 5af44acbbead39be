package landing

// Event is something that happened on the page.
type Event interface {
	isEvent()
}

// Scrolled reports the viewport's vertical offset.
type Scrolled struct{ Offset float64 }

// MenuToggled is a press of the mobile menu button.
type MenuToggled struct{}

// NavLinkSelected is a click on one of the mobile nav links.
type NavLinkSelected struct{}

// FaqSelected is a click on the question of FAQ entry Index.
type FaqSelected struct{ Index int }

// FieldChanged is an edit of one contact form input.
type FieldChanged struct {
	Field Field
	Value string
}

// SubmitRequested is the form's submit event.
type SubmitRequested struct{}

// SubmitCompleted is the outcome of the async submission. Err is nil on success.
type SubmitCompleted struct{ Err error }

func (Scrolled) isEvent()        {}
func (MenuToggled) isEvent()     {}
func (NavLinkSelected) isEvent() {}
func (FaqSelected) isEvent()     {}
func (FieldChanged) isEvent()    {}
func (SubmitRequested) isEvent() {}
func (SubmitCompleted) isEvent() {}
