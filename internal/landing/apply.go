package landing

// Apply returns the state that follows s after ev. It never mutates s and
// has no side effects; the caller starts any async work a transition implies
// (see StartsSubmission).
//
// faqCount bounds FaqSelected: indexes outside [0, faqCount) are ignored.
func Apply(s State, ev Event, faqCount int) State {
	switch ev := ev.(type) {
	case Scrolled:
		s.Nav.Scrolled = ev.Offset > ScrollThreshold

	case MenuToggled:
		s.Nav.MobileMenuOpen = !s.Nav.MobileMenuOpen

	case NavLinkSelected:
		s.Nav.MobileMenuOpen = false

	case FaqSelected:
		if ev.Index < 0 || ev.Index >= faqCount {
			return s
		}
		if s.FAQ.Open == ev.Index {
			s.FAQ.Open = NoneOpen
		} else {
			s.FAQ.Open = ev.Index
		}

	case FieldChanged:
		if s.Submission == Submitted {
			return s
		}
		s.Form = s.Form.With(ev.Field, ev.Value)

	case SubmitRequested:
		if s.Submission != Idle || !s.Form.Complete() {
			return s
		}
		s.Submission = Submitting
		s.SubmitError = ""

	case SubmitCompleted:
		if s.Submission != Submitting {
			return s
		}
		if ev.Err != nil {
			s.Submission = Idle
			s.SubmitError = ev.Err.Error()
			return s
		}
		s.Submission = Submitted
		s.Form = ContactForm{}
	}
	return s
}

// StartsSubmission reports whether moving from prev to next begins a
// submission the caller must now perform.
func StartsSubmission(prev, next State) bool {
	return prev.Submission == Idle && next.Submission == Submitting
}
