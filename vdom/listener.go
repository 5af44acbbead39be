package vdom

// Listener is an event listener attached to a rendered element. Detach
// removes it from the element and releases whatever it holds.
type Listener interface {
	Detach()
}

// releaseCallbacks detaches every listener recorded on v.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	for _, cb := range v.GetEventCallbacks() {
		if l, ok := cb.(Listener); ok {
			l.Detach()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}

	releaseCallbacks(v)

	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// eventName maps a handler attribute to its DOM event type:
// "onClick" -> "click", "onSubmit" -> "submit".
func eventName(key string) string {
	name := key[2:]
	if name != "" && name[0] >= 'A' && name[0] <= 'Z' {
		name = string(name[0]+('a'-'A')) + name[1:]
	}
	return name
}
