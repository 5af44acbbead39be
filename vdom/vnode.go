package vdom

import "strings"

// TextTag marks a VNode that renders as a bare DOM text node.
const TextTag = "#text"

// VNode represents a virtual DOM node.
type VNode struct {
	Tag          string         // The HTML tag name, or TextTag
	Attributes   map[string]any // The attributes of the node, including "on*" event handlers
	Children     []*VNode       // The child nodes
	Content      string         // Text content; for input/textarea, the control value
	ComponentKey string         // Identifies the component that produced this subtree

	// eventCallbacks holds platform callbacks attached to the rendered
	// element so they can be released when the element goes away.
	eventCallbacks []any
}

// NewVNode creates a new VNode. Nil children are dropped so conditional
// rendering can pass nil for branches that are not shown.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   compact(children),
		Content:    content,
	}
}

func compact(children []*VNode) []*VNode {
	if len(children) == 0 {
		return nil
	}
	out := children[:0:0]
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// AddEventCallback records a callback for later release.
func (v *VNode) AddEventCallback(cb any) {
	v.eventCallbacks = append(v.eventCallbacks, cb)
}

// GetEventCallbacks returns the callbacks recorded on this node.
func (v *VNode) GetEventCallbacks() []any {
	return v.eventCallbacks
}

// ClearEventCallbacks forgets all recorded callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.eventCallbacks = nil
}

// Handler returns the event handler stored under key (e.g. "onClick"),
// or nil if there is none.
func (v *VNode) Handler(key string) any {
	if v == nil || v.Attributes == nil {
		return nil
	}
	return v.Attributes[key]
}

// Class returns the node's class attribute.
func (v *VNode) Class() string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	s, _ := v.Attributes["class"].(string)
	return s
}

// Find returns the first node in depth-first order for which match is true.
func (v *VNode) Find(match func(*VNode) bool) *VNode {
	if v == nil {
		return nil
	}
	if match(v) {
		return v
	}
	for _, c := range v.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every node in depth-first order for which match is true.
func (v *VNode) FindAll(match func(*VNode) bool) []*VNode {
	var out []*VNode
	v.walk(func(n *VNode) {
		if match(n) {
			out = append(out, n)
		}
	})
	return out
}

func (v *VNode) walk(fn func(*VNode)) {
	if v == nil {
		return
	}
	fn(v)
	for _, c := range v.Children {
		c.walk(fn)
	}
}

// TextContent concatenates the content of this node and all descendants.
func (v *VNode) TextContent() string {
	var s string
	v.walk(func(n *VNode) {
		if n.Tag != "input" {
			s += n.Content
		}
	})
	return s
}

// HasClass reports whether class is one of the node's space-separated classes.
func HasClass(class string) func(*VNode) bool {
	return func(n *VNode) bool {
		for _, c := range strings.Fields(n.Class()) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// HasID reports whether the node's id attribute equals id.
func HasID(id string) func(*VNode) bool {
	return func(n *VNode) bool {
		s, _ := n.Attributes["id"].(string)
		return s == id
	}
}
