package vdom

// Attrs is shorthand for an attribute map.
type Attrs = map[string]any

// Text creates a bare text node.
func Text(content string) *VNode {
	return NewVNode(TextTag, nil, nil, content)
}

// Element creates a VNode for an arbitrary tag.
func Element(tag string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode(tag, attrs, children, "")
}

// TextElement creates a VNode whose only content is text, e.g. <h3>Title</h3>.
func TextElement(tag string, text string, attrs map[string]any) *VNode {
	return NewVNode(tag, attrs, nil, text)
}

// Paragraph creates a <p> VNode with the given text as its child and allows passing attributes.
func Paragraph(text string, attrs map[string]any) *VNode {
	return NewVNode("p", attrs, nil, text)
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Span creates a <span> with text content.
func Span(text string, attrs map[string]any) *VNode {
	return NewVNode("span", attrs, nil, text)
}

// Link creates an <a> with text content pointing at href.
func Link(href string, text string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["href"] = href
	return NewVNode("a", attrs, nil, text)
}

// Button creates a <button> VNode with the given children and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}

// Input returns an <input> whose current value is value.
func Input(inputType string, value string, attrs map[string]any) *VNode {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	attrs["type"] = inputType
	return NewVNode("input", attrs, nil, value)
}

// Textarea returns a <textarea> whose current value is value.
func Textarea(value string, attrs map[string]any) *VNode {
	return NewVNode("textarea", attrs, nil, value)
}

// List creates a <ul> with one <li> per item.
func List(attrs map[string]any, items []string) *VNode {
	lis := make([]*VNode, 0, len(items))
	for _, it := range items {
		lis = append(lis, NewVNode("li", nil, nil, it))
	}
	return NewVNode("ul", attrs, lis, "")
}

// Br creates a line break.
func Br() *VNode {
	return NewVNode("br", nil, nil, "")
}
