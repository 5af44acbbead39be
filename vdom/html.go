package vdom

import (
	"bytes"
	"fmt"
	"io"
	"reflect"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RenderHTML writes the markup a VNode tree produces in the DOM. Event
// handlers are not serialised and attributes are written in sorted order,
// so equal trees always produce identical output.
func RenderHTML(w io.Writer, n *VNode) error {
	if n == nil {
		return nil
	}
	if err := html.Render(w, toHTMLNode(n)); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// HTMLString is RenderHTML into a string.
func HTMLString(n *VNode) string {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

func toHTMLNode(n *VNode) *html.Node {
	if n.Tag == TextTag {
		return &html.Node{Type: html.TextNode, Data: n.Content}
	}

	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
		Attr:     htmlAttrs(n.Attributes),
	}

	switch n.Tag {
	case "input":
		if n.Content != "" {
			el.Attr = append(el.Attr, html.Attribute{Key: "value", Val: n.Content})
		}
		return el
	case "textarea":
		if n.Content != "" {
			el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
		}
		return el
	}

	if n.Content != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: n.Content})
	}
	for _, child := range n.Children {
		if child == nil {
			continue
		}
		el.AppendChild(toHTMLNode(child))
	}
	return el
}

func htmlAttrs(attrs map[string]any) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		v := attrs[k]
		if IsEventKey(k) || v == nil || reflect.TypeOf(v).Kind() == reflect.Func {
			continue
		}
		if b, ok := v.(bool); ok {
			if b {
				out = append(out, html.Attribute{Key: k})
			}
			continue
		}
		out = append(out, html.Attribute{Key: k, Val: fmt.Sprint(v)})
	}
	return out
}

// IsEventKey reports whether an attribute key names an event handler
// ("onClick", "onInput", ...).
func IsEventKey(key string) bool {
	return len(key) > 2 && key[0] == 'o' && key[1] == 'n'
}
