//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/dataflow/console"
)

// supportedTags lists the elements createElement knows how to build.
var supportedTags = map[string]bool{
	"a": true, "article": true, "aside": true, "br": true, "button": true,
	"div": true, "footer": true, "form": true, "h1": true, "h2": true,
	"h3": true, "h4": true, "h5": true, "h6": true, "header": true,
	"input": true, "label": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "section": true,
	"span": true, "textarea": true, "ul": true,
}

// domListener is a js.Func registered with addEventListener on target.
type domListener struct {
	target js.Value
	event  string
	fn     js.Func
}

// Detach unregisters the listener before releasing it, so the element never
// calls a released func.
func (l domListener) Detach() {
	l.target.Call("removeEventListener", l.event, l.fn)
	l.fn.Release()
}

// Clear empties the mount element and releases every callback held by prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}

	if prevVDOM != nil {
		deepReleaseCallbacks(prevVDOM)
	}

	mount, ok := querySelector(selector)
	if !ok {
		return
	}

	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}

	mount, ok := querySelector(selector)
	if !ok {
		return
	}

	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}

	el := createElement(n)

	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

func querySelector(selector string) (js.Value, bool) {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined(), false
	}

	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
		return js.Undefined(), false
	}
	return mount, true
}

// setAttributeValue sets an attribute on an element, handling boolean attributes and event handlers correctly.
func setAttributeValue(el js.Value, key string, value any) {
	if IsEventKey(key) {
		return
	}

	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		// Form controls read these as properties once the user has interacted.
		if key == "disabled" || key == "checked" {
			el.Set(key, boolVal)
		}
		return
	}

	el.Call("setAttribute", key, value)
}

// attachEventListeners processes attributes and attaches event listeners for event handlers.
// Event attributes start with "on" (e.g., onClick, onInput, onSubmit).
// Each listener is recorded on vnode so the next patch can detach it.
func attachEventListeners(el js.Value, vnode *VNode, attributes map[string]any) {
	for key, value := range attributes {
		if !IsEventKey(key) {
			continue
		}
		handler, ok := value.(func(js.Value))
		if !ok {
			continue
		}

		cb := js.FuncOf(func(this js.Value, args []js.Value) any {
			if len(args) > 0 {
				handler(args[0])
			}
			return nil
		})

		l := domListener{target: el, event: eventName(key), fn: cb}
		el.Call("addEventListener", l.event, cb)
		vnode.AddEventCallback(l)
	}
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}

	if n.Tag == TextTag {
		if n.Content == "" {
			return js.Undefined()
		}
		return doc.Call("createTextNode", n.Content)
	}

	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)

	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachEventListeners(el, n, n.Attributes)

	switch n.Tag {
	case "input", "textarea":
		if n.Content != "" {
			el.Set("value", n.Content)
		}
		return el
	}

	if n.Content != "" {
		el.Set("textContent", n.Content)
	}

	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}

	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}

	mount, ok := querySelector(mountSelector)
	if !ok {
		return
	}

	rootElement := mount.Get("firstChild")
	if !rootElement.Truthy() {
		RenderToSelector(mountSelector, newVNode)
		return
	}

	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)

	newElement := createElement(newVNode)
	if newElement.Truthy() {
		parent := domElement.Get("parentNode")
		if parent.Truthy() {
			parent.Call("replaceChild", newElement, domElement)
		}
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.ComponentKey != newVNode.ComponentKey || oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	if newVNode.Tag == TextTag {
		if oldVNode.Content != newVNode.Content {
			domElement.Set("nodeValue", newVNode.Content)
		}
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// The old listeners are still registered on domElement.
	releaseCallbacks(oldVNode)
	attachEventListeners(domElement, newVNode, newVNode.Attributes)

	switch newVNode.Tag {
	case "input", "textarea":
		// Leave the focused control alone so typing is not interrupted.
		isFocused := domElement.Call("matches", ":focus")
		if !isFocused.Bool() {
			if domElement.Get("value").String() != newVNode.Content {
				domElement.Set("value", newVNode.Content)
			}
		}
		return
	default:
		// Setting textContent wipes out all child nodes, so only do it for leaves.
		if len(newVNode.Children) == 0 && oldVNode.Content != newVNode.Content {
			domElement.Set("textContent", newVNode.Content)
		}
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if IsEventKey(key) {
			continue
		}
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}

	for key, value := range newAttrs {
		if IsEventKey(key) {
			continue
		}
		if old, ok := oldAttrs[key]; !ok || old != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the children of a DOM element.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("childNodes")

	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		newChild := createElement(newChildren[i])
		if newChild.Truthy() {
			domElement.Call("appendChild", newChild)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])

		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
