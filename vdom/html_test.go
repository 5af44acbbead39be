//go:build !wasm

package vdom

import (
	"testing"
)

func TestHTMLString(t *testing.T) {
	tests := []struct {
		name string
		node *VNode
		want string
	}{
		{
			name: "text",
			node: Text("a < b"),
			want: "a &lt; b",
		},
		{
			name: "sorted attributes, handlers skipped",
			node: Button("送信", Attrs{
				"type":    "submit",
				"class":   "form-submit",
				"onClick": func() {},
			}),
			want: `<button class="form-submit" type="submit">送信</button>`,
		},
		{
			name: "boolean attributes",
			node: Input("text", "", Attrs{"id": "name", "required": true, "disabled": false}),
			want: `<input id="name" required="" type="text"/>`,
		},
		{
			name: "input value",
			node: Input("email", "taro@example.com", Attrs{"id": "email"}),
			want: `<input id="email" type="email" value="taro@example.com"/>`,
		},
		{
			name: "textarea value",
			node: Textarea("hello", Attrs{"rows": 4}),
			want: `<textarea rows="4">hello</textarea>`,
		},
		{
			name: "nested",
			node: Div(Attrs{"class": "hero"}, TextElement("h1", "DataFlow", nil), Br()),
			want: `<div class="hero"><h1>DataFlow</h1><br/></div>`,
		},
		{
			name: "nil",
			node: nil,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTMLString(tt.node); got != tt.want {
				t.Errorf("Expected '%s', got '%s'", tt.want, got)
			}
		})
	}
}

func TestIsEventKey(t *testing.T) {
	for key, want := range map[string]bool{
		"onClick":  true,
		"onSubmit": true,
		"on":       false,
		"class":    false,
	} {
		if got := IsEventKey(key); got != want {
			t.Errorf("IsEventKey(%q): expected %v, got %v", key, want, got)
		}
	}
}
