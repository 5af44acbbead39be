package runtimetest

import (
	"slices"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/vcrobe/dataflow/runtime"
	"github.com/vcrobe/dataflow/vdom"
)

// counter is a small component used to exercise the harness itself.
type counter struct {
	runtime.ComponentBase

	Count     int
	Mounts    int
	Unmounts  int
	ParamSets int
}

func (c *counter) OnMount()         { c.Mounts++ }
func (c *counter) OnUnmount()       { c.Unmounts++ }
func (c *counter) OnParametersSet() { c.ParamSets++ }

func (c *counter) Increment() {
	c.Count++
	c.StateHasChanged()
}

func (c *counter) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Div(nil, vdom.Paragraph("Count: "+strconv.Itoa(c.Count), nil))
}

func TestTestRenderer_Lifecycle(t *testing.T) {
	// Arrange
	c := &counter{}
	r := NewTestRenderer(c)

	// Act
	r.RenderRoot()
	c.Increment()

	// Assert
	if got := r.GetCurrentVDOM().Children[0].Content; got != "Count: 1" {
		t.Errorf("Expected 'Count: 1', got '%s'", got)
	}
	if c.Mounts != 1 {
		t.Errorf("Expected 1 mount, got %d", c.Mounts)
	}
	if c.ParamSets != 2 {
		t.Errorf("Expected 2 OnParametersSet calls, got %d", c.ParamSets)
	}
	if r.RenderCount() != 2 {
		t.Errorf("Expected 2 renders, got %d", r.RenderCount())
	}

	r.Unmount()
	r.Unmount()
	if c.Unmounts != 1 {
		t.Errorf("Expected 1 unmount, got %d", c.Unmounts)
	}
	if c.Mounted() {
		t.Error("Expected component to be detached after unmount")
	}

	r.RenderRoot()
	if c.Mounts != 2 {
		t.Errorf("Expected remount to call OnMount again, got %d mounts", c.Mounts)
	}
}

func TestTestRenderer_StateHasChangedWhileDetached(t *testing.T) {
	c := &counter{}
	r := NewTestRenderer(c)
	r.RenderRoot()
	r.Unmount()

	// Must not panic or render.
	c.Increment()

	if r.RenderCount() != 1 {
		t.Errorf("Expected no render after unmount, got %d renders", r.RenderCount())
	}
}

func TestTestRenderer_RenderChildSetsKey(t *testing.T) {
	r := NewTestRenderer(&counter{})

	node := r.RenderChild("child-1", &counter{Count: 7})

	if node.ComponentKey != "child-1" {
		t.Errorf("Expected component key 'child-1', got '%s'", node.ComponentKey)
	}
}

// label is a child component with one prop.
type label struct {
	runtime.ComponentBase

	Text string

	Mounts   int
	Unmounts int
	text     string // copied from Text in OnParametersSet
}

func (c *label) OnMount()         { c.Mounts++ }
func (c *label) OnUnmount()       { c.Unmounts++ }
func (c *label) OnParametersSet() { c.text = c.Text }

func (c *label) ApplyProps(next runtime.Component) {
	if n, ok := next.(*label); ok {
		c.Text = n.Text
	}
}

func (c *label) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Span(c.text, nil)
}

// board renders one label per entry in Labels.
type board struct {
	runtime.ComponentBase

	Labels []string
}

func (c *board) Render(r runtime.Renderer) *vdom.VNode {
	children := make([]*vdom.VNode, 0, len(c.Labels))
	for i, text := range c.Labels {
		children = append(children, r.RenderChild("label-"+strconv.Itoa(i), &label{Text: text}))
	}
	return vdom.Div(nil, children...)
}

func TestTestRenderer_ChildInstancesReused(t *testing.T) {
	// Arrange
	b := &board{Labels: []string{"a", "b"}}
	r := NewTestRenderer(b)
	r.RenderRoot()

	// Act
	b.Labels = []string{"x", "b"}
	r.ReRender()

	// Assert
	root := r.GetCurrentVDOM()
	if got := root.Children[0].Content; got != "x" {
		t.Errorf("Expected reused child to receive new props, got '%s'", got)
	}
	if got := root.Children[0].ComponentKey; got != "label-0" {
		t.Errorf("Expected component key 'label-0', got '%s'", got)
	}
	if got := r.ChildKeys(); !slices.Equal(got, []string{"label-0", "label-1"}) {
		t.Errorf("Expected two live children, got %v", got)
	}
}

func TestTestRenderer_ChildLifecycle(t *testing.T) {
	b := &board{Labels: []string{"a", "b"}}
	r := NewTestRenderer(b)
	r.RenderRoot()

	kept := r.children["label-0"].(*label)
	dropped := r.children["label-1"].(*label)

	b.Labels = []string{"a"}
	r.ReRender()
	r.ReRender()

	if kept.Mounts != 1 {
		t.Errorf("Expected kept child mounted once, got %d", kept.Mounts)
	}
	if dropped.Unmounts != 1 {
		t.Errorf("Expected dropped child unmounted once, got %d", dropped.Unmounts)
	}
	if dropped.Mounted() {
		t.Error("Expected dropped child detached")
	}
	if got := r.ChildKeys(); !slices.Equal(got, []string{"label-0"}) {
		t.Errorf("Expected only label-0 live, got %v", got)
	}

	r.Unmount()
	if kept.Unmounts != 1 {
		t.Errorf("Expected root unmount to unmount children, got %d", kept.Unmounts)
	}
	if len(r.ChildKeys()) != 0 {
		t.Errorf("Expected no live children after unmount, got %v", r.ChildKeys())
	}
}

// stamp renders a new sequence number on every render.
type stamp struct {
	runtime.ComponentBase

	seq atomic.Int64
}

func (c *stamp) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Paragraph(strconv.FormatInt(c.seq.Add(1), 10), nil)
}

func TestTestRenderer_ConcurrentReRenderKeepsLatest(t *testing.T) {
	c := &stamp{}
	r := NewTestRenderer(c)
	r.RenderRoot()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.StateHasChanged()
		}()
	}
	wg.Wait()

	want := strconv.FormatInt(c.seq.Load(), 10)
	if got := r.GetCurrentVDOM().Content; got != want {
		t.Errorf("Expected last stored tree to be render %s, got %s", want, got)
	}
	if r.RenderCount() != 51 {
		t.Errorf("Expected 51 renders, got %d", r.RenderCount())
	}
}
