//go:build !wasm

package contact

import (
	"testing"

	"github.com/vcrobe/dataflow/events"
	"github.com/vcrobe/dataflow/internal/content"
	"github.com/vcrobe/dataflow/internal/landing"
	"github.com/vcrobe/dataflow/runtime/runtimetest"
	"github.com/vcrobe/dataflow/vdom"
)

func newForm(s landing.Submission) *Form {
	return &Form{
		Copy:       content.Default().Contact,
		Values:     landing.ContactForm{Name: "山田 太郎"},
		Submission: s,
	}
}

func TestForm_SubmitButtonFollowsSubmission(t *testing.T) {
	tests := []struct {
		submission   landing.Submission
		wantLabel    string
		wantDisabled bool
	}{
		{landing.Idle, "無料トライアルを申し込む", false},
		{landing.Submitting, "送信中...", true},
	}

	for _, tt := range tests {
		t.Run(tt.submission.String(), func(t *testing.T) {
			root := runtimetest.NewTestRenderer(newForm(tt.submission)).RenderRoot()

			btn := root.Find(vdom.HasClass("form-submit"))
			if btn.Content != tt.wantLabel {
				t.Errorf("Expected label '%s', got '%s'", tt.wantLabel, btn.Content)
			}
			if btn.Attributes["disabled"] != tt.wantDisabled {
				t.Errorf("Expected disabled=%v, got %v", tt.wantDisabled, btn.Attributes["disabled"])
			}
		})
	}
}

func TestForm_ShowsErrorOnlyAfterFailure(t *testing.T) {
	f := newForm(landing.Idle)
	r := runtimetest.NewTestRenderer(f)

	if r.RenderRoot().Find(vdom.HasClass("form-error")) != nil {
		t.Error("Expected no error line before a failure")
	}

	f.SubmitError = "503 service unavailable"
	r.ReRender()

	if r.GetCurrentVDOM().Find(vdom.HasClass("form-error")) == nil {
		t.Error("Expected error line after a failure")
	}
}

func TestForm_Callbacks(t *testing.T) {
	var edits []string
	submits := 0
	f := newForm(landing.Idle)
	f.OnInput = func(field landing.Field, v string) { edits = append(edits, string(field)+"="+v) }
	f.OnSubmit = func() { submits++ }
	root := runtimetest.NewTestRenderer(f).RenderRoot()

	email := root.Find(vdom.HasID("email"))
	email.Handler("onInput").(func(events.ChangeEventArgs))(events.ChangeEventArgs{Value: "taro@example.com"})
	root.Find(vdom.HasClass("contact-form")).Handler("onSubmit").(func(events.FormEventArgs))(events.FormEventArgs{})

	if len(edits) != 1 || edits[0] != "email=taro@example.com" {
		t.Errorf("Expected one email edit, got %v", edits)
	}
	if submits != 1 {
		t.Errorf("Expected 1 submit, got %d", submits)
	}
	if got := root.Find(vdom.HasID("name")).Content; got != "山田 太郎" {
		t.Errorf("Expected name value '山田 太郎', got '%s'", got)
	}
}
