package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Shape(t *testing.T) {
	p := Default()

	assert.Equal(t, "DataFlow", p.Brand)
	assert.Len(t, p.Features, 3)
	assert.Len(t, p.Plans, 3)
	assert.Len(t, p.FAQs, 5)
	assert.Len(t, p.Hero.Stats, 3)

	popular := 0
	for _, plan := range p.Plans {
		if plan.Popular {
			popular++
			assert.Equal(t, "Professional", plan.Name)
		}
	}
	assert.Equal(t, 1, popular)

	assert.True(t, p.Plans[2].IsEnterprise())
	assert.False(t, p.Plans[0].IsEnterprise())
}

func TestDefault_ReturnsIndependentCopies(t *testing.T) {
	a := Default()
	b := Default()

	a.Features[0].Title = "changed"
	a.Plans[0].Features[0] = "changed"
	a.FAQs = a.FAQs[:1]

	fresh := Default()
	if diff := cmp.Diff(b, fresh); diff != "" {
		t.Errorf("Default() copy was mutated through another copy (-want +got):\n%s", diff)
	}
}

func TestLoad_RejectsUnknownFields(t *testing.T) {
	_, err := Load([]byte("brand: x\nbogus: 1\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode page copy")
}

func TestValidate(t *testing.T) {
	valid := func() *Page {
		faqs := make([]FAQ, FAQCount)
		for i := range faqs {
			faqs[i] = FAQ{Question: "q", Answer: "a"}
		}
		return &Page{
			Features: []Feature{{Title: "a"}, {Title: "b"}, {Title: "c"}},
			Plans: []Plan{
				{Name: "Starter"},
				{Name: "Professional", Popular: true},
				{Name: EnterprisePlan},
			},
			FAQs: faqs,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Page)
		wantErr string
	}{
		{name: "valid", mutate: func(*Page) {}},
		{
			name:    "no popular plan",
			mutate:  func(p *Page) { p.Plans[1].Popular = false },
			wantErr: "want exactly one popular plan, got 0",
		},
		{
			name:    "two popular plans",
			mutate:  func(p *Page) { p.Plans[0].Popular = true },
			wantErr: "want exactly one popular plan, got 2",
		},
		{
			name:    "empty faq answer",
			mutate:  func(p *Page) { p.FAQs[0].Answer = "" },
			wantErr: "faq 0: question and answer are required",
		},
		{
			name:    "no features",
			mutate:  func(p *Page) { p.Features = nil },
			wantErr: "want 3 features, got 0",
		},
		{
			name:    "extra plan",
			mutate:  func(p *Page) { p.Plans = append(p.Plans, Plan{Name: "Team"}) },
			wantErr: "want 3 plans, got 4",
		},
		{
			name:    "missing faq",
			mutate:  func(p *Page) { p.FAQs = p.FAQs[:4] },
			wantErr: "want 5 faqs, got 4",
		},
		{
			name:    "no enterprise plan",
			mutate:  func(p *Page) { p.Plans[2].Name = "Business" },
			wantErr: "want exactly one Enterprise plan, got 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid()
			tt.mutate(p)
			err := p.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
