package submit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNewLead(t *testing.T) {
	now := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)

	lead := NewLead("  山田 太郎 ", "taro@example.com", "<b>株式会社サンプル</b>", "AT&T <script>alert(1)</script>", now)

	assert.NotEqual(t, uuid.Nil, lead.ID)
	assert.Equal(t, "山田 太郎", lead.Name)
	assert.Equal(t, "taro@example.com", lead.Email)
	assert.Equal(t, "株式会社サンプル", lead.Company)
	assert.Equal(t, "AT&T", lead.Message)
	assert.Equal(t, now, lead.SubmittedAt)
}

func TestNewLead_UniqueIDs(t *testing.T) {
	a := NewLead("a", "a@example.com", "", "", time.Now())
	b := NewLead("a", "a@example.com", "", "", time.Now())

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewLead_BlankAfterSanitizing(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"whitespace", "   "},
		{"empty markup", "<b></b>"},
		{"script only", "<script>x</script>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lead := NewLead(tt.input, "taro@example.com", "", "", time.Now())

			assert.Empty(t, lead.Name)
			assert.Equal(t, "taro@example.com", lead.Email)
			assert.NotEqual(t, uuid.Nil, lead.ID)
		})
	}
}

func TestDelay_Succeeds(t *testing.T) {
	d := Delay{Duration: 10 * time.Millisecond}

	start := time.Now()
	err := d.Submit(context.Background(), Lead{})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestDelay_Cancelled(t *testing.T) {
	d := Delay{Duration: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Submit(ctx, Lead{ID: uuid.New()})

	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestNewDelay(t *testing.T) {
	assert.Equal(t, 1200*time.Millisecond, NewDelay().Duration)
}

func TestSubmitterFunc(t *testing.T) {
	var got Lead
	var s Submitter = SubmitterFunc(func(ctx context.Context, lead Lead) error {
		got = lead
		return nil
	})

	want := Lead{Name: "山田 太郎"}
	require.NoError(t, s.Submit(context.Background(), want))
	assert.Equal(t, want, got)
}
