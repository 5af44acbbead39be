package submit

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
)

// Lead is a contact request as it leaves the page.
type Lead struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Company     string
	Message     string
	SubmittedAt time.Time
}

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// sanitize strips markup and surrounding whitespace. The strict policy
// escapes what it keeps, so entities are turned back into text.
func sanitize(raw string) string {
	cleaned := textSanitizer().Sanitize(strings.TrimSpace(raw))
	return strings.TrimSpace(unescaper.Replace(cleaned))
}

var unescaper = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&#34;", `"`,
	"&#39;", "'",
)

// NewLead builds a sanitized lead stamped with a fresh ID and now.
// Presence of the required fields is checked by the form before this is
// called; a field that is only markup or whitespace comes out empty here
// and is still sent.
func NewLead(name, email, company, message string, now time.Time) Lead {
	return Lead{
		ID:          uuid.New(),
		Name:        sanitize(name),
		Email:       sanitize(email),
		Company:     sanitize(company),
		Message:     sanitize(message),
		SubmittedAt: now,
	}
}
