// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Synthesized section headings used when assembling an issue body.
const (
	AcceptanceHeading = "## Acceptance Criteria"
	FilesHeading      = "## Files to Modify"
)

// IssueRecord is one importable work item parsed from a backlog document.
// Records are immutable once parsed.
type IssueRecord struct {
	Title  string   `json:"title" yaml:"title"`
	Labels []string `json:"labels" yaml:"labels"`
	Body   string   `json:"body" yaml:"body"`
}

// Validate checks that the record can be published.
func (r IssueRecord) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required.ErrorObject(
			validation.NewError("backlog.issue.title_required", ErrEmptyTitle.Error()),
		), validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return ErrEmptyTitle
			}
			return nil
		})),
	)
}

// BuildIssueBody assembles an issue body from its optional sections.
// Sections are separated by one blank line. Acceptance criteria and files
// get a level-2 heading; if description is empty the body starts with the
// first heading present.
func BuildIssueBody(description, acceptance, files string) string {
	var b strings.Builder
	appendSection := func(heading, text string) {
		if text == "" {
			return
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		if heading != "" {
			b.WriteString(heading)
			b.WriteString("\n")
		}
		b.WriteString(text)
	}

	appendSection("", description)
	appendSection(AcceptanceHeading, acceptance)
	appendSection(FilesHeading, files)
	return b.String()
}
