package models

import "strings"

// Draft holds in-progress article form content. Tags always contains at
// least one slot; blank slots are placeholders for the input form and
// are dropped by SubmittedTags.
type Draft struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Body        string   `json:"body"`
	Tags        []string `json:"tags"`
}

// NewDraft returns an empty draft with a single blank tag slot.
func NewDraft() *Draft {
	return &Draft{Tags: []string{""}}
}

// SubmittedTags returns the tags that should actually be sent to the
// server: blank and whitespace-only slots are filtered out.
func (d *Draft) SubmittedTags() []string {
	tags := make([]string, 0, len(d.Tags))
	for _, t := range d.Tags {
		if strings.TrimSpace(t) != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
