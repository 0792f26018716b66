package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDraft_HasSingleBlankTagSlot(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, []string{""}, d.Tags)
}

func TestSubmittedTags_FiltersBlankSlots(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{"only placeholder", []string{""}, []string{}},
		{"mixed", []string{"go", "", "  ", "testing"}, []string{"go", "testing"}},
		{"all filled", []string{"a", "b"}, []string{"a", "b"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := &Draft{Tags: tc.tags}
			assert.Equal(t, tc.want, d.SubmittedTags())
		})
	}
}
