package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"mfuertes.net/portfolio/internal/content"
)

type project struct {
	name, description string
}

func TestFind(t *testing.T) {
	projects := []project{
		{"portfolio", "Personal site"},
		{"ha-addons", "Home Assistant CLI tools"},
		{"dotfiles", "Shell config"},
	}
	byDescription := func(p project) string { return p.description }

	tests := []struct {
		name string
		q    string
		want []string
	}{
		{"case insensitive", "cli", []string{"ha-addons"}},
		{"empty matches all", "", []string{"portfolio", "ha-addons", "dotfiles"}},
		{"whitespace matches all", "  ", []string{"portfolio", "ha-addons", "dotfiles"}},
		{"no match", "kubernetes", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Find(projects, Contains(byDescription, tt.q))
			names := []string{}
			for _, p := range got {
				names = append(names, p.name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestFindNilPredicate(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Find([]int{1, 2}, nil))
	assert.NotNil(t, Find[int](nil, nil))
}

func TestRecords(t *testing.T) {
	records := []*content.Record{
		{ID: "1", Title: "Fix CLI flags", Description: "owner/repo"},
		{ID: "2", Title: "Docs", Description: "other/cli-tool"},
		{ID: "3", Title: "Refactor", Description: "x/y"},
	}
	got := Records(records, "CLI")
	assert.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}
