package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_Search(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)
	require.NotEmpty(t, catalog.Books())

	tests := []struct {
		name       string
		query      string
		wantTitles []string
		wantAll    bool
	}{
		{
			name:       "Case-insensitive substring match",
			query:      "phys",
			wantTitles: []string{"Physics I"},
		},
		{
			name:       "Match ignores surrounding whitespace",
			query:      "  world hist  ",
			wantTitles: []string{"World History"},
		},
		{
			name:  "No local match",
			query: "Quantum Biology",
		},
		{
			name:    "Empty query returns the whole shelf",
			query:   "",
			wantAll: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := catalog.Search(tt.query)
			if tt.wantAll {
				assert.Len(t, matches, len(catalog.Books()))
				return
			}
			var titles []string
			for _, book := range matches {
				titles = append(titles, book.Title)
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestCatalog_Add(t *testing.T) {
	catalog, err := NewCatalog()
	require.NoError(t, err)
	before := len(catalog.Books())

	catalog.Add(Book{ID: "extra", Title: "Quantum Biology", Author: "J. McFadden"})
	assert.Len(t, catalog.Books(), before+1)
	assert.Len(t, catalog.Search("quantum"), 1)
}

func TestShouldSearchExternally(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		localMatches int
		want         bool
	}{
		{
			name:         "No local match and a meaningful query",
			query:        "Quantum Biology",
			localMatches: 0,
			want:         true,
		},
		{
			name:         "Local matches suppress the external call",
			query:        "Physics I",
			localMatches: 1,
			want:         false,
		},
		{
			name:         "Short query never goes remote",
			query:        "phy",
			localMatches: 0,
			want:         false,
		},
		{
			name:         "Whitespace does not count toward query length",
			query:        "  ab  ",
			localMatches: 0,
			want:         false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldSearchExternally(tt.query, tt.localMatches))
		})
	}
}
