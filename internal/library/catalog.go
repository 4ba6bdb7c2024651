package library

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed books.yaml
var seedBooks []byte

// Book is one library catalog entry. The seed set is embedded; admins may
// append more for the session.
type Book struct {
	ID         string `yaml:"id"`
	Title      string `yaml:"title"`
	Author     string `yaml:"author"`
	CoverColor string `yaml:"cover_color"`
	Summary    string `yaml:"summary"`
	Content    string `yaml:"content"`
}

// Catalog is the in-memory book library.
type Catalog struct {
	books []Book
}

// NewCatalog loads the embedded seed set.
func NewCatalog() (*Catalog, error) {
	var books []Book
	if err := yaml.Unmarshal(seedBooks, &books); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal() > %w", err)
	}
	return &Catalog{books: books}, nil
}

func (c *Catalog) Books() []Book {
	return c.books
}

// Add appends a book to the catalog. Admin-only at the UI layer.
func (c *Catalog) Add(book Book) {
	c.books = append(c.books, book)
}

// Search filters the catalog by case-insensitive substring match on title.
func (c *Catalog) Search(query string) []Book {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return c.books
	}
	var matches []Book
	for _, book := range c.books {
		if strings.Contains(strings.ToLower(book.Title), query) {
			matches = append(matches, book)
		}
	}
	return matches
}

// ShouldSearchExternally reports whether a query that found no local matches
// warrants the external-resource call. Short queries never go remote.
func ShouldSearchExternally(query string, localMatches int) bool {
	return localMatches == 0 && len(strings.TrimSpace(query)) > 3
}
