package book

import (
	"fmt"
	"strings"

	"bookreview/internal/platform/apperr"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns s into an ILIKE pattern matching it as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// Filter narrows a book listing. Empty fields match everything.
type Filter struct {
	Author string
	Genre  string
}

// Where renders the filter as a SQL predicate with placeholders starting at
// $argn. It always returns a usable predicate.
func (f Filter) Where(argn int) (string, []any) {
	clauses := []string{"1=1"}
	var args []any

	if f.Author != "" {
		clauses = append(clauses, fmt.Sprintf("author ILIKE $%d", argn))
		args = append(args, containsPattern(f.Author))
		argn++
	}
	if f.Genre != "" {
		clauses = append(clauses, fmt.Sprintf("genre ILIKE $%d", argn))
		args = append(args, containsPattern(f.Genre))
	}
	return strings.Join(clauses, " AND "), args
}

// Search is a free-text lookup over title and author.
type Search struct {
	Query string
}

func NewSearch(query string) (Search, error) {
	s := Search{Query: strings.TrimSpace(query)}
	if err := s.Validate(); err != nil {
		return Search{}, err
	}
	return s, nil
}

func (s Search) Validate() error {
	if strings.TrimSpace(s.Query) == "" {
		return apperr.Validation("Search query is required")
	}
	return nil
}

func (s Search) Where(argn int) (string, []any) {
	return fmt.Sprintf("(title ILIKE $%d OR author ILIKE $%d)", argn, argn), []any{containsPattern(s.Query)}
}
