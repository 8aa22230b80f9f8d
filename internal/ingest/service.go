package ingest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"bookreview/internal/book"
	"bookreview/internal/httpx"
	"bookreview/internal/logger"
	"bookreview/internal/pagination"
	"bookreview/internal/platform/apperr"
	"bookreview/internal/platform/openlibrary"
)

const maxFieldLen = 100

type Service struct {
	olClient OpenLibraryClient
	catalog  Catalog
	cfg      Config
	log      *logger.Logger
}

func NewService(olClient OpenLibraryClient, catalog Catalog, cfg Config, log *logger.Logger) *Service {
	return &Service{olClient: olClient, catalog: catalog, cfg: cfg, log: log}
}

// Run walks the configured subjects and adds every usable hit. A failed
// subject search is logged and skipped; only catalog read errors abort.
func (s *Service) Run(ctx context.Context) (Run, error) {
	var run Run

	needed := -1
	if s.cfg.BooksMax > 0 {
		_, _, total, err := s.catalog.List(ctx, book.Filter{}, pagination.Params{Page: 1, Limit: 1})
		if err != nil {
			return run, fmt.Errorf("count books: %w", err)
		}
		needed = s.cfg.BooksMax - total
		if needed <= 0 {
			s.log.Info("ingestion target already met, skipping", "books", total)
			return run, nil
		}
	}

	seen := make(map[string]bool)
	for _, subject := range s.cfg.Subjects {
		if needed >= 0 && run.Added >= needed {
			break
		}

		res, err := s.olClient.SearchBySubject(ctx, subject, s.cfg.PerSubject)
		if err != nil {
			if ctx.Err() != nil {
				return run, ctx.Err()
			}
			s.log.Warn("subject search failed", "subject", subject, "error", err)
			continue
		}
		run.Fetched += len(res.Docs)

		for _, doc := range res.Docs {
			if needed >= 0 && run.Added >= needed {
				break
			}
			in, ok := toNewBook(doc, subject)
			key := strings.ToLower(in.Title + "\x00" + in.Author)
			if !ok || seen[key] {
				run.Skipped++
				continue
			}
			seen[key] = true

			if _, err := s.catalog.Add(ctx, in); err != nil {
				if errors.Is(err, apperr.Conflict("")) {
					run.Skipped++
					continue
				}
				s.log.Warn("failed to add book", "title", in.Title, "error", err)
				run.Failed++
				continue
			}
			run.Added++
		}
		s.log.Info("subject imported", "subject", subject, "found", len(res.Docs))
	}
	return run, nil
}

// toNewBook maps a search hit to a book, rejecting hits that would fail the
// same validation as POST /books.
func toNewBook(doc openlibrary.Doc, subject string) (book.NewBook, bool) {
	in := book.NewBook{
		Title:  truncate(doc.Title),
		Author: truncate(doc.Author()),
		Genre:  truncate(GenreFor(subject)),
	}
	if len(httpx.ValidateStruct(in)) > 0 {
		return book.NewBook{}, false
	}
	return in, true
}

// GenreFor turns an Open Library subject slug into a display genre,
// e.g. "science_fiction" becomes "Science Fiction".
func GenreFor(subject string) string {
	words := strings.Fields(strings.ReplaceAll(subject, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

func truncate(s string) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) > maxFieldLen {
		r = r[:maxFieldLen]
	}
	return strings.TrimSpace(string(r))
}
