package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jenaralee/StoryStash/internal/booksource"
	"github.com/jenaralee/StoryStash/internal/entities"
	"github.com/jenaralee/StoryStash/internal/store"
)

// DefaultSupplementThreshold: searches with fewer local hits consult the source.
const DefaultSupplementThreshold = 5

// DiscoveryService answers book searches from the local catalog and tops
// them up from an external source when the catalog has too little.
type DiscoveryService struct {
	catalog   BookCatalog
	source    booksource.Source
	threshold int
}

// NewDiscoveryService creates a DiscoveryService. A nil source disables
// supplementing.
func NewDiscoveryService(catalog BookCatalog, source booksource.Source, threshold int) *DiscoveryService {
	if threshold <= 0 {
		threshold = DefaultSupplementThreshold
	}
	return &DiscoveryService{
		catalog:   catalog,
		source:    source,
		threshold: threshold,
	}
}

// Search returns local matches, followed by source results once they are
// persisted. Source failures are logged and the local results returned.
func (s *DiscoveryService) Search(ctx context.Context, query string) ([]entities.Book, error) {
	local, err := s.catalog.SearchBooks(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search local books: %w", err)
	}
	if s.source == nil || len(local) >= s.threshold {
		return local, nil
	}

	fetched, err := s.source.Search(ctx, query, booksource.DefaultMaxResults)
	if err != nil {
		log.Printf("Book source search for %q failed, using local results: %v", query, err)
		return local, nil
	}

	seen := make(map[uint]struct{}, len(local))
	for _, b := range local {
		seen[b.ID] = struct{}{}
	}

	results := local
	for i := range fetched {
		book, _, err := s.ingest(ctx, &fetched[i])
		if err != nil {
			log.Printf("Failed to store book %q (%s): %v", fetched[i].Title, fetched[i].GoogleID, err)
			continue
		}
		if _, dup := seen[book.ID]; dup {
			continue
		}
		seen[book.ID] = struct{}{}
		results = append(results, *book)
	}
	return results, nil
}

// Ingest persists books not seen before, matching on googleId.
func (s *DiscoveryService) Ingest(ctx context.Context, books []entities.Book) IngestResult {
	result := IngestResult{BooksFetched: len(books)}

	for i := range books {
		_, created, err := s.ingest(ctx, &books[i])
		switch {
		case err != nil:
			log.Printf("Failed to store book %q (%s): %v", books[i].Title, books[i].GoogleID, err)
			result.BooksFailed++
		case created:
			result.BooksCreated++
		default:
			result.BooksSkipped++
		}
	}
	return result
}

// IngestQuery fetches books for query from the source and ingests them.
func (s *DiscoveryService) IngestQuery(ctx context.Context, query string, maxResults int) (IngestResult, error) {
	if s.source == nil {
		return IngestResult{}, errors.New("book source is disabled")
	}

	fetched, err := s.source.Search(ctx, query, maxResults)
	if err != nil {
		return IngestResult{}, fmt.Errorf("fetch books: %w", err)
	}
	return s.Ingest(ctx, fetched), nil
}

// ingest returns the stored book for the candidate's googleId, creating it if
// needed. created reports whether a new row was written.
func (s *DiscoveryService) ingest(ctx context.Context, candidate *entities.Book) (*entities.Book, bool, error) {
	if candidate.GoogleID != "" {
		existing, err := s.catalog.GetBookByGoogleID(ctx, candidate.GoogleID)
		if err != nil {
			return nil, false, err
		}
		if existing != nil {
			return existing, false, nil
		}
	}

	book, err := s.catalog.CreateBook(ctx, candidate)
	if errors.Is(err, store.ErrConflict) {
		// Created concurrently by another request.
		existing, lookupErr := s.catalog.GetBookByGoogleID(ctx, candidate.GoogleID)
		if lookupErr != nil || existing == nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return book, true, nil
}
