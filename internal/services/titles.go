package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/desertthunder/wlx/internal/models"
	"github.com/desertthunder/wlx/internal/repositories"
	"github.com/desertthunder/wlx/internal/shared"
)

// TitleService gates writes to the catalog with type-enum validation.
type TitleService struct {
	titles *repositories.TitleRepository
}

// NewTitleService creates a new [TitleService].
func NewTitleService(titles *repositories.TitleRepository) *TitleService {
	return &TitleService{titles: titles}
}

// Add inserts a catalog entry. The type is folded case-insensitively into
// {movie, show, anime} and stored lowercase.
func (s *TitleService) Add(ctx context.Context, name, titleType, genre string) (*models.Title, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}

	parsed, err := models.ParseTitleType(titleType)
	if err != nil {
		return nil, err
	}

	return s.titles.Create(ctx, name, parsed, strings.TrimSpace(genre))
}

// Get fetches a title by ID, failing with [shared.ErrTitleNotFound] when absent.
func (s *TitleService) Get(ctx context.Context, id string) (*models.Title, error) {
	title, err := s.titles.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if title == nil {
		return nil, fmt.Errorf("%w: %s", shared.ErrTitleNotFound, id)
	}
	return title, nil
}

// List returns the whole catalog.
func (s *TitleService) List(ctx context.Context) ([]models.Title, error) {
	return s.titles.List(ctx)
}

// Search matches the keyword against title names, case-insensitively.
// Result order is unspecified.
func (s *TitleService) Search(ctx context.Context, keyword string) ([]models.Title, error) {
	return s.titles.SearchByTitle(ctx, keyword)
}

// SearchAll matches the keyword against title names and genres.
func (s *TitleService) SearchAll(ctx context.Context, keyword string) ([]models.Title, error) {
	return s.titles.SearchAny(ctx, keyword)
}

// Genres returns the distinct genres present in the catalog.
func (s *TitleService) Genres(ctx context.Context) ([]string, error) {
	return s.titles.Genres(ctx)
}

// Update applies the supplied fields to a title. The type is validated
// only when supplied.
func (s *TitleService) Update(ctx context.Context, id string, upd models.TitleUpdate) (*models.Title, error) {
	if upd.Empty() {
		return nil, shared.ErrNoFieldsToUpdate
	}

	var parsed *models.TitleType
	if upd.Type != nil {
		t, err := models.ParseTitleType(*upd.Type)
		if err != nil {
			return nil, err
		}
		parsed = &t
	}

	title, err := s.titles.Update(ctx, id, upd.Name, parsed, upd.Genre)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", shared.ErrTitleNotFound, id)
		}
		return nil, err
	}
	return title, nil
}

// Delete removes a title. Watchlist entries referencing it are left
// dangling; the original design has no guard here either.
func (s *TitleService) Delete(ctx context.Context, id string) error {
	if err := s.titles.Delete(ctx, id); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return fmt.Errorf("%w: %s", shared.ErrTitleNotFound, id)
		}
		return err
	}
	return nil
}
