package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"gwdining/internal/domain/entity"
	domainerrors "gwdining/internal/domain/errors"
	"gwdining/internal/domain/repository"
	"gwdining/internal/usecase"
	"gwdining/internal/util"
)

// menuControls is one snapshot of the location/meal/search controls.
type menuControls struct {
	location string
	meal     string
	search   string
}

type menuService struct {
	mu      sync.Mutex
	catalog []entity.MenuItem
	loadErr error

	// staged holds control edits that have not been committed by a
	// search; committed plus tag define the visible subset.
	staged    menuControls
	committed menuControls
	tag       string
}

// NewMenuService creates a new menu service instance. The catalog is
// fetched once here; a load failure is remembered and reported by every
// subsequent call instead of failing startup.
func NewMenuService(ctx context.Context, source repository.MenuSource, logger *slog.Logger) usecase.MenuUsecase {
	s := &menuService{}

	catalog, err := source.LoadMenu(ctx)
	if err != nil {
		logger.Error("Failed to load menu catalog", slog.Any("error", err))
		s.loadErr = err

		return s
	}

	s.catalog = catalog
	logger.Info("Menu catalog loaded", slog.Int("items", len(catalog)))

	return s
}

// GetMenu returns the visible items under the committed filters.
func (s *menuService) GetMenu(_ context.Context) (*usecase.MenuView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.render()
}

// UpdateControls stages control values. The visible subset is untouched
// until the next search commit.
func (s *menuService) UpdateControls(_ context.Context, input *usecase.MenuControlsInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.staged = menuControls{
		location: util.NormalizeFilter(input.Location),
		meal:     util.NormalizeFilter(input.Meal),
		search:   util.NormalizeFilter(input.Search),
	}

	return nil
}

// ApplySearch commits the staged controls and recomputes the subset.
func (s *menuService) ApplySearch(_ context.Context) (*usecase.MenuView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.committed = s.staged

	return s.render()
}

// SetTag commits a tag filter immediately, on top of the last committed
// controls.
func (s *menuService) SetTag(_ context.Context, input *usecase.MenuTagInput) (*usecase.MenuView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tag = util.NormalizeFilter(input.Tag)

	return s.render()
}

// render recomputes the view under the held lock. Catalog order is
// preserved; all four predicates AND together.
func (s *menuService) render() (*usecase.MenuView, error) {
	if s.loadErr != nil {
		return nil, domainerrors.ErrMenuUnavailable
	}

	items := make([]entity.MenuItem, 0, len(s.catalog))
	for _, item := range s.catalog {
		if s.matches(&item) {
			items = append(items, item)
		}
	}

	return &usecase.MenuView{
		Title: s.title(len(items)),
		Count: len(items),
		Items: items,
	}, nil
}

func (s *menuService) matches(item *entity.MenuItem) bool {
	if !util.FilterDisabled(s.committed.location) &&
		!strings.EqualFold(item.Location, s.committed.location) {
		return false
	}
	if !util.FilterDisabled(s.committed.meal) &&
		!strings.EqualFold(item.Meal, s.committed.meal) {
		return false
	}
	if !util.FilterDisabled(s.tag) && !item.HasTag(entity.MenuTag(s.tag)) {
		return false
	}
	if s.committed.search != "" {
		haystack := strings.ToLower(item.Name + " " + item.Description)
		if !strings.Contains(haystack, s.committed.search) {
			return false
		}
	}

	return true
}

func (s *menuService) title(count int) string {
	if count == 0 {
		return "No items found"
	}
	if count == 1 {
		return "1 item found"
	}

	return fmt.Sprintf("%d items found", count)
}
