// Package catalog loads the static menu and location data files. Both
// are fetched once per process start; the service never mutates them.
package catalog

import (
	"context"
	"encoding/json"
	"os"

	"gwdining/config"
	"gwdining/internal/domain/entity"
	"gwdining/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the catalog provider, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
}

// New provides both catalog sources from the configured data files.
func New(params Params) (repository.MenuSource, repository.LocationSource) {
	c := NewFileCatalog(params.Config.Catalog.MenuPath, params.Config.Catalog.LocationsPath)

	return c, c
}

type fileCatalog struct {
	menuPath      string
	locationsPath string
}

// NewFileCatalog serves both catalogs from JSON files on disk.
func NewFileCatalog(menuPath, locationsPath string) *fileCatalog {
	return &fileCatalog{menuPath: menuPath, locationsPath: locationsPath}
}

var (
	_ repository.MenuSource     = (*fileCatalog)(nil)
	_ repository.LocationSource = (*fileCatalog)(nil)
)

// LoadMenu reads the menu item collection.
func (c *fileCatalog) LoadMenu(_ context.Context) ([]entity.MenuItem, error) {
	var items []entity.MenuItem
	if err := readJSONFile(c.menuPath, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// LoadLocations reads the dining location collection.
func (c *fileCatalog) LoadLocations(_ context.Context) ([]entity.DiningLocation, error) {
	var locations []entity.DiningLocation
	if err := readJSONFile(c.locationsPath, &locations); err != nil {
		return nil, err
	}

	return locations, nil
}

func readJSONFile(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read data file %s", path)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decode data file %s", path)
	}

	return nil
}
