package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/SpinEconomy_Go/internal/catalog"
	"github.com/osse101/SpinEconomy_Go/internal/shop"
	"github.com/osse101/SpinEconomy_Go/internal/spinner"
)

// Catalogs holds the live shop and reward catalogs and the file backing them.
type Catalogs struct {
	File    *catalog.FileStore
	Shop    *shop.Catalog
	Rewards *spinner.Catalog
}

// LoadCatalogs reads the catalog file at path, writing the built-in defaults
// first when it does not exist.
func LoadCatalogs(ctx context.Context, path string) (*Catalogs, error) {
	store := catalog.NewFileStore(path)

	file, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	shopCatalog, err := shop.NewCatalog(file.Shop)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidShopCatalog, err)
	}

	rewards, err := spinner.NewCatalog(file.Rewards)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidRewardCatalog, err)
	}

	slog.Info(LogMsgCatalogsLoaded,
		"path", path,
		"shop_items", len(file.Shop),
		"categories", len(file.Rewards))

	return &Catalogs{File: store, Shop: shopCatalog, Rewards: rewards}, nil
}
