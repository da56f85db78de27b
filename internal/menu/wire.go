package menu

import (
	"context"
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/CiaoGab/Restaurant-Order-App/internal/config"
	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
	"github.com/CiaoGab/Restaurant-Order-App/internal/menu/repository"
)

// NewRepository picks the menu source named by cfg.Source. db is only used
// by the "mysql" source and may be nil otherwise.
func NewRepository(cfg config.MenuConfig, db *sql.DB) (Repository, error) {
	switch cfg.Source {
	case "", "static":
		return repository.NewStaticRepository(repository.DefaultMenu()), nil
	case "yaml":
		return repository.NewYAMLRepository(cfg.Path), nil
	case "xlsx":
		return repository.NewXLSXRepository(cfg.Path), nil
	case "mysql":
		if db == nil {
			return nil, fmt.Errorf("menu source mysql needs a database connection")
		}
		return repository.NewMySQLRepository(db), nil
	default:
		return nil, fmt.Errorf("unknown menu source %q", cfg.Source)
	}
}

// Load reads the menu once. The returned slice is shared by every page
// session and is never written to afterwards.
func Load(ctx context.Context, repo Repository, logger *zap.Logger) (domain.Menu, error) {
	items, err := repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading menu: %w", err)
	}
	if len(items) == 0 {
		logger.Warn("menu is empty")
	}
	logger.Info("menu loaded", zap.Int("items", len(items)))
	return items, nil
}
