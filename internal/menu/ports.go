package menu

import (
	"context"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
)

// Repository supplies the menu once at startup.
type Repository interface {
	FindAll(ctx context.Context) (domain.Menu, error)
}
