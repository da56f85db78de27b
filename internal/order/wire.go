package order

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/CiaoGab/Restaurant-Order-App/internal/config"
	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
	"github.com/CiaoGab/Restaurant-Order-App/internal/order/controller"
	"github.com/CiaoGab/Restaurant-Order-App/internal/order/repository"
	"github.com/CiaoGab/Restaurant-Order-App/internal/order/usecase"
	"github.com/CiaoGab/Restaurant-Order-App/internal/render"
	"github.com/CiaoGab/Restaurant-Order-App/internal/widget"
)

type Module struct {
	Page     *controller.PageController
	API      *controller.APIController
	Sessions *repository.MemorySessionRepository
}

func NewModule(menu domain.Menu, cfg *config.Config, logger *zap.Logger) (*Module, error) {
	policy, err := widget.ParsePanelPolicy(cfg.Order.PanelPolicy)
	if err != nil {
		return nil, fmt.Errorf("order.panel_policy: %w", err)
	}

	page, err := render.NewPage()
	if err != nil {
		return nil, err
	}

	sessions := repository.NewMemorySessionRepository(cfg.Session.MaxSessions)
	uc := usecase.NewDispatchUseCase(sessions, menu, policy, logger)

	return &Module{
		Page:     controller.NewPageController(uc, page, cfg.Menu.Title, cfg.Menu.CurrencySymbol, logger),
		API:      controller.NewAPIController(uc, cfg.Menu.CurrencySymbol, logger),
		Sessions: sessions,
	}, nil
}
