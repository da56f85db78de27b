package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
	"github.com/CiaoGab/Restaurant-Order-App/internal/widget"
)

type SessionRepository interface {
	Create(ctx context.Context, state widget.State) (string, error)
	FindByID(ctx context.Context, id string) (widget.State, error)
	Update(ctx context.Context, id string, fn func(widget.State) (widget.State, error)) (widget.State, error)
}

type DispatchUseCase struct {
	sessions SessionRepository
	menu     domain.Menu
	policy   widget.PanelPolicy
	logger   *zap.Logger
}

func NewDispatchUseCase(sessions SessionRepository, menu domain.Menu, policy widget.PanelPolicy, logger *zap.Logger) *DispatchUseCase {
	return &DispatchUseCase{
		sessions: sessions,
		menu:     menu,
		policy:   policy,
		logger:   logger,
	}
}

// Start opens a fresh page session: empty order, everything hidden.
func (uc *DispatchUseCase) Start(ctx context.Context) (string, widget.State, error) {
	state := widget.New(uc.menu, uc.policy)

	id, err := uc.sessions.Create(ctx, state)
	if err != nil {
		return "", widget.State{}, err
	}

	uc.logger.Info("page session started", zap.String("sessionId", id), zap.Int("menuItems", len(uc.menu)))
	return id, state, nil
}

func (uc *DispatchUseCase) Get(ctx context.Context, sessionID string) (widget.State, error) {
	return uc.sessions.FindByID(ctx, sessionID)
}

// Dispatch reduces action against the session's state and stores the result.
func (uc *DispatchUseCase) Dispatch(ctx context.Context, sessionID string, action widget.Action) (widget.State, error) {
	logger := uc.logger.With(zap.String("sessionId", sessionID))
	if action != nil {
		logger = logger.With(zap.String("action", action.Kind()))
	}

	state, err := uc.sessions.Update(ctx, sessionID, func(s widget.State) (widget.State, error) {
		return widget.Reduce(s, action)
	})
	if err != nil {
		logger.Warn("action rejected", zap.Error(err))
		return widget.State{}, err
	}

	logger.Info("action applied",
		zap.Int("lines", len(state.Lines)),
		zap.Bool("panelVisible", state.PanelVisible),
		zap.Bool("modalOpen", state.ModalOpen),
	)
	return state, nil
}
