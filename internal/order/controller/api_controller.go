package controller

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/CiaoGab/Restaurant-Order-App/internal/dto"
	apperrors "github.com/CiaoGab/Restaurant-Order-App/internal/errors"
	"github.com/CiaoGab/Restaurant-Order-App/internal/render"
	"github.com/CiaoGab/Restaurant-Order-App/internal/widget"
)

// APIController exposes the same page sessions as JSON, with actions sent
// as explicit messages.
type APIController struct {
	useCase        OrderUseCase
	currencySymbol string
	logger         *zap.Logger
}

func NewAPIController(useCase OrderUseCase, currencySymbol string, logger *zap.Logger) *APIController {
	return &APIController{
		useCase:        useCase,
		currencySymbol: currencySymbol,
		logger:         logger,
	}
}

func (c *APIController) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	sessionID, state, err := c.useCase.Start(r.Context())
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusCreated, c.toStateResponse(traceID, sessionID, state))
}

func (c *APIController) HandleGetSession(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	sessionID := chi.URLParam(r, "sessionId")
	logger := c.logger.With(zap.String("traceId", traceID), zap.String("sessionId", sessionID))

	state, err := c.useCase.Get(r.Context(), sessionID)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, c.toStateResponse(traceID, sessionID, state))
}

func (c *APIController) HandleDispatch(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	sessionID := chi.URLParam(r, "sessionId")
	logger := c.logger.With(zap.String("traceId", traceID), zap.String("sessionId", sessionID))

	// Decode request body
	var req dto.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		c.handleError(w, traceID, apperrors.NewValidationError("invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		}), logger)
		return
	}

	// Map the message onto a widget action
	action, err := toAction(req)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	// Call use case
	state, err := c.useCase.Dispatch(r.Context(), sessionID, action)
	if err != nil {
		c.handleError(w, traceID, err, logger)
		return
	}

	c.writeJSON(w, http.StatusOK, c.toStateResponse(traceID, sessionID, state))
}

func toAction(req dto.ActionRequest) (widget.Action, error) {
	switch req.Type {
	case widget.KindAdd:
		if req.MenuIndex == nil || *req.MenuIndex < 0 {
			return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
				Field:   "menuIndex",
				Message: "menuIndex must be a non-negative integer",
			})
		}
		return widget.Add{MenuIndex: *req.MenuIndex}, nil
	case widget.KindRemove:
		if req.LineID == "" {
			return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
				Field:   "lineId",
				Message: "lineId is required",
			})
		}
		return widget.Remove{LineID: req.LineID}, nil
	case widget.KindOpenModal:
		return widget.OpenModal{}, nil
	case widget.KindCloseModal:
		return widget.CloseModal{}, nil
	case widget.KindPay:
		return widget.Pay{Name: req.Name}, nil
	default:
		msg := "type must be one of add, remove, open_modal, close_modal, pay"
		if req.Type == "" {
			msg = "type is required"
		}
		return nil, apperrors.NewValidationError("validation failed", apperrors.ValidationDetail{
			Field:   "type",
			Message: msg,
		})
	}
}

func (c *APIController) toStateResponse(traceID, sessionID string, state widget.State) dto.StateResponse {
	view := render.Build(state, c.currencySymbol)

	cards := make([]dto.CardDTO, len(view.Cards))
	for i, card := range view.Cards {
		cards[i] = dto.CardDTO{
			MenuIndex:   card.MenuIndex,
			Name:        card.Name,
			Ingredients: card.Ingredients,
			Price:       card.Price,
			ImgURL:      card.ImgURL,
		}
	}

	lines := make([]dto.LineItemDTO, len(view.Lines))
	for i, line := range view.Lines {
		lines[i] = dto.LineItemDTO{
			ID:    line.ID,
			Name:  line.Name,
			Price: line.Price,
		}
	}

	return dto.StateResponse{
		TraceID:   traceID,
		SessionID: sessionID,
		Cards:     cards,
		Order: dto.OrderDTO{
			Visible: view.PanelVisible,
			Lines:   lines,
		},
		Modal:     dto.VisibleDTO{Visible: view.ModalVisible},
		Success:   dto.SuccessDTO{Visible: view.SuccessVisible, Text: view.SuccessText},
		Timestamp: time.Now().UTC(),
	}
}

func (c *APIController) handleError(w http.ResponseWriter, traceID string, err error, logger *zap.Logger) {
	class := classify(err)
	if class.status == http.StatusInternalServerError {
		logger.Error("unexpected error", zap.Error(err))
	} else {
		logger.Warn("request rejected", zap.Int("status", class.status), zap.String("code", class.code), zap.Error(err))
	}

	w.Header().Set(traceIDHeader, traceID)
	c.writeJSON(w, class.status, dto.ErrorResponse{
		TraceID:   traceID,
		Status:    class.status,
		Code:      class.code,
		Message:   class.message,
		Details:   class.details,
		Timestamp: time.Now().UTC(),
	})
}

func (c *APIController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
