package controller

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/CiaoGab/Restaurant-Order-App/internal/errors"
	"github.com/CiaoGab/Restaurant-Order-App/internal/render"
	"github.com/CiaoGab/Restaurant-Order-App/internal/widget"
)

const traceIDHeader = "X-Trace-Id"

// PageController serves the HTML order page. Every button posts to one of
// its handlers, which dispatches an action and redirects back to the page.
type PageController struct {
	useCase        OrderUseCase
	page           *render.Page
	title          string
	currencySymbol string
	logger         *zap.Logger
}

func NewPageController(useCase OrderUseCase, page *render.Page, title, currencySymbol string, logger *zap.Logger) *PageController {
	return &PageController{
		useCase:        useCase,
		page:           page,
		title:          title,
		currencySymbol: currencySymbol,
		logger:         logger,
	}
}

func (c *PageController) HandleStart(w http.ResponseWriter, r *http.Request) {
	sessionID, _, err := c.useCase.Start(r.Context())
	if err != nil {
		c.writeError(w, c.logger, err)
		return
	}
	http.Redirect(w, r, orderPath(sessionID), http.StatusSeeOther)
}

func (c *PageController) HandleShow(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionId")
	logger := c.logger.With(zap.String("sessionId", sessionID))

	state, err := c.useCase.Get(r.Context(), sessionID)
	if apperrors.IsSessionNotFound(err) {
		c.restart(w, r, logger)
		return
	}
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	// Render page
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	err = c.page.Render(w, render.PageData{
		Title:    c.title,
		BasePath: orderPath(sessionID),
		View:     render.Build(state, c.currencySymbol),
	})
	if err != nil {
		c.writeError(w, logger, apperrors.NewInternalError("rendering order page", err))
	}
}

func (c *PageController) HandleAdd(w http.ResponseWriter, r *http.Request) {
	// Parse menuIndex from path
	menuIndex, err := strconv.Atoi(chi.URLParam(r, "menuIndex"))
	if err != nil || menuIndex < 0 {
		c.writeError(w, c.logger, apperrors.NewValidationError("invalid menuIndex", apperrors.ValidationDetail{
			Field:   "menuIndex",
			Message: "menuIndex must be a non-negative integer",
		}))
		return
	}
	c.dispatch(w, r, widget.Add{MenuIndex: menuIndex})
}

func (c *PageController) HandleRemove(w http.ResponseWriter, r *http.Request) {
	c.dispatch(w, r, widget.Remove{LineID: chi.URLParam(r, "lineId")})
}

func (c *PageController) HandleOpenModal(w http.ResponseWriter, r *http.Request) {
	c.dispatch(w, r, widget.OpenModal{})
}

func (c *PageController) HandleCloseModal(w http.ResponseWriter, r *http.Request) {
	c.dispatch(w, r, widget.CloseModal{})
}

func (c *PageController) HandlePay(w http.ResponseWriter, r *http.Request) {
	// Parse form body; the name is taken as typed
	if err := r.ParseForm(); err != nil {
		c.writeError(w, c.logger, apperrors.NewValidationError("invalid form body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be a valid form",
		}))
		return
	}
	c.dispatch(w, r, widget.Pay{Name: r.PostFormValue("name")})
}

func (c *PageController) dispatch(w http.ResponseWriter, r *http.Request, action widget.Action) {
	sessionID := chi.URLParam(r, "sessionId")
	logger := c.logger.With(zap.String("sessionId", sessionID))

	// Call use case
	_, err := c.useCase.Dispatch(r.Context(), sessionID, action)
	if apperrors.IsSessionNotFound(err) {
		c.restart(w, r, logger)
		return
	}
	if err != nil {
		c.writeError(w, logger, err)
		return
	}

	// Post/redirect/get back to the page
	http.Redirect(w, r, orderPath(sessionID), http.StatusSeeOther)
}

// restart sends a browser whose session expired to "/" for a fresh one.
func (c *PageController) restart(w http.ResponseWriter, r *http.Request, logger *zap.Logger) {
	logger.Info("session expired, starting over", zap.String("path", r.URL.Path))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (c *PageController) writeError(w http.ResponseWriter, logger *zap.Logger, err error) {
	traceID := uuid.NewString()
	logger = logger.With(zap.String("traceId", traceID))

	class := classify(err)
	if class.status == http.StatusInternalServerError {
		logger.Error("unexpected error", zap.Error(err))
	} else {
		logger.Warn("request rejected", zap.Int("status", class.status), zap.String("code", class.code), zap.Error(err))
	}

	w.Header().Set(traceIDHeader, traceID)
	http.Error(w, fmt.Sprintf("%s (traceId %s)", class.message, traceID), class.status)
}

func orderPath(sessionID string) string {
	return "/orders/" + sessionID
}
