package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/CiaoGab/Restaurant-Order-App/internal/render"
)

type PageController interface {
	HandleStart(w http.ResponseWriter, r *http.Request)
	HandleShow(w http.ResponseWriter, r *http.Request)
	HandleAdd(w http.ResponseWriter, r *http.Request)
	HandleRemove(w http.ResponseWriter, r *http.Request)
	HandleOpenModal(w http.ResponseWriter, r *http.Request)
	HandleCloseModal(w http.ResponseWriter, r *http.Request)
	HandlePay(w http.ResponseWriter, r *http.Request)
}

type APIController interface {
	HandleCreateSession(w http.ResponseWriter, r *http.Request)
	HandleGetSession(w http.ResponseWriter, r *http.Request)
	HandleDispatch(w http.ResponseWriter, r *http.Request)
}

type MenuController interface {
	HandleExport(w http.ResponseWriter, r *http.Request)
}

func NewRouter(page PageController, api APIController, menu MenuController, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))

	r.Handle("/static/*", http.StripPrefix("/static/", render.StaticHandler()))
	r.Get("/menu.xlsx", menu.HandleExport)

	r.Get("/", page.HandleStart)
	r.Route("/orders/{sessionId}", func(r chi.Router) {
		r.Get("/", page.HandleShow)
		r.Post("/items/{menuIndex}", page.HandleAdd)
		r.Post("/lines/{lineId}/remove", page.HandleRemove)
		r.Post("/modal/open", page.HandleOpenModal)
		r.Post("/modal/close", page.HandleCloseModal)
		r.Post("/pay", page.HandlePay)
	})

	r.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", api.HandleCreateSession)
		r.Get("/{sessionId}", api.HandleGetSession)
		r.Post("/{sessionId}/actions", api.HandleDispatch)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
				zap.String("requestId", middleware.GetReqID(r.Context())),
			)
		})
	}
}
