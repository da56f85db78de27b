package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/CiaoGab/Restaurant-Order-App/internal/domain"
	"github.com/CiaoGab/Restaurant-Order-App/internal/order/repository"
	"github.com/CiaoGab/Restaurant-Order-App/internal/order/usecase"
	"github.com/CiaoGab/Restaurant-Order-App/internal/render"
	"github.com/CiaoGab/Restaurant-Order-App/internal/widget"
)

type mockOrderUseCase struct {
	StartFunc    func(ctx context.Context) (string, widget.State, error)
	GetFunc      func(ctx context.Context, sessionID string) (widget.State, error)
	DispatchFunc func(ctx context.Context, sessionID string, action widget.Action) (widget.State, error)
}

func (m *mockOrderUseCase) Start(ctx context.Context) (string, widget.State, error) {
	return m.StartFunc(ctx)
}

func (m *mockOrderUseCase) Get(ctx context.Context, sessionID string) (widget.State, error) {
	return m.GetFunc(ctx, sessionID)
}

func (m *mockOrderUseCase) Dispatch(ctx context.Context, sessionID string, action widget.Action) (widget.State, error) {
	return m.DispatchFunc(ctx, sessionID, action)
}

func testMenu() domain.Menu {
	return domain.Menu{
		{Name: "Salad", Ingredients: "lettuce, tomato", Price: decimal.NewFromInt(8), ImgURL: "images/salad.png"},
		{Name: "Soup", Ingredients: "broth, noodles", Price: decimal.NewFromInt(5), ImgURL: "images/soup.png"},
	}
}

func newRealUseCase(policy widget.PanelPolicy) *usecase.DispatchUseCase {
	return usecase.NewDispatchUseCase(repository.NewMemorySessionRepository(0), testMenu(), policy, zap.NewNop())
}

func newPageRouter(t *testing.T, uc OrderUseCase) http.Handler {
	t.Helper()
	page, err := render.NewPage()
	require.NoError(t, err)

	ctrl := NewPageController(uc, page, "Jimmy's Diner", "$", zap.NewNop())

	r := chi.NewRouter()
	r.Get("/", ctrl.HandleStart)
	r.Route("/orders/{sessionId}", func(r chi.Router) {
		r.Get("/", ctrl.HandleShow)
		r.Post("/items/{menuIndex}", ctrl.HandleAdd)
		r.Post("/lines/{lineId}/remove", ctrl.HandleRemove)
		r.Post("/modal/open", ctrl.HandleOpenModal)
		r.Post("/modal/close", ctrl.HandleCloseModal)
		r.Post("/pay", ctrl.HandlePay)
	})
	return r
}

func newAPIRouter(uc OrderUseCase) http.Handler {
	ctrl := NewAPIController(uc, "$", zap.NewNop())

	r := chi.NewRouter()
	r.Post("/api/sessions", ctrl.HandleCreateSession)
	r.Get("/api/sessions/{sessionId}", ctrl.HandleGetSession)
	r.Post("/api/sessions/{sessionId}/actions", ctrl.HandleDispatch)
	return r
}

func do(h http.Handler, method, target string, form url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if form != nil {
		req = httptest.NewRequest(method, target, strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func doJSON(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func parseDoc(t *testing.T, rec *httptest.ResponseRecorder) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(rec.Body)
	require.NoError(t, err)
	return doc
}

func displayOf(doc *goquery.Document, sel string) string {
	style, _ := doc.Find(sel).Attr("style")
	return strings.TrimPrefix(style, "display: ")
}
