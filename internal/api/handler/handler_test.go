package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-finance-api/internal/api/handler/router"
	"github.com/vfg2006/store-finance-api/internal/domain"
	"github.com/vfg2006/store-finance-api/pkg/apiErrors"
	"github.com/vfg2006/store-finance-api/pkg/log"
	"github.com/vfg2006/store-finance-api/pkg/middleware"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

type fakeClosingService struct {
	created *domain.CashClosing
	filter  domain.CashClosingFilter
	err     error
}

func (f *fakeClosingService) List(ctx context.Context, p *domain.Principal, filter domain.CashClosingFilter) ([]*domain.CashClosing, error) {
	f.filter = filter
	return []*domain.CashClosing{}, f.err
}

func (f *fakeClosingService) Summary(ctx context.Context, p *domain.Principal, filter domain.CashClosingFilter) (*domain.CashClosingSummary, error) {
	f.filter = filter
	return &domain.CashClosingSummary{}, f.err
}

func (f *fakeClosingService) Create(ctx context.Context, p *domain.Principal, c *domain.CashClosing) (*domain.CashClosing, error) {
	f.created = c
	return c, f.err
}

func (f *fakeClosingService) Update(ctx context.Context, p *domain.Principal, c *domain.CashClosing) (*domain.CashClosing, error) {
	return c, f.err
}

func (f *fakeClosingService) Delete(ctx context.Context, p *domain.Principal, id string) error {
	return f.err
}

type fakeRankingService struct {
	month string
}

func (f *fakeRankingService) GetStoreRanking(ctx context.Context, p *domain.Principal, month string) (*domain.StoreRankingResponse, error) {
	f.month = month
	return &domain.StoreRankingResponse{}, nil
}

func (f *fakeRankingService) GetSnapshot(ctx context.Context, p *domain.Principal, month string) (*domain.StoreRankingResponse, error) {
	return nil, domain.NewOperationError(domain.ErrNotFound, apiErrors.ErrResourceNotFound, "Ranking não gravado")
}

func (f *fakeRankingService) Compute(ctx context.Context, companyID, month string) ([]*domain.StoreRankingItem, error) {
	return nil, nil
}

func (f *fakeRankingService) Snapshot(ctx context.Context, companyID, month string) ([]*domain.StoreRankingItem, error) {
	return nil, nil
}

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualSync() bool {
	f.triggered++
	return true
}

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"triggered": f.triggered}
}

var (
	financeUser = &domain.Principal{UserID: "u-fin", CompanyID: "empresa-1", PrimaryRole: domain.RoleFinance}
	storeUser   = &domain.Principal{UserID: "u-loja", CompanyID: "empresa-1", StoreID: "loja-1", PrimaryRole: domain.RoleStore}
)

// serve executa a requisição pelo router com o usuário já autenticado
func serve(t *testing.T, routes []router.Route, p *domain.Principal, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	rt := router.New(router.WithRoutes(routes...))
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if p != nil {
		req = req.WithContext(middleware.WithPrincipal(req.Context(), p))
	}
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)
	return rec
}

func decodeResult(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	return result
}

func TestGetMe(t *testing.T) {
	rec := serve(t, Me(), storeUser, http.MethodGet, "/v1/me", "")

	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeResult(t, rec)
	assert.Equal(t, true, result["success"])

	data := result["data"].(map[string]any)
	assert.Equal(t, "loja-1", data["store_id"])
	assert.Len(t, data["views"], len(domain.RoleViews[domain.RoleStore]))
}

func TestGetNavigation(t *testing.T) {
	rec := serve(t, Me(), financeUser, http.MethodGet, "/v1/me/navigation", "")

	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeResult(t, rec)["data"].([]any)
	assert.Len(t, items, len(domain.Navigation(domain.RoleFinance)))
}

func TestCreateCashClosing_AcceptsDateOnly(t *testing.T) {
	service := &fakeClosingService{}
	body := `{"store_id":"loja-1","date":"2024-06-12","cash":"150.50","pix":null}`

	rec := serve(t, CashClosings(service), storeUser, http.MethodPost, "/v1/cash-closings", body)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, service.created)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), service.created.Date)
	assert.Equal(t, "150.5", service.created.Cash.Decimal.String())
	assert.False(t, service.created.Pix.Valid)
}

func TestCreateCashClosing_InvalidBody(t *testing.T) {
	rec := serve(t, CashClosings(&fakeClosingService{}), storeUser, http.MethodPost, "/v1/cash-closings", `{"date":"12/06/2024"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidRequest)
}

func TestListCashClosings_Filters(t *testing.T) {
	t.Run("Mês vira intervalo de datas", func(t *testing.T) {
		service := &fakeClosingService{}
		rec := serve(t, CashClosings(service), financeUser, http.MethodGet, "/v1/cash-closings?month=2024-02&store_id=loja-2", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "loja-2", service.filter.StoreID)
		require.NotNil(t, service.filter.StartDate)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *service.filter.StartDate)
	})

	t.Run("Mês inválido", func(t *testing.T) {
		rec := serve(t, CashClosings(&fakeClosingService{}), financeUser, http.MethodGet, "/v1/cash-closings?month=2024-13", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInvalidFormat)
	})

	t.Run("Data final anterior à inicial", func(t *testing.T) {
		rec := serve(t, CashClosings(&fakeClosingService{}), financeUser, http.MethodGet, "/v1/cash-closings/summary?start=2024-06-10&end=2024-06-01", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestServiceErrorMapping(t *testing.T) {
	service := &fakeClosingService{err: domain.NewEntityError(domain.ErrForbiddenStore, apiErrors.ErrForbiddenStore, "loja-2", "")}

	rec := serve(t, CashClosings(service), storeUser, http.MethodDelete, "/v1/cash-closings/abc", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	result := decodeResult(t, rec)
	assert.Equal(t, false, result["success"])
	apiErr := result["error"].(map[string]any)
	assert.Equal(t, apiErrors.ErrForbiddenStore, apiErr["code"])
	assert.Equal(t, map[string]any{"id": "loja-2"}, apiErr["details"])
}

func TestStoreRankingRoutes(t *testing.T) {
	service := &fakeRankingService{}

	t.Run("Loja não acessa o ranking", func(t *testing.T) {
		rec := serve(t, StoreRanking(service), storeUser, http.MethodGet, "/v1/ranking", "")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrInsufficientPrivilege)
	})

	t.Run("Financeiro consulta o mês pedido", func(t *testing.T) {
		rec := serve(t, StoreRanking(service), financeUser, http.MethodGet, "/v1/ranking?month=2024-05", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "2024-05", service.month)
	})

	t.Run("Snapshot inexistente", func(t *testing.T) {
		rec := serve(t, StoreRanking(service), financeUser, http.MethodGet, "/v1/ranking/snapshot", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCronHandlers(t *testing.T) {
	ranking := &fakeCronJob{}
	sweep := &fakeCronJob{}
	jobs := map[string]CronJob{
		CronJobTypeRankingSnapshot: ranking,
		CronJobTypeOverdueSweep:    sweep,
	}
	routes := []router.Route{
		{Path: "/v1/cron/:type/run", Method: http.MethodPost, Handler: runCronJob(jobs)},
		{Path: "/v1/cron/status", Method: http.MethodGet, Handler: getCronStatus(jobs)},
	}
	admin := &domain.Principal{PrimaryRole: domain.RoleAdmin}

	rec := serve(t, routes, admin, http.MethodPost, "/v1/cron/ranking-snapshot/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 1, ranking.triggered)
	assert.Equal(t, 0, sweep.triggered)

	rec = serve(t, routes, admin, http.MethodPost, "/v1/cron/all/run", "")
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, 2, ranking.triggered)
	assert.Equal(t, 1, sweep.triggered)

	rec = serve(t, routes, admin, http.MethodPost, "/v1/cron/meta/run", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, routes, admin, http.MethodGet, "/v1/cron/status", "")
	require.Equal(t, http.StatusOK, rec.Code)
	data := decodeResult(t, rec)["data"].(map[string]any)
	assert.Contains(t, data, CronJobTypeRankingSnapshot)
	assert.Contains(t, data, CronJobTypeOverdueSweep)
}

func TestCronRoutes_AdminOnly(t *testing.T) {
	rec := serve(t, CronJobs(CronJobServices{}), financeUser, http.MethodGet, "/v1/cron/status", "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	rec := serve(t, Healthcheck(nil), nil, http.MethodGet, "/v1/inexistente", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrResourceNotFound)
}

type fakePinger struct{ err error }

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func TestHealthcheck(t *testing.T) {
	t.Run("Banco disponível", func(t *testing.T) {
		rec := serve(t, Healthcheck(fakePinger{}), nil, http.MethodGet, "/healthcheck", "")

		require.Equal(t, http.StatusOK, rec.Code)
		data := decodeResult(t, rec)["data"].(map[string]any)
		assert.Equal(t, "ok", data["status"])
		assert.Equal(t, "ok", data["database"])
	})

	t.Run("Banco indisponível", func(t *testing.T) {
		rec := serve(t, Healthcheck(fakePinger{err: errors.New("conexão recusada")}), nil, http.MethodGet, "/healthcheck", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), apiErrors.ErrDatabaseOperation)
	})
}

func TestMethodNotAllowed(t *testing.T) {
	rec := serve(t, Healthcheck(nil), nil, http.MethodPost, "/healthcheck", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), apiErrors.ErrMethodNotAllowed)
}

func TestWriteServiceError_LogsCorrelationID(t *testing.T) {
	hook := test.NewLocal(logrus.StandardLogger())
	defer hook.Reset()

	ctx, correlationID := log.WithCorrelationID(context.Background())
	req := httptest.NewRequest(http.MethodGet, "/v1/cash-closings", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	writeServiceError(rec, req, errors.New("conexão perdida"), "Erro ao listar fechamentos")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, correlationID, hook.LastEntry().Data["correlation_id"])
}
