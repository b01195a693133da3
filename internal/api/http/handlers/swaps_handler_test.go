package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/shiftswap-service/internal/api/http"
	"github.com/spec-kit/shiftswap-service/internal/api/http/handlers"
	"github.com/spec-kit/shiftswap-service/internal/domain"
	"github.com/spec-kit/shiftswap-service/internal/events"
	"github.com/spec-kit/shiftswap-service/internal/observability"
	"github.com/spec-kit/shiftswap-service/internal/ranking"
	"github.com/spec-kit/shiftswap-service/internal/service"
)

type stubShiftRepo struct {
	shifts map[int64]*domain.Shift
}

func (s *stubShiftRepo) Create(ctx context.Context, shift *domain.Shift) error { return nil }
func (s *stubShiftRepo) DeleteAll(ctx context.Context) error                   { return nil }
func (s *stubShiftRepo) GetByID(ctx context.Context, id int64) (*domain.Shift, error) {
	shift, ok := s.shifts[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return shift, nil
}

type stubColleagueRepo struct {
	colleagues []domain.Colleague
}

func (s *stubColleagueRepo) Create(ctx context.Context, c *domain.Colleague) error { return nil }
func (s *stubColleagueRepo) DeleteAll(ctx context.Context) error                   { return nil }
func (s *stubColleagueRepo) ListByRole(ctx context.Context, role string) ([]domain.Colleague, error) {
	var result []domain.Colleague
	for _, c := range s.colleagues {
		if c.Role == role {
			result = append(result, c)
		}
	}
	return result, nil
}

type stubSwapRepo struct {
	created []*domain.SwapRequest
}

func (s *stubSwapRepo) Create(ctx context.Context, request *domain.SwapRequest) error {
	request.ID = int64(len(s.created) + 1)
	s.created = append(s.created, request)
	return nil
}
func (s *stubSwapRepo) GetByID(ctx context.Context, id int64) (*domain.SwapRequest, error) {
	for _, r := range s.created {
		if r.ID == id {
			return r, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type stubRanker struct {
	result domain.RankingResult
}

func (s *stubRanker) Rank(ctx context.Context, req ranking.Request) (domain.RankingResult, error) {
	return s.result, nil
}

func newTestApp(t *testing.T, ranker ranking.Ranker, swaps *stubSwapRepo) *fiber.App {
	t.Helper()
	logger := zap.NewNop()
	swapService := service.NewSwapService(service.SwapDependencies{
		ShiftRepo: &stubShiftRepo{shifts: map[int64]*domain.Shift{
			10: {ID: 10, Role: "Waiter", ColleagueID: 1},
		}},
		ColleagueRepo: &stubColleagueRepo{colleagues: []domain.Colleague{
			{ID: 1, Name: "Alice", Role: "Waiter", HoursLast7Days: 35},
			{ID: 2, Name: "Bob", Role: "Waiter", HoursLast7Days: 55},
			{ID: 3, Name: "Charlie", Role: "Waiter", HoursLast7Days: 10},
		}},
		SwapRepo:   swaps,
		Ranker:     ranker,
		Dispatcher: events.NewInMemoryDispatcher(logger),
		Logger:     logger,
	})

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler("shiftswap-service", "test", nil, nil),
		Swaps:  handlers.NewSwapsHandler(swapService),
	})
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (*http.Response, map[string]any) {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp, decodeBody(t, resp)
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]any
	require.NoError(t, json.Unmarshal(raw, &payload))
	return payload
}

func TestRequestSwapEndpoint(t *testing.T) {
	t.Run("successful swap returns the top match", func(t *testing.T) {
		ranker := &stubRanker{result: domain.RankingResult{RankedColleagues: []domain.RankedCandidate{
			{ColleagueID: 3, Name: "Charlie", Score: 0.95, Reason: "Freshest employee, low weekly hours"},
		}}}
		app := newTestApp(t, ranker, &stubSwapRepo{})

		resp, body := postJSON(t, app, "/api/v1/swaps/request", `{"requestingUserId":1,"shiftId":10}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "Swap requested successfully.", body["message"])
		assert.Equal(t, "PENDING", body["status"])
		assert.Equal(t, "Charlie", body["topMatchName"])
		assert.Equal(t, "Freshest employee, low weekly hours", body["aiReasoning"])
	})

	t.Run("degraded ranking still records the swap", func(t *testing.T) {
		swaps := &stubSwapRepo{}
		app := newTestApp(t, &stubRanker{}, swaps)

		resp, body := postJSON(t, app, "/api/v1/swaps/request", `{"requestingUserId":1,"shiftId":10}`)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "PENDING", body["status"])
		assert.Equal(t, "None", body["topMatchName"])
		assert.Equal(t, "AI Service unavailable", body["aiReasoning"])
		require.Len(t, swaps.created, 1)
		assert.Equal(t, "{}", swaps.created[0].RankingMetadata)
	})

	t.Run("unknown shift is a 404 with error envelope", func(t *testing.T) {
		app := newTestApp(t, &stubRanker{}, &stubSwapRepo{})

		resp, body := postJSON(t, app, "/api/v1/swaps/request", `{"requestingUserId":1,"shiftId":999}`)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		errObj, ok := body["error"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "NOT_FOUND", errObj["code"])
	})

	t.Run("invalid payload is a 400", func(t *testing.T) {
		app := newTestApp(t, &stubRanker{}, &stubSwapRepo{})

		resp, _ := postJSON(t, app, "/api/v1/swaps/request", `{"requestingUserId":0,"shiftId":-1}`)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetSwapEndpoint(t *testing.T) {
	t.Run("returns the persisted record with its ranking", func(t *testing.T) {
		ranker := &stubRanker{result: domain.RankingResult{RankedColleagues: []domain.RankedCandidate{
			{ColleagueID: 3, Name: "Charlie", Score: 0.95, Reason: "Freshest employee, low weekly hours"},
		}}}
		app := newTestApp(t, ranker, &stubSwapRepo{})
		_, _ = postJSON(t, app, "/api/v1/swaps/request", `{"requestingUserId":1,"shiftId":10}`)

		req, err := http.NewRequest(http.MethodGet, "/api/v1/swaps/1", nil)
		require.NoError(t, err)
		resp, err := app.Test(req)
		require.NoError(t, err)
		body := decodeBody(t, resp)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "PENDING", body["status"])
		rankingObj, ok := body["ranking"].(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, rankingObj["rankedColleagues"])
	})

	t.Run("unknown id is a 404", func(t *testing.T) {
		app := newTestApp(t, &stubRanker{}, &stubSwapRepo{})

		req, err := http.NewRequest(http.MethodGet, "/api/v1/swaps/42", nil)
		require.NoError(t, err)
		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestRootEndpoint(t *testing.T) {
	app := newTestApp(t, &stubRanker{}, &stubSwapRepo{})

	req, err := http.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, err)
	resp, err := app.Test(req)
	require.NoError(t, err)
	body := decodeBody(t, resp)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "online", body["status"])
	assert.Equal(t, "shiftswap-service", body["service"])
}
