package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"accessengine-backend/application/queries"
	appservices "accessengine-backend/application/services"
	"accessengine-backend/domain/core/valueobjects"
	"accessengine-backend/infrastructure/config"
	"accessengine-backend/infrastructure/di"
	pkgerrors "accessengine-backend/pkg/errors"
)

// apiFixture serves the fully wired HTTP surface backed by a memory
// container, the same shape cmd/api assembles in production.
type apiFixture struct {
	container *di.Container
	handler   http.Handler
}

func testConfig() *config.Config {
	return &config.Config{
		ServerAddress:      ":0",
		Environment:        "test",
		PersistenceDriver:  "memory",
		AWSRegion:          "us-west-2",
		GenerateTimeout:    5 * time.Second,
		RateLimitPerMinute: 1000,
		LogLevel:           "error",
		EnableCORS:         true,
		CORSOrigins:        []string{"http://localhost:3000"},
	}
}

func newAPIFixture(t *testing.T, cfg *config.Config) *apiFixture {
	t.Helper()

	ctx := context.Background()
	container, err := di.InitializeContainer(ctx, cfg)
	require.NoError(t, err)
	require.NoError(t, container.Start(ctx))
	t.Cleanup(func() {
		require.NoError(t, container.Shutdown())
	})

	router := NewRouter(cfg, container.CommandBus, container.QueryBus, container.CelebrityRepo, container.Collector, container.DynamoDB, zap.NewNop())
	return &apiFixture{container: container, handler: router.Setup()}
}

func newSeededFixture(t *testing.T) *apiFixture {
	t.Helper()

	f := newAPIFixture(t, testConfig())
	seeded, err := f.container.Seeder.Load(context.Background())
	require.NoError(t, err)
	require.Greater(t, seeded.Celebrities, 0)
	return f
}

func (f *apiFixture) request(t *testing.T, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, nil)
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, target, bytes.NewReader(raw))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func (f *apiFixture) requestRaw(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

// celebrityID resolves a seeded celebrity by name through the query bus
// so route tests can address them without scraping list responses.
func (f *apiFixture) celebrityID(t *testing.T, name string) string {
	t.Helper()

	raw, err := f.container.QueryBus.Ask(context.Background(), queries.FindCelebrityQuery{Query: name})
	require.NoError(t, err)
	found, ok := raw.(*queries.FindCelebrityResult)
	require.True(t, ok, "find result type %T", raw)
	return found.Celebrity.ID
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), "body: %s", rec.Body.String())
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) pkgerrors.ErrorResponse {
	t.Helper()
	var resp pkgerrors.ErrorResponse
	decodeBody(t, rec, &resp)
	require.True(t, resp.Error, "expected an error body, got: %s", rec.Body.String())
	return resp
}

func TestServiceEndpoints(t *testing.T) {
	f := newAPIFixture(t, testConfig())

	t.Run("the root describes the service", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var info struct {
			Name        string            `json:"name"`
			Status      string            `json:"status"`
			Version     string            `json:"version"`
			Environment string            `json:"environment"`
			Endpoints   map[string]string `json:"endpoints"`
		}
		decodeBody(t, rec, &info)

		assert.Equal(t, "Access Engine API", info.Name)
		assert.Equal(t, "running", info.Status)
		assert.Equal(t, "1.0.0", info.Version)
		assert.Equal(t, "test", info.Environment)
		assert.Contains(t, info.Endpoints, "best_path")
		assert.Contains(t, info.Endpoints, "generate_outreach")
	})

	t.Run("every response carries version and hardening headers", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/ready", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		assert.Equal(t, "v1", rec.Header().Get("X-API-Version"))
		assert.Equal(t, "1.0.0", rec.Header().Get("X-Service-Version"))
		assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
		assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	})

	t.Run("health pings persistence and reports generation state", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/health", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var health struct {
			Status string            `json:"status"`
			Driver string            `json:"driver"`
			Checks map[string]string `json:"checks"`
		}
		decodeBody(t, rec, &health)

		assert.Equal(t, "healthy", health.Status)
		assert.Equal(t, "memory", health.Driver)
		assert.Equal(t, "ok", health.Checks["persistence"])
		assert.Equal(t, "disabled", health.Checks["generation"])
	})

	t.Run("metrics expose the request counters", func(t *testing.T) {
		// The counter needs at least one observed request before it
		// shows up in the scrape.
		f.request(t, http.MethodGet, "/", nil)

		rec := f.request(t, http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "accessengine_http_requests_total")
	})

	t.Run("unmatched routes are not found", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/api/v2/anything", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCelebrityRoutes(t *testing.T) {
	f := newSeededFixture(t)
	taylorID := f.celebrityID(t, "Taylor Swift")
	base := "/api/v1/celebrities/" + taylorID

	t.Run("the roster paginates and ranks by access score", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/api/v1/celebrities?page=1&page_size=5", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list queries.ListCelebritiesResult
		decodeBody(t, rec, &list)

		require.Equal(t, 5, list.Count)
		require.Len(t, list.Celebrities, 5)
		require.NotNil(t, list.Pagination)
		assert.Equal(t, 1, list.Pagination.Page)
		assert.Equal(t, 5, list.Pagination.PageSize)
		assert.Greater(t, list.Pagination.Total, 5)
		assert.True(t, list.Pagination.HasNext)
		for i := 1; i < len(list.Celebrities); i++ {
			assert.LessOrEqual(t, list.Celebrities[i].AccessScore, list.Celebrities[i-1].AccessScore)
		}
	})

	t.Run("a category filter narrows the roster", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/api/v1/celebrities?category=music&page_size=100", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list queries.ListCelebritiesResult
		decodeBody(t, rec, &list)

		require.NotEmpty(t, list.Celebrities)
		for _, c := range list.Celebrities {
			assert.Equal(t, "music", c.Category)
		}
	})

	t.Run("an unknown category reads as a validation error", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/api/v1/celebrities?category=opera", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, "UNKNOWN_CATEGORY", resp.Code)
		assert.Equal(t, string(pkgerrors.DomainValidationError), resp.Type)
	})

	t.Run("first access builds the snapshot on demand", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, base+"/graph", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var graph queries.GetGraphDataResult
		decodeBody(t, rec, &graph)

		require.NotEmpty(t, graph.Nodes)
		assert.Equal(t, "celebrity", graph.Nodes[0].ID)
		assert.Greater(t, graph.Stats.NodeCount, 0)
		assert.Len(t, graph.Nodes, graph.Stats.NodeCount+1)
		assert.Len(t, graph.Edges, graph.Stats.NodeCount)

		id, err := valueobjects.NewCelebrityIDFromString(taylorID)
		require.NoError(t, err)
		version, err := f.container.VersionRepo.GetLatest(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, version)
		assert.Equal(t, 1, version.Version)
		assert.Equal(t, "first_access", version.Trigger)
	})

	t.Run("the score reports its reachability band", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, base+"/score", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var score queries.AccessScoreResult
		decodeBody(t, rec, &score)

		assert.Equal(t, taylorID, score.CelebrityID)
		assert.GreaterOrEqual(t, score.AccessScore, 10)
		assert.LessOrEqual(t, score.AccessScore, 99)
		assert.Contains(t, []string{"guarded", "moderate", "open"}, score.Band)
	})

	t.Run("nodes come back warmest first", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, base+"/nodes", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var nodes queries.ListNodesResult
		decodeBody(t, rec, &nodes)

		require.NotEmpty(t, nodes.Nodes)
		assert.Equal(t, len(nodes.Nodes), nodes.Count)
		last := len(nodes.Nodes) - 1
		assert.GreaterOrEqual(t, nodes.Nodes[0].WarmScore, nodes.Nodes[last].WarmScore)
	})

	t.Run("the best path honors top_k", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, base+"/best-path?top_k=2", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var paths queries.BestPathResult
		decodeBody(t, rec, &paths)

		require.True(t, paths.Viable)
		require.NotEmpty(t, paths.Paths)
		assert.LessOrEqual(t, len(paths.Paths), 2)
		require.NotNil(t, paths.EntryPoint)
		assert.Equal(t, 1, paths.EntryPoint.Hop)
	})

	t.Run("a non-numeric top_k is rejected", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, base+"/best-path?top_k=soon", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, "top_k must be a non-negative integer", resp.Message)
	})

	t.Run("adding a member returns its derived placement", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, base+"/nodes", map[string]interface{}{
			"person_name":       "Margaret Rooney",
			"role":              "Tour Producer",
			"relationship_type": "colleague",
			"strength":          74,
			"channels": []map[string]interface{}{
				{"type": "email", "handle": "margaret.rooney@example.com", "public": true},
			},
		})
		require.Equal(t, http.StatusCreated, rec.Code, "body: %s", rec.Body.String())

		var added struct {
			NodeID      string `json:"node_id"`
			CelebrityID string `json:"celebrity_id"`
			Name        string `json:"person_name"`
			WarmScore   int    `json:"warm_score"`
			HopDistance int    `json:"hop_distance"`
			Rebuilt     bool   `json:"rebuilt"`
		}
		decodeBody(t, rec, &added)

		assert.NotEmpty(t, added.NodeID)
		assert.Equal(t, taylorID, added.CelebrityID)
		assert.Equal(t, "Margaret Rooney", added.Name)
		assert.Equal(t, 1, added.HopDistance)
		assert.Greater(t, added.WarmScore, 0)
		assert.True(t, added.Rebuilt)
	})

	t.Run("unknown body fields fail loudly", func(t *testing.T) {
		rec := f.requestRaw(t, http.MethodPost, base+"/nodes", `{"person_name":"Typo Victim","strenght":80}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, string(pkgerrors.ErrorTypeValidation), resp.Type)
	})

	t.Run("a rebuild accepts an empty body", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, base+"/rebuild", nil)
		require.Equal(t, http.StatusOK, rec.Code, "body: %s", rec.Body.String())

		var result appservices.RebuildResult
		decodeBody(t, rec, &result)

		// first_access built v1, the member add built v2
		assert.Equal(t, 3, result.Version)
		assert.True(t, result.Unchanged)

		id, err := valueobjects.NewCelebrityIDFromString(taylorID)
		require.NoError(t, err)
		version, err := f.container.VersionRepo.GetLatest(context.Background(), id)
		require.NoError(t, err)
		require.NotNil(t, version)
		assert.Equal(t, "manual", version.Trigger)
	})

	t.Run("an unknown celebrity is not found", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/api/v1/celebrities/"+valueobjects.NewCelebrityID().String()+"/graph", nil)
		require.Equal(t, http.StatusNotFound, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, "CELEBRITY_NOT_FOUND", resp.Code)
		assert.Equal(t, string(pkgerrors.DomainNotFoundError), resp.Type)
	})

	t.Run("a malformed id is rejected", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/api/v1/celebrities/not-an-id/graph", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, string(pkgerrors.ErrorTypeValidation), resp.Type)
	})
}

func TestSearchRoute(t *testing.T) {
	f := newSeededFixture(t)

	t.Run("a blank name is rejected", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/v1/celebrities/search", map[string]interface{}{
			"sender_name": "Dana Whitfield",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, string(pkgerrors.ErrorTypeValidation), resp.Type)
		assert.Equal(t, "name is required", resp.Message)
	})

	t.Run("search surfaces the disabled generator", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/v1/celebrities/search", map[string]interface{}{
			"name":            "taylor swift",
			"sender_name":     "Dana Whitfield",
			"user_background": "documentary producer",
			"user_ask":        "a short documentary interview",
		})
		require.Equal(t, http.StatusServiceUnavailable, rec.Code, "body: %s", rec.Body.String())

		resp := decodeError(t, rec)
		assert.Equal(t, "GENERATION_UNAVAILABLE", resp.Code)
		assert.Equal(t, string(pkgerrors.DomainUnavailableError), resp.Type)
	})
}

func TestOutreachRoutes(t *testing.T) {
	f := newSeededFixture(t)
	taylorID := f.celebrityID(t, "Taylor Swift")

	// Build the snapshot and grab an entry node for the generate calls.
	rec := f.request(t, http.MethodGet, "/api/v1/celebrities/"+taylorID+"/nodes", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var nodes queries.ListNodesResult
	decodeBody(t, rec, &nodes)
	require.NotEmpty(t, nodes.Nodes)
	nodeID := nodes.Nodes[0].ID

	t.Run("generation reports unavailable when switched off", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/v1/outreach/generate", map[string]interface{}{
			"celebrity_id":      taylorID,
			"node_id":           nodeID,
			"sender_name":       "Dana Whitfield",
			"sender_background": "documentary producer",
			"user_ask":          "a short documentary interview",
		})
		require.Equal(t, http.StatusServiceUnavailable, rec.Code, "body: %s", rec.Body.String())

		resp := decodeError(t, rec)
		assert.Equal(t, "GENERATION_UNAVAILABLE", resp.Code)
		assert.Equal(t, "Message generation is temporarily unavailable", resp.Message)
	})

	t.Run("a missing sender is rejected before the model call", func(t *testing.T) {
		rec := f.request(t, http.MethodPost, "/api/v1/outreach/generate", map[string]interface{}{
			"celebrity_id": taylorID,
			"node_id":      nodeID,
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, string(pkgerrors.ErrorTypeValidation), resp.Type)
	})

	t.Run("history starts empty", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/api/v1/outreach/celebrity/"+taylorID, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var history queries.ListOutreachResult
		decodeBody(t, rec, &history)

		assert.Equal(t, taylorID, history.CelebrityID)
		assert.Zero(t, history.Count)
		assert.Empty(t, history.Messages)
	})

	t.Run("stats start at zero", func(t *testing.T) {
		rec := f.request(t, http.MethodGet, "/api/v1/outreach/stats", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var stats queries.OutreachStatsResult
		decodeBody(t, rec, &stats)

		assert.Zero(t, stats.Total)
		assert.Zero(t, stats.ReplyRatePercent)
	})

	t.Run("an invalid status never reaches the lookup", func(t *testing.T) {
		rec := f.request(t, http.MethodPatch, "/api/v1/outreach/"+valueobjects.NewOutreachID().String()+"/status", map[string]interface{}{
			"status": "archived",
		})
		require.Equal(t, http.StatusBadRequest, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, "INVALID_OUTREACH_STATUS", resp.Code)
	})

	t.Run("an unknown outreach record is not found", func(t *testing.T) {
		rec := f.request(t, http.MethodPatch, "/api/v1/outreach/"+valueobjects.NewOutreachID().String()+"/status", map[string]interface{}{
			"status": "sent",
		})
		require.Equal(t, http.StatusNotFound, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, "OUTREACH_NOT_FOUND", resp.Code)
	})
}

func TestRateLimiting(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPerMinute = 2
	f := newAPIFixture(t, cfg)

	t.Run("requests beyond the window budget are throttled", func(t *testing.T) {
		for i := 0; i < 2; i++ {
			rec := f.request(t, http.MethodGet, "/ready", nil)
			require.Equal(t, http.StatusOK, rec.Code, "request %d", i+1)
		}

		rec := f.request(t, http.MethodGet, "/ready", nil)
		require.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "60", rec.Header().Get("Retry-After"))

		resp := decodeError(t, rec)
		assert.Equal(t, string(pkgerrors.ErrorTypeRateLimit), resp.Type)
	})
}

func TestGenerationBudget(t *testing.T) {
	cfg := testConfig()
	cfg.GenerationsPerHour = 1
	f := newAPIFixture(t, cfg)

	t.Run("the per-caller budget applies only to generate", func(t *testing.T) {
		// The budget is spent on entry, before the handler decides
		// anything about the request
		rec := f.request(t, http.MethodPost, "/api/v1/outreach/generate", map[string]interface{}{})
		require.NotEqual(t, http.StatusTooManyRequests, rec.Code)

		rec = f.request(t, http.MethodPost, "/api/v1/outreach/generate", map[string]interface{}{})
		require.Equal(t, http.StatusTooManyRequests, rec.Code)

		resp := decodeError(t, rec)
		assert.Equal(t, string(pkgerrors.ErrorTypeRateLimit), resp.Type)

		// Other outreach routes do not draw from the generation budget
		rec = f.request(t, http.MethodGet, "/api/v1/outreach/stats", nil)
		require.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCORSPreflight(t *testing.T) {
	f := newAPIFixture(t, testConfig())

	t.Run("an allowed origin gets the preflight headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/celebrities", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)

		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("a foreign origin gets no allowance", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/v1/celebrities", nil)
		req.Header.Set("Origin", "http://rogue.example")
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)

		rec := httptest.NewRecorder()
		f.handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}

func TestErrorCorrelation(t *testing.T) {
	f := newAPIFixture(t, testConfig())

	rec := f.request(t, http.MethodGet, "/api/v1/celebrities/"+valueobjects.NewCelebrityID().String()+"/graph", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// The chain stamps the generated request id into error bodies even
	// when the client sent none.
	resp := decodeError(t, rec)
	assert.NotEmpty(t, resp.RequestID)
}
