package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samcharles93/vecop/internal/store"
	"github.com/samcharles93/vecop/internal/vecop"
)

// newTestEcho serves a dispatcher with every hardware tier masked, so the
// responses do not depend on the build or the host.
func newTestEcho(t *testing.T, mw ...echo.MiddlewareFunc) (*echo.Echo, *Server) {
	t.Helper()
	d := vecop.New(vecop.Options{Policies: vecop.DefaultPolicies(), NoSIMD: true})
	srv := NewServer(d, store.NewMemory(), nil)
	srv.clock = func() time.Time { return time.Unix(1700000000, 0) }
	e := echo.New()
	e.Use(mw...)
	srv.Register(e)
	return e, srv
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

type errorEnvelope struct {
	Error ErrorBody `json:"error"`
}

func TestCreateEvaluationTolerantFallback(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/evaluations",
		`{"type":"float","op":"+","width":4,"a":[1,2,3,4],"b":[10,20,30,40]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	ev := decodeBody[store.Evaluation](t, rec)
	assert.True(t, strings.HasPrefix(ev.ID, "eval_"), ev.ID)
	assert.Equal(t, "evaluation", ev.Object)
	assert.Equal(t, int64(1700000000), ev.CreatedAt)
	assert.Equal(t, "float", ev.Type)
	assert.Equal(t, "+", ev.Op)
	assert.Equal(t, 4, ev.Width)
	assert.Equal(t, "scalar", ev.Tier)
	assert.True(t, ev.Fallback)
	assert.False(t, ev.ScalarByDesign)
	assert.Equal(t, store.Values{11, 22, 33, 44}, ev.Result)
}

func TestCreateEvaluationScalarByDesign(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/evaluations",
		`{"type":"float","op":"*","width":2,"a":[1.5,-2],"b":[2,4]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	ev := decodeBody[store.Evaluation](t, rec)
	assert.True(t, ev.ScalarByDesign)
	assert.False(t, ev.Fallback)
	assert.Equal(t, store.Values{3, -8}, ev.Result)
}

func TestCreateEvaluationErrors(t *testing.T) {
	e, _ := newTestEcho(t)

	tests := []struct {
		name     string
		body     string
		wantType string
		wantMsg  string
	}{
		{
			name:     "bad type",
			body:     `{"type":"int","op":"+","width":4,"a":[1,2,3,4],"b":[1,2,3,4]}`,
			wantType: "invalid_type",
			wantMsg:  "Bad type : float | double",
		},
		{
			name:     "double width 16",
			body:     `{"type":"double","op":"+","width":16,"a":[],"b":[]}`,
			wantType: "invalid_width",
			wantMsg:  "invalid vector of size 16 for type double",
		},
		{
			name:     "unknown operator",
			body:     `{"type":"float","op":"%","width":4,"a":[1,2,3,4],"b":[1,2,3,4]}`,
			wantType: "invalid_operator",
			wantMsg:  "invalid operator % for vector of size 4 for type float",
		},
		{
			name:     "strict double without tier",
			body:     `{"type":"double","op":"/","width":2,"a":[1,2],"b":[1,2]}`,
			wantType: "unavailable_capability",
			wantMsg:  "sse instruction not available",
		},
		{
			name:     "short operands",
			body:     `{"type":"float","op":"+","width":4,"a":[1,2],"b":[1,2,3,4]}`,
			wantType: "invalid_width",
		},
		{
			name:     "malformed json",
			body:     `{"type":`,
			wantType: "invalid_request_error",
		},
		{
			name:     "unknown field",
			body:     `{"type":"float","op":"+","width":4,"lanes":4}`,
			wantType: "invalid_request_error",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, e, http.MethodPost, "/v1/evaluations", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			body := decodeBody[errorEnvelope](t, rec)
			assert.Equal(t, tt.wantType, body.Error.Type)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, body.Error.Message)
			}
		})
	}
}

func TestRejectedEvaluationIsNotStored(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/evaluations",
		`{"type":"double","op":"+","width":16,"a":[],"b":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/v1/evaluations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[EvaluationList](t, rec)
	assert.Empty(t, list.Data)
}

func TestEvaluationLifecycle(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(t, e, http.MethodPost, "/v1/evaluations",
		`{"type":"float","op":"-","width":8,"a":[1,2,3,4,5,6,7,8],"b":[1,1,1,1,1,1,1,1]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decodeBody[store.Evaluation](t, rec)

	rec = doJSON(t, e, http.MethodGet, "/v1/evaluations/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[store.Evaluation](t, rec)
	assert.Equal(t, created, got)

	rec = doJSON(t, e, http.MethodGet, "/v1/evaluations?limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[EvaluationList](t, rec)
	assert.Equal(t, "list", list.Object)
	require.Len(t, list.Data, 1)
	assert.Equal(t, created.ID, list.Data[0].ID)

	rec = doJSON(t, e, http.MethodDelete, "/v1/evaluations/"+created.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	del := decodeBody[DeleteEvaluationResp](t, rec)
	assert.True(t, del.Deleted)
	assert.Equal(t, created.ID, del.ID)

	rec = doJSON(t, e, http.MethodGet, "/v1/evaluations/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = doJSON(t, e, http.MethodDelete, "/v1/evaluations/"+created.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListEvaluationsBadLimit(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(t, e, http.MethodGet, "/v1/evaluations?limit=-3", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody[errorEnvelope](t, rec)
	assert.Equal(t, "invalid_request_error", body.Error.Type)
}

func TestTiersAndHealth(t *testing.T) {
	e, _ := newTestEcho(t)

	rec := doJSON(t, e, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = doJSON(t, e, http.MethodGet, "/v1/tiers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[TiersResponse](t, rec)
	assert.Equal(t, "tiers", resp.Object)
	require.Len(t, resp.Routes, 8)
	for _, r := range resp.Routes {
		assert.False(t, r.Available, "%s/%d", r.Type, r.Width)
	}
	assert.Equal(t, "float", resp.Routes[0].Type)
}

func TestRateLimit(t *testing.T) {
	e, _ := newTestEcho(t, RateLimit(1))

	first := doJSON(t, e, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, first.Code)

	limited := false
	for range 5 {
		if doJSON(t, e, http.MethodGet, "/healthz", "").Code == http.StatusTooManyRequests {
			limited = true
			break
		}
	}
	assert.True(t, limited)
}
