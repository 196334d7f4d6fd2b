package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/postboard/config"
	"github.com/oksasatya/postboard/internal/container"
	"github.com/oksasatya/postboard/internal/domain/identity"
	"github.com/oksasatya/postboard/internal/infrastructure/memory"
	"github.com/oksasatya/postboard/internal/interface/middleware"
	"github.com/oksasatya/postboard/internal/router/modules"
)

func newTestEngine(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	container.Reset()
	t.Cleanup(container.Reset)

	store := memory.NewStore()
	container.SetConfig(cfg)
	container.SetRepositories(store.Users(), store.Posts(), store.Comments())
	return NewEngine()
}

func testConfig() *config.Config {
	return &config.Config{AppName: "postboard", Env: "test", APIPrefix: "/api/v1", DebugMetricsEnabled: true}
}

func call(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func field(t *testing.T, rr *httptest.ResponseRecorder, key string) string {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &m), rr.Body.String())
	s, _ := m[key].(string)
	return s
}

func TestScenarioDanglingReferenceSurvivesUserDelete(t *testing.T) {
	r := newTestEngine(t, testConfig())

	rr := call(t, r, http.MethodPost, "/api/v1/users", `{"email":"a@x.com","name":"A"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	userID := field(t, rr, "id")
	assert.True(t, identity.IsID(userID))

	rr = call(t, r, http.MethodPost, "/api/v1/users", `{"email":"a@x.com","name":"B"}`)
	require.Equal(t, http.StatusConflict, rr.Code)

	rr = call(t, r, http.MethodGet, "/api/v1/users/"+userID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "A", field(t, rr, "name"))

	rr = call(t, r, http.MethodPost, "/api/v1/posts", `{"userId":"`+userID+`","title":"T","content":"C"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	postID := field(t, rr, "id")
	assert.True(t, identity.IsID(postID))
	assert.Equal(t, userID, field(t, rr, "userId"))

	rr = call(t, r, http.MethodPost, "/api/v1/comments", `{"userId":"`+userID+`","postId":"`+postID+`","content":"hi"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	commentID := field(t, rr, "id")

	rr = call(t, r, http.MethodDelete, "/api/v1/users/"+userID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "User deleted successfully", field(t, rr, "message"))

	rr = call(t, r, http.MethodGet, "/api/v1/users/"+userID, "")
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = call(t, r, http.MethodGet, "/api/v1/posts/"+postID, "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, userID, field(t, rr, "userId"))

	rr = call(t, r, http.MethodGet, "/api/v1/comments/"+commentID, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	rr = call(t, r, http.MethodGet, "/api/v1/users", "")
	assert.JSONEq(t, `[]`, rr.Body.String())
}

func TestHealthAndDebug(t *testing.T) {
	r := newTestEngine(t, testConfig())

	rr := call(t, r, http.MethodGet, "/api/v1/", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "postboard ok", rr.Body.String())
	assert.Len(t, rr.Header().Get(middleware.HeaderRequestID), 36)

	call(t, r, http.MethodGet, "/api/v1/posts", "")
	rr = call(t, r, http.MethodGet, "/api/v1/debug/vars", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "postboard_operations")
	assert.Contains(t, rr.Body.String(), "post.list.200")
}

func TestDebugDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.DebugMetricsEnabled = false
	r := newTestEngine(t, cfg)

	rr := call(t, r, http.MethodGet, "/api/v1/debug/vars", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRateLimitWithoutRedisPassesThrough(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitEnabled = true
	cfg.RateLimitPerMinute = 1
	cfg.RateLimitWritesPerMinute = 1
	r := newTestEngine(t, cfg)

	for i := 0; i < 3; i++ {
		rr := call(t, r, http.MethodGet, "/api/v1/users", "")
		assert.Equal(t, http.StatusOK, rr.Code)
	}
}

func TestCustomPrefix(t *testing.T) {
	cfg := testConfig()
	cfg.APIPrefix = ""
	r := newTestEngine(t, cfg)

	rr := call(t, r, http.MethodGet, "/users", "")
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRegistryModules(t *testing.T) {
	gin.SetMode(gin.TestMode)
	container.Reset()
	t.Cleanup(container.Reset)
	container.SetConfig(testConfig())
	store := memory.NewStore()
	container.SetRepositories(store.Users(), store.Posts(), store.Comments())

	reg := NewRegistry(gin.New(), "/api/v1")
	InitModules(reg)
	reg.Add(modules.NewHealthModule("again"))

	assert.Equal(t, []string{"health", "users", "posts", "comments", "debug"}, reg.Modules())
}
