package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/angelmondragon/shopadmin-backend/internal/adminusers"
	"github.com/angelmondragon/shopadmin-backend/internal/articles"
	"github.com/angelmondragon/shopadmin-backend/internal/auth"
	"github.com/angelmondragon/shopadmin-backend/internal/roles"
	"github.com/angelmondragon/shopadmin-backend/pkg/config"
	"github.com/angelmondragon/shopadmin-backend/pkg/db/testdb"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	ID      uint64          `json:"id"`
	Data    json.RawMessage `json:"data"`
	Page    int             `json:"page"`
	Limit   int             `json:"limit"`
	Total   int64           `json:"total"`
	Error   struct {
		Code    string         `json:"code"`
		Details map[string]any `json:"details"`
	} `json:"error"`
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" && rec.Body.Len() > 0 && rec.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response: %v (%s)", err, rec.Body.String())
		}
	}
	return rec, env
}

func roleRouter(t *testing.T, conn *gorm.DB) http.Handler {
	t.Helper()
	svc, err := roles.NewService(roles.NewRepository(conn))
	require.NoError(t, err)
	h := NewEntityHandlers[roles.RoleInput, roles.RoleDTO](roles.Entity, svc, nil)

	r := chi.NewRouter()
	r.Post("/api/role", h.Create())
	r.Get("/api/role", h.List())
	r.Get("/api/role/paginate", h.Page())
	r.Get("/api/role/{id}", h.Get())
	r.Put("/api/role/{id}", h.Update())
	r.Delete("/api/role/{id}", h.Delete())
	return r
}

func TestRoleCreateThenDuplicate(t *testing.T) {
	h := roleRouter(t, testdb.Open(t))
	body := `{"nom_role":"Manager","acronyme_role":"MGR"}`

	rec, env := do(t, h, http.MethodPost, "/api/role", body)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	assert.NotZero(t, env.ID)

	rec, env = do(t, h, http.MethodPost, "/api/role", body)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "role already exists", env.Message)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestRoleMissingFields(t *testing.T) {
	h := roleRouter(t, testdb.Open(t))

	rec, env := do(t, h, http.MethodPost, "/api/role", `{"nom_role":"Manager"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "missing required fields", env.Message)
	assert.Equal(t, "is required", env.Error.Details["acronyme_role"])
}

func TestRoleGetUpdateDelete(t *testing.T) {
	h := roleRouter(t, testdb.Open(t))

	_, created := do(t, h, http.MethodPost, "/api/role", `{"nom_role":"Manager","acronyme_role":"MGR"}`)
	path := fmt.Sprintf("/api/role/%d", created.ID)

	rec, _ := do(t, h, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var role roles.RoleDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &role))
	assert.Equal(t, "Manager", role.Name)

	rec, env := do(t, h, http.MethodPut, path, `{"nom_role":"Director","acronyme_role":"DIR"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ID, env.ID)

	rec, _ = do(t, h, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec, env = do(t, h, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "role not found", env.Message)

	rec, _ = do(t, h, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPut, path, `{"nom_role":"Again","acronyme_role":"AGN"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodGet, "/api/role/abc", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoleListIsBareArray(t *testing.T) {
	h := roleRouter(t, testdb.Open(t))

	rec, _ := do(t, h, http.MethodGet, "/api/role", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestArticlesPaginate(t *testing.T) {
	conn := testdb.Open(t)
	svc, err := articles.NewService(articles.NewRepository(conn))
	require.NoError(t, err)
	h := NewEntityHandlers[articles.ArticleInput, articles.ArticleDTO](articles.Entity, svc, nil)

	r := chi.NewRouter()
	r.Post("/api/articles", h.Create())
	r.Get("/api/articles/paginate", h.Page())

	for i := 0; i < 5; i++ {
		body := fmt.Sprintf(`{"nom_articles":"item-%d","description_articles":"d","prix_articles":"9.99","stock_articles":%d}`, i, i)
		rec, _ := do(t, r, http.MethodPost, "/api/articles", body)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	}

	rec, env := do(t, r, http.MethodGet, "/api/articles/paginate?page=1&limit=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var items []articles.ArticleDTO
	require.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 2)
	assert.Equal(t, 1, env.Page)
	assert.Equal(t, 2, env.Limit)
	assert.Equal(t, int64(5), env.Total)

	rec, _ = do(t, r, http.MethodGet, "/api/articles/paginate?page=0", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec, _ = do(t, r, http.MethodGet, "/api/articles/paginate?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func authRouter(t *testing.T) http.Handler {
	t.Helper()
	conn := testdb.Open(t)
	repo := adminusers.NewRepository(conn)
	users, err := adminusers.NewService(repo, config.PasswordConfig{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	_, err = users.Create(context.Background(), adminusers.AdminUserInput{Username: "admin", Password: "correct", IdentityID: 1})
	require.NoError(t, err)

	authSvc, err := auth.NewService(auth.ServiceParams{Users: repo, Password: config.PasswordConfig{BcryptCost: bcrypt.MinCost}})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Post("/api/user/login", AuthLogin(authSvc, nil, nil))
	r.Post("/api/user/logout", AuthLogout(authSvc, config.JWTConfig{}, nil))
	r.Put("/api/user/{id}/password", ChangePassword(authSvc, nil))
	r.Post("/api/user/reset-password", ResetPassword(authSvc, nil))
	return r
}

func TestLoginWrongPassword(t *testing.T) {
	h := authRouter(t)

	rec, env := do(t, h, http.MethodPost, "/api/user/login", `{"username_admin":"admin","password_admin":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", env.Message)

	rec, env = do(t, h, http.MethodPost, "/api/user/login", `{"username_admin":"ghost","password_admin":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "invalid credentials", env.Message)

	rec, _ = do(t, h, http.MethodPost, "/api/user/login", `{"username_admin":"admin"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLoginSuccessOmitsDigest(t *testing.T) {
	h := authRouter(t)

	rec, _ := do(t, h, http.MethodPost, "/api/user/login", `{"username_admin":"admin","password_admin":"correct"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "user missing: %s", rec.Body.String())
	assert.Equal(t, "admin", user["username_admin"])
	assert.NotContains(t, user, "password_admin")
	assert.NotContains(t, body, "token")
}

func TestPasswordRoutes(t *testing.T) {
	h := authRouter(t)

	rec, _ := do(t, h, http.MethodPut, "/api/user/1/password", `{"new_password":"changed"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec, _ = do(t, h, http.MethodPost, "/api/user/login", `{"username_admin":"admin","password_admin":"changed"}`)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodPut, "/api/user/42/password", `{"new_password":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/user/reset-password", `{"username_admin":"admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var reset resetPasswordResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reset))
	require.NotEmpty(t, reset.TemporaryPassword)

	rec, _ = do(t, h, http.MethodPost, "/api/user/login", fmt.Sprintf(`{"username_admin":"admin","password_admin":%q}`, reset.TemporaryPassword))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/user/reset-password", `{"username_admin":"ghost","new_password":"x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, h, http.MethodPost, "/api/user/logout", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserExtras(t *testing.T) {
	conn := testdb.Open(t)
	svc, err := adminusers.NewService(adminusers.NewRepository(conn), config.PasswordConfig{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)
	ctx := context.Background()
	for _, name := range []string{"alice", "bob"} {
		_, err := svc.Create(ctx, adminusers.AdminUserInput{Username: name, Password: "pw", IdentityID: 3})
		require.NoError(t, err)
	}

	r := chi.NewRouter()
	r.Get("/api/user/count", UserCount(svc, nil))
	r.Get("/api/user/search", UserSearch(svc, nil))
	r.Get("/api/user/exists/{username}", UserExists(svc, nil))
	r.Get("/api/user/username/{username}", UserByUsername(svc, nil))
	r.Get("/api/user/identity/{identityId}", UsersByIdentity(svc, nil))

	rec, _ := do(t, r, http.MethodGet, "/api/user/count", "")
	assert.JSONEq(t, `{"count":2}`, rec.Body.String())

	rec, _ = do(t, r, http.MethodGet, "/api/user/exists/alice", "")
	assert.JSONEq(t, `{"exists":true}`, rec.Body.String())
	rec, _ = do(t, r, http.MethodGet, "/api/user/exists/zed", "")
	assert.JSONEq(t, `{"exists":false}`, rec.Body.String())

	rec, _ = do(t, r, http.MethodGet, "/api/user/username/bob", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "password_admin")
	rec, _ = do(t, r, http.MethodGet, "/api/user/username/zed", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(t, r, http.MethodGet, "/api/user/identity/3", "")
	var list []adminusers.AdminUserDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 2)

	rec, _ = do(t, r, http.MethodGet, "/api/user/search?field=username_admin&value=alice", "")
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	rec, env := do(t, r, http.MethodGet, "/api/user/search?field=password_admin&value=x", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "password_admin", env.Error.Details["field"])
}

type failingPinger struct{ err error }

func (p failingPinger) Ping(ctx context.Context) error { return p.err }

func TestHealthReady(t *testing.T) {
	cfg := &config.Config{App: config.AppConfig{Env: "dev"}}

	ok := HealthReady(cfg, map[string]Pinger{"admin_db": failingPinger{}}, nil)
	rec := httptest.NewRecorder()
	ok.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	bad := HealthReady(cfg, map[string]Pinger{
		"admin_db": failingPinger{},
		"users_db": failingPinger{err: errors.New("connection refused")},
	}, nil)
	rec = httptest.NewRecorder()
	bad.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "users_db")
}

func TestWelcomeAndNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	Welcome().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, welcomeText, rec.Body.String())

	rec, env := do(t, NotFound(nil), http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "route not found", env.Message)
}
