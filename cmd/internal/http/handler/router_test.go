package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"blogapi/cmd/internal/contract"
	"blogapi/cmd/internal/domain/entity"
	"blogapi/cmd/internal/domain/policy"
	"blogapi/cmd/internal/domain/sqlite"
	"blogapi/cmd/internal/domain/sqlite/repository"
	"blogapi/cmd/internal/http/handler"
	"blogapi/cmd/internal/http/middleware"
	"blogapi/cmd/internal/representation"
	"blogapi/cmd/internal/service"
	"blogapi/cmd/internal/utils"
	"blogapi/cmd/internal/utils/pagination"
	"blogapi/cmd/internal/utils/uid"
	"blogapi/cmd/internal/utils/validators"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret")

type testServer struct {
	e *echo.Echo

	admin *entity.User
	alice *entity.User
	bob   *entity.User
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	uid.Init(1)

	db, err := sqlite.Init(sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	})

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	mapper := representation.NewMapper(validators.New(), categoryRepo)
	evaluator := policy.NewEvaluator()
	userService := service.NewUserService(userRepo, evaluator)

	s := &testServer{
		admin: &entity.User{Username: "admin", Email: "admin@test.com", Active: true, Permissions: entity.PermissionAdministrator},
		alice: &entity.User{Username: "alice", Email: "alice@test.com", FirstName: "Alice", Active: true},
		bob:   &entity.User{Username: "bob", Email: "bob@test.com", Active: true},
	}
	for _, u := range []*entity.User{s.admin, s.alice, s.bob} {
		require.NoError(t, userRepo.Save(u))
	}
	require.NoError(t, categoryRepo.Create(&entity.Category{Tag: "go", Name: "Golang"}))

	s.e = handler.NewRouter(&handler.RouterConfig{
		CategoryService: service.NewCategoryService(categoryRepo, mapper, evaluator),
		PostService:     service.NewPostService(repository.NewPostRepository(db), mapper, evaluator),
		ProfileService:  service.NewProfileService(repository.NewProfileRepository(db), mapper, evaluator),
		UserService:     userService,
		Auth: middleware.NewAuthMiddleware(&middleware.AuthMiddlewareConfig{
			Verifier: utils.NewHMACVerifier(secret),
			Users:    userService,
		}),
	})
	return s
}

func tokenFor(t *testing.T, user *entity.User) string {
	t.Helper()
	if user == nil {
		return ""
	}

	token, err := utils.IssueToken(secret, user.ID, time.Hour)
	require.NoError(t, err)
	return token
}

func (s *testServer) do(t *testing.T, actor *entity.User, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return s.doWithToken(t, tokenFor(t, actor), method, path, body)
}

func (s *testServer) doWithToken(t *testing.T, token, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func userPath(user *entity.User, suffix string) string {
	return fmt.Sprintf("/users/%d%s", user.ID, suffix)
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, nil, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestAuthentication(t *testing.T) {
	s := newTestServer(t)

	t.Run("no header is anonymous", func(t *testing.T) {
		rec := s.do(t, nil, http.MethodGet, "/posts", "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		rec := s.doWithToken(t, "not-a-jwt", http.MethodGet, "/posts", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := utils.IssueToken([]byte("other"), s.alice.ID, time.Hour)
		require.NoError(t, err)

		rec := s.doWithToken(t, token, http.MethodGet, "/posts", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := utils.IssueToken(secret, s.alice.ID, -time.Minute)
		require.NoError(t, err)

		rec := s.doWithToken(t, token, http.MethodGet, "/posts", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		token, err := utils.IssueToken(secret, 4242, time.Hour)
		require.NoError(t, err)

		rec := s.doWithToken(t, token, http.MethodGet, "/posts", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestCategories(t *testing.T) {
	s := newTestServer(t)

	t.Run("only administrators create", func(t *testing.T) {
		for _, actor := range []*entity.User{nil, s.alice} {
			rec := s.do(t, actor, http.MethodPost, "/categories", `{"tag":"rust","name":"Rust"}`)
			assert.Equal(t, http.StatusForbidden, rec.Code)
		}

		rec := s.do(t, s.admin, http.MethodPost, "/categories/", `{"tag":"rust","name":"Rust"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, contract.CategoryResponse{Tag: "rust", Name: "Rust"}, decode[contract.CategoryResponse](t, rec))

		rec = s.do(t, s.admin, http.MethodPost, "/categories", `{"tag":"rust","name":"Again"}`)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("listing is public and ordered", func(t *testing.T) {
		rec := s.do(t, nil, http.MethodGet, "/categories", "")
		require.Equal(t, http.StatusOK, rec.Code)

		page := decode[pagination.Page[contract.CategoryResponse]](t, rec)
		assert.Equal(t, int64(2), page.Count)
		require.Len(t, page.Results, 2)
		assert.Equal(t, "go", page.Results[0].Tag)
		assert.Equal(t, "rust", page.Results[1].Tag)
		assert.Nil(t, page.Next)
		assert.Nil(t, page.Previous)
	})

	t.Run("tag is immutable", func(t *testing.T) {
		rec := s.do(t, s.admin, http.MethodPut, "/categories/rust", `{"tag":"upd","name":"x"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		rec = s.do(t, s.admin, http.MethodPatch, "/categories/rust", `{"name":"Rustlang"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Rustlang", decode[contract.CategoryResponse](t, rec).Name)
	})

	t.Run("mutations without a tag", func(t *testing.T) {
		for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
			assert.Equal(t, http.StatusForbidden, s.do(t, nil, method, "/categories", "").Code)
			assert.Equal(t, http.StatusForbidden, s.do(t, s.alice, method, "/categories", "").Code)
			assert.Equal(t, http.StatusMethodNotAllowed, s.do(t, s.admin, method, "/categories", "").Code)
		}
	})

	t.Run("forbidden before not found", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.do(t, s.alice, http.MethodDelete, "/categories/missing", "").Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, s.admin, http.MethodDelete, "/categories/missing", "").Code)
	})

	t.Run("delete", func(t *testing.T) {
		rec := s.do(t, s.admin, http.MethodDelete, "/categories/rust", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())

		assert.Equal(t, http.StatusNotFound, s.do(t, nil, http.MethodGet, "/categories/rust", "").Code)
	})
}

func TestPosts(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, nil, http.MethodPost, "/posts", `{"title":"anon"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = s.do(t, s.alice, http.MethodPost, "/posts", fmt.Sprintf(`{"title":"hello","categories":["go"],"owner":%d}`, s.bob.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	post := decode[contract.PostResponse](t, rec)
	assert.Equal(t, s.alice.ID, post.Owner)
	assert.Equal(t, []string{"go"}, post.Categories)
	path := fmt.Sprintf("/posts/%d", post.ID)

	t.Run("validation", func(t *testing.T) {
		rec := s.do(t, s.alice, http.MethodPost, "/posts", `{"title":"x","categories":["nope"]}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "nope")

		rec = s.do(t, s.alice, http.MethodPost, "/posts", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("repeated categories collapse", func(t *testing.T) {
		rec := s.do(t, s.bob, http.MethodPost, "/posts", `{"title":"twice","categories":["go","go"]}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created := decode[contract.PostResponse](t, rec)
		assert.Equal(t, []string{"go"}, created.Categories)

		rec = s.do(t, s.bob, http.MethodPatch, fmt.Sprintf("/posts/%d", created.ID), `{"categories":["go","go"]}`)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, []string{"go"}, decode[contract.PostResponse](t, rec).Categories)
	})

	t.Run("error ordering", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.do(t, nil, http.MethodPut, "/posts/999", `{}`).Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, s.bob, http.MethodPut, "/posts/999", `{}`).Code)
		assert.Equal(t, http.StatusForbidden, s.do(t, s.bob, http.MethodPut, path, `{}`).Code)
		assert.Equal(t, http.StatusBadRequest, s.do(t, s.alice, http.MethodPut, path, `{}`).Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, nil, http.MethodGet, "/posts/abc", "").Code)

		assert.Equal(t, http.StatusForbidden, s.do(t, s.bob, http.MethodPut, path, `{"title":"taken"}`).Code)
		rec := s.do(t, nil, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, post, decode[contract.PostResponse](t, rec))
	})

	t.Run("partial update", func(t *testing.T) {
		rec := s.do(t, s.alice, http.MethodPatch, path, `{"content":"body"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		updated := decode[contract.PostResponse](t, rec)
		assert.Equal(t, "hello", updated.Title)
		assert.Equal(t, "body", updated.Content)
		assert.Equal(t, []string{"go"}, updated.Categories)
		assert.Equal(t, post.CreatedAt, updated.CreatedAt)
		assert.GreaterOrEqual(t, updated.UpdatedAt, post.UpdatedAt)
	})

	t.Run("mutations without an id", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.do(t, nil, http.MethodDelete, "/posts", "").Code)
		assert.Equal(t, http.StatusMethodNotAllowed, s.do(t, s.bob, http.MethodDelete, "/posts", "").Code)
	})

	t.Run("delete", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.do(t, s.bob, http.MethodDelete, path, "").Code)
		assert.Equal(t, http.StatusNoContent, s.do(t, s.alice, http.MethodDelete, path+"/", "").Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, nil, http.MethodGet, path, "").Code)
	})
}

func TestPostsPagination(t *testing.T) {
	s := newTestServer(t)

	for i := 0; i < 3; i++ {
		rec := s.do(t, s.alice, http.MethodPost, "/posts", fmt.Sprintf(`{"title":"post %d"}`, i))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	tests := []struct {
		name     string
		query    string
		titles   []string
		next     string
		previous string
	}{
		{"first page", "?page_size=2", []string{"post 0", "post 1"}, "http://example.com/posts?page=2&page_size=2", ""},
		{"last page", "?page=2&page_size=2", []string{"post 2"}, "", "http://example.com/posts?page_size=2"},
		{"past the end", "?page=5&page_size=2", []string{}, "", "http://example.com/posts?page=2&page_size=2"},
		{"huge page", "?page=9223372036854775807&page_size=2", []string{}, "", "http://example.com/posts?page=2&page_size=2"},
		{"huge page with default size", "?page=9223372036854775807", []string{}, "", "http://example.com/posts"},
		{"bad size falls back", "?page_size=zero", []string{"post 0", "post 1", "post 2"}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := s.do(t, nil, http.MethodGet, "/posts"+tt.query, "")
			require.Equal(t, http.StatusOK, rec.Code)

			page := decode[pagination.Page[contract.PostResponse]](t, rec)
			assert.Equal(t, int64(3), page.Count)

			titles := make([]string, 0, len(page.Results))
			for _, p := range page.Results {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tt.titles, titles)

			if tt.next == "" {
				assert.Nil(t, page.Next)
			} else if assert.NotNil(t, page.Next) {
				assert.Equal(t, tt.next, *page.Next)
			}

			if tt.previous == "" {
				assert.Nil(t, page.Previous)
			} else if assert.NotNil(t, page.Previous) {
				assert.Equal(t, tt.previous, *page.Previous)
			}
		})
	}

	t.Run("invalid page", func(t *testing.T) {
		for _, q := range []string{"?page=0", "?page=abc", "?page=-1"} {
			assert.Equal(t, http.StatusBadRequest, s.do(t, nil, http.MethodGet, "/posts"+q, "").Code, q)
		}
	})
}

func TestProfiles(t *testing.T) {
	s := newTestServer(t)
	path := userPath(s.alice, "/profile")

	t.Run("read is never allowed", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.do(t, nil, http.MethodGet, path, "").Code)
		assert.Equal(t, http.StatusForbidden, s.do(t, s.bob, http.MethodGet, path, "").Code)
		assert.Equal(t, http.StatusMethodNotAllowed, s.do(t, s.alice, http.MethodGet, path, "").Code)
	})

	t.Run("path must be the actor", func(t *testing.T) {
		assert.Equal(t, http.StatusForbidden, s.do(t, nil, http.MethodPost, path, `{}`).Code)
		assert.Equal(t, http.StatusForbidden, s.do(t, s.bob, http.MethodPost, path, `{}`).Code)
		assert.Equal(t, http.StatusForbidden, s.do(t, s.admin, http.MethodDelete, path, "").Code)
	})

	t.Run("lifecycle", func(t *testing.T) {
		assert.Equal(t, http.StatusNotFound, s.do(t, s.alice, http.MethodPatch, path, `{"bio":"x"}`).Code)

		rec := s.do(t, s.alice, http.MethodPost, path, `{"bio":"hi"}`)
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		created := decode[contract.ProfileResponse](t, rec)
		assert.Equal(t, s.alice.ID, created.Owner)

		assert.Equal(t, http.StatusConflict, s.do(t, s.alice, http.MethodPost, path, `{}`).Code)

		rec = s.do(t, s.alice, http.MethodPut, path, `{"preferences":"dark"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, contract.ProfileResponse{ID: created.ID, Owner: s.alice.ID, Preferences: "dark"}, decode[contract.ProfileResponse](t, rec))

		rec = s.do(t, s.bob, http.MethodGet, userPath(s.alice, ""), "")
		require.Equal(t, http.StatusOK, rec.Code)
		user := decode[contract.UserResponse](t, rec)
		require.NotNil(t, user.Profile)
		assert.Equal(t, "dark", user.Profile.Preferences)

		assert.Equal(t, http.StatusNoContent, s.do(t, s.alice, http.MethodDelete, path, "").Code)
		assert.Equal(t, http.StatusNotFound, s.do(t, s.alice, http.MethodDelete, path, "").Code)
	})
}

func TestUsers(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, s.alice, http.MethodPost, "/posts", `{"title":"mine"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	assert.Equal(t, http.StatusForbidden, s.do(t, nil, http.MethodGet, userPath(s.alice, ""), "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(t, s.bob, http.MethodGet, "/users/4242", "").Code)

	rec = s.do(t, s.alice, http.MethodGet, "/users/@me", "")
	require.Equal(t, http.StatusOK, rec.Code)

	user := decode[map[string]any](t, rec)
	assert.Equal(t, "Alice", user["first_name"])
	assert.Nil(t, user["profile"])

	posts, ok := user["posts"].([]any)
	require.True(t, ok)
	require.Len(t, posts, 1)
	assert.NotContains(t, posts[0], "owner")
}

func TestRoutingErrors(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, nil, http.MethodGet, "/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decode[map[string]any](t, rec), "message")

	rec = s.do(t, nil, http.MethodPost, "/health", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
