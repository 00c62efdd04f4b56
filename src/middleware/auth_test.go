package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/vendora/vendora-server/src/cache"
	"github.com/vendora/vendora-server/src/models"
	"github.com/vendora/vendora-server/src/repositories"
	"github.com/vendora/vendora-server/src/repositories/mock"
	"github.com/vendora/vendora-server/src/services"
)

const testSecret = "test-secret-for-unit-tests-32chars!!"

type authFixture struct {
	tokens *services.TokenService
	users  *services.UserService
	user   *models.User
}

// newAuthFixture wires a token service and user service around a single
// in-memory account
func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	tokens, err := services.NewTokenService(testSecret, time.Hour, 7*24*time.Hour)
	if err != nil {
		t.Fatalf("NewTokenService failed: %v", err)
	}

	user := &models.User{
		ID:     uuid.New(),
		Name:   "Test User",
		Email:  "test@example.com",
		Role:   models.RoleUser,
		Status: models.UserStatusActive,
	}

	repo := mock.NewUserRepository()
	repo.GetByIDFunc = func(ctx context.Context, id uuid.UUID) (*models.User, error) {
		if id == user.ID {
			return user, nil
		}
		return nil, repositories.ErrNotFound
	}

	users := services.NewUserService(repo, cache.NewMemory(time.Minute), 0)

	return &authFixture{tokens: tokens, users: users, user: user}
}

// newAuthRouter builds a router with RequireAuth plus any extra
// middleware and a probe endpoint that echoes the attached account
func newAuthRouter(f *authFixture, extra ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	chain := append([]gin.HandlerFunc{RequireAuth(f.tokens, f.users)}, extra...)
	router.GET("/protected", append(chain, func(c *gin.Context) {
		user := CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"userId": user.ID.String(), "role": user.Role})
	})...)

	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

// TestRequireAuth_ValidToken tests the happy path: valid token, live
// account, request passes with the account attached
func TestRequireAuth_ValidToken(t *testing.T) {
	f := newAuthFixture(t)
	router := newAuthRouter(f)

	token, err := f.tokens.Issue(f.user.ID, f.user.Role, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

// TestRequireAuth_MissingHeader tests rejection with no header at all
func TestRequireAuth_MissingHeader(t *testing.T) {
	f := newAuthFixture(t)
	router := newAuthRouter(f)

	w := doRequest(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

// TestRequireAuth_MalformedHeader tests rejection of a non-Bearer header
func TestRequireAuth_MalformedHeader(t *testing.T) {
	f := newAuthFixture(t)
	router := newAuthRouter(f)

	for _, header := range []string{"token-without-scheme", "Basic abc123"} {
		w := doRequest(router, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status 401, got %d", header, w.Code)
		}
	}
}

// TestRequireAuth_ExpiredToken tests that an expired token is rejected
func TestRequireAuth_ExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	router := newAuthRouter(f)

	token, err := f.tokens.Issue(f.user.ID, f.user.Role, -time.Minute)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 for expired token, got %d", w.Code)
	}
}

// TestRequireAuth_InvalidToken tests rejection of garbage tokens
func TestRequireAuth_InvalidToken(t *testing.T) {
	f := newAuthFixture(t)
	router := newAuthRouter(f)

	w := doRequest(router, "Bearer invalid_token")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}

// TestRequireAuth_DeletedAccount tests that a valid token for a deleted
// account is rejected
func TestRequireAuth_DeletedAccount(t *testing.T) {
	f := newAuthFixture(t)
	router := newAuthRouter(f)

	token, err := f.tokens.Issue(uuid.New(), models.RoleUser, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 for deleted account, got %d", w.Code)
	}
}

// TestRequireAuth_BannedAccount tests that a ban cuts off a still-valid
// token
func TestRequireAuth_BannedAccount(t *testing.T) {
	f := newAuthFixture(t)
	router := newAuthRouter(f)

	token, err := f.tokens.Issue(f.user.ID, f.user.Role, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// Token still works
	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 before ban, got %d", w.Code)
	}

	// Ban the account mid-session; the unexpired token must stop working
	f.user.Status = models.UserStatusBanned
	f.users.InvalidateAuth(f.user.ID)

	w = doRequest(router, "Bearer "+token)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 after ban, got %d", w.Code)
	}
}

// TestRequireRoles_Allowed tests that a matching role passes
func TestRequireRoles_Allowed(t *testing.T) {
	f := newAuthFixture(t)
	f.user.Role = models.RoleAdmin
	router := newAuthRouter(f, RequireRoles(models.RoleAdmin))

	token, err := f.tokens.Issue(f.user.ID, f.user.Role, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

// TestRequireRoles_Forbidden tests that a valid account with the wrong
// role gets 403, not 401
func TestRequireRoles_Forbidden(t *testing.T) {
	f := newAuthFixture(t)
	router := newAuthRouter(f, RequireRoles(models.RoleAdmin, models.RoleSuperAdmin))

	token, err := f.tokens.Issue(f.user.ID, f.user.Role, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", w.Code)
	}
}

// TestRequireRoles_EmptySet tests that declaring no roles restricts
// nothing
func TestRequireRoles_EmptySet(t *testing.T) {
	f := newAuthFixture(t)
	router := newAuthRouter(f, RequireRoles())

	token, err := f.tokens.Issue(f.user.ID, f.user.Role, time.Hour)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	w := doRequest(router, "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
}

// TestRequireRoles_WithoutAuth tests that RequireRoles alone, with no
// account attached, rejects as unauthenticated
func TestRequireRoles_WithoutAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", RequireRoles(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	w := doRequest(router, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", w.Code)
	}
}
