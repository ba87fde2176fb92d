package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/launchbase/launchbase-backend/internal/logger"
	"github.com/launchbase/launchbase-backend/internal/repos"
	"github.com/launchbase/launchbase-backend/internal/requestdata"
	"github.com/launchbase/launchbase-backend/internal/services"
	"github.com/launchbase/launchbase-backend/internal/types"
)

func authTestRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&types.User{}, &types.UserToken{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger init: %v", err)
	}

	authService := services.NewAuthService(db, log, repos.NewUserRepo(db, log), repos.NewUserTokenRepo(db, log), "test-secret", time.Hour, 24*time.Hour)
	user := &types.User{
		Email:     "founder@example.com",
		Password:  "hunter2hunter2",
		FirstName: "Pat",
		LastName:  "Founder",
	}
	if err := authService.RegisterUser(context.Background(), user); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	access, _, err := authService.LoginUser(context.Background(), "founder@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	router := gin.New()
	am := NewAuthMiddleware(log, authService)
	router.GET("/protected", am.RequireAuth(), func(c *gin.Context) {
		rd := requestdata.GetRequestData(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user_id": rd.UserID})
	})
	return router, access
}

func TestRequireAuthWithBearerHeader(t *testing.T) {
	router, access := authTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+access)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestRequireAuthWithQueryToken(t *testing.T) {
	router, access := authTestRouter(t)

	// EventSource cannot set headers; the token query param covers it
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected?token="+access, nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}

func TestRequireAuthMissingToken(t *testing.T) {
	router, _ := authTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
}

func TestRequireAuthBadToken(t *testing.T) {
	router, _ := authTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", w.Code)
	}
}
