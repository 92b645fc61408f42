package plan

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"myra/internal/application/plan/usecases"
	"myra/internal/domain/agreement"
	"myra/internal/infrastructure/persistence/models"
	"myra/internal/infrastructure/repository"
	"myra/internal/shared/constants"
	"myra/internal/shared/logger"
)

// openAgreements grants every agreement; authorization rules have their own
// tests in the agreement package.
type openAgreements struct{}

func (openAgreements) Exists(ctx context.Context, agreementID string) (bool, error) {
	return true, nil
}

func (openAgreements) ZoneUserID(ctx context.Context, agreementID string) (*uint, error) {
	return nil, nil
}

func (openAgreements) IsHolder(ctx context.Context, userID uint, agreementID string) (bool, error) {
	return false, nil
}

func newPastureRouter(t *testing.T) (*gin.Engine, uint) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.PlanModel{}, &models.PastureModel{}))

	planRepo := repository.NewPlanRepository(gdb)
	p := models.PlanModel{AgreementID: "RAN075974", StatusID: 1, CreatorID: 1, Version: constants.PlanVersionCurrent}
	require.NoError(t, planRepo.Create(context.Background(), &p))

	log := logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
	access := agreement.NewAccessChecker(openAgreements{})
	pastures := usecases.NewPastureUseCases(planRepo, access, repository.NewPastureRepository(gdb), log)
	handler := NewPastureHandler(pastures, log)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(constants.ContextKeyUserID, uint(1))
		c.Set(constants.ContextKeyUserRole, constants.RoleAdmin)
	})
	r.POST("/api/v1/plan/:planId/pasture", handler.CreatePasture)
	return r, p.CanonicalID
}

func TestPastureHandler_CreatePasture(t *testing.T) {
	r, planID := newPastureRouter(t)

	t.Run("create replies 200 with the stored pasture", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost,
			fmt.Sprintf("/api/v1/plan/%d/pasture", planID),
			strings.NewReader(`{"name":"North Field"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			ID   uint   `json:"id"`
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotZero(t, body.ID)
		assert.Equal(t, "North Field", body.Name)
	})

	t.Run("missing name replies 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost,
			fmt.Sprintf("/api/v1/plan/%d/pasture", planID),
			strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown plan replies 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost,
			"/api/v1/plan/9999/pasture",
			strings.NewReader(`{"name":"North Field"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
