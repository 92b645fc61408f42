package plan

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "myra/internal/shared/errors"
	"myra/internal/shared/utils"
)

func bindBody(t *testing.T, body string, obj interface{}) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("POST", "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return utils.BindJSON(c, obj)
}

func TestMonitoringAreaRequest_Binding(t *testing.T) {
	t.Run("purpose type ids must be present", func(t *testing.T) {
		var req MonitoringAreaRequest
		err := bindBody(t, `{"name":"Transect A"}`, &req)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})

	t.Run("an empty purpose list is accepted", func(t *testing.T) {
		var req MonitoringAreaRequest
		err := bindBody(t, `{"name":"Transect A","purposeTypeIds":[]}`, &req)
		require.NoError(t, err)
		require.NotNil(t, req.PurposeTypeIDs)
		assert.Empty(t, req.PurposeTypeIDs)
	})

	t.Run("name is still required", func(t *testing.T) {
		var req MonitoringAreaRequest
		err := bindBody(t, `{"purposeTypeIds":[1,2]}`, &req)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidationError(err))
	})
}
