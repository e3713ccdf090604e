package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/enttest"
	"github.com/tracklane/tracklane/pkg/models"

	_ "github.com/mattn/go-sqlite3"
)

func setupSettingsTest(t *testing.T) (*ent.Client, *SettingsHandler, *echo.Echo, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	handler := NewSettingsHandler(client)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	cleanup := func() { client.Close() }
	return client, handler, e, cleanup
}

func TestSettingsHandler_Get_Defaults(t *testing.T) {
	_, handler, e, cleanup := setupSettingsTest(t)
	defer cleanup()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/settings/compensation", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.CompensationSettingsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0.70, resp.StandardRate)
	assert.Equal(t, 0.80, resp.ExclusiveRate)
	assert.Equal(t, 0.85, resp.SyncFeeRate)
	assert.Equal(t, 0.05, resp.VolumeBonusRate)
	assert.Equal(t, 20, resp.VolumeBonusThreshold)
}

func TestSettingsHandler_Update(t *testing.T) {
	_, handler, e, cleanup := setupSettingsTest(t)
	defer cleanup()

	body := `{"standard_rate":0.75,"exclusive_rate":0.85,"sync_fee_rate":0.9,"volume_bonus_rate":0.1,"volume_bonus_threshold":10}`
	c, rec := postJSON(e, "/api/v1/admin/settings/compensation", body, 1)

	require.NoError(t, handler.Update(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	t.Run("get reflects the update", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/settings/compensation", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.Get(c))

		var resp models.CompensationSettingsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0.75, resp.StandardRate)
		assert.Equal(t, 10, resp.VolumeBonusThreshold)
	})

	t.Run("second update overwrites the singleton", func(t *testing.T) {
		body := `{"standard_rate":0.6,"exclusive_rate":0.7,"sync_fee_rate":0.8,"volume_bonus_rate":0.05,"volume_bonus_threshold":25}`
		c, rec := postJSON(e, "/api/v1/admin/settings/compensation", body, 1)

		require.NoError(t, handler.Update(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.CompensationSettingsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 0.6, resp.StandardRate)
	})

	t.Run("rejects rates above 1", func(t *testing.T) {
		body := `{"standard_rate":1.5,"exclusive_rate":0.8,"sync_fee_rate":0.85,"volume_bonus_rate":0.05,"volume_bonus_threshold":20}`
		c, rec := postJSON(e, "/api/v1/admin/settings/compensation", body, 1)

		require.NoError(t, handler.Update(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
