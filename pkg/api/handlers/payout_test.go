package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/enttest"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	"github.com/tracklane/tracklane/ent/sale"
	"github.com/tracklane/tracklane/ent/user"
	"github.com/tracklane/tracklane/pkg/models"
	"github.com/tracklane/tracklane/pkg/payments"
	"github.com/tracklane/tracklane/pkg/payout"

	_ "github.com/mattn/go-sqlite3"
)

const testWallet = "0x52908400098527886E0F7030069857D2E4169EE7"

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// stubTransferClient always succeeds with sequential transfer IDs
type stubTransferClient struct {
	calls int
}

func (s *stubTransferClient) CreateTransfer(ctx context.Context, req payments.TransferRequest) (*payments.Transfer, error) {
	s.calls++
	return &payments.Transfer{ID: fmt.Sprintf("transfer-%d", s.calls), Status: "pending"}, nil
}

func setupPayoutTest(t *testing.T) (*ent.Client, *PayoutHandler, *echo.Echo, func()) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")

	service := payout.NewService(client, &stubTransferClient{})
	handler := NewPayoutHandler(client, service)

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}

	cleanup := func() { client.Close() }
	return client, handler, e, cleanup
}

func seedProducerWithSale(t *testing.T, client *ent.Client, email string, amount float64, completedAt time.Time) *ent.User {
	t.Helper()
	ctx := context.Background()

	producer, err := client.User.Create().
		SetEmail(email).
		SetPasswordHash("x").
		SetName("Producer").
		SetRole(user.RoleProducer).
		SetWalletAddress(testWallet).
		SetActive(true).
		Save(ctx)
	require.NoError(t, err)

	buyer, err := client.User.Create().
		SetEmail("buyer-" + email).
		SetPasswordHash("x").
		SetName("Buyer").
		SetRole(user.RoleClient).
		SetActive(true).
		Save(ctx)
	require.NoError(t, err)

	tr, err := client.Track.Create().
		SetProducerID(producer.ID).
		SetTitle("Seed Track").
		SetStatus("published").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.Sale.Create().
		SetTrackID(tr.ID).
		SetProducerID(producer.ID).
		SetBuyerID(buyer.ID).
		SetLicenseType(sale.LicenseTypeStandard).
		SetAmount(amount).
		SetStatus(sale.StatusCompleted).
		SetCompletedAt(completedAt).
		Save(ctx)
	require.NoError(t, err)

	return producer
}

func postJSON(e *echo.Echo, path, body string, userID int) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c, rec
}

func TestPayoutHandler_Generate(t *testing.T) {
	client, handler, e, cleanup := setupPayoutTest(t)
	defer cleanup()

	completedAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seedProducerWithSale(t, client, "producer@example.com", 100, completedAt)

	t.Run("generates payouts for the month", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/admin/payouts/generate", `{"month":"2026-03"}`, 1)

		require.NoError(t, handler.Generate(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.GeneratePayoutsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Summary.PayoutsGenerated)
	})

	t.Run("rejects malformed month", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/admin/payouts/generate", `{"month":"2026-3"}`, 1)

		require.NoError(t, handler.Generate(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var resp models.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "invalid_month", resp.Error)
	})

	t.Run("rejects missing month", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/admin/payouts/generate", `{}`, 1)

		require.NoError(t, handler.Generate(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("second generation without force is a no-op", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/admin/payouts/generate", `{"month":"2026-03"}`, 1)

		require.NoError(t, handler.Generate(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.GeneratePayoutsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.False(t, resp.Success)
		assert.Contains(t, resp.Message, "already exist")
	})
}

func TestPayoutHandler_Disburse(t *testing.T) {
	client, handler, e, cleanup := setupPayoutTest(t)
	defer cleanup()

	completedAt := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seedProducerWithSale(t, client, "producer@example.com", 100, completedAt)

	c, _ := postJSON(e, "/api/v1/admin/payouts/generate", `{"month":"2026-03"}`, 1)
	require.NoError(t, handler.Generate(c))

	t.Run("dry run reports without paying", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/admin/payouts/disburse", `{"month":"2026-03","dryRun":true}`, 1)

		require.NoError(t, handler.Disburse(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.DisbursePayoutsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.DryRun)
		assert.Equal(t, 1, resp.Summary.Successful)

		pending, err := client.PayoutRecord.Query().
			Where(payoutrecord.StatusEQ(payoutrecord.StatusPending)).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, pending)
	})

	t.Run("disburses pending payouts", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/admin/payouts/disburse", `{"month":"2026-03"}`, 1)

		require.NoError(t, handler.Disburse(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.DisbursePayoutsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 1, resp.Summary.Successful)

		paid, err := client.PayoutRecord.Query().
			Where(payoutrecord.StatusEQ(payoutrecord.StatusPaid)).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, paid)
	})

	t.Run("no pending payouts left", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/admin/payouts/disburse", `{"month":"2026-03"}`, 1)

		require.NoError(t, handler.Disburse(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.DisbursePayoutsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 0, resp.Summary.Total)
	})
}

func TestPayoutHandler_Retry(t *testing.T) {
	_, handler, e, cleanup := setupPayoutTest(t)
	defer cleanup()

	t.Run("empty sweep succeeds", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/admin/payouts/retry", `{}`, 1)

		require.NoError(t, handler.Retry(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp models.RetryPayoutsResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, 0, resp.Summary.Total)
	})

	t.Run("rejects out-of-range maxRetries", func(t *testing.T) {
		c, rec := postJSON(e, "/api/v1/admin/payouts/retry", `{"maxRetries":50}`, 1)

		require.NoError(t, handler.Retry(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPayoutHandler_List(t *testing.T) {
	client, handler, e, cleanup := setupPayoutTest(t)
	defer cleanup()

	ctx := context.Background()
	producer, err := client.User.Create().
		SetEmail("producer@example.com").
		SetPasswordHash("x").
		SetName("Producer").
		SetRole(user.RoleProducer).
		SetActive(true).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.PayoutRecord.Create().
		SetProducerID(producer.ID).
		SetMonth("2026-03").
		SetAmount(70).
		SetStatus(payoutrecord.StatusPending).
		SetWalletAddress(testWallet).
		Save(ctx)
	require.NoError(t, err)

	t.Run("returns the month's records", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/payouts?month=2026-03", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.List(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var records []map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &records))
		require.Len(t, records, 1)
	})

	t.Run("rejects missing month", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/payouts", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler.List(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
