package responses

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"esg-backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupResponsesTest(t *testing.T) (*Handlers, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.ESGResponse{}))
	return &Handlers{Service: &Service{DB: db}}, db
}

func newApp(h *Handlers, userID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_id", userID)
		return c.Next()
	})
	app.Get("/api/responses", h.List)
	app.Post("/api/responses", h.Create)
	app.Delete("/api/responses/:id", h.Delete)
	return app
}

func createResponse(t *testing.T, app *fiber.App, body map[string]interface{}) models.ESGResponse {
	t.Helper()
	b, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/api/responses", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)
	var record models.ESGResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&record))
	return record
}

func TestCreate_ComputesDerivedMetrics(t *testing.T) {
	h, _ := setupResponsesTest(t)
	app := newApp(h, uuid.New())

	record := createResponse(t, app, map[string]interface{}{
		"financialYear":                   "2024",
		"totalElectricityConsumption":     1000,
		"renewableElectricityConsumption": 250,
		"totalEmployees":                  100,
		"femaleEmployees":                 40,
		"totalRevenue":                    500000,
		"carbonEmissions":                 50,
		"communityInvestmentSpend":        5000,
	})

	require.NotNil(t, record.RenewableElectricityRatio)
	assert.Equal(t, 25.0, *record.RenewableElectricityRatio)
	require.NotNil(t, record.DiversityRatio)
	assert.Equal(t, 40.0, *record.DiversityRatio)
	require.NotNil(t, record.CarbonIntensity)
	assert.Equal(t, 0.0001, *record.CarbonIntensity)
	require.NotNil(t, record.CommunitySpendRatio)
	assert.Equal(t, 1.0, *record.CommunitySpendRatio)
	assert.NotEqual(t, uuid.Nil, record.ResponseID)
}

func TestCreate_SuppliedDerivedStoredAsGiven(t *testing.T) {
	h, _ := setupResponsesTest(t)
	app := newApp(h, uuid.New())

	// Client supplies a ratio inconsistent with the raw fields; the store
	// keeps it as given rather than recomputing.
	record := createResponse(t, app, map[string]interface{}{
		"financialYear":                   "2024",
		"totalElectricityConsumption":     1000,
		"renewableElectricityConsumption": 250,
		"renewableElectricityRatio":       99.9,
	})
	require.NotNil(t, record.RenewableElectricityRatio)
	assert.Equal(t, 99.9, *record.RenewableElectricityRatio)
}

func TestCreate_AbsentMetricStoredAsNull(t *testing.T) {
	h, _ := setupResponsesTest(t)
	app := newApp(h, uuid.New())

	record := createResponse(t, app, map[string]interface{}{
		"financialYear":  "2024",
		"totalEmployees": 0,
	})
	require.NotNil(t, record.TotalEmployees)
	assert.Equal(t, 0.0, *record.TotalEmployees)
	assert.Nil(t, record.TotalFuelConsumption)
	assert.Nil(t, record.CarbonEmissions)
}

func TestCreate_MissingFinancialYear(t *testing.T) {
	h, _ := setupResponsesTest(t)
	app := newApp(h, uuid.New())

	b, _ := json.Marshal(map[string]interface{}{"totalEmployees": 10})
	req := httptest.NewRequest("POST", "/api/responses", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestCreate_CrossFieldInvariantsRejected(t *testing.T) {
	h, _ := setupResponsesTest(t)
	app := newApp(h, uuid.New())

	cases := []map[string]interface{}{
		{"financialYear": "2024", "femaleEmployees": 50, "totalEmployees": 40},
		{"financialYear": "2024", "renewableElectricityConsumption": 1100, "totalElectricityConsumption": 1000},
		{"financialYear": "2024", "independentBoardMembersPercent": 120},
		{"financialYear": "2024", "carbonEmissions": -5},
	}
	for _, body := range cases {
		b, _ := json.Marshal(body)
		req := httptest.NewRequest("POST", "/api/responses", bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, 400, resp.StatusCode)
	}
}

func TestList_NewestFirstAndIdempotent(t *testing.T) {
	h, db := setupResponsesTest(t)
	userID := uuid.New()
	app := newApp(h, userID)

	first := models.ESGResponse{UserID: userID, FinancialYear: "2022"}
	require.NoError(t, db.Create(&first).Error)
	second := models.ESGResponse{UserID: userID, FinancialYear: "2023"}
	require.NoError(t, db.Create(&second).Error)
	// Force distinct creation times regardless of clock resolution.
	require.NoError(t, db.Model(&first).Update("created_at", first.CreatedAt.Add(-time.Hour)).Error)

	fetch := func() []models.ESGResponse {
		req := httptest.NewRequest("GET", "/api/responses", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, 200, resp.StatusCode)
		var list []models.ESGResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
		return list
	}

	got := fetch()
	require.Len(t, got, 2)
	assert.Equal(t, "2023", got[0].FinancialYear)
	assert.Equal(t, "2022", got[1].FinancialYear)

	again := fetch()
	require.Len(t, again, 2)
	assert.Equal(t, got[0].ResponseID, again[0].ResponseID)
	assert.Equal(t, got[1].ResponseID, again[1].ResponseID)
}

func TestList_StableOrderForEqualTimestamps(t *testing.T) {
	h, db := setupResponsesTest(t)
	userID := uuid.New()

	ts := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	a := models.ESGResponse{UserID: userID, FinancialYear: "2023"}
	b := models.ESGResponse{UserID: userID, FinancialYear: "2024"}
	require.NoError(t, db.Create(&a).Error)
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Model(&a).Update("created_at", ts).Error)
	require.NoError(t, db.Model(&b).Update("created_at", ts).Error)

	got, err := h.Service.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	again, err := h.Service.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, again, 2)

	// Equal timestamps break the tie on id, so the order never flips.
	assert.Equal(t, got[0].ResponseID, again[0].ResponseID)
	assert.Equal(t, got[1].ResponseID, again[1].ResponseID)
	assert.Less(t, got[0].ResponseID.String(), got[1].ResponseID.String())
}

func TestList_DoesNotLeakOtherUsers(t *testing.T) {
	h, db := setupResponsesTest(t)
	userID := uuid.New()
	require.NoError(t, db.Create(&models.ESGResponse{UserID: uuid.New(), FinancialYear: "2024"}).Error)
	app := newApp(h, userID)

	req := httptest.NewRequest("GET", "/api/responses", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)
	var list []models.ESGResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Empty(t, list)
}

func TestGetByIDForUser_RoundTrip(t *testing.T) {
	h, _ := setupResponsesTest(t)
	userID := uuid.New()
	app := newApp(h, userID)

	created := createResponse(t, app, map[string]interface{}{
		"financialYear":   "2024",
		"carbonEmissions": 50,
		"totalRevenue":    500000,
		"carbonIntensity": 0.0001,
	})

	got, err := h.Service.GetByIDForUser(context.Background(), created.ResponseID, userID)
	require.NoError(t, err)
	assert.Equal(t, "2024", got.FinancialYear)
	require.NotNil(t, got.CarbonEmissions)
	assert.Equal(t, 50.0, *got.CarbonEmissions)
	require.NotNil(t, got.CarbonIntensity)
	assert.Equal(t, 0.0001, *got.CarbonIntensity)
}

func TestGetByIDForUser_ForeignOwnedIsNotFound(t *testing.T) {
	h, db := setupResponsesTest(t)
	other := models.ESGResponse{UserID: uuid.New(), FinancialYear: "2024"}
	require.NoError(t, db.Create(&other).Error)

	_, err := h.Service.GetByIDForUser(context.Background(), other.ResponseID, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete_ThenGone(t *testing.T) {
	h, _ := setupResponsesTest(t)
	userID := uuid.New()
	app := newApp(h, userID)

	created := createResponse(t, app, map[string]interface{}{"financialYear": "2024"})

	req := httptest.NewRequest("DELETE", "/api/responses/"+created.ResponseID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	_, err = h.Service.GetByIDForUser(context.Background(), created.ResponseID, userID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Double delete is NotFound, not a crash.
	req = httptest.NewRequest("DELETE", "/api/responses/"+created.ResponseID.String(), nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestDelete_ForeignOwnedIsNotFound(t *testing.T) {
	h, db := setupResponsesTest(t)
	other := models.ESGResponse{UserID: uuid.New(), FinancialYear: "2024"}
	require.NoError(t, db.Create(&other).Error)
	app := newApp(h, uuid.New())

	req := httptest.NewRequest("DELETE", "/api/responses/"+other.ResponseID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)

	// Still there for its owner.
	var count int64
	require.NoError(t, db.Model(&models.ESGResponse{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDelete_MalformedID(t *testing.T) {
	h, _ := setupResponsesTest(t)
	app := newApp(h, uuid.New())

	req := httptest.NewRequest("DELETE", "/api/responses/not-a-uuid", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}
