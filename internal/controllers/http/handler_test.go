package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clipworks-service/internal/domain"
	"clipworks-service/internal/repository/memory"
	"clipworks-service/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := services.NewOrderService(memory.NewStore(), nil)
	handler := NewHandler(s, t.TempDir())

	r := gin.New()
	handler.RegisterRoutes(r)
	return r
}

func postOrder(t *testing.T, r *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func orderBody() map[string]any {
	return map[string]any{
		"name":        "Jess Carter",
		"email":       "jess@example.com",
		"phone":       "555-0101",
		"videoType":   "Commercial",
		"videoLength": "1-3 minutes",
		"features":    []string{"Color Grading", "Visual Effects"},
		"totalPrice":  1300,
	}
}

func TestCreateOrder(t *testing.T) {
	r := newTestRouter(t)

	w := postOrder(t, r, orderBody())
	require.Equal(t, http.StatusCreated, w.Code)

	var order domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, uint64(1), order.ID)
	assert.Equal(t, "Jess Carter", order.Name)
	assert.Equal(t, []string{"Color Grading", "Visual Effects"}, order.Features)
	assert.Regexp(t, `^CW-\d{4}-[A-Z0-9]{6}$`, order.OrderRef)
	assert.Nil(t, order.Company)
	assert.False(t, order.CreatedAt.IsZero())
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(map[string]any)
		wantField string
	}{
		{name: "missing email", mutate: func(b map[string]any) { delete(b, "email") }, wantField: "email"},
		{name: "malformed email", mutate: func(b map[string]any) { b["email"] = "not-an-email" }, wantField: "email"},
		{name: "missing phone", mutate: func(b map[string]any) { b["phone"] = "" }, wantField: "phone"},
		{name: "missing video length", mutate: func(b map[string]any) { delete(b, "videoLength") }, wantField: "videoLength"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t)

			body := orderBody()
			tt.mutate(body)

			w := postOrder(t, r, body)
			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp struct {
				Error  string            `json:"error"`
				Fields map[string]string `json:"fields"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "validation_failed", resp.Error)
			assert.Contains(t, resp.Fields, tt.wantField)
		})
	}
}

func TestCreateOrderMalformedBody(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/orders", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListOrders(t *testing.T) {
	r := newTestRouter(t)

	first := orderBody()
	first["name"] = "First"
	require.Equal(t, http.StatusCreated, postOrder(t, r, first).Code)

	second := orderBody()
	second["name"] = "Second"
	require.Equal(t, http.StatusCreated, postOrder(t, r, second).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var orders []domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.Len(t, orders, 2)
	assert.NotEqual(t, orders[0].ID, orders[1].ID)
}

func TestListOrdersEmpty(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestGetOrder(t *testing.T) {
	r := newTestRouter(t)
	require.Equal(t, http.StatusCreated, postOrder(t, r, orderBody()).Code)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var order domain.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.Equal(t, uint64(1), order.ID)
}

func TestGetOrderMalformedID(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetOrderNotFound(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/orders/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
