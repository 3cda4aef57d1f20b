package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/matthieukhl/orderdesk/internal/clients"
	"github.com/matthieukhl/orderdesk/internal/orders"
	"github.com/matthieukhl/orderdesk/internal/store/memory"
)

func newTestServer() *Server {
	gin.SetMode(gin.TestMode)
	st := memory.New()
	return NewServer(st, clients.New(st), orders.New(st, false))
}

func (s *Server) do(method, target string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func envelope(data map[string]any) map[string]any {
	return map[string]any{"data": data}
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	return body
}

func TestCompanyInfoProvisionsClient(t *testing.T) {
	srv := newTestServer()

	w := srv.do(http.MethodGet, "/company-info?email=fresh@example.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["is_new_client"] != true {
		t.Fatalf("expected is_new_client true on first contact, got %v", body["is_new_client"])
	}
	info, ok := body["company_info"].(map[string]any)
	if !ok || info["name"] == "" {
		t.Fatalf("expected static company_info payload, got %v", body["company_info"])
	}

	w = srv.do(http.MethodGet, "/company-info?email=fresh@example.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on second lookup, got %d", w.Code)
	}
	body = decodeBody(t, w)
	if body["is_new_client"] != false {
		t.Fatalf("expected is_new_client false on second contact, got %v", body["is_new_client"])
	}
}

func TestGetClientOrdersUnknownClient(t *testing.T) {
	srv := newTestServer()

	w := srv.do(http.MethodGet, "/get-client-orders?email=ghost@example.com", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown client, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if _, hasOrders := body["orders"]; hasOrders {
		t.Fatalf("expected no orders array on 404, got %v", body["orders"])
	}
	if body["message"] == "" {
		t.Fatalf("expected message in 404 body")
	}
}

func TestAddClientRejectsDuplicate(t *testing.T) {
	srv := newTestServer()

	w := srv.do(http.MethodPost, "/add-client", envelope(map[string]any{"email": "a@x.com", "name": "A"}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	client, ok := body["client"].(map[string]any)
	if !ok {
		t.Fatalf("expected client in response, got %v", body)
	}
	if client["isNew"] != false {
		t.Fatalf("explicitly registered client must have isNew false, got %v", client["isNew"])
	}
	if client["user_id"] != nil {
		t.Fatalf("expected user_id null, got %v", client["user_id"])
	}

	w = srv.do(http.MethodPost, "/add-client", envelope(map[string]any{"email": "a@x.com", "name": "A"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for duplicate client, got %d", w.Code)
	}
}

func TestAddClientValidation(t *testing.T) {
	srv := newTestServer()

	w := srv.do(http.MethodPost, "/add-client", envelope(map[string]any{"email": "a@x.com"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing name, got %d", w.Code)
	}
}

func TestConnectOperator(t *testing.T) {
	srv := newTestServer()

	// Missing request field fails validation before any client lookup.
	w := srv.do(http.MethodPost, "/connect-operator", envelope(map[string]any{"email": "a@x.com"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing request, got %d", w.Code)
	}

	w = srv.do(http.MethodPost, "/connect-operator", envelope(map[string]any{"email": "a@x.com", "request": "help"}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown client, got %d", w.Code)
	}

	if w := srv.do(http.MethodPost, "/add-client", envelope(map[string]any{"email": "a@x.com", "name": "A"})); w.Code != http.StatusOK {
		t.Fatalf("add client: got %d", w.Code)
	}

	w = srv.do(http.MethodPost, "/connect-operator", envelope(map[string]any{"email": "a@x.com", "request": "help"}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := decodeBody(t, w)
	if body["status"] != "success" {
		t.Fatalf("expected success status, got %v", body["status"])
	}
}

func TestCreateOrderFlow(t *testing.T) {
	srv := newTestServer()

	// Unknown client first.
	w := srv.do(http.MethodPost, "/create-order", envelope(map[string]any{"email": "a@x.com", "total": 50}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown client, got %d", w.Code)
	}

	if w := srv.do(http.MethodPost, "/add-client", envelope(map[string]any{"email": "a@x.com", "name": "A"})); w.Code != http.StatusOK {
		t.Fatalf("add client: got %d", w.Code)
	}

	// A zero total is defined, so it passes validation.
	w = srv.do(http.MethodPost, "/create-order", envelope(map[string]any{"email": "a@x.com", "total": 0}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for zero total, got %d", w.Code)
	}
	body := decodeBody(t, w)
	order, ok := body["order"].(map[string]any)
	if !ok {
		t.Fatalf("expected order in response, got %v", body)
	}
	if order["order_id"] != float64(1) {
		t.Fatalf("expected first order_id 1, got %v", order["order_id"])
	}
	if order["status"] != "processing" {
		t.Fatalf("expected processing status, got %v", order["status"])
	}

	w = srv.do(http.MethodPost, "/create-order", envelope(map[string]any{"email": "a@x.com", "total": 75}))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body = decodeBody(t, w)
	order = body["order"].(map[string]any)
	if order["order_id"] != float64(2) {
		t.Fatalf("expected order_id 2, got %v", order["order_id"])
	}

	w = srv.do(http.MethodGet, "/get-client-orders?email=a@x.com", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body = decodeBody(t, w)
	ordersList, ok := body["orders"].([]any)
	if !ok {
		t.Fatalf("expected orders array, got %v", body["orders"])
	}
	if len(ordersList) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(ordersList))
	}
}

func TestCreateOrderValidation(t *testing.T) {
	srv := newTestServer()

	if w := srv.do(http.MethodPost, "/add-client", envelope(map[string]any{"email": "a@x.com", "name": "A"})); w.Code != http.StatusOK {
		t.Fatalf("add client: got %d", w.Code)
	}

	// total absent entirely
	w := srv.do(http.MethodPost, "/create-order", envelope(map[string]any{"email": "a@x.com"}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing total, got %d", w.Code)
	}

	// empty envelope
	w = srv.do(http.MethodPost, "/create-order", map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty body, got %d", w.Code)
	}
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer()

	w := srv.do(http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
