package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/garden-api/internal/application/dto"
	"github.com/jhoicas/garden-api/internal/application/mapper"
	"github.com/jhoicas/garden-api/internal/application/usecase"
	"github.com/jhoicas/garden-api/internal/infrastructure/pdf"
	"github.com/jhoicas/garden-api/internal/infrastructure/persistence"
	"github.com/jhoicas/garden-api/internal/infrastructure/persistence/testdb"
	apphttp "github.com/jhoicas/garden-api/internal/interfaces/http"
)

func init() {
	mapper.PasswordCost = bcrypt.MinCost
}

type apiClient struct {
	t     *testing.T
	app   *fiber.App
	token string
}

// newAPI monta el router completo sobre una base SQLite en memoria.
func newAPI(t *testing.T) *apiClient {
	t.Helper()
	db := testdb.New(t)
	uows := persistence.NewUnitOfWorkFactory(db)

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	app.Use(apphttp.MetricsMiddleware())
	apphttp.Router(app, apphttp.RouterDeps{
		Services:   usecase.NewServices(uows),
		OrderSheet: usecase.NewOrderSheetUseCase(uows, pdf.NewOrderSheetGenerator("Garden")),
		Ping:       func(ctx context.Context) error { return persistence.Ping(ctx, db) },
		JWTSecret:  testJWTSecret,
		JWTIssuer:  testIssuer,
		Roles:      []string{"Employee"},
	})
	return &apiClient{t: t, app: app, token: tokenForRole(t, "Employee")}
}

// do envía la petición autenticada; body puede ser nil, un string crudo o un valor a serializar.
func (a *apiClient) do(method, path string, body any) (*http.Response, []byte) {
	a.t.Helper()
	var r io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		r = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(a.t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if a.token != "" {
		req.Header.Set("Authorization", a.token)
	}
	resp, err := a.app.Test(req, -1)
	require.NoError(a.t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(a.t, err)
	return resp, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func errorCode(t *testing.T, raw []byte) string {
	return decode[dto.ErrorResponse](t, raw).Code
}

func TestCrud_CrearObtenerActualizarEliminar(t *testing.T) {
	api := newAPI(t)

	resp, raw := api.do(http.MethodPost, "/api/roles", dto.RoleDTO{Name: "Employee"})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	created := decode[dto.RoleDTO](t, raw)
	require.NotZero(t, created.ID)
	assert.Equal(t, "/api/roles/"+strconv.FormatInt(created.ID, 10), resp.Header.Get("Location"))

	path := "/api/roles/" + strconv.FormatInt(created.ID, 10)
	resp, raw = api.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created, decode[dto.RoleDTO](t, raw))

	resp, raw = api.do(http.MethodPut, path, dto.RoleDTO{Name: "Manager"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	resp, raw = api.do(http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Manager", decode[dto.RoleDTO](t, raw).Name)

	resp, _ = api.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, raw = api.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))

	resp, _ = api.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCrud_ListaDevuelveArray(t *testing.T) {
	api := newAPI(t)

	resp, raw := api.do(http.MethodGet, "/api/offices", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, "[]", string(raw))

	office := dto.OfficeDTO{Code: "BCN-ES", City: "Barcelona", Country: "España", PostalCode: "08019", Phone: "+34 93 3561182", AddressLine1: "Avenida Diagonal, 38"}
	resp, _ = api.do(http.MethodPost, "/api/offices", office)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, raw = api.do(http.MethodGet, "/api/offices", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]dto.OfficeDTO](t, raw)
	require.Len(t, list, 1)
	assert.Equal(t, "Barcelona", list[0].City)
}

func TestCrud_IDInexistenteSiempre404(t *testing.T) {
	api := newAPI(t)

	for _, p := range []string{"/api/roles/999", "/api/users/999", "/api/clients/999", "/api/employees/999",
		"/api/offices/999", "/api/orders/999", "/api/order-details/999", "/api/product-lines/999",
		"/api/products/999", "/api/payments/999"} {
		resp, _ := api.do(http.MethodGet, p, nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, p)
	}

	resp, _ := api.do(http.MethodPut, "/api/roles/999", dto.RoleDTO{Name: "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCrud_PeticionesInvalidas400(t *testing.T) {
	api := newAPI(t)

	cases := []struct {
		name   string
		method string
		path   string
		body   any
		code   string
	}{
		{"id no numérico", http.MethodGet, "/api/roles/abc", nil, "INVALID_ID"},
		{"id negativo", http.MethodDelete, "/api/roles/-1", nil, "INVALID_ID"},
		{"json roto", http.MethodPost, "/api/roles", "{", "INVALID_BODY"},
		{"cuerpo null", http.MethodPost, "/api/roles", "null", "VALIDATION"},
		{"campo requerido", http.MethodPost, "/api/roles", dto.RoleDTO{}, "VALIDATION"},
		{"email inválido", http.MethodPost, "/api/users", dto.UserDTO{Username: "ana", Email: "no-es-email", Password: "secreto123", RoleID: 1}, "VALIDATION"},
		{"pedido sin cliente", http.MethodPost, "/api/orders", map[string]any{
			"order_date": "2024-03-01T00:00:00Z", "expected_date": "2024-03-05T00:00:00Z", "status": "Pendiente",
		}, "VALIDATION"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, raw := api.do(tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, string(raw))
			assert.Equal(t, tc.code, errorCode(t, raw))
		})
	}
}

func TestCrud_PutConIDDistintoEnCuerpo(t *testing.T) {
	api := newAPI(t)

	_, raw := api.do(http.MethodPost, "/api/roles", dto.RoleDTO{Name: "Employee"})
	created := decode[dto.RoleDTO](t, raw)

	path := "/api/roles/" + strconv.FormatInt(created.ID, 10)
	resp, raw := api.do(http.MethodPut, path, dto.RoleDTO{ID: created.ID + 10, Name: "Otro"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, raw))
}

func TestCrud_DuplicadoYReferencias(t *testing.T) {
	api := newAPI(t)

	_, raw := api.do(http.MethodPost, "/api/roles", dto.RoleDTO{Name: "Employee"})
	role := decode[dto.RoleDTO](t, raw)

	resp, raw := api.do(http.MethodPost, "/api/roles", dto.RoleDTO{Name: "Employee"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errorCode(t, raw))

	resp, raw = api.do(http.MethodPost, "/api/users", dto.UserDTO{Username: "ana", Email: "ana@garden.test", Password: "secreto123", RoleID: 999})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_REFERENCE", errorCode(t, raw))

	resp, raw = api.do(http.MethodPost, "/api/users", dto.UserDTO{Username: "ana", Email: "ana@garden.test", Password: "secreto123", RoleID: role.ID})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	assert.NotContains(t, string(raw), "password")

	resp, raw = api.do(http.MethodDelete, "/api/roles/"+strconv.FormatInt(role.ID, 10), nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "CONFLICT", errorCode(t, raw))
}

func TestCrud_SinTokenRetorna401(t *testing.T) {
	api := newAPI(t)
	api.token = ""

	resp, _ := api.do(http.MethodGet, "/api/roles", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCrud_RolNoPermitidoRetorna403(t *testing.T) {
	api := newAPI(t)
	api.token = tokenForRole(t, "Client")

	resp, _ := api.do(http.MethodGet, "/api/roles", nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestOrderSheet_DescargaPDF(t *testing.T) {
	api := newAPI(t)

	_, raw := api.do(http.MethodPost, "/api/clients", dto.ClientDTO{Name: "Viveros Sol", Phone: "600", AddressLine1: "C/ Mayor 3", City: "Madrid"})
	client := decode[dto.ClientDTO](t, raw)
	require.NotZero(t, client.ID, string(raw))

	resp, raw := api.do(http.MethodPost, "/api/orders", map[string]any{
		"order_date": "2024-03-01T00:00:00Z", "expected_date": "2024-03-05T00:00:00Z",
		"status": "Pendiente", "client_id": client.ID,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	order := decode[dto.OrderDTO](t, raw)

	resp, raw = api.do(http.MethodGet, "/api/orders/"+strconv.FormatInt(order.ID, 10)+"/pdf", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))

	resp, _ = api.do(http.MethodGet, "/api/orders/999/pdf", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHealthYMetrics(t *testing.T) {
	api := newAPI(t)
	api.token = ""

	resp, raw := api.do(http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "up", decode[dto.HealthResponse](t, raw).Database)

	resp, raw = api.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(raw), "garden_http_requests_total")
}

func TestRutaInexistente404(t *testing.T) {
	api := newAPI(t)
	api.token = ""

	resp, raw := api.do(http.MethodGet, "/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))
}

// create da de alta un registro y devuelve su id.
func (a *apiClient) create(path string, body any) int64 {
	a.t.Helper()
	resp, raw := a.do(http.MethodPost, path, body)
	require.Equal(a.t, http.StatusCreated, resp.StatusCode, "%s: %s", path, raw)
	out := decode[map[string]any](a.t, raw)
	id, ok := out["id"].(float64)
	require.True(a.t, ok, "%s: id ausente en %s", path, raw)
	return int64(id)
}

// jsonValue normaliza v a la forma que tendría tras decodificar JSON (números float64, etc.).
func jsonValue(t *testing.T, v any) any {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	var out any
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func TestCrud_CicloCompletoEnTodasLasEntidades(t *testing.T) {
	api := newAPI(t)

	roleID := api.create("/api/roles", map[string]any{"name": "Employee"})
	officeID := api.create("/api/offices", map[string]any{
		"code": "MAD-ES", "city": "Madrid", "country": "España", "postal_code": "28001",
		"phone": "+34 91 000", "address_line1": "Gran Vía 1",
	})
	bossID := api.create("/api/employees", map[string]any{
		"first_name": "Marcos", "last_name1": "Magaña", "extension": "3897",
		"email": "marcos@garden.test", "office_id": officeID,
	})
	clientID := api.create("/api/clients", map[string]any{
		"name": "Viveros Sol", "phone": "600", "address_line1": "C/ Mayor 3", "city": "Madrid",
	})
	lineID := api.create("/api/product-lines", map[string]any{"name": "Frutales"})
	productID := api.create("/api/products", map[string]any{
		"code": "FR-1", "name": "Limonero", "product_line_id": lineID, "sale_price": "12.50", "supplier_price": "8",
	})
	orderID := api.create("/api/orders", map[string]any{
		"order_date": "2024-03-01T00:00:00Z", "expected_date": "2024-03-05T00:00:00Z",
		"status": "Pendiente", "client_id": clientID,
	})

	cases := []struct {
		path   string
		body   map[string]any
		field  string
		update any
	}{
		{"/api/roles", map[string]any{"name": "Manager"}, "name", "Director"},
		{"/api/users", map[string]any{
			"username": "luis", "email": "luis@garden.test", "password": "secreto123", "role_id": roleID,
		}, "email", "luis.m@garden.test"},
		{"/api/offices", map[string]any{
			"code": "PAR-FR", "city": "Paris", "country": "Francia", "postal_code": "75017",
			"phone": "+33 14 723 4404", "address_line1": "29 Rue Jouffroy d'abbans",
		}, "city", "Lyon"},
		{"/api/employees", map[string]any{
			"first_name": "Ruben", "last_name1": "López", "extension": "2899",
			"email": "ruben@garden.test", "office_id": officeID, "boss_id": bossID,
		}, "job_title", "Subdirector Marketing"},
		{"/api/clients", map[string]any{
			"name": "Jardines Luna", "phone": "601", "address_line1": "C/ Sol 1", "city": "Toledo",
			"sales_rep_id": bossID, "credit_limit": "1500.50",
		}, "city", "Talavera"},
		{"/api/product-lines", map[string]any{"name": "Ornamentales"}, "description_text", "Plantas de adorno"},
		{"/api/products", map[string]any{
			"code": "OR-1", "name": "Rosal", "product_line_id": lineID, "stock_quantity": 4,
			"sale_price": "10.00", "supplier_price": "5",
		}, "name", "Rosal trepador"},
		{"/api/orders", map[string]any{
			"order_date": "2024-03-01T10:00:00+02:00", "expected_date": "2024-03-04T10:00:00+02:00",
			"status": "Pendiente", "client_id": clientID,
		}, "status", "Entregado"},
		{"/api/order-details", map[string]any{
			"order_id": orderID, "product_id": productID, "quantity": 3, "unit_price": "12.50", "line_number": 1,
		}, "quantity", 5},
		{"/api/payments", map[string]any{
			"client_id": clientID, "payment_method": "PayPal", "transaction_id": "ak-std-000001",
			"payment_date": "2024-03-10T00:00:00Z", "total": "0",
		}, "payment_method", "Transferencia"},
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			api := &apiClient{t: t, app: api.app, token: api.token}

			resp, created := api.do(http.MethodPost, tc.path, tc.body)
			require.Equal(t, http.StatusCreated, resp.StatusCode, string(created))
			location := resp.Header.Get("Location")
			require.NotEmpty(t, location)

			// La respuesta del alta es idéntica a la de una lectura posterior.
			resp, fetched := api.do(http.MethodGet, location, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, string(created), string(fetched))

			body := make(map[string]any, len(tc.body)+1)
			for k, v := range tc.body {
				body[k] = v
			}
			body[tc.field] = tc.update
			resp, updated := api.do(http.MethodPut, location, body)
			require.Equal(t, http.StatusOK, resp.StatusCode, string(updated))

			resp, fetched = api.do(http.MethodGet, location, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			assert.JSONEq(t, string(updated), string(fetched))
			assert.Equal(t, jsonValue(t, tc.update), decode[map[string]any](t, fetched)[tc.field])

			resp, _ = api.do(http.MethodDelete, location, nil)
			assert.Equal(t, http.StatusNoContent, resp.StatusCode)
			resp, _ = api.do(http.MethodGet, location, nil)
			assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		})
	}
}

func TestMetrics_SobreviveAVariosMetodosYRutas(t *testing.T) {
	api := newAPI(t)

	id := api.create("/api/roles", map[string]any{"name": "Employee"})
	path := "/api/roles/" + strconv.FormatInt(id, 10)
	for i := 0; i < 3; i++ {
		api.do(http.MethodPut, path, map[string]any{"name": "Employee"})
		api.do(http.MethodGet, "/api/roles/999", nil)
		api.do(http.MethodDelete, "/api/roles/999", nil)
		api.do(http.MethodPost, "/api/roles", "{")
		api.do(http.MethodGet, "/no-existe", nil)
	}
	resp, _ := api.do(http.MethodDelete, path, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	for i := 0; i < 2; i++ {
		resp, raw := api.do(http.MethodGet, "/metrics", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

		out := string(raw)
		assert.Contains(t, out, `garden_http_requests_total{method="PUT",path="/api/roles/:id",status="200"}`)
		assert.Contains(t, out, `garden_http_requests_total{method="DELETE",path="/api/roles/:id",status="404"}`)
		assert.Contains(t, out, `garden_http_requests_total{method="GET",path="/api/roles/:id",status="404"}`)
		assert.Contains(t, out, `garden_http_requests_total{method="GET",path="unmatched",status="404"}`)
		assert.NotContains(t, out, `method="DEL"`)
	}
}
