package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/adega-api/internal/application/analytics"
	"github.com/jhoicas/adega-api/internal/application/apptest"
	"github.com/jhoicas/adega-api/internal/application/cash"
	"github.com/jhoicas/adega-api/internal/application/inventory"
	"github.com/jhoicas/adega-api/internal/application/usecase"
	"github.com/jhoicas/adega-api/internal/domain/entity"
	"github.com/jhoicas/adega-api/internal/infrastructure/pdf"
	"github.com/jhoicas/adega-api/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/adega-api/internal/interfaces/http"
	"github.com/jhoicas/adega-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre un store en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *apptest.Store) {
	t.Helper()
	store := apptest.NewStore()
	now := func() time.Time { return time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC) }

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC: usecase.NewProductUseCase(store.Products()),
		StockUC: inventory.NewStockUseCase(
			store.TxRunner(), store.Products(), store.StockIns(), store.StockOuts(), store.Levels(),
		),
		CashUC: cash.NewCashUseCase(store.Cash()),
		ReportUC: analytics.NewReportUseCase(
			store.StockOuts(), store.Cash(), pdf.NewMarotoReportGenerator("Adega"), xlsx.NewExcelExporter(),
		),
		DashboardUC: analytics.NewDashboardUseCase(
			store.Products(), store.StockOuts(), store.Cash(), store.Levels(), 10, now,
		),
		Log: logger.Nop(),
	})
	return app, store
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp, out
}

func createProduct(t *testing.T, app *fiber.App, name string) int64 {
	t.Helper()
	resp, body := doJSON(t, app, http.MethodPost, "/produtos", map[string]any{
		"nome": name, "tipo_bebida": "cerveja", "fornecedor": "Ambev",
		"custo": 3.2, "valor_venda": "6.50",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	return int64(body["id"].(float64))
}

// ──────────────────────────────────────────────────────────────────────────────
// Produtos
// ──────────────────────────────────────────────────────────────────────────────

func TestProdutos_CrearYObtener(t *testing.T) {
	app, _ := buildTestApp(t)
	id := createProduct(t, app, "Skol Lata")

	resp, body := doJSON(t, app, http.MethodGet, "/produtos/"+itoa(id), nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Skol Lata", body["nome"])
	assert.Equal(t, 6.5, body["valor_venda"], "los montos viajan como números JSON")
	assert.Nil(t, body["validade"])
}

func TestProdutos_CrearSinNombre_400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp, body := doJSON(t, app, http.MethodPost, "/produtos", map[string]any{
		"tipo_bebida": "vinho", "fornecedor": "X", "custo": 1, "valor_venda": 2,
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, body["code"])
	assert.Contains(t, body["error"], "nome")
}

func TestProdutos_CuerpoInvalido_400(t *testing.T) {
	app, _ := buildTestApp(t)
	req := httptest.NewRequest(http.MethodPost, "/produtos", bytes.NewBufferString("{nome"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestProdutos_IDInvalido_400(t *testing.T) {
	app, _ := buildTestApp(t)
	resp, body := doJSON(t, app, http.MethodGet, "/produtos/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidID, body["code"])
}

func TestProdutos_EliminarInexistente_404(t *testing.T) {
	app, _ := buildTestApp(t)
	resp, body := doJSON(t, app, http.MethodDelete, "/produtos/77", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, body["code"])
	assert.NotEmpty(t, body["error"])
}

func TestProdutos_EliminarConMovimientos_409(t *testing.T) {
	app, _ := buildTestApp(t)
	id := createProduct(t, app, "Brahma")
	resp, _ := doJSON(t, app, http.MethodPost, "/estoque/entradas", map[string]any{
		"produto_id": id, "data": "2024-03-01", "quantidade": 24, "valor_compra": 60,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := doJSON(t, app, http.MethodDelete, "/produtos/"+itoa(id), nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, apphttp.CodeProductInUse, body["code"])
}

func TestProdutos_EliminarSinMovimientos_200(t *testing.T) {
	app, _ := buildTestApp(t)
	id := createProduct(t, app, "Guaraná")

	resp, body := doJSON(t, app, http.MethodDelete, "/produtos/"+itoa(id), nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, body["message"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Estoque y caixa
// ──────────────────────────────────────────────────────────────────────────────

func TestEstoque_SaidaGeneraEntradaDeCaixa(t *testing.T) {
	app, _ := buildTestApp(t)
	id := createProduct(t, app, "Heineken")

	resp, body := doJSON(t, app, http.MethodPost, "/estoque/saidas", map[string]any{
		"produto_id": id, "data": "2024-03-10", "quantidade": 3, "valor_venda": 10.0,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	produto, ok := body["produto"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Heineken", produto["nome"])

	resp, saldo := doJSON(t, app, http.MethodGet, "/caixa/saldo", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 30.0, saldo["entradas"])
	assert.Equal(t, 0.0, saldo["saidas"])
	assert.Equal(t, 30.0, saldo["saldo_total"])
}

func TestEstoque_SaidaValorVendaInvalido_400(t *testing.T) {
	for _, v := range []any{"10.005", 0, "0.001"} {
		app, store := buildTestApp(t)
		id := createProduct(t, app, "Heineken")

		resp, body := doJSON(t, app, http.MethodPost, "/estoque/saidas", map[string]any{
			"produto_id": id, "data": "2024-03-10", "quantidade": 3, "valor_venda": v,
		})
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "valor_venda %v", v)
		assert.Equal(t, apphttp.CodeValidation, body["code"])
		assert.Contains(t, body["error"], "valor_venda")
		assert.Zero(t, store.OutCount())
		assert.Zero(t, store.CashCount())
	}
}

func TestEstoque_ProductoInexistente_404(t *testing.T) {
	app, _ := buildTestApp(t)
	resp, _ := doJSON(t, app, http.MethodPost, "/estoque/entradas", map[string]any{
		"produto_id": 5, "data": "2024-03-01", "quantidade": 1, "valor_compra": 1,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCaixa_TipoInvalido_400(t *testing.T) {
	app, store := buildTestApp(t)
	resp, body := doJSON(t, app, http.MethodPost, "/caixa/transacoes", map[string]any{
		"tipo": "transferencia", "valor": 10, "data": "2024-03-01",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeValidation, body["code"])
	assert.Zero(t, store.CashCount())
}

func TestCaixa_FluxoFechaInvalida_400(t *testing.T) {
	app, _ := buildTestApp(t)
	for _, q := range []string{"data_inicio=2024-31-01", "data_fim=ontem", "data_inicio=2024-02-01&data_fim=2024-01-01"} {
		resp, body := doJSON(t, app, http.MethodGet, "/caixa/fluxo?"+q, nil)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, q)
		assert.Equal(t, apphttp.CodeValidation, body["code"], q)
	}
}

func TestCaixa_FluxoPeriodo(t *testing.T) {
	app, _ := buildTestApp(t)
	for _, tx := range []map[string]any{
		{"tipo": "entrada", "valor": 100, "data": "2024-01-10"},
		{"tipo": "saida", "descricao": "luz", "valor": 35.5, "data": "2024-01-11"},
		{"tipo": "entrada", "valor": 999, "data": "2024-02-01"},
	} {
		resp, _ := doJSON(t, app, http.MethodPost, "/caixa/transacoes", tx)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, body := doJSON(t, app, http.MethodGet, "/caixa/fluxo?data_inicio=2024-01-01&data_fim=2024-01-31", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["transacoes"], 2)
	resumo := body["resumo"].(map[string]any)
	assert.Equal(t, 100.0, resumo["entradas"])
	assert.Equal(t, 35.5, resumo["saidas"])
	assert.Equal(t, 64.5, resumo["saldo_periodo"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Relatórios
// ──────────────────────────────────────────────────────────────────────────────

func TestRelatorios_DashboardForma(t *testing.T) {
	app, store := buildTestApp(t)
	id := createProduct(t, app, "Vodka")
	require.NoError(t, store.StockIns().Create(context.Background(), &entity.StockIn{
		ProductID: id, Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Quantity: 4,
	}))

	resp, body := doJSON(t, app, http.MethodGet, "/relatorios/dashboard", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stats := body["estatisticas"].(map[string]any)
	assert.Equal(t, 1.0, stats["total_produtos"])
	assert.Equal(t, 1.0, stats["produtos_estoque_baixo"])
	low := body["produtos_estoque_baixo"].([]any)
	require.Len(t, low, 1)
	assert.Equal(t, 4.0, low[0].(map[string]any)["estoque_atual"])
	assert.NotNil(t, body["ultimas_transacoes"])
}

func TestRelatorios_VendasXLSX(t *testing.T) {
	app, _ := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/relatorios/vendas/xlsx?data_inicio=2024-01-01", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "relatorio-vendas-2024-01-01.xlsx")
}

func TestRelatorios_FinanceiroPDF(t *testing.T) {
	app, _ := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/relatorios/financeiro/pdf", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
}

func itoa(id int64) string { return strconv.FormatInt(id, 10) }
