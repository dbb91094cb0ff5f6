package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"bonded-wms/config"
	"bonded-wms/database"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type response struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	config.MAIN_ROUTES = "/api/v1"
	config.AuthEnabled = false

	db, err := database.OpenSQLite(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return NewApp(db), db
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}) (int, response) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, "/api/v1"+path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	return send(t, app, req)
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, response) {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out response
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func decode(t *testing.T, r response, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Data, v), string(r.Data))
}

// createID posts body and returns the numeric id of the created row.
func createID(t *testing.T, app *fiber.App, path string, body interface{}) uint {
	t.Helper()
	status, resp := call(t, app, http.MethodPost, path, body)
	require.Equal(t, http.StatusCreated, status, resp.Error)
	var row struct {
		ID uint `json:"id"`
	}
	decode(t, resp, &row)
	return row.ID
}

type seeded struct {
	category, supplier, warehouse, product uint
}

func seedViaAPI(t *testing.T, app *fiber.App) seeded {
	t.Helper()
	var s seeded
	s.category = createID(t, app, "/categories", fiber.Map{"name": "General"})
	s.supplier = createID(t, app, "/suppliers", fiber.Map{"name": "Default Supplier", "email": "sales@example.com"})
	s.warehouse = createID(t, app, "/warehouses", fiber.Map{"name": "Main", "location": "HQ"})
	s.product = createID(t, app, "/products", fiber.Map{
		"sku":         "SKU-001",
		"name":        "Item A",
		"category_id": s.category,
		"supplier_id": s.supplier,
		"unit_price":  "10.00",
	})
	return s
}

func (s seeded) movement(movementType string, qty int) fiber.Map {
	return fiber.Map{
		"product_id":    s.product,
		"warehouse_id":  s.warehouse,
		"movement_type": movementType,
		"quantity":      qty,
	}
}

type stockRow struct {
	ProductID     uint   `json:"product_id"`
	WarehouseID   uint   `json:"warehouse_id"`
	Quantity      int    `json:"quantity"`
	ProductName   string `json:"product_name"`
	WarehouseName string `json:"warehouse_name"`
}

func stockList(t *testing.T, app *fiber.App) []stockRow {
	t.Helper()
	status, resp := call(t, app, http.MethodGet, "/stock", nil)
	require.Equal(t, http.StatusOK, status)
	var rows []stockRow
	decode(t, resp, &rows)
	return rows
}

func TestProductionIssueScenario(t *testing.T) {
	app, _ := newTestApp(t)
	s := seedViaAPI(t, app)

	status, resp := call(t, app, http.MethodPost, "/movements", s.movement("INBOUND", 100))
	require.Equal(t, http.StatusCreated, status, resp.Error)
	var created struct {
		ID           string `json:"id"`
		MovementType string `json:"movement_type"`
		Reason       string `json:"reason"`
		ProductSKU   string `json:"product_sku"`
	}
	decode(t, resp, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "IN", created.MovementType)
	assert.Equal(t, "ADJUSTMENT", created.Reason)
	assert.Equal(t, "SKU-001", created.ProductSKU)

	rows := stockList(t, app)
	require.Len(t, rows, 1)
	assert.Equal(t, 100, rows[0].Quantity)
	assert.Equal(t, "Item A", rows[0].ProductName)
	assert.Equal(t, "Main", rows[0].WarehouseName)

	issue := s.movement("OUT", 30)
	issue["reason"] = "PRODUCTION_ISSUE"
	status, resp = call(t, app, http.MethodPost, "/movements/adjust", issue)
	require.Equal(t, http.StatusCreated, status, resp.Error)

	rows = stockList(t, app)
	require.Len(t, rows, 1)
	assert.Equal(t, 70, rows[0].Quantity)
}

func TestCreateAndAdjustHaveSameEffect(t *testing.T) {
	sequence := []struct {
		typ string
		qty int
	}{{"IN", 50}, {"OUT", 20}, {"OUT", 45}, {"IN", 5}}

	final := map[string]int{}
	for _, path := range []string{"/movements", "/movements/adjust"} {
		app, _ := newTestApp(t)
		s := seedViaAPI(t, app)
		for _, m := range sequence {
			status, resp := call(t, app, http.MethodPost, path, s.movement(m.typ, m.qty))
			require.Equal(t, http.StatusCreated, status, resp.Error)
		}
		rows := stockList(t, app)
		require.Len(t, rows, 1)
		final[path] = rows[0].Quantity
	}
	assert.Equal(t, -10, final["/movements"])
	assert.Equal(t, final["/movements"], final["/movements/adjust"])
}

func TestMovementValidation(t *testing.T) {
	app, db := newTestApp(t)
	s := seedViaAPI(t, app)

	tests := []struct {
		name string
		edit func(fiber.Map)
	}{
		{"zero quantity", func(m fiber.Map) { m["quantity"] = 0 }},
		{"negative quantity", func(m fiber.Map) { m["quantity"] = -4 }},
		{"unknown type", func(m fiber.Map) { m["movement_type"] = "SIDEWAYS" }},
		{"missing type", func(m fiber.Map) { delete(m, "movement_type") }},
		{"unknown reason", func(m fiber.Map) { m["reason"] = "THEFT" }},
		{"unknown product", func(m fiber.Map) { m["product_id"] = 9999 }},
		{"unknown warehouse", func(m fiber.Map) { m["warehouse_id"] = 9999 }},
		{"ill-typed quantity", func(m fiber.Map) { m["quantity"] = "ten" }},
		{"quantity above int32", func(m fiber.Map) { m["quantity"] = 2147483648 }},
		{"huge quantity", func(m fiber.Map) { m["quantity"] = int64(4611686018427387904) }},
		{"bad document date", func(m fiber.Map) { m["document_date"] = "17/10/2026" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := s.movement("IN", 10)
			tt.edit(body)
			status, resp := call(t, app, http.MethodPost, "/movements", body)
			assert.Equal(t, http.StatusBadRequest, status)
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Error)
		})
	}

	var movements int64
	require.NoError(t, db.Table("stock_movements").Count(&movements).Error)
	assert.Zero(t, movements)
	assert.Empty(t, stockList(t, app))
}

func TestMovementEditsAndDeletes(t *testing.T) {
	app, _ := newTestApp(t)
	s := seedViaAPI(t, app)

	status, resp := call(t, app, http.MethodPost, "/movements", s.movement("IN", 12))
	require.Equal(t, http.StatusCreated, status)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, resp, &created)

	status, _ = call(t, app, http.MethodPut, "/movements/"+created.ID, fiber.Map{"quantity": 99})
	assert.Equal(t, http.StatusBadRequest, status)

	status, resp = call(t, app, http.MethodPut, "/movements/"+created.ID, fiber.Map{
		"quantity":        12,
		"reason":          "BONDED_RECEIPT",
		"document_number": "GRN-001",
		"document_date":   "2026-10-01",
		"remarks":         "checked",
	})
	require.Equal(t, http.StatusOK, status, resp.Error)
	var updated struct {
		Reason         string `json:"reason"`
		DocumentNumber string `json:"document_number"`
		DocumentDate   string `json:"document_date"`
		Quantity       int    `json:"quantity"`
	}
	decode(t, resp, &updated)
	assert.Equal(t, "BONDED_RECEIPT", updated.Reason)
	assert.Equal(t, "GRN-001", updated.DocumentNumber)
	assert.Equal(t, "2026-10-01", updated.DocumentDate)
	assert.Equal(t, 12, updated.Quantity)

	status, _ = call(t, app, http.MethodGet, "/movements/123", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = call(t, app, http.MethodGet, "/movements/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestMovementDeleteKeepsStock(t *testing.T) {
	app, _ := newTestApp(t)
	s := seedViaAPI(t, app)

	status, resp := call(t, app, http.MethodPost, "/movements", s.movement("INBOUND", 40))
	require.Equal(t, http.StatusCreated, status, resp.Error)
	var created struct {
		ID string `json:"id"`
	}
	decode(t, resp, &created)

	status, resp = call(t, app, http.MethodDelete, "/movements/"+created.ID, nil)
	require.Equal(t, http.StatusOK, status, resp.Error)
	assert.True(t, resp.Success)

	status, _ = call(t, app, http.MethodGet, "/movements/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	rows := stockList(t, app)
	require.Len(t, rows, 1)
	assert.Equal(t, 40, rows[0].Quantity)

	status, _ = call(t, app, http.MethodDelete, "/movements/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = call(t, app, http.MethodDelete, "/movements/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestConstraintErrors(t *testing.T) {
	app, _ := newTestApp(t)
	s := seedViaAPI(t, app)

	status, resp := call(t, app, http.MethodPost, "/categories", fiber.Map{"name": "General"})
	assert.Equal(t, http.StatusConflict, status)
	assert.False(t, resp.Success)

	status, _ = call(t, app, http.MethodPost, "/products", fiber.Map{
		"sku": "SKU-001", "name": "Again", "category_id": s.category, "unit_price": 1,
	})
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, app, http.MethodDelete, fmt.Sprintf("/categories/%d", s.category), nil)
	assert.Equal(t, http.StatusConflict, status)

	status, _ = call(t, app, http.MethodPost, "/products", fiber.Map{
		"sku": "SKU-009", "name": "Orphan", "category_id": 9999, "unit_price": 1,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodPost, "/products", fiber.Map{"sku": "SKU-010", "name": "No price", "category_id": s.category})
	assert.Equal(t, http.StatusBadRequest, status)

	status, resp = call(t, app, http.MethodPost, "/products", fiber.Map{
		"sku": "SKU-011", "name": "Too dear", "category_id": s.category, "unit_price": "123456789012345678.99",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Contains(t, resp.Error, "unit_price")
	status, _ = call(t, app, http.MethodPost, "/products", fiber.Map{
		"sku": "SKU-012", "name": "Fractional cent", "category_id": s.category, "unit_price": "1.005",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	status, resp = call(t, app, http.MethodGet, "/products?search=SKU-01", nil)
	require.Equal(t, http.StatusOK, status)
	var rejected []struct {
		SKU string `json:"sku"`
	}
	decode(t, resp, &rejected)
	assert.Empty(t, rejected)

	status, _ = call(t, app, http.MethodPost, "/suppliers", fiber.Map{"name": "Bad Mail", "email": "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = call(t, app, http.MethodGet, "/products/9999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = call(t, app, http.MethodGet, "/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProductDefaultsAndSupplierDelete(t *testing.T) {
	app, _ := newTestApp(t)
	s := seedViaAPI(t, app)

	status, resp := call(t, app, http.MethodGet, fmt.Sprintf("/products/%d", s.product), nil)
	require.Equal(t, http.StatusOK, status)
	var product struct {
		IsActive     bool    `json:"is_active"`
		UnitPrice    string  `json:"unit_price"`
		CategoryName string  `json:"category_name"`
		SupplierID   *uint   `json:"supplier_id"`
		SupplierName *string `json:"supplier_name"`
	}
	decode(t, resp, &product)
	assert.True(t, product.IsActive)
	assert.Equal(t, "10", product.UnitPrice)
	assert.Equal(t, "General", product.CategoryName)
	require.NotNil(t, product.SupplierName)
	assert.Equal(t, "Default Supplier", *product.SupplierName)

	status, _ = call(t, app, http.MethodDelete, fmt.Sprintf("/suppliers/%d", s.supplier), nil)
	require.Equal(t, http.StatusOK, status)

	_, resp = call(t, app, http.MethodGet, fmt.Sprintf("/products/%d", s.product), nil)
	decode(t, resp, &product)
	assert.Nil(t, product.SupplierID)
	assert.Nil(t, product.SupplierName)
}

func TestCustomsRecords(t *testing.T) {
	app, _ := newTestApp(t)
	s := seedViaAPI(t, app)

	hsCode := createID(t, app, "/hs-codes", fiber.Map{"code": "8471.30", "description": "Portable computers"})
	license := createID(t, app, "/bond-licenses", fiber.Map{
		"license_number": "BL-01", "issue_date": "2026-01-01", "expiry_date": "2027-01-01", "warehouse_id": s.warehouse,
	})

	status, _ := call(t, app, http.MethodPost, "/bond-licenses", fiber.Map{
		"license_number": "BL-02", "issue_date": "2026-01-01", "warehouse_id": s.warehouse,
	})
	assert.Equal(t, http.StatusBadRequest, status, "expiry_date is required")

	status, resp := call(t, app, http.MethodPost, "/import-declarations", fiber.Map{
		"bill_of_entry_no":   "BOE-1",
		"bill_of_entry_date": "2026-02-01",
		"supplier_id":        s.supplier,
		"bond_license_id":    license,
		"hs_code_id":         hsCode,
		"declared_quantity":  "120.5",
		"customs_value":      "1500.00",
	})
	require.Equal(t, http.StatusCreated, status, resp.Error)
	var decl struct {
		ID  uint   `json:"id"`
		UOM string `json:"uom"`
	}
	decode(t, resp, &decl)
	assert.Equal(t, "PCS", decl.UOM)

	createID(t, app, "/export-declarations", fiber.Map{
		"export_number": "EXP-1", "export_date": "2026-03-01", "bond_license_id": license, "destination_country": "SG",
	})
	createID(t, app, "/ioco", fiber.Map{
		"product_id": s.product, "hs_code_id": hsCode, "input_quantity": "1.25", "output_quantity": "1", "effective_date": "2026-01-15",
	})

	status, _ = call(t, app, http.MethodDelete, fmt.Sprintf("/bond-licenses/%d", license), nil)
	assert.Equal(t, http.StatusConflict, status)
	status, _ = call(t, app, http.MethodDelete, fmt.Sprintf("/hs-codes/%d", hsCode), nil)
	assert.Equal(t, http.StatusConflict, status)
	status, _ = call(t, app, http.MethodDelete, fmt.Sprintf("/suppliers/%d", s.supplier), nil)
	assert.Equal(t, http.StatusConflict, status)

	status, resp = call(t, app, http.MethodGet, fmt.Sprintf("/import-declarations?supplier_id=%d", s.supplier), nil)
	require.Equal(t, http.StatusOK, status)
	var decls []struct {
		BillOfEntryNo string `json:"bill_of_entry_no"`
	}
	decode(t, resp, &decls)
	require.Len(t, decls, 1)
	assert.Equal(t, "BOE-1", decls[0].BillOfEntryNo)

	status, _ = call(t, app, http.MethodGet, "/import-declarations?supplier_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestListFiltersAndPages(t *testing.T) {
	app, _ := newTestApp(t)
	s := seedViaAPI(t, app)
	for _, qty := range []int{5, 6, 7} {
		status, _ := call(t, app, http.MethodPost, "/movements", s.movement("IN", qty))
		require.Equal(t, http.StatusCreated, status)
	}
	status, _ := call(t, app, http.MethodPost, "/movements", s.movement("OUT", 2))
	require.Equal(t, http.StatusCreated, status)

	status, resp := call(t, app, http.MethodGet, "/movements?movement_type=outbound", nil)
	require.Equal(t, http.StatusOK, status)
	var movements []struct {
		Quantity int `json:"quantity"`
	}
	decode(t, resp, &movements)
	require.Len(t, movements, 1)
	assert.Equal(t, 2, movements[0].Quantity)

	status, resp = call(t, app, http.MethodGet, "/pages/movements?limit=2", nil)
	require.Equal(t, http.StatusOK, status)
	decode(t, resp, &movements)
	require.Len(t, movements, 2)
	assert.Equal(t, 2, movements[0].Quantity, "newest first")
	assert.Equal(t, 7, movements[1].Quantity)

	status, resp = call(t, app, http.MethodGet, "/products?search=item", nil)
	require.Equal(t, http.StatusOK, status)
	var products []struct {
		SKU string `json:"sku"`
	}
	decode(t, resp, &products)
	assert.Len(t, products, 1)

	status, resp = call(t, app, http.MethodGet, "/dashboard", nil)
	require.Equal(t, http.StatusOK, status)
	var stats map[string]int
	decode(t, resp, &stats)
	assert.Equal(t, map[string]int{"products": 1, "warehouses": 1, "stock_items": 1, "movements": 4}, stats)
}

func TestStockLookup(t *testing.T) {
	app, _ := newTestApp(t)
	s := seedViaAPI(t, app)
	pair := fmt.Sprintf("/stock/lookup?product_id=%d&warehouse_id=%d", s.product, s.warehouse)

	status, _ := call(t, app, http.MethodGet, pair, nil)
	assert.Equal(t, http.StatusNotFound, status, "untouched pair has no row")

	status, resp := call(t, app, http.MethodPost, "/movements", s.movement("IN", 25))
	require.Equal(t, http.StatusCreated, status, resp.Error)

	status, resp = call(t, app, http.MethodGet, pair, nil)
	require.Equal(t, http.StatusOK, status, resp.Error)
	var row stockRow
	decode(t, resp, &row)
	assert.Equal(t, 25, row.Quantity)
	assert.Equal(t, "Item A", row.ProductName)
	assert.Equal(t, "Main", row.WarehouseName)

	status, _ = call(t, app, http.MethodGet, fmt.Sprintf("/stock/lookup?product_id=%d", s.product), nil)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = call(t, app, http.MethodGet, "/stock/lookup?product_id=x&warehouse_id=1", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestStockExport(t *testing.T) {
	app, _ := newTestApp(t)
	s := seedViaAPI(t, app)
	status, _ := call(t, app, http.MethodPost, "/movements", s.movement("IN", 9))
	require.Equal(t, http.StatusCreated, status)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/stock/export", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "stock.xlsx")

	f, err := excelize.OpenReader(resp.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"Warehouse", "SKU", "Product", "Quantity", "Updated At"}, rows[0])
	assert.Equal(t, []string{"Main", "SKU-001", "Item A", "9"}, rows[1][:4])
}

func TestProductUpload(t *testing.T) {
	app, _ := newTestApp(t)
	seedViaAPI(t, app)

	book := excelize.NewFile()
	sheetRows := [][]interface{}{
		{"SKU", "Name", "Category", "Unit Price", "Supplier"},
		{"SKU-001", "Duplicate", "General", "1.00", ""},
		{"SKU-100", "Widget", "General", "4.50", "Default Supplier"},
		{"SKU-101", "Gadget", "Missing Category", "3.00", ""},
		{"SKU-102", "Gizmo", "General", "-1", ""},
	}
	for i := range sheetRows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, book.SetSheetRow("Sheet1", cell, &sheetRows[i]))
	}
	xlsx, err := book.WriteToBuffer()
	require.NoError(t, err)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	part, err := form.CreateFormFile("file", "products.xlsx")
	require.NoError(t, err)
	_, err = part.Write(xlsx.Bytes())
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/products/upload-excel", &body)
	req.Header.Set(fiber.HeaderContentType, form.FormDataContentType())
	status, resp := send(t, app, req)
	require.Equal(t, http.StatusOK, status, resp.Error)

	var result struct {
		TotalRows     int      `json:"total_rows"`
		SuccessCount  int      `json:"success_count"`
		SkippedCount  int      `json:"skipped_count"`
		ErrorCount    int      `json:"error_count"`
		SkippedItems  []string `json:"skipped_items"`
		ErrorMessages []string `json:"error_messages"`
	}
	decode(t, resp, &result)
	assert.Equal(t, 4, result.TotalRows)
	assert.Equal(t, 1, result.SuccessCount)
	assert.Equal(t, 1, result.SkippedCount)
	assert.Equal(t, 2, result.ErrorCount)
	assert.Equal(t, []string{"SKU-001"}, result.SkippedItems)
	require.Len(t, result.ErrorMessages, 2)
	assert.Contains(t, result.ErrorMessages[0], "Row 4")
	assert.Contains(t, result.ErrorMessages[1], "Row 5")

	status, resp = call(t, app, http.MethodGet, "/products?search=SKU-100", nil)
	require.Equal(t, http.StatusOK, status)
	var products []struct {
		SupplierName *string `json:"supplier_name"`
	}
	decode(t, resp, &products)
	require.Len(t, products, 1)
	require.NotNil(t, products[0].SupplierName)
	assert.Equal(t, "Default Supplier", *products[0].SupplierName)
}
