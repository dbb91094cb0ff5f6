package controllers

import (
	"errors"
	"fmt"
	"strings"

	"bonded-wms/models"
	"bonded-wms/repositories"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type ProductUploadResult struct {
	TotalRows     int      `json:"total_rows"`
	SuccessCount  int      `json:"success_count"`
	SkippedCount  int      `json:"skipped_count"`
	ErrorCount    int      `json:"error_count"`
	SkippedItems  []string `json:"skipped_items"`
	ErrorMessages []string `json:"error_messages"`
}

var (
	productImportRequired = []string{"SKU", "NAME", "CATEGORY", "UNIT_PRICE"}
	productImportOptional = []string{"DESCRIPTION", "SUPPLIER", "UOM", "HS_CODE", "COUNTRY_OF_ORIGIN"}
)

// importColumns maps each known header to its column index, -1 when the
// sheet does not have it.
type importColumns map[string]int

func readImportHeader(header []string) (importColumns, error) {
	normalized := make([]string, len(header))
	for i, h := range header {
		normalized[i] = strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(h), " ", "_"))
	}

	cols := importColumns{}
	var missing []string
	for _, name := range productImportRequired {
		idx := slices.Index(normalized, name)
		if idx < 0 {
			missing = append(missing, name)
		}
		cols[name] = idx
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	for _, name := range productImportOptional {
		cols[name] = slices.Index(normalized, name)
	}
	return cols, nil
}

func (c importColumns) value(row []string, name string) string {
	idx := c[name]
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// CreateProductsFromExcel bulk creates products from the first sheet of an
// xlsx upload. Existing SKUs are skipped; every other failing row is
// reported and does not stop the import.
func (c *ProductController) CreateProductsFromExcel(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return badRequest(ctx, "File is required")
	}
	if !strings.HasSuffix(strings.ToLower(file.Filename), ".xlsx") {
		return badRequest(ctx, "Only Excel files (.xlsx) are allowed")
	}

	fileContent, err := file.Open()
	if err != nil {
		return respondError(ctx, fmt.Errorf("open upload: %w", err))
	}
	defer fileContent.Close()

	f, err := excelize.OpenReader(fileContent)
	if err != nil {
		return badRequest(ctx, "Failed to read Excel file")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return badRequest(ctx, "No sheets found in Excel file")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return respondError(ctx, fmt.Errorf("read rows: %w", err))
	}
	if len(rows) < 2 {
		return badRequest(ctx, "Excel file must contain header and at least one data row")
	}

	cols, err := readImportHeader(rows[0])
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result := ProductUploadResult{
		TotalRows:     len(rows) - 1,
		SkippedItems:  []string{},
		ErrorMessages: []string{},
	}
	lookup := newReferenceLookup(c.DB)

	for i, row := range rows[1:] {
		rowNum := i + 2
		sku := cols.value(row, "SKU")
		if sku == "" {
			continue
		}

		exists, err := c.repo.ExistsBySKU(sku)
		if err != nil {
			return respondError(ctx, err)
		}
		if exists {
			result.SkippedCount++
			result.SkippedItems = append(result.SkippedItems, sku)
			continue
		}

		product, err := productFromRow(cols, row, lookup)
		if err == nil {
			err = c.repo.Create(product)
		}
		if err != nil {
			result.ErrorCount++
			result.ErrorMessages = append(result.ErrorMessages, fmt.Sprintf("Row %d: %s", rowNum, err.Error()))
			continue
		}
		result.SuccessCount++
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Product upload processed", "data": result})
}

func productFromRow(cols importColumns, row []string, lookup *referenceLookup) (*models.Product, error) {
	product := &models.Product{
		SKU:             cols.value(row, "SKU"),
		Name:            cols.value(row, "NAME"),
		Description:     cols.value(row, "DESCRIPTION"),
		CountryOfOrigin: cols.value(row, "COUNTRY_OF_ORIGIN"),
		IsActive:        true,
	}
	if product.Name == "" {
		return nil, errors.New("NAME is required")
	}

	price, err := decimal.NewFromString(cols.value(row, "UNIT_PRICE"))
	if err != nil || price.IsNegative() || !decimalFits(price, 12, 2) {
		return nil, fmt.Errorf("invalid UNIT_PRICE %q", cols.value(row, "UNIT_PRICE"))
	}
	product.UnitPrice = price.Round(2)

	categoryID, err := lookup.id(&models.Category{}, "category", "name", cols.value(row, "CATEGORY"))
	if err != nil {
		return nil, err
	}
	if categoryID == nil {
		return nil, errors.New("CATEGORY is required")
	}
	product.CategoryID = *categoryID

	if product.SupplierID, err = lookup.id(&models.Supplier{}, "supplier", "name", cols.value(row, "SUPPLIER")); err != nil {
		return nil, err
	}
	if product.UOMID, err = lookup.id(&models.UOM{}, "uom", "code", strings.ToUpper(cols.value(row, "UOM"))); err != nil {
		return nil, err
	}
	if product.HSCodeID, err = lookup.id(&models.HSCode{}, "hs code", "code", cols.value(row, "HS_CODE")); err != nil {
		return nil, err
	}
	return product, nil
}

// referenceLookup resolves the names used in a spreadsheet to row ids,
// caching each answer for the rest of the import.
type referenceLookup struct {
	db    *gorm.DB
	cache map[string]uint
}

func newReferenceLookup(db *gorm.DB) *referenceLookup {
	return &referenceLookup{db: db, cache: map[string]uint{}}
}

// id returns nil for an empty value and an ErrInvalidReference error when
// nothing matches.
func (l *referenceLookup) id(model interface{}, label, column, value string) (*uint, error) {
	if value == "" {
		return nil, nil
	}
	key := label + "\x00" + value
	if id, ok := l.cache[key]; ok {
		return &id, nil
	}

	var ids []uint
	if err := l.db.Model(model).Where(column+" = ?", value).Limit(1).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: %s %q not found", repositories.ErrInvalidReference, label, value)
	}
	l.cache[key] = ids[0]
	return &ids[0], nil
}
