package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// sendXLSX writes a single-sheet workbook with a header row to the
// response.
func sendXLSX(ctx *fiber.Ctx, filename string, header []interface{}, rows [][]interface{}) error {
	f := excelize.NewFile()
	defer f.Close()
	sheet := "Sheet1"

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return respondError(ctx, fmt.Errorf("write xlsx header: %w", err))
	}
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return respondError(ctx, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return respondError(ctx, fmt.Errorf("write xlsx row %d: %w", i+2, err))
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return respondError(ctx, fmt.Errorf("render xlsx: %w", err))
	}

	ctx.Set(fiber.HeaderContentType, xlsxContentType)
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
