package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// exportRow is one label/value pair on a calculator summary sheet.
type exportRow struct {
	Label string
	Value interface{}
}

// logSheetErr records a non-fatal workbook build error. Cell-level failures
// leave blanks in the sheet rather than aborting the download.
func logSheetErr(op string, err error) {
	if err != nil {
		slog.Warn("Workbook build step failed", "op", op, "error", err)
	}
}

// writeSummaryWorkbook streams a one-sheet calculator summary to the client
// as an .xlsx attachment. The file name carries the calculator slug and a
// short unique suffix so repeated downloads do not collide.
func writeSummaryWorkbook(c *gin.Context, calculator, sheetName string, rows []exportRow) {
	f := excelize.NewFile()
	index, err := f.NewSheet(sheetName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build workbook"})
		return
	}
	f.SetActiveSheet(index)
	logSheetErr("DeleteSheet", f.DeleteSheet("Sheet1"))

	logSheetErr("SetCellValue", f.SetCellValue(sheetName, "A1", sheetName))
	logSheetErr("SetCellValue", f.SetCellValue(sheetName, "A2", fmt.Sprintf("Generated %s", time.Now().Format("02 Jan 2006 15:04"))))

	for i, row := range rows {
		r := i + 4
		logSheetErr("SetCellValue", f.SetCellValue(sheetName, fmt.Sprintf("A%d", r), row.Label))
		logSheetErr("SetCellValue", f.SetCellValue(sheetName, fmt.Sprintf("B%d", r), row.Value))
	}
	logSheetErr("SetColWidth", f.SetColWidth(sheetName, "A", "A", 42))
	logSheetErr("SetColWidth", f.SetColWidth(sheetName, "B", "B", 22))

	fileName := fmt.Sprintf("%s_%s.xlsx", calculator, uuid.NewString()[:8])
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", "attachment; filename="+fileName)
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
	}
}

func rand2(v float64) string {
	return fmt.Sprintf("R %.2f", v)
}

func pct(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}
