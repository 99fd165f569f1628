// file: internals/features/school/timetable/exports/service/render.go
package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"timetable_backend/internals/features/school/timetable/grid"
	"timetable_backend/internals/features/school/timetable/timeslot"
)

/* =========================
   Shared layout helpers
   ========================= */

// cellText renders one grid cell for flat (non-merging) outputs. Continuation
// cells collapse into an empty string so the anchor reads as spanning.
func cellText(cell *grid.Cell) string {
	if cell == nil {
		return ""
	}
	switch cell.Kind {
	case grid.CellBreak:
		return "BREAK"
	case grid.CellLunch:
		return "LUNCH"
	case grid.CellContinuation:
		return ""
	}
	e := cell.Session
	if e == nil {
		return ""
	}
	parts := []string{e.SubjectName}
	if e.TeacherAbbr != "" {
		parts = append(parts, e.TeacherAbbr)
	}
	if e.LocationCode != "" {
		parts = append(parts, e.LocationCode)
	}
	return strings.Join(parts, " / ")
}

// spanEnd returns the last slot index the anchor at (day, idx) covers,
// following continuation cells that carry the same entry.
func spanEnd(cells []*grid.Cell, idx int) int {
	end := idx
	anchor := cells[idx]
	for j := idx + 1; j < len(cells); j++ {
		c := cells[j]
		if c == nil || c.Kind != grid.CellContinuation || c.Session != anchor.Session {
			break
		}
		end = j
	}
	return end
}

/* =========================
   CSV
   ========================= */

// RenderCSV writes the grid as a plain table: one header row of slot labels,
// then one row per teaching day. Continuations render as empty columns.
func RenderCSV(g *grid.Grid) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	slots := g.Slots
	header := make([]string, 0, len(slots)+1)
	header = append(header, "Day")
	for _, s := range slots {
		header = append(header, s.Label())
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, day := range timeslot.Weekdays() {
		cells := g.Days[day]
		row := make([]string, 0, len(slots)+1)
		row = append(row, timeslot.WeekdayName(day))
		for i := range slots {
			var cell *grid.Cell
			if i < len(cells) {
				cell = cells[i]
			}
			row = append(row, cellText(cell))
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* =========================
   XLSX
   ========================= */

// RenderXLSX writes the grid as a worksheet. Lab anchors and their
// continuation cells are merged into one spanning cell.
func RenderXLSX(g *grid.Grid, title string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Timetable"
	f.SetSheetName("Sheet1", sheet)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}
	bodyStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	})
	if err != nil {
		return nil, err
	}

	slots := g.Slots

	// Row 1: title spanning the whole table.
	last, err := excelize.CoordinatesToCellName(len(slots)+1, 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	if err := f.MergeCell(sheet, "A1", last); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, "A1", last, headerStyle); err != nil {
		return nil, err
	}

	// Row 2: slot labels.
	if err := f.SetCellValue(sheet, "A2", "Day"); err != nil {
		return nil, err
	}
	for i, s := range slots {
		cell, err := excelize.CoordinatesToCellName(i+2, 2)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, s.Label()); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	// Rows 3..8: one per teaching day.
	for di, day := range timeslot.Weekdays() {
		rowNum := di + 3
		dayCell, err := excelize.CoordinatesToCellName(1, rowNum)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, dayCell, timeslot.WeekdayName(day)); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheet, dayCell, dayCell, headerStyle); err != nil {
			return nil, err
		}

		cells := g.Days[day]
		for i := 0; i < len(slots); i++ {
			var cell *grid.Cell
			if i < len(cells) {
				cell = cells[i]
			}
			name, err := excelize.CoordinatesToCellName(i+2, rowNum)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(sheet, name, name, bodyStyle); err != nil {
				return nil, err
			}
			if cell == nil || cell.Kind == grid.CellContinuation {
				continue
			}
			if err := f.SetCellValue(sheet, name, cellText(cell)); err != nil {
				return nil, err
			}
			if cell.Kind == grid.CellSession && cell.Session != nil {
				end := spanEnd(cells, i)
				if end > i {
					endName, err := excelize.CoordinatesToCellName(end+2, rowNum)
					if err != nil {
						return nil, err
					}
					if err := f.MergeCell(sheet, name, endName); err != nil {
						return nil, err
					}
					i = end
				}
			}
		}
	}

	if err := f.SetColWidth(sheet, "A", "A", 12); err != nil {
		return nil, err
	}
	endCol, err := excelize.ColumnNumberToName(len(slots) + 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheet, "B", endCol, 16); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

/* =========================
   PDF
   ========================= */

// RenderPDF writes the grid as a landscape A4 table. Lab anchors span their
// continuation columns as one wide cell.
func RenderPDF(g *grid.Grid, title string) ([]byte, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(8, 10, 8)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 8, title, "", 1, "C", false, 0, "")
	pdf.Ln(2)

	slots := g.Slots
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	dayW := 22.0
	colW := (pageW - left - right - dayW) / float64(len(slots))
	rowH := 14.0

	// Header row.
	pdf.SetFont("Helvetica", "B", 7.5)
	pdf.CellFormat(dayW, 8, "Day", "1", 0, "C", false, 0, "")
	for _, s := range slots {
		pdf.CellFormat(colW, 8, s.Label(), "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 7.5)
	for _, day := range timeslot.Weekdays() {
		cells := g.Days[day]
		pdf.SetFont("Helvetica", "B", 7.5)
		pdf.CellFormat(dayW, rowH, timeslot.WeekdayName(day), "1", 0, "C", false, 0, "")
		pdf.SetFont("Helvetica", "", 7.5)

		for i := 0; i < len(slots); i++ {
			var cell *grid.Cell
			if i < len(cells) {
				cell = cells[i]
			}
			width := colW
			text := cellText(cell)
			if cell != nil && cell.Kind == grid.CellSession && cell.Session != nil {
				end := spanEnd(cells, i)
				width = colW * float64(end-i+1)
				i = end
			}
			pdf.CellFormat(width, rowH, text, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
