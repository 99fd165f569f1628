// file: internals/features/school/timetable/exports/service/render_test.go
package service

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"timetable_backend/internals/features/school/timetable/conflict"
	"timetable_backend/internals/features/school/timetable/grid"
	"timetable_backend/internals/features/school/timetable/timeslot"
)

func sampleGrid() *grid.Grid {
	lecture := grid.Entry{
		SessionID:    uuid.New(),
		SubjectName:  "Mathematics",
		TeacherAbbr:  "MTH",
		LocationCode: "R-101",
		Kind:         conflict.SessionLecture,
		SlotSpan:     1,
		Weekday:      timeslot.Monday,
		StartMin:     9*60 + 45,
		EndMin:       10*60 + 35,
	}
	lab := grid.Entry{
		SessionID:    uuid.New(),
		SubjectName:  "Physics Lab",
		TeacherAbbr:  "PHY",
		LocationCode: "LAB-2",
		Kind:         conflict.SessionLab,
		SlotSpan:     2,
		Weekday:      timeslot.Tuesday,
		StartMin:     11*60 + 30,
		EndMin:       13 * 60,
	}
	g := grid.Materialize([]grid.Entry{lecture, lab})
	g.ClassID = uuid.New()
	return g
}

func TestRenderCSV(t *testing.T) {
	out, err := RenderCSV(sampleGrid())
	if err != nil {
		t.Fatalf("RenderCSV: %v", err)
	}

	rows, err := csv.NewReader(bytes.NewReader(out)).ReadAll()
	if err != nil {
		t.Fatalf("reading back csv: %v", err)
	}
	if len(rows) != 1+len(timeslot.Weekdays()) {
		t.Fatalf("row count = %d, want %d", len(rows), 1+len(timeslot.Weekdays()))
	}

	wantCols := timeslot.SlotCount() + 1
	for i, row := range rows {
		if len(row) != wantCols {
			t.Fatalf("row %d has %d columns, want %d", i, len(row), wantCols)
		}
	}

	if rows[0][1] != "09:45-10:35" {
		t.Errorf("first slot header = %q", rows[0][1])
	}

	monday := rows[1]
	if monday[0] != "Monday" {
		t.Errorf("day label = %q", monday[0])
	}
	if monday[1] != "Mathematics / MTH / R-101" {
		t.Errorf("lecture cell = %q", monday[1])
	}
	if monday[3] != "BREAK" {
		t.Errorf("break cell = %q", monday[3])
	}
	if monday[6] != "LUNCH" {
		t.Errorf("lunch cell = %q", monday[6])
	}

	tuesday := rows[2]
	if tuesday[4] != "Physics Lab / PHY / LAB-2" {
		t.Errorf("lab anchor cell = %q", tuesday[4])
	}
	// the continuation column reads empty so the anchor visually spans
	if tuesday[5] != "" {
		t.Errorf("continuation cell = %q, want empty", tuesday[5])
	}
}

func TestRenderXLSX(t *testing.T) {
	out, err := RenderXLSX(sampleGrid(), "Weekly Timetable 2024 A Science")
	if err != nil {
		t.Fatalf("RenderXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("reading back workbook: %v", err)
	}
	defer f.Close()

	const sheet = "Timetable"

	title, err := f.GetCellValue(sheet, "A1")
	if err != nil || title != "Weekly Timetable 2024 A Science" {
		t.Errorf("title cell = %q, err = %v", title, err)
	}

	// Monday is row 3; 09:45 slot is column B.
	v, err := f.GetCellValue(sheet, "B3")
	if err != nil || v != "Mathematics / MTH / R-101" {
		t.Errorf("lecture cell = %q, err = %v", v, err)
	}

	// Tuesday row 4; lab anchor in the 11:30 slot → column E, spanning F.
	v, err = f.GetCellValue(sheet, "E4")
	if err != nil || v != "Physics Lab / PHY / LAB-2" {
		t.Errorf("lab anchor cell = %q, err = %v", v, err)
	}

	merged, err := f.GetMergeCells(sheet)
	if err != nil {
		t.Fatalf("GetMergeCells: %v", err)
	}
	found := false
	for _, mc := range merged {
		if mc.GetStartAxis() == "E4" && mc.GetEndAxis() == "F4" {
			found = true
		}
	}
	if !found {
		t.Error("lab anchor E4 not merged through its continuation F4")
	}
}

func TestRenderPDF(t *testing.T) {
	out, err := RenderPDF(sampleGrid(), "Weekly Timetable")
	if err != nil {
		t.Fatalf("RenderPDF: %v", err)
	}
	if !strings.HasPrefix(string(out[:8]), "%PDF-") {
		t.Errorf("output does not look like a PDF: %q", out[:8])
	}
}
