package services

import (
	"context"
	"testing"
	"time"

	"thintimer.com/thintimer/internal/reports"
)

func TestReportService_SummaryScenario(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	user := f.newUser(t, "nora")

	task, err := f.task.CreateTask(ctx, user.ID, "Writing", "", "")
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}
	idle, err := f.task.CreateTask(ctx, user.ID, "Idle", "", "")
	if err != nil {
		t.Fatalf("failed to create task: %v", err)
	}

	start1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if _, err := f.entry.CreateEntry(ctx, user.ID, task.ID, start1, start1.Add(90*time.Minute)); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	start2 := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)
	if _, err := f.entry.CreateEntry(ctx, user.ID, task.ID, start2, start2.Add(15*time.Minute)); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	// Outside the queried range; must not be counted.
	start3 := time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)
	if _, err := f.entry.CreateEntry(ctx, user.ID, task.ID, start3, start3.Add(time.Hour)); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	if got := f.totalTimeSpent(t, task.ID, user.ID); got != time.Hour+45*time.Minute+time.Hour {
		t.Errorf("unexpected accumulated duration: %v", got)
	}

	summary, err := f.report.Summary(ctx,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	row, ok := summary[task.ID]
	if !ok {
		t.Fatalf("expected task %s in summary", task.ID)
	}
	if row.Name != "Writing" {
		t.Errorf("expected name Writing, got %s", row.Name)
	}
	if row.TotalTime != 6300.0 {
		t.Errorf("expected total_time 6300.0 seconds, got %v", row.TotalTime)
	}
	if row.Tags == nil || len(row.Tags) != 0 {
		t.Errorf("expected empty non-nil tags, got %#v", row.Tags)
	}

	if _, ok := summary[idle.ID]; ok {
		t.Error("task with no entries in range must be absent from the summary")
	}
}

func TestReportService_SummaryTags(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	user := f.newUser(t, "olga")

	task, _ := f.task.CreateTask(ctx, user.ID, "Tagged", "notes", "deep, work")
	start := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	if _, err := f.entry.CreateEntry(ctx, user.ID, task.ID, start, start.Add(time.Hour)); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	summary, err := f.report.Summary(ctx, start, start)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}

	row := summary[task.ID]
	if len(row.Tags) != 2 || row.Tags[0] != "deep" || row.Tags[1] != "work" {
		t.Errorf("expected trimmed tags [deep work], got %#v", row.Tags)
	}
	if row.Description != "notes" {
		t.Errorf("expected description carried through, got %q", row.Description)
	}
}

func TestReportService_WorkbookDaily(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	user := f.newUser(t, "pete")
	other := f.newUser(t, "quinn")

	task, _ := f.task.CreateTask(ctx, user.ID, "Writing", "a novel", "fiction")
	foreign, _ := f.task.CreateTask(ctx, other.ID, "Other work", "", "")

	start1 := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	if _, err := f.entry.CreateEntry(ctx, user.ID, task.ID, start1, start1.Add(90*time.Minute)); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	// Starts inside the range but ends after midnight of the end date, so the
	// spreadsheet's datetime filter drops it even though the JSON summary
	// would count it.
	start2 := time.Date(2024, 1, 2, 14, 0, 0, 0, time.UTC)
	if _, err := f.entry.CreateEntry(ctx, user.ID, task.ID, start2, start2.Add(15*time.Minute)); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	if _, err := f.entry.CreateEntry(ctx, other.ID, foreign.ID, start1.Add(time.Hour), start1.Add(2*time.Hour)); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	rangeStart := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)

	workbook, err := f.report.Workbook(ctx, rangeStart, rangeEnd, reports.FrequencyDaily)
	if err != nil {
		t.Fatalf("workbook failed: %v", err)
	}

	header := []struct{ cell, want string }{
		{"A1", "Task Name"},
		{"B1", "Task Description"},
		{"C1", "Tags"},
		{"D1", "2024-01-01"},
		{"E1", "2024-01-02"},
	}
	for _, h := range header {
		got, err := workbook.GetCellValue(reports.SheetName, h.cell)
		if err != nil {
			t.Fatalf("reading %s: %v", h.cell, err)
		}
		if got != h.want {
			t.Errorf("cell %s: expected %q, got %q", h.cell, h.want, got)
		}
	}

	// Tasks are ordered by creation time, so row 2 is Writing and row 3 the
	// other user's task: the spreadsheet is deliberately not owner-scoped.
	name2, _ := workbook.GetCellValue(reports.SheetName, "A2")
	name3, _ := workbook.GetCellValue(reports.SheetName, "A3")
	if name2 != "Writing" || name3 != "Other work" {
		t.Errorf("expected rows for all tasks across owners, got %q and %q", name2, name3)
	}

	d2, _ := workbook.GetCellValue(reports.SheetName, "D2")
	if d2 != "1.5" {
		t.Errorf("expected 1.5 hours on 2024-01-01, got %q", d2)
	}
	e2, _ := workbook.GetCellValue(reports.SheetName, "E2")
	if e2 != "0" {
		t.Errorf("expected entry ending past the range bound to be excluded, got %q", e2)
	}

	tags2, _ := workbook.GetCellValue(reports.SheetName, "C2")
	if tags2 != "fiction" {
		t.Errorf("expected raw tag string in Tags column, got %q", tags2)
	}
}

func TestReportService_WorkbookMonthly(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	user := f.newUser(t, "rosa")

	task, _ := f.task.CreateTask(ctx, user.ID, "Research", "", "")

	jan := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	mar := time.Date(2024, 3, 5, 9, 0, 0, 0, time.UTC)
	if _, err := f.entry.CreateEntry(ctx, user.ID, task.ID, jan, jan.Add(2*time.Hour)); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}
	if _, err := f.entry.CreateEntry(ctx, user.ID, task.ID, mar, mar.Add(time.Hour)); err != nil {
		t.Fatalf("failed to create entry: %v", err)
	}

	workbook, err := f.report.Workbook(ctx,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		reports.FrequencyMonthly,
	)
	if err != nil {
		t.Fatalf("workbook failed: %v", err)
	}

	for cell, want := range map[string]string{
		"D1": "2024-01",
		"E1": "2024-02",
		"F1": "2024-03",
	} {
		got, _ := workbook.GetCellValue(reports.SheetName, cell)
		if got != want {
			t.Errorf("cell %s: expected %q, got %q", cell, want, got)
		}
	}

	d2, _ := workbook.GetCellValue(reports.SheetName, "D2")
	f2, _ := workbook.GetCellValue(reports.SheetName, "F2")
	if d2 != "2" || f2 != "1" {
		t.Errorf("expected 2 hours in January and 1 in March, got %q and %q", d2, f2)
	}
}
