package reports

import (
	"github.com/xuri/excelize/v2"
)

const SheetName = "Report"

// ContentType is the MIME type for the generated workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Row is one task's line in the spreadsheet: its descriptive columns plus one
// hour total per date bucket.
type Row struct {
	Name        string
	Description string
	Tags        string
	Hours       []float64
}

// BuildWorkbook lays out the header (Task Name, Task Description, Tags, then
// one column per bucket label) and one row per task.
func BuildWorkbook(labels []string, rows []Row) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, err
	}

	header := []interface{}{"Task Name", "Task Description", "Tags"}
	for _, label := range labels {
		header = append(header, label)
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cells := []interface{}{row.Name, row.Description, row.Tags}
		for _, hours := range row.Hours {
			cells = append(cells, hours)
		}

		start, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(SheetName, start, &cells); err != nil {
			return nil, err
		}
	}

	return f, nil
}
