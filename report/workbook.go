package report

import (
	"math"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/sartorproj/pageviews/stats"
)

// SummaryFile is the default workbook name.
const SummaryFile = "pageviews_summary.xlsx"

// Sheet names.
const (
	MonthlySheet = "Monthly Means"
	BoxSheet     = "Box Summary"
)

// BoxHeader lists the columns of the box summary sheet.
var BoxHeader = []string{"Group", "Label", "Count", "Min", "Q1", "Median", "Q3", "Max"}

// WriteWorkbook writes the monthly means table and the five-number
// summaries of every box group to path, replacing any existing file.
// Missing monthly cells and empty groups are left blank.
func WriteWorkbook(path string, monthly *stats.MonthlyMeans, groups *stats.BoxGroups) error {
	if monthly == nil || groups == nil {
		return errors.New("workbook: nothing to write")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", MonthlySheet); err != nil {
		return errors.Wrap(err, "rename sheet")
	}
	if _, err := f.NewSheet(BoxSheet); err != nil {
		return errors.Wrap(err, "add sheet")
	}

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return errors.Wrap(err, "header style")
	}

	if err := writeMonthly(f, monthly, header); err != nil {
		return errors.Wrap(err, MonthlySheet)
	}
	if err := writeBoxes(f, groups, header); err != nil {
		return errors.Wrap(err, BoxSheet)
	}

	if err := f.SaveAs(path); err != nil {
		return errors.Wrapf(err, "save %s", path)
	}
	return nil
}

func writeMonthly(f *excelize.File, m *stats.MonthlyMeans, headerStyle int) error {
	header := []interface{}{"Year"}
	for _, name := range m.Columns() {
		header = append(header, name)
	}
	if err := writeHeader(f, MonthlySheet, header, headerStyle); err != nil {
		return err
	}

	for i, y := range m.Years {
		row := []interface{}{y}
		for _, v := range m.Values[i] {
			row = append(row, cell(v))
		}
		if err := setRow(f, MonthlySheet, i+2, row); err != nil {
			return err
		}
	}
	return f.SetColWidth(MonthlySheet, "B", "M", 12)
}

func writeBoxes(f *excelize.File, g *stats.BoxGroups, headerStyle int) error {
	header := make([]interface{}, len(BoxHeader))
	for i, h := range BoxHeader {
		header[i] = h
	}
	if err := writeHeader(f, BoxSheet, header, headerStyle); err != nil {
		return err
	}

	line := 2
	for _, set := range []struct {
		kind   string
		groups []stats.Group
	}{
		{"Year", g.Years},
		{"Month", g.Months},
	} {
		for _, grp := range set.groups {
			row := []interface{}{set.kind, grp.Label, len(grp.Values)}
			if sum, err := grp.Summary(); err == nil {
				row = append(row, sum.Min, sum.Q1, sum.Median, sum.Q3, sum.Max)
			}
			if err := setRow(f, BoxSheet, line, row); err != nil {
				return err
			}
			line++
		}
	}
	return nil
}

func writeHeader(f *excelize.File, sheet string, header []interface{}, style int) error {
	if err := setRow(f, sheet, 1, header); err != nil {
		return err
	}
	last, err := excelize.CoordinatesToCellName(len(header), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	start, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, start, &values)
}

// cell maps a missing value to a blank cell.
func cell(v float64) interface{} {
	if math.IsNaN(v) {
		return nil
	}
	return v
}
