package report

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cmlabs-hris/bank-backoffice-go/internal/domain/informationsheet"
	"github.com/cmlabs-hris/bank-backoffice-go/internal/pkg/fields"
	json "github.com/goccy/go-json"
	"github.com/xuri/excelize/v2"
)

const RegisterSheet = "Registre"

// ExportRegister writes one row per information sheet. The header row holds
// the wire names so the file can be re-imported by other tools.
func ExportRegister(sheets []informationsheet.InformationSheet) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), RegisterSheet); err != nil {
		return nil, err
	}

	cols := registerColumns()
	header := make([]any, len(cols))
	for i, c := range cols {
		header[i] = c.Wire
	}
	if err := f.SetSheetRow(RegisterSheet, "A1", &header); err != nil {
		return nil, err
	}

	bold, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
	})
	if err != nil {
		return nil, err
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(RegisterSheet, "A1", last, bold); err != nil {
		return nil, err
	}

	sorted := append([]informationsheet.InformationSheet(nil), sheets...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Matricule < sorted[j].Matricule })

	for i, s := range sorted {
		wire, err := fields.ToWireObject(informationsheet.Fields, s)
		if err != nil {
			return nil, fmt.Errorf("sheet %d: %w", s.ID, err)
		}
		row := make([]any, len(cols))
		for j, c := range cols {
			row[j] = cellValue(wire[c.Wire])
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(RegisterSheet, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetPanes(RegisterSheet, &excelize.Panes{
		Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft",
	}); err != nil {
		return nil, err
	}
	lastRow, err := excelize.CoordinatesToCellName(len(cols), len(sorted)+1)
	if err != nil {
		return nil, err
	}
	if err := f.AutoFilter(RegisterSheet, "A1:"+lastRow, nil); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return bytes.Clone(buf.Bytes()), nil
}

func cellValue(v any) any {
	if n, ok := v.(json.Number); ok {
		if i, err := n.Int64(); err == nil {
			return i
		}
		return n.String()
	}
	return v
}

// registerColumns is the sheet table without its nested sanctions list.
func registerColumns() []fields.Field {
	var cols []fields.Field
	for _, c := range informationsheet.Fields.Fields() {
		if c.Elem != nil {
			continue
		}
		cols = append(cols, c)
	}
	return cols
}
