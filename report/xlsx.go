// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package report

import (
	"fmt"

	"github.com/siemens/pingsweep/types"

	"github.com/xuri/excelize/v2"
)

// SaveXLSX writes the report as an Excel workbook at path, with all results
// in a single worksheet named [Sheet].
func SaveXLSX(path string, results []types.ProbeResult) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := fillWorkbook(f, results); err != nil {
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	return nil
}

// fillWorkbook populates a fresh workbook with the report worksheet,
// retiring the default worksheet along the way.
func fillWorkbook(f *excelize.File, results []types.ProbeResult) error {
	index, err := f.NewSheet(Sheet)
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	if err := f.SetSheetRow(Sheet, "A1", toCells(Header)); err != nil {
		return err
	}
	for i, result := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(Sheet, cell, toCells(row(result))); err != nil {
			return err
		}
	}
	return nil
}

// toCells turns a string row into the any-typed row SetSheetRow expects.
func toCells(values []string) *[]any {
	cells := make([]any, len(values))
	for i, value := range values {
		cells[i] = value
	}
	return &cells
}
