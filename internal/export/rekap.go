package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"absensi-siswa/internal/models"
)

const sheetName = "Absensi"

var headers = []string{"No", "Tanggal", "NISN", "Nama", "Kelas", "Status"}

// FileName - nama file rekap, tanggal dalam format dd-mm-yyyy
func FileName(tanggal string) string {
	return fmt.Sprintf("absensi-%s.xlsx", tanggal)
}

// Rekap - workbook xlsx dari payload absensi satu hari
func Rekap(records []models.AttendanceRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}
	if err := f.SetRowStyle(sheetName, 1, 1, bold); err != nil {
		return nil, err
	}

	for i, r := range records {
		row := []interface{}{i + 1, r.Tanggal, r.NISN, r.Nama, r.Kelas, string(r.Status)}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	if err := f.SetColWidth(sheetName, "B", "B", 12); err != nil {
		return nil, err
	}
	if err := f.SetColWidth(sheetName, "D", "D", 30); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
