package models

// Status - status kehadiran siswa
type Status string

const (
	StatusHadir Status = "Hadir"
	StatusIzin  Status = "Izin"
	StatusSakit Status = "Sakit"
	StatusAlpha Status = "Alpha"
)

// Statuses - urutan tombol status di halaman
var Statuses = []Status{StatusHadir, StatusIzin, StatusSakit, StatusAlpha}

func (s Status) Valid() bool {
	switch s {
	case StatusHadir, StatusIzin, StatusSakit, StatusAlpha:
		return true
	}
	return false
}

// Color - class warna tombol saat status aktif
func (s Status) Color() string {
	switch s {
	case StatusHadir:
		return "bg-green-500"
	case StatusIzin:
		return "bg-yellow-400"
	case StatusSakit:
		return "bg-blue-400"
	case StatusAlpha:
		return "bg-red-500"
	}
	return ""
}

// AttendanceRecord - satu baris absensi yang dikirim ke sheet
type AttendanceRecord struct {
	Tanggal string `json:"tanggal"` // format: dd-mm-yyyy
	Nama    string `json:"nama"`
	Kelas   string `json:"kelas"`
	NISN    string `json:"nisn"`
	Status  Status `json:"status"`
}
