package models

// ViewMode - halaman yang sedang aktif untuk satu sesi operator
type ViewMode uint8

const (
	ViewRoster ViewMode = iota
	ViewAddStudent
)

func (m ViewMode) String() string {
	switch m {
	case ViewRoster:
		return "roster"
	case ViewAddStudent:
		return "tambah_siswa"
	}
	return "unknown"
}

// StudentFormData - isian form tambah siswa
type StudentFormData struct {
	NISN  string `json:"nisn"`
	Nama  string `json:"nama"`
	Kelas string `json:"kelas"`
}
