package attendance

import (
	"errors"
)

var (
	ErrRequiredField  = errors.New("field wajib belum diisi")
	ErrFetchRoster    = errors.New("gagal mengambil data siswa")
	ErrAddStudent     = errors.New("gagal menambahkan siswa")
	ErrSaveAttendance = errors.New("gagal kirim data absensi")

	ErrInvalidDate    = errors.New("format tanggal harus yyyy-mm-dd")
	ErrInvalidStatus  = errors.New("status harus Hadir, Izin, Sakit atau Alpha")
	ErrUnknownStudent = errors.New("siswa tidak ada di daftar")
	ErrNotInForm      = errors.New("form tambah siswa tidak sedang dibuka")
)

// Pesan yang ditampilkan ke operator
const (
	MsgRequiredField = "⚠️ Semua field wajib diisi!"
	MsgFetchFailed   = "❌ Gagal mengambil data siswa"
	MsgAddSucceeded  = "✅ Siswa berhasil ditambahkan!"
	MsgAddFailed     = "❌ Gagal menambahkan siswa."
	MsgSaveSucceeded = "✅ Data absensi berhasil dikirim!"
	MsgSaveFailed    = "❌ Gagal kirim data absensi."
)

type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice - pemberitahuan blocking (alert) untuk operator
type Notice struct {
	Kind    NoticeKind `json:"kind"`
	Message string     `json:"message"`
}

func successNotice(msg string) Notice {
	return Notice{Kind: NoticeSuccess, Message: msg}
}

func errorNotice(msg string) Notice {
	return Notice{Kind: NoticeError, Message: msg}
}

// NoticeFor - pesan operator untuk error dari Board/StudentForm
func NoticeFor(err error) Notice {
	switch {
	case errors.Is(err, ErrRequiredField):
		return errorNotice(MsgRequiredField)
	case errors.Is(err, ErrFetchRoster):
		return errorNotice(MsgFetchFailed)
	case errors.Is(err, ErrAddStudent):
		return errorNotice(MsgAddFailed)
	case errors.Is(err, ErrSaveAttendance):
		return errorNotice(MsgSaveFailed)
	}
	return errorNotice("❌ " + err.Error())
}
