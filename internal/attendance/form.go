package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"absensi-siswa/internal/models"
)

var validate = validator.New()

// StudentAdder - bagian Roster yang dipakai form tambah siswa
type StudentAdder interface {
	AddStudent(ctx context.Context, req models.AddStudentRequest) error
}

// StudentForm - form tambah siswa. onBack mengembalikan ke daftar siswa,
// onStudentAdded memuat ulang daftar siswa di halaman induk.
type StudentForm struct {
	mu     sync.Mutex
	fields models.StudentFormData

	adder          StudentAdder
	onBack         func()
	onStudentAdded func(ctx context.Context)

	// notify - tampilkan pemberitahuan ke operator
	notify func(Notice)
	sink   EventSink
	now    func() time.Time
}

func NewStudentForm(adder StudentAdder, onBack func(), onStudentAdded func(ctx context.Context)) *StudentForm {
	if onBack == nil {
		onBack = func() {}
	}
	if onStudentAdded == nil {
		onStudentAdded = func(context.Context) {}
	}
	return &StudentForm{
		adder:          adder,
		onBack:         onBack,
		onStudentAdded: onStudentAdded,
		notify:         func(Notice) {},
		sink:           nopSink{},
		now:            time.Now,
	}
}

func (f *StudentForm) Set(data models.StudentFormData) {
	f.mu.Lock()
	f.fields = data
	f.mu.Unlock()
}

func (f *StudentForm) Fields() models.StudentFormData {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// Submit - kirim siswa baru. Field kosong ditolak tanpa request ke sheet.
func (f *StudentForm) Submit(ctx context.Context) (Notice, error) {
	fields := f.Fields()

	req := models.AddStudentRequest{
		NISN:  fields.NISN,
		Nama:  fields.Nama,
		Kelas: fields.Kelas,
	}
	if err := validate.Struct(req); err != nil {
		notice := NoticeFor(ErrRequiredField)
		f.notify(notice)
		return notice, fmt.Errorf("%w: %v", ErrRequiredField, err)
	}

	err := f.adder.AddStudent(ctx, req)

	ev := Event{
		Type:     EventStudentAdded,
		Jumlah:   1,
		Berhasil: err == nil,
		Waktu:    f.now(),
	}
	if err != nil {
		ev.Error = NoticeFor(ErrAddStudent).Message
	}
	f.sink.Publish(ctx, ev)

	// gagal: isian dibiarkan supaya bisa dikirim ulang
	if err != nil {
		notice := NoticeFor(ErrAddStudent)
		f.notify(notice)
		return notice, fmt.Errorf("%w: %v", ErrAddStudent, err)
	}

	notice := successNotice(MsgAddSucceeded)
	f.notify(notice)
	f.onStudentAdded(ctx)
	f.clear()
	f.onBack()
	return notice, nil
}

// Back - batal, isian dibuang
func (f *StudentForm) Back() {
	f.clear()
	f.onBack()
}

func (f *StudentForm) clear() {
	f.mu.Lock()
	f.fields = models.StudentFormData{}
	f.mu.Unlock()
}
