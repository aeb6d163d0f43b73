package attendance

import (
	"context"
	"fmt"
	"sync"
	"time"

	"absensi-siswa/internal/helper"
	"absensi-siswa/internal/models"
)

// Roster - operasi ke endpoint sheet yang dipakai halaman absensi
type Roster interface {
	FetchStudents(ctx context.Context) ([]models.Student, error)
	AddStudent(ctx context.Context, req models.AddStudentRequest) error
	SaveAttendance(ctx context.Context, records []models.AttendanceRecord) error
}

type Options struct {
	// Today - tanggal awal (ISO) saat sesi dibuat
	Today string
	Sink  EventSink
	Now   func() time.Time
}

// Board - state halaman absensi untuk satu sesi operator.
// Semua state hanya di memori dan hilang saat proses berhenti.
type Board struct {
	mu sync.Mutex

	roster Roster
	sink   EventSink
	now    func() time.Time

	mounted    bool
	students   []models.Student
	attendance map[string]map[models.StudentID]models.Status
	date       string

	view models.ViewMode
	form *StudentForm

	flash []Notice
}

func NewBoard(roster Roster, opts Options) *Board {
	if opts.Sink == nil {
		opts.Sink = nopSink{}
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Today == "" {
		opts.Today = helper.Today(time.UTC, opts.Now())
	}

	return &Board{
		roster:     roster,
		sink:       opts.Sink,
		now:        opts.Now,
		students:   []models.Student{},
		attendance: make(map[string]map[models.StudentID]models.Status),
		date:       opts.Today,
		view:       models.ViewRoster,
	}
}

// Mount - ambil daftar siswa sekali saat sesi pertama kali dibuka
func (b *Board) Mount(ctx context.Context) error {
	b.mu.Lock()
	if b.mounted {
		b.mu.Unlock()
		return nil
	}
	b.mounted = true
	b.mu.Unlock()

	return b.LoadRoster(ctx)
}

// LoadRoster - ganti daftar siswa dengan data terbaru dari sheet.
// Kalau gagal, state lama tidak diubah.
func (b *Board) LoadRoster(ctx context.Context) error {
	students, err := b.roster.FetchStudents(ctx)
	if err != nil {
		b.setFlash(NoticeFor(ErrFetchRoster))
		return fmt.Errorf("%w: %v", ErrFetchRoster, err)
	}

	b.mu.Lock()
	b.students = students
	b.ensureAttendanceInitialized()
	b.mu.Unlock()

	b.sink.Publish(ctx, Event{
		Type:     EventRosterLoaded,
		Jumlah:   len(students),
		Berhasil: true,
		Waktu:    b.now(),
	})
	return nil
}

// ensureAttendanceInitialized - isi Hadir untuk tanggal aktif. Caller pegang b.mu.
func (b *Board) ensureAttendanceInitialized() {
	if len(b.students) == 0 {
		return
	}

	day, ok := b.attendance[b.date]
	if !ok {
		day = make(map[models.StudentID]models.Status, len(b.students))
		b.attendance[b.date] = day
	}

	// siswa yang baru masuk daftar ikut dapat Hadir, entri lama tidak disentuh
	for _, s := range b.students {
		if _, exists := day[s.ID]; !exists {
			day[s.ID] = models.StatusHadir
		}
	}
}

// SetDate - ganti tanggal aktif, tanpa batasan rentang
func (b *Board) SetDate(isoDate string) error {
	if !helper.IsISODate(isoDate) {
		return ErrInvalidDate
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.date = isoDate
	b.ensureAttendanceInitialized()
	return nil
}

// SetStatus - ubah status satu siswa di tanggal aktif
func (b *Board) SetStatus(id models.StudentID, status models.Status) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.hasStudent(id) {
		return ErrUnknownStudent
	}

	day, ok := b.attendance[b.date]
	if !ok {
		day = make(map[models.StudentID]models.Status)
		b.attendance[b.date] = day
	}
	day[id] = status
	return nil
}

func (b *Board) hasStudent(id models.StudentID) bool {
	for _, s := range b.students {
		if s.ID == id {
			return true
		}
	}
	return false
}

// Records - payload absensi untuk tanggal aktif, dipakai Save dan export rekap
func (b *Board) Records() (string, []models.AttendanceRecord) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.date, b.recordsFor(b.date)
}

func (b *Board) recordsFor(isoDate string) []models.AttendanceRecord {
	tanggal := helper.FormatDateDDMMYYYY(isoDate)
	day := b.attendance[isoDate]

	records := make([]models.AttendanceRecord, 0, len(b.students))
	for _, s := range b.students {
		status, ok := day[s.ID]
		if !ok {
			status = models.StatusHadir
		}
		records = append(records, models.AttendanceRecord{
			Tanggal: tanggal,
			Nama:    s.Name,
			Kelas:   s.Kelas,
			NISN:    s.NISN,
			Status:  status,
		})
	}
	return records
}

// Save - kirim absensi tanggal aktif ke sheet dalam satu batch
func (b *Board) Save(ctx context.Context) (Notice, error) {
	isoDate, records := b.Records()

	err := b.roster.SaveAttendance(ctx, records)

	ev := Event{
		Type:     EventAttendanceSaved,
		Tanggal:  isoDate,
		Jumlah:   len(records),
		Berhasil: err == nil,
		Waktu:    b.now(),
	}
	// error mentah berisi URL endpoint, jangan sampai ke /ws atau jurnal
	if err != nil {
		ev.Error = NoticeFor(ErrSaveAttendance).Message
	}
	b.sink.Publish(ctx, ev)

	if err != nil {
		notice := NoticeFor(ErrSaveAttendance)
		b.setFlash(notice)
		return notice, fmt.Errorf("%w: %v", ErrSaveAttendance, err)
	}

	notice := successNotice(MsgSaveSucceeded)
	b.setFlash(notice)
	return notice, nil
}

// ShowForm - pindah ke form tambah siswa
func (b *Board) ShowForm() *StudentForm {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.form == nil {
		b.form = NewStudentForm(b.roster, b.showRoster, b.studentAdded)
		b.form.notify = b.setFlash
		b.form.sink = b.sink
		b.form.now = b.now
	}
	b.view = models.ViewAddStudent
	return b.form
}

// Form - form yang sedang dibuka, nil kalau halaman daftar siswa
func (b *Board) Form() *StudentForm {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.view != models.ViewAddStudent {
		return nil
	}
	return b.form
}

func (b *Board) showRoster() {
	b.mu.Lock()
	b.view = models.ViewRoster
	b.mu.Unlock()
}

func (b *Board) studentAdded(ctx context.Context) {
	// notifikasi sukses tambah siswa tetap ditampilkan walau muat ulang gagal
	_ = b.LoadRoster(ctx)
}

// SubmitForm - isi dan kirim form tambah siswa
func (b *Board) SubmitForm(ctx context.Context, data models.StudentFormData) (Notice, error) {
	form := b.Form()
	if form == nil {
		return errorNotice(ErrNotInForm.Error()), ErrNotInForm
	}

	form.Set(data)
	return form.Submit(ctx)
}

// BackFromForm - batal tambah siswa
func (b *Board) BackFromForm() {
	if form := b.Form(); form != nil {
		form.Back()
		return
	}
	b.showRoster()
}

func (b *Board) setFlash(n Notice) {
	b.mu.Lock()
	b.flash = append(b.flash, n)
	b.mu.Unlock()
}

// TakeFlash - ambil notifikasi yang belum ditampilkan, urut sesuai kejadian
func (b *Board) TakeFlash() []Notice {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.flash
	b.flash = nil
	return n
}

// StudentRow - satu baris siswa di halaman absensi
type StudentRow struct {
	models.Student
	Status models.Status `json:"status"`
}

// Snapshot - salinan state untuk render
type Snapshot struct {
	Mode          string                 `json:"view"`
	Tanggal       string                 `json:"tanggal"`
	TanggalTampil string                 `json:"tanggal_tampil"`
	Jumlah        int                    `json:"jumlah"`
	Siswa         []StudentRow           `json:"siswa"`
	Form          models.StudentFormData `json:"form"`
}

func (b *Board) Snapshot() Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snapshotFor(b.date)
}

// SnapshotFor - seperti Snapshot tapi untuk tanggal tertentu, tanggal aktif tidak berubah
func (b *Board) SnapshotFor(isoDate string) (Snapshot, error) {
	if !helper.IsISODate(isoDate) {
		return Snapshot{}, ErrInvalidDate
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	return b.snapshotFor(isoDate), nil
}

func (b *Board) snapshotFor(isoDate string) Snapshot {
	day := b.attendance[isoDate]

	rows := make([]StudentRow, 0, len(b.students))
	for _, s := range b.students {
		rows = append(rows, StudentRow{Student: s, Status: day[s.ID]})
	}

	snap := Snapshot{
		Mode:          b.view.String(),
		Tanggal:       isoDate,
		TanggalTampil: helper.FormatDateDDMMYYYY(isoDate),
		Jumlah:        len(b.students),
		Siswa:         rows,
	}
	if b.view == models.ViewAddStudent && b.form != nil {
		snap.Form = b.form.Fields()
	}
	return snap
}

// Date - tanggal aktif (ISO)
func (b *Board) Date() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.date
}

// Status - status satu siswa di tanggal tertentu
func (b *Board) Status(isoDate string, id models.StudentID) (models.Status, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st, ok := b.attendance[isoDate][id]
	return st, ok
}
