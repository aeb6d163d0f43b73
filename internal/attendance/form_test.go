package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensi-siswa/internal/models"
)

func TestStudentForm_RequiredFields(t *testing.T) {
	cases := []models.StudentFormData{
		{NISN: "", Nama: "Ana", Kelas: "5A"},
		{NISN: "111", Nama: "", Kelas: "5A"},
		{NISN: "111", Nama: "Ana", Kelas: ""},
		{},
	}

	for _, data := range cases {
		roster := &fakeRoster{}
		added, back := 0, 0
		form := NewStudentForm(roster, func() { back++ }, func(context.Context) { added++ })
		form.Set(data)

		notice, err := form.Submit(context.Background())
		assert.ErrorIs(t, err, ErrRequiredField)
		assert.Equal(t, MsgRequiredField, notice.Message)
		assert.Empty(t, roster.added, "tidak boleh ada request untuk %+v", data)
		assert.Zero(t, added)
		assert.Zero(t, back)
		assert.Equal(t, data, form.Fields())
	}
}

func TestStudentForm_SubmitSuccess(t *testing.T) {
	roster := &fakeRoster{}
	var calls []string
	form := NewStudentForm(roster,
		func() { calls = append(calls, "back") },
		func(context.Context) { calls = append(calls, "added") },
	)
	form.Set(models.StudentFormData{NISN: "111", Nama: "Ana", Kelas: "5A"})

	notice, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, MsgAddSucceeded, notice.Message)
	assert.Equal(t, []string{"added", "back"}, calls)
	assert.Equal(t, models.StudentFormData{}, form.Fields())
	assert.Equal(t, []models.AddStudentRequest{{NISN: "111", Nama: "Ana", Kelas: "5A"}}, roster.added)
}

func TestStudentForm_SubmitFailureKeepsFields(t *testing.T) {
	roster := &fakeRoster{addErr: errTransport}
	back := 0
	form := NewStudentForm(roster, func() { back++ }, nil)
	data := models.StudentFormData{NISN: "111", Nama: "Ana", Kelas: "5A"}
	form.Set(data)

	notice, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAddStudent)
	assert.Equal(t, MsgAddFailed, notice.Message)
	assert.Equal(t, data, form.Fields())
	assert.Zero(t, back)
}

func TestStudentForm_FailureEventHidesEndpoint(t *testing.T) {
	sink := &recordingSink{}
	form := NewStudentForm(&fakeRoster{addErr: errTransport}, nil, nil)
	form.sink = sink
	form.Set(models.StudentFormData{NISN: "111", Nama: "Ana", Kelas: "5A"})

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrAddStudent)

	require.Len(t, sink.events, 1)
	ev := sink.events[0]
	assert.Equal(t, EventStudentAdded, ev.Type)
	assert.False(t, ev.Berhasil)
	assert.Equal(t, MsgAddFailed, ev.Error)
	assert.NotContains(t, ev.Error, "script.example.com")
}

func TestStudentForm_Back(t *testing.T) {
	back := 0
	form := NewStudentForm(&fakeRoster{}, func() { back++ }, nil)
	form.Set(models.StudentFormData{NISN: "111"})

	form.Back()
	assert.Equal(t, 1, back)
	assert.Equal(t, models.StudentFormData{}, form.Fields())
}

func TestBoard_AddStudentReloadsRosterOnce(t *testing.T) {
	sink := &recordingSink{}
	roster := &fakeRoster{students: []models.Student{ana()}}
	board := newTestBoard(roster, sink)
	ctx := context.Background()
	require.NoError(t, board.Mount(ctx))
	require.Equal(t, 1, roster.fetchCalls)

	form := board.ShowForm()
	assert.Equal(t, models.ViewAddStudent.String(), board.Snapshot().Mode)
	assert.Same(t, form, board.Form())

	notice, err := board.SubmitForm(ctx, models.StudentFormData{NISN: "333", Nama: "Citra", Kelas: "5A"})
	require.NoError(t, err)
	assert.Equal(t, NoticeSuccess, notice.Kind)

	assert.Equal(t, 2, roster.fetchCalls)
	assert.Equal(t, models.ViewRoster.String(), board.Snapshot().Mode)
	assert.Nil(t, board.Form())
	assert.Equal(t, models.StudentFormData{}, form.Fields())

	snap := board.Snapshot()
	assert.Equal(t, 2, snap.Jumlah)
	assert.Equal(t, models.StatusHadir, snap.Siswa[1].Status)

	flash := board.TakeFlash()
	require.Len(t, flash, 1)
	assert.Equal(t, MsgAddSucceeded, flash[0].Message)

	assert.Equal(t, []EventType{EventRosterLoaded, EventStudentAdded, EventRosterLoaded}, sink.types())
}

func TestBoard_AddStudentSuccessThenReloadFails(t *testing.T) {
	roster := &fakeRoster{}
	board := newTestBoard(roster, nil)
	board.ShowForm()
	roster.fetchErr = errTransport

	_, err := board.SubmitForm(context.Background(), models.StudentFormData{NISN: "1", Nama: "A", Kelas: "1"})
	require.NoError(t, err)

	flash := board.TakeFlash()
	require.Len(t, flash, 2)
	assert.Equal(t, MsgAddSucceeded, flash[0].Message)
	assert.Equal(t, MsgFetchFailed, flash[1].Message)
}

func TestBoard_SubmitFormOutsideFormView(t *testing.T) {
	roster := &fakeRoster{}
	board := newTestBoard(roster, nil)

	_, err := board.SubmitForm(context.Background(), models.StudentFormData{NISN: "1", Nama: "A", Kelas: "1"})
	assert.ErrorIs(t, err, ErrNotInForm)
	assert.Empty(t, roster.added)
}

func TestBoard_BackFromFormDiscardsFields(t *testing.T) {
	board := newTestBoard(&fakeRoster{}, nil)
	form := board.ShowForm()
	form.Set(models.StudentFormData{NISN: "111", Nama: "Ana"})

	board.BackFromForm()
	assert.Equal(t, models.ViewRoster.String(), board.Snapshot().Mode)

	board.ShowForm()
	assert.Equal(t, models.StudentFormData{}, board.Snapshot().Form)
}
