package attendance

import (
	"context"
	"errors"
	"sync"

	"absensi-siswa/internal/models"
)

var errTransport = errors.New(`Post "https://script.example.com/macros/s/rahasia/exec": dial tcp: connection refused`)

type fakeRoster struct {
	mu sync.Mutex

	students []models.Student
	fetchErr error
	addErr   error
	saveErr  error

	fetchCalls int
	added      []models.AddStudentRequest
	saved      [][]models.AttendanceRecord
}

func (f *fakeRoster) FetchStudents(ctx context.Context) ([]models.Student, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetchCalls++
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	out := make([]models.Student, len(f.students))
	copy(out, f.students)
	return out, nil
}

func (f *fakeRoster) AddStudent(ctx context.Context, req models.AddStudentRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.addErr != nil {
		return f.addErr
	}
	f.added = append(f.added, req)
	f.students = append(f.students, models.Student{
		ID:    models.StudentID(req.NISN),
		NISN:  req.NISN,
		Name:  req.Nama,
		Kelas: req.Kelas,
	})
	return nil
}

func (f *fakeRoster) SaveAttendance(ctx context.Context, records []models.AttendanceRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.saved = append(f.saved, records)
	return f.saveErr
}

type recordingSink struct {
	mu     sync.Mutex
	events []Event
}

func (s *recordingSink) Publish(ctx context.Context, ev Event) {
	s.mu.Lock()
	s.events = append(s.events, ev)
	s.mu.Unlock()
}

func (s *recordingSink) types() []EventType {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]EventType, 0, len(s.events))
	for _, ev := range s.events {
		out = append(out, ev.Type)
	}
	return out
}

func ana() models.Student {
	return models.Student{ID: "1", NISN: "111", Name: "Ana", Kelas: "5A"}
}

func budi() models.Student {
	return models.Student{ID: "2", NISN: "222", Name: "Budi", Kelas: "5B"}
}
