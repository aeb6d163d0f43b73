package sheet

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensi-siswa/internal/models"
)

func TestFetchStudents(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[
			{"id": 1, "nisn": "111", "name": "Ana", "kelas": "5A"},
			{"id": "2", "nisn": 222, "name": "Budi", "kelas": 6}
		]`)
	}))
	defer srv.Close()

	students, err := NewClient(srv.URL, srv.Client()).FetchStudents(context.Background())
	require.NoError(t, err)
	require.Len(t, students, 2)

	assert.Equal(t, models.Student{ID: "1", NISN: "111", Name: "Ana", Kelas: "5A"}, students[0])
	assert.Equal(t, models.Student{ID: "2", NISN: "222", Name: "Budi", Kelas: "6"}, students[1])
}

func TestFetchStudents_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `null`)
	}))
	defer srv.Close()

	students, err := NewClient(srv.URL, srv.Client()).FetchStudents(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestFetchStudents_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).FetchStudents(context.Background())
	assert.Error(t, err)
}

func TestFetchStudents_NotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "<html>Script function not found</html>")
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, srv.Client()).FetchStudents(context.Background())
	assert.Error(t, err)
}

func TestAddStudent_SendsSiswaType(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	err := NewClient(srv.URL, srv.Client()).AddStudent(context.Background(), models.AddStudentRequest{
		NISN: "111", Nama: "Ana", Kelas: "5A",
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"type": "siswa", "nisn": "111", "nama": "Ana", "kelas": "5A"}, got)
}

func TestSaveAttendance_IgnoresResponse(t *testing.T) {
	var got []models.AttendanceRecord
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, "gagal di sisi sheet")
	}))
	defer srv.Close()

	records := []models.AttendanceRecord{
		{Tanggal: "01-05-2024", Nama: "Ana", Kelas: "5A", NISN: "111", Status: models.StatusSakit},
	}
	err := NewClient(srv.URL, srv.Client()).SaveAttendance(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, records, got)
}

func TestSaveAttendance_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, nil).SaveAttendance(context.Background(), nil)
	assert.Error(t, err)
}
