package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"absensi-siswa/internal/models"
)

// Client - akses ke web app spreadsheet (satu URL untuk GET dan POST)
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = DefaultHTTPClient(0)
	}
	return &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: httpClient,
	}
}

// DefaultHTTPClient - timeout 0 berarti ikut perilaku transport
func DefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// FetchStudents - GET daftar siswa
func (c *Client) FetchStudents(ctx context.Context) ([]models.Student, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("sheet endpoint unexpected status: %d", resp.StatusCode)
	}

	var students []models.Student
	if err := json.NewDecoder(resp.Body).Decode(&students); err != nil {
		return nil, fmt.Errorf("decode daftar siswa: %w", err)
	}
	if students == nil {
		students = []models.Student{}
	}
	return students, nil
}

// AddStudent - POST satu siswa baru, respons tidak dibaca
func (c *Client) AddStudent(ctx context.Context, req models.AddStudentRequest) error {
	req.Type = "siswa"
	return c.post(ctx, req)
}

// SaveAttendance - POST absensi satu hari sekaligus, respons tidak dibaca
func (c *Client) SaveAttendance(ctx context.Context, records []models.AttendanceRecord) error {
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	return c.post(ctx, records)
}

// Hanya error transport yang dianggap gagal, status dan body diabaikan
func (c *Client) post(ctx context.Context, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	return nil
}
