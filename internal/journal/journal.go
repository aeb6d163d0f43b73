package journal

import (
	"context"
	"database/sql"
	"log"
	"time"

	"absensi-siswa/internal/attendance"
)

// Entry - satu percobaan kirim ke endpoint sheet
type Entry struct {
	ID        int64     `json:"id"`
	Operation string    `json:"operation"`
	Tanggal   *string   `json:"tanggal"`
	Jumlah    int       `json:"jumlah"`
	Berhasil  string    `json:"berhasil"` // y / n
	Error     *string   `json:"error"`
	CreatedAt time.Time `json:"created_at"`
}

const schema = `
	CREATE TABLE IF NOT EXISTS absensi_journal (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		operation VARCHAR(32) NOT NULL,
		tanggal DATE NULL,
		jumlah INT NOT NULL DEFAULT 0,
		berhasil ENUM('y','n') NOT NULL,
		error TEXT NULL,
		created_at DATETIME NOT NULL,
		INDEX idx_absensi_journal_created (created_at)
	)
`

// MySQL - riwayat pengiriman. Nilai absensi tidak disimpan, hanya jumlah dan hasilnya.
type MySQL struct {
	db      *sql.DB
	timeout time.Duration
}

func NewMySQL(db *sql.DB) *MySQL {
	return &MySQL{db: db, timeout: 3 * time.Second}
}

func (j *MySQL) Migrate(ctx context.Context) error {
	_, err := j.db.ExecContext(ctx, schema)
	return err
}

func shouldRecord(ev attendance.Event) bool {
	return ev.Type == attendance.EventStudentAdded || ev.Type == attendance.EventAttendanceSaved
}

func (j *MySQL) Publish(ctx context.Context, ev attendance.Event) {
	if j == nil || j.db == nil || !shouldRecord(ev) {
		return
	}

	// tetap dicatat walau request operator sudah selesai
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), j.timeout)
	defer cancel()

	var tanggal, errMsg interface{}
	if ev.Tanggal != "" {
		tanggal = ev.Tanggal
	}
	if ev.Error != "" {
		errMsg = ev.Error
	}
	berhasil := "n"
	if ev.Berhasil {
		berhasil = "y"
	}

	_, err := j.db.ExecContext(ctx, `
		INSERT INTO absensi_journal
		(operation, tanggal, jumlah, berhasil, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, string(ev.Type), tanggal, ev.Jumlah, berhasil, errMsg, ev.Waktu)
	if err != nil {
		log.Printf("[journal] gagal mencatat %s: %v", ev.Type, err)
	}
}

// Recent - riwayat terbaru, paling baru di depan
func (j *MySQL) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, operation, DATE_FORMAT(tanggal, '%Y-%m-%d'), jumlah, berhasil, error, created_at
		FROM absensi_journal
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var e Entry
		var tanggal, errMsg sql.NullString
		if err := rows.Scan(&e.ID, &e.Operation, &tanggal, &e.Jumlah, &e.Berhasil, &errMsg, &e.CreatedAt); err != nil {
			return nil, err
		}
		if tanggal.Valid {
			e.Tanggal = &tanggal.String
		}
		if errMsg.Valid {
			e.Error = &errMsg.String
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
