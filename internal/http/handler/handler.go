package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"absensi-siswa/internal/attendance"
	"absensi-siswa/internal/journal"
	"absensi-siswa/internal/realtime"
)

const SessionCookie = "absensi_sid"

type LastSentReader interface {
	Get(ctx context.Context, isoDate string) (time.Time, bool, error)
}

type JournalReader interface {
	Recent(ctx context.Context, limit int) ([]journal.Entry, error)
}

type Handler struct {
	sessions *attendance.Sessions
	lastSent LastSentReader
	journal  JournalReader
	hub      *realtime.Hub
	loc      *time.Location
}

type Options struct {
	LastSent LastSentReader
	// Journal - nil kalau DB_DSN kosong
	Journal  JournalReader
	Hub      *realtime.Hub
	Location *time.Location
}

func New(sessions *attendance.Sessions, opts Options) *Handler {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Handler{
		sessions: sessions,
		lastSent: opts.LastSent,
		journal:  opts.Journal,
		hub:      opts.Hub,
		loc:      opts.Location,
	}
}

// board - Board milik sesi di cookie. Cookie kosong, rusak, atau sesi yang
// sudah tidak ada dapat sesi baru dengan id dari server.
func (h *Handler) board(c *fiber.Ctx) *attendance.Board {
	if id, err := uuid.Parse(c.Cookies(SessionCookie)); err == nil {
		if board, ok := h.sessions.Lookup(id); ok {
			return board
		}
	}

	id, board := h.sessions.New()
	c.Cookie(&fiber.Cookie{
		Name:     SessionCookie,
		Value:    id.String(),
		Path:     "/",
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return board
}

// mountedBoard - seperti board, tapi daftar siswa dimuat dulu saat sesi baru
func (h *Handler) mountedBoard(c *fiber.Ctx) (*attendance.Board, error) {
	board := h.board(c)
	return board, board.Mount(c.UserContext())
}

func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Absensi siswa jalan",
	})
}
