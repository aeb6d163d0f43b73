package handler

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"absensi-siswa/internal/attendance"
	"absensi-siswa/internal/export"
	"absensi-siswa/internal/helper"
	"absensi-siswa/internal/models"
)

func noticeStatus(err error) int {
	switch {
	case errors.Is(err, attendance.ErrRequiredField),
		errors.Is(err, attendance.ErrInvalidDate),
		errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrUnknownStudent):
		return fiber.StatusBadRequest
	case errors.Is(err, attendance.ErrNotInForm):
		return fiber.StatusConflict
	}
	return fiber.StatusBadGateway
}

func failed(c *fiber.Ctx, err error) error {
	return c.Status(noticeStatus(err)).JSON(fiber.Map{
		"success": false,
		"error":   attendance.NoticeFor(err).Message,
	})
}

// GetStudents - GET /api/siswa
func (h *Handler) GetStudents(c *fiber.Ctx) error {
	board, err := h.mountedBoard(c)
	board.TakeFlash()
	if err != nil {
		return failed(c, err)
	}

	snap := board.Snapshot()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    snap.Siswa,
		"jumlah":  snap.Jumlah,
	})
}

// ReloadStudents - POST /api/siswa/muat-ulang
func (h *Handler) ReloadStudents(c *fiber.Ctx) error {
	board := h.board(c)
	err := board.LoadRoster(c.UserContext())
	board.TakeFlash()
	if err != nil {
		log.Printf("[muat-ulang] %v", err)
		return failed(c, err)
	}

	snap := board.Snapshot()
	return c.JSON(fiber.Map{
		"success": true,
		"data":    snap.Siswa,
		"jumlah":  snap.Jumlah,
	})
}

// GetAttendance - GET /api/absensi?tanggal=yyyy-mm-dd, default tanggal aktif
func (h *Handler) GetAttendance(c *fiber.Ctx) error {
	board, err := h.mountedBoard(c)
	board.TakeFlash()
	if err != nil {
		return failed(c, err)
	}

	snap := board.Snapshot()
	if tanggal := c.Query("tanggal"); tanggal != "" && tanggal != snap.Tanggal {
		if snap, err = board.SnapshotFor(tanggal); err != nil {
			return failed(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    snap,
	})
}

// SetDate - PUT /api/absensi/tanggal
func (h *Handler) SetDate(c *fiber.Ctx) error {
	var req struct {
		Tanggal string `json:"tanggal"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	board := h.board(c)
	if err := board.SetDate(req.Tanggal); err != nil {
		return failed(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    board.Snapshot(),
	})
}

// SetStatus - PUT /api/absensi/status
func (h *Handler) SetStatus(c *fiber.Ctx) error {
	var req struct {
		StudentID models.StudentID `json:"student_id"`
		Status    models.Status    `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	board := h.board(c)
	if err := board.SetStatus(req.StudentID, req.Status); err != nil {
		return failed(c, err)
	}

	// balas dengan status yang tersimpan di board, bukan isian request
	tanggal := board.Date()
	status, _ := board.Status(tanggal, req.StudentID)
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"tanggal":    tanggal,
			"student_id": req.StudentID,
			"status":     status,
		},
	})
}

// Save - POST /api/absensi/simpan
func (h *Handler) Save(c *fiber.Ctx) error {
	board := h.board(c)
	notice, err := board.Save(c.UserContext())
	board.TakeFlash()
	if err != nil {
		log.Printf("[simpan] %v", err)
		return failed(c, err)
	}

	isoDate, records := board.Records()
	return c.JSON(fiber.Map{
		"success": true,
		"message": notice.Message,
		"data": fiber.Map{
			"tanggal": isoDate,
			"jumlah":  len(records),
		},
	})
}

// AddStudent - POST /api/siswa, lewat form tambah siswa milik sesi
func (h *Handler) AddStudent(c *fiber.Ctx) error {
	var req models.StudentFormData
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request body",
		})
	}

	board := h.board(c)
	board.ShowForm()
	notice, err := board.SubmitForm(c.UserContext(), req)
	board.TakeFlash()
	if err != nil {
		log.Printf("[tambah-siswa] %v", err)
		return failed(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": notice.Message,
		"jumlah":  board.Snapshot().Jumlah,
	})
}

// ExportAttendance - GET /api/absensi/export, rekap tanggal aktif dalam xlsx
func (h *Handler) ExportAttendance(c *fiber.Ctx) error {
	board, err := h.mountedBoard(c)
	board.TakeFlash()
	if err != nil {
		return failed(c, err)
	}

	isoDate, records := board.Records()
	data, err := export.Rekap(records)
	if err != nil {
		log.Printf("[export] %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal membuat file rekap",
		})
	}

	c.Attachment(export.FileName(helper.FormatDateDDMMYYYY(isoDate)))
	return c.Send(data)
}

// GetJournal - GET /api/jurnal
func (h *Handler) GetJournal(c *fiber.Ctx) error {
	if h.journal == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "Jurnal pengiriman tidak aktif",
		})
	}

	entries, err := h.journal.Recent(c.UserContext(), c.QueryInt("limit", 20))
	if err != nil {
		log.Printf("[jurnal] %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Gagal mengambil jurnal pengiriman",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    entries,
	})
}
