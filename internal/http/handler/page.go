package handler

import (
	"bytes"
	"embed"
	"html/template"
	"log"

	"github.com/gofiber/fiber/v2"

	"absensi-siswa/internal/attendance"
	"absensi-siswa/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type pageData struct {
	Snapshot attendance.Snapshot
	Statuses []models.Status
	Notices  []attendance.Notice
	LastSent string
}

// Page - halaman daftar siswa atau form tambah siswa, sesuai state sesi
func (h *Handler) Page(c *fiber.Ctx) error {
	board, _ := h.mountedBoard(c)

	snap := board.Snapshot()
	data := pageData{
		Snapshot: snap,
		Statuses: models.Statuses,
		Notices:  board.TakeFlash(),
		LastSent: h.lastSentText(c, snap.Tanggal),
	}

	var buf bytes.Buffer
	if err := pageTemplate.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("[page] render gagal: %v", err)
		return c.Status(fiber.StatusInternalServerError).SendString("Gagal menampilkan halaman")
	}

	c.Set(fiber.HeaderCacheControl, "no-store")
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (h *Handler) lastSentText(c *fiber.Ctx, isoDate string) string {
	if h.lastSent == nil {
		return ""
	}
	at, ok, err := h.lastSent.Get(c.UserContext(), isoDate)
	if err != nil {
		log.Printf("[page] baca penanda kirim %s: %v", isoDate, err)
		return ""
	}
	if !ok {
		return ""
	}
	return at.In(h.loc).Format("02-01-2006 15:04")
}

func backToPage(c *fiber.Ctx) error {
	return c.Redirect("/", fiber.StatusSeeOther)
}

// SelectDate - POST /tanggal
func (h *Handler) SelectDate(c *fiber.Ctx) error {
	board := h.board(c)
	if err := board.SetDate(c.FormValue("tanggal")); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	return backToPage(c)
}

// SelectStatus - POST /status, satu tombol status ditekan
func (h *Handler) SelectStatus(c *fiber.Ctx) error {
	board := h.board(c)
	id := models.StudentID(c.FormValue("student_id"))
	status := models.Status(c.FormValue("status"))

	if err := board.SetStatus(id, status); err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	return backToPage(c)
}

// SaveAttendance - POST /simpan
func (h *Handler) SaveAttendance(c *fiber.Ctx) error {
	board := h.board(c)
	if _, err := board.Save(c.UserContext()); err != nil {
		log.Printf("[simpan] %v", err)
	}
	return backToPage(c)
}

// OpenStudentForm - POST /siswa/form
func (h *Handler) OpenStudentForm(c *fiber.Ctx) error {
	h.board(c).ShowForm()
	return backToPage(c)
}

// SubmitStudentForm - POST /siswa
func (h *Handler) SubmitStudentForm(c *fiber.Ctx) error {
	board := h.board(c)
	data := models.StudentFormData{
		NISN:  c.FormValue("nisn"),
		Nama:  c.FormValue("nama"),
		Kelas: c.FormValue("kelas"),
	}

	if _, err := board.SubmitForm(c.UserContext(), data); err != nil {
		log.Printf("[tambah-siswa] %v", err)
	}
	return backToPage(c)
}

// CloseStudentForm - POST /siswa/kembali
func (h *Handler) CloseStudentForm(c *fiber.Ctx) error {
	h.board(c).BackFromForm()
	return backToPage(c)
}
