package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"absensi-siswa/internal/http/handler"
	"absensi-siswa/internal/http/middleware"
)

type RouterConfig struct {
	BasicAuthUser string
	BasicAuthPass string
}

func NewApp(h *handler.Handler, cfg RouterConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		Prefork:       false,
		CaseSensitive: true,
		StrictRouting: true,
		// nilai form/query disimpan di sesi, jadi tidak boleh menunjuk ke buffer request
		Immutable: true,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET, POST, PUT",
	}))

	app.Get("/health", handler.Health)

	// Semua route operator, opsional pakai basic auth
	operator := app.Group("")
	if cfg.BasicAuthUser != "" && cfg.BasicAuthPass != "" {
		operator.Use(middleware.BasicAuth(cfg.BasicAuthUser, cfg.BasicAuthPass))
	}

	// Halaman
	operator.Get("/", h.Page)
	operator.Post("/tanggal", h.SelectDate)
	operator.Post("/status", h.SelectStatus)
	operator.Post("/simpan", h.SaveAttendance)
	operator.Post("/siswa/form", h.OpenStudentForm)
	operator.Post("/siswa", h.SubmitStudentForm)
	operator.Post("/siswa/kembali", h.CloseStudentForm)

	// API
	api := operator.Group("/api")
	api.Get("/siswa", h.GetStudents)
	api.Post("/siswa", h.AddStudent)
	api.Post("/siswa/muat-ulang", h.ReloadStudents)
	api.Get("/absensi", h.GetAttendance)
	api.Put("/absensi/tanggal", h.SetDate)
	api.Put("/absensi/status", h.SetStatus)
	api.Post("/absensi/simpan", h.Save)
	api.Get("/absensi/export", h.ExportAttendance)
	api.Get("/jurnal", h.GetJournal)

	// Realtime
	operator.Get("/ws", handler.UpgradeWS, websocket.New(h.Events))

	return app
}
