package main

import (
	"absensi-siswa/internal/attendance"
	"absensi-siswa/internal/cache"
	"absensi-siswa/internal/config"
	"absensi-siswa/internal/helper"
	apphttp "absensi-siswa/internal/http"
	"absensi-siswa/internal/http/handler"
	"absensi-siswa/internal/journal"
	"absensi-siswa/internal/realtime"
	"absensi-siswa/internal/sheet"
	"context"
	"log"
	"os/signal"
	"runtime"
	"syscall"
	"time"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())

	config.LoadEnv()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Konfigurasi tidak valid: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rdb := config.InitRedis(cfg)
	defer config.CloseRedis()
	db := config.InitDB(cfg)
	defer config.CloseDB()

	loc := helper.LoadLocation(cfg.Timezone)
	client := sheet.NewClient(cfg.SheetEndpoint, sheet.DefaultHTTPClient(cfg.SheetHTTPTimeout))

	hub := realtime.NewHub()
	go hub.Run(ctx)

	lastSent := cache.NewLastSent(rdb)
	sinks := attendance.Sinks{hub, lastSent}

	opts := handler.Options{
		LastSent: lastSent,
		Hub:      hub,
		Location: loc,
	}
	if db != nil {
		j := journal.NewMySQL(db)
		if err := j.Migrate(ctx); err != nil {
			log.Fatal("Gagal menyiapkan tabel jurnal: ", err)
		}
		sinks = append(sinks, j)
		opts.Journal = j
	}

	sessions := attendance.NewSessions(func() *attendance.Board {
		return attendance.NewBoard(client, attendance.Options{
			Today: helper.Today(loc, time.Now()),
			Sink:  sinks,
		})
	}, cfg.SessionIdleTTL)
	go sessions.RunJanitor(ctx, 10*time.Minute)

	app := apphttp.NewApp(handler.New(sessions, opts), apphttp.RouterConfig{
		BasicAuthUser: cfg.BasicAuthUser,
		BasicAuthPass: cfg.BasicAuthPass,
	})

	go func() {
		<-ctx.Done()
		log.Println("Server berhenti...")
		if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
			log.Println("Shutdown error:", err)
		}
	}()

	log.Println("Server jalan di", cfg.Addr())
	if err := app.Listen(cfg.Addr()); err != nil {
		log.Fatal(err)
	}
}
