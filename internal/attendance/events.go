package attendance

import (
	"context"
	"time"
)

type EventType string

const (
	EventRosterLoaded    EventType = "roster_loaded"
	EventStudentAdded    EventType = "student_added"
	EventAttendanceSaved EventType = "attendance_saved"
)

// Event - dikirim setiap operasi ke endpoint sheet selesai
type Event struct {
	Type     EventType `json:"type"`
	Tanggal  string    `json:"tanggal,omitempty"` // ISO, hanya untuk attendance_saved
	Jumlah   int       `json:"jumlah"`
	Berhasil bool      `json:"berhasil"`
	Error    string    `json:"error,omitempty"`
	Waktu    time.Time `json:"waktu"`
}

type EventSink interface {
	Publish(ctx context.Context, ev Event)
}

// Sinks - fan-out ke beberapa sink sekaligus
type Sinks []EventSink

func (s Sinks) Publish(ctx context.Context, ev Event) {
	for _, sink := range s {
		if sink != nil {
			sink.Publish(ctx, ev)
		}
	}
}

type nopSink struct{}

func (nopSink) Publish(context.Context, Event) {}
