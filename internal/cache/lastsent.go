package cache

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"absensi-siswa/internal/attendance"
)

const keyPrefix = "absensi:terkirim:"

func lastSentKey(isoDate string) string {
	return keyPrefix + isoDate
}

// LastSent - waktu terakhir absensi suatu tanggal berhasil dikirim
type LastSent struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewLastSent(rdb *redis.Client) *LastSent {
	return &LastSent{rdb: rdb, ttl: 30 * 24 * time.Hour}
}

func (l *LastSent) enabled() bool {
	return l != nil && l.rdb != nil
}

func (l *LastSent) Publish(ctx context.Context, ev attendance.Event) {
	if !l.enabled() || ev.Type != attendance.EventAttendanceSaved || !ev.Berhasil || ev.Tanggal == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 2*time.Second)
	defer cancel()

	err := l.rdb.Set(ctx, lastSentKey(ev.Tanggal), ev.Waktu.UTC().Format(time.RFC3339), l.ttl).Err()
	if err != nil {
		log.Printf("[cache] gagal simpan penanda %s: %v", ev.Tanggal, err)
	}
}

// Get - ok=false kalau belum pernah dikirim atau Redis tidak dipakai
func (l *LastSent) Get(ctx context.Context, isoDate string) (time.Time, bool, error) {
	if !l.enabled() {
		return time.Time{}, false, nil
	}

	val, err := l.rdb.Get(ctx, lastSentKey(isoDate)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	at, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}
