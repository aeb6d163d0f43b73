package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"absensi-siswa/internal/attendance"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *LastSent) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return mr, NewLastSent(rdb)
}

func savedEvent(berhasil bool) attendance.Event {
	return attendance.Event{
		Type:     attendance.EventAttendanceSaved,
		Tanggal:  "2024-05-01",
		Jumlah:   3,
		Berhasil: berhasil,
		Waktu:    time.Date(2024, 5, 1, 14, 30, 0, 0, time.FixedZone("WIB", 7*3600)),
	}
}

func TestLastSentKey(t *testing.T) {
	assert.Equal(t, "absensi:terkirim:2024-05-01", lastSentKey("2024-05-01"))
}

func TestLastSent_DisabledWithoutRedis(t *testing.T) {
	l := NewLastSent(nil)

	assert.NotPanics(t, func() {
		l.Publish(context.Background(), savedEvent(true))
	})

	at, ok, err := l.Get(context.Background(), "2024-05-01")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, at.IsZero())
}

func TestLastSent_PublishSuccessfulSave(t *testing.T) {
	mr, l := newRedis(t)

	l.Publish(context.Background(), savedEvent(true))

	val, err := mr.Get("absensi:terkirim:2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01T07:30:00Z", val)
	assert.Equal(t, 30*24*time.Hour, mr.TTL("absensi:terkirim:2024-05-01"))
}

func TestLastSent_IgnoresOtherEvents(t *testing.T) {
	mr, l := newRedis(t)
	ctx := context.Background()

	l.Publish(ctx, savedEvent(false))
	l.Publish(ctx, attendance.Event{Type: attendance.EventStudentAdded, Tanggal: "2024-05-01", Berhasil: true, Waktu: time.Now()})
	l.Publish(ctx, attendance.Event{Type: attendance.EventRosterLoaded, Tanggal: "2024-05-01", Berhasil: true, Waktu: time.Now()})
	l.Publish(ctx, attendance.Event{Type: attendance.EventAttendanceSaved, Berhasil: true, Waktu: time.Now()})

	assert.Empty(t, mr.Keys())
}

func TestLastSent_GetRoundTrip(t *testing.T) {
	_, l := newRedis(t)
	ctx := context.Background()
	ev := savedEvent(true)

	l.Publish(ctx, ev)

	at, ok, err := l.Get(ctx, "2024-05-01")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, ev.Waktu.Equal(at))

	// tanggal lain belum pernah dikirim (redis.Nil)
	at, ok, err = l.Get(ctx, "2024-05-02")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, at.IsZero())
}

func TestLastSent_GetInvalidValue(t *testing.T) {
	mr, l := newRedis(t)
	require.NoError(t, mr.Set("absensi:terkirim:2024-05-01", "kemarin sore"))

	_, ok, err := l.Get(context.Background(), "2024-05-01")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestLastSent_GetRedisDown(t *testing.T) {
	mr, l := newRedis(t)
	mr.Close()

	_, ok, err := l.Get(context.Background(), "2024-05-01")
	assert.Error(t, err)
	assert.False(t, ok)
}
