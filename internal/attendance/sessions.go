package attendance

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type sessionEntry struct {
	board    *Board
	lastSeen time.Time
}

// Sessions - Board per sesi operator, hanya di memori
type Sessions struct {
	mu      sync.RWMutex
	entries map[uuid.UUID]*sessionEntry

	newBoard func() *Board
	idleTTL  time.Duration
	now      func() time.Time
}

func NewSessions(newBoard func() *Board, idleTTL time.Duration) *Sessions {
	return &Sessions{
		entries:  make(map[uuid.UUID]*sessionEntry),
		newBoard: newBoard,
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Lookup - Board milik sesi id. Id yang tidak dikenal tidak dibuatkan sesi,
// sesi baru hanya lewat New supaya id selalu dari server.
func (s *Sessions) Lookup(id uuid.UUID) (*Board, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = s.now()
	return entry.board, true
}

// New - buat sesi baru dengan id acak
func (s *Sessions) New() (uuid.UUID, *Board) {
	entry := &sessionEntry{board: s.newBoard(), lastSeen: s.now()}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New()
	s.entries[id] = entry
	return id, entry.board
}

func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Sweep - hapus sesi yang menganggur lebih lama dari idleTTL
func (s *Sessions) Sweep() int {
	if s.idleTTL <= 0 {
		return 0
	}

	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, entry := range s.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

// RunJanitor - Sweep berkala sampai ctx selesai
func (s *Sessions) RunJanitor(ctx context.Context, interval time.Duration) {
	if s.idleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				log.Printf("[session] %d sesi menganggur dihapus", n)
			}
		}
	}
}
