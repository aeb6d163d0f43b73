package helper

import (
	"strings"
	"time"
)

const ISODateLayout = "2006-01-02"

// FormatDateDDMMYYYY - ubah "yyyy-mm-dd" jadi "dd-mm-yyyy"
func FormatDateDDMMYYYY(isoDate string) string {
	parts := strings.Split(isoDate, "-")
	if len(parts) != 3 {
		return isoDate
	}
	return parts[2] + "-" + parts[1] + "-" + parts[0]
}

// IsISODate - cek format tanggal dari date picker
func IsISODate(s string) bool {
	_, err := time.Parse(ISODateLayout, s)
	return err == nil
}

// LoadLocation - fallback ke UTC kalau zona waktu tidak dikenal
func LoadLocation(name string) *time.Location {
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Today - tanggal hari ini (ISO) di zona waktu sekolah
func Today(loc *time.Location, now time.Time) string {
	if loc == nil {
		loc = time.UTC
	}
	return now.In(loc).Format(ISODateLayout)
}
