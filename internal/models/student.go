package models

import (
	"encoding/json"
	"strings"
)

// StudentID - id siswa dari sheet, bisa berupa angka atau string
type StudentID string

func (id *StudentID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = StudentID(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = StudentID(n.String())
	return nil
}

// Student - Data siswa hasil GET endpoint sheet
type Student struct {
	ID    StudentID `json:"id"`
	NISN  string    `json:"nisn"`
	Name  string    `json:"name"`
	Kelas string    `json:"kelas"`
}

func (s *Student) UnmarshalJSON(b []byte) error {
	var raw struct {
		ID    StudentID       `json:"id"`
		NISN  json.RawMessage `json:"nisn"`
		Name  string          `json:"name"`
		Kelas json.RawMessage `json:"kelas"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}

	s.ID = raw.ID
	s.Name = raw.Name
	s.NISN = looseString(raw.NISN)
	s.Kelas = looseString(raw.Kelas)
	return nil
}

// Sheet sering mengirim nisn/kelas sebagai angka
func looseString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(raw))
}

// AddStudentRequest - Body POST tambah siswa ke endpoint sheet
type AddStudentRequest struct {
	Type  string `json:"type"`
	NISN  string `json:"nisn" validate:"required"`
	Nama  string `json:"nama" validate:"required"`
	Kelas string `json:"kelas" validate:"required"`
}
