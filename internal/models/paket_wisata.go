package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// PaketWisata represents one tour package row in paket_wisata
type PaketWisata struct {
	ID           int64     `json:"id" db:"id"`
	Nama         string    `json:"nama" db:"nama"`
	Tujuan       string    `json:"tujuan" db:"tujuan"`
	Harga        float64   `json:"harga" db:"harga"`
	Deskripsi    *string   `json:"deskripsi" db:"deskripsi"`
	Itinerary    *string   `json:"itinerary" db:"itinerary"`
	GambarURL    *string   `json:"gambar_url" db:"gambar_url"`
	GaleriGambar string    `json:"galeri_gambar" db:"galeri_gambar"` // JSON array of filenames, stored as text
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Galeri decodes the stored gallery into filenames
func (p PaketWisata) Galeri() ([]string, error) {
	return DecodeGaleri(p.GaleriGambar)
}

// CreatePaketWisataInput carries every column written by an insert.
// Scalar fields are opaque strings straight from the request; a nil pointer
// is stored as NULL.
type CreatePaketWisataInput struct {
	Nama         *string
	Tujuan       *string
	Harga        *string
	Deskripsi    *string
	Itinerary    *string
	GambarURL    *string
	GaleriGambar []string
}

// UpdatePaketWisataInput carries an update-by-id.
// The scalar fields are always written. GambarURL and GaleriGambar are only
// written when non-nil, i.e. when a new file arrived with the request.
type UpdatePaketWisataInput struct {
	Nama         *string
	Tujuan       *string
	Harga        *string
	Deskripsi    *string
	Itinerary    *string
	GambarURL    *string
	GaleriGambar []string
}

// EncodeGaleri serializes gallery filenames; nil encodes as an empty array
func EncodeGaleri(files []string) (string, error) {
	if files == nil {
		files = []string{}
	}
	b, err := json.Marshal(files)
	if err != nil {
		return "", fmt.Errorf("encode galeri_gambar: %w", err)
	}
	return string(b), nil
}

// DecodeGaleri parses a stored gallery; empty text decodes as no files
func DecodeGaleri(raw string) ([]string, error) {
	files := []string{}
	if raw == "" {
		return files, nil
	}
	if err := json.Unmarshal([]byte(raw), &files); err != nil {
		return nil, fmt.Errorf("decode galeri_gambar: %w", err)
	}
	return files, nil
}
