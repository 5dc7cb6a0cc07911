package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"PAKET_WISATA_BACK-END/internal/models"
)

// ErrNotFound is returned when a lookup, update or delete matches no row
var ErrNotFound = errors.New("paket wisata not found")

// DBTX is satisfied by *pgxpool.Pool, pgx.Tx and pgxmock
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const selectColumns = `SELECT id, nama, tujuan, harga, deskripsi, itinerary, gambar_url, galeri_gambar, created_at
  FROM paket_wisata`

// PaketWisataRepository runs one statement per catalog operation
type PaketWisataRepository struct {
	db      DBTX
	timeout time.Duration
}

// NewPaketWisataRepository creates a repository; timeout bounds every statement (0 disables it)
func NewPaketWisataRepository(db DBTX, timeout time.Duration) *PaketWisataRepository {
	return &PaketWisataRepository{db: db, timeout: timeout}
}

func (r *PaketWisataRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

// List returns every package, newest first
func (r *PaketWisataRepository) List(ctx context.Context) ([]models.PaketWisata, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.Query(ctx, selectColumns+`
 ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list paket_wisata: %w", err)
	}
	defer rows.Close()

	items := make([]models.PaketWisata, 0)
	for rows.Next() {
		p, err := scanPaketWisata(rows)
		if err != nil {
			return nil, fmt.Errorf("scan paket_wisata: %w", err)
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list paket_wisata: %w", err)
	}
	return items, nil
}

// GetByID returns the package with the given id or ErrNotFound
func (r *PaketWisataRepository) GetByID(ctx context.Context, id int64) (*models.PaketWisata, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	p, err := scanPaketWisata(r.db.QueryRow(ctx, selectColumns+`
 WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get paket_wisata %d: %w", id, err)
	}
	return &p, nil
}

// Create inserts one row and returns its generated id
func (r *PaketWisataRepository) Create(ctx context.Context, in models.CreatePaketWisataInput) (int64, error) {
	galeri, err := models.EncodeGaleri(in.GaleriGambar)
	if err != nil {
		return 0, err
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var id int64
	err = r.db.QueryRow(ctx,
		`INSERT INTO paket_wisata (nama, tujuan, harga, deskripsi, gambar_url, itinerary, galeri_gambar)
         VALUES ($1, $2, CAST($3::text AS NUMERIC), $4, $5, $6, $7)
      RETURNING id`,
		in.Nama, in.Tujuan, in.Harga, in.Deskripsi, in.GambarURL, in.Itinerary, galeri,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert paket_wisata: %w", err)
	}
	return id, nil
}

// Update overwrites the scalar columns of the row with the given id.
// Image columns are only touched when the input carries them.
func (r *PaketWisataRepository) Update(ctx context.Context, id int64, in models.UpdatePaketWisataInput) error {
	query := `UPDATE paket_wisata
            SET nama = $1,
                tujuan = $2,
                harga = CAST($3::text AS NUMERIC),
                deskripsi = $4,
                itinerary = $5`
	args := []any{in.Nama, in.Tujuan, in.Harga, in.Deskripsi, in.Itinerary}

	if in.GambarURL != nil {
		args = append(args, *in.GambarURL)
		query += fmt.Sprintf(",\n                gambar_url = $%d", len(args))
	}
	if in.GaleriGambar != nil {
		galeri, err := models.EncodeGaleri(in.GaleriGambar)
		if err != nil {
			return err
		}
		args = append(args, galeri)
		query += fmt.Sprintf(",\n                galeri_gambar = $%d", len(args))
	}
	args = append(args, id)
	query += fmt.Sprintf("\n          WHERE id = $%d", len(args))

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update paket_wisata %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the row with the given id
func (r *PaketWisataRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tag, err := r.db.Exec(ctx, `DELETE FROM paket_wisata WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete paket_wisata %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanPaketWisata(row pgx.Row) (models.PaketWisata, error) {
	var p models.PaketWisata
	err := row.Scan(
		&p.ID, &p.Nama, &p.Tujuan, &p.Harga, &p.Deskripsi, &p.Itinerary, &p.GambarURL, &p.GaleriGambar, &p.CreatedAt,
	)
	return p, err
}
