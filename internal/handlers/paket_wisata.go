package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"PAKET_WISATA_BACK-END/internal/dto"
	"PAKET_WISATA_BACK-END/internal/middleware"
	"PAKET_WISATA_BACK-END/internal/models"
	"PAKET_WISATA_BACK-END/internal/repository"
	"PAKET_WISATA_BACK-END/internal/uploads"
	"PAKET_WISATA_BACK-END/internal/utils"
)

// PaketWisataStore is the data access the catalog handlers need
type PaketWisataStore interface {
	List(ctx context.Context) ([]models.PaketWisata, error)
	GetByID(ctx context.Context, id int64) (*models.PaketWisata, error)
	Create(ctx context.Context, in models.CreatePaketWisataInput) (int64, error)
	Update(ctx context.Context, id int64, in models.UpdatePaketWisataInput) error
	Delete(ctx context.Context, id int64) error
}

// PaketWisataHandler manages the tour package catalog endpoints
type PaketWisataHandler struct {
	store PaketWisataStore
}

// NewPaketWisataHandler creates a new PaketWisataHandler
func NewPaketWisataHandler(store PaketWisataStore) *PaketWisataHandler {
	return &PaketWisataHandler{store: store}
}

// List handles GET /api/paket-wisata
// @Summary List tour packages
// @Description Returns every package, most recently created first
// @Tags paket-wisata
// @Produce json
// @Success 200 {array} models.PaketWisata
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/paket-wisata [get]
func (h *PaketWisataHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.store.List(r.Context())
	if err != nil {
		logStorageError(r, "list", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Gagal mengambil data")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, items)
}

// Get handles GET /api/paket-wisata/{id}
// @Summary Get a tour package
// @Tags paket-wisata
// @Produce json
// @Param id path int true "Package ID"
// @Success 200 {object} models.PaketWisata
// @Failure 400 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/paket-wisata/{id} [get]
func (h *PaketWisataHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		utils.WriteMessageResponse(w, http.StatusBadRequest, "ID Paket tidak valid.")
		return
	}

	p, err := h.store.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteMessageResponse(w, http.StatusNotFound, "Paket tidak ditemukan.")
		return
	}
	if err != nil {
		logStorageError(r, "get", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Gagal mengambil data")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, p)
}

// Create handles POST /api/paket-wisata/tambah
// @Summary Create a tour package
// @Description Scalar fields are stored as sent. Files are optional.
// @Tags paket-wisata
// @Accept multipart/form-data
// @Produce json
// @Param nama formData string false "Name"
// @Param tujuan formData string false "Destination"
// @Param harga formData string false "Price"
// @Param deskripsi formData string false "Description"
// @Param itinerary formData string false "Itinerary"
// @Param gambar formData file false "Primary image"
// @Param galeri_gambar formData file false "Gallery images (up to 10)"
// @Success 200 {object} dto.CreatePaketWisataResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/paket-wisata/tambah [post]
func (h *PaketWisataHandler) Create(w http.ResponseWriter, r *http.Request) {
	form, err := readForm(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Body tidak valid")
		return
	}
	files := uploads.FromContext(r.Context())

	in := models.CreatePaketWisataInput{
		Nama:         form["nama"],
		Tujuan:       form["tujuan"],
		Harga:        form["harga"],
		Deskripsi:    form["deskripsi"],
		Itinerary:    form["itinerary"],
		GambarURL:    files.First(uploads.FieldGambar.Name),
		GaleriGambar: files.All(uploads.FieldGaleri.Name),
	}

	id, err := h.store.Create(r.Context(), in)
	if err != nil {
		logStorageError(r, "create", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Gagal menyimpan data")
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.CreatePaketWisataResponse{
		Message:    "Data berhasil ditambahkan!",
		InsertedID: id,
	})
}

// Update handles PUT /api/paket-wisata/update/{id}
// @Summary Update a tour package
// @Description All scalar fields are overwritten; send every one of them. Image fields change only when new files are uploaded.
// @Tags paket-wisata
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Package ID, read up to the first non-digit"
// @Param nama formData string false "Name"
// @Param tujuan formData string false "Destination"
// @Param harga formData string false "Price"
// @Param deskripsi formData string false "Description"
// @Param itinerary formData string false "Itinerary"
// @Param gambar formData file false "Primary image"
// @Param galeri_gambar formData file false "Gallery images (up to 10)"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/paket-wisata/update/{id} [put]
func (h *PaketWisataHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := leadingID(r.PathValue("id"))

	form, err := readForm(r)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Body tidak valid")
		return
	}
	if !ok {
		utils.WriteMessageResponse(w, http.StatusNotFound, "Data tidak ditemukan.")
		return
	}
	files := uploads.FromContext(r.Context())

	in := models.UpdatePaketWisataInput{
		Nama:         form["nama"],
		Tujuan:       form["tujuan"],
		Harga:        form["harga"],
		Deskripsi:    form["deskripsi"],
		Itinerary:    form["itinerary"],
		GambarURL:    files.First(uploads.FieldGambar.Name),
		GaleriGambar: files.All(uploads.FieldGaleri.Name),
	}

	err = h.store.Update(r.Context(), id, in)
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteMessageResponse(w, http.StatusNotFound, "Data tidak ditemukan.")
		return
	}
	if err != nil {
		logStorageError(r, "update", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Gagal memperbarui data")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Data berhasil diperbarui!")
}

// Delete handles DELETE /api/paket-wisata/hapus/{id}
// @Summary Delete a tour package
// @Description Uploaded files referenced by the row stay on disk.
// @Tags paket-wisata
// @Produce json
// @Param id path string true "Package ID, read up to the first non-digit"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.MessageResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/paket-wisata/hapus/{id} [delete]
func (h *PaketWisataHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := leadingID(r.PathValue("id"))
	if !ok {
		utils.WriteMessageResponse(w, http.StatusNotFound, "Data tidak ditemukan.")
		return
	}

	err := h.store.Delete(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		utils.WriteMessageResponse(w, http.StatusNotFound, "Data tidak ditemukan.")
		return
	}
	if err != nil {
		logStorageError(r, "delete", err)
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Gagal menghapus data")
		return
	}
	utils.WriteMessageResponse(w, http.StatusOK, "Data berhasil dihapus!")
}

var leadingDigits = regexp.MustCompile(`^\s*([+-]?\d+)`)

// leadingID reads the integer prefix of a path id, so "012" and "12abc"
// both resolve to 12. ok is false when there is no usable prefix.
func leadingID(raw string) (id int64, ok bool) {
	m := leadingDigits.FindStringSubmatch(raw)
	if m == nil {
		return 0, false
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	return id, err == nil
}

// readForm collects the scalar fields of a create/update body. A field the
// client did not send maps to nil.
func readForm(r *http.Request) (map[string]*string, error) {
	fields := map[string]*string{}

	switch {
	case uploads.IsMultipart(r):
		// parsed by uploads.Middleware; without it there are no fields
		if r.MultipartForm == nil {
			break
		}
		for k, v := range r.MultipartForm.Value {
			if len(v) > 0 {
				s := v[0]
				fields[k] = &s
			}
		}

	case strings.HasPrefix(r.Header.Get("Content-Type"), "application/json"):
		dec := json.NewDecoder(r.Body)
		dec.UseNumber()
		var body map[string]any
		if err := dec.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
		for k, v := range body {
			fields[k] = jsonScalar(v)
		}

	default:
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		for k, v := range r.PostForm {
			if len(v) > 0 {
				s := v[0]
				fields[k] = &s
			}
		}
	}
	return fields, nil
}

// jsonScalar keeps numbers in their literal form; null stays nil
func jsonScalar(v any) *string {
	var s string
	switch t := v.(type) {
	case nil:
		return nil
	case string:
		s = t
	case json.Number:
		s = t.String()
	case bool:
		s = strconv.FormatBool(t)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			s = fmt.Sprint(t)
		} else {
			s = string(b)
		}
	}
	return &s
}

func logStorageError(r *http.Request, op string, err error) {
	id := middleware.RequestIDFromContext(r.Context())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		log.Printf("[DB] id=%s %s failed: sqlstate=%s %v", id, op, pgErr.Code, err)
		return
	}
	log.Printf("[DB] id=%s %s failed: %v", id, op, err)
}
