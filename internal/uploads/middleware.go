package uploads

import (
	"context"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"

	"PAKET_WISATA_BACK-END/internal/dto"
	"PAKET_WISATA_BACK-END/internal/middleware"
	"PAKET_WISATA_BACK-END/internal/utils"
)

// Field declares a file field accepted by the middleware
type Field struct {
	Name     string
	MaxCount int
}

// Form file fields of the catalog routes
var (
	FieldGambar = Field{Name: "gambar", MaxCount: 1}
	FieldGaleri = Field{Name: "galeri_gambar", MaxCount: 10}
)

// Files maps a field name to the names the store generated for it
type Files map[string][]string

// First returns the first saved name of field, or nil when none was uploaded
func (f Files) First(field string) *string {
	if names := f[field]; len(names) > 0 {
		name := names[0]
		return &name
	}
	return nil
}

// All returns every saved name of field, or nil when none was uploaded
func (f Files) All(field string) []string {
	if names := f[field]; len(names) > 0 {
		return names
	}
	return nil
}

// LimitError reports a file field that is not declared or carries too many files
type LimitError struct {
	Field string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("unexpected file field %q", e.Field)
}

type ctxKey struct{}

// FromContext returns the files saved for the current request
func FromContext(ctx context.Context) Files {
	if f, ok := ctx.Value(ctxKey{}).(Files); ok {
		return f
	}
	return Files{}
}

// IsMultipart reports whether the request body is multipart/form-data
func IsMultipart(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "multipart/form-data"
}

// Middleware parses multipart bodies, writes the declared file fields to the
// store and exposes the generated names to the next handler via FromContext.
// Non-multipart requests pass through with no files.
func Middleware(store *Store, maxMemory int64, fields ...Field) func(http.Handler) http.Handler {
	limits := make(map[string]int, len(fields))
	order := make([]string, 0, len(fields))
	for _, f := range fields {
		limits[f.Name] = f.MaxCount
		order = append(order, f.Name)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			files := Files{}
			if IsMultipart(r) {
				if err := r.ParseMultipartForm(maxMemory); err != nil {
					utils.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{Error: "Form multipart tidak valid"})
					return
				}
				// r may be a copy, and the server only cleans up the original's form
				defer r.MultipartForm.RemoveAll()

				var err error
				files, err = extract(store, r, limits, order)
				var limitErr *LimitError
				if errors.As(err, &limitErr) {
					utils.WriteJSONResponse(w, http.StatusBadRequest, dto.ErrorResponse{
						Error:   "Unexpected field",
						Message: limitErr.Field,
					})
					return
				}
				if err != nil {
					log.Printf("[UPLOAD] id=%s %v", middleware.RequestIDFromContext(r.Context()), err)
					utils.WriteJSONResponse(w, http.StatusInternalServerError, dto.ErrorResponse{Error: "Gagal mengunggah file"})
					return
				}
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, files)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extract(store *Store, r *http.Request, limits map[string]int, order []string) (Files, error) {
	form := r.MultipartForm
	for name, headers := range form.File {
		max, ok := limits[name]
		if !ok || len(headers) > max {
			return nil, &LimitError{Field: name}
		}
	}

	files := Files{}
	for _, name := range order {
		headers := form.File[name]
		if len(headers) == 0 {
			continue
		}
		names, err := store.Save(headers)
		if err != nil {
			return nil, err
		}
		files[name] = names
	}
	return files, nil
}
