package uploads

import (
	"net/http"
	"path"
	"strings"

	"PAKET_WISATA_BACK-END/internal/dto"
	"PAKET_WISATA_BACK-END/internal/utils"
)

// Server serves previously uploaded files read-only
type Server struct {
	Prefix string
	Dir    string
}

// NewServer serves dir under the URL prefix (e.g. "/public/")
func NewServer(prefix, dir string) *Server {
	return &Server{Prefix: prefix, Dir: dir}
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		utils.WriteJSONResponse(w, http.StatusMethodNotAllowed, dto.ErrorResponse{Error: "Method not allowed"})
		return
	}
	// only regular files, no directory listings
	if !s.isFile(strings.TrimPrefix(r.URL.Path, s.Prefix)) {
		http.NotFound(w, r)
		return
	}

	w.Header().Add("Cache-Control", "public, max-age=31536000, immutable")
	http.StripPrefix(s.Prefix, http.FileServer(http.Dir(s.Dir))).ServeHTTP(w, r)
}

func (s *Server) isFile(name string) bool {
	f, err := http.Dir(s.Dir).Open(path.Clean("/" + name))
	if err != nil {
		return false
	}
	defer f.Close()
	info, err := f.Stat()
	return err == nil && !info.IsDir()
}
