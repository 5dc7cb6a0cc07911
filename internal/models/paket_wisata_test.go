package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGaleri_NilIsEmptyArray(t *testing.T) {
	s, err := EncodeGaleri(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", s)
}

func TestEncodeGaleri_KeepsOrder(t *testing.T) {
	s, err := EncodeGaleri([]string{"3.jpg", "1.jpg", "2.jpg"})
	require.NoError(t, err)
	assert.Equal(t, `["3.jpg","1.jpg","2.jpg"]`, s)
}

func TestDecodeGaleri(t *testing.T) {
	files, err := DecodeGaleri("")
	require.NoError(t, err)
	assert.Empty(t, files)

	files, err = DecodeGaleri(`["a.png"]`)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.png"}, files)

	_, err = DecodeGaleri("not json")
	assert.Error(t, err)
}

func TestPaketWisata_JSONNullImage(t *testing.T) {
	b, err := json.Marshal(PaketWisata{ID: 1, Nama: "Bali Trip", GaleriGambar: "[]"})
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Contains(t, out, "gambar_url")
	assert.Nil(t, out["gambar_url"])
	assert.Equal(t, "[]", out["galeri_gambar"])
}
