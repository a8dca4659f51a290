package uploads_test

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalogo-api/internal/infrastructure/uploads"
	"github.com/jhoicas/catalogo-api/pkg/config"
)

const testDomain = "https://api.test"

func newTestStore(t *testing.T) *uploads.Store {
	t.Helper()
	// t.Chdir requiere Go 1.24; equivalente manual para toolchains anteriores.
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(prev) })
	return uploads.NewStore(config.UploadsConfig{Dir: "uploads", Domain: testDomain})
}

// fileHeader construye un *multipart.FileHeader real a partir de un form en memoria.
func fileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	files := form.File["image"]
	require.Len(t, files, 1)
	return files[0]
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	var files []string
	_ = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	return files
}

func TestSave_GuardaConNombreUnicoYDevuelveURL(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save(fileHeader(t, "Foto.PNG", "png-bytes"), "categories")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, testDomain+"/uploads/categories/"),
		"la URL debe apuntar al dominio público y al subdirectorio del recurso")
	assert.True(t, strings.HasSuffix(url, ".png"), "la extensión se normaliza a minúsculas")

	files := listFiles(t, "uploads")
	require.Len(t, files, 1)
	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestSave_DosArchivosMismoNombre_NoColisionan(t *testing.T) {
	store := newTestStore(t)

	url1, err := store.Save(fileHeader(t, "img.jpg", "uno"), "products")
	require.NoError(t, err)
	url2, err := store.Save(fileHeader(t, "img.jpg", "dos"), "products")
	require.NoError(t, err)

	assert.NotEqual(t, url1, url2)
	assert.Len(t, listFiles(t, "uploads"), 2)
}

func TestDelete_PorURLPublica(t *testing.T) {
	store := newTestStore(t)

	url, err := store.Save(fileHeader(t, "img.jpg", "bytes"), "categories")
	require.NoError(t, err)
	require.Len(t, listFiles(t, "uploads"), 1)

	require.NoError(t, store.Delete(url))
	assert.Empty(t, listFiles(t, "uploads"), "tras el borrado no debe quedar archivo")
}

func TestDelete_ArchivoInexistente_NoEsError(t *testing.T) {
	store := newTestStore(t)

	assert.NoError(t, store.Delete(testDomain+"/uploads/categories/no-existe.png"))
	assert.NoError(t, store.Delete(""))
}

// Flujo de reemplazo: guardar nueva, borrar anterior. Debe quedar exactamente
// un archivo en disco.
func TestReemplazo_DejaUnSoloArchivo(t *testing.T) {
	store := newTestStore(t)

	vieja, err := store.Save(fileHeader(t, "v1.png", "v1"), "categories")
	require.NoError(t, err)
	_, err = store.Save(fileHeader(t, "v2.png", "v2"), "categories")
	require.NoError(t, err)

	require.NoError(t, store.Delete(vieja))
	assert.Len(t, listFiles(t, "uploads"), 1)
}
