package uploads

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/jhoicas/catalogo-api/pkg/config"
)

// Store almacenamiento local de imágenes subidas. Los archivos quedan bajo
// <dir>/<recurso>/ y se exponen con URL absoluta <domain>/<dir>/<recurso>/<archivo>,
// que es lo que se persiste en la columna image.
type Store struct {
	dir    string
	domain string
}

// NewStore construye el almacenamiento con el directorio base y el dominio público.
func NewStore(cfg config.UploadsConfig) *Store {
	return &Store{
		dir:    cfg.Dir,
		domain: strings.TrimSuffix(cfg.Domain, "/"),
	}
}

// Save guarda el archivo subido bajo el subdirectorio del recurso (creándolo si
// no existe) con un nombre único, y devuelve la URL pública absoluta.
func (s *Store) Save(file *multipart.FileHeader, resource string) (string, error) {
	dir := filepath.Join(s.dir, resource)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("uploads: crear directorio %s: %w", dir, err)
	}

	name := uuid.New().String() + strings.ToLower(filepath.Ext(file.Filename))
	dst := filepath.Join(dir, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("uploads: abrir archivo subido: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("uploads: crear %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("uploads: escribir %s: %w", dst, err)
	}

	return s.domain + "/" + filepath.ToSlash(dst), nil
}

// Delete borra un archivo por su URL pública o su ruta relativa. Un archivo
// inexistente o una ruta vacía no son error: el objetivo es que no quede el
// archivo, no reportar que ya no estaba.
func (s *Store) Delete(pathOrURL string) error {
	if pathOrURL == "" {
		return nil
	}

	clean := pathOrURL
	if idx := strings.Index(clean, s.domain); idx != -1 {
		clean = clean[idx+len(s.domain):]
	}
	clean = strings.TrimPrefix(clean, "/")
	if clean == "" {
		return nil
	}

	if err := os.Remove(filepath.FromSlash(clean)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("uploads: borrar %s: %w", clean, err)
	}
	return nil
}
