// Package storage guarda os arquivos enviados (planilhas de importação e
// anexos de faturas) em um sistema de arquivos abstraído pelo afero
package storage

import (
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/vfg2006/orders-backoffice-api/pkg/utils"
)

const fileNameSize = 40

type FileStorage interface {
	Exists(name string) (bool, error)
	Delete(name string) error
	Save(dir string, filename string, src io.Reader) (string, error)
	Open(name string) (afero.File, error)
	ListOlderThan(dir string, cutoff time.Time) ([]string, error)
}

type LocalStorage struct {
	fs afero.Fs
}

// NewLocalStorage restringe todas as operações ao diretório root
func NewLocalStorage(root string) (*LocalStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, errors.Wrapf(err, "failed to create storage root %s", root)
	}

	return NewStorage(afero.NewBasePathFs(afero.NewOsFs(), root)), nil
}

func NewStorage(fs afero.Fs) *LocalStorage {
	return &LocalStorage{fs: fs}
}

func (s *LocalStorage) Exists(name string) (bool, error) {
	return afero.Exists(s.fs, clean(name))
}

// Delete considera sucesso quando o arquivo já não existe
func (s *LocalStorage) Delete(name string) error {
	err := s.fs.Remove(clean(name))
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to delete %s", name)
	}
	return nil
}

// Save grava src em dir com um nome aleatório que preserva a extensão
// original em minúsculas. Retorna o caminho relativo gravado.
func (s *LocalStorage) Save(dir string, filename string, src io.Reader) (string, error) {
	id, err := utils.GenerateID(fileNameSize)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate file name")
	}

	dir = clean(dir)
	if err := s.fs.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %s", dir)
	}

	name := path.Join(dir, id+strings.ToLower(filepath.Ext(filename)))
	if err := afero.WriteReader(s.fs, name, src); err != nil {
		return "", errors.Wrapf(err, "failed to write %s", name)
	}

	return name, nil
}

func (s *LocalStorage) Open(name string) (afero.File, error) {
	f, err := s.fs.Open(clean(name))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", name)
	}
	return f, nil
}

// ListOlderThan lista os arquivos de dir modificados antes de cutoff.
// Um diretório inexistente resulta em lista vazia.
func (s *LocalStorage) ListOlderThan(dir string, cutoff time.Time) ([]string, error) {
	dir = clean(dir)

	entries, err := afero.ReadDir(s.fs, dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read directory %s", dir)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !entry.ModTime().Before(cutoff) {
			continue
		}
		names = append(names, path.Join(dir, entry.Name()))
	}
	sort.Strings(names)

	return names, nil
}

func clean(name string) string {
	return strings.TrimPrefix(path.Clean("/"+filepath.ToSlash(name)), "/")
}
