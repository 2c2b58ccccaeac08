package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrNotFound — запрошенного файла нет на диске
var ErrNotFound = errors.New("file not found")

// Storage хранит загруженные изображения на локальном диске и строит
// публичные ссылки на них от настроенного базового адреса.
type Storage struct {
	dir     string
	baseURL string
}

func New(dir, baseURL string) (*Storage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir: %w", err)
	}
	logrus.Infof("upload dir %s ready", dir)

	return &Storage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save записывает содержимое src в каталог загрузок и возвращает имя файла.
// Имя строится из имени поля формы и метки времени, чтобы избежать коллизий.
func (s *Storage) Save(field, originalFilename string, src io.Reader) (string, error) {
	filename := fmt.Sprintf("%s-%d%s", field, time.Now().UnixMilli(), filepath.Ext(originalFilename))

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	logrus.Infof("file %s stored", filename)
	return filename, nil
}

// FileURL возвращает публичную ссылку на загруженное изображение
func (s *Storage) FileURL(filename string) string {
	return fmt.Sprintf("%s/products/uploads/%s", s.baseURL, filename)
}

// Resolve возвращает абсолютный путь к файлу для повторной отдачи.
// ErrNotFound, если файла нет на диске.
func (s *Storage) Resolve(filename string) (string, error) {
	// только имя файла, без элементов пути
	path := filepath.Join(s.dir, filepath.Base(filename))

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(abs); err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", err
	}
	return abs, nil
}
