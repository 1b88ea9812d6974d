package storage

import (
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/spf13/afero"
)

// StorageService reads the source image and writes icons. The filesystem is
// injected so tests can run against afero.NewMemMapFs.
type StorageService struct {
	fs afero.Fs
}

func NewStorageService(fs afero.Fs) *StorageService {
	return &StorageService{fs: fs}
}

// NewOsStorageService is backed by the real disk.
func NewOsStorageService() *StorageService {
	return NewStorageService(afero.NewOsFs())
}

func (s *StorageService) Exists(path string) (bool, error) {
	ok, err := afero.Exists(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return ok, nil
}

// DirExists is false for regular files.
func (s *StorageService) DirExists(path string) (bool, error) {
	ok, err := afero.DirExists(s.fs, path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return ok, nil
}

// EnsureDir creates path and its parents. created reports whether the
// directory was missing before the call.
func (s *StorageService) EnsureDir(path string) (created bool, err error) {
	ok, err := s.DirExists(path)
	if err != nil {
		return false, err
	}
	if ok {
		return false, nil
	}
	if err := s.fs.MkdirAll(path, os.ModePerm); err != nil {
		return false, fmt.Errorf("failed to create directories: %w", err)
	}
	log.WithField("path", path).Debug("directory created")
	return true, nil
}

func (s *StorageService) ReadImageBuffer(path string) ([]byte, error) {
	buffer, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("error while reading image: %w", err)
	}
	return buffer, nil
}

// WriteImageBuffer truncates and overwrites any existing file.
func (s *StorageService) WriteImageBuffer(path string, data []byte) error {
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("error while writing image %s: %w", path, err)
	}
	return nil
}
