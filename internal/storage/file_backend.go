package storage

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

const fileSuffix = ".json"

// FileBackend keeps one file per key inside dir.
type FileBackend struct {
	dir string
}

func NewFileBackend(dir string) (*FileBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileBackend{dir: dir}, nil
}

func (f *FileBackend) path(key string) string {
	return filepath.Join(f.dir, key+fileSuffix)
}

func (f *FileBackend) Get(key string) ([]byte, error) {
	if err := validKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(f.path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrKeyNotFound
		}
		return nil, err
	}
	return data, nil
}

func (f *FileBackend) Put(key string, value []byte) error {
	if err := validKey(key); err != nil {
		return err
	}
	fileName := f.path(key)
	tmpFile := fileName + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	_, err = file.Write(value)
	if err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, fileName)
}

func (f *FileBackend) Delete(key string) error {
	if err := validKey(key); err != nil {
		return err
	}
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (f *FileBackend) Clear() error {
	keys, err := f.Keys()
	if err != nil {
		return err
	}
	for _, k := range keys {
		if err := f.Delete(k); err != nil {
			return err
		}
	}
	return nil
}

func (f *FileBackend) Keys() ([]string, error) {
	entries, err := os.ReadDir(f.dir)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, fileSuffix) {
			continue
		}
		keys = append(keys, strings.TrimSuffix(name, fileSuffix))
	}
	return keys, nil
}

func (f *FileBackend) Close() error {
	return nil
}
