// Package storage 提供基于 afero 的生成文件存储与前端静态资源访问
package storage

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"ai-ppt-api/internal/config"
)

// Store 生成文件目录（平铺，无子目录）
type Store struct {
	fs afero.Fs
}

// NewStore 在磁盘目录上创建存储，目录不存在时自动创建
func NewStore(cfg *config.Config) (*Store, error) {
	dir := cfg.Generation.OutputDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir %s: %w", dir, err)
	}
	return NewStoreWithFs(afero.NewBasePathFs(afero.NewOsFs(), dir)), nil
}

// NewStoreWithFs 使用指定文件系统创建存储，fs 的根即输出目录
func NewStoreWithFs(fs afero.Fs) *Store {
	return &Store{fs: fs}
}

// Save 写入一个新文件
func (s *Store) Save(_ context.Context, name string, data []byte) error {
	if !IsBareName(name) {
		return fmt.Errorf("invalid file name %q", name)
	}
	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

// Open 打开已生成的文件，名称必须是不含路径的文件名
func (s *Store) Open(name string) (afero.File, os.FileInfo, error) {
	if !IsBareName(name) {
		return nil, nil, os.ErrNotExist
	}
	info, err := s.fs.Stat(name)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, os.ErrNotExist
	}
	f, err := s.fs.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, info, nil
}

// Writable 检查输出目录可写
func (s *Store) Writable() error {
	f, err := afero.TempFile(s.fs, ".", ".writable-")
	if err != nil {
		return err
	}
	name := f.Name()
	_ = f.Close()
	return s.fs.Remove(name)
}

// IsBareName 判断是否为不含目录成分的普通文件名
func IsBareName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return false
	}
	return path.Base(name) == name
}
