package storage

import (
	"os"
	"path"
	"strings"

	"github.com/spf13/afero"

	"ai-ppt-api/internal/config"
)

// IndexFile 单页应用入口
const IndexFile = "index.html"

// Assets 前端构建产物（只读）
type Assets struct {
	fs afero.Fs
}

// NewAssets 以只读方式挂载前端构建目录
func NewAssets(cfg *config.Config) *Assets {
	base := afero.NewBasePathFs(afero.NewOsFs(), cfg.Frontend.BuildDir)
	return NewAssetsWithFs(afero.NewReadOnlyFs(base))
}

// NewAssetsWithFs 使用指定文件系统创建静态资源访问器
func NewAssetsWithFs(fs afero.Fs) *Assets {
	return &Assets{fs: fs}
}

// Resolve 将请求路径映射为存在的普通文件，找不到时回退到 index.html
func (a *Assets) Resolve(reqPath string) (afero.File, os.FileInfo, error) {
	name := strings.TrimPrefix(path.Clean("/"+reqPath), "/")
	if name != "" {
		if f, info, err := a.open(name); err == nil {
			return f, info, nil
		}
	}
	return a.open(IndexFile)
}

func (a *Assets) open(name string) (afero.File, os.FileInfo, error) {
	info, err := a.fs.Stat(name)
	if err != nil {
		return nil, nil, err
	}
	if info.IsDir() {
		return nil, nil, os.ErrNotExist
	}
	f, err := a.fs.Open(name)
	if err != nil {
		return nil, nil, err
	}
	return f, info, nil
}
