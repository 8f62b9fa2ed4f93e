// Package embedded 提供内置资源的统一访问接口
//
// 由于 Go embed 指令只能嵌入当前包目录及其子目录的文件，
// 数据文件的 embed.FS 声明在项目根目录（embed.go）。
// 贴图体积较大，不嵌入二进制，通常以磁盘目录的形式传入。
// 本包按路径前缀把请求分发到对应的文件系统。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
)

var (
	assetsFS    fs.FS
	dataFS      fs.FS
	initialized bool
)

var errNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 设置贴图和数据文件系统
// 必须在 main() 开始时、任何资源加载之前调用；assets 可以为 nil
func Init(assets, data fs.FS) {
	assetsFS = assets
	dataFS = data
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 标准化路径：正斜杠，去掉 "./" 前缀
func normalize(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(path), "./")
}

// route 根据路径前缀选择文件系统
// 路径必须以 "assets/" 或 "data/" 开头
func route(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", errNotInitialized
	}
	path = normalize(path)

	var target fs.FS
	switch {
	case strings.HasPrefix(path, "assets/"):
		target = assetsFS
	case strings.HasPrefix(path, "data/"):
		target = dataFS
	default:
		return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
	}
	if target == nil {
		return nil, "", &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return target, path, nil
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(path string) (fs.File, error) {
	target, path, err := route(path)
	if err != nil {
		return nil, err
	}
	return target.Open(path)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
func ReadFile(path string) ([]byte, error) {
	target, path, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(target, path)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// Glob 匹配文件
func Glob(pattern string) ([]string, error) {
	target, pattern, err := route(pattern)
	if err != nil {
		return nil, err
	}
	return fs.Glob(target, pattern)
}

// ReadDir 读取目录内容
func ReadDir(path string) ([]fs.DirEntry, error) {
	target, path, err := route(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadDir(target, path)
}

// Stat 获取文件信息
func Stat(path string) (fs.FileInfo, error) {
	file, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return file.Stat()
}

// routedFS 把 Open/ReadFile 转发给 embedded 包的 fs.FS 实现
type routedFS struct{}

func (routedFS) Open(name string) (fs.File, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	f, err := Open(name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		// 前缀错误或未初始化都视为文件不存在，便于调用方回落
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return f, err
}

// FS 返回一个按前缀分发的 fs.FS，可直接交给 config.Load、mapdata.Load
// 和 ResourceManager 使用
func FS() fs.FS {
	return routedFS{}
}
