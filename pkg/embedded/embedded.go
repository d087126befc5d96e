// Package embedded 提供嵌入资源的统一访问接口
//
// 配置文件通过 data 包的 //go:embed 打进二进制（桌面端和移动端共用），
// 其余包只通过这里读取，避免到处传递 embed.FS。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"
)

// dataPrefix 所有嵌入资源路径的统一前缀
const dataPrefix = "data/"

var (
	dataFS      fs.FS
	initialized bool
)

// ErrNotInitialized 在 Init() 之前访问资源时返回
var ErrNotInitialized = errors.New("embedded package not initialized, call Init() first")

// Init 初始化数据文件系统
// 必须在 main() 开始时、任何配置加载之前调用。
// 参数 data 的根目录对应路径前缀 "data/"。
func Init(data fs.FS) {
	dataFS = data
	initialized = data != nil
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// normalize 统一路径格式并去掉 "data/" 前缀
func normalize(p string) (string, error) {
	p = filepath.ToSlash(p)
	p = strings.TrimPrefix(p, "./")
	if !strings.HasPrefix(p, dataPrefix) {
		return "", fmt.Errorf("unknown resource path prefix: %s (must start with '%s')", p, dataPrefix)
	}
	return path.Clean(strings.TrimPrefix(p, dataPrefix)), nil
}

// ReadFile 读取嵌入文件内容，路径必须以 "data/" 开头
func ReadFile(p string) ([]byte, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	name, err := normalize(p)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(dataFS, name)
}

// Exists 检查文件是否存在
func Exists(p string) bool {
	if !initialized {
		return false
	}
	name, err := normalize(p)
	if err != nil {
		return false
	}
	_, err = fs.Stat(dataFS, name)
	return err == nil
}

// Glob 在嵌入文件系统中匹配文件，返回的路径带 "data/" 前缀
func Glob(pattern string) ([]string, error) {
	if !initialized {
		return nil, ErrNotInitialized
	}
	name, err := normalize(pattern)
	if err != nil {
		return nil, err
	}
	matches, err := fs.Glob(dataFS, name)
	if err != nil {
		return nil, err
	}
	for i, m := range matches {
		matches[i] = dataPrefix + m
	}
	return matches, nil
}
