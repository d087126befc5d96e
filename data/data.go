// Package data 嵌入游戏的默认配置
//
// 放在独立包里，桌面端 main 和移动端绑定都可以直接引用，
// 不需要在构建前复制文件。
package data

import "embed"

// FS 包含 data/ 目录下的所有 YAML 文件，根目录即 "data/"
//
//go:embed *.yaml
var FS embed.FS
