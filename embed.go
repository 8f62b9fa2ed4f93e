// Package farmsim 嵌入默认的配置和地图
// 必须放在项目根目录（与 data/ 同级），
// 因为 //go:embed 指令只能嵌入当前包目录及其子目录的文件
package farmsim

import "embed"

// Data 内置的 data/ 目录（config.yaml、species.yaml、layers.yaml、map.yaml）
//
//go:embed data
var Data embed.FS
