package main

import (
	"fmt"
	"io/fs"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/decker502/farmsim/pkg/app"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/embedded"
	"github.com/decker502/farmsim/pkg/level"
	"github.com/decker502/farmsim/pkg/mapdata"
)

// seed 返回本次运行的随机种子
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// overrideFS 返回 --config 指定的覆盖目录，未指定时为 nil
func overrideFS() fs.FS {
	if flagConfig == "" {
		return nil
	}
	return os.DirFS(flagConfig)
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(embedded.FS(), overrideFS())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// loadMap 读取 --map 指定的磁盘文件，否则使用配置目录或内置地图
func loadMap() (*mapdata.Map, error) {
	if flagMap != "" {
		return mapdata.Load(os.DirFS(filepath.Dir(flagMap)), filepath.Base(flagMap))
	}
	return app.LoadMap(embedded.FS(), overrideFS(), config.MapPath)
}

// newHeadlessLevel 创建不加载贴图的关卡
func newHeadlessLevel() (*level.Level, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	m, err := loadMap()
	if err != nil {
		return nil, err
	}
	return level.New(m, cfg, nil, rand.New(rand.NewSource(seed()))), nil
}
