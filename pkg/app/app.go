// Package app 提供 ebiten 窗口版的应用包装器
//
// 该包把资源、配置、地图、关卡和场景组装起来，实现 ebiten.Game。
// 命令行入口通过 NewApp() 创建应用后交给 ebiten.RunGame。
package app

import (
	"fmt"
	"image/color"
	"io/fs"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"

	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/game"
	"github.com/decker502/farmsim/pkg/level"
	"github.com/decker502/farmsim/pkg/mapdata"
	"github.com/decker502/farmsim/pkg/scenes"
)

// AppName gdata 存储目录名
const AppName = "farmsim"

// SceneFarm 农场场景名
const SceneFarm = "farm"

// Config 定义应用启动配置
type Config struct {
	// Data 提供 data/ 和 assets/ 的文件系统
	Data fs.FS
	// Override 覆盖配置的目录，可为 nil
	Override fs.FS
	// MapPath 地图文件路径（在 Override 或 Data 中查找）
	MapPath string
	// Map 已解析的地图，非 nil 时忽略 MapPath
	Map *mapdata.Map
	// Seed 随机种子
	Seed int64
}

// App 是游戏应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settings                 *game.SettingsManager
	cfg                      *config.Config
	logger                   *log.Logger
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化游戏应用
func NewApp(opts Config) (*App, error) {
	logger := log.WithPrefix("App")

	cfg, err := config.Load(opts.Data, opts.Override)
	if err != nil {
		return nil, fmt.Errorf("配置加载失败: %w", err)
	}
	m := opts.Map
	if m == nil {
		if m, err = LoadMap(opts.Data, opts.Override, opts.MapPath); err != nil {
			return nil, err
		}
	}

	resourceManager := game.NewResourceManager(opts.Data, int(m.TileSize), true)
	bounds := m.Bounds()
	resourceManager.SetWorldSize(int(bounds.Width), int(bounds.Height))

	// 显示设置存储不可用时降级为默认设置（不保存）
	var settings *game.SettingsManager
	if gdataManager, err := gdata.Open(gdata.Config{AppName: AppName}); err != nil {
		logger.Warn("settings storage unavailable", "err", err)
		settings = game.NewSettingsManager(nil)
	} else {
		settings = game.NewSettingsManager(gdataManager)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SetSceneFactory(func(name string) (game.Scene, error) {
		if name != SceneFarm {
			return nil, fmt.Errorf("unknown scene %q", name)
		}
		l := level.New(m, cfg, resourceManager, rand.New(rand.NewSource(opts.Seed)))
		return scenes.NewFarmScene(l, settings), nil
	})
	if err := sceneManager.Load(SceneFarm); err != nil {
		return nil, err
	}
	if n := resourceManager.MissingCount(); n > 0 {
		logger.Warn("some graphics are missing, using placeholders", "count", n)
	}

	return &App{
		sceneManager: sceneManager,
		settings:     settings,
		cfg:          cfg,
		logger:       logger,
	}, nil
}

// LoadMap 读取地图，优先从 override 中查找
func LoadMap(data, override fs.FS, path string) (*mapdata.Map, error) {
	if path == "" {
		path = config.MapPath
	}
	if override != nil {
		if m, err := mapdata.Load(override, path); err == nil {
			return m, nil
		}
	}
	m, err := mapdata.Load(data, path)
	if err != nil {
		return nil, fmt.Errorf("地图加载失败: %w", err)
	}
	return m, nil
}

// ApplyWindowSettings 根据显示设置配置窗口
// 必须在 ebiten.RunGame 之前调用
func (a *App) ApplyWindowSettings() {
	s := a.settings.GetSettings()
	w := int(float64(a.cfg.Screen.Width) * s.WindowScale)
	h := int(float64(a.cfg.Screen.Height) * s.WindowScale)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Farm")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(s.Fullscreen)
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			s := a.settings.GetSettings()
			ebiten.SetWindowSize(int(float64(a.cfg.Screen.Width)*s.WindowScale), int(float64(a.cfg.Screen.Height)*s.WindowScale))
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		fullscreen := !ebiten.IsFullscreen()
		ebiten.SetFullscreen(fullscreen)
		if !fullscreen {
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		}
		a.settings.SetFullscreen(fullscreen)
		if err := a.settings.Save(); err != nil {
			a.logger.Warn("failed to save settings", "err", err)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回游戏的逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.Width, a.cfg.Screen.Height
}

// SceneManager 返回场景管理器
func (a *App) SceneManager() *game.SceneManager {
	return a.sceneManager
}
