package game

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
)

var errNoSceneFactory = errors.New("scene factory not set")

// SceneFactory 场景工厂函数类型
// 按名称创建场景，避免 game 包依赖 scenes 包
type SceneFactory func(name string) (Scene, error)

// SceneManager manages the game's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
	sceneFactory SceneFactory
	logger       *log.Logger
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{logger: log.WithPrefix("SceneManager")}
}

// SetSceneFactory 设置场景工厂函数
func (sm *SceneManager) SetSceneFactory(factory SceneFactory) {
	sm.sceneFactory = factory
}

// SwitchTo changes the active scene to the provided scene.
func (sm *SceneManager) SwitchTo(scene Scene) {
	sm.currentScene = scene
}

// GetCurrentScene 返回当前活动的场景，没有时返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Load 通过工厂创建并切换到指定场景
// 创建失败时保持当前场景不变
func (sm *SceneManager) Load(name string) error {
	if sm.sceneFactory == nil {
		return errNoSceneFactory
	}
	scene, err := sm.sceneFactory(name)
	if err != nil {
		sm.logger.Error("failed to create scene", "scene", name, "err", err)
		return err
	}
	sm.SwitchTo(scene)
	sm.logger.Debug("switched scene", "scene", name)
	return nil
}

// Update updates the currently active scene.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
