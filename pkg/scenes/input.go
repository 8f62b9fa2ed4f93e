package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/farmsim/pkg/systems"
)

// keyState 按键查询函数
type keyState func(ebiten.Key) bool

// 键位
var (
	keysUp         = []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}
	keysDown       = []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}
	keysLeft       = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	keysRight      = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	keyUseTool     = ebiten.KeySpace
	keySwitchTool  = ebiten.KeyQ
	keyUseSeed     = ebiten.KeyControlLeft
	keySwitchSeed  = ebiten.KeyE
	keyInteract    = ebiten.KeyEnter
	keyToggleGrid  = ebiten.KeyG
	keyToggleHints = ebiten.KeyTab
	keyCloseMenu   = ebiten.KeyEscape
)

func anyOf(state keyState, keys []ebiten.Key) bool {
	for _, k := range keys {
		if state(k) {
			return true
		}
	}
	return false
}

// readInput 把键盘状态转换为玩家输入
// 方向键按住生效，动作键只在按下的那一帧生效
func readInput(pressed, justPressed keyState) systems.PlayerInput {
	return systems.PlayerInput{
		Up:         anyOf(pressed, keysUp),
		Down:       anyOf(pressed, keysDown),
		Left:       anyOf(pressed, keysLeft),
		Right:      anyOf(pressed, keysRight),
		UseTool:    justPressed(keyUseTool),
		SwitchTool: justPressed(keySwitchTool),
		UseSeed:    justPressed(keyUseSeed),
		SwitchSeed: justPressed(keySwitchSeed),
		Interact:   justPressed(keyInteract),
	}
}

// pollInput 读取当前帧的键盘输入
func pollInput() systems.PlayerInput {
	return readInput(ebiten.IsKeyPressed, inpututil.IsKeyJustPressed)
}
