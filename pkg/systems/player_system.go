package systems

import (
	"math"

	"github.com/charmbracelet/log"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/entities"
	"github.com/decker502/farmsim/pkg/utils"
)

// PlayerInput 一帧的玩家输入
// 方向键为按住状态，其余为本帧刚按下
type PlayerInput struct {
	Up, Down, Left, Right bool

	UseTool    bool
	SwitchTool bool
	UseSeed    bool
	SwitchSeed bool
	Interact   bool
}

// PlayerActions 玩家动作的接收方（由关卡实现）
type PlayerActions interface {
	UseTool(tool string, x, y float64)
	UseSeed(x, y float64)
	Interact()
}

// PlayerSystem 玩家移动、碰撞和工具使用
//
// 使用工具/种子时先启动冷却计时，计时结束的那一帧才真正作用到
// 目标点（工具挥动动作播放完毕）。
type PlayerSystem struct {
	entityManager *ecs.EntityManager
	images        entities.ImageSource
	cfg           config.PlayerConfig
	actions       PlayerActions
	logger        *log.Logger
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(em *ecs.EntityManager, images entities.ImageSource, cfg config.PlayerConfig, actions PlayerActions) *PlayerSystem {
	if images == nil {
		images = entities.NoImages{}
	}
	return &PlayerSystem{
		entityManager: em,
		images:        images,
		cfg:           cfg,
		actions:       actions,
		logger:        log.WithPrefix("PlayerSystem"),
	}
}

// Player 返回玩家实体
func (s *PlayerSystem) Player() (ecs.EntityID, bool) {
	ids := ecs.GetEntitiesWith1[*components.PlayerComponent](s.entityManager)
	if len(ids) == 0 {
		return 0, false
	}
	return ids[0], true
}

func (s *PlayerSystem) player() *components.PlayerComponent {
	id, ok := s.Player()
	if !ok {
		return nil
	}
	p, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)
	return p
}

// CurrentTool 当前选择的工具
func (s *PlayerSystem) CurrentTool() string {
	p := s.player()
	if p == nil || len(s.cfg.Tools) == 0 {
		return ""
	}
	return s.cfg.Tools[p.ToolIndex]
}

// CurrentSeed 当前选择的种子
func (s *PlayerSystem) CurrentSeed() string {
	p := s.player()
	if p == nil || len(s.cfg.Seeds) == 0 {
		return ""
	}
	return s.cfg.Seeds[p.SeedIndex]
}

// Target 工具作用点：玩家中心 + 朝向偏移
func (s *PlayerSystem) Target() (x, y float64) {
	p := s.player()
	if p == nil {
		return 0, 0
	}
	off := s.cfg.ToolOffsets[string(p.Facing)]
	return p.PosX + off.X, p.PosY + off.Y
}

// Hitbox 玩家碰撞盒
func (s *PlayerSystem) Hitbox() utils.Rect {
	if p := s.player(); p != nil {
		return p.Hitbox
	}
	return utils.Rect{}
}

// Sleep 玩家上床睡觉，睡觉期间不接受输入
func (s *PlayerSystem) Sleep() {
	if p := s.player(); p != nil {
		p.Sleeping = true
		p.Facing = components.FacingLeft
		p.DirX, p.DirY = 0, 0
	}
}

// Wake 玩家醒来
func (s *PlayerSystem) Wake() {
	if p := s.player(); p != nil {
		p.Sleeping = false
	}
}

// Sleeping 玩家是否在睡觉
func (s *PlayerSystem) Sleeping() bool {
	p := s.player()
	return p != nil && p.Sleeping
}

// Update 处理输入、计时器和移动
func (s *PlayerSystem) Update(deltaTime float64, in PlayerInput) {
	id, ok := s.Player()
	if !ok {
		return
	}
	p, _ := ecs.GetComponent[*components.PlayerComponent](s.entityManager, id)

	s.updateTimers(p, deltaTime)

	if !p.Busy() && !p.Sleeping {
		s.handleInput(p, in)
	} else {
		p.DirX, p.DirY = 0, 0
	}

	s.move(id, p, deltaTime)

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok {
		if img := s.images.Image(entities.PlayerImageKey(p.Facing)); img != nil {
			sprite.Image = img
		}
	}
}

func (s *PlayerSystem) updateTimers(p *components.PlayerComponent, deltaTime float64) {
	if p.ToolUse.Update(deltaTime) && s.actions != nil {
		x, y := s.Target()
		s.actions.UseTool(p.PendingTool, x, y)
	}
	if p.SeedUse.Update(deltaTime) && s.actions != nil {
		x, y := s.Target()
		s.actions.UseSeed(x, y)
	}
	p.ToolSwitch.Update(deltaTime)
	p.SeedSwitch.Update(deltaTime)
}

func (s *PlayerSystem) handleInput(p *components.PlayerComponent, in PlayerInput) {
	p.DirX, p.DirY = 0, 0
	switch {
	case in.Up:
		p.DirY = -1
		p.Facing = components.FacingUp
	case in.Down:
		p.DirY = 1
		p.Facing = components.FacingDown
	}
	switch {
	case in.Left:
		p.DirX = -1
		p.Facing = components.FacingLeft
	case in.Right:
		p.DirX = 1
		p.Facing = components.FacingRight
	}

	if in.UseTool && len(s.cfg.Tools) > 0 {
		p.PendingTool = s.cfg.Tools[p.ToolIndex]
		p.ToolUse.Activate()
		p.DirX, p.DirY = 0, 0
	}
	if in.SwitchTool && !p.ToolSwitch.Active && len(s.cfg.Tools) > 0 {
		p.ToolSwitch.Activate()
		p.ToolIndex = (p.ToolIndex + 1) % len(s.cfg.Tools)
		s.logger.Debug("tool switched", "tool", s.cfg.Tools[p.ToolIndex])
	}
	if in.UseSeed && len(s.cfg.Seeds) > 0 {
		p.PendingSeed = s.cfg.Seeds[p.SeedIndex]
		p.SeedUse.Activate()
		p.DirX, p.DirY = 0, 0
	}
	if in.SwitchSeed && !p.SeedSwitch.Active && len(s.cfg.Seeds) > 0 {
		p.SeedSwitch.Activate()
		p.SeedIndex = (p.SeedIndex + 1) % len(s.cfg.Seeds)
		s.logger.Debug("seed switched", "seed", s.cfg.Seeds[p.SeedIndex])
	}
	if in.Interact && s.actions != nil {
		s.actions.Interact()
	}
}

// move 沿两个轴分别移动并解决碰撞
func (s *PlayerSystem) move(id ecs.EntityID, p *components.PlayerComponent, deltaTime float64) {
	dx, dy := p.DirX, p.DirY
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l, dy/l
	}

	if dx != 0 {
		p.PosX += dx * p.Speed * deltaTime
		p.Hitbox.X = math.Round(p.PosX) - p.Hitbox.Width/2
		s.collide(p, dx, 0)
	}
	if dy != 0 {
		p.PosY += dy * p.Speed * deltaTime
		p.Hitbox.Y = math.Round(p.PosY) - p.Hitbox.Height/2
		s.collide(p, 0, dy)
	}

	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, id); ok {
		pos.X = p.PosX - pos.Width/2
		pos.Y = p.PosY - pos.Height/2
	}
}

// collide 将碰撞盒推出与之相交的障碍物
func (s *PlayerSystem) collide(p *components.PlayerComponent, dx, dy float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.CollisionComponent](s.entityManager) {
		col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
		if !col.Hitbox.Intersects(p.Hitbox) {
			continue
		}
		switch {
		case dx > 0:
			p.Hitbox.X = col.Hitbox.X - p.Hitbox.Width
		case dx < 0:
			p.Hitbox.X = col.Hitbox.Right()
		case dy > 0:
			p.Hitbox.Y = col.Hitbox.Y - p.Hitbox.Height
		case dy < 0:
			p.Hitbox.Y = col.Hitbox.Bottom()
		}
		if dx != 0 {
			p.PosX = p.Hitbox.X + p.Hitbox.Width/2
		} else {
			p.PosY = p.Hitbox.Y + p.Hitbox.Height/2
		}
	}
}
