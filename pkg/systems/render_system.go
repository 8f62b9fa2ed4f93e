package systems

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/grid"
)

// RenderSystem 场景合成：按图层和Y坐标排序后绘制所有世界实体
//
// 排序规则：
//   - 图层序号决定先后（由配置给出）
//   - 同一图层内中心Y较小的先绘制，较大的显示在前面
//   - 以上都相同时按实体ID
//
// 只读取位置和图层，不修改任何领域状态。
type RenderSystem struct {
	entityManager  *ecs.EntityManager
	layers         *config.LayerOrder
	viewportWidth  float64
	viewportHeight float64
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, layers *config.LayerOrder, viewportWidth, viewportHeight float64) *RenderSystem {
	if layers == nil {
		layers = config.DefaultLayerOrder()
	}
	return &RenderSystem{
		entityManager:  em,
		layers:         layers,
		viewportWidth:  viewportWidth,
		viewportHeight: viewportHeight,
	}
}

// Offset 计算摄像机偏移：锚点实体中心 - 视口一半
// 锚点没有位置时偏移为 0
func (s *RenderSystem) Offset(anchor ecs.EntityID) (x, y float64) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](s.entityManager, anchor)
	if !ok {
		return 0, 0
	}
	cx, cy := pos.Center()
	return cx - s.viewportWidth/2, cy - s.viewportHeight/2
}

// DrawOrder 返回绘制顺序
// 先按中心Y稳定排序，再按图层稳定排序，最后一次排序的键占主导
func (s *RenderSystem) DrawOrder() []ecs.EntityID {
	ids := ecs.GetEntitiesWith2[*components.PositionComponent, *components.DepthComponent](s.entityManager)

	centerY := make(map[ecs.EntityID]float64, len(ids))
	rank := make(map[ecs.EntityID]int, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
		depth, _ := ecs.GetComponent[*components.DepthComponent](s.entityManager, id)
		centerY[id] = pos.Rect().CenterY()
		rank[id] = s.layers.Rank(depth.Layer)
	}

	sort.SliceStable(ids, func(i, j int) bool {
		return centerY[ids[i]] < centerY[ids[j]]
	})
	sort.SliceStable(ids, func(i, j int) bool {
		return rank[ids[i]] < rank[ids[j]]
	})
	return ids
}

// Draw 以锚点实体为中心绘制所有实体
func (s *RenderSystem) Draw(screen *ebiten.Image, anchor ecs.EntityID) {
	ox, oy := s.Offset(anchor)

	for _, id := range s.DrawOrder() {
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok || sprite.Image == nil {
			continue
		}
		pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)

		var geoM ebiten.GeoM
		geoM.Translate(pos.X-ox, pos.Y-oy)

		if sprite.Flash {
			// 白色剪影：RGB 置 1，保留 alpha
			var cm colorm.ColorM
			cm.Scale(0, 0, 0, 1-sprite.Fade)
			cm.Translate(1, 1, 1, 0)
			colorm.DrawImage(screen, sprite.Image, cm, &colorm.DrawImageOptions{GeoM: geoM})
			continue
		}

		op := &ebiten.DrawImageOptions{GeoM: geoM}
		if sprite.Fade > 0 {
			op.ColorScale.ScaleAlpha(float32(1 - sprite.Fade))
		}
		screen.DrawImage(sprite.Image, op)
	}
}

var gridOverlayColor = color.RGBA{255, 255, 255, 60}

// DrawGridOverlay 绘制可耕种格子的轮廓（调试用）
func (s *RenderSystem) DrawGridOverlay(screen *ebiten.Image, anchor ecs.EntityID, g *grid.Grid, tileSize float64) {
	ox, oy := s.Offset(anchor)
	for _, c := range g.Cells(grid.Farmable) {
		x, y := grid.CellOrigin(c, tileSize)
		vector.StrokeRect(screen, float32(x-ox), float32(y-oy), float32(tileSize), float32(tileSize), 1, gridOverlayColor, false)
	}
}
