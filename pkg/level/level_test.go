package level

import (
	"fmt"
	"math/rand"
	"os"
	"testing"

	"github.com/decker502/farmsim/pkg/components"
	"github.com/decker502/farmsim/pkg/config"
	"github.com/decker502/farmsim/pkg/ecs"
	"github.com/decker502/farmsim/pkg/grid"
	"github.com/decker502/farmsim/pkg/mapdata"
	"github.com/decker502/farmsim/pkg/systems"
)

// 10x8 的测试地图，左上 6x6 可耕种，玩家出生在格子 (2,3) 的中心
const testMapTemplate = `
name: test
tileSize: 64
width: 10
height: 8
farmable:
  - {col: 0, row: 0, w: 6, h: 6}
objects:
  Player:
    - {name: Start, x: 224, y: 160}
%s
  Trees:
    - {name: Small, x: 560, y: 64, width: 64, height: 96}
`

// newTestLevel 创建测试关卡
// extraPlayerObjects 追加到 Player 分组（每行一个对象）
func newTestLevel(t *testing.T, rainChance float64, fruitChance int, extraPlayerObjects string) *Level {
	t.Helper()

	cfg, err := config.Load(os.DirFS("../.."), nil)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	cfg.Weather.RainChance = rainChance
	cfg.Trees.FruitChance = fruitChance
	// corn：8 帧，每天长 1
	cfg.Species["corn"] = &config.SpeciesConfig{Name: "corn", GrowSpeed: 1, Frames: 8, YOffset: -16, FrameWidth: 48, FrameHeight: 80}

	m, err := mapdata.Parse([]byte(fmt.Sprintf(testMapTemplate, extraPlayerObjects)))
	if err != nil {
		t.Fatalf("解析地图失败: %v", err)
	}
	return New(m, cfg, nil, rand.New(rand.NewSource(42)))
}

func cellCenter(row, col int) (x, y float64) {
	return grid.CellCenter(grid.Cell{Row: row, Col: col}, 64)
}

func plantAge(t *testing.T, l *Level, c grid.Cell) float64 {
	t.Helper()
	id, ok := l.Plants().PlantAt(c)
	if !ok {
		t.Fatalf("格子 %v 上没有作物", c)
	}
	plant, _ := ecs.GetComponent[*components.PlantComponent](l.EntityManager(), id)
	return plant.Age
}

// TestCornScenario 翻土、浇水、种玉米，十天后走过去收获
func TestCornScenario(t *testing.T) {
	l := newTestLevel(t, 0, 0, "")
	c := grid.Cell{Row: 2, Col: 3}
	x, y := cellCenter(2, 3)

	l.UseTool(ToolHoe, x, y)
	l.UseTool(ToolWater, x, y)
	l.UseSeed(x, y)

	if got := l.Inventory().Seed("corn"); got != 4 {
		t.Errorf("种子数量: got %d, want 4", got)
	}

	for day := 0; day < 10; day++ {
		l.UseTool(ToolWater, x, y)
		l.ResetDay()
	}
	if got := plantAge(t, l, c); got != 7 {
		t.Errorf("作物年龄: got %v, want 7", got)
	}

	// 玩家站在作物上，下一帧触发收获
	l.UseTool(ToolWater, x, y)
	before := l.Inventory().Item("corn")
	l.Update(1.0/60, systems.PlayerInput{})

	if got := l.Inventory().Item("corn"); got != before+1 {
		t.Errorf("玉米数量: got %d, want %d", got, before+1)
	}
	if got := l.Grid().TileAt(c).String(); got != "FXW" {
		t.Errorf("收获后的标签: got %q, want %q", got, "FXW")
	}
	if _, ok := l.Plants().PlantAt(c); ok {
		t.Error("收获后作物应被移除")
	}
	if got := l.Day(); got != 11 {
		t.Errorf("天数: got %d, want 11", got)
	}
}

// TestResetDayOrder 作物先生长再清除浇水
func TestResetDayOrder(t *testing.T) {
	l := newTestLevel(t, 0, 0, "")
	c := grid.Cell{Row: 1, Col: 1}
	x, y := cellCenter(1, 1)

	l.UseTool(ToolHoe, x, y)
	l.UseTool(ToolWater, x, y)
	l.UseSeed(x, y)
	l.ResetDay()

	if got := plantAge(t, l, c); got != 1 {
		t.Errorf("浇过水的作物年龄: got %v, want 1", got)
	}
	if got := len(l.Grid().Cells(grid.Watered)); got != 0 {
		t.Errorf("不下雨时新一天的浇水格子数: got %d, want 0", got)
	}
	if got := len(l.Soil().WaterTiles()); got != 0 {
		t.Errorf("水面贴图数: got %d, want 0", got)
	}

	// 没浇水的一天不生长
	l.ResetDay()
	if got := plantAge(t, l, c); got != 1 {
		t.Errorf("未浇水的作物年龄: got %v, want 1", got)
	}
}

// TestRainWatersEverything 下雨天所有翻过的土都被浇水，包括新翻的土
func TestRainWatersEverything(t *testing.T) {
	l := newTestLevel(t, 1, 0, "")
	if !l.Raining() {
		t.Fatal("rainChance=1 时应该下雨")
	}

	x, y := cellCenter(0, 0)
	l.UseTool(ToolHoe, x, y)
	if !l.Grid().HasTag(grid.Cell{Row: 0, Col: 0}, grid.Watered) {
		t.Error("下雨时翻土应自动浇水")
	}

	x, y = cellCenter(4, 4)
	l.UseTool(ToolHoe, x, y)
	l.ResetDay()

	tilled := l.Grid().Cells(grid.Tilled)
	watered := l.Grid().Cells(grid.Watered)
	if len(tilled) != 2 || len(watered) != len(tilled) {
		t.Errorf("下雨的新一天: tilled=%v watered=%v", tilled, watered)
	}

	// 下雨时每帧生成雨滴
	before := l.EntityManager().Count()
	l.Update(1.0/60, systems.PlayerInput{})
	if got := l.EntityManager().Count(); got <= before {
		t.Errorf("下雨时实体数应增加: got %d, before %d", got, before)
	}
}

// TestUseSeedKeepsSeedOnFailure 种植失败不消耗种子
func TestUseSeedKeepsSeedOnFailure(t *testing.T) {
	l := newTestLevel(t, 0, 0, "")
	x, y := cellCenter(3, 3)

	l.UseSeed(x, y)
	if got := l.Inventory().Seed("corn"); got != 5 {
		t.Errorf("未翻土时种子数量: got %d, want 5", got)
	}

	l.UseTool(ToolHoe, x, y)
	l.UseSeed(x, y)
	l.UseSeed(x, y)
	if got := l.Inventory().Seed("corn"); got != 4 {
		t.Errorf("重复种植时种子数量: got %d, want 4", got)
	}
}

// TestAxeFellsTree 砍五下得到木头，树变成树桩
func TestAxeFellsTree(t *testing.T) {
	l := newTestLevel(t, 0, 0, "")
	wood := l.Inventory().Item(ItemWood)

	for i := 0; i < 5; i++ {
		l.UseTool(ToolAxe, 590, 100)
		l.Update(0.25, systems.PlayerInput{})
	}

	if got := l.Inventory().Item(ItemWood); got != wood+1 {
		t.Errorf("木头数量: got %d, want %d", got, wood+1)
	}
	id := l.Trees().Trees()[0]
	tree, _ := ecs.GetComponent[*components.TreeComponent](l.EntityManager(), id)
	if tree.Alive {
		t.Error("砍五下后树应该倒下")
	}
}

// TestAxeDropsApple 结满果的树被砍一下掉一个苹果
func TestAxeDropsApple(t *testing.T) {
	l := newTestLevel(t, 0, 11, "")
	apples := l.Inventory().Item(ItemApple)

	l.UseTool(ToolAxe, 590, 100)

	if got := l.Inventory().Item(ItemApple); got != apples+1 {
		t.Errorf("苹果数量: got %d, want %d", got, apples+1)
	}
}

// TestShopPausesWorld 商店打开时玩家不能移动
func TestShopPausesWorld(t *testing.T) {
	l := newTestLevel(t, 0, 0, "    - {name: Trader, x: 200, y: 140, width: 64, height: 64}")

	l.Interact()
	if !l.ShopActive() {
		t.Fatal("与商人交互后商店应打开")
	}

	before := l.Player().Hitbox()
	l.Update(0.5, systems.PlayerInput{Right: true})
	if got := l.Player().Hitbox(); got != before {
		t.Errorf("商店打开时玩家位置: got %v, want %v", got, before)
	}

	l.ToggleShop()
	l.Update(0.5, systems.PlayerInput{Right: true})
	if got := l.Player().Hitbox(); got.X <= before.X {
		t.Errorf("关闭商店后玩家应向右移动: got %v, before %v", got.X, before.X)
	}
}

// TestSleepStartsNewDay 上床后黑屏时进入新的一天，过渡结束后醒来
func TestSleepStartsNewDay(t *testing.T) {
	l := newTestLevel(t, 0, 0, "    - {name: Bed, x: 200, y: 140, width: 64, height: 64}")

	l.Interact()
	if !l.Player().Sleeping() || !l.Transition().Active() {
		t.Fatal("上床后玩家应入睡并开始过渡")
	}

	l.Update(0.5, systems.PlayerInput{})
	if got := l.Day(); got != 2 {
		t.Errorf("黑屏后天数: got %d, want 2", got)
	}
	if !l.Player().Sleeping() {
		t.Error("过渡未结束时玩家应仍在睡觉")
	}

	l.Update(0.5, systems.PlayerInput{})
	if l.Player().Sleeping() || l.Transition().Active() {
		t.Error("过渡结束后玩家应醒来")
	}
}

// TestHarvestAt 只能收获成熟的作物
func TestHarvestAt(t *testing.T) {
	l := newTestLevel(t, 0, 0, "")
	c := grid.Cell{Row: 5, Col: 5}
	x, y := cellCenter(5, 5)

	if l.HarvestAt(c) {
		t.Error("空格子不能收获")
	}

	l.UseTool(ToolHoe, x, y)
	if !l.PlantSeed("tomato", x, y) {
		t.Fatal("种番茄失败")
	}
	if l.HarvestAt(c) {
		t.Error("未成熟的作物不能收获")
	}

	tomatoes := l.Inventory().Item("tomato")
	for day := 0; day < 6; day++ {
		l.UseTool(ToolWater, x, y)
		l.ResetDay()
	}
	if !l.HarvestAt(c) {
		t.Fatal("成熟的番茄应能收获")
	}
	if got := l.Inventory().Item("tomato"); got != tomatoes+1 {
		t.Errorf("番茄数量: got %d, want %d", got, tomatoes+1)
	}
	if l.Grid().HasTag(c, grid.Planted) {
		t.Error("收获后应移除 Planted 标签")
	}
}

// 格子尺寸 32 的小地图（配置里是 64）
const smallTileMap = `
name: small
tileSize: 32
width: 10
height: 8
farmable:
  - {col: 0, row: 0, w: 10, h: 8}
objects:
  Player:
    - {name: Start, x: 16, y: 16}
`

// TestMapTileSizeIsAuthoritative 地图与配置的格子尺寸不同时，以地图为准
func TestMapTileSizeIsAuthoritative(t *testing.T) {
	cfg, err := config.Load(os.DirFS("../.."), nil)
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	cfg.Weather.RainChance = 0
	if cfg.TileSize != 64 {
		t.Fatalf("配置格子尺寸: got %v, want 64", cfg.TileSize)
	}
	m, err := mapdata.Parse([]byte(smallTileMap))
	if err != nil {
		t.Fatalf("解析地图失败: %v", err)
	}
	l := New(m, cfg, nil, rand.New(rand.NewSource(1)))

	c := grid.Cell{Row: 7, Col: 9}
	x, y := grid.CellCenter(c, m.TileSize)
	l.UseTool(ToolHoe, x, y)
	if !l.Grid().HasTag(c, grid.Tilled) {
		t.Fatalf("格子 %v 应被翻土，已翻土: %v", c, l.Grid().Cells(grid.Tilled))
	}
	if !l.PlantSeed("corn", x, y) {
		t.Fatal("在翻过的土上种植失败")
	}

	id := l.Soil().SoilTiles()[0]
	pos, _ := ecs.GetComponent[*components.PositionComponent](l.EntityManager(), id)
	if want := grid.CellRect(c, 32); pos.Rect() != want {
		t.Errorf("土壤贴图位置: got %+v, want %+v", pos.Rect(), want)
	}
}

// TestResetDayFlushesDestroyedEntities 新的一天结束时不留下待删除的实体
func TestResetDayFlushesDestroyedEntities(t *testing.T) {
	l := newTestLevel(t, 1, 0, "")
	for col := 0; col < 4; col++ {
		x, y := cellCenter(1, col)
		l.UseTool(ToolHoe, x, y)
	}

	for day := 0; day < 3; day++ {
		l.ResetDay()
		if got := l.EntityManager().PendingCount(); got != 0 {
			t.Errorf("第 %d 天待删除实体数: got %d, want 0", l.Day(), got)
		}
	}
	if got := len(l.Soil().WaterTiles()); got != 4 {
		t.Errorf("下雨天的水渍数: got %d, want 4", got)
	}
}
