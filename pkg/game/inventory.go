package game

import (
	"errors"
	"fmt"
	"sort"

	"github.com/decker502/farmsim/pkg/config"
)

// 交易失败的原因
var (
	ErrNothingToSell  = errors.New("nothing to sell")
	ErrNotEnoughMoney = errors.New("not enough money")
)

// TradeKind 商店条目类型
type TradeKind int

const (
	TradeSell TradeKind = iota // 卖出物品
	TradeBuy                   // 买入种子
)

// ShopEntry 商店菜单中的一行
type ShopEntry struct {
	Name   string
	Kind   TradeKind
	Price  int
	Amount int // 当前持有数量
}

// Inventory 玩家背包：金钱、物品和种子
type Inventory struct {
	money  int
	items  map[string]int
	seeds  map[string]int
	prices config.PriceConfig
}

// NewInventory 按初始配置创建背包
func NewInventory(start config.InventoryConfig, prices config.PriceConfig) *Inventory {
	inv := &Inventory{
		money:  start.Money,
		items:  make(map[string]int, len(start.Items)),
		seeds:  make(map[string]int, len(start.Seeds)),
		prices: prices,
	}
	for name, n := range start.Items {
		inv.items[name] = n
	}
	for name, n := range start.Seeds {
		inv.seeds[name] = n
	}
	return inv
}

// Money 当前金钱
func (inv *Inventory) Money() int { return inv.money }

// Item 物品数量
func (inv *Inventory) Item(name string) int { return inv.items[name] }

// Seed 种子数量
func (inv *Inventory) Seed(name string) int { return inv.seeds[name] }

// Credit 获得一个物品（收获、苹果、木头）
func (inv *Inventory) Credit(item string) {
	inv.items[item]++
}

// UseSeed 消耗一颗种子，没有种子时返回 false
func (inv *Inventory) UseSeed(name string) bool {
	if inv.seeds[name] <= 0 {
		return false
	}
	inv.seeds[name]--
	return true
}

// Sell 卖出一个物品
func (inv *Inventory) Sell(item string) error {
	price, ok := inv.prices.Sale[item]
	if !ok {
		return unknownTrade("item", item, keys(inv.prices.Sale))
	}
	if inv.items[item] <= 0 {
		return fmt.Errorf("sell %s: %w", item, ErrNothingToSell)
	}
	inv.items[item]--
	inv.money += price
	return nil
}

// Buy 买入一颗种子
func (inv *Inventory) Buy(seed string) error {
	price, ok := inv.prices.Purchase[seed]
	if !ok {
		return unknownTrade("seed", seed, keys(inv.prices.Purchase))
	}
	if inv.money < price {
		return fmt.Errorf("buy %s: %w", seed, ErrNotEnoughMoney)
	}
	inv.money -= price
	inv.seeds[seed]++
	return nil
}

// Trade 执行商店条目对应的交易
func (inv *Inventory) Trade(e ShopEntry) error {
	if e.Kind == TradeSell {
		return inv.Sell(e.Name)
	}
	return inv.Buy(e.Name)
}

// ShopEntries 商店菜单：先列出可卖物品，再列出可买种子（各自按名称排序）
func (inv *Inventory) ShopEntries() []ShopEntry {
	var entries []ShopEntry
	for _, name := range keys(inv.prices.Sale) {
		entries = append(entries, ShopEntry{Name: name, Kind: TradeSell, Price: inv.prices.Sale[name], Amount: inv.items[name]})
	}
	for _, name := range keys(inv.prices.Purchase) {
		entries = append(entries, ShopEntry{Name: name, Kind: TradeBuy, Price: inv.prices.Purchase[name], Amount: inv.seeds[name]})
	}
	return entries
}

func keys(m map[string]int) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func unknownTrade(kind, name string, known []string) error {
	if hint := config.Suggest(name, known); hint != "" {
		return fmt.Errorf("unknown %s %q (did you mean %q?)", kind, name, hint)
	}
	return fmt.Errorf("unknown %s %q", kind, name)
}
