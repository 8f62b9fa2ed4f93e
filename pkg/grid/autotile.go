package grid

// Variant 翻土地块的拼接样式
type Variant int

const (
	// Isolated 四周均未翻土（默认样式）
	Isolated Variant = iota
	// Center 四周均已翻土
	Center

	// 端点：只有一个邻居
	EdgeRight  // 仅左侧
	EdgeLeft   // 仅右侧
	EdgeBottom // 仅上方
	EdgeTop    // 仅下方

	// 两个邻居：直通或拐角
	Horizontal        // 左+右
	Vertical          // 上+下
	CornerTopLeft     // 左+下
	CornerTopRight    // 右+下
	CornerBottomLeft  // 上+左
	CornerBottomRight // 上+右

	// T 形：三个邻居
	TeeRight  // 上+下+右
	TeeLeft   // 上+下+左
	TeeBottom // 上+左+右
	TeeTop    // 下+左+右
)

// variantAssets 样式到土壤贴图文件名（不含扩展名）的映射
var variantAssets = [...]string{
	Isolated:          "o",
	Center:            "x",
	EdgeRight:         "r",
	EdgeLeft:          "l",
	EdgeBottom:        "b",
	EdgeTop:           "t",
	Horizontal:        "lr",
	Vertical:          "tb",
	CornerTopLeft:     "tr",
	CornerTopRight:    "tl",
	CornerBottomLeft:  "br",
	CornerBottomRight: "bl",
	TeeRight:          "tbr",
	TeeLeft:           "tbl",
	TeeBottom:         "lrb",
	TeeTop:            "lrt",
}

var variantNames = [...]string{
	Isolated:          "isolated",
	Center:            "center",
	EdgeRight:         "edge-right",
	EdgeLeft:          "edge-left",
	EdgeBottom:        "edge-bottom",
	EdgeTop:           "edge-top",
	Horizontal:        "horizontal",
	Vertical:          "vertical",
	CornerTopLeft:     "corner-top-left",
	CornerTopRight:    "corner-top-right",
	CornerBottomLeft:  "corner-bottom-left",
	CornerBottomRight: "corner-bottom-right",
	TeeRight:          "tee-right",
	TeeLeft:           "tee-left",
	TeeBottom:         "tee-bottom",
	TeeTop:            "tee-top",
}

// AssetKey 返回样式对应的土壤贴图名
func (v Variant) AssetKey() string {
	if v < 0 || int(v) >= len(variantAssets) {
		return variantAssets[Isolated]
	}
	return variantAssets[v]
}

func (v Variant) String() string {
	if v < 0 || int(v) >= len(variantNames) {
		return "unknown"
	}
	return variantNames[v]
}

// AllVariants 返回全部样式（含 Isolated）
func AllVariants() []Variant {
	out := make([]Variant, 0, len(variantAssets))
	for v := range variantAssets {
		out = append(out, Variant(v))
	}
	return out
}

// Resolve 根据上、右、左、下四个邻居是否已翻土解析拼接样式
//
// 调用方先给出默认的 Isolated，再依次套用互斥的判定规则；
// 任意输入最多命中一条规则，因此结果与规则顺序无关。
func Resolve(t, r, l, b bool) Variant {
	v := Isolated
	v = basicDirections(v, t, r, l, b)
	v = crossDirections(v, t, r, l, b)
	v = tShapes(v, t, r, l, b)
	return v
}

// basicDirections 四邻居全满及单邻居端点
func basicDirections(v Variant, t, r, l, b bool) Variant {
	if t && r && l && b {
		v = Center
	}
	if l && !(t || r || b) {
		v = EdgeRight
	}
	if r && !(t || l || b) {
		v = EdgeLeft
	}
	if t && !(r || l || b) {
		v = EdgeBottom
	}
	if b && !(t || r || l) {
		v = EdgeTop
	}
	return v
}

// crossDirections 两个邻居：直通和拐角
func crossDirections(v Variant, t, r, l, b bool) Variant {
	if r && l && !(t || b) {
		v = Horizontal
	}
	if t && b && !(r || l) {
		v = Vertical
	}
	if l && b && !(t || r) {
		v = CornerTopLeft
	}
	if r && b && !(t || l) {
		v = CornerTopRight
	}
	if t && l && !(b || r) {
		v = CornerBottomLeft
	}
	if t && r && !(b || l) {
		v = CornerBottomRight
	}
	return v
}

// tShapes 三个邻居
func tShapes(v Variant, t, r, l, b bool) Variant {
	if t && b && r && !l {
		v = TeeRight
	}
	if t && b && l && !r {
		v = TeeLeft
	}
	if t && l && r && !b {
		v = TeeBottom
	}
	if b && l && r && !t {
		v = TeeTop
	}
	return v
}
