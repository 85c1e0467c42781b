package mahjong

import (
	"strconv"
	"strings"
)

type Tile int32

const (
	FlagNormal = 1
	FlagRed    = 2 // 赤宝牌
)

var (
	TileNull  Tile = -1
	TileInf   Tile = MakeTile(ColorEnd, 0)
	TileDong  Tile = MakeTile(ColorWind, 0)   // 东
	TileNan   Tile = MakeTile(ColorWind, 1)   // 南
	TileXi    Tile = MakeTile(ColorWind, 2)   // 西
	TileBei   Tile = MakeTile(ColorWind, 3)   // 北
	TileBai   Tile = MakeTile(ColorDragon, 0) // 白
	TileFa    Tile = MakeTile(ColorDragon, 1) // 发
	TileZhong Tile = MakeTile(ColorDragon, 2) // 中
)

func MakeTile(color EColor, point int) Tile {
	return Tile(int(color)<<8 | (point << 4) | FlagNormal)
}

// MakeRedTile 赤五（仅数牌5有效）
func MakeRedTile(color EColor) Tile {
	return Tile(int(color)<<8 | (4 << 4) | FlagRed)
}

func (t Tile) Color() EColor {
	return EColor((t >> 8) & 0x0F)
}

func (t Tile) Point() int {
	return int((t >> 4) & 0x0F)
}

func (t Tile) Info() (EColor, int) {
	return t.Color(), t.Point()
}

func (t Tile) Flag() int {
	return int(t & 0x0F)
}

func (t Tile) IsValid() bool {
	return t > 0 && t < TileInf
}

func (t Tile) IsRed() bool {
	return t.Flag() == FlagRed
}

// Kind 去掉赤牌标记后的同种牌，比较牌面时使用
func (t Tile) Kind() Tile {
	if !t.IsValid() {
		return t
	}
	return MakeTile(t.Color(), t.Point())
}

func (t Tile) SameKind(o Tile) bool {
	return t.Kind() == o.Kind()
}

// Index34 0..33的牌种下标，数组计数用
func (t Tile) Index34() int {
	if !t.IsValid() {
		return -1
	}
	return SEQ_BEGIN_BY_COLOR[t.Color()] + t.Point()
}

// TileFromIndex34 Index34的逆变换
func TileFromIndex34(idx int) Tile {
	for c := ColorBegin; c < ColorEnd; c++ {
		begin := SEQ_BEGIN_BY_COLOR[c]
		if idx < begin+PointCountByColor[c] {
			return MakeTile(c, idx-begin)
		}
	}
	return TileNull
}

func (t Tile) IsSuit() bool { // 数牌
	return t.IsValid() && t.Color() >= ColorCharacter && t.Color() <= ColorDot
}

func (t Tile) IsHonor() bool { // 字牌
	return t.IsValid() && (t.Color() == ColorWind || t.Color() == ColorDragon)
}

func (t Tile) IsDragon() bool {
	return t.Color() == ColorDragon
}

func (t Tile) IsWind() bool {
	return t.Color() == ColorWind
}

func (t Tile) IsTerminal() bool { // 老头牌
	return t.IsSuit() && (t.Point() == 0 || t.Point() == 8)
}

func (t Tile) IsYaochu() bool { // 幺九牌
	return t.IsTerminal() || t.IsHonor()
}

func (t Tile) IsSimple() bool { // 中张
	return t.IsSuit() && !t.IsTerminal()
}

// DoraNext 指示牌对应的宝牌
func (t Tile) DoraNext() Tile {
	c, p := t.Info()
	switch c {
	case ColorCharacter, ColorBamboo, ColorDot:
		return MakeTile(c, (p+1)%9)
	case ColorWind:
		return MakeTile(c, (p+1)%4)
	case ColorDragon:
		return MakeTile(c, (p+1)%3)
	}
	return TileNull
}

func (t Tile) Name() string {
	c, p := t.Info()
	red := ""
	if t.IsRed() {
		red = "红"
	}
	switch c {
	case ColorCharacter:
		return red + strconv.Itoa(p+1) + "万"
	case ColorBamboo:
		return red + strconv.Itoa(p+1) + "条"
	case ColorDot:
		return red + strconv.Itoa(p+1) + "筒"
	case ColorWind:
		names := []string{"东", "南", "西", "北"}
		return names[p]
	case ColorDragon:
		names := []string{"白", "发", "中"}
		return names[p]
	default:
		return ""
	}
}

func (t Tile) ToInt32() int32 {
	return int32(t)
}

func TilesName(tiles []Tile) string {
	var tileNames []string
	for _, tile := range tiles {
		tileNames = append(tileNames, tile.Name())
	}
	return strings.Join(tileNames, ", ")
}

func TilesInt32(tiles []Tile) []int32 {
	res := make([]int32, len(tiles))
	for i, t := range tiles {
		res[i] = int32(t)
	}
	return res
}

func Int32Tiles(tiles []int32) []Tile {
	res := make([]Tile, len(tiles))
	for i, t := range tiles {
		res[i] = Tile(t)
	}
	return res
}

// Counts 按牌种计数的手牌
type Counts [TileKindCount]int

func CountTiles(tiles []Tile) Counts {
	var c Counts
	for _, t := range tiles {
		if idx := t.Index34(); idx >= 0 {
			c[idx]++
		}
	}
	return c
}

func (c Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

func (c Counts) Count(t Tile) int {
	if idx := t.Index34(); idx >= 0 {
		return c[idx]
	}
	return 0
}
