package mahjong

import (
	"math/rand"
	"slices"
)

// 王牌内部布局：[0,4)岭上牌，[4,9)宝牌指示牌，[9,14)里宝牌指示牌
const (
	deadWallKanBegin  = 0
	deadWallDoraBegin = 4
	deadWallUraBegin  = 9
)

// Dealer 负责牌墙、王牌、宝牌指示与杠计数
type Dealer struct {
	rule     *Rule
	rng      *rand.Rand
	tileWall []Tile
	deadWall []Tile
	kanCount int
	kanSeats []int32 // 每次开杠的座位，四杠散了判定用
}

func NewDealer(rule *Rule, rng *rand.Rand) *Dealer {
	return &Dealer{
		rule:     rule,
		rng:      rng,
		tileWall: make([]Tile, 0),
		deadWall: make([]Tile, 0),
		kanSeats: make([]int32, 0),
	}
}

// AllTiles 按规则生成整副136张牌
func AllTiles(rule *Rule) []Tile {
	tiles := make([]Tile, 0, 136)
	for c := ColorBegin; c <= ColorDot; c++ {
		for p := 0; p < PointCountByColor[c]; p++ {
			red := 0
			if p == 4 {
				if rule.RedFives >= 3 {
					red = 1
				}
				if rule.RedFives == 4 && c == ColorDot {
					red = 2
				}
			}
			for i := 0; i < 4-red; i++ {
				tiles = append(tiles, MakeTile(c, p))
			}
			for i := 0; i < red; i++ {
				tiles = append(tiles, MakeRedTile(c))
			}
		}
	}
	for c := ColorWind; c < ColorEnd; c++ {
		for p := 0; p < PointCountByColor[c]; p++ {
			for i := 0; i < 4; i++ {
				tiles = append(tiles, MakeTile(c, p))
			}
		}
	}
	return tiles
}

// Initialize 洗牌、按骰点定开门位置并分出王牌
func (d *Dealer) Initialize(dice int) {
	tiles := AllTiles(d.rule)
	d.rng.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})

	// 开门位置是固定约定：骰点选墙，再越过骰点*2张
	breakOffset := ((dice - 1) % 4 * 34) + dice*2
	breakOffset %= len(tiles)
	tiles = append(slices.Clone(tiles[breakOffset:]), tiles[:breakOffset]...)

	deadBegin := len(tiles) - DeadWallCount
	d.tileWall = tiles[:deadBegin]
	d.deadWall = slices.Clone(tiles[deadBegin:])
	d.kanCount = 0
	d.kanSeats = d.kanSeats[:0]
}

// DrawTile 从牌墙摸一张，墙空返回TileNull（正常的荒牌流局条件）
func (d *Dealer) DrawTile() Tile {
	if len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.tileWall[0]
	d.tileWall = d.tileWall[1:]
	return tile
}

func (d *Dealer) Deal(count int) []Tile {
	tiles := make([]Tile, count)
	copy(tiles, d.tileWall[:count])
	d.tileWall = d.tileWall[count:]
	return tiles
}

// DrawReplacement 开杠补牌：取走岭上一张，牌墙尾张移入原槽位，王牌恒为14张
func (d *Dealer) DrawReplacement(seat int32) Tile {
	if d.kanCount >= MaxKanCount || len(d.tileWall) == 0 {
		return TileNull
	}
	tile := d.deadWall[deadWallKanBegin+d.kanCount]
	last := len(d.tileWall) - 1
	d.deadWall[deadWallKanBegin+d.kanCount] = d.tileWall[last]
	d.tileWall = d.tileWall[:last]
	d.kanCount++
	d.kanSeats = append(d.kanSeats, seat)
	return tile
}

func (d *Dealer) KanCount() int {
	return d.kanCount
}

// IsSuukaikan 四杠不集中于一家时成立
func (d *Dealer) IsSuukaikan() bool {
	if d.kanCount < MaxKanCount {
		return false
	}
	for _, seat := range d.kanSeats[1:] {
		if seat != d.kanSeats[0] {
			return true
		}
	}
	return false
}

// CanKan 第四杠只允许已持三杠的同一家开
func (d *Dealer) CanKan(seat int32) bool {
	if len(d.tileWall) == 0 {
		return false
	}
	if d.kanCount < MaxKanCount-1 {
		return true
	}
	if d.kanCount >= MaxKanCount {
		return false
	}
	for _, s := range d.kanSeats {
		if s != seat {
			return true // 允许开，开完后触发四杠散了
		}
	}
	return true
}

// DoraIndicators 当前明示的宝牌指示牌，始终为杠数+1张
func (d *Dealer) DoraIndicators() []Tile {
	return d.deadWall[deadWallDoraBegin : deadWallDoraBegin+d.kanCount+1]
}

// UraDoraIndicators 里宝牌指示牌，立直和牌时揭示，与表指示牌等量
func (d *Dealer) UraDoraIndicators() []Tile {
	return d.deadWall[deadWallUraBegin : deadWallUraBegin+d.kanCount+1]
}

func (d *Dealer) GetRestCount() int32 {
	return int32(len(d.tileWall))
}

func (d *Dealer) DeadWallTiles() []Tile {
	return d.deadWall
}

func (d *Dealer) WallTiles() []Tile {
	return d.tileWall
}

func (d *Dealer) Count(tile Tile) int {
	count := 0
	for _, t := range d.tileWall {
		if t.SameKind(tile) {
			count++
		}
	}
	return count
}
