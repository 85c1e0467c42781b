package mahjong

import (
	"slices"
)

type Group struct {
	Tile  Tile
	From  int32
	Tiles []Tile // 实际三张，含红宝牌
}

type KonGroup struct {
	Tile  Tile
	From  int32
	Type  KonType
	Tiles []Tile // 实际四张，含红宝牌
}

type ChowGroup struct {
	ChowTile Tile
	From     int32
	LeftTile Tile // 顺子最小牌
	Tiles    []Tile
}

// PlayData 单个座位的对局数据：手牌、副露、牌河与立直/振听状态
type PlayData struct {
	play          *Play
	seat          int32
	handTiles     []Tile
	outTiles      []Tile // 逻辑牌河，被鸣走的牌也保留，振听判定用
	riverTiles    []Tile // 展示牌河，被鸣走的牌移除
	chowGroups    []ChowGroup
	ponGroups     []Group
	konGroups     []KonGroup
	riichi        bool
	doubleRiichi  bool
	ippatsu       bool
	riichiIndex   int           // 立直宣言牌在展示牌河中的下标
	passHu        map[Tile]bool // 见逃的牌，同巡振听；摸切后清空
	furitenRiichi bool          // 立直后见逃，持续到本局结束
	machi         []Tile        // 最近一次打牌后的待牌缓存
	untouched     bool          // 第一巡且无人鸣牌
	riverClaimed  bool          // 牌河曾被鸣走，流局满贯判定用
}

func NewPlayData(play *Play, seat int32) *PlayData {
	return &PlayData{
		play:       play,
		seat:       seat,
		handTiles:  make([]Tile, 0, TileCountInitBanker),
		outTiles:   make([]Tile, 0),
		riverTiles: make([]Tile, 0),
		chowGroups: make([]ChowGroup, 0),
		ponGroups:  make([]Group, 0),
		konGroups:  make([]KonGroup, 0),
		passHu:     make(map[Tile]bool),
		machi:      make([]Tile, 0),
		untouched:  true,
	}
}

func (p *PlayData) Seat() int32 {
	return p.seat
}

func (p *PlayData) PutHandTile(tile Tile) {
	p.handTiles = append(p.handTiles, tile)
}

func (p *PlayData) RemoveHandTile(tile Tile, count int) {
	p.handTiles = RemoveElements(p.handTiles, tile, count)
}

// Discard 打出一张手牌，同时进入两条牌河
func (p *PlayData) Discard(tile Tile) bool {
	if !slices.Contains(p.handTiles, tile) {
		return false
	}
	p.handTiles = RemoveElements(p.handTiles, tile, 1)
	p.outTiles = append(p.outTiles, tile)
	p.riverTiles = append(p.riverTiles, tile)
	return true
}

// OnClaimed 牌河末张被他家鸣走，仅从展示牌河移除
func (p *PlayData) OnClaimed() {
	if len(p.riverTiles) > 0 {
		p.riverTiles = p.riverTiles[:len(p.riverTiles)-1]
	}
	p.riverClaimed = true
}

func (p *PlayData) GetHandTiles() []Tile {
	return p.handTiles
}

func (p *PlayData) GetHandTilesInt32() []int32 {
	return TilesInt32(p.handTiles)
}

func (p *PlayData) GetOutTiles() []Tile {
	return p.outTiles
}

func (p *PlayData) GetRiverTiles() []Tile {
	return p.riverTiles
}

// IsMenzen 门前清：无吃碰明杠，暗杠不破门清
func (p *PlayData) IsMenzen() bool {
	if len(p.chowGroups) > 0 || len(p.ponGroups) > 0 {
		return false
	}
	for _, kon := range p.konGroups {
		if kon.Type != KonTypeAn {
			return false
		}
	}
	return true
}

func (p *PlayData) IsRiichi() bool {
	return p.riichi
}

func (p *PlayData) IsDoubleRiichi() bool {
	return p.doubleRiichi
}

func (p *PlayData) IsIppatsu() bool {
	return p.ippatsu
}

func (p *PlayData) BreakIppatsu() {
	p.ippatsu = false
}

// SetRiichi 立直宣言，宣言牌即本次打出的牌
func (p *PlayData) SetRiichi(double bool) {
	p.riichi = true
	p.doubleRiichi = double
	p.ippatsu = true
	p.riichiIndex = len(p.riverTiles) - 1
}

func (p *PlayData) RiichiIndex() int {
	return p.riichiIndex
}

// IsUntouched 起手未被打断：双立直与天地和的前提
func (p *PlayData) IsUntouched() bool {
	return p.untouched
}

func (p *PlayData) TouchFirstTurn() {
	p.untouched = false
}

func (p *PlayData) PassHu(tile Tile) {
	p.passHu[tile.Kind()] = true
	if p.riichi {
		p.furitenRiichi = true
	}
}

func (p *PlayData) ClearPassHu() {
	if len(p.passHu) > 0 {
		p.passHu = make(map[Tile]bool)
	}
}

// IsFuriten 振听：待牌出现在自家逻辑牌河，或同巡/立直后见逃
func (p *PlayData) IsFuriten() bool {
	if p.furitenRiichi || len(p.passHu) > 0 {
		return true
	}
	for _, m := range p.machi {
		for _, out := range p.outTiles {
			if out.SameKind(m) {
				return true
			}
		}
	}
	return false
}

func (p *PlayData) SetMachi(machi []Tile) {
	p.machi = machi
}

func (p *PlayData) Machi() []Tile {
	return p.machi
}

func (p *PlayData) IsTenpai() bool {
	return len(p.machi) > 0
}

func (p *PlayData) canPon(tile Tile) bool {
	return p.countKind(tile) >= 2
}

func (p *PlayData) canKon(tile Tile, konType KonType) bool {
	count := p.countKind(tile)
	switch konType {
	case KonTypeZhi:
		return count == 3
	case KonTypeAn:
		return count == 4
	case KonTypeBu:
		return count >= 1 && p.HasPon(tile)
	default:
		return false
	}
}

func (p *PlayData) countKind(tile Tile) int {
	count := 0
	for _, t := range p.handTiles {
		if t.SameKind(tile) {
			count++
		}
	}
	return count
}

func (p *PlayData) canChow(tile Tile) bool {
	if !tile.IsSuit() {
		return false
	}
	color, point := tile.Kind().Info()
	points := make([]int, PointCountByColor[color])
	for _, t := range p.handTiles {
		if t.Color() == color {
			points[t.Point()]++
		}
	}
	points[point]++
	leftPoint := max(point-2, 0)
	maxLeftPoint := min(6, point)
	for i := leftPoint; i <= maxLeftPoint; i++ {
		if points[i] != 0 && points[i+1] != 0 && points[i+2] != 0 {
			return true
		}
	}
	return false
}

// TryChow 以tile为顺子最小牌吃curTile
func (p *PlayData) TryChow(curTile, tile Tile, from int32) bool {
	color, point := tile.Kind().Info()
	if color != curTile.Color() || curTile.Kind().Point()-point >= 3 || point < 0 {
		return false
	}

	tiles := make([]Tile, 0, 3)
	for i := 0; i < 3; i++ {
		t := MakeTile(color, point+i)
		if t == curTile.Kind() {
			tiles = append(tiles, curTile)
			continue
		}
		held := p.takeKind(t)
		if held == TileNull {
			return false
		}
		tiles = append(tiles, held)
	}

	for _, t := range tiles {
		if t != curTile {
			p.handTiles = RemoveElements(p.handTiles, t, 1)
		}
	}
	p.chowGroups = append(p.chowGroups, ChowGroup{ChowTile: curTile, From: from, LeftTile: tile.Kind(), Tiles: tiles})
	return true
}

// takeKind 选出一张同种牌，优先普通牌保留红宝
func (p *PlayData) takeKind(kind Tile) Tile {
	found := TileNull
	for _, t := range p.handTiles {
		if !t.SameKind(kind) {
			continue
		}
		if !t.IsRed() {
			return t
		}
		found = t
	}
	return found
}

func (p *PlayData) Pon(tile Tile, from int32) {
	taken := p.removeKind(tile, 2)
	p.ponGroups = append(p.ponGroups, Group{Tile: tile.Kind(), From: from, Tiles: append(taken, tile)})
}

func (p *PlayData) HasPon(tile Tile) bool {
	for _, group := range p.ponGroups {
		if group.Tile == tile.Kind() {
			return true
		}
	}
	return false
}

func (p *PlayData) kon(tile Tile, from int32, konType KonType) {
	switch konType {
	case KonTypeBu:
		p.buKon(tile)
	case KonTypeAn:
		taken := p.removeKind(tile, 4)
		p.konGroups = append(p.konGroups, KonGroup{Tile: tile.Kind(), From: from, Type: KonTypeAn, Tiles: taken})
	default:
		taken := p.removeKind(tile, 3)
		p.konGroups = append(p.konGroups, KonGroup{Tile: tile.Kind(), From: from, Type: KonTypeZhi, Tiles: append(taken, tile)})
	}
}

func (p *PlayData) buKon(tile Tile) {
	taken := p.removeKind(tile, 1)
	pon := p.RemovePon(tile)
	tiles := append(slices.Clone(pon.Tiles), taken...)
	p.konGroups = append(p.konGroups, KonGroup{Tile: tile.Kind(), From: pon.From, Type: KonTypeBu, Tiles: tiles})
}

func (p *PlayData) removeKind(tile Tile, count int) []Tile {
	taken := make([]Tile, 0, count)
	for i := 0; i < count; i++ {
		t := p.takeKind(tile)
		if t == TileNull {
			break
		}
		p.handTiles = RemoveElements(p.handTiles, t, 1)
		taken = append(taken, t)
	}
	return taken
}

func (p *PlayData) HasKon(tile Tile) bool {
	for _, group := range p.konGroups {
		if group.Tile == tile.Kind() {
			return true
		}
	}
	return false
}

func (p *PlayData) RemovePon(tile Tile) Group {
	for i, group := range p.ponGroups {
		if group.Tile == tile.Kind() {
			p.ponGroups = append(p.ponGroups[:i], p.ponGroups[i+1:]...)
			return group
		}
	}
	return Group{}
}

func (p *PlayData) GetChowGroups() []ChowGroup {
	return p.chowGroups
}

func (p *PlayData) GetPonGroups() []Group {
	return p.ponGroups
}

func (p *PlayData) GetKonGroups() []KonGroup {
	return p.konGroups
}

func (p *PlayData) AnKonCount() int32 {
	var count int32
	for _, group := range p.konGroups {
		if group.Type == KonTypeAn {
			count++
		}
	}
	return count
}

// MeldCount 副露与杠总数，无副露流局听牌判定等用
func (p *PlayData) MeldCount() int {
	return len(p.chowGroups) + len(p.ponGroups) + len(p.konGroups)
}

// selfKonTiles 当前可自杠的牌：暗杠四张或碰后加杠；立直后只允许不变听的暗杠
func (p *PlayData) selfKonTiles() []Tile {
	tiles := make([]Tile, 0)
	counts := make(map[Tile]int)
	for _, t := range p.handTiles {
		counts[t.Kind()]++
	}

	if !p.riichi {
		for _, pon := range p.ponGroups {
			if counts[pon.Tile] > 0 {
				tiles = append(tiles, pon.Tile)
			}
		}
		for kind, count := range counts {
			if count == 4 {
				tiles = append(tiles, kind)
			}
		}
		return tiles
	}

	// 立直后只考察刚摸进的牌
	last := p.handTiles[len(p.handTiles)-1].Kind()
	if counts[last] != 4 {
		return tiles
	}
	if p.riichiKanKeepsMachi(last) {
		tiles = append(tiles, last)
	}
	return tiles
}

// riichiKanKeepsMachi 立直暗杠须不改变待牌：该种四张自成孤立刻，去掉后待牌集合一致
func (p *PlayData) riichiKanKeepsMachi(kind Tile) bool {
	hand := make([]Tile, 0, len(p.handTiles))
	for _, t := range p.handTiles {
		if !t.SameKind(kind) {
			hand = append(hand, t)
		}
	}
	after := Machi(CountTiles(hand))
	if len(after) != len(p.machi) {
		return false
	}
	for i := range after {
		if !after[i].SameKind(p.machi[i]) {
			return false
		}
	}
	return true
}
