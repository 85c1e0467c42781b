package mahjong

import "slices"

type YakuID int32

const (
	YakuNone YakuID = iota
	YakuRiichi
	YakuDoubleRiichi
	YakuIppatsu
	YakuMenzenTsumo
	YakuPinfu
	YakuTanyao
	YakuIipeiko
	YakuHaku
	YakuHatsu
	YakuChun
	YakuRoundWind
	YakuSeatWind
	YakuSanshokuDoujun
	YakuSanshokuDoukou
	YakuIttsu
	YakuChanta
	YakuJunchan
	YakuHonroutou
	YakuToitoi
	YakuSanankou
	YakuSankantsu
	YakuChiitoitsu
	YakuShousangen
	YakuHonitsu
	YakuChinitsu
	YakuRyanpeikou
	YakuHaitei
	YakuHoutei
	YakuRinshan
	YakuChankan
	YakuDora
	YakuUraDora
	YakuRedDora

	YakuTenhou
	YakuChiihou
	YakuKokushi
	YakuKokushi13
	YakuSuuankou
	YakuSuuankouTanki
	YakuDaisangen
	YakuShousuushii
	YakuDaisuushii
	YakuTsuuiisou
	YakuChinroutou
	YakuRyuuiisou
	YakuChuuren
	YakuChuuren9
	YakuSuukantsu
	YakuRenhou // 地方规则，rule开启时生效
)

type YakuInfo struct {
	Name      string
	HanClosed int32
	HanOpen   int32 // 0表示门前限定
}

var yakuTable = map[YakuID]YakuInfo{
	YakuRiichi:         {"立直", 1, 0},
	YakuDoubleRiichi:   {"两立直", 2, 0},
	YakuIppatsu:        {"一发", 1, 0},
	YakuMenzenTsumo:    {"门前清自摸和", 1, 0},
	YakuPinfu:          {"平和", 1, 0},
	YakuTanyao:         {"断幺九", 1, 1},
	YakuIipeiko:        {"一杯口", 1, 0},
	YakuHaku:           {"役牌白", 1, 1},
	YakuHatsu:          {"役牌发", 1, 1},
	YakuChun:           {"役牌中", 1, 1},
	YakuRoundWind:      {"场风牌", 1, 1},
	YakuSeatWind:       {"自风牌", 1, 1},
	YakuSanshokuDoujun: {"三色同顺", 2, 1},
	YakuSanshokuDoukou: {"三色同刻", 2, 2},
	YakuIttsu:          {"一气通贯", 2, 1},
	YakuChanta:         {"混全带幺九", 2, 1},
	YakuJunchan:        {"纯全带幺九", 3, 2},
	YakuHonroutou:      {"混老头", 2, 2},
	YakuToitoi:         {"对对和", 2, 2},
	YakuSanankou:       {"三暗刻", 2, 2},
	YakuSankantsu:      {"三杠子", 2, 2},
	YakuChiitoitsu:     {"七对子", 2, 0},
	YakuShousangen:     {"小三元", 2, 2},
	YakuHonitsu:        {"混一色", 3, 2},
	YakuChinitsu:       {"清一色", 6, 5},
	YakuRyanpeikou:     {"二杯口", 3, 0},
	YakuHaitei:         {"海底摸月", 1, 1},
	YakuHoutei:         {"河底捞鱼", 1, 1},
	YakuRinshan:        {"岭上开花", 1, 1},
	YakuChankan:        {"抢杠", 1, 1},
	YakuDora:           {"宝牌", 0, 0},
	YakuUraDora:        {"里宝牌", 0, 0},
	YakuRedDora:        {"赤宝牌", 0, 0},
}

// yakumanTable 役满倍数
var yakumanTable = map[YakuID]struct {
	Name string
	Mult int32
}{
	YakuTenhou:        {"天和", 1},
	YakuChiihou:       {"地和", 1},
	YakuKokushi:       {"国士无双", 1},
	YakuKokushi13:     {"国士无双十三面", 2},
	YakuSuuankou:      {"四暗刻", 1},
	YakuSuuankouTanki: {"四暗刻单骑", 2},
	YakuDaisangen:     {"大三元", 1},
	YakuShousuushii:   {"小四喜", 1},
	YakuDaisuushii:    {"大四喜", 2},
	YakuTsuuiisou:     {"字一色", 1},
	YakuChinroutou:    {"清老头", 1},
	YakuRyuuiisou:     {"绿一色", 1},
	YakuChuuren:       {"九莲宝灯", 1},
	YakuChuuren9:      {"纯正九莲宝灯", 2},
	YakuRenhou:        {"人和", 1},
	YakuSuukantsu:     {"四杠子", 1},
}

func (id YakuID) Name() string {
	if info, ok := yakuTable[id]; ok {
		return info.Name
	}
	if info, ok := yakumanTable[id]; ok {
		return info.Name
	}
	return ""
}

func (id YakuID) IsYakuman() bool {
	_, ok := yakumanTable[id]
	return ok
}

type YakuResult struct {
	ID  YakuID
	Han int32
}

// WaitKind 听牌形式，符数与四暗刻单骑等判定用
type WaitKind int

const (
	WaitRyanmen WaitKind = iota // 两面
	WaitKanchan                 // 嵌张
	WaitPenchan                 // 边张
	WaitShanpon                 // 双碰
	WaitTanki                   // 单骑
)

// WinContext 一次和牌的全部环境信息
type WinContext struct {
	Rule       *Rule
	Seat       int32
	WinTile    Tile
	Zimo       bool
	Rinshan    bool // 岭上开花
	Chankan    bool // 抢杠
	Haitei     bool // 牌墙最后一张自摸
	Houtei     bool // 最后一张打出的荣和
	Tenhou     bool
	Chiihou    bool
	Renhou     bool // 人和，首巡无鸣牌时的荣和
	Riichi     bool
	WRiichi    bool // 两立直
	Ippatsu    bool
	RoundWind  Wind
	SeatWind   Wind
	Indicators []Tile // 宝牌指示牌
	UraInds    []Tile // 里宝，立直时计
	HandTiles  []Tile // 门前手牌，含和牌张
	Chows      []ChowGroup
	Pons       []Group
	Kons       []KonGroup
}

func (c *WinContext) IsMenzen() bool {
	if len(c.Chows) > 0 || len(c.Pons) > 0 {
		return false
	}
	for _, kon := range c.Kons {
		if kon.Type != KonTypeAn {
			return false
		}
	}
	return true
}

// AllTiles 手牌加副露的全部实际牌张，宝牌计数用
func (c *WinContext) AllTiles() []Tile {
	tiles := slices.Clone(c.HandTiles)
	for _, g := range c.Chows {
		tiles = append(tiles, g.Tiles...)
	}
	for _, g := range c.Pons {
		tiles = append(tiles, g.Tiles...)
	}
	for _, g := range c.Kons {
		tiles = append(tiles, g.Tiles...)
	}
	return tiles
}

// meldInfo 拆解面子与副露的统一视图
type meldInfo struct {
	run       bool
	quad      bool
	tile      Tile // 顺子最小牌或刻子牌种
	open      bool // 含荣和完成的刻子
	winning   bool // 和牌张所在面子
	concealed bool // 三暗刻口径：暗刻或暗杠
}

// handView 某个拆解加和牌张落点的完整牌型视图
type handView struct {
	pair   Tile
	melds  []meldInfo
	wait   WaitKind
	style  EHandStyle
	menzen bool
}

// buildViews 枚举拆解与和牌张落点的所有组合
func buildViews(ctx *WinContext) []handView {
	counts := CountTiles(ctx.HandTiles)
	views := make([]handView, 0, 2)

	if IsKokushi(counts) {
		views = append(views, handView{style: HandStyleThirteenOrphans, menzen: true})
		return views
	}

	menzen := ctx.IsMenzen()
	if IsSevenPairs(counts) {
		views = append(views, handView{style: HandStyleSevenPairs, wait: WaitTanki, menzen: menzen})
	}

	fixed := make([]meldInfo, 0, 4)
	for _, g := range ctx.Chows {
		fixed = append(fixed, meldInfo{run: true, tile: g.LeftTile, open: true})
	}
	for _, g := range ctx.Pons {
		fixed = append(fixed, meldInfo{tile: g.Tile, open: true})
	}
	for _, g := range ctx.Kons {
		an := g.Type == KonTypeAn
		fixed = append(fixed, meldInfo{tile: g.Tile, quad: true, open: !an, concealed: an})
	}

	winKind := ctx.WinTile.Kind()
	for _, dec := range Decompose(counts) {
		for _, view := range placeWinTile(ctx, dec, fixed, winKind) {
			view.style = HandStyleNormal
			view.menzen = menzen
			views = append(views, view)
		}
	}
	return views
}

// placeWinTile 把和牌张放进拆解的每个可能位置，荣和落点决定明暗与听型
func placeWinTile(ctx *WinContext, dec Decomposition, fixed []meldInfo, winKind Tile) []handView {
	views := make([]handView, 0, 2)
	build := func(winIdx int, wait WaitKind) {
		melds := make([]meldInfo, 0, 4+len(fixed))
		for i, m := range dec.Melds {
			info := meldInfo{run: m.Kind == MeldRun, tile: m.Tile}
			if !info.run {
				info.concealed = true
			}
			if i == winIdx {
				info.winning = true
				if !info.run && !ctx.Zimo {
					// 荣和完成的刻子按明刻计
					info.open = true
					info.concealed = false
				}
			}
			melds = append(melds, info)
		}
		melds = append(melds, fixed...)
		views = append(views, handView{pair: dec.Pair, melds: melds, wait: wait})
	}

	if dec.Pair == winKind {
		build(-1, WaitTanki)
	}
	for i, m := range dec.Melds {
		if m.Kind == MeldTriplet {
			if m.Tile == winKind {
				build(i, WaitShanpon)
			}
			continue
		}
		low := m.Tile
		if winKind.Color() != low.Color() {
			continue
		}
		switch winKind.Point() - low.Point() {
		case 0:
			if low.Point() == 6 {
				build(i, WaitPenchan) // 89和7
			} else {
				build(i, WaitRyanmen)
			}
		case 1: // 顺子中间张
			build(i, WaitKanchan)
		case 2:
			if low.Point() == 0 {
				build(i, WaitPenchan) // 12和3
			} else {
				build(i, WaitRyanmen)
			}
		}
	}
	return views
}

// detectYakuman 役满判定，命中则无视普通役与宝牌
func detectYakuman(ctx *WinContext, view handView) []YakuResult {
	results := make([]YakuResult, 0)
	add := func(id YakuID) {
		results = append(results, YakuResult{ID: id, Han: yakumanTable[id].Mult * 13})
	}

	if ctx.Tenhou {
		add(YakuTenhou)
	}
	if ctx.Chiihou {
		add(YakuChiihou)
	}
	if ctx.Renhou && ctx.Rule.LocalYaku {
		add(YakuRenhou)
	}

	counts := CountTiles(ctx.HandTiles)
	if view.style == HandStyleThirteenOrphans {
		if IsKokushi13Wait(counts, ctx.WinTile) {
			add(YakuKokushi13)
		} else {
			add(YakuKokushi)
		}
		return results
	}

	allTiles := ctx.AllTiles()
	allHonor, allTerminal, allGreen := true, true, true
	for _, t := range allTiles {
		if !t.IsHonor() {
			allHonor = false
		}
		if !t.IsTerminal() {
			allTerminal = false
		}
		if !isGreenTile(t) {
			allGreen = false
		}
	}
	if allHonor {
		add(YakuTsuuiisou)
	}
	if allTerminal {
		add(YakuChinroutou)
	}
	if allGreen {
		add(YakuRyuuiisou)
	}

	if view.style == HandStyleNormal {
		ankou, quads := 0, 0
		dragonTriplets, windTriplets := 0, 0
		for _, m := range view.melds {
			if m.quad {
				quads++
			}
			if !m.run && m.concealed {
				ankou++
			}
			if !m.run && m.tile.IsDragon() {
				dragonTriplets++
			}
			if !m.run && m.tile.IsWind() {
				windTriplets++
			}
		}
		if ankou == 4 {
			if view.wait == WaitTanki {
				add(YakuSuuankouTanki)
			} else {
				add(YakuSuuankou)
			}
		}
		if quads == 4 {
			add(YakuSuukantsu)
		}
		if dragonTriplets == 3 {
			add(YakuDaisangen)
		}
		if windTriplets == 4 {
			add(YakuDaisuushii)
		} else if windTriplets == 3 && view.pair.IsWind() {
			add(YakuShousuushii)
		}

		if view.menzen && isChuuren(counts) {
			if isChuuren9Wait(counts, ctx.WinTile) {
				add(YakuChuuren9)
			} else {
				add(YakuChuuren)
			}
		}
	}
	return results
}

// isGreenTile 绿一色成员：条子23468与发
func isGreenTile(t Tile) bool {
	if t.Kind() == TileFa {
		return true
	}
	if t.Color() != ColorBamboo {
		return false
	}
	switch t.Point() {
	case 1, 2, 3, 5, 7:
		return true
	}
	return false
}

// isChuuren 九莲宝灯：清一色1112345678999加任意一张
func isChuuren(counts Counts) bool {
	if counts.Total() != 14 {
		return false
	}
	for c := ColorBegin; c <= ColorDot; c++ {
		begin := SEQ_BEGIN_BY_COLOR[c]
		sum := 0
		ok := true
		for p := 0; p < 9; p++ {
			n := counts[begin+p]
			sum += n
			need := 1
			if p == 0 || p == 8 {
				need = 3
			}
			if n < need {
				ok = false
				break
			}
		}
		if ok && sum == 14 {
			return true
		}
	}
	return false
}

// isChuuren9Wait 纯正九莲：去掉和牌张后恰为1112345678999
func isChuuren9Wait(counts Counts, winTile Tile) bool {
	counts[winTile.Index34()]--
	begin := SEQ_BEGIN_BY_COLOR[winTile.Color()]
	for p := 0; p < 9; p++ {
		need := 1
		if p == 0 || p == 8 {
			need = 3
		}
		if counts[begin+p] != need {
			return false
		}
	}
	return true
}

// detectYaku 普通役判定，不含宝牌
func detectYaku(ctx *WinContext, view handView) []YakuResult {
	results := make([]YakuResult, 0, 4)
	add := func(id YakuID) {
		info := yakuTable[id]
		han := info.HanClosed
		if !view.menzen {
			han = info.HanOpen
		}
		if han > 0 {
			results = append(results, YakuResult{ID: id, Han: han})
		}
	}

	if ctx.Riichi {
		if ctx.WRiichi {
			add(YakuDoubleRiichi)
		} else {
			add(YakuRiichi)
		}
		if ctx.Ippatsu {
			add(YakuIppatsu)
		}
	}
	if ctx.Zimo && view.menzen {
		add(YakuMenzenTsumo)
	}
	if ctx.Rinshan {
		add(YakuRinshan)
	}
	if ctx.Chankan {
		add(YakuChankan)
	}
	if ctx.Haitei {
		add(YakuHaitei)
	}
	if ctx.Houtei {
		add(YakuHoutei)
	}

	allTiles := ctx.AllTiles()
	if isTanyaoTiles(allTiles) && (view.menzen || ctx.Rule.OpenTanyao) {
		add(YakuTanyao)
	}

	suits, honors := suitSpread(allTiles)
	if suits == 1 {
		if honors {
			add(YakuHonitsu)
		} else {
			add(YakuChinitsu)
		}
	}

	switch view.style {
	case HandStyleSevenPairs:
		add(YakuChiitoitsu)
		if isHonroutouTiles(allTiles) {
			add(YakuHonroutou)
		}
		return results
	case HandStyleThirteenOrphans:
		return results
	}

	detectMeldYaku(ctx, view, add)
	return results
}

func detectMeldYaku(ctx *WinContext, view handView, add func(YakuID)) {
	runs := make([]Tile, 0, 4)
	triplets := make([]Tile, 0, 4)
	ankou, quads := 0, 0
	for _, m := range view.melds {
		if m.run {
			runs = append(runs, m.tile)
			continue
		}
		triplets = append(triplets, m.tile)
		if m.concealed {
			ankou++
		}
		if m.quad {
			quads++
		}
	}

	// 役牌刻子，连风各计一番
	for _, t := range triplets {
		switch t {
		case TileBai:
			add(YakuHaku)
		case TileFa:
			add(YakuHatsu)
		case TileZhong:
			add(YakuChun)
		default:
			if t == ctx.RoundWind.Tile() {
				add(YakuRoundWind)
			}
			if t == ctx.SeatWind.Tile() {
				add(YakuSeatWind)
			}
		}
	}

	if view.menzen && len(runs) == 4 && view.wait == WaitRyanmen && !isYakuhaiPair(ctx, view.pair) {
		add(YakuPinfu)
	}

	if view.menzen {
		dup := 0
		seen := make(map[Tile]int)
		for _, t := range runs {
			seen[t]++
		}
		for _, n := range seen {
			dup += n / 2
		}
		if dup >= 2 {
			add(YakuRyanpeikou)
		} else if dup == 1 {
			add(YakuIipeiko)
		}
	}

	if hasSanshoku(runs) {
		add(YakuSanshokuDoujun)
	}
	if hasSanshoku(triplets) {
		add(YakuSanshokuDoukou)
	}
	if hasIttsu(runs) {
		add(YakuIttsu)
	}

	if len(triplets) == 4 {
		add(YakuToitoi)
	}
	if ankou >= 3 {
		add(YakuSanankou)
	}
	if quads >= 3 {
		add(YakuSankantsu)
	}

	dragonTriplets := 0
	for _, t := range triplets {
		if t.IsDragon() {
			dragonTriplets++
		}
	}
	if dragonTriplets == 2 && view.pair.IsDragon() {
		add(YakuShousangen)
	}

	// 带幺九系：每组面子与雀头都含幺九
	allYaochu := view.pair.IsYaochu()
	pureTerminal := view.pair.IsTerminal()
	hasRun := len(runs) > 0
	for _, m := range view.melds {
		if m.run {
			if m.tile.Point() != 0 && m.tile.Point() != 6 {
				allYaochu = false
				pureTerminal = false
			}
			continue
		}
		if !m.tile.IsYaochu() {
			allYaochu = false
		}
		if !m.tile.IsTerminal() {
			pureTerminal = false
		}
	}
	if allYaochu {
		switch {
		case pureTerminal && hasRun:
			add(YakuJunchan)
		case hasRun:
			add(YakuChanta)
		default:
			add(YakuHonroutou)
		}
	}
}

func isYakuhaiPair(ctx *WinContext, pair Tile) bool {
	if pair.IsDragon() {
		return true
	}
	return pair == ctx.RoundWind.Tile() || pair == ctx.SeatWind.Tile()
}

func isTanyaoTiles(tiles []Tile) bool {
	for _, t := range tiles {
		if t.IsYaochu() {
			return false
		}
	}
	return true
}

func isHonroutouTiles(tiles []Tile) bool {
	for _, t := range tiles {
		if !t.IsYaochu() {
			return false
		}
	}
	return true
}

// suitSpread 统计用到的数牌门数与是否含字牌
func suitSpread(tiles []Tile) (suits int, honors bool) {
	var colors [ColorEnd]bool
	for _, t := range tiles {
		if t.IsHonor() {
			honors = true
		} else {
			colors[t.Color()] = true
		}
	}
	for c := ColorBegin; c <= ColorDot; c++ {
		if colors[c] {
			suits++
		}
	}
	return
}

func hasSanshoku(tiles []Tile) bool {
	for p := 0; p < 9; p++ {
		mask := 0
		for _, t := range tiles {
			if t.IsSuit() && t.Point() == p {
				mask |= 1 << t.Color()
			}
		}
		if mask == 0x7 {
			return true
		}
	}
	return false
}

func hasIttsu(runs []Tile) bool {
	for c := ColorBegin; c <= ColorDot; c++ {
		has147 := [3]bool{}
		for _, t := range runs {
			if t.Color() != c {
				continue
			}
			switch t.Point() {
			case 0:
				has147[0] = true
			case 3:
				has147[1] = true
			case 6:
				has147[2] = true
			}
		}
		if has147[0] && has147[1] && has147[2] {
			return true
		}
	}
	return false
}

// countDora 宝牌、里宝与赤宝牌番数
func countDora(ctx *WinContext) []YakuResult {
	results := make([]YakuResult, 0, 3)
	tiles := ctx.AllTiles()

	count := func(indicators []Tile) int32 {
		var n int32
		for _, ind := range indicators {
			dora := ind.DoraNext()
			for _, t := range tiles {
				if t.SameKind(dora) {
					n++
				}
			}
		}
		return n
	}

	if n := count(ctx.Indicators); n > 0 {
		results = append(results, YakuResult{ID: YakuDora, Han: n})
	}
	if ctx.Riichi {
		if n := count(ctx.UraInds); n > 0 {
			results = append(results, YakuResult{ID: YakuUraDora, Han: n})
		}
	}
	var red int32
	for _, t := range tiles {
		if t.IsRed() {
			red++
		}
	}
	if red > 0 {
		results = append(results, YakuResult{ID: YakuRedDora, Han: red})
	}
	return results
}
