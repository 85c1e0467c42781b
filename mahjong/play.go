package mahjong

import (
	"github.com/sirupsen/logrus"
)

// Play 一局牌的全部过程数据，每局重建
type Play struct {
	game         *Game
	dealer       *Dealer
	curSeat      int32
	curTile      Tile
	banker       int32
	history      []Action
	playData     []*PlayData
	huSeats      []int32
	huResults    []*WinResult
	selfCheckers []CheckerSelf
	waitCheckers []CheckerWait
	endReason    EndReason
	paoSeat      int32
	pendingDora  int   // 明杠补花后延迟翻的指示牌数
	lastRinshan  bool  // 最近一张进张来自岭上
	afterDraw    bool  // 本座位已摸进未打出，自摸与自杠的前提
	riichiSeat   int32 // 本张打出即立直宣言，荣和则宣言不成立
	prevTile     Tile  // 抢杠窗口期间暂存的原弃牌
}

func NewPlay(game *Game) *Play {
	return &Play{
		riichiSeat:   SeatNull,
		prevTile:     TileNull,
		game:         game,
		dealer:       NewDealer(game.rule, game.rng),
		curSeat:      SeatNull,
		curTile:      TileNull,
		banker:       SeatNull,
		history:      make([]Action, 0),
		playData:     make([]*PlayData, PlayerCount),
		huSeats:      make([]int32, 0),
		huResults:    make([]*WinResult, PlayerCount),
		selfCheckers: make([]CheckerSelf, 0),
		waitCheckers: make([]CheckerWait, 0),
		paoSeat:      SeatNull,
	}
}

func (p *Play) RegisterSelfCheck(cks ...CheckerSelf) {
	p.selfCheckers = append(p.selfCheckers, cks...)
}

func (p *Play) RegisterWaitCheck(cks ...CheckerWait) {
	p.waitCheckers = append(p.waitCheckers, cks...)
}

func (p *Play) Initialize() {
	p.banker = p.game.Banker()
	p.curSeat = p.banker
	dice := p.game.rng.Intn(6) + p.game.rng.Intn(6) + 2
	p.dealer.Initialize(dice)
	for i := int32(0); i < PlayerCount; i++ {
		p.playData[i] = NewPlayData(p, i)
	}
}

func (p *Play) Deal() {
	for i := int32(0); i < PlayerCount; i++ {
		p.playData[i].handTiles = p.dealer.Deal(TileCountInitNormal)
	}
	p.playData[p.banker].PutHandTile(p.dealer.DrawTile())
	for i := int32(0); i < PlayerCount; i++ {
		p.refreshMachi(i)
	}
}

func (p *Play) GetDealer() *Dealer {
	return p.dealer
}

func (p *Play) GetPlayData(seat int32) *PlayData {
	return p.playData[seat]
}

func (p *Play) GetCurSeat() int32 {
	return p.curSeat
}

func (p *Play) SwitchNextSeat() {
	p.curSeat = GetNextSeat(p.curSeat, 1, PlayerCount)
}

func (p *Play) GetCurTile() Tile {
	return p.curTile
}

func (p *Play) GetBanker() int32 {
	return p.banker
}

func (p *Play) EndReason() EndReason {
	return p.endReason
}

func (p *Play) SetEndReason(reason EndReason) {
	p.endReason = reason
}

func (p *Play) PaoSeat() int32 {
	return p.paoSeat
}

func (p *Play) HuSeats() []int32 {
	return p.huSeats
}

func (p *Play) GetHuResult(seat int32) *WinResult {
	return p.huResults[seat]
}

func (p *Play) GetCurScores() []int64 {
	scores := make([]int64, PlayerCount)
	for i := int32(0); i < PlayerCount; i++ {
		scores[i] = p.game.GetPlayer(i).GetCurScore()
	}
	return scores
}

func (p *Play) FetchSelfOperates() *Operates {
	opt := &Operates{Value: OperateDiscard}
	for _, v := range p.selfCheckers {
		v.Check(p, opt)
	}
	return opt
}

func (p *Play) FetchWaitOperates(seat int32) *Operates {
	opt := &Operates{Value: OperatePass}
	for _, v := range p.waitCheckers {
		v.Check(p, seat, opt)
	}
	return opt
}

// Draw 当前座位摸一张牌
func (p *Play) Draw() Tile {
	tile := p.dealer.DrawTile()
	if tile != TileNull {
		p.playData[p.curSeat].PutHandTile(tile)
		p.playData[p.curSeat].ClearPassHu() // 自家摸牌解除同巡振听
		p.addHistory(p.curSeat, SeatNull, OperateDraw, tile, TileNull)
		p.lastRinshan = false
		p.afterDraw = true
	}
	return tile
}

// Discard 打出一张牌，riichi为本次宣言立直
func (p *Play) Discard(tile Tile, riichi bool) bool {
	playData := p.playData[p.curSeat]
	if tile == TileNull {
		tile = playData.handTiles[len(playData.handTiles)-1]
	}
	if playData.riichi && !riichi {
		// 立直后只许摸切
		tile = playData.handTiles[len(playData.handTiles)-1]
	}
	if riichi && !p.CanRiichi(p.curSeat) {
		riichi = false
	}
	if riichi {
		// 宣言牌必须保持听牌，否则按普通打牌
		declare := false
		for _, t := range p.RiichiTiles(p.curSeat) {
			if t.SameKind(tile) {
				declare = true
				break
			}
		}
		riichi = declare
	}

	if playData.riichi {
		playData.BreakIppatsu()
	}

	if !playData.Discard(tile) {
		logrus.WithField("seat", p.curSeat).Error("discard tile not in hand")
		return false
	}
	p.curTile = tile
	p.afterDraw = false
	playData.ClearPassHu() // 自家打牌解除同巡振听
	p.addHistory(p.curSeat, SeatNull, OperateDiscard, tile, TileNull)

	if riichi {
		// 两立直要求首巡首打且无人鸣牌
		playData.SetRiichi(playData.IsUntouched() && len(playData.outTiles) == 1)
		p.riichiSeat = p.curSeat
	}

	p.refreshMachi(p.curSeat)
	p.flushPendingDora()
	return true
}

// FinalizeRiichi 宣言牌无人荣和后立直成立：供托千点
func (p *Play) FinalizeRiichi() {
	if p.riichiSeat == SeatNull {
		return
	}
	seat := p.riichiSeat
	p.riichiSeat = SeatNull
	p.game.GetPlayer(seat).AddScoreChange(-RiichiStickPoints)
	p.game.GetPlayer(seat).AddData("riichi", 1)
	p.game.AddRiichiStick()
	p.game.sender.SendRiichiAck(seat, p.playData[seat].doubleRiichi)
}

// CanRiichi 立直条件：门前、千点、余牌足够且有听牌打法
func (p *Play) CanRiichi(seat int32) bool {
	playData := p.playData[seat]
	if playData.riichi || !playData.IsMenzen() {
		return false
	}
	if p.game.GetPlayer(seat).GetCurScore() < RiichiStickPoints {
		return false
	}
	if p.dealer.GetRestCount() < 4 {
		return false
	}
	return len(p.RiichiTiles(seat)) > 0
}

// RiichiTiles 打出后保持听牌的候选牌
func (p *Play) RiichiTiles(seat int32) []Tile {
	playData := p.playData[seat]
	counts := CountTiles(playData.handTiles)
	tiles := make([]Tile, 0)
	seen := make(map[Tile]bool)
	for _, t := range playData.handTiles {
		kind := t.Kind()
		if seen[kind] {
			continue
		}
		seen[kind] = true
		counts[kind.Index34()]--
		if len(Machi(counts)) > 0 {
			tiles = append(tiles, t)
		}
		counts[kind.Index34()]++
	}
	return tiles
}

// refreshMachi 手牌为13张形态时更新待牌
func (p *Play) refreshMachi(seat int32) {
	playData := p.playData[seat]
	counts := CountTiles(playData.handTiles)
	if counts.Total()%3 != 1 {
		return
	}
	playData.SetMachi(Machi(counts))
}

// Chow 吃牌，座位必须是下家
func (p *Play) Chow(seat int32, leftTile Tile) bool {
	playData := p.playData[seat]
	if !playData.TryChow(p.curTile, leftTile, p.curSeat) {
		logrus.WithField("seat", seat).Error("player cannot chow")
		return false
	}
	p.onMeld(seat)
	p.game.GetPlayer(seat).AddData("chow", 1)
	p.addHistory(seat, p.curSeat, OperateChow, leftTile, p.curTile)
	p.curSeat = seat
	p.refreshMachi(seat)
	return true
}

func (p *Play) Pon(seat int32) bool {
	playData := p.playData[seat]
	if !playData.canPon(p.curTile) {
		logrus.WithField("seat", seat).Error("player cannot pon")
		return false
	}
	playData.Pon(p.curTile, p.curSeat)
	p.onMeld(seat)
	p.game.GetPlayer(seat).AddData("pon", 1)
	p.addHistory(seat, p.curSeat, OperatePon, p.curTile, TileNull)
	p.curSeat = seat
	p.refreshMachi(seat)
	return true
}

// ZhiKon 明杠他家弃牌
func (p *Play) ZhiKon(seat int32) bool {
	playData := p.playData[seat]
	if !playData.canKon(p.curTile, KonTypeZhi) {
		logrus.WithField("seat", seat).Error("player cannot kon")
		return false
	}
	playData.kon(p.curTile, p.curSeat, KonTypeZhi)
	p.onMeld(seat)
	p.game.GetPlayer(seat).AddData("kon", 1)
	p.addHistory(seat, p.curSeat, OperateKon, p.curTile, TileNull)
	p.curSeat = seat
	p.pendingDora++
	return true
}

// SelfKon 暗杠或加杠，返回杠型
func (p *Play) SelfKon(tile Tile) (KonType, bool) {
	playData := p.playData[p.curSeat]
	konType := KonTypeAn
	if playData.canKon(tile, KonTypeBu) {
		konType = KonTypeBu
	} else if !playData.canKon(tile, KonTypeAn) {
		logrus.WithField("seat", p.curSeat).Error("player cannot self kon")
		return konType, false
	}
	playData.kon(tile, p.curSeat, konType)
	p.breakAllIppatsu()
	p.touchAll()
	p.game.GetPlayer(p.curSeat).AddData("kon", 1)
	p.addHistory(p.curSeat, p.curSeat, OperateKon, tile, TileNull)
	if konType == KonTypeAn {
		// 暗杠立即翻新指示牌
		p.game.sender.SendDoraAck()
	} else {
		p.pendingDora++
	}
	p.refreshMachi(p.curSeat)
	return konType, true
}

// DrawReplacement 岭上补牌
func (p *Play) DrawReplacement() Tile {
	tile := p.dealer.DrawReplacement(p.curSeat)
	if tile != TileNull {
		p.playData[p.curSeat].PutHandTile(tile)
		p.playData[p.curSeat].ClearPassHu()
		p.addHistory(p.curSeat, SeatNull, OperateDraw, tile, TileNull)
		p.lastRinshan = true
		p.afterDraw = true
	}
	return tile
}

// flushPendingDora 明杠的指示牌在打出一张后翻开
func (p *Play) flushPendingDora() {
	if p.pendingDora > 0 {
		p.pendingDora = 0
		p.game.sender.SendDoraAck()
	}
}

func (p *Play) onMeld(seat int32) {
	p.playData[p.curSeat].OnClaimed()
	p.breakAllIppatsu()
	p.touchAll()
	p.afterDraw = false
}

func (p *Play) breakAllIppatsu() {
	for _, pd := range p.playData {
		pd.BreakIppatsu()
	}
}

func (p *Play) touchAll() {
	for _, pd := range p.playData {
		pd.TouchFirstTurn()
	}
}

// Zimo 自摸和牌
func (p *Play) Zimo() *WinResult {
	result := p.huResults[p.curSeat]
	if result == nil {
		return nil
	}
	p.huSeats = append(p.huSeats, p.curSeat)
	p.endReason = EndReasonZimo
	p.game.GetPlayer(p.curSeat).AddData("hu", 1)
	p.addHistory(p.curSeat, SeatNull, OperateHu, p.curTile, TileNull)
	return result
}

// Ron 一至三家荣和，和牌者按放铳家起顺位排序
func (p *Play) Ron(huSeats []int32) {
	p.paoSeat = p.curSeat
	p.playData[p.curSeat].OnClaimed()
	p.endReason = EndReasonRon
	for _, seat := range huSeats {
		p.huSeats = append(p.huSeats, seat)
		p.game.GetPlayer(seat).AddData("hu", 1)
		p.addHistory(seat, p.curSeat, OperateHu, p.curTile, TileNull)
	}
}

// ChankanCandidates 抢杠候选：杠牌在待牌中且未振听，暗杠仅国士。
// 有候选时curTile切换为杠牌，供窗口内荣和使用
func (p *Play) ChankanCandidates(tile Tile, ankan bool) []int32 {
	prev := p.curTile
	p.curTile = tile
	candidates := make([]int32, 0, 3)
	for step := int32(1); step < PlayerCount; step++ {
		seat := GetNextSeat(p.curSeat, step, PlayerCount)
		if result := p.CheckRon(seat, true, ankan); result != nil {
			p.huResults[seat] = result
			candidates = append(candidates, seat)
		}
	}
	if len(candidates) == 0 {
		p.curTile = prev
		p.prevTile = TileNull
	} else {
		p.prevTile = prev
	}
	return candidates
}

// RestoreCurTile 抢杠全员放弃后恢复原弃牌
func (p *Play) RestoreCurTile() {
	if p.prevTile != TileNull {
		p.curTile = p.prevTile
		p.prevTile = TileNull
	}
}

// RonChankan 抢杠荣和，铳家为开杠者，杠不成立
func (p *Play) RonChankan(huSeats []int32) {
	p.paoSeat = p.curSeat
	p.endReason = EndReasonRon
	for _, seat := range huSeats {
		p.huSeats = append(p.huSeats, seat)
		p.game.GetPlayer(seat).AddData("hu", 1)
		p.addHistory(seat, p.curSeat, OperateHu, p.curTile, TileNull)
	}
}

// CheckZimo 自摸检查，含岭上海底标记
func (p *Play) CheckZimo(seat int32) *WinResult {
	playData := p.playData[seat]
	counts := CountTiles(playData.handTiles)
	if !CanWin(counts) {
		return nil
	}
	winTile := playData.handTiles[len(playData.handTiles)-1]
	ctx := p.buildWinContext(seat, winTile, true, false)
	return EvaluateWin(ctx)
}

// CheckRon 荣和检查，振听与无役不可和
func (p *Play) CheckRon(seat int32, chankan, ankanChankan bool) *WinResult {
	playData := p.playData[seat]
	if playData.IsFuriten() {
		return nil
	}
	inMachi := false
	for _, m := range playData.machi {
		if m.SameKind(p.curTile) {
			inMachi = true
			break
		}
	}
	if !inMachi {
		return nil
	}

	counts := CountTiles(playData.handTiles)
	counts[p.curTile.Index34()]++
	if !CanWin(counts) {
		return nil
	}
	if ankanChankan && !IsKokushi(counts) {
		// 抢暗杠仅限国士
		return nil
	}

	ctx := p.buildWinContext(seat, p.curTile, false, chankan)
	ctx.HandTiles = append(ctx.HandTiles, p.curTile)
	return EvaluateWin(ctx)
}

func (p *Play) buildWinContext(seat int32, winTile Tile, zimo, chankan bool) *WinContext {
	playData := p.playData[seat]
	ctx := &WinContext{
		Rule:       p.game.rule,
		Seat:       seat,
		WinTile:    winTile,
		Zimo:       zimo,
		Chankan:    chankan,
		Riichi:     playData.riichi,
		WRiichi:    playData.doubleRiichi,
		Ippatsu:    playData.ippatsu,
		RoundWind:  p.game.RoundWind(),
		SeatWind:   p.game.SeatWind(seat),
		Indicators: p.dealer.DoraIndicators(),
		HandTiles:  append([]Tile(nil), playData.handTiles...),
		Chows:      playData.chowGroups,
		Pons:       playData.ponGroups,
		Kons:       playData.konGroups,
	}
	if playData.riichi {
		ctx.UraInds = p.dealer.UraDoraIndicators()
	}
	if zimo {
		ctx.Rinshan = p.lastRinshan
		ctx.Haitei = p.dealer.GetRestCount() == 0 && !p.lastRinshan
		if playData.IsUntouched() && !p.hasDiscarded(seat) {
			if seat == p.banker {
				ctx.Tenhou = true
			} else {
				ctx.Chiihou = true
			}
		}
	} else {
		ctx.Houtei = p.dealer.GetRestCount() == 0 && !chankan
		ctx.Renhou = playData.IsUntouched() && !p.hasDiscarded(seat)
	}
	return ctx
}

func (p *Play) hasDiscarded(seat int32) bool {
	return len(p.playData[seat].outTiles) > 0
}

// CheckIntegrity 全桌牌张守恒：墙、王牌、手牌、副露与牌河合计每种恰好四张
func (p *Play) CheckIntegrity() bool {
	counts := Counts{}
	addAll := func(tiles []Tile) {
		for _, t := range tiles {
			counts[t.Index34()]++
		}
	}
	addAll(p.dealer.WallTiles())
	addAll(p.dealer.DeadWallTiles())
	for _, playData := range p.playData {
		addAll(playData.handTiles)
		addAll(playData.riverTiles)
		for _, g := range playData.chowGroups {
			addAll(g.Tiles)
		}
		for _, g := range playData.ponGroups {
			addAll(g.Tiles)
		}
		for _, g := range playData.konGroups {
			addAll(g.Tiles)
		}
	}
	for _, c := range counts {
		if c != 4 {
			return false
		}
	}
	return true
}

// IsSuufonRenda 四风连打：首巡无鸣牌且四家首打同一风牌
func (p *Play) IsSuufonRenda() bool {
	discards := make([]Tile, 0, 4)
	for _, action := range p.history {
		if action.Operate == int32(OperateDiscard) {
			discards = append(discards, action.Tile)
		} else if action.Operate != int32(OperateDraw) {
			return false
		}
	}
	if len(discards) != int(PlayerCount) {
		return false
	}
	if !discards[0].IsWind() {
		return false
	}
	for _, t := range discards[1:] {
		if t != discards[0] {
			return false
		}
	}
	return true
}

// IsSuuchaRiichi 四家立直
func (p *Play) IsSuuchaRiichi() bool {
	for _, pd := range p.playData {
		if !pd.riichi {
			return false
		}
	}
	return true
}

// CanNineTerminals 九种九牌：首巡未被打断且幺九种类不少于九
func (p *Play) CanNineTerminals(seat int32) bool {
	playData := p.playData[seat]
	if !playData.IsUntouched() || p.hasDiscarded(seat) {
		return false
	}
	kinds := make(map[Tile]bool)
	for _, t := range playData.handTiles {
		if t.IsYaochu() {
			kinds[t.Kind()] = true
		}
	}
	return len(kinds) >= 9
}

// IsNagashiMangan 流局满贯：全部弃牌为幺九且未被鸣走
func (p *Play) IsNagashiMangan(seat int32) bool {
	playData := p.playData[seat]
	if playData.riverClaimed || len(playData.outTiles) == 0 {
		return false
	}
	for _, t := range playData.outTiles {
		if !t.IsYaochu() {
			return false
		}
	}
	return true
}

func (p *Play) addHistory(seat, from int32, operate int, tile, extra Tile) {
	p.history = append(p.history, Action{
		Seat:    seat,
		From:    from,
		Operate: int32(operate),
		Tile:    tile,
		Extra:   extra,
	})
}

func (p *Play) History() []Action {
	return p.history
}
