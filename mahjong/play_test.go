package mahjong

import (
	"testing"
)

type nopSink struct{}

func (nopSink) Send(seat int32, event Event) {}

func man(n int) Tile { return MakeTile(ColorCharacter, n-1) }
func sou(n int) Tile { return MakeTile(ColorBamboo, n-1) }
func pin(n int) Tile { return MakeTile(ColorDot, n-1) }

func newStartedGame(t *testing.T) *Game {
	t.Helper()
	g, err := NewGame(1, nopSink{}, "", 7)
	if err != nil {
		t.Fatal(err)
	}
	g.startRound()
	return g
}

func setHand(playData *PlayData, tiles ...Tile) {
	playData.handTiles = append(playData.handTiles[:0], tiles...)
}

// 鸣牌进打牌决策时不是摸牌形态，不得出现自摸与自杠
func Test_NoSelfWinAfterClaim(t *testing.T) {
	g := newStartedGame(t)
	play := g.play
	setHand(play.playData[1],
		man(1), man(2), man(3), man(4), man(5), man(6), man(7), man(8), man(9),
		pin(5), pin(5), sou(7), sou(7))
	play.curSeat = 0
	play.curTile = sou(7)

	if !play.Pon(1) {
		t.Fatal("pon should succeed")
	}
	opt := play.FetchSelfOperates()
	if opt.HasOperate(OperateHu) {
		t.Error("tsumo offered without a drawn tile")
	}
	if opt.HasOperate(OperateKon) {
		t.Error("kan offered without a drawn tile")
	}
	if !opt.HasOperate(OperateDiscard) {
		t.Error("discard must stay available")
	}
}

// 两立直仅限首巡首打，之后的立直是普通立直
func Test_DoubleRiichiOnlyOnFirstDiscard(t *testing.T) {
	g := newStartedGame(t)
	play := g.play

	first := play.playData[2]
	setHand(first,
		man(1), man(2), man(3), man(4), man(5), man(6), man(7), man(8), man(9),
		pin(5), pin(5), sou(7), sou(7), pin(9))
	play.curSeat = 2
	if !play.Discard(pin(9), true) {
		t.Fatal("riichi discard failed")
	}
	if !first.IsDoubleRiichi() {
		t.Error("first discard riichi should be double riichi")
	}

	later := play.playData[0]
	setHand(later,
		man(1), man(2), man(3), man(4), man(5), man(6), man(7), man(8), man(9),
		pin(5), pin(5), sou(7), sou(7), pin(9))
	play.curSeat = 0
	if !play.Discard(pin(9), false) {
		t.Fatal("plain discard failed")
	}
	play.Draw()
	if !play.Discard(TileNull, true) {
		t.Fatal("riichi discard failed")
	}
	if !later.IsRiichi() {
		t.Fatal("riichi should hold")
	}
	if later.IsDoubleRiichi() {
		t.Error("second discard riichi classified as double riichi")
	}
}

// 宣言牌破坏听牌时立直不成立，按普通打牌处理
func Test_RiichiNeedsTenpaiKeepingTile(t *testing.T) {
	g := newStartedGame(t)
	play := g.play
	playData := play.playData[0]
	setHand(playData,
		man(1), man(2), man(3), man(4), man(5), man(6), man(7), man(8), man(9),
		pin(5), pin(5), sou(7), sou(7), sou(9))
	play.curSeat = 0

	if !play.Discard(pin(5), true) {
		t.Fatal("discard failed")
	}
	if playData.IsRiichi() {
		t.Error("riichi held with a tenpai-breaking discard")
	}
	if play.riichiSeat != SeatNull {
		t.Error("riichi declaration recorded")
	}
	if len(playData.GetOutTiles()) != 1 {
		t.Error("tile should still be discarded")
	}
}

// 立直家可荣和时标记强制和牌，托管不落入终局振听
func Test_RiichiRonIsMustHu(t *testing.T) {
	g := newStartedGame(t)
	play := g.play
	playData := play.playData[3]
	setHand(playData,
		man(1), man(2), man(3), man(4), man(5), man(6), man(7), man(8), man(9),
		pin(5), pin(5), sou(7), sou(7))
	playData.riichi = true
	play.refreshMachi(3)
	play.curSeat = 0
	play.curTile = sou(7)

	opt := play.FetchWaitOperates(3)
	if !opt.HasOperate(OperateHu) {
		t.Fatal("ron should be offered")
	}
	if !opt.IsMustHu {
		t.Error("riichi seat should be marked must-win")
	}
}

// 终局时场上剩余供托归头名
func Test_LeftoverSticksAwardedToTop(t *testing.T) {
	g := newStartedGame(t)
	g.riichiSticks = 2
	g.players[2].AddScoreChange(5000)

	g.OnGameOver()

	if got := g.players[2].GetCurScore(); got != 32000 {
		t.Errorf("top score = %d, want 32000", got)
	}
	if g.riichiSticks != 0 {
		t.Error("leftover sticks not cleared")
	}
}
