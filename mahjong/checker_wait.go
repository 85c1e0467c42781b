package mahjong

// CheckerWait 他家打牌后本家可选操作的检查器
type CheckerWait interface {
	Check(play *Play, seat int32, opt *Operates)
}

type CheckerRon struct{}    // 荣和检查器
type CheckerChow struct{}   // 吃牌检查器
type CheckerPon struct{}    // 碰牌检查器
type CheckerZhiKon struct{} // 直杠检查器

func (c *CheckerRon) Check(play *Play, seat int32, opt *Operates) {
	result := play.CheckRon(seat, false, false)
	if result == nil {
		return
	}
	play.huResults[seat] = result
	opt.AddOperate(OperateHu)
	// 立直家见逃即终局振听，托管时强制荣和
	opt.IsMustHu = play.playData[seat].riichi
}

func (c *CheckerChow) Check(play *Play, seat int32, opt *Operates) {
	if play.playData[seat].riichi || play.dealer.GetRestCount() <= 0 {
		return
	}
	if GetNextSeat(play.curSeat, 1, PlayerCount) != seat {
		return
	}
	if play.playData[seat].canChow(play.curTile) {
		opt.AddOperate(OperateChow)
	}
}

func (c *CheckerPon) Check(play *Play, seat int32, opt *Operates) {
	if play.playData[seat].riichi || play.dealer.GetRestCount() <= 0 {
		return
	}
	if play.playData[seat].canPon(play.curTile) {
		opt.AddOperate(OperatePon)
	}
}

func (c *CheckerZhiKon) Check(play *Play, seat int32, opt *Operates) {
	if play.playData[seat].riichi || !play.dealer.CanKan(seat) {
		return
	}
	if play.playData[seat].canKon(play.curTile, KonTypeZhi) {
		opt.AddOperate(OperateKon)
	}
}
