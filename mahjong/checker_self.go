package mahjong

// CheckerSelf 摸牌后自家可选操作的检查器
type CheckerSelf interface {
	Check(play *Play, opt *Operates)
}

type CheckerZimo struct{}          // 自摸检查器
type CheckerSelfKon struct{}       // 暗杠加杠检查器
type CheckerRiichi struct{}        // 立直检查器
type CheckerNineTerminals struct{} // 九种九牌检查器

func (c *CheckerZimo) Check(play *Play, opt *Operates) {
	if !play.afterDraw {
		return
	}
	result := play.CheckZimo(play.curSeat)
	if result == nil {
		return
	}
	play.huResults[play.curSeat] = result
	opt.AddOperate(OperateHu)
}

func (c *CheckerSelfKon) Check(play *Play, opt *Operates) {
	if !play.afterDraw || !play.dealer.CanKan(play.curSeat) {
		return
	}
	if len(play.playData[play.curSeat].selfKonTiles()) > 0 {
		opt.AddOperate(OperateKon)
	}
}

func (c *CheckerRiichi) Check(play *Play, opt *Operates) {
	if play.CanRiichi(play.curSeat) {
		opt.AddOperate(OperateRiichi)
	}
}

func (c *CheckerNineTerminals) Check(play *Play, opt *Operates) {
	if play.CanNineTerminals(play.curSeat) {
		opt.AddOperate(OperateAbort)
	}
}
