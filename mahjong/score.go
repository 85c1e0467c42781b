package mahjong

// WinResult 一次和牌的最终计算结果
type WinResult struct {
	Seat       int32
	WinTile    Tile
	Zimo       bool
	Style      EHandStyle
	Yakus      []YakuResult
	Han        int32
	Fu         int32
	Yakuman    int32 // 役满倍数，0为普通和牌
	BasePoints int32
}

// EvaluateWin 对全部拆解与和牌张落点取最高得点，同分取先枚举者。
// 无役返回nil
func EvaluateWin(ctx *WinContext) *WinResult {
	views := buildViews(ctx)
	dora := countDora(ctx)

	var best *WinResult
	for _, view := range views {
		result := evalView(ctx, view, dora)
		if result == nil {
			continue
		}
		if best == nil || result.betterThan(best) {
			best = result
		}
	}
	return best
}

func evalView(ctx *WinContext, view handView, dora []YakuResult) *WinResult {
	result := &WinResult{
		Seat:    ctx.Seat,
		WinTile: ctx.WinTile,
		Zimo:    ctx.Zimo,
		Style:   view.style,
	}

	if yakumans := detectYakuman(ctx, view); len(yakumans) > 0 {
		result.Yakus = yakumans
		for _, y := range yakumans {
			result.Han += y.Han
			result.Yakuman += y.Han / 13
		}
		result.BasePoints = 8000 * result.Yakuman
		return result
	}

	yakus := detectYaku(ctx, view)
	if len(yakus) == 0 {
		return nil
	}
	yakus = append(yakus, dora...)
	for _, y := range yakus {
		result.Han += y.Han
	}
	if result.Han < ctx.Rule.MinHan {
		return nil
	}
	result.Yakus = yakus
	result.Fu = calcFu(ctx, view, yakus)
	result.BasePoints = basePoints(result.Han, result.Fu)
	return result
}

func (r *WinResult) betterThan(o *WinResult) bool {
	if r.BasePoints != o.BasePoints {
		return r.BasePoints > o.BasePoints
	}
	if r.Han != o.Han {
		return r.Han > o.Han
	}
	return r.Fu > o.Fu
}

// basePoints 基本点：符数×2^(2+番)，满贯起封顶
func basePoints(han, fu int32) int32 {
	switch {
	case han >= 13: // 累计役满
		return 8000
	case han >= 11: // 三倍满
		return 6000
	case han >= 8: // 倍满
		return 4000
	case han >= 6: // 跳满
		return 3000
	}
	base := fu * (1 << (2 + han))
	if han == 5 || base > 2000 {
		return 2000 // 满贯
	}
	return base
}

func RoundUp100(points int32) int32 {
	return (points + 99) / 100 * 100
}

// RonPoints 荣和放铳者支付总额，不含本场
func (r *WinResult) RonPoints(isDealer bool) int32 {
	if isDealer {
		return RoundUp100(r.BasePoints * 6)
	}
	return RoundUp100(r.BasePoints * 4)
}

// TsumoPoints 自摸各家支付额：庄家和牌三家均付，闲家和牌庄付双倍
func (r *WinResult) TsumoPoints(winnerIsDealer bool) (dealerPay, otherPay int32) {
	if winnerIsDealer {
		return 0, RoundUp100(r.BasePoints * 2)
	}
	return RoundUp100(r.BasePoints * 2), RoundUp100(r.BasePoints)
}
