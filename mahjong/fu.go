package mahjong

// 符数计算。七对固定25符，平和自摸20荣和30，其余从副底20逐项累加后进十

const (
	fuBase       = 20
	fuSevenPairs = 25
	fuMenzenRon  = 10
	fuTsumo      = 2
	fuEdgeWait   = 2
)

func calcFu(ctx *WinContext, view handView, yakus []YakuResult) int32 {
	if view.style == HandStyleSevenPairs {
		return fuSevenPairs
	}

	for _, y := range yakus {
		if y.ID == YakuPinfu {
			if ctx.Zimo {
				return fuBase
			}
			return fuBase + fuMenzenRon
		}
	}

	fu := int32(fuBase)
	if ctx.Zimo {
		fu += fuTsumo
	} else if view.menzen {
		fu += fuMenzenRon
	}

	for _, m := range view.melds {
		fu += meldFu(m)
	}
	fu += pairFu(ctx, view.pair)

	switch view.wait {
	case WaitKanchan, WaitPenchan, WaitTanki:
		fu += fuEdgeWait
	}

	return (fu + 9) / 10 * 10
}

func meldFu(m meldInfo) int32 {
	if m.run {
		return 0
	}
	var fu int32 = 2 // 中张明刻
	if m.concealed {
		fu *= 2
	}
	if m.quad {
		fu *= 4
	}
	if m.tile.IsYaochu() {
		fu *= 2
	}
	return fu
}

// pairFu 役牌雀头加符，连风累计
func pairFu(ctx *WinContext, pair Tile) int32 {
	var fu int32
	if pair.IsDragon() {
		fu += 2
	}
	if pair == ctx.RoundWind.Tile() {
		fu += 2
	}
	if pair == ctx.SeatWind.Tile() {
		fu += 2
	}
	return fu
}
