package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hasYaku(result *mahjong.WinResult, id mahjong.YakuID) bool {
	for _, y := range result.Yakus {
		if y.ID == id {
			return true
		}
	}
	return false
}

func Test_PinfuTsumo(t *testing.T) {
	ctx := &mahjong.WinContext{
		Rule:       mahjong.NewRule(),
		Seat:       1,
		WinTile:    tiles("4s")[0],
		Zimo:       true,
		RoundWind:  mahjong.WindEast,
		SeatWind:   mahjong.WindSouth,
		Indicators: tiles("1z"),
		HandTiles:  tiles("234m567m234s678p55s"),
	}

	result := mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.True(t, hasYaku(result, mahjong.YakuPinfu))
	assert.True(t, hasYaku(result, mahjong.YakuMenzenTsumo))
	assert.Equal(t, int32(2), result.Han)
	assert.Equal(t, int32(20), result.Fu)

	dealerPay, otherPay := result.TsumoPoints(false)
	assert.Equal(t, int32(700), dealerPay)
	assert.Equal(t, int32(400), otherPay)
}

func Test_ChiitoiRon(t *testing.T) {
	ctx := &mahjong.WinContext{
		Rule:       mahjong.NewRule(),
		Seat:       2,
		WinTile:    tiles("9p")[0],
		RoundWind:  mahjong.WindEast,
		SeatWind:   mahjong.WindWest,
		Indicators: tiles("2p"),
		HandTiles:  tiles("11m33m55s77s99p22z44z"),
	}

	result := mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.Equal(t, mahjong.HandStyleSevenPairs, result.Style)
	assert.True(t, hasYaku(result, mahjong.YakuChiitoitsu))
	assert.Equal(t, int32(2), result.Han)
	assert.Equal(t, int32(25), result.Fu)
	assert.Equal(t, int32(1600), result.RonPoints(false))
}

func Test_SuuankouTanki(t *testing.T) {
	ctx := &mahjong.WinContext{
		Rule:       mahjong.NewRule(),
		Seat:       0,
		WinTile:    tiles("5m")[0],
		Zimo:       true,
		RoundWind:  mahjong.WindEast,
		SeatWind:   mahjong.WindEast,
		Indicators: tiles("1z"),
		HandTiles:  tiles("111m222s333p444z55m"),
	}

	result := mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.True(t, hasYaku(result, mahjong.YakuSuuankouTanki))
	assert.Equal(t, int32(2), result.Yakuman)
	assert.Equal(t, int32(16000), result.BasePoints)

	_, otherPay := result.TsumoPoints(true)
	assert.Equal(t, int32(32000), otherPay)
}

func Test_Kokushi13Wait(t *testing.T) {
	hand := tiles("19m19s19p1234567z")
	hand = append(hand, tiles("1m")...)
	ctx := &mahjong.WinContext{
		Rule:       mahjong.NewRule(),
		Seat:       3,
		WinTile:    tiles("1m")[0],
		RoundWind:  mahjong.WindEast,
		SeatWind:   mahjong.WindNorth,
		Indicators: tiles("5s"),
		HandTiles:  hand,
	}

	result := mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.Equal(t, mahjong.HandStyleThirteenOrphans, result.Style)
	assert.True(t, hasYaku(result, mahjong.YakuKokushi13))
	assert.Equal(t, int32(2), result.Yakuman)
	assert.Equal(t, int32(64000), result.RonPoints(false))
}

func Test_RiichiDoraMangan(t *testing.T) {
	hand := tiles("345m45m567s678p11z")
	hand = append(hand, mahjong.MakeRedTile(mahjong.ColorCharacter))
	ctx := &mahjong.WinContext{
		Rule:       mahjong.NewRule(),
		Seat:       1,
		WinTile:    tiles("3m")[0],
		Riichi:     true,
		RoundWind:  mahjong.WindEast,
		SeatWind:   mahjong.WindSouth,
		Indicators: tiles("4m"),
		UraInds:    tiles("1z"),
		HandTiles:  hand,
	}

	result := mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.True(t, hasYaku(result, mahjong.YakuRiichi))
	assert.True(t, hasYaku(result, mahjong.YakuIipeiko))
	assert.True(t, hasYaku(result, mahjong.YakuDora))
	assert.True(t, hasYaku(result, mahjong.YakuRedDora))
	assert.Equal(t, int32(5), result.Han)
	assert.Equal(t, int32(2000), result.BasePoints)
	assert.Equal(t, int32(8000), result.RonPoints(false))
}

func Test_OpenTanyao(t *testing.T) {
	chow := mahjong.ChowGroup{
		ChowTile: tiles("2m")[0],
		From:     2,
		LeftTile: tiles("2m")[0],
		Tiles:    tiles("234m"),
	}
	ctx := &mahjong.WinContext{
		Rule:       mahjong.NewRule(),
		Seat:       1,
		WinTile:    tiles("4m")[0],
		RoundWind:  mahjong.WindEast,
		SeatWind:   mahjong.WindSouth,
		Indicators: tiles("1z"),
		HandTiles:  tiles("456m678s234p88s"),
		Chows:      []mahjong.ChowGroup{chow},
	}

	result := mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.True(t, hasYaku(result, mahjong.YakuTanyao))
	assert.Equal(t, int32(1), result.Han)

	// 禁食断时同一手牌无役
	ctx.Rule.OpenTanyao = false
	assert.Nil(t, mahjong.EvaluateWin(ctx))
}

func Test_YakuhaiAndHonitsu(t *testing.T) {
	ctx := &mahjong.WinContext{
		Rule:       mahjong.NewRule(),
		Seat:       0,
		WinTile:    tiles("9s")[0],
		RoundWind:  mahjong.WindEast,
		SeatWind:   mahjong.WindEast,
		Indicators: tiles("2z"),
		HandTiles:  tiles("123s456s789s555z11z"),
	}

	result := mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.True(t, hasYaku(result, mahjong.YakuHaku))
	assert.True(t, hasYaku(result, mahjong.YakuHonitsu))
	assert.False(t, hasYaku(result, mahjong.YakuChinitsu))
}

func Test_DoubleWindPair(t *testing.T) {
	// 连风雀头符数重复计算
	ctx := &mahjong.WinContext{
		Rule:       mahjong.NewRule(),
		Seat:       0,
		WinTile:    tiles("6p")[0],
		Zimo:       true,
		RoundWind:  mahjong.WindEast,
		SeatWind:   mahjong.WindEast,
		Indicators: tiles("9s"),
		HandTiles:  tiles("11z234m567s555p456p"),
	}

	result := mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.True(t, hasYaku(result, mahjong.YakuMenzenTsumo))
	// 20 + 自摸2 + 暗刻(中张)4 + 连风雀头4 = 30符
	assert.Equal(t, int32(30), result.Fu)
}

func Test_RenhouLocalYaku(t *testing.T) {
	rule := mahjong.NewRule()
	rule.LocalYaku = true
	ctx := &mahjong.WinContext{
		Rule:       rule,
		Seat:       2,
		WinTile:    tiles("4s")[0],
		Renhou:     true,
		RoundWind:  mahjong.WindEast,
		SeatWind:   mahjong.WindWest,
		Indicators: tiles("1z"),
		HandTiles:  tiles("234m567m234s678p55s"),
	}

	result := mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.True(t, hasYaku(result, mahjong.YakuRenhou))
	assert.Equal(t, int32(1), result.Yakuman)
	assert.Equal(t, int32(8000), result.BasePoints)

	// 古役未开启时按普通役计
	ctx.Rule = mahjong.NewRule()
	result = mahjong.EvaluateWin(ctx)
	require.NotNil(t, result)
	assert.False(t, hasYaku(result, mahjong.YakuRenhou))
	assert.Zero(t, result.Yakuman)
	assert.True(t, hasYaku(result, mahjong.YakuPinfu))
}
