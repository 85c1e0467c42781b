package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
)

func Test_RoundUp100(t *testing.T) {
	assert.Equal(t, int32(0), mahjong.RoundUp100(0))
	assert.Equal(t, int32(100), mahjong.RoundUp100(1))
	assert.Equal(t, int32(1500), mahjong.RoundUp100(1440))
	assert.Equal(t, int32(2000), mahjong.RoundUp100(2000))
}

func Test_PointSchedule(t *testing.T) {
	testCases := []struct {
		base      int32
		ron       int32
		dealerRon int32
	}{
		{240, 1000, 1500},  // 1番30符
		{960, 3900, 5800},  // 3番30符
		{2000, 8000, 12000}, // 满贯
		{3000, 12000, 18000},
		{8000, 32000, 48000}, // 累计役满
	}
	for _, tc := range testCases {
		result := &mahjong.WinResult{BasePoints: tc.base}
		assert.Equal(t, tc.ron, result.RonPoints(false))
		assert.Equal(t, tc.dealerRon, result.RonPoints(true))

		dealerPay, otherPay := result.TsumoPoints(false)
		assert.Equal(t, mahjong.RoundUp100(tc.base*2), dealerPay)
		assert.Equal(t, mahjong.RoundUp100(tc.base), otherPay)
	}
}
