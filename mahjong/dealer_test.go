package mahjong_test

import (
	"math/rand"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_AllTiles(t *testing.T) {
	rule := mahjong.NewRule()
	all := mahjong.AllTiles(rule)
	require.Len(t, all, 136)

	reds := 0
	for _, tile := range all {
		if tile.IsRed() {
			reds++
		}
	}
	assert.Equal(t, 3, reds)

	rule.RedFives = 0
	for _, tile := range mahjong.AllTiles(rule) {
		assert.False(t, tile.IsRed())
	}

	rule.RedFives = 4
	reds = 0
	redDots := 0
	for _, tile := range mahjong.AllTiles(rule) {
		if tile.IsRed() {
			reds++
			if tile.Color() == mahjong.ColorDot {
				redDots++
			}
		}
	}
	assert.Equal(t, 4, reds)
	assert.Equal(t, 2, redDots)
}

func Test_DealerInitialize(t *testing.T) {
	rule := mahjong.NewRule()
	dealer := mahjong.NewDealer(rule, rand.New(rand.NewSource(7)))
	dealer.Initialize(6)

	require.Equal(t, int32(136-mahjong.DeadWallCount), dealer.GetRestCount())
	require.Len(t, dealer.DeadWallTiles(), mahjong.DeadWallCount)

	// 洗牌开门不丢牌
	counts := mahjong.CountTiles(dealer.WallTiles())
	for _, tile := range dealer.DeadWallTiles() {
		counts[tile.Index34()]++
	}
	want := mahjong.CountTiles(mahjong.AllTiles(rule))
	assert.Equal(t, want, counts)

	assert.Len(t, dealer.DoraIndicators(), 1)
	assert.Len(t, dealer.UraDoraIndicators(), 1)
}

func Test_DealerDeal(t *testing.T) {
	dealer := mahjong.NewDealer(mahjong.NewRule(), rand.New(rand.NewSource(1)))
	dealer.Initialize(8)

	banker := dealer.Deal(mahjong.TileCountInitBanker)
	assert.Len(t, banker, mahjong.TileCountInitBanker)
	for i := 0; i < 3; i++ {
		assert.Len(t, dealer.Deal(mahjong.TileCountInitNormal), mahjong.TileCountInitNormal)
	}
	assert.Equal(t, int32(136-14-14-13*3), dealer.GetRestCount())
}

func Test_DealerKan(t *testing.T) {
	rule := mahjong.NewRule()
	dealer := mahjong.NewDealer(rule, rand.New(rand.NewSource(3)))
	dealer.Initialize(5)
	rest := dealer.GetRestCount()

	drawn := make([]mahjong.Tile, 0, 3)
	for i := 0; i < 3; i++ {
		tile := dealer.DrawReplacement(int32(i))
		require.True(t, tile.IsValid())
		drawn = append(drawn, tile)
		// 岭上被取走后由牌墙尾张补足
		require.Len(t, dealer.DeadWallTiles(), mahjong.DeadWallCount)
	}
	assert.Equal(t, 3, dealer.KanCount())
	assert.Equal(t, rest-3, dealer.GetRestCount())
	assert.Len(t, dealer.DoraIndicators(), 4)
	assert.Len(t, dealer.UraDoraIndicators(), 4)
	assert.False(t, dealer.IsSuukaikan())

	// 补牌后墙、王牌与已取岭上牌合计仍是整副牌
	counts := mahjong.CountTiles(dealer.WallTiles())
	for _, tile := range dealer.DeadWallTiles() {
		counts[tile.Index34()]++
	}
	for _, tile := range drawn {
		counts[tile.Index34()]++
	}
	assert.Equal(t, mahjong.CountTiles(mahjong.AllTiles(rule)), counts)

	require.True(t, dealer.CanKan(3))
	dealer.DrawReplacement(3)
	assert.True(t, dealer.IsSuukaikan())
	assert.False(t, dealer.CanKan(0))
}

func Test_SuukantsuNotAbort(t *testing.T) {
	dealer := mahjong.NewDealer(mahjong.NewRule(), rand.New(rand.NewSource(9)))
	dealer.Initialize(10)

	for i := 0; i < 4; i++ {
		require.True(t, dealer.CanKan(2))
		dealer.DrawReplacement(2)
	}
	// 一家四杠是四杠子听牌，不散了
	assert.False(t, dealer.IsSuukaikan())
	assert.False(t, dealer.CanKan(2))
}
