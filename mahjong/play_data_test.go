package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayData(hand string) *mahjong.PlayData {
	data := mahjong.NewPlayData(nil, 0)
	for _, tile := range tiles(hand) {
		data.PutHandTile(tile)
	}
	return data
}

func Test_DiscardAndRivers(t *testing.T) {
	data := newPlayData("123m55s")
	tile := tiles("1m")[0]

	require.True(t, data.Discard(tile))
	assert.Len(t, data.GetHandTiles(), 4)
	assert.Equal(t, []mahjong.Tile{tile}, data.GetOutTiles())
	assert.Equal(t, []mahjong.Tile{tile}, data.GetRiverTiles())

	// 鸣走后仅从展示牌河移除，逻辑牌河保留
	data.OnClaimed()
	assert.Empty(t, data.GetRiverTiles())
	assert.Equal(t, []mahjong.Tile{tile}, data.GetOutTiles())

	assert.False(t, data.Discard(tiles("9p")[0]))
}

func Test_TemporaryFuriten(t *testing.T) {
	data := newPlayData("123m456m789m23s11p")
	data.SetMachi(tiles("14s"))

	require.False(t, data.IsFuriten())

	// 见逃进入同巡振听，摸切后解除
	data.PassHu(tiles("1s")[0])
	assert.True(t, data.IsFuriten())
	data.ClearPassHu()
	assert.False(t, data.IsFuriten())
}

func Test_RiichiFuriten(t *testing.T) {
	data := newPlayData("123m456m789m23s11p")
	data.SetMachi(tiles("14s"))
	data.SetRiichi(false)

	data.PassHu(tiles("4s")[0])
	assert.True(t, data.IsFuriten())
	// 立直后见逃的振听持续到本局结束
	data.ClearPassHu()
	assert.True(t, data.IsFuriten())
}

func Test_DiscardFuriten(t *testing.T) {
	data := newPlayData("123m456m789m23s11p4s")
	require.True(t, data.Discard(tiles("4s")[0]))
	data.SetMachi(tiles("14s"))

	// 舍张在自家牌河即振听
	assert.True(t, data.IsFuriten())
}

func Test_TryChow(t *testing.T) {
	data := newPlayData("34m55s")
	cur := tiles("2m")[0]

	require.True(t, data.TryChow(cur, tiles("2m")[0], 3))
	groups := data.GetChowGroups()
	require.Len(t, groups, 1)
	assert.Equal(t, cur, groups[0].ChowTile)
	assert.Len(t, data.GetHandTiles(), 2)
	assert.False(t, data.IsMenzen())
}

func Test_TryChowKeepsRed(t *testing.T) {
	data := mahjong.NewPlayData(nil, 1)
	data.PutHandTile(mahjong.MakeRedTile(mahjong.ColorCharacter))
	data.PutHandTile(tiles("5m")[0])
	data.PutHandTile(tiles("6m")[0])

	require.True(t, data.TryChow(tiles("4m")[0], tiles("4m")[0], 0))
	// 手里有普通5万时优先保留赤宝
	remain := data.GetHandTiles()
	require.Len(t, remain, 1)
	assert.True(t, remain[0].IsRed())
}

func Test_PonAndKon(t *testing.T) {
	data := newPlayData("555m77s")
	tile := tiles("5m")[0]

	data.Pon(tile, 2)
	require.True(t, data.HasPon(tile))
	assert.Len(t, data.GetHandTiles(), 3)
	assert.False(t, data.IsMenzen())

	group := data.RemovePon(tile)
	assert.Equal(t, tile.Kind(), group.Tile)
	assert.False(t, data.HasPon(tile))
}

func Test_MachiAndTenpai(t *testing.T) {
	data := newPlayData("123m456m789m23s11p")
	assert.False(t, data.IsTenpai())

	data.SetMachi(tiles("14s"))
	assert.True(t, data.IsTenpai())
	assert.Equal(t, tiles("14s"), data.Machi())
}
