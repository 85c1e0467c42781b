package mahjong_test

import (
	"strconv"
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
)

// tiles 解析"123m456s789p11z"形式的牌谱记法，z为东南西北白发中
func tiles(s string) []mahjong.Tile {
	result := make([]mahjong.Tile, 0, 14)
	digits := make([]int, 0, 14)
	for _, r := range s {
		if r >= '1' && r <= '9' {
			digits = append(digits, int(r-'1'))
			continue
		}
		for _, d := range digits {
			switch r {
			case 'm':
				result = append(result, mahjong.MakeTile(mahjong.ColorCharacter, d))
			case 's':
				result = append(result, mahjong.MakeTile(mahjong.ColorBamboo, d))
			case 'p':
				result = append(result, mahjong.MakeTile(mahjong.ColorDot, d))
			case 'z':
				if d < 4 {
					result = append(result, mahjong.MakeTile(mahjong.ColorWind, d))
				} else {
					result = append(result, mahjong.MakeTile(mahjong.ColorDragon, d-4))
				}
			}
		}
		digits = digits[:0]
	}
	return result
}

func Test_CanWin(t *testing.T) {
	testCases := []struct {
		hand string
		want bool
	}{
		{"123m456m789m123s11p", true},  // 四顺子一雀头
		{"111m222m333m444m55m", true},  // 四刻子
		{"123m123m123s123s55z", true},  // 混合
		{"11m22s33p44z55z66z77z", true}, // 七对子
		{"19m19s19p1234z5677z", true},  // 国士无双
		{"123m456m789m1234s1p", false}, // 无雀头
		{"1112223334445m5z", false},    // 雀头不成
		{"22334455667788s", true},      // 二杯口也是标准型
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			hand := tiles(tc.hand)
			t.Log(mahjong.TilesName(hand))
			got := mahjong.CanWin(mahjong.CountTiles(hand))
			if got != tc.want {
				t.Errorf("CanWin(%s) = %v, want %v", tc.hand, got, tc.want)
			}
		})
	}
}

func Test_SevenPairs(t *testing.T) {
	if !mahjong.IsSevenPairs(mahjong.CountTiles(tiles("11m22m33s44s55p66z77z"))) {
		t.Error("expected seven pairs")
	}
	// 同种四张不算两对
	if mahjong.IsSevenPairs(mahjong.CountTiles(tiles("1111m22m33s44s55p66z"))) {
		t.Error("four of a kind must not count as two pairs")
	}
}

func Test_Kokushi(t *testing.T) {
	hand := tiles("19m19s19p1234567z1m")
	if !mahjong.IsKokushi(mahjong.CountTiles(hand)) {
		t.Error("expected kokushi")
	}

	thirteenWait := tiles("19m19s19p1234567z")
	thirteenWait = append(thirteenWait, mahjong.MakeTile(mahjong.ColorDragon, 2))
	counts := mahjong.CountTiles(thirteenWait)
	if !mahjong.IsKokushi13Wait(counts, mahjong.MakeTile(mahjong.ColorDragon, 2)) {
		t.Error("expected thirteen-sided wait")
	}

	pairWait := tiles("19m19s19p12345z66z7z")
	if mahjong.IsKokushi13Wait(mahjong.CountTiles(pairWait), tiles("7z")[0]) {
		t.Error("single wait must not be thirteen-sided")
	}
}

func Test_Machi(t *testing.T) {
	testCases := []struct {
		hand string
		want string
	}{
		{"123m456m789m12s11p", "3s"},    // 边张
		{"123m456m789m13s11p", "2s"},    // 嵌张
		{"123m456m789m23s11p", "14s"},   // 两面
		{"123m456m789m123s1p", "1p"},    // 单骑
		{"123m456m789s11p22s", "2s1p"},  // 双碰待两种
		{"1112345678999m", "123456789m"}, // 九莲九面
		{"11m22s33p44z55z66z7z", "7z"},  // 七对单骑
		{"19m19s19p1234567z", "19m19s19p1234567z"}, // 国士十三面
	}

	for i, tc := range testCases {
		t.Run("case"+strconv.FormatInt(int64(i), 10), func(t *testing.T) {
			hand := tiles(tc.hand)
			got := mahjong.Machi(mahjong.CountTiles(hand))
			want := tiles(tc.want)
			if len(got) != len(want) {
				t.Fatalf("Machi(%s) = %s, want %s", tc.hand, mahjong.TilesName(got), mahjong.TilesName(want))
			}
			for j := range got {
				if got[j] != want[j] {
					t.Errorf("Machi(%s)[%d] = %s, want %s", tc.hand, j, got[j].Name(), want[j].Name())
				}
			}
		})
	}
}

func Test_Decompose(t *testing.T) {
	// 三连刻型手牌存在刻子与顺子两种拆法
	decs := mahjong.Decompose(mahjong.CountTiles(tiles("111222333m456s55p")))
	if len(decs) < 2 {
		t.Fatalf("expected multiple decompositions, got %d", len(decs))
	}
	for _, dec := range decs {
		if len(dec.Melds) != 4 {
			t.Errorf("decomposition has %d melds, want 4", len(dec.Melds))
		}
	}
}
