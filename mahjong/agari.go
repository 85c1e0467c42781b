package mahjong

// 和牌型判定与拆解，全部基于34种牌的张数数组

type MeldKind int

const (
	MeldRun MeldKind = iota // 顺子，Tile为最小牌
	MeldTriplet             // 刻子
)

type Meld struct {
	Kind MeldKind
	Tile Tile
}

// Decomposition 一个标准型拆解：雀头加四组面子（副露不在其中）
type Decomposition struct {
	Pair  Tile
	Melds []Meld
}

// kokushiKinds 国士无双的十三种幺九牌
var kokushiKinds = []Tile{
	MakeTile(ColorCharacter, 0), MakeTile(ColorCharacter, 8),
	MakeTile(ColorBamboo, 0), MakeTile(ColorBamboo, 8),
	MakeTile(ColorDot, 0), MakeTile(ColorDot, 8),
	TileDong, TileNan, TileXi, TileBei,
	TileBai, TileFa, TileZhong,
}

// CanWin 判断牌型是否和牌：标准型、七对或国士
func CanWin(counts Counts) bool {
	if counts.Total()%3 != 2 {
		return false
	}
	return canFormStandard(counts) || IsSevenPairs(counts) || IsKokushi(counts)
}

// IsSevenPairs 七对子，四张同牌不算两对
func IsSevenPairs(counts Counts) bool {
	pairs := 0
	for _, c := range counts {
		if c != 0 && c != 2 {
			return false
		}
		if c == 2 {
			pairs++
		}
	}
	return pairs == 7
}

// IsKokushi 国士无双：十三种幺九各至少一张，其中一种成对
func IsKokushi(counts Counts) bool {
	if counts.Total() != 14 {
		return false
	}
	pair := false
	for _, kind := range kokushiKinds {
		c := counts[kind.Index34()]
		if c == 0 || c > 2 {
			return false
		}
		if c == 2 {
			pair = true
		}
	}
	return pair
}

// IsKokushi13Wait 国士十三面：和牌前十三种各恰好一张
func IsKokushi13Wait(counts Counts, winTile Tile) bool {
	if !IsKokushi(counts) {
		return false
	}
	return counts[winTile.Index34()] == 2
}

func canFormStandard(counts Counts) bool {
	for i := 0; i < TileKindCount; i++ {
		if counts[i] >= 2 {
			counts[i] -= 2
			if canFormMelds(&counts, 0) {
				return true
			}
			counts[i] += 2
		}
	}
	return false
}

func canFormMelds(counts *Counts, from int) bool {
	i := from
	for i < TileKindCount && counts[i] == 0 {
		i++
	}
	if i == TileKindCount {
		return true
	}
	if counts[i] >= 3 {
		counts[i] -= 3
		if canFormMelds(counts, i) {
			counts[i] += 3
			return true
		}
		counts[i] += 3
	}
	if canTakeRun(counts, i) {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		ok := canFormMelds(counts, i)
		counts[i]++
		counts[i+1]++
		counts[i+2]++
		return ok
	}
	return false
}

// canTakeRun 下标i能否作为顺子最小牌
func canTakeRun(counts *Counts, i int) bool {
	t := TileFromIndex34(i)
	if !t.IsSuit() || t.Point() > 6 {
		return false
	}
	return counts[i+1] > 0 && counts[i+2] > 0
}

// Machi 计算13张（3n+1）手牌的待牌列表，升序
func Machi(counts Counts) []Tile {
	if counts.Total()%3 != 1 {
		return nil
	}
	machi := make([]Tile, 0)
	for i := 0; i < TileKindCount; i++ {
		if counts[i] >= 4 {
			continue
		}
		counts[i]++
		if CanWin(counts) {
			machi = append(machi, TileFromIndex34(i))
		}
		counts[i]--
	}
	return machi
}

// Decompose 枚举标准型的全部拆解，役与符对每个拆解分别取最优
func Decompose(counts Counts) []Decomposition {
	result := make([]Decomposition, 0, 1)
	melds := make([]Meld, 0, 4)
	for i := 0; i < TileKindCount; i++ {
		if counts[i] < 2 {
			continue
		}
		counts[i] -= 2
		enumMelds(&counts, 0, TileFromIndex34(i), &melds, &result)
		counts[i] += 2
	}
	return result
}

func enumMelds(counts *Counts, from int, pair Tile, melds *[]Meld, out *[]Decomposition) {
	i := from
	for i < TileKindCount && counts[i] == 0 {
		i++
	}
	if i == TileKindCount {
		dec := Decomposition{Pair: pair, Melds: make([]Meld, len(*melds))}
		copy(dec.Melds, *melds)
		*out = append(*out, dec)
		return
	}
	// 下标i的全部牌必须由锚定于i的面子消尽：刻子配余数顺子，或纯顺子
	c := counts[i]
	if c >= 3 {
		counts[i] -= 3
		*melds = append(*melds, Meld{Kind: MeldTriplet, Tile: TileFromIndex34(i)})
		if takeRuns(counts, i, c-3, melds) {
			enumMelds(counts, i+1, pair, melds, out)
			restoreRuns(counts, i, c-3, melds)
		}
		*melds = (*melds)[:len(*melds)-1]
		counts[i] += 3
	}
	if takeRuns(counts, i, c, melds) {
		enumMelds(counts, i+1, pair, melds, out)
		restoreRuns(counts, i, c, melds)
	}
}

func takeRuns(counts *Counts, i, r int, melds *[]Meld) bool {
	if r == 0 {
		return true
	}
	t := TileFromIndex34(i)
	if !t.IsSuit() || t.Point() > 6 || counts[i+1] < r || counts[i+2] < r {
		return false
	}
	for k := 0; k < r; k++ {
		counts[i]--
		counts[i+1]--
		counts[i+2]--
		*melds = append(*melds, Meld{Kind: MeldRun, Tile: t})
	}
	return true
}

func restoreRuns(counts *Counts, i, r int, melds *[]Meld) {
	for k := 0; k < r; k++ {
		counts[i]++
		counts[i+1]++
		counts[i+2]++
	}
	*melds = (*melds)[:len(*melds)-r]
}
