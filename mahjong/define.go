package mahjong

const (
	SeatNull int32 = -1
	SeatAll  int32 = -2
)

const (
	PlayerCount = 4
)

const (
	TileCountInitBanker = 14
	TileCountInitNormal = 13
	DeadWallCount       = 14
	MaxKanCount         = 4
)

type EColor int

const (
	ColorUndefined EColor = -1
	ColorCharacter EColor = iota - 1 // 万
	ColorBamboo                      // 条
	ColorDot                         // 筒
	ColorWind                        // 风牌
	ColorDragon                      // 箭牌
	ColorEnd
	ColorBegin = ColorCharacter
)

var PointCountByColor = [ColorEnd]int{9, 9, 9, 4, 3}
var SEQ_BEGIN_BY_COLOR = [ColorEnd]int{0, 9, 18, 27, 31}

// TileKindCount 全部牌种数（三门数牌+风+箭）
const TileKindCount = 34

// 场风/自风，按起庄顺序
type Wind int32

const (
	WindEast Wind = iota // 东
	WindSouth
	WindWest
	WindNorth
)

func (w Wind) Next() Wind {
	return (w + 1) % 4
}

func (w Wind) Tile() Tile {
	return MakeTile(ColorWind, int(w))
}

type KonType int

const (
	KonTypeNone KonType = -1 + iota
	KonTypeZhi          // 直杠（明杠）
	KonTypeAn           // 暗杠
	KonTypeBu           // 补杠（加杠）
)

type EGroupType int

const (
	GroupTypeNone EGroupType = iota
	GroupTypeChow
	GroupTypePon
	GroupTypeZhiKon
	GroupTypeAnKon
	GroupTypeBuKon
)

// EHandStyle 和牌牌型
type EHandStyle int

const (
	HandStyleNone EHandStyle = iota
	HandStyleNormal
	HandStyleSevenPairs
	HandStyleThirteenOrphans
)

// EndReason 一局的终局方式
type EndReason int32

const (
	EndReasonNone EndReason = iota
	EndReasonZimo
	EndReasonRon
	EndReasonExhaustiveDraw
	EndReasonSuufonRenda   // 四风连打
	EndReasonSuuchaRiichi  // 四家立直
	EndReasonSuukaikan     // 四杠散了
	EndReasonNineTerminals // 九种九牌
	EndReasonFatal         // 桌面异常，强制终局
)

func (r EndReason) IsAbort() bool {
	switch r {
	case EndReasonSuufonRenda, EndReasonSuuchaRiichi, EndReasonSuukaikan, EndReasonNineTerminals:
		return true
	}
	return false
}

type ScoreReason int // 算分原因

const (
	ScoreReasonHu           ScoreReason = iota // 和牌
	ScoreReasonHonba                           // 本场
	ScoreReasonRiichiStick                     // 立直棒
	ScoreReasonTenpai                          // 罚符
	ScoreReasonNagashi                         // 流局满贯
)

type ETrustType int

const (
	TrustTypeUntrust ETrustType = iota
	TrustTypeTimeout
	TrustTypeNetBreak
)

func GetNextSeat(seat, step, seatCount int32) int32 {
	return (seat + step) % seatCount
}

// Action 行牌历史记录
type Action struct {
	Seat    int32
	From    int32
	Operate int32
	Tile    Tile
	Extra   Tile
}
