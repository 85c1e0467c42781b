package mahjong

// 对外事件与玩家请求，表格层以JSON封包收发

// PlayerReq 玩家操作请求，RequestID须与最近一次询问一致
type PlayerReq struct {
	RequestID int32 `json:"request_id"`
	Operate   int32 `json:"operate"`
	Tile      int32 `json:"tile,omitempty"`
	LeftTile  int32 `json:"left_tile,omitempty"` // 吃牌时顺子最小牌
	Riichi    bool  `json:"riichi,omitempty"`    // 打牌同时立直宣言
}

type GameStartAck struct {
	Banker      int32   `json:"banker"`
	RoundWind   int32   `json:"round_wind"`
	RoundNumber int32   `json:"round_number"`
	Honba       int32   `json:"honba"`
	RiichiStick int32   `json:"riichi_sticks"`
	TileCount   int32   `json:"tile_count"`
	Scores      []int64 `json:"scores"`
	Property    string  `json:"property"`
}

func (*GameStartAck) EventName() string { return "game_start" }

type OpenDoorAck struct {
	Seat  int32   `json:"seat"`
	Tiles []int32 `json:"tiles"`
	Dora  []int32 `json:"dora"`
}

func (*OpenDoorAck) EventName() string { return "open_door" }

type RequestAck struct {
	Seat      int32 `json:"seat"`
	Operates  int32 `json:"operates"`
	RequestID int32 `json:"request_id"`
	Timeout   int32 `json:"timeout_ms"`
	Tile      int32 `json:"tile,omitempty"` // 待决牌
}

func (*RequestAck) EventName() string { return "request" }

type DrawAck struct {
	Seat      int32 `json:"seat"`
	Tile      int32 `json:"tile"`
	RestCount int32 `json:"rest_count"`
}

func (*DrawAck) EventName() string { return "draw" }

type DiscardAck struct {
	Seat   int32 `json:"seat"`
	Tile   int32 `json:"tile"`
	Riichi bool  `json:"riichi,omitempty"`
}

func (*DiscardAck) EventName() string { return "discard" }

type ChowAck struct {
	Seat     int32 `json:"seat"`
	From     int32 `json:"from"`
	Tile     int32 `json:"tile"`
	LeftTile int32 `json:"left_tile"`
}

func (*ChowAck) EventName() string { return "chow" }

type PonAck struct {
	Seat int32 `json:"seat"`
	From int32 `json:"from"`
	Tile int32 `json:"tile"`
}

func (*PonAck) EventName() string { return "pon" }

type KonAck struct {
	Seat    int32 `json:"seat"`
	From    int32 `json:"from"`
	Tile    int32 `json:"tile"`
	KonType int32 `json:"kon_type"`
}

func (*KonAck) EventName() string { return "kon" }

// CountdownAck 当前决策座位的剩余思考秒数
type CountdownAck struct {
	Seat      int32 `json:"seat"`
	Remaining int32 `json:"remaining"`
}

func (*CountdownAck) EventName() string { return "countdown" }

type DoraAck struct {
	Indicators []int32 `json:"indicators"`
}

func (*DoraAck) EventName() string { return "dora" }

type RiichiAck struct {
	Seat   int32 `json:"seat"`
	Double bool  `json:"double,omitempty"`
	Sticks int32 `json:"sticks"`
}

func (*RiichiAck) EventName() string { return "riichi" }

// HuData 单个和牌者的结算明细
type HuData struct {
	Seat    int32      `json:"seat"`
	Tile    int32      `json:"tile"`
	Han     int32      `json:"han"`
	Fu      int32      `json:"fu"`
	Yakuman int32      `json:"yakuman,omitempty"`
	Yakus   []YakuItem `json:"yakus"`
	UraInds []int32    `json:"ura_indicators,omitempty"`
}

type YakuItem struct {
	Name string `json:"name"`
	Han  int32  `json:"han"`
}

type HuAck struct {
	PaoSeat int32     `json:"pao_seat"` // 自摸为-1
	Zimo    bool      `json:"zimo"`
	HuData  []*HuData `json:"hu_data"`
}

func (*HuAck) EventName() string { return "hu" }

// PlayerResult 单局单家结果
type PlayerResult struct {
	Seat     int32   `json:"seat"`
	CurScore int64   `json:"cur_score"`
	WinScore int64   `json:"win_score"`
	Tenpai   bool    `json:"tenpai,omitempty"`
	Tiles    []int32 `json:"tiles,omitempty"`
}

type ResultAck struct {
	EndReason     int32           `json:"end_reason"`
	Honba         int32           `json:"honba"`
	RiichiSticks  int32           `json:"riichi_sticks"`
	PlayerResults []*PlayerResult `json:"player_results"`
}

func (*ResultAck) EventName() string { return "result" }

// GameResult 整场终局排名
type GameResult struct {
	Seats  []int32 `json:"seats"` // 按名次排列的座位
	Scores []int64 `json:"scores"`
}

func (*GameResult) EventName() string { return "game_result" }
