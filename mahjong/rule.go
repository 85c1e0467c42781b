package mahjong

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GameLength 对局长度
const (
	GameLengthEast    = 1 // 东风战
	GameLengthHanchan = 2 // 半庄战
)

// Rule 一场游戏内不变的规则配置，局间由大厅层整体替换并在开局时重新校验
type Rule struct {
	GameLength         int   `json:"game_length"`          // 东风/半庄
	BaseThinkSeconds   int   `json:"base_think_seconds"`   // 每次决策基础思考时间
	ExtraThinkSeconds  int   `json:"extra_think_seconds"`  // 每人整场共享的加时银行
	StartingPoints     int64 `json:"starting_points"`      // 配给原点
	MinHan             int32 `json:"min_han"`              // 起和番
	RedFives           int   `json:"red_fives"`            // 赤宝牌张数 0/3/4
	OpenTanyao         bool  `json:"open_tanyao"`          // 食断
	LocalYaku          bool  `json:"local_yaku"`           // 古役开关
	TopPointsThreshold int64 `json:"top_points_threshold"` // 终局头名点数线，不足则延长
}

func NewRule() *Rule {
	return &Rule{
		GameLength:         GameLengthHanchan,
		BaseThinkSeconds:   5,
		ExtraThinkSeconds:  20,
		StartingPoints:     25000,
		MinHan:             1,
		RedFives:           3,
		OpenTanyao:         true,
		LocalYaku:          false,
		TopPointsThreshold: 30000,
	}
}

// Load 在默认值之上覆盖，缺省字段等价于默认值
func (r *Rule) Load(data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, r); err != nil {
		return err
	}
	return r.Validate()
}

func (r *Rule) Marshal() ([]byte, error) {
	return json.Marshal(r)
}

func (r *Rule) String() string {
	data, err := json.Marshal(r)
	if err != nil {
		return ""
	}
	return string(data)
}

func (r *Rule) Validate() error {
	if r.GameLength != GameLengthEast && r.GameLength != GameLengthHanchan {
		return fmt.Errorf("invalid game length: %d", r.GameLength)
	}
	if r.RedFives != 0 && r.RedFives != 3 && r.RedFives != 4 {
		return fmt.Errorf("invalid red five count: %d", r.RedFives)
	}
	if r.BaseThinkSeconds <= 0 || r.ExtraThinkSeconds < 0 {
		return fmt.Errorf("invalid think time: %d+%d", r.BaseThinkSeconds, r.ExtraThinkSeconds)
	}
	if r.MinHan < 1 {
		return fmt.Errorf("invalid min han: %d", r.MinHan)
	}
	if r.StartingPoints <= 0 {
		return fmt.Errorf("invalid starting points: %d", r.StartingPoints)
	}
	return nil
}

// LastWind 终局场风
func (r *Rule) LastWind() Wind {
	if r.GameLength == GameLengthEast {
		return WindEast
	}
	return WindSouth
}

// 点棒与罚符，固定约定
const (
	RiichiStickPoints = 1000
	HonbaRonPoints    = 300 // 荣和每本场
	HonbaZimoPoints   = 100 // 自摸每家每本场
	TenpaiPenaltyPool = 3000
)
