package mahjong

import "time"

// Player 对局内玩家：点数、加时银行与托管状态
type Player struct {
	game        *Game
	seat        int32
	points      int64
	scoreChange int64
	extraThink  time.Duration // 剩余加时，跨局累计消耗
	trustType   ETrustType
	isOffline   bool
	counters    map[string]int64
}

func NewPlayer(game *Game, seat int32) *Player {
	return &Player{
		game:       game,
		seat:       seat,
		points:     game.rule.StartingPoints,
		extraThink: time.Duration(game.rule.ExtraThinkSeconds) * time.Second,
		counters:   make(map[string]int64),
	}
}

func (p *Player) Seat() int32 {
	return p.seat
}

func (p *Player) GetCurScore() int64 {
	return p.points
}

// AddScoreChange 累计本局分变并立即落到总分
func (p *Player) AddScoreChange(score int64) {
	p.scoreChange += score
	p.points += score
}

func (p *Player) GetScoreChange() int64 {
	return p.scoreChange
}

func (p *Player) ResetScoreChange() {
	p.scoreChange = 0
}

// ExtraThink 剩余加时
func (p *Player) ExtraThink() time.Duration {
	return p.extraThink
}

// ConsumeExtraThink 扣减超出基础时限的部分
func (p *Player) ConsumeExtraThink(used time.Duration) {
	base := time.Duration(p.game.rule.BaseThinkSeconds) * time.Second
	if used <= base {
		return
	}
	over := used - base
	if over >= p.extraThink {
		p.extraThink = 0
	} else {
		p.extraThink -= over
	}
}

// AddData 累计对局统计项（pon/kon/riichi/hu等）
func (p *Player) AddData(key string, value int64) {
	p.counters[key] += value
}

func (p *Player) GetData(key string) int64 {
	return p.counters[key]
}

func (p *Player) SetTrust(t ETrustType) {
	p.trustType = t
}

func (p *Player) IsTrusted() bool {
	return p.trustType != TrustTypeUntrust
}

func (p *Player) SetOffline(offline bool) {
	p.isOffline = offline
}

func (p *Player) IsOffline() bool {
	return p.isOffline
}
