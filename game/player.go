package game

const (
	PlayerStatusUnEnter = iota // 玩家状态：未进入
	PlayerStatusEnter          // 玩家状态：进入
	PlayerStatusPlaying        // 玩家状态：游戏中
)

// Player 桌上的玩家连接侧信息
type Player struct {
	id     string
	Seat   int32
	Status int
	online bool
}

func NewPlayer(id string, seat int32) *Player {
	return &Player{
		id:     id,
		Seat:   seat,
		Status: PlayerStatusUnEnter,
		online: true,
	}
}

func (p *Player) ID() string {
	return p.id
}

func (p *Player) IsOnline() bool {
	return p.online
}

func (p *Player) setOnline(online bool) {
	p.online = online
}
