package mahjong

import (
	"errors"
	"time"
)

type IState interface {
	OnEnter()
	OnPlayerMsg(seat int32, req *PlayerReq) error
}

// State 游戏状态基类
type State struct {
	game       *Game
	msgHandler func(seat int32, req *PlayerReq) error
}

func NewState(game *Game) *State {
	return &State{game: game}
}

// AsyncMsgTimer 等待玩家消息，每秒广播剩余时间，超时走onTimeout
func (s *State) AsyncMsgTimer(handler func(seat int32, req *PlayerReq) error, timeout time.Duration, onTimeout func()) {
	s.msgHandler = handler
	s.game.timer.ScheduleCountdown(timeout, s.game.sendCountdown, onTimeout)
}

// AsyncTimer 纯延时，不接收消息
func (s *State) AsyncTimer(timeout time.Duration, onTimeout func()) {
	s.msgHandler = nil
	s.game.timer.Schedule(timeout, onTimeout)
}

func (s *State) OnPlayerMsg(seat int32, req *PlayerReq) error {
	if s.msgHandler != nil {
		return s.msgHandler(seat, req)
	}
	return errors.New("msgHandler is nil")
}

// decisionTimeout 基础时限加本家剩余加时
func (s *State) decisionTimeout(seat int32) time.Duration {
	base := time.Duration(s.game.rule.BaseThinkSeconds) * time.Second
	return base + s.game.GetPlayer(seat).ExtraThink()
}
