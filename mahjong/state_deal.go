package mahjong

import "time"

// StateDeal 配牌并开门，动画延时后进入庄家首打
type StateDeal struct {
	*State
}

func NewStateDeal(game *Game, args ...any) IState {
	return &StateDeal{State: NewState(game)}
}

func (s *StateDeal) OnEnter() {
	s.game.play.Deal()
	s.game.sender.SendGameStartAck()
	s.game.sender.SendOpenDoorAck()
	s.AsyncTimer(time.Second, func() {
		s.game.SetNextState(NewStateDiscard)
	})
}
