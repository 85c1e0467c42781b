package mahjong

import "time"

// StateResult 单局结算并展示，随后由Game决定连庄或过庄
type StateResult struct {
	*State
}

func NewStateResult(game *Game, args ...any) IState {
	return &StateResult{State: NewState(game)}
}

func (s *StateResult) OnEnter() {
	play := s.game.play
	scorelator := s.game.scorelator

	switch play.EndReason() {
	case EndReasonZimo:
		scorelator.SettleZimo()
	case EndReasonRon:
		scorelator.SettleRon()
	case EndReasonExhaustiveDraw:
		scorelator.SettleExhaustive()
	}
	scorelator.Apply()

	if len(play.HuSeats()) > 0 {
		s.game.sender.SendHuAck()
	}
	s.game.sender.SendResult()

	s.AsyncTimer(2*time.Second, s.game.onRoundEnd)
}
