package mahjong

// StateDraw 当前座位摸牌，墙空则荒牌流局
type StateDraw struct {
	*State
}

func NewStateDraw(game *Game, args ...any) IState {
	return &StateDraw{State: NewState(game)}
}

func (s *StateDraw) OnEnter() {
	play := s.game.play
	if !play.CheckIntegrity() {
		s.game.abortFatal()
		return
	}
	tile := play.Draw()
	if tile == TileNull {
		play.SetEndReason(EndReasonExhaustiveDraw)
		s.game.SetNextState(NewStateResult)
		return
	}
	s.game.sender.SendDrawAck(tile)
	s.game.SetNextState(NewStateDiscard)
}
