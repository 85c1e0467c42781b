package mahjong

import (
	"errors"
	"time"
)

// StateDiscard 自家决策：打牌、立直、自摸、杠或九种九牌
type StateDiscard struct {
	*State
	operates *Operates
}

func NewStateDiscard(game *Game, args ...any) IState {
	return &StateDiscard{State: NewState(game)}
}

func (s *StateDiscard) OnEnter() {
	play := s.game.play
	if !play.CheckIntegrity() {
		s.game.abortFatal()
		return
	}
	seat := play.GetCurSeat()
	s.operates = play.FetchSelfOperates()

	if s.game.GetPlayer(seat).IsTrusted() {
		s.AsyncTimer(time.Second, s.fallback)
		return
	}

	timeout := s.decisionTimeout(seat)
	s.game.sender.SendRequestAck(seat, s.operates, timeout)
	s.AsyncMsgTimer(s.onMsg, timeout, s.onTimeout)
}

func (s *StateDiscard) onMsg(seat int32, req *PlayerReq) error {
	play := s.game.play
	if seat != play.GetCurSeat() {
		return errors.New("not current seat")
	}
	s.game.GetPlayer(seat).ConsumeExtraThink(s.game.timer.Elapsed())

	op := int(req.Operate)
	switch {
	case op == OperateHu && s.operates.HasOperate(OperateHu):
		play.Zimo()
		s.game.SetNextState(NewStateResult)
	case op == OperateAbort && s.operates.HasOperate(OperateAbort):
		play.SetEndReason(EndReasonNineTerminals)
		s.game.SetNextState(NewStateResult)
	case op == OperateKon && s.operates.HasOperate(OperateKon):
		return s.handleKon(Tile(req.Tile))
	case op == OperateRiichi && s.operates.HasOperate(OperateRiichi):
		s.doDiscard(Tile(req.Tile), true)
	case op == OperateDiscard:
		s.doDiscard(Tile(req.Tile), false)
	default:
		return errors.New("invalid operate")
	}
	return nil
}

func (s *StateDiscard) handleKon(tile Tile) error {
	play := s.game.play
	konTiles := play.GetPlayData(play.GetCurSeat()).selfKonTiles()
	valid := false
	for _, t := range konTiles {
		if t.SameKind(tile) {
			valid = true
			break
		}
	}
	if !valid {
		return errors.New("invalid kon tile")
	}

	ankan := !play.GetPlayData(play.GetCurSeat()).canKon(tile, KonTypeBu)
	if candidates := play.ChankanCandidates(tile.Kind(), ankan); len(candidates) > 0 {
		s.game.SetNextState(NewStateChankan, tile.Kind(), candidates)
		return nil
	}
	s.game.execSelfKon(tile.Kind())
	return nil
}

func (s *StateDiscard) doDiscard(tile Tile, riichi bool) {
	play := s.game.play
	if !play.Discard(tile, riichi) {
		play.Discard(TileNull, false)
	}
	s.afterDiscard()
}

func (s *StateDiscard) afterDiscard() {
	play := s.game.play
	riichi := play.riichiSeat == play.GetCurSeat()
	s.game.sender.SendDiscardAck(riichi)

	waits := make(map[int32]*Operates)
	for i := int32(0); i < PlayerCount; i++ {
		if i == play.GetCurSeat() {
			continue
		}
		if opt := play.FetchWaitOperates(i); !opt.Empty() {
			waits[i] = opt
		}
	}
	if len(waits) == 0 {
		s.game.afterDiscardPassed()
		return
	}
	s.game.SetNextState(NewStateWait, waits)
}

// onTimeout 超时转入托管并摸切
func (s *StateDiscard) onTimeout() {
	seat := s.game.play.GetCurSeat()
	player := s.game.GetPlayer(seat)
	player.ConsumeExtraThink(s.game.timer.Elapsed())
	player.SetTrust(TrustTypeTimeout)
	s.fallback()
}

// fallback 托管策略：能和则和，否则摸切
func (s *StateDiscard) fallback() {
	play := s.game.play
	if s.operates == nil {
		s.operates = play.FetchSelfOperates()
	}
	if s.operates.HasOperate(OperateHu) {
		play.Zimo()
		s.game.SetNextState(NewStateResult)
		return
	}
	s.doDiscard(TileNull, false)
}
