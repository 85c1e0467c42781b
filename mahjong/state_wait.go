package mahjong

import (
	"errors"
	"time"
)

// StateWait 他家打牌后的鸣牌窗口：收齐全部应答后按荣和>杠碰>吃裁决
type StateWait struct {
	*State
	waits     map[int32]*Operates
	responses map[int32]*PlayerReq
}

func NewStateWait(game *Game, args ...any) IState {
	return &StateWait{
		State:     NewState(game),
		waits:     args[0].(map[int32]*Operates),
		responses: make(map[int32]*PlayerReq),
	}
}

func (s *StateWait) OnEnter() {
	maxTimeout := time.Duration(0)
	for seat, opt := range s.waits {
		if s.game.GetPlayer(seat).IsTrusted() {
			op := int32(OperatePass)
			if opt.IsMustHu {
				op = int32(OperateHu)
			}
			s.responses[seat] = &PlayerReq{Operate: op}
			continue
		}
		timeout := s.decisionTimeout(seat)
		if timeout > maxTimeout {
			maxTimeout = timeout
		}
		s.game.sender.SendRequestAck(seat, opt, timeout)
	}
	if len(s.responses) == len(s.waits) {
		s.resolve()
		return
	}
	s.AsyncMsgTimer(s.onMsg, maxTimeout, s.onTimeout)
}

func (s *StateWait) onMsg(seat int32, req *PlayerReq) error {
	opt, ok := s.waits[seat]
	if !ok {
		return errors.New("seat not waiting")
	}
	if _, dup := s.responses[seat]; dup {
		return errors.New("duplicate response")
	}
	s.game.GetPlayer(seat).ConsumeExtraThink(s.game.timer.Elapsed())

	// 越权或非法操作一律按过处理
	if !opt.HasOperate(req.Operate) || req.Operate == int32(OperatePass) {
		req = &PlayerReq{Operate: int32(OperatePass)}
	}
	s.responses[seat] = req

	if len(s.responses) == len(s.waits) {
		s.resolve()
	}
	return nil
}

func (s *StateWait) onTimeout() {
	for seat := range s.waits {
		if _, ok := s.responses[seat]; !ok {
			s.game.GetPlayer(seat).ConsumeExtraThink(s.game.timer.Elapsed())
			s.responses[seat] = &PlayerReq{Operate: int32(OperatePass)}
		}
	}
	s.resolve()
}

func (s *StateWait) resolve() {
	play := s.game.play

	// 荣和优先，多家皆和
	ronSeats := make([]int32, 0, 3)
	for step := int32(1); step < PlayerCount; step++ {
		seat := GetNextSeat(play.GetCurSeat(), step, PlayerCount)
		if req, ok := s.responses[seat]; ok && req.Operate == int32(OperateHu) {
			ronSeats = append(ronSeats, seat)
		}
	}
	if len(ronSeats) > 0 {
		s.markPassHu(ronSeats)
		play.Ron(ronSeats)
		s.game.SetNextState(NewStateResult)
		return
	}
	s.markPassHu(nil)

	// 荣和未发生，宣言立直成立
	play.FinalizeRiichi()

	for seat, req := range s.responses {
		switch int(req.Operate) {
		case OperateKon:
			if play.ZhiKon(seat) {
				s.game.sender.SendKonAck(seat, play.GetCurTile(), KonTypeZhi)
				s.game.drawReplacement()
				return
			}
		case OperatePon:
			if play.Pon(seat) {
				s.game.sender.SendPonAck(seat)
				s.game.SetNextState(NewStateDiscard)
				return
			}
		}
	}
	for seat, req := range s.responses {
		if int(req.Operate) == OperateChow {
			leftTile := Tile(req.LeftTile)
			if play.Chow(seat, leftTile) {
				s.game.sender.SendChowAck(seat, leftTile)
				s.game.SetNextState(NewStateDiscard)
				return
			}
		}
	}

	s.game.afterDiscardPassed()
}

// markPassHu 可荣和而未和者记见逃，立直者转为终局振听
func (s *StateWait) markPassHu(ronSeats []int32) {
	play := s.game.play
	for seat, opt := range s.waits {
		if !opt.HasOperate(OperateHu) {
			continue
		}
		if CountElement(ronSeats, seat) == 0 {
			play.GetPlayData(seat).PassHu(play.GetCurTile())
		}
	}
}
