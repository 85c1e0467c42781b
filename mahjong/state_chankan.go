package mahjong

import (
	"errors"
	"time"
)

// StateChankan 加杠或暗杠的抢杠窗口，暗杠仅国士可抢
type StateChankan struct {
	*State
	tile       Tile
	candidates []int32
	responses  map[int32]*PlayerReq
}

func NewStateChankan(game *Game, args ...any) IState {
	return &StateChankan{
		State:      NewState(game),
		tile:       args[0].(Tile),
		candidates: args[1].([]int32),
		responses:  make(map[int32]*PlayerReq),
	}
}

func (s *StateChankan) OnEnter() {
	maxTimeout := time.Duration(0)
	opt := &Operates{Value: OperatePass | OperateHu}
	for _, seat := range s.candidates {
		if s.game.GetPlayer(seat).IsTrusted() {
			s.responses[seat] = &PlayerReq{Operate: int32(OperatePass)}
			continue
		}
		timeout := s.decisionTimeout(seat)
		if timeout > maxTimeout {
			maxTimeout = timeout
		}
		s.game.sender.SendRequestAck(seat, opt, timeout)
	}
	if len(s.responses) == len(s.candidates) {
		s.resolve()
		return
	}
	s.AsyncMsgTimer(s.onMsg, maxTimeout, s.onTimeout)
}

func (s *StateChankan) onMsg(seat int32, req *PlayerReq) error {
	if !s.isCandidate(seat) {
		return errors.New("seat cannot rob kan")
	}
	if _, dup := s.responses[seat]; dup {
		return errors.New("duplicate response")
	}
	s.game.GetPlayer(seat).ConsumeExtraThink(s.game.timer.Elapsed())
	if req.Operate != int32(OperateHu) {
		req = &PlayerReq{Operate: int32(OperatePass)}
	}
	s.responses[seat] = req
	if len(s.responses) == len(s.candidates) {
		s.resolve()
	}
	return nil
}

func (s *StateChankan) onTimeout() {
	for _, seat := range s.candidates {
		if _, ok := s.responses[seat]; !ok {
			s.game.GetPlayer(seat).ConsumeExtraThink(s.game.timer.Elapsed())
			s.responses[seat] = &PlayerReq{Operate: int32(OperatePass)}
		}
	}
	s.resolve()
}

func (s *StateChankan) resolve() {
	play := s.game.play
	ronSeats := make([]int32, 0, 3)
	for step := int32(1); step < PlayerCount; step++ {
		seat := GetNextSeat(play.GetCurSeat(), step, PlayerCount)
		if req, ok := s.responses[seat]; ok && req.Operate == int32(OperateHu) {
			ronSeats = append(ronSeats, seat)
		}
	}
	if len(ronSeats) > 0 {
		play.RonChankan(ronSeats)
		s.game.SetNextState(NewStateResult)
		return
	}

	// 全员放弃：见逃记录后落杠
	for _, seat := range s.candidates {
		play.GetPlayData(seat).PassHu(s.tile)
	}
	play.RestoreCurTile()
	s.game.execSelfKon(s.tile)
}

func (s *StateChankan) isCandidate(seat int32) bool {
	for _, c := range s.candidates {
		if c == seat {
			return true
		}
	}
	return false
}
