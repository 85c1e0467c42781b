package mahjong

import "github.com/sirupsen/logrus"

// Scorelator 单局结算器：按原因累计分变，一局只Apply一次
type Scorelator struct {
	game    *Game
	play    *Play
	changes map[ScoreReason][]int64
	total   []int64
}

func NewScorelator(game *Game, play *Play) *Scorelator {
	return &Scorelator{
		game:    game,
		play:    play,
		changes: make(map[ScoreReason][]int64),
		total:   make([]int64, PlayerCount),
	}
}

func (s *Scorelator) Add(reason ScoreReason, deltas []int64) {
	if len(deltas) != int(PlayerCount) {
		logrus.WithField("reason", reason).Error("score deltas size not equal player count")
		return
	}
	if ref, ok := s.changes[reason]; ok {
		for i := range ref {
			ref[i] += deltas[i]
		}
	} else {
		s.changes[reason] = deltas
	}
	for i := range s.total {
		s.total[i] += deltas[i]
	}
}

// Apply 把累计分变落到玩家点数
func (s *Scorelator) Apply() []int64 {
	for i := int32(0); i < PlayerCount; i++ {
		s.game.GetPlayer(i).AddScoreChange(s.total[i])
	}
	return s.total
}

// SettleZimo 自摸结算：三家支付，本场每家一份，供托归和牌者
func (s *Scorelator) SettleZimo() {
	winner := s.play.GetCurSeat()
	result := s.play.GetHuResult(winner)
	dealerPay, otherPay := result.TsumoPoints(winner == s.play.GetBanker())

	deltas := make([]int64, PlayerCount)
	honba := make([]int64, PlayerCount)
	for i := int32(0); i < PlayerCount; i++ {
		if i == winner {
			continue
		}
		pay := int64(otherPay)
		if i == s.play.GetBanker() {
			pay = int64(dealerPay)
		}
		deltas[i] -= pay
		deltas[winner] += pay
		honba[i] -= int64(s.game.honba) * HonbaZimoPoints
		honba[winner] += int64(s.game.honba) * HonbaZimoPoints
	}
	s.Add(ScoreReasonHu, deltas)
	s.Add(ScoreReasonHonba, honba)
	s.settleSticks(winner)
}

// SettleRon 荣和结算：多家和时各收铳家点数，本场与供托头跳
func (s *Scorelator) SettleRon() {
	paoSeat := s.play.PaoSeat()
	atamaHane := SeatNull
	for step := int32(1); step < PlayerCount; step++ {
		seat := GetNextSeat(paoSeat, step, PlayerCount)
		result := s.play.GetHuResult(seat)
		if result == nil || !s.isHuSeat(seat) {
			continue
		}
		if atamaHane == SeatNull {
			atamaHane = seat
		}
		deltas := make([]int64, PlayerCount)
		pay := int64(result.RonPoints(seat == s.play.GetBanker()))
		deltas[paoSeat] -= pay
		deltas[seat] += pay
		s.Add(ScoreReasonHu, deltas)
	}

	if atamaHane == SeatNull {
		return
	}
	honba := make([]int64, PlayerCount)
	honba[paoSeat] -= int64(s.game.honba) * HonbaRonPoints
	honba[atamaHane] += int64(s.game.honba) * HonbaRonPoints
	s.Add(ScoreReasonHonba, honba)
	s.settleSticks(atamaHane)
}

// SettleExhaustive 荒牌流局：流局满贯优先，否则罚符
func (s *Scorelator) SettleExhaustive() {
	nagashi := false
	for i := int32(0); i < PlayerCount; i++ {
		if s.play.IsNagashiMangan(i) {
			s.settleNagashi(i)
			nagashi = true
		}
	}
	if nagashi {
		return
	}

	tenpai := make([]int32, 0, PlayerCount)
	noten := make([]int32, 0, PlayerCount)
	for i := int32(0); i < PlayerCount; i++ {
		if s.play.GetPlayData(i).IsTenpai() {
			tenpai = append(tenpai, i)
		} else {
			noten = append(noten, i)
		}
	}
	if len(tenpai) == 0 || len(noten) == 0 {
		return
	}

	deltas := make([]int64, PlayerCount)
	for _, seat := range tenpai {
		deltas[seat] = TenpaiPenaltyPool / int64(len(tenpai))
	}
	for _, seat := range noten {
		deltas[seat] = -TenpaiPenaltyPool / int64(len(noten))
	}
	s.Add(ScoreReasonTenpai, deltas)
}

// settleNagashi 流局满贯按满贯自摸支付
func (s *Scorelator) settleNagashi(seat int32) {
	deltas := make([]int64, PlayerCount)
	banker := s.play.GetBanker()
	for i := int32(0); i < PlayerCount; i++ {
		if i == seat {
			continue
		}
		pay := int64(2000)
		if seat == banker || i == banker {
			pay = 4000
		}
		deltas[i] -= pay
		deltas[seat] += pay
	}
	s.Add(ScoreReasonNagashi, deltas)
}

// settleSticks 场上供托归和牌者（荣和时头跳）
func (s *Scorelator) settleSticks(seat int32) {
	if s.game.riichiSticks <= 0 {
		return
	}
	deltas := make([]int64, PlayerCount)
	deltas[seat] = int64(s.game.riichiSticks) * RiichiStickPoints
	s.game.riichiSticks = 0
	s.Add(ScoreReasonRiichiStick, deltas)
}

func (s *Scorelator) isHuSeat(seat int32) bool {
	for _, hu := range s.play.HuSeats() {
		if hu == seat {
			return true
		}
	}
	return false
}
