package mahjong

import "time"

// Event 所有下行事件的公共接口
type Event interface {
	EventName() string
}

// EventSink 表格层实现的事件出口，seat为SeatAll时广播
type EventSink interface {
	Send(seat int32, event Event)
}

type Sender struct {
	game *Game
	play *Play
}

func NewSender(game *Game, play *Play) *Sender {
	return &Sender{game: game, play: play}
}

func (s *Sender) send(event Event, seat int32) {
	s.game.sink.Send(seat, event)
}

func (s *Sender) SendGameStartAck() {
	s.send(&GameStartAck{
		Banker:      s.play.banker,
		RoundWind:   int32(s.game.roundWind),
		RoundNumber: s.game.roundNumber,
		Honba:       s.game.honba,
		RiichiStick: s.game.riichiSticks,
		TileCount:   s.play.dealer.GetRestCount(),
		Scores:      s.play.GetCurScores(),
		Property:    s.game.rule.String(),
	}, SeatAll)
}

func (s *Sender) SendOpenDoorAck() {
	dora := TilesInt32(s.play.dealer.DoraIndicators())
	for i := int32(0); i < PlayerCount; i++ {
		s.send(&OpenDoorAck{
			Seat:  i,
			Tiles: s.play.GetPlayData(i).GetHandTilesInt32(),
			Dora:  dora,
		}, i)
	}
}

// SendRequestAck 下发决策询问，超时为基础时限加本家剩余加时
func (s *Sender) SendRequestAck(seat int32, operates *Operates, timeout time.Duration) {
	s.send(&RequestAck{
		Seat:      seat,
		Operates:  operates.Value,
		RequestID: s.game.GetRequestID(seat),
		Timeout:   int32(timeout / time.Millisecond),
		Tile:      s.play.GetCurTile().ToInt32(),
	}, seat)
}

// SendDrawAck 摸牌只对本家明牌
func (s *Sender) SendDrawAck(tile Tile) {
	ack := &DrawAck{
		Seat:      s.play.GetCurSeat(),
		Tile:      tile.ToInt32(),
		RestCount: s.play.dealer.GetRestCount(),
	}
	s.send(ack, ack.Seat)
	ack.Tile = TileNull.ToInt32()
	for i := int32(0); i < PlayerCount; i++ {
		if i != ack.Seat {
			s.send(ack, i)
		}
	}
}

func (s *Sender) SendDiscardAck(riichi bool) {
	s.send(&DiscardAck{
		Seat:   s.play.GetCurSeat(),
		Tile:   s.play.GetCurTile().ToInt32(),
		Riichi: riichi,
	}, SeatAll)
}

func (s *Sender) SendChowAck(seat int32, leftTile Tile) {
	s.send(&ChowAck{
		Seat:     seat,
		From:     s.play.GetCurSeat(),
		Tile:     s.play.GetCurTile().ToInt32(),
		LeftTile: leftTile.ToInt32(),
	}, SeatAll)
}

func (s *Sender) SendPonAck(seat int32) {
	s.send(&PonAck{
		Seat: seat,
		From: s.play.GetCurSeat(),
		Tile: s.play.GetCurTile().ToInt32(),
	}, SeatAll)
}

func (s *Sender) SendKonAck(seat int32, tile Tile, konType KonType) {
	s.send(&KonAck{
		Seat:    seat,
		From:    s.play.GetCurSeat(),
		Tile:    tile.ToInt32(),
		KonType: int32(konType),
	}, SeatAll)
}

// SendCountdownAck 决策剩余秒数逐秒广播
func (s *Sender) SendCountdownAck(remaining int32) {
	s.send(&CountdownAck{
		Seat:      s.play.GetCurSeat(),
		Remaining: remaining,
	}, SeatAll)
}

func (s *Sender) SendDoraAck() {
	s.send(&DoraAck{
		Indicators: TilesInt32(s.play.dealer.DoraIndicators()),
	}, SeatAll)
}

func (s *Sender) SendRiichiAck(seat int32, double bool) {
	s.send(&RiichiAck{
		Seat:   seat,
		Double: double,
		Sticks: s.game.riichiSticks,
	}, SeatAll)
}

func (s *Sender) SendHuAck() {
	ack := &HuAck{
		PaoSeat: s.play.PaoSeat(),
		Zimo:    s.play.EndReason() == EndReasonZimo,
		HuData:  make([]*HuData, 0, len(s.play.HuSeats())),
	}
	for _, seat := range s.play.HuSeats() {
		result := s.play.GetHuResult(seat)
		data := &HuData{
			Seat:    seat,
			Tile:    result.WinTile.ToInt32(),
			Han:     result.Han,
			Fu:      result.Fu,
			Yakuman: result.Yakuman,
			Yakus:   make([]YakuItem, 0, len(result.Yakus)),
		}
		for _, y := range result.Yakus {
			data.Yakus = append(data.Yakus, YakuItem{Name: y.ID.Name(), Han: y.Han})
		}
		if s.play.GetPlayData(seat).IsRiichi() {
			data.UraInds = TilesInt32(s.play.dealer.UraDoraIndicators())
		}
		ack.HuData = append(ack.HuData, data)
	}
	s.send(ack, SeatAll)
}

func (s *Sender) SendResult() {
	ack := &ResultAck{
		EndReason:     int32(s.play.EndReason()),
		Honba:         s.game.honba,
		RiichiSticks:  s.game.riichiSticks,
		PlayerResults: make([]*PlayerResult, PlayerCount),
	}
	for i := int32(0); i < PlayerCount; i++ {
		player := s.game.GetPlayer(i)
		ack.PlayerResults[i] = &PlayerResult{
			Seat:     i,
			CurScore: player.GetCurScore(),
			WinScore: player.GetScoreChange(),
			Tenpai:   s.play.GetPlayData(i).IsTenpai(),
			Tiles:    s.play.GetPlayData(i).GetHandTilesInt32(),
		}
	}
	s.send(ack, SeatAll)
}

func (s *Sender) SendGameResult(seats []int32, scores []int64) {
	s.send(&GameResult{Seats: seats, Scores: scores}, SeatAll)
}
