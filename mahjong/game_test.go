package mahjong_test

import (
	"testing"
	"time"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedEvent struct {
	seat  int32
	event mahjong.Event
}

// recordSink 记录所有下发事件的测试用EventSink
type recordSink struct {
	events []recordedEvent
}

func (s *recordSink) Send(seat int32, event mahjong.Event) {
	s.events = append(s.events, recordedEvent{seat: seat, event: event})
}

func (s *recordSink) countByName(name string) int {
	count := 0
	for _, e := range s.events {
		if e.event.EventName() == name {
			count++
		}
	}
	return count
}

func (s *recordSink) lastByName(name string) *recordedEvent {
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].event.EventName() == name {
			return &s.events[i]
		}
	}
	return nil
}

func Test_NewGameBadProperty(t *testing.T) {
	_, err := mahjong.NewGame(1, &recordSink{}, `{"game_length":9}`, 1)
	assert.Error(t, err)
}

func Test_GameBegin(t *testing.T) {
	sink := &recordSink{}
	game, err := mahjong.NewGame(1, sink, "", 42)
	require.NoError(t, err)

	game.OnGameBegin()

	for seat := int32(0); seat < mahjong.PlayerCount; seat++ {
		assert.Equal(t, int64(25000), game.GetPlayer(seat).GetCurScore())
	}
	assert.Equal(t, 1, sink.countByName("game_start"))
	// 开门消息每家一份，手牌只发给本人
	assert.Equal(t, int(mahjong.PlayerCount), sink.countByName("open_door"))

	play := game.GetPlay()
	require.NotNil(t, play)
	assert.Equal(t, int32(136-14-14-13*3), play.GetDealer().GetRestCount())
}

func Test_GameFirstRequest(t *testing.T) {
	sink := &recordSink{}
	game, err := mahjong.NewGame(1, sink, "", 42)
	require.NoError(t, err)

	game.OnGameBegin()
	require.Zero(t, sink.countByName("request"))

	// 配牌动画延时后庄家收到首个打牌请求
	time.Sleep(1100 * time.Millisecond)
	game.OnGameTimer()

	last := sink.lastByName("request")
	require.NotNil(t, last)
	assert.Equal(t, game.Banker(), last.seat)
	ack := last.event.(*mahjong.RequestAck)
	assert.True(t, ack.Operates&mahjong.OperateDiscard != 0)
}

func Test_CountdownBroadcast(t *testing.T) {
	sink := &recordSink{}
	game, err := mahjong.NewGame(1, sink, "", 42)
	require.NoError(t, err)

	game.OnGameBegin()
	time.Sleep(1100 * time.Millisecond)
	game.OnGameTimer()
	require.NotZero(t, sink.countByName("request"))

	// 决策等待期间每秒广播剩余时间
	time.Sleep(1100 * time.Millisecond)
	game.OnGameTimer()

	last := sink.lastByName("countdown")
	require.NotNil(t, last)
	ack := last.event.(*mahjong.CountdownAck)
	assert.Equal(t, game.Banker(), ack.Seat)
	assert.Positive(t, ack.Remaining)
}

func Test_TileConservationCheck(t *testing.T) {
	sink := &recordSink{}
	game, err := mahjong.NewGame(1, sink, "", 42)
	require.NoError(t, err)

	game.OnGameBegin()
	play := game.GetPlay()
	require.True(t, play.CheckIntegrity())

	// 多出的第五张同种牌破坏守恒
	extra := play.GetPlayData(0).GetHandTiles()[0]
	play.GetPlayData(0).PutHandTile(extra)
	assert.False(t, play.CheckIntegrity())
}
