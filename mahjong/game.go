package mahjong

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

// Game 一场游戏：跨局状态与状态机驱动
type Game struct {
	id           int32
	sink         EventSink
	timer        *Timer
	CurState     IState
	nextState    IState
	rule         *Rule
	rng          *rand.Rand
	players      []*Player
	play         *Play
	sender       *Sender
	scorelator   *Scorelator
	increasedID  int32
	requestIDs   []int32
	banker       int32
	roundWind    Wind
	roundNumber  int32 // 当前风圈内第几局，1起
	honba        int32
	riichiSticks int32
	overtime     bool // 规定局数打完未达标，延长赛
	over         bool
}

func NewGame(id int32, sink EventSink, property string, seed int64) (*Game, error) {
	rule := NewRule()
	if err := rule.Load([]byte(property)); err != nil {
		return nil, err
	}

	g := &Game{
		id:          id,
		sink:        sink,
		timer:       NewTimer(),
		rule:        rule,
		rng:         rand.New(rand.NewSource(seed)),
		players:     make([]*Player, PlayerCount),
		increasedID: 1,
		requestIDs:  make([]int32, PlayerCount),
		roundWind:   WindEast,
		roundNumber: 1,
	}
	for i := int32(0); i < PlayerCount; i++ {
		g.players[i] = NewPlayer(g, i)
	}
	return g, nil
}

func (g *Game) OnGameBegin() {
	g.startRound()
	g.enterNextState()
}

// OnPlayerMsg 玩家消息入口，请求ID不符直接丢弃
func (g *Game) OnPlayerMsg(seat int32, data []byte) error {
	if !g.IsValidSeat(seat) {
		return errors.New("invalid seat")
	}
	req := &PlayerReq{}
	if err := json.Unmarshal(data, req); err != nil {
		return err
	}
	if !g.IsRequestID(seat, req.RequestID) {
		return errors.New("stale request id")
	}
	if g.CurState == nil {
		return errors.New("game not running")
	}

	g.GetPlayer(seat).SetTrust(TrustTypeUntrust)
	if err := g.CurState.OnPlayerMsg(seat, req); err != nil {
		return err
	}
	g.enterNextState()
	return nil
}

// OnGameTimer 表格层每秒驱动一次
func (g *Game) OnGameTimer() {
	g.timer.OnTick()
	g.enterNextState()
}

func (g *Game) OnNetChange(seat int32, offline bool) {
	player := g.GetPlayer(seat)
	if player == nil {
		return
	}
	player.SetOffline(offline)
	if offline {
		player.SetTrust(TrustTypeNetBreak)
	} else {
		player.SetTrust(TrustTypeUntrust)
	}
}

func (g *Game) IsValidSeat(seat int32) bool {
	return seat >= 0 && seat < PlayerCount
}

func (g *Game) GetPlayer(seat int32) *Player {
	if g.IsValidSeat(seat) {
		return g.players[seat]
	}
	return nil
}

func (g *Game) GetRule() *Rule {
	return g.rule
}

func (g *Game) GetPlay() *Play {
	return g.play
}

func (g *Game) Banker() int32 {
	return g.banker
}

func (g *Game) RoundWind() Wind {
	return g.roundWind
}

// SeatWind 自风，庄家为东
func (g *Game) SeatWind(seat int32) Wind {
	return Wind((seat - g.banker + PlayerCount) % PlayerCount)
}

func (g *Game) AddRiichiStick() {
	g.riichiSticks++
}

func (g *Game) sendCountdown(remaining int32) {
	g.sender.SendCountdownAck(remaining)
}

func (g *Game) IsOver() bool {
	return g.over
}

func (g *Game) SetNextState(newFn func(*Game, ...any) IState, args ...any) {
	g.nextState = newFn(g, args...)
}

func (g *Game) enterNextState() {
	for g.nextState != nil {
		g.CurState = g.nextState
		g.nextState = nil
		g.timer.Cancel()
		g.CurState.OnEnter()
	}
}

func (g *Game) GetRequestID(seat int32) int32 {
	g.increasedID++
	if g.IsValidSeat(seat) {
		g.requestIDs[seat] = g.increasedID
	} else {
		for i := range g.requestIDs {
			g.requestIDs[i] = g.increasedID
		}
	}
	return g.increasedID
}

func (g *Game) IsRequestID(seat, id int32) bool {
	if !g.IsValidSeat(seat) {
		return false
	}
	return g.requestIDs[seat] == id
}

func (g *Game) startRound() {
	for _, player := range g.players {
		player.ResetScoreChange()
	}
	g.play = NewPlay(g)
	g.play.RegisterSelfCheck(&CheckerZimo{}, &CheckerSelfKon{}, &CheckerRiichi{}, &CheckerNineTerminals{})
	g.play.RegisterWaitCheck(&CheckerRon{}, &CheckerChow{}, &CheckerPon{}, &CheckerZhiKon{})
	g.play.Initialize()
	g.sender = NewSender(g, g.play)
	g.scorelator = NewScorelator(g, g.play)
	g.SetNextState(NewStateDeal)
}

// afterDiscardPassed 弃牌无人鸣：立直成立、途中流局检查、轮到下家
func (g *Game) afterDiscardPassed() {
	play := g.play
	play.FinalizeRiichi()
	switch {
	case play.IsSuufonRenda():
		play.SetEndReason(EndReasonSuufonRenda)
		g.SetNextState(NewStateResult)
	case play.IsSuuchaRiichi():
		play.SetEndReason(EndReasonSuuchaRiichi)
		g.SetNextState(NewStateResult)
	case play.dealer.IsSuukaikan():
		play.SetEndReason(EndReasonSuukaikan)
		g.SetNextState(NewStateResult)
	default:
		play.SwitchNextSeat()
		g.SetNextState(NewStateDraw)
	}
}

// abortFatal 牌张守恒被破坏，记录后强制终局
func (g *Game) abortFatal() {
	logrus.WithField("game", g.id).Error("tile conservation broken")
	g.play.SetEndReason(EndReasonFatal)
	g.SetNextState(NewStateResult)
}

// drawReplacement 岭上补牌并回到决策
func (g *Game) drawReplacement() {
	tile := g.play.DrawReplacement()
	if tile == TileNull {
		g.play.SetEndReason(EndReasonExhaustiveDraw)
		g.SetNextState(NewStateResult)
		return
	}
	g.sender.SendDrawAck(tile)
	g.SetNextState(NewStateDiscard)
}

func (g *Game) execSelfKon(tile Tile) {
	konType, ok := g.play.SelfKon(tile)
	if !ok {
		g.SetNextState(NewStateDiscard)
		return
	}
	g.sender.SendKonAck(g.play.GetCurSeat(), tile, konType)
	g.drawReplacement()
}

// onRoundEnd 连庄过庄、本场与终局判定
func (g *Game) onRoundEnd() {
	play := g.play
	if play.EndReason() == EndReasonFatal {
		g.OnGameOver()
		return
	}
	renchan := false
	switch {
	case play.EndReason().IsAbort():
		renchan = true
		g.honba++
	case play.EndReason() == EndReasonExhaustiveDraw:
		renchan = play.GetPlayData(g.banker).IsTenpai()
		g.honba++
	default:
		renchan = CountElement(play.HuSeats(), g.banker) > 0
		if renchan {
			g.honba++
		} else {
			g.honba = 0
		}
	}

	if g.checkGameOver(renchan) {
		g.OnGameOver()
		return
	}
	if !renchan {
		g.banker = GetNextSeat(g.banker, 1, PlayerCount)
		g.roundNumber++
		if g.roundNumber > PlayerCount {
			g.roundNumber = 1
			g.roundWind = g.roundWind.Next()
		}
	}
	g.startRound()
}

// checkGameOver 击飞即终局；规定局数后头名达标终局，否则延长至有人达标
func (g *Game) checkGameOver(renchan bool) bool {
	for _, player := range g.players {
		if player.GetCurScore() < 0 {
			return true
		}
	}

	if g.overtime {
		for _, player := range g.players {
			if player.GetCurScore() >= g.rule.TopPointsThreshold {
				return true
			}
		}
		// 延长风圈也打完则强制终局
		return !renchan && g.roundNumber == PlayerCount && g.roundWind > g.rule.LastWind()
	}

	lastRound := g.roundWind == g.rule.LastWind() && g.roundNumber == PlayerCount
	if !lastRound || renchan {
		return false
	}
	for _, player := range g.players {
		if player.GetCurScore() >= g.rule.TopPointsThreshold {
			return true
		}
	}
	g.overtime = true
	return false
}

// OnGameOver 终局排名，同分按座位序靠前者优先
func (g *Game) OnGameOver() {
	g.over = true
	g.CurState = nil
	g.timer.Cancel()

	// 场上剩余供托归头名
	if g.riichiSticks > 0 {
		top := int32(0)
		for i := int32(1); i < PlayerCount; i++ {
			if g.players[i].GetCurScore() > g.players[top].GetCurScore() {
				top = i
			}
		}
		g.players[top].AddScoreChange(int64(g.riichiSticks) * RiichiStickPoints)
		g.riichiSticks = 0
	}

	seats := make([]int32, PlayerCount)
	for i := range seats {
		seats[i] = int32(i)
	}
	sort.SliceStable(seats, func(a, b int) bool {
		return g.players[seats[a]].GetCurScore() > g.players[seats[b]].GetCurScore()
	})
	scores := make([]int64, PlayerCount)
	for i, seat := range seats {
		scores[i] = g.players[seat].GetCurScore()
	}
	g.sender.SendGameResult(seats, scores)
	logrus.WithFields(logrus.Fields{"game": g.id, "scores": scores}).Info("game over")
}
