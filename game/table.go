package game

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/kevin-chtw/tw_riichi/mahjong"

	jsoniter "github.com/json-iterator/go"
)

var jsonx = jsoniter.ConfigCompatibleWithStandardLibrary

// Messenger 向客户端推送消息的接口
type Messenger interface {
	Push(playerID string, data []byte) error
}

// Envelope 桌子与客户端之间的消息封装
type Envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

// Table 表示一个游戏桌实例
type Table struct {
	tableID      int32
	players      map[string]*Player // 玩家ID -> Player
	seats        []string           // 座位 -> 玩家ID
	messenger    Messenger
	playerCount  int32
	property     string // 游戏配置
	curGameCount int32
	gameMutex    sync.Mutex // 保护game的对象锁
	game         *mahjong.Game
	historyMsg   map[string][]*Envelope
	historyMutex sync.Mutex // 保护historyMsg的锁
	gameOnce     sync.Once  // 确保每局游戏结束只执行一次
}

// NewTable 创建新的游戏桌实例
func NewTable(tableID int32, property string, messenger Messenger) *Table {
	return &Table{
		tableID:     tableID,
		players:     make(map[string]*Player),
		seats:       make([]string, mahjong.PlayerCount),
		messenger:   messenger,
		playerCount: mahjong.PlayerCount,
		property:    property,
		historyMsg:  make(map[string][]*Envelope),
	}
}

// AddPlayer 添加玩家到桌子，座位按加入顺序分配
func (t *Table) AddPlayer(playerID string) (*Player, error) {
	if _, ok := t.players[playerID]; ok {
		return nil, errors.New("player already on table")
	}
	if len(t.players) >= int(t.playerCount) {
		return nil, errors.New("table is full")
	}

	seat := int32(len(t.players))
	player := NewPlayer(playerID, seat)
	t.players[playerID] = player
	t.seats[seat] = playerID
	logger.Infof("Player %s added to table %d at seat %d", playerID, t.tableID, seat)
	return player, nil
}

// HandleEnterGame 处理玩家进入游戏请求
func (t *Table) HandleEnterGame(playerID string) error {
	player, ok := t.players[playerID]
	if !ok {
		return errors.New("player not on table")
	}

	if player.Status == PlayerStatusEnter || player.Status == PlayerStatusPlaying {
		t.sendHisMsges(player)
	} else {
		player.Status = PlayerStatusEnter
	}

	if t.isAllPlayersReady() {
		t.gamebegin()
	}
	return nil
}

func (t *Table) gamebegin() {
	t.gameMutex.Lock()
	defer t.gameMutex.Unlock()
	if t.game != nil {
		return
	}
	t.curGameCount++
	t.gameOnce = sync.Once{}

	game, err := mahjong.NewGame(t.curGameCount, t, t.property, time.Now().UnixNano())
	if err != nil {
		logger.Errorf("table %d create game: %v", t.tableID, err)
		return
	}
	t.game = game
	for _, player := range t.players {
		player.Status = PlayerStatusPlaying
	}
	t.game.OnGameBegin()
}

// HandleTableMsg 处理玩家的对局消息
func (t *Table) HandleTableMsg(playerID string, data []byte) error {
	player, ok := t.players[playerID]
	if !ok {
		return errors.New("player not on table")
	}

	t.gameMutex.Lock()
	defer t.gameMutex.Unlock()
	if t.game == nil {
		return errors.New("game not started")
	}
	err := t.game.OnPlayerMsg(player.Seat, data)
	if t.game.IsOver() {
		t.NotifyGameOver(t.curGameCount)
	}
	return err
}

// HandleNetState 处理玩家网络状态变化
func (t *Table) HandleNetState(playerID string, online bool) error {
	player, ok := t.players[playerID]
	if !ok {
		return errors.New("player not found")
	}

	logger.Infof("Player %s online status changed to %v", playerID, online)
	if player.online == online {
		return errors.New("player online status not changed")
	}
	player.setOnline(online)

	t.gameMutex.Lock()
	defer t.gameMutex.Unlock()
	if t.game != nil {
		t.game.OnNetChange(player.Seat, !online)
	}
	return nil
}

// Send 实现mahjong.EventSink，序列化事件并推送给指定座位
func (t *Table) Send(seat int32, event mahjong.Event) {
	data, err := jsonx.Marshal(event)
	if err != nil {
		logger.Error(err.Error())
		return
	}
	msg := &Envelope{Type: event.EventName(), Data: data}

	if seat == mahjong.SeatAll {
		for _, player := range t.players {
			t.sendMsg(msg, player.id)
		}
		return
	}
	if seat < 0 || int(seat) >= len(t.seats) {
		return
	}
	t.sendMsg(msg, t.seats[seat])
}

func (t *Table) sendMsg(msg *Envelope, playerID string) {
	t.historyMutex.Lock()
	t.historyMsg[playerID] = append(t.historyMsg[playerID], msg)
	t.historyMutex.Unlock()

	player, ok := t.players[playerID]
	if !ok || !player.IsOnline() {
		return
	}

	data, err := jsonx.Marshal(msg)
	if err != nil {
		logger.Error(err.Error())
		return
	}
	if err := t.messenger.Push(playerID, data); err != nil {
		logger.Error(err.Error())
	}
}

// sendHisMsges 重新进入时补发本局的全部消息
func (t *Table) sendHisMsges(player *Player) {
	t.historyMutex.Lock()
	msges := make([]*Envelope, len(t.historyMsg[player.id]))
	copy(msges, t.historyMsg[player.id])
	t.historyMutex.Unlock()

	for _, msg := range msges {
		data, err := jsonx.Marshal(msg)
		if err != nil {
			logger.Error(err.Error())
			continue
		}
		if err := t.messenger.Push(player.id, data); err != nil {
			logger.Error(err.Error())
		}
	}
}

func (t *Table) isAllPlayersReady() bool {
	if len(t.players) != int(t.playerCount) {
		return false
	}
	for _, player := range t.players {
		if player.Status == PlayerStatusUnEnter {
			return false
		}
	}
	return true
}

// NotifyGameOver 整场游戏结束后由游戏逻辑回调
func (t *Table) NotifyGameOver(gameID int32) {
	if gameID != t.curGameCount {
		return
	}

	t.gameOnce.Do(func() {
		go t.gameOver()
	})
}

func (t *Table) gameOver() {
	for _, player := range t.players {
		player.Status = PlayerStatusEnter
	}

	t.gameMutex.Lock()
	t.game = nil
	t.gameMutex.Unlock()

	t.historyMutex.Lock()
	t.historyMsg = make(map[string][]*Envelope)
	t.historyMutex.Unlock()

	tableManager.Delete(t.tableID)
}

func (t *Table) tick() {
	t.gameMutex.Lock()
	defer t.gameMutex.Unlock()
	if t.game != nil {
		t.game.OnGameTimer()
		if t.game.IsOver() {
			t.NotifyGameOver(t.curGameCount)
		}
	}
}
