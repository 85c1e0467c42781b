package game_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsoniter "github.com/json-iterator/go"
)

type fakeMessenger struct {
	pushed map[string][][]byte
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{pushed: make(map[string][][]byte)}
}

func (m *fakeMessenger) Push(playerID string, data []byte) error {
	m.pushed[playerID] = append(m.pushed[playerID], data)
	return nil
}

func (m *fakeMessenger) typesFor(playerID string) []string {
	types := make([]string, 0)
	for _, data := range m.pushed[playerID] {
		msg := &game.Envelope{}
		if err := jsoniter.Unmarshal(data, msg); err != nil {
			continue
		}
		types = append(types, msg.Type)
	}
	return types
}

func setupTable(t *testing.T) (*game.Table, *fakeMessenger) {
	t.Helper()
	messenger := newFakeMessenger()
	table := game.NewTable(1, "", messenger)

	for _, id := range []string{"a", "b", "c", "d"} {
		_, err := table.AddPlayer(id)
		require.NoError(t, err)
	}
	return table, messenger
}

func Test_TableStartsWhenAllEnter(t *testing.T) {
	table, messenger := setupTable(t)

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, table.HandleEnterGame(id))
		assert.Empty(t, messenger.pushed[id])
	}
	require.NoError(t, table.HandleEnterGame("d"))

	for _, id := range []string{"a", "b", "c", "d"} {
		types := messenger.typesFor(id)
		assert.Contains(t, types, "game_start")
		assert.Contains(t, types, "open_door")
	}
}

func Test_TableRejectsExtraPlayer(t *testing.T) {
	table, _ := setupTable(t)
	_, err := table.AddPlayer("e")
	assert.Error(t, err)
	_, err = table.AddPlayer("a")
	assert.Error(t, err)
}

func Test_TableReplaysHistory(t *testing.T) {
	table, messenger := setupTable(t)
	for _, id := range []string{"a", "b", "c", "d"} {
		require.NoError(t, table.HandleEnterGame(id))
	}

	sent := len(messenger.pushed["a"])
	require.NotZero(t, sent)

	// 断线重进补发本局全部消息
	require.NoError(t, table.HandleNetState("a", false))
	require.NoError(t, table.HandleNetState("a", true))
	require.NoError(t, table.HandleEnterGame("a"))
	assert.Equal(t, sent*2, len(messenger.pushed["a"]))
}

func Test_TableMsgValidation(t *testing.T) {
	table, _ := setupTable(t)

	err := table.HandleTableMsg("a", []byte(`{}`))
	assert.Error(t, err) // 游戏未开始

	assert.Error(t, table.HandleTableMsg("x", []byte(`{}`)))
	assert.Error(t, table.HandleNetState("x", false))
}

func Test_TableManager(t *testing.T) {
	game.InitGame()
	mgr := game.GetTableManager()
	messenger := newFakeMessenger()

	table := mgr.LoadOrStore(7, "", messenger)
	require.NotNil(t, table)
	assert.Same(t, table, mgr.LoadOrStore(7, "", messenger))
	assert.Same(t, table, mgr.Get(7))

	mgr.Delete(7)
	assert.Nil(t, mgr.Get(7))
}
