package game

import (
	"time"

	"github.com/awesome-cap/hashmap"
)

// TableManager 管理游戏桌
type TableManager struct {
	tables *hashmap.HashMap
	ticker *time.Ticker
}

// NewTableManager 创建游戏桌管理器
func NewTableManager() *TableManager {
	t := &TableManager{
		tables: hashmap.New(),
		ticker: time.NewTicker(time.Second),
	}
	go func() {
		for range t.ticker.C {
			t.tick()
		}
	}()

	return t
}

func (t *TableManager) tick() {
	t.tables.Foreach(func(e *hashmap.Entry) {
		e.Value().(*Table).tick()
	})
}

// Get 获取指定桌号的游戏桌
func (t *TableManager) Get(tableID int32) *Table {
	if v, ok := t.tables.Get(tableID); ok {
		return v.(*Table)
	}
	return nil
}

// LoadOrStore 加载或存储游戏桌
func (t *TableManager) LoadOrStore(tableID int32, property string, messenger Messenger) *Table {
	if v, ok := t.tables.Get(tableID); ok {
		return v.(*Table)
	}

	table := NewTable(tableID, property, messenger)
	t.tables.Set(tableID, table)
	return table
}

// Delete 删除指定桌号的游戏桌
func (t *TableManager) Delete(tableID int32) {
	t.tables.Del(tableID)
}
