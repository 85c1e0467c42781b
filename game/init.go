package game

import (
	"github.com/kevin-chtw/tw_riichi/utils"
	"github.com/sirupsen/logrus"
)

var logger = utils.Logger(logrus.InfoLevel)

var tableManager *TableManager

// InitGame 初始化游戏模块
func InitGame() {
	tableManager = NewTableManager()
}

// GetTableManager 获取游戏桌管理器实例
func GetTableManager() *TableManager {
	return tableManager
}
