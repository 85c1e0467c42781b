package mahjong

const (
	OperateNone    = -1
	OperatePass    = 0         //过
	OperateChow    = 1 << iota // 吃
	OperatePon                 // 碰
	OperateKon                 // 杠
	OperateRiichi              // 立直
	OperateHu                  // 和
	OperateDiscard             // 出牌
	OperateDraw                // 摸牌
	OperateAbort               // 九种九牌流局
)

var OperateNames = map[int]string{
	OperatePass:    "Pass",
	OperateChow:    "Chow",
	OperatePon:     "Pon",
	OperateKon:     "Kon",
	OperateRiichi:  "Riichi",
	OperateHu:      "Win",
	OperateDiscard: "Discard",
	OperateDraw:    "Draw",
	OperateAbort:   "Abort",
}

var OperateIDs = map[string]int{
	"Pass":    OperatePass,
	"Chow":    OperateChow,
	"Pon":     OperatePon,
	"Kon":     OperateKon,
	"Riichi":  OperateRiichi,
	"Win":     OperateHu,
	"Discard": OperateDiscard,
	"Draw":    OperateDraw,
	"Abort":   OperateAbort,
}

type Operates struct {
	Value    int32
	IsMustHu bool
}

func (o *Operates) AddOperate(op int32) {
	o.Value |= op
}

func (o *Operates) AddOperates(ops *Operates) {
	o.Value |= ops.Value
}

func (o *Operates) RemoveOperate(op int32) {
	o.Value &= ^op
}

func (o *Operates) HasOperate(op int32) bool {
	return (o.Value & op) != 0
}

func (o *Operates) Empty() bool {
	return o.Value == 0
}

func (o *Operates) Reset() {
	o.Value = 0
}

func GetOperateName(operate int) string {
	if name, ok := OperateNames[operate]; ok {
		return name
	}
	return ""
}

func GetOperateID(name string) int {
	if id, ok := OperateIDs[name]; ok {
		return id
	}
	return OperateNone
}
