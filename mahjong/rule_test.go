package mahjong_test

import (
	"testing"

	"github.com/kevin-chtw/tw_riichi/mahjong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RuleLoad(t *testing.T) {
	rule := mahjong.NewRule()
	require.NoError(t, rule.Load([]byte(`{"game_length":1,"red_fives":0,"open_tanyao":false}`)))

	assert.Equal(t, mahjong.GameLengthEast, rule.GameLength)
	assert.Equal(t, 0, rule.RedFives)
	assert.False(t, rule.OpenTanyao)
	// 未覆盖的字段保持默认值
	assert.Equal(t, int64(25000), rule.StartingPoints)
	assert.Equal(t, mahjong.WindEast, rule.LastWind())
}

func Test_RuleLoadEmpty(t *testing.T) {
	rule := mahjong.NewRule()
	require.NoError(t, rule.Load(nil))
	assert.Equal(t, mahjong.GameLengthHanchan, rule.GameLength)
	assert.Equal(t, mahjong.WindSouth, rule.LastWind())
}

func Test_RuleValidate(t *testing.T) {
	testCases := []string{
		`{"game_length":3}`,
		`{"red_fives":2}`,
		`{"base_think_seconds":0}`,
		`{"min_han":0}`,
		`{"starting_points":-1000}`,
	}
	for _, tc := range testCases {
		rule := mahjong.NewRule()
		assert.Error(t, rule.Load([]byte(tc)), tc)
	}
}

func Test_RuleMarshal(t *testing.T) {
	rule := mahjong.NewRule()
	rule.RedFives = 4
	data, err := rule.Marshal()
	require.NoError(t, err)

	loaded := mahjong.NewRule()
	require.NoError(t, loaded.Load(data))
	assert.Equal(t, rule, loaded)
}
