package protocol_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"machikoro/internal/engine"
	"machikoro/internal/protocol"
)

func envelope(t *testing.T, typ, payload string) protocol.Envelope {
	t.Helper()
	var env protocol.Envelope
	require.NoError(t, json.Unmarshal([]byte(`{"type":"`+typ+`","payload":`+payload+`}`), &env))
	return env
}

func TestMustEnvelope(t *testing.T) {
	env := protocol.MustEnvelope(protocol.MsgError, protocol.ErrorMsg{Message: "nope"})
	assert.Equal(t, protocol.MsgError, env.Type)
	assert.JSONEq(t, `{"message":"nope"}`, string(env.Payload))

	assert.Panics(t, func() { protocol.MustEnvelope("x", make(chan int)) })
}

func TestEnvelopeDecode(t *testing.T) {
	var join protocol.JoinMsg
	require.NoError(t, envelope(t, protocol.MsgJoin, `{"player_id":"p1","name":"Ann"}`).Decode(&join))
	assert.Equal(t, protocol.JoinMsg{PlayerID: "p1", Name: "Ann"}, join)

	var ready protocol.ReadyMsg
	require.NoError(t, protocol.Envelope{Type: protocol.MsgReady}.Decode(&ready))
	assert.False(t, ready.Ready)

	assert.Error(t, protocol.Envelope{Type: "join", Payload: []byte(`[1,`)}.Decode(&join))
}

func TestDecodeAction(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		payload string
		want    engine.Action
	}{
		{
			name:    "roll two dice",
			typ:     "roll_dice",
			payload: `{"dice":2}`,
			want:    engine.Action{Type: engine.ActionRollDice, Dice: 2},
		},
		{
			name:    "empty payload",
			typ:     "end_roll",
			payload: `null`,
			want:    engine.Action{Type: engine.ActionEndRoll},
		},
		{
			name:    "buy by name",
			typ:     "buy_card",
			payload: `{"card":"dairy"}`,
			want:    engine.Action{Type: engine.ActionBuyCard, Card: engine.Dairy},
		},
		{
			name:    "invest",
			typ:     "end_turn",
			payload: `{"invest":true}`,
			want:    engine.Action{Type: engine.ActionEndTurn, Invest: true},
		},
		{
			name:    "targeted moves",
			typ:     "targeted_input",
			payload: `{"moves":[{"target":"b","give":"wheat_field"}]}`,
			want: engine.Action{Type: engine.ActionTargetedInput, Moves: []engine.Args{
				{Target: "b", Give: engine.WheatField},
			}},
		},
		{
			name:    "landmark keys by name",
			typ:     "landmark_input",
			payload: `{"landmarks":{"office_building":{"target":"b","give":"bakery","take":"farm"},"renovation_company":{"card":"bakery"}}}`,
			want: engine.Action{Type: engine.ActionLandmarkInput, Landmarks: map[engine.CardID]engine.Args{
				engine.OfficeBuilding:    {Target: "b", Give: engine.Bakery, Take: engine.Farm},
				engine.RenovationCompany: {Card: engine.Bakery},
			}},
		},
		{
			name:    "type in payload is ignored",
			typ:     "add_two",
			payload: `{"type":"buy_card"}`,
			want:    engine.Action{Type: engine.ActionAddTwo},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := protocol.DecodeAction(envelope(t, tt.typ, tt.payload))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeActionErrors(t *testing.T) {
	tests := []struct {
		name    string
		typ     string
		payload string
	}{
		{"unknown type", "draft_pick", `{}`},
		{"unknown card", "buy_card", `{"card":"castle"}`},
		{"unknown field", "roll_dice", `{"die":2}`},
		{"bad json", "roll_dice", `"x"`},
		{"wrong shape", "targeted_input", `{"moves":"b"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := protocol.DecodeAction(envelope(t, tt.typ, tt.payload))
			assert.Error(t, err)
		})
	}
}

func TestIsAction(t *testing.T) {
	assert.True(t, protocol.IsAction("roll_dice"))
	assert.True(t, protocol.IsAction("end_turn"))
	assert.False(t, protocol.IsAction(protocol.MsgJoin))
}
