package protocol

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"machikoro/internal/engine"
)

// DecodeAction turns an action envelope into an engine.Action. Card names
// in the payload, including the keys of "landmarks", are resolved to ids.
func DecodeAction(e Envelope) (engine.Action, error) {
	typ, ok := actionTypes[e.Type]
	if !ok {
		return engine.Action{}, fmt.Errorf("unknown action %q", e.Type)
	}

	raw := make(map[string]interface{})
	if err := e.Decode(&raw); err != nil {
		return engine.Action{}, err
	}
	delete(raw, "type")

	var action engine.Action
	decoderConfig := &mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.TextUnmarshallerHookFunc(),
		Result:      &action,
		TagName:     "json",
		ErrorUnused: true,
	}
	decoder, err := mapstructure.NewDecoder(decoderConfig)
	if err != nil {
		return engine.Action{}, fmt.Errorf("new decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return engine.Action{}, fmt.Errorf("decode %s: %w", e.Type, err)
	}
	action.Type = typ
	return action, nil
}
