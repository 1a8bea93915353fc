package core

import (
	"github.com/mitchellh/mapstructure"
)

// ToParams flattens a typed request into the params object of a JSON-RPC
// call. Field names follow the json tags so a payload struct can be shared
// between the wire format and the params map without duplicating names.
// Fields tagged omitempty are dropped when they hold their zero value,
// which keeps optional daemon arguments off the wire entirely.
func ToParams(v any) (map[string]any, error) {
	params := map[string]any{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  &params,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(v); err != nil {
		return nil, ErrFailedToEncodeParams.WithArgs(err)
	}
	return params, nil
}
