package immerreducer

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Data is the envelope for actions crossing a process boundary, for store
// middleware and debugging tools.
type Data struct {
	Encoding string `json:"encoding"`
	Data     []byte `json:"data"`
}

const jsonEncoding = "application/json"

type InvalidEncodingError struct {
	Expected string
	Actual   string
}

func (e *InvalidEncodingError) Error() string {
	return fmt.Sprintf("expected encoding %s, got %s", e.Expected, e.Actual)
}

func InvalidEncoding(expected string, actual string) error {
	return &InvalidEncodingError{
		Expected: expected,
		Actual:   actual,
	}
}

func MarshalActionToData(action Action) (Data, error) {
	data, err := json.Marshal(action)
	if err != nil {
		return Data{}, err
	}

	return Data{
		Encoding: jsonEncoding,
		Data:     data,
	}, nil
}

// UnmarshalActionFromData decodes an action envelope. Numbers in the payload
// come back as float64; dispatch coerces them to the method's parameter
// types.
func UnmarshalActionFromData(data Data) (Action, error) {
	if data.Encoding != jsonEncoding {
		return Action{}, InvalidEncoding(jsonEncoding, data.Encoding)
	}

	var action Action
	if err := json.Unmarshal(data.Data, &action); err != nil {
		return Action{}, err
	}

	if action.Type == "" {
		return Action{}, errors.New("action is missing a type")
	}

	return action, nil
}
