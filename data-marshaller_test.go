package immerreducer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func roundTripsActions(t *testing.T) {
	action := Action{
		Type:    EncodeActionType("TestReducer", "setFoo"),
		Payload: []any{"next"},
	}

	data, err := MarshalActionToData(action)
	assert.NoError(t, err)
	assert.Equal(t, "application/json", data.Encoding)

	decoded, err := UnmarshalActionFromData(data)
	assert.NoError(t, err)
	assert.Equal(t, action, decoded)
}

func rejectsUnknownEncodings(t *testing.T) {
	_, err := UnmarshalActionFromData(Data{Encoding: "application/xml"})

	var invalid *InvalidEncodingError
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "application/json", invalid.Expected)
}

func rejectsUntypedActions(t *testing.T) {
	_, err := UnmarshalActionFromData(Data{
		Encoding: "application/json",
		Data:     []byte(`{"payload":["next"]}`),
	})

	assert.Error(t, err)
}

func TestDataMarshalling(t *testing.T) {
	t.Run("round trips actions", roundTripsActions)
	t.Run("rejects unknown encodings", rejectsUnknownEncodings)
	t.Run("rejects untyped actions", rejectsUntypedActions)
}
