package handler

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntOrStringJSON(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
		wantErr bool
	}{
		{name: "number", payload: `{"duration":30}`, want: 30},
		{name: "numeric string", payload: `{"duration":"30"}`, want: 30},
		{name: "null", payload: `{"duration":null}`, want: 0},
		{name: "empty string", payload: `{"duration":""}`, want: 0},
		{name: "garbage", payload: `{"duration":"lots"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req struct {
				Duration IntOrString `json:"duration"`
			}
			err := json.Unmarshal([]byte(tt.payload), &req)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, int(req.Duration))
		})
	}
}

func TestIntOrStringParam(t *testing.T) {
	var v IntOrString
	require.NoError(t, v.UnmarshalParam(" 42 "))
	assert.Equal(t, 42, int(v))

	require.NoError(t, v.UnmarshalParam(""))
	assert.Equal(t, 0, int(v))

	assert.Error(t, v.UnmarshalParam("ten"))
}
