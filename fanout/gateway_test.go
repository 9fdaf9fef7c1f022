package fanout

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAppID(t *testing.T) {
	tests := []struct {
		name    string
		args    []any
		want    int64
		wantErr bool
	}{
		{"json number", []any{float64(3)}, 3, false},
		{"numeric string", []any{" 12 "}, 12, false},
		{"json.Number", []any{json.Number("5")}, 5, false},
		{"fraction", []any{1.5}, 0, true},
		{"zero", []any{float64(0)}, 0, true},
		{"text", []any{"abc"}, 0, true},
		{"object", []any{map[string]any{"id": 1}}, 0, true},
		{"missing", nil, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseAppID(tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, errInvalidAppID)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoomName(t *testing.T) {
	assert.Equal(t, "app-7", RoomName(7))
}
