package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexNumberDecoding(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{`{"v":1200}`, 1200},
		{`{"v":12.5}`, 12.5},
		{`{"v":"1200"}`, 1200},
		{`{"v":" 12.5 "}`, 12.5},
		{`{"v":"not-a-number"}`, 0},
		{`{"v":""}`, 0},
		{`{"v":null}`, 0},
	}
	for _, tc := range cases {
		var payload struct {
			V FlexNumber `json:"v"`
		}
		require.NoError(t, json.Unmarshal([]byte(tc.in), &payload), "input %s", tc.in)
		assert.Equal(t, tc.want, payload.V.Float64(), "input %s", tc.in)
	}
}
