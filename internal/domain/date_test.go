package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	var body struct {
		Due *Date `json:"due"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"due":"2024-03-01"}`), &body))
	require.NotNil(t, body.Due)
	assert.Equal(t, NewDate(2024, time.March, 1), *body.Due)

	out, err := json.Marshal(body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"due":"2024-03-01"}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"due":"01/03/2024"}`), &body))
}

func TestDateScanAndValue(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 5, 31, 0, 0, 0, 0, time.FixedZone("X", 3600))))
	assert.Equal(t, "2024-05-31", d.String())

	require.NoError(t, d.Scan([]byte("2023-12-25T00:00:00Z")))
	assert.Equal(t, "2023-12-25", d.String())

	assert.Error(t, d.Scan(42))

	v, err := NewDate(2024, time.January, 2).Value()
	require.NoError(t, err)
	assert.Equal(t, "2024-01-02", v)
}
