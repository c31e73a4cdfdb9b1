package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_MarshalJSON(t *testing.T) {
	d := Date{time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)}
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-05-01"`, string(b))
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-05-01"`), &d))
	assert.Equal(t, "2024-05-01", d.String())
}

func TestDate_UnmarshalJSON_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not a date", `"yesterday"`},
		{"wrong layout", `"01/05/2024"`},
		{"not a string", `20240501`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			assert.Error(t, json.Unmarshal([]byte(tt.input), &d))
		})
	}
}

func TestDate_ScanTime(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-05-01", d.String())
}

func TestToday_HasNoTimeComponent(t *testing.T) {
	d := Today()
	assert.Equal(t, 0, d.Hour())
	assert.Equal(t, 0, d.Minute())
}

func TestAccount_WireShape(t *testing.T) {
	account := Account{
		ID: 7, Name: "John Doe", Email: "john@example.com",
		Address: "1 Main St", PhoneNumber: "555-0100",
		DateJoined: Date{time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
	}
	b, err := json.Marshal(account)
	require.NoError(t, err)

	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &m))
	for _, key := range []string{"id", "name", "email", "address", "phone_number", "date_joined"} {
		assert.Contains(t, m, key)
	}
	assert.Equal(t, "2024-05-01", m["date_joined"])
}
