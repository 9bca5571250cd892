package skillstacker

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_FullName(t *testing.T) {
	tests := []struct {
		name     string
		user     User
		expected string
	}{
		{
			name:     "both names",
			user:     User{FirstName: "Ada", LastName: "Lovelace"},
			expected: "Ada Lovelace",
		},
		{
			name:     "first name only",
			user:     User{FirstName: "Ada"},
			expected: "Ada",
		},
		{
			name:     "last name only",
			user:     User{LastName: "Lovelace"},
			expected: "Lovelace",
		},
		{
			name:     "no names",
			user:     User{Email: "ada@example.com"},
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.user.FullName())
		})
	}
}

func TestActor_Name(t *testing.T) {
	a := Actor{FirstName: "PENELOPE", LastName: "GUINESS"}
	assert.Equal(t, "PENELOPE GUINESS", a.Name())
}

func TestYearRange_NullBounds(t *testing.T) {
	// An empty catalog reports {"min": null, "max": null}.
	var stats FilmStats
	err := json.Unmarshal([]byte(`{"total_films": 0, "year_range": {"min": null, "max": null}}`), &stats)
	require.NoError(t, err)
	assert.Nil(t, stats.YearRange.Min)
	assert.Nil(t, stats.YearRange.Max)

	err = json.Unmarshal([]byte(`{"year_range": {"min": 2006, "max": 2012}}`), &stats)
	require.NoError(t, err)
	require.NotNil(t, stats.YearRange.Min)
	assert.Equal(t, 2006, *stats.YearRange.Min)
	require.NotNil(t, stats.YearRange.Max)
	assert.Equal(t, 2012, *stats.YearRange.Max)
}

func TestUser_DecodesBackendShape(t *testing.T) {
	raw := `{
		"customer_id": 7,
		"first_name": "Ada",
		"last_name": "Lovelace",
		"email": "ada@example.com",
		"is_admin": true,
		"activebool": true
	}`

	var user User
	require.NoError(t, json.Unmarshal([]byte(raw), &user))
	assert.Equal(t, 7, user.CustomerID)
	assert.True(t, user.IsAdmin)
	assert.True(t, user.Active)
}
