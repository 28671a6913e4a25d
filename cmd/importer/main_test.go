package main

import (
	"strings"
	"testing"

	"campus-navigator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLocations(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    []models.Location
		expectError bool
	}{
		{
			name:  "valid rows",
			input: "name,category,x,y\nMain Gate,Gate,0,0\nBalme Library, Library, 100.5, 50\n",
			expected: []models.Location{
				{Name: "Main Gate", Category: "Gate", X: 0, Y: 0},
				{Name: "Balme Library", Category: "Library", X: 100.5, Y: 50},
			},
		},
		{
			name:  "repeated name keeps last record",
			input: "name,category,x,y\nGreat Hall,Building,150,100\nMain Gate,Gate,0,0\nGreat Hall,Auditorium,1,2\n",
			expected: []models.Location{
				{Name: "Great Hall", Category: "Auditorium", X: 1, Y: 2},
				{Name: "Main Gate", Category: "Gate", X: 0, Y: 0},
			},
		},
		{
			name:     "header only",
			input:    "name,category,x,y\n",
			expected: []models.Location{},
		},
		{
			name:        "empty file",
			input:       "",
			expectError: true,
		},
		{
			name:        "bad coordinate",
			input:       "name,category,x,y\nMain Gate,Gate,zero,0\n",
			expectError: true,
		},
		{
			name:        "too few columns",
			input:       "name,category,x,y\nMain Gate,Gate,0\n",
			expectError: true,
		},
		{
			name:        "empty name",
			input:       "name,category,x,y\n,Gate,0,0\n",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			locations, err := parseLocations(strings.NewReader(tt.input))
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, locations)
		})
	}
}

func TestParsePaths(t *testing.T) {
	paths, err := parsePaths(strings.NewReader("from,to\nMain Gate,Balme Library\nBalme Library, Great Hall\n"))
	require.NoError(t, err)
	assert.Equal(t, []models.Path{
		{From: "Main Gate", To: "Balme Library"},
		{From: "Balme Library", To: "Great Hall"},
	}, paths)

	_, err = parsePaths(strings.NewReader("from,to\nMain Gate\n"))
	assert.Error(t, err)
}
