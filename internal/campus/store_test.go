package campus

import (
	"math"
	"testing"

	"campus-navigator/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Upsert(t *testing.T) {
	s := NewStore()
	s.Upsert(models.Location{Name: "Great Hall", Category: "Building", X: 150, Y: 100})
	s.Upsert(models.Location{Name: "Great Hall", Category: "Auditorium", X: 1, Y: 2})

	loc, ok := s.Get("Great Hall")
	require.True(t, ok)
	assert.Equal(t, models.Location{Name: "Great Hall", Category: "Auditorium", X: 1, Y: 2}, loc)
	assert.Equal(t, 1, s.Len())
}

func TestStore_Lookup(t *testing.T) {
	s := NewStore()
	s.Upsert(models.Location{Name: "Main Gate", Category: "Gate"})

	tests := []struct {
		name   string
		lookup string
		exists bool
	}{
		{name: "known name", lookup: "Main Gate", exists: true},
		{name: "case sensitive", lookup: "main gate", exists: false},
		{name: "unknown name", lookup: "Unknown Place", exists: false},
		{name: "empty name", lookup: "", exists: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.exists, s.Exists(tt.lookup))
			_, ok := s.Get(tt.lookup)
			assert.Equal(t, tt.exists, ok)
		})
	}
}

func TestStore_DistanceBetween(t *testing.T) {
	s := NewStore()
	s.Upsert(models.Location{Name: "A", X: 0, Y: 0})
	s.Upsert(models.Location{Name: "B", X: 6, Y: 8})

	assert.InDelta(t, 10.0, s.DistanceBetween("A", "B"), 1e-9)
	assert.InDelta(t, 0.0, s.DistanceBetween("A", "A"), 1e-9)
	assert.True(t, math.IsInf(s.DistanceBetween("A", "Nowhere"), 1))
	assert.True(t, math.IsInf(s.DistanceBetween("Nowhere", "B"), 1))
	assert.Equal(t, Unreachable, s.DistanceBetween("X", "Y"))
}

func TestStore_AllNames(t *testing.T) {
	s := NewStore()
	assert.Empty(t, s.AllNames())

	for _, name := range []string{"Volta Hall", "Balme Library", "Main Gate"} {
		s.Upsert(models.Location{Name: name})
	}
	assert.Equal(t, []string{"Balme Library", "Main Gate", "Volta Hall"}, s.AllNames())
}
