package service

import (
	"context"
	"testing"

	"campus-navigator/internal/models"
	"campus-navigator/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *NavigationService {
	t.Helper()

	g, err := LoadGraph(context.Background(), repository.NewSampleCampus(), zerolog.Nop())
	require.NoError(t, err)
	g.AddLocation(models.Location{Name: "Sports Stadium", Category: "Recreation", X: 400, Y: 400})

	return NewNavigationService(g, 5, zerolog.Nop())
}

func TestNavigationService_Location(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	loc, err := svc.Location(ctx, "Balme Library")
	require.NoError(t, err)
	assert.Equal(t, &models.Location{Name: "Balme Library", Category: "Library", X: 100, Y: 50}, loc)

	_, err = svc.Location(ctx, "Unknown Place")
	assert.ErrorIs(t, err, ErrLocationNotFound)

	locations, err := svc.Locations(ctx)
	require.NoError(t, err)
	assert.Len(t, locations, 9)
}

func TestNavigationService_Neighbors(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	neighbors, err := svc.Neighbors(ctx, "Great Hall")
	require.NoError(t, err)
	assert.Equal(t, []string{"Balme Library", "Commonwealth Hall", "Volta Hall"}, neighbors)

	neighbors, err = svc.Neighbors(ctx, "Sports Stadium")
	require.NoError(t, err)
	assert.Empty(t, neighbors)

	_, err = svc.Neighbors(ctx, "Unknown Place")
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestNavigationService_ShortestRoute(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name        string
		from, to    string
		speed       float64
		expected    []string
		travelTime  float64
		expectedErr error
	}{
		{
			name:       "default speed",
			from:       "Main Gate",
			to:         "Great Hall",
			expected:   []string{"Main Gate", "Balme Library", "Great Hall"},
			travelTime: 2.19016892,
		},
		{
			name:       "explicit speed",
			from:       "Main Gate",
			to:         "Great Hall",
			speed:      10,
			expected:   []string{"Main Gate", "Balme Library", "Great Hall"},
			travelTime: 1.09508446,
		},
		{
			name:     "already at destination",
			from:     "Volta Hall",
			to:       "Volta Hall",
			expected: []string{"Volta Hall"},
		},
		{
			name:        "unknown origin",
			from:        "Unknown Place",
			to:          "Great Hall",
			expectedErr: ErrLocationNotFound,
		},
		{
			name:        "unknown destination",
			from:        "Main Gate",
			to:          "Unknown Place",
			expectedErr: ErrLocationNotFound,
		},
		{
			name:        "disconnected",
			from:        "Main Gate",
			to:          "Sports Stadium",
			expectedErr: ErrNoRoute,
		},
		{
			name:        "negative speed",
			from:        "Main Gate",
			to:          "Great Hall",
			speed:       -3,
			expectedErr: ErrInvalidSpeed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route, err := svc.ShortestRoute(context.Background(), tt.from, tt.to, tt.speed)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, route)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, route.Path)
			assert.InDelta(t, tt.travelTime, route.TravelTime, 1e-6)
		})
	}
}

func TestNavigationService_RouteOptions(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	options, err := svc.RouteOptions(ctx, "Main Gate", "Great Hall", 0)
	require.NoError(t, err)
	require.Len(t, options, 3)
	assert.Equal(t, "Shortest Distance Route", options[0].Description)

	_, err = svc.RouteOptions(ctx, "Main Gate", "Sports Stadium", 0)
	assert.ErrorIs(t, err, ErrNoRoute)

	_, err = svc.RouteOptions(ctx, "Main Gate", "Unknown Place", 0)
	assert.ErrorIs(t, err, ErrLocationNotFound)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = svc.RouteOptions(canceled, "Main Gate", "Great Hall", 0)
	assert.ErrorIs(t, err, context.Canceled)
}
