package repository

import (
	"context"

	"campus-navigator/internal/models"
)

// SampleCampus serves a fixed layout of the University of Ghana campus.
type SampleCampus struct{}

// NewSampleCampus creates the built-in campus seed source
func NewSampleCampus() *SampleCampus {
	return &SampleCampus{}
}

// ListLocations returns the sample locations
func (SampleCampus) ListLocations(context.Context) ([]models.Location, error) {
	return []models.Location{
		{Name: "Main Gate", Category: "Gate", X: 0, Y: 0},
		{Name: "Balme Library", Category: "Library", X: 100, Y: 50},
		{Name: "Great Hall", Category: "Building", X: 150, Y: 100},
		{Name: "Commonwealth Hall", Category: "Residence", X: 200, Y: 75},
		{Name: "Volta Hall", Category: "Residence", X: 120, Y: 120},
		{Name: "School of Medicine", Category: "Academic", X: 180, Y: 30},
		{Name: "Engineering Building", Category: "Academic", X: 90, Y: 80},
		{Name: "Administration Block", Category: "Office", X: 110, Y: 60},
	}, nil
}

// ListPaths returns the sample walkways
func (SampleCampus) ListPaths(context.Context) ([]models.Path, error) {
	return []models.Path{
		{From: "Main Gate", To: "Balme Library"},
		{From: "Balme Library", To: "Great Hall"},
		{From: "Balme Library", To: "Administration Block"},
		{From: "Great Hall", To: "Commonwealth Hall"},
		{From: "Great Hall", To: "Volta Hall"},
		{From: "Administration Block", To: "Engineering Building"},
		{From: "School of Medicine", To: "Commonwealth Hall"},
		{From: "Engineering Building", To: "Volta Hall"},
	}, nil
}
