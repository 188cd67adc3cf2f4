// Package doctors provides the reviewing-physician profiles shown on the
// doctor profile card.
package doctors

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

// ErrNotFound is returned when no profile exists for an id.
var ErrNotFound = errors.New("doctor not found")

// Profile is a reviewing physician.
type Profile struct {
	ID              string
	Name            string
	Specialty       string
	Credentials     string
	Institution     string
	YearsExperience int
	Bio             string
	PhotoURL        string
	Languages       []string
}

// Source fetches doctor profiles.
type Source interface {
	Fetch(ctx context.Context, id string) (*Profile, error)
	IDs() []string
}

// MockSource serves a fixed set of profiles.
type MockSource struct {
	profiles map[string]Profile
}

// NewMockSource returns a source over the built-in profiles.
func NewMockSource() *MockSource {
	m := &MockSource{profiles: make(map[string]Profile, len(mockProfiles))}
	for _, p := range mockProfiles {
		m.profiles[p.ID] = p
	}
	return m
}

// Fetch returns a copy of the profile with the given id.
func (m *MockSource) Fetch(ctx context.Context, id string) (*Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	p, ok := m.profiles[id]
	if !ok {
		return nil, fmt.Errorf("fetching %q: %w", id, ErrNotFound)
	}
	p.Languages = append([]string(nil), p.Languages...)
	return &p, nil
}

// IDs returns every known profile id, sorted.
func (m *MockSource) IDs() []string {
	ids := make([]string, 0, len(m.profiles))
	for id := range m.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var mockProfiles = []Profile{
	{
		ID:              "dr-elena-marsh",
		Name:            "Elena Marsh",
		Specialty:       "Medical Oncology",
		Credentials:     "MD, PhD",
		Institution:     "Northbridge University Medical Center",
		YearsExperience: 18,
		Bio:             "Dr. Marsh specializes in breast and gynecologic cancers and leads her center's multidisciplinary tumor board.",
		PhotoURL:        "/static/doctors/elena-marsh.svg",
		Languages:       []string{"English", "Spanish"},
	},
	{
		ID:              "dr-samuel-okafor",
		Name:            "Samuel Okafor",
		Specialty:       "Orthopedic Spine Surgery",
		Credentials:     "MD, FAAOS",
		Institution:     "Lakeshore Spine Institute",
		YearsExperience: 22,
		Bio:             "Dr. Okafor reviews surgical recommendations for degenerative spine disease with a focus on non-operative alternatives.",
		PhotoURL:        "/static/doctors/samuel-okafor.svg",
		Languages:       []string{"English"},
	},
}
