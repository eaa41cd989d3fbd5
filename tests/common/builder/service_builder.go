//go:build unit || e2e

package builder

import (
	"time"

	"aqualux-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	Title       string
	Description string
	Price       int32
	DurationMin int32
	Features    []string
	Featured    bool
}

func NewServiceBuilder() *ServiceBuilder {
	return &ServiceBuilder{
		Title:       "Hydrotherapy Supreme",
		Description: "A full-body hydrotherapy ritual in our mineral-rich thermal pools.",
		Price:       180,
		DurationMin: 90,
		Features:    []string{"Thermal mineral pools", "Pressure-jet massage"},
		Featured:    true,
	}
}

func (s *ServiceBuilder) BuildView() *queries.ServiceView {
	return &queries.ServiceView{
		ID:          uuid.New(),
		Title:       s.Title,
		Description: s.Description,
		Price:       s.Price,
		DurationMin: s.DurationMin,
		Features:    s.Features,
		Featured:    s.Featured,
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *ServiceBuilder) WithTitle(title string) *ServiceBuilder {
	s.Title = title
	return s
}

func (s *ServiceBuilder) WithPrice(price int32) *ServiceBuilder {
	s.Price = price
	return s
}

func (s *ServiceBuilder) WithDuration(durationMin int32) *ServiceBuilder {
	s.DurationMin = durationMin
	return s
}
