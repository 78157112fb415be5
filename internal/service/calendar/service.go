package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/presensiku/payroll-backend-go/internal/domain/holiday"
)

// HolidayService manages the declared holiday set.
type HolidayService struct {
	holiday.HolidayRepository
}

func NewHolidayService(repo holiday.HolidayRepository) *HolidayService {
	return &HolidayService{HolidayRepository: repo}
}

func (s *HolidayService) Declare(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse(dateLayout, req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	created, err := s.HolidayRepository.Create(ctx, holiday.Holiday{
		Date:        date,
		Description: req.Description,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}

	return holiday.ToResponse(created), nil
}

func (s *HolidayService) ListYear(ctx context.Context, year int) ([]holiday.HolidayResponse, error) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	holidays, err := s.HolidayRepository.ListRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}
	return responses, nil
}

func (s *HolidayService) Remove(ctx context.Context, id string) error {
	return s.HolidayRepository.SoftDelete(ctx, id)
}
