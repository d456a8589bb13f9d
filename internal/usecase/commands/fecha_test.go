//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"salon-reservas/internal/domain/schedule"
	reqdto "salon-reservas/internal/handler/dto/request"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/usecase/commands"
	commandsmock "salon-reservas/tests/mock/commands"
)

type DayCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockDayRepo *commandsmock.MockDayRepository
	mockCache   *commandsmock.MockCalendarInvalidator
	clock       *clock.MockClock
	commands    commands.DayCommands
}

func (s *DayCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockDayRepo = commandsmock.NewMockDayRepository(s.mockCtrl)
	s.mockCache = commandsmock.NewMockCalendarInvalidator(s.mockCtrl)

	// Noon in Buenos Aires on Saturday 2025-03-15.
	s.clock = clock.NewMockClock(time.Date(2025, 3, 15, 15, 0, 0, 0, time.UTC))

	c, err := commands.NewDayCommands(s.mockDayRepo, s.mockCache, s.clock, config.NewTestConfig())
	s.Require().NoError(err)
	s.commands = c
}

func (s *DayCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDayCommandsSuite(t *testing.T) {
	suite.Run(t, new(DayCommandsTestSuite))
}

func (s *DayCommandsTestSuite) expectCacheInvalidation() {
	s.mockCache.EXPECT().DeletePattern(gomock.Any(), "calendario:*").Return(nil).Times(1)
}

func (s *DayCommandsTestSuite) TestCreateDay() {
	s.Run("success: defaults to available and drops cached calendars", func() {
		s.mockDayRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, d *schedule.Day) error {
				s.Equal("2025-04-12", d.ISODate())
				s.Equal(schedule.StatusAvailable, d.Status())
				return nil
			}).Times(1)
		s.expectCacheInvalidation()

		day, err := s.commands.CreateDay(context.Background(), reqdto.CreateDayRequest{Dia: "2025-04-12"})

		s.Require().NoError(err)
		s.Equal(schedule.StatusAvailable, day.Status())
	})

	s.Run("error: malformed date", func() {
		day, err := s.commands.CreateDay(context.Background(), reqdto.CreateDayRequest{Dia: "12/04/2025"})

		s.Require().ErrorIs(err, commands.ErrInvalidDate)
		s.Nil(day)
	})

	s.Run("error: unknown status", func() {
		day, err := s.commands.CreateDay(context.Background(), reqdto.CreateDayRequest{Dia: "2025-04-12", Estado: "ocupada"})

		s.Require().ErrorIs(err, commands.ErrInvalidStatus)
		s.Nil(day)
	})

	s.Run("error: duplicate date", func() {
		s.mockDayRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate day", nil, infra.KindDuplicateKey)).Times(1)

		day, err := s.commands.CreateDay(context.Background(), reqdto.CreateDayRequest{Dia: "2025-04-12"})

		s.Require().ErrorIs(err, commands.ErrDuplicateDay)
		s.Nil(day)
	})
}

func (s *DayCommandsTestSuite) TestGetOrCreateByDate() {
	date := time.Date(2025, 4, 12, 0, 0, 0, 0, time.UTC)

	s.Run("returns the existing day untouched", func() {
		existing, err := schedule.NewDay(date, schedule.StatusReserved, nil)
		s.Require().NoError(err)

		s.mockDayRepo.EXPECT().FindByDate(gomock.Any(), date).Return(existing, nil).Times(1)

		day, err := s.commands.GetOrCreateByDate(context.Background(), date)

		s.Require().NoError(err)
		s.Equal(existing, day)
	})

	s.Run("creates a fresh available day when none exists", func() {
		s.mockDayRepo.EXPECT().FindByDate(gomock.Any(), date).
			Return(nil, infra.WrapRepoErr("day not found", nil, infra.KindNotFound)).Times(1)
		s.mockDayRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil).Times(1)
		s.expectCacheInvalidation()

		day, err := s.commands.GetOrCreateByDate(context.Background(), date)

		s.Require().NoError(err)
		s.Equal(schedule.StatusAvailable, day.Status())
		s.Nil(day.EstimatedPrice())
		s.Equal("2025-04-12", day.ISODate())
	})

	s.Run("losing the creation race re-reads the winner's row", func() {
		winner, err := schedule.NewDay(date, schedule.StatusAvailable, nil)
		s.Require().NoError(err)

		s.mockDayRepo.EXPECT().FindByDate(gomock.Any(), date).
			Return(nil, infra.WrapRepoErr("day not found", nil, infra.KindNotFound)).Times(1)
		s.mockDayRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(infra.WrapRepoErr("duplicate day", nil, infra.KindDuplicateKey)).Times(1)
		s.mockDayRepo.EXPECT().FindByDate(gomock.Any(), date).Return(winner, nil).Times(1)

		day, err := s.commands.GetOrCreateByDate(context.Background(), date)

		s.Require().NoError(err)
		s.Equal(winner, day)
	})
}

func (s *DayCommandsTestSuite) TestBulkSetPrices() {
	s.Run("prices every matching weekday over the window", func() {
		s.mockDayRepo.EXPECT().
			UpdatePriceForDates(gomock.Any(), gomock.Any(), 180000.0).
			DoAndReturn(func(_ context.Context, dates []time.Time, _ float64) (int, error) {
				// Saturdays between today (itself a Saturday) and one month out.
				s.Require().Len(dates, 5)
				s.Equal("2025-03-15", dates[0].Format("2006-01-02"))
				s.Equal("2025-04-12", dates[4].Format("2006-01-02"))
				for _, d := range dates {
					s.Equal(time.Saturday, d.Weekday())
				}
				return 3, nil
			}).Times(1)
		s.expectCacheInvalidation()

		result, err := s.commands.BulkSetPrices(context.Background(), reqdto.BulkPriceRequest{
			DiaSemana:     6,
			Meses:         1,
			ValorEstimado: 180000,
		})

		s.Require().NoError(err)
		s.Equal(3, result.Updated)
	})

	s.Run("storage failure surfaces unchanged", func() {
		repoErr := infra.WrapRepoErr("db down", nil)
		s.mockDayRepo.EXPECT().
			UpdatePriceForDates(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(0, repoErr).Times(1)

		result, err := s.commands.BulkSetPrices(context.Background(), reqdto.BulkPriceRequest{
			DiaSemana:     6,
			Meses:         1,
			ValorEstimado: 180000,
		})

		s.Require().Error(err)
		s.Nil(result)
	})
}
