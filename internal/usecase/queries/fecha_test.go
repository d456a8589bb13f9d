//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"salon-reservas/internal/domain/schedule"
	"salon-reservas/internal/infra"
	"salon-reservas/internal/pkg/clock"
	"salon-reservas/internal/pkg/config"
	"salon-reservas/internal/usecase/queries"
	queriesmock "salon-reservas/tests/mock/queries"
)

type DayQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockDayReadStore
	mockCache     *queriesmock.MockCalendarCache
	clock         *clock.MockClock
	queries       queries.DayQueries
}

func (s *DayQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockDayReadStore(s.mockCtrl)
	s.mockCache = queriesmock.NewMockCalendarCache(s.mockCtrl)

	// 15:00 UTC is noon in Buenos Aires, so "today" is 2025-03-15 there.
	s.clock = clock.NewMockClock(time.Date(2025, 3, 15, 15, 0, 0, 0, time.UTC))

	q, err := queries.NewDayQueries(s.mockReadStore, s.mockCache, s.clock, config.NewTestConfig())
	s.Require().NoError(err)
	s.queries = q
}

func (s *DayQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestDayQueriesSuite(t *testing.T) {
	suite.Run(t, new(DayQueriesTestSuite))
}

func price(v float64) *float64 { return &v }

func (s *DayQueriesTestSuite) TestGetCalendarCacheHit() {
	cached := queries.CalendarView{
		Mes:    3,
		Anio:   2025,
		Dias:   []queries.CalendarCellView{{Dia: "2025-03-01", Estado: "pasada"}},
		MesMin: "2025-03",
		MesMax: "2025-09",
	}

	s.mockCache.EXPECT().
		GetJSON(gomock.Any(), "calendario:2025-03", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, dest any) (bool, error) {
			*dest.(*queries.CalendarView) = cached
			return true, nil
		}).Times(1)

	view, err := s.queries.GetCalendar(context.Background(), 3, 2025)

	s.Require().NoError(err)
	s.Equal(&cached, view)
}

func (s *DayQueriesTestSuite) TestGetCalendarCacheMiss() {
	reserved, err := schedule.NewDay(
		time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		schedule.StatusReserved,
		price(150000),
	)
	s.Require().NoError(err)

	s.mockCache.EXPECT().
		GetJSON(gomock.Any(), "calendario:2025-03", gomock.Any()).
		Return(false, nil).Times(1)
	s.mockReadStore.EXPECT().
		FindByMonth(gomock.Any(), 2025, time.March).
		Return([]*schedule.Day{reserved}, nil).Times(1)
	s.mockCache.EXPECT().
		SetJSON(gomock.Any(), "calendario:2025-03", gomock.Any()).
		Return(nil).Times(1)

	view, err := s.queries.GetCalendar(context.Background(), 3, 2025)

	s.Require().NoError(err)
	s.Equal(3, view.Mes)
	s.Equal(2025, view.Anio)
	s.Equal("2025-03", view.MesMin)
	s.Equal("2025-09", view.MesMax)
	s.Require().Len(view.Dias, 31)

	s.Equal("pasada", view.Dias[9].Estado) // March 10 is behind today
	s.Equal("reservada", view.Dias[19].Estado)
	s.Require().NotNil(view.Dias[19].ValorEstimado)
	s.Equal(150000.0, *view.Dias[19].ValorEstimado)
	s.Equal("disponible", view.Dias[24].Estado)
	s.Nil(view.Dias[24].ValorEstimado)
}

func (s *DayQueriesTestSuite) TestGetCalendarCacheFailureFallsThrough() {
	s.mockCache.EXPECT().
		GetJSON(gomock.Any(), "calendario:2025-04", gomock.Any()).
		Return(false, infra.WrapRepoErr("redis down", nil)).Times(1)
	s.mockReadStore.EXPECT().
		FindByMonth(gomock.Any(), 2025, time.April).
		Return(nil, nil).Times(1)
	s.mockCache.EXPECT().
		SetJSON(gomock.Any(), "calendario:2025-04", gomock.Any()).
		Return(nil).Times(1)

	view, err := s.queries.GetCalendar(context.Background(), 4, 2025)

	s.Require().NoError(err)
	s.Len(view.Dias, 30)
}

func (s *DayQueriesTestSuite) TestGetCalendarRejectsOutOfRangeMonths() {
	// Neither the cache nor the read store may be touched.
	tests := []struct {
		name  string
		month int
		year  int
	}{
		{name: "month before current", month: 2, year: 2025},
		{name: "month beyond horizon", month: 10, year: 2025},
		{name: "month zero", month: 0, year: 2025},
		{name: "month thirteen", month: 13, year: 2025},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			view, err := s.queries.GetCalendar(context.Background(), tt.month, tt.year)

			s.Require().ErrorIs(err, queries.ErrInvalidMonth)
			s.Nil(view)
		})
	}
}

func (s *DayQueriesTestSuite) TestGetDay() {
	day, err := schedule.NewDay(
		time.Date(2025, 4, 5, 0, 0, 0, 0, time.UTC),
		schedule.StatusAvailable,
		price(120000),
	)
	s.Require().NoError(err)

	s.Run("success: returns the configured day", func() {
		s.mockReadStore.EXPECT().
			FindByID(gomock.Any(), day.ID()).
			Return(day, nil).Times(1)

		view, err := s.queries.GetDay(context.Background(), day.ID())

		s.Require().NoError(err)
		s.Equal("2025-04-05", view.Dia)
		s.Equal("disponible", view.Estado)
	})

	s.Run("error: unknown id maps to ErrDayNotFound", func() {
		s.mockReadStore.EXPECT().
			FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("day not found", nil, infra.KindNotFound)).Times(1)

		view, err := s.queries.GetDay(context.Background(), day.ID())

		s.Require().ErrorIs(err, queries.ErrDayNotFound)
		s.Nil(view)
	})
}
