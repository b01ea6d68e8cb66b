package seed_test

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ticketdash/ticketdash/core"
	"github.com/ticketdash/ticketdash/internal/contract"
	"github.com/ticketdash/ticketdash/internal/seed"
	"github.com/ticketdash/ticketdash/schema"
)

func TestSeederRun(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("DeleteAllRecords", mock.Anything).Return(int64(0), nil)
	ms.On("DeleteAllValues", mock.Anything, schema.PerformanceKind).Return(int64(0), nil)
	ms.On("DeleteAllValues", mock.Anything, schema.AvailabilityKind).Return(int64(0), nil)

	// One demo project already exists and must be reused, not recreated.
	ms.On("ListProjects", mock.Anything).Return([]schema.Project{
		{ID: 1, Name: "Customer Support"},
	}, nil)
	ms.On("CreateProject", mock.Anything, mock.Anything, mock.Anything, (*int64)(nil)).
		Return(&schema.Project{ID: 2}, nil)

	var savedRecords []schema.AnalysisRecord
	ms.On("SaveRecords", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedRecords = append(savedRecords, args.Get(1).([]schema.AnalysisRecord)...)
		}).
		Return([]int64{1}, nil)

	var savedValues []schema.ValueRecord
	ms.On("SaveValues", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedValues = append(savedValues, args.Get(2).([]schema.ValueRecord)...)
		}).
		Return([]int64{1}, nil)

	seeder := seed.New(ms, rand.New(rand.NewPCG(1, 2)))
	sum, err := seeder.Run(context.Background(), 2025)
	require.NoError(t, err)

	assert.Equal(t, 5, sum.Projects)
	assert.Equal(t, len(savedRecords), sum.Records)
	assert.Equal(t, len(savedValues), sum.Values)
	ms.AssertNotCalled(t, "CreateProject", mock.Anything, "Customer Support", mock.Anything, mock.Anything)

	// Every generated record must be internally consistent: the cached
	// totals equal the sums of its per-month detail and the rate is
	// recomputable from them.
	for _, rec := range savedRecords {
		assert.GreaterOrEqual(t, rec.Year, 2023)
		assert.LessOrEqual(t, rec.Year, 2025)
		require.NotEmpty(t, rec.Months)
		assert.NotEmpty(t, rec.Filename)

		facts := core.FlattenRecords([]schema.AnalysisRecord{rec})
		require.Len(t, facts, len(rec.Months))

		var total, resolved int
		for _, f := range facts {
			total += f.TotalTickets
			resolved += f.ResolvedIn2Days
		}
		assert.Equal(t, rec.TotalTickets, total)
		assert.Equal(t, rec.ResolvedIn2Days, resolved)
		assert.InDelta(t, core.Rate(resolved, total), rec.SuccessRate, 0.01)
	}

	for _, v := range savedValues {
		assert.GreaterOrEqual(t, v.Value, 75.0)
		assert.LessOrEqual(t, v.Value, 100.0)
		assert.Contains(t, []string{"Q1", "Q2", "Q3", "Q4"}, v.Quarter)
		assert.Contains(t, schema.MonthNames, v.Month)
	}
}

func TestSeederRun_ValuesMirrorRecordMonths(t *testing.T) {
	ms := &contract.MockStore{}
	ms.On("DeleteAllRecords", mock.Anything).Return(int64(0), nil)
	ms.On("DeleteAllValues", mock.Anything, mock.Anything).Return(int64(0), nil)
	ms.On("ListProjects", mock.Anything).Return([]schema.Project{}, nil)
	ms.On("CreateProject", mock.Anything, mock.Anything, mock.Anything, (*int64)(nil)).
		Return(&schema.Project{ID: 7}, nil)
	ms.On("SaveRecords", mock.Anything, mock.Anything).Return([]int64{1}, nil)

	perKind := map[schema.ValueKind]int{}
	ms.On("SaveValues", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			kind := args.Get(1).(schema.ValueKind)
			perKind[kind] += len(args.Get(2).([]schema.ValueRecord))
		}).
		Return([]int64{1}, nil)

	seeder := seed.New(ms, rand.New(rand.NewPCG(3, 4)))
	sum, err := seeder.Run(context.Background(), 2024)
	require.NoError(t, err)

	// Both series cover the same months, so their counts match.
	assert.Equal(t, perKind[schema.PerformanceKind], perKind[schema.AvailabilityKind])
	assert.Equal(t, sum.Values, perKind[schema.PerformanceKind]+perKind[schema.AvailabilityKind])
}
