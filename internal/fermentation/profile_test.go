package fermentation

import (
	"testing"

	"controlling_fermentation/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProfile_SamplesAtMultiplesOfInterval(t *testing.T) {
	schedule := []models.TemperatureBreakpoint{{Time: 0, TempC: 24}, {Time: 20, TempC: 26}}

	p, err := NewProfile(schedule, 25, 10)
	require.NoError(t, err)
	require.Len(t, p.Samples, 3)
	assert.Equal(t, []models.TemperatureSample{
		{Time: 0, TempC: 24},
		{Time: 10, TempC: 24},
		{Time: 20, TempC: 26},
	}, p.Samples)

	p, err = NewProfile(schedule, 0, 10)
	require.NoError(t, err)
	assert.Len(t, p.Samples, 1)

	p, err = NewProfile(schedule, 30, 10)
	require.NoError(t, err)
	assert.Equal(t, 30, p.Samples[len(p.Samples)-1].Time)
}

func TestNewProfile_RejectsBadInput(t *testing.T) {
	schedule := []models.TemperatureBreakpoint{{Time: 0, TempC: 24}}

	_, err := NewProfile(nil, 60, 10)
	assert.ErrorIs(t, err, ErrInvalidProfile)
	_, err = NewProfile(schedule, 60, 0)
	assert.ErrorIs(t, err, ErrInvalidProfile)
	_, err = NewProfile(schedule, -1, 10)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestTemperatureAt_ZeroOrderHold(t *testing.T) {
	schedule := []models.TemperatureBreakpoint{
		{Time: 60, TempC: 20},
		{Time: 120, TempC: 30},
		{Time: 180, TempC: 25},
	}
	assert.Equal(t, 20.0, TemperatureAt(schedule, 0), "first entry holds before its own time")
	assert.Equal(t, 20.0, TemperatureAt(schedule, 119))
	assert.Equal(t, 30.0, TemperatureAt(schedule, 120))
	assert.Equal(t, 25.0, TemperatureAt(schedule, 1000))
}

func TestNormalizeSchedule_StableSortWithoutMutation(t *testing.T) {
	in := []models.TemperatureBreakpoint{
		{Time: 120, TempC: 26},
		{Time: 0, TempC: 24},
		{Time: 120, TempC: 27},
	}
	out := NormalizeSchedule(in)
	assert.Equal(t, []models.TemperatureBreakpoint{
		{Time: 0, TempC: 24},
		{Time: 120, TempC: 26},
		{Time: 120, TempC: 27},
	}, out)
	assert.Equal(t, 120, in[0].Time, "input must not be reordered")
	assert.Equal(t, 27.0, TemperatureAt(out, 130), "later duplicate wins")
}
