package analysis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DoctFaust/campus-info-system/internal/models"
)

func TestSnapshot_SkipsMalformedAndCopies(t *testing.T) {
	in := []models.Incident{
		at(1, 40.75, -73.98),
		at(2, math.NaN(), -73.98),
		at(3, 40.75, math.Inf(-1)),
		at(4, 95, 10),
		at(5, 0, 0),
	}
	in[4].ReporterName = ""

	out := Snapshot(in)

	require.Len(t, out, 2)
	assert.Equal(t, int64(1), out[0].ID)
	assert.Equal(t, int64(5), out[1].ID)
	assert.Equal(t, models.DefaultReporterName, out[1].ReporterName)

	// вход не изменяется
	assert.Equal(t, "", in[4].ReporterName)
	out[0].Description = "changed"
	assert.Equal(t, "test incident", in[0].Description)
}

func TestSnapshot_Empty(t *testing.T) {
	assert.Empty(t, Snapshot(nil))
}

func TestParamsWith_OverridesOnlyPositive(t *testing.T) {
	def := DefaultParams()

	p := def.With(Query{ClusterDistance: 0.002, BufferRadius: -5})

	assert.Equal(t, 0.002, p.ClusterDistance)
	assert.Equal(t, def.BufferRadius, p.BufferRadius)
	assert.Equal(t, def.GridCellSize, p.GridCellSize)
}

func TestParamsWith_IgnoresNonFinite(t *testing.T) {
	def := DefaultParams()

	p := def.With(Query{ClusterDistance: math.NaN(), BufferRadius: math.Inf(1), CellSize: math.Inf(1)})

	assert.Equal(t, def, p)
}
