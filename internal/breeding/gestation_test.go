package breeding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEstimatePartoDate(t *testing.T) {
	monta := time.Date(2026, time.January, 10, 0, 0, 0, 0, time.UTC)
	want := time.Date(2026, time.June, 9, 0, 0, 0, 0, time.UTC) // 150 días después

	assert.Equal(t, want, EstimatePartoDate(monta))
}

func TestEstimatePartoDateCrossesYear(t *testing.T) {
	monta := time.Date(2026, time.November, 1, 0, 0, 0, 0, time.UTC)
	got := EstimatePartoDate(monta)

	assert.Equal(t, 2027, got.Year())
	assert.Equal(t, GestationDays, int(got.Sub(monta).Hours()/24))
}
