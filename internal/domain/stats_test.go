package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeCheckInStats(t *testing.T) {
	tests := []struct {
		name      string
		attendees []Attendee
		want      CheckInStats
	}{
		{
			name:      "no attendees has zero rate",
			attendees: nil,
			want:      CheckInStats{Total: 0, CheckedIn: 0, Rate: 0},
		},
		{
			name: "half checked in",
			attendees: []Attendee{
				{CheckedIn: true},
				{CheckedIn: false},
				{CheckedIn: true},
				{CheckedIn: false},
			},
			want: CheckInStats{Total: 4, CheckedIn: 2, Rate: 50},
		},
		{
			name:      "all checked in",
			attendees: []Attendee{{CheckedIn: true}},
			want:      CheckInStats{Total: 1, CheckedIn: 1, Rate: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ComputeCheckInStats(tt.attendees))
		})
	}
}

func TestComputeOrderStats(t *testing.T) {
	orders := []Order{
		{Amount: 100, Status: OrderPaid},
		{Amount: 50, Status: OrderIncomplete},
		{Amount: 0, Status: OrderComplete},
		{Amount: 25.5, Status: OrderPaid},
	}

	got := ComputeOrderStats(orders)

	assert.Equal(t, OrderStats{
		TotalOrders:  4,
		TotalRevenue: 175.5,
		Paid:         2,
		Incomplete:   1,
		Complete:     1,
		Free:         1,
	}, got)
}

func TestComputeOrderStatsEmpty(t *testing.T) {
	assert.Equal(t, OrderStats{}, ComputeOrderStats(nil))
}

func TestComputeUtmStats(t *testing.T) {
	records := []UtmRecord{
		{Visits: 100, Conversions: 10},
		{Visits: 100, Conversions: 15},
	}

	got := ComputeUtmStats(records)

	assert.Equal(t, UtmStats{Records: 2, Visits: 200, Conversions: 25, ConversionRate: 12.5}, got)
}

func TestComputeUtmStatsNoVisits(t *testing.T) {
	got := ComputeUtmStats([]UtmRecord{{Visits: 0, Conversions: 0}})

	assert.Equal(t, UtmStats{Records: 1}, got)
}

func TestPercentage(t *testing.T) {
	assert.Equal(t, float64(0), Percentage(5, 0))
	assert.Equal(t, float64(25), Percentage(1, 4))
	assert.Equal(t, float64(100), Percentage(3, 3))
}

func TestOrderFree(t *testing.T) {
	assert.True(t, Order{Amount: 0}.Free())
	assert.False(t, Order{Amount: 0.01}.Free())
}
