package domain

// Derived statistics are computed over collections already fetched into
// memory. All functions here are pure and safe on empty input.

type CheckInStats struct {
	Total     int     `json:"total"`
	CheckedIn int     `json:"checked_in"`
	Rate      float64 `json:"rate"` // percentage, 0 when Total is 0
}

func ComputeCheckInStats(attendees []Attendee) CheckInStats {
	stats := CheckInStats{Total: len(attendees)}
	for _, a := range attendees {
		if a.CheckedIn {
			stats.CheckedIn++
		}
	}
	stats.Rate = Percentage(int64(stats.CheckedIn), int64(stats.Total))

	return stats
}

type OrderStats struct {
	TotalOrders  int     `json:"total_orders"`
	TotalRevenue float64 `json:"total_revenue"`
	Paid         int     `json:"paid"`
	Incomplete   int     `json:"incomplete"`
	Complete     int     `json:"complete"`
	Free         int     `json:"free"`
}

func ComputeOrderStats(orders []Order) OrderStats {
	stats := OrderStats{TotalOrders: len(orders)}
	for _, o := range orders {
		stats.TotalRevenue += o.Amount

		if o.Free() {
			stats.Free++
		}

		switch o.Status {
		case OrderPaid:
			stats.Paid++
		case OrderIncomplete:
			stats.Incomplete++
		case OrderComplete:
			stats.Complete++
		}
	}

	return stats
}

type UtmStats struct {
	Records        int     `json:"records"`
	Visits         int64   `json:"visits"`
	Conversions    int64   `json:"conversions"`
	ConversionRate float64 `json:"conversion_rate"` // percentage, 0 when Visits is 0
}

func ComputeUtmStats(records []UtmRecord) UtmStats {
	stats := UtmStats{Records: len(records)}
	for _, r := range records {
		stats.Visits += r.Visits
		stats.Conversions += r.Conversions
	}
	stats.ConversionRate = Percentage(stats.Conversions, stats.Visits)

	return stats
}

// Percentage returns part/total as a percentage, 0 when total is 0.
func Percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * 100
}
