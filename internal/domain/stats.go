package domain

import "math"

// OutreachStats contains the aggregate dashboard counters derived from
// the business collection. Recomputed by ComputeStats after every
// business mutation; the stats-patch action is the only way to override
// them directly.
type OutreachStats struct {
	TotalAnalyzed int `json:"total_analyzed"`
	EmailsSent    int `json:"emails_sent"`
	ResponseRate  int `json:"response_rate"`
}

// StatsPatch is a partial stats override; nil fields are left untouched
type StatsPatch struct {
	TotalAnalyzed *int `json:"total_analyzed,omitempty"`
	EmailsSent    *int `json:"emails_sent,omitempty"`
	ResponseRate  *int `json:"response_rate,omitempty"`
}

// Apply shallow-merges the patch into the stats
func (p StatsPatch) Apply(stats OutreachStats) OutreachStats {
	if p.TotalAnalyzed != nil {
		stats.TotalAnalyzed = *p.TotalAnalyzed
	}

	if p.EmailsSent != nil {
		stats.EmailsSent = *p.EmailsSent
	}

	if p.ResponseRate != nil {
		stats.ResponseRate = *p.ResponseRate
	}

	return stats
}

// ComputeStats derives aggregate counters from a business collection.
// EmailsSent counts every business past not_contacted; ResponseRate is
// the rounded percentage of replied or interested prospects over total.
func ComputeStats(businesses []Business) OutreachStats {
	stats := OutreachStats{TotalAnalyzed: len(businesses)}

	responded := 0

	for _, biz := range businesses {
		if biz.Status != StatusNotContacted {
			stats.EmailsSent++
		}

		if biz.Status == StatusReplied || biz.Status == StatusInterested {
			responded++
		}
	}

	if stats.TotalAnalyzed > 0 {
		stats.ResponseRate = int(math.Round(float64(responded) / float64(stats.TotalAnalyzed) * 100))
	}

	return stats
}
