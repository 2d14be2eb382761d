// Package views derives read-side projections from store snapshots. Every
// projection is a pure function of one snapshot; results are memoized
// against the store's change-version counter so repeated reads between
// mutations cost one map lookup instead of a recomputation.
package views

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/leadscout/outreach-dashboard/internal/domain"
	"github.com/leadscout/outreach-dashboard/internal/store"
)

// Views is the memoized projection layer over one store
type Views struct {
	store *store.Store

	mu      sync.Mutex
	version uint64
	fresh   bool
	snap    domain.AppState
	memo    map[string]any
}

// New creates the projection layer for a store
func New(s *store.Store) *Views {
	return &Views{store: s, memo: make(map[string]any)}
}

// cached returns the memoized value for key, recomputing it from a fresh
// snapshot when the store version moved since the last read
func (v *Views) cached(key string, compute func(domain.AppState) any) any {
	v.mu.Lock()
	defer v.mu.Unlock()

	if version := v.store.Version(); !v.fresh || version != v.version {
		v.snap = v.store.Snapshot()
		v.version = version
		v.fresh = true
		v.memo = make(map[string]any)
	}

	if val, ok := v.memo[key]; ok {
		return val
	}

	val := compute(v.snap)
	v.memo[key] = val

	return val
}

// Snapshot returns the cached state snapshot backing the projections
func (v *Views) Snapshot() domain.AppState {
	return v.cached("snapshot", func(snap domain.AppState) any {
		return snap
	}).(domain.AppState)
}

// Filtered returns the businesses matching the active search query:
// case-insensitive substring match on name or address. An empty query
// matches everything.
func (v *Views) Filtered() []domain.Business {
	return v.cached("filtered", func(snap domain.AppState) any {
		return filterBusinesses(snap.Businesses, snap.SearchQuery)
	}).([]domain.Business)
}

// FilteredBy matches businesses against an explicit query without
// touching the stored search settings. Read-only endpoints filter
// through here; dispatching UpdateSearchQuery is reserved for the
// search mutation itself.
func (v *Views) FilteredBy(query string) []domain.Business {
	return v.cached("filtered:"+query, func(snap domain.AppState) any {
		return filterBusinesses(snap.Businesses, query)
	}).([]domain.Business)
}

func filterBusinesses(businesses []domain.Business, query string) []domain.Business {
	if query == "" {
		return businesses
	}

	needle := strings.ToLower(query)
	out := make([]domain.Business, 0, len(businesses))

	for _, biz := range businesses {
		if strings.Contains(strings.ToLower(biz.Name), needle) ||
			strings.Contains(strings.ToLower(biz.Address), needle) {
			out = append(out, biz)
		}
	}

	return out
}

// FocusBusiness returns the business the map explorer centers on: the
// selected business when it survives the filter, else the first match,
// else nil
func (v *Views) FocusBusiness() *domain.Business {
	filtered := v.Filtered()

	snap := v.Snapshot()
	if biz := domain.FindBusiness(filtered, snap.SelectedBusinessID); biz != nil {
		return biz
	}

	if len(filtered) > 0 {
		return &filtered[0]
	}

	return nil
}

// CurrentBusiness returns the exactly selected business, or nil. Unlike
// FocusBusiness there is no fallback: the profile view shows an empty
// state when nothing is selected.
func (v *Views) CurrentBusiness() *domain.Business {
	snap := v.Snapshot()
	return domain.FindBusiness(snap.Businesses, snap.SelectedBusinessID)
}

// MapCenter returns the map center: the focused business's location,
// else the arithmetic mean of the filtered set, else the continental
// default when nothing matches
func (v *Views) MapCenter() domain.Location {
	if biz := v.FocusBusiness(); biz != nil {
		return biz.Location
	}

	filtered := v.Filtered()
	if len(filtered) == 0 {
		return domain.DefaultMapCenter
	}

	var lat, lng float64
	for _, biz := range filtered {
		lat += biz.Location.Lat
		lng += biz.Location.Lng
	}

	n := float64(len(filtered))

	return domain.Location{Lat: lat / n, Lng: lng / n}
}

// SortedByFunnel returns all businesses stably sorted by funnel priority
// rank; ties keep their seed order
func (v *Views) SortedByFunnel() []domain.Business {
	return v.cached("sorted", func(snap domain.AppState) any {
		sorted := make([]domain.Business, len(snap.Businesses))
		copy(sorted, snap.Businesses)

		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Status.Rank() < sorted[j].Status.Rank()
		})

		return sorted
	}).([]domain.Business)
}

// EventsByBusiness partitions the event log by business id, preserving
// insertion order within each group
func (v *Views) EventsByBusiness() map[string][]domain.EmailEvent {
	return v.cached("eventsByBusiness", func(snap domain.AppState) any {
		grouped := make(map[string][]domain.EmailEvent)
		for _, event := range snap.EmailEvents {
			grouped[event.BusinessID] = append(grouped[event.BusinessID], event)
		}

		return grouped
	}).(map[string][]domain.EmailEvent)
}

// EngagementCounts returns per-type event counts for one business. Types
// with no events count zero.
func (v *Views) EngagementCounts(businessID string) map[domain.EventType]int {
	counts := map[domain.EventType]int{
		domain.EventSent:    0,
		domain.EventOpened:  0,
		domain.EventClicked: 0,
		domain.EventReply:   0,
	}

	for _, event := range v.EventsByBusiness()[businessID] {
		counts[event.Type]++
	}

	return counts
}

// Scoreboard aggregates send/open/reply totals and the derived rates
type Scoreboard struct {
	Sent      int `json:"sent"`
	Opened    int `json:"opened"`
	Clicked   int `json:"clicked"`
	Replies   int `json:"replies"`
	OpenRate  int `json:"open_rate"`
	ReplyRate int `json:"reply_rate"`
}

// Scoreboard computes engagement rates over the whole event log. The
// denominator floors at one send so the rates stay defined (and zero)
// before any outreach has run.
func (v *Views) Scoreboard() Scoreboard {
	return v.cached("scoreboard", func(snap domain.AppState) any {
		var board Scoreboard

		for _, event := range snap.EmailEvents {
			switch event.Type {
			case domain.EventSent:
				board.Sent++
			case domain.EventOpened:
				board.Opened++
			case domain.EventClicked:
				board.Clicked++
			case domain.EventReply:
				board.Replies++
			}
		}

		total := board.Sent
		if total < 1 {
			total = 1
		}

		board.OpenRate = roundPct(board.Opened, total)
		board.ReplyRate = roundPct(board.Replies, total)

		return board
	}).(Scoreboard)
}

func roundPct(part, total int) int {
	return int(float64(part)/float64(total)*100 + 0.5)
}

// FeedEntry is one engagement feed row: an event joined with its business
type FeedEntry struct {
	Event    domain.EmailEvent `json:"event"`
	Business domain.Business   `json:"business"`
	Label    string            `json:"label"`
}

// Feed returns the latest engagement events by timestamp descending,
// joined with their businesses. Events referencing a business that no
// longer resolves are skipped, matching the lenient foreign keys of the
// event log.
func (v *Views) Feed(limit int) []FeedEntry {
	snap := v.Snapshot()

	events := make([]domain.EmailEvent, len(snap.EmailEvents))
	copy(events, snap.EmailEvents)

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp.After(events[j].Timestamp)
	})

	entries := make([]FeedEntry, 0, limit)

	for _, event := range events {
		if len(entries) >= limit {
			break
		}

		biz := domain.FindBusiness(snap.Businesses, event.BusinessID)
		if biz == nil {
			continue
		}

		entries = append(entries, FeedEntry{Event: event, Business: *biz, Label: event.Type.Label()})
	}

	return entries
}

// HeadsUp is the sending-queue summary shown above the tracking table
type HeadsUp struct {
	Pending    int `json:"pending"`
	Interested int `json:"interested"`
}

// HeadsUp counts businesses awaiting engagement (email sent, nothing
// back yet) and businesses that signalled interest
func (v *Views) HeadsUp() HeadsUp {
	return v.cached("headsUp", func(snap domain.AppState) any {
		var h HeadsUp

		for _, biz := range snap.Businesses {
			switch biz.Status {
			case domain.StatusEmailSent:
				h.Pending++
			case domain.StatusInterested:
				h.Interested++
			}
		}

		return h
	}).(HeadsUp)
}

// BreakdownSlice is one segment of the pipeline donut
type BreakdownSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// TrendPoint is one day bucket of the engagement trend line
type TrendPoint struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// Overview is the dashboard header projection
type Overview struct {
	Stats          domain.OutreachStats `json:"stats"`
	WithoutWebsite int                  `json:"without_website"`
	Breakdown      []BreakdownSlice     `json:"breakdown"`
	Trend          []TrendPoint         `json:"trend"`
}

const trendDays = 8

// Overview assembles the dashboard metrics: derived stats, the count of
// businesses missing a website, the pipeline status breakdown, and the
// engagement trend bucketed by calendar day (last eight buckets)
func (v *Views) Overview() Overview {
	return v.cached("overview", func(snap domain.AppState) any {
		o := Overview{Stats: snap.Stats}

		counts := make(map[domain.BusinessStatus]int)

		for _, biz := range snap.Businesses {
			if !biz.HasWebsite {
				o.WithoutWebsite++
			}

			counts[biz.Status]++
		}

		o.Breakdown = []BreakdownSlice{
			{Label: domain.StatusInterested.Label(), Value: counts[domain.StatusInterested]},
			{Label: domain.StatusReplied.Label(), Value: counts[domain.StatusReplied]},
			{Label: domain.StatusOpened.Label(), Value: counts[domain.StatusOpened]},
			{Label: domain.StatusEmailSent.Label(), Value: counts[domain.StatusEmailSent]},
		}

		o.Trend = engagementTrend(snap.EmailEvents)

		return o
	}).(Overview)
}

func engagementTrend(events []domain.EmailEvent) []TrendPoint {
	buckets := make(map[time.Time]int)

	for _, event := range events {
		day := event.Timestamp.UTC().Truncate(24 * time.Hour)
		buckets[day]++
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}

	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	if len(days) > trendDays {
		days = days[len(days)-trendDays:]
	}

	trend := make([]TrendPoint, 0, len(days))
	for _, day := range days {
		trend = append(trend, TrendPoint{Label: day.Format("Jan 2"), Value: buckets[day]})
	}

	return trend
}
