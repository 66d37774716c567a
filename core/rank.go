package core

import "tripstats/tree"

const DefaultTopK = 10

type ZoneCount struct {
	Zone  string
	Count int64
}

type SlotCount struct {
	Zone  string
	Hour  int
	Count int64
}

// Count descending, then zone ascending.
func zoneBefore(a, b ZoneCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	return a.Zone < b.Zone
}

// Count descending, then zone ascending, then hour ascending.
func slotBefore(a, b SlotCount) bool {
	if a.Count != b.Count {
		return a.Count > b.Count
	}
	if a.Zone != b.Zone {
		return a.Zone < b.Zone
	}
	return a.Hour < b.Hour
}

// TopZones returns at most k zones ordered by trip count.
func (tally *Tally) TopZones(k int) []ZoneCount {
	if k <= 0 {
		return []ZoneCount{}
	}
	candidates := make([]ZoneCount, 0, len(tally.zones))
	for zone, count := range tally.zones {
		candidates = append(candidates, ZoneCount{Zone: zone, Count: count})
	}
	return tree.TopK(candidates, k, zoneBefore)
}

// TopBusySlots returns at most k non-empty (zone, hour) slots ordered by trip count.
func (tally *Tally) TopBusySlots(k int) []SlotCount {
	if k <= 0 {
		return []SlotCount{}
	}
	candidates := make([]SlotCount, 0, len(tally.hours)*HoursPerDay/2)
	for zone, slots := range tally.hours {
		for hour, count := range slots {
			if count > 0 {
				candidates = append(candidates, SlotCount{Zone: zone, Hour: hour, Count: count})
			}
		}
	}
	return tree.TopK(candidates, k, slotBefore)
}
