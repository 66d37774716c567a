package core

import "tripstats/stats"

// ZoneProfile summarises when trips start in a zone.
type ZoneProfile struct {
	Zone     string
	Trips    int64
	PeakHour int
	MeanHour float64
	SDHour   float64
}

// Profile computes the hour-of-day profile of zone. The peak hour is the
// busiest one, the earliest on ties.
func (tally *Tally) Profile(zone string) (ZoneProfile, bool) {
	slots, ok := tally.hours[zone]
	if !ok {
		return ZoneProfile{}, false
	}

	welford := stats.NewWelford()
	peak := 0
	for hour, count := range slots {
		if count > slots[peak] {
			peak = hour
		}
		welford.UpdateN(float64(hour), uint64(count))
	}

	return ZoneProfile{
		Zone:     zone,
		Trips:    tally.zones[zone],
		PeakHour: peak,
		MeanHour: welford.GetMean(),
		SDHour:   welford.GetSD(),
	}, true
}
