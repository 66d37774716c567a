package core

import "sort"

const HoursPerDay = 24

// Tally holds trip counts per zone and per (zone, hour). For every zone the
// 24 hour slots sum to the zone count.
type Tally struct {
	zones map[string]int64
	hours map[string][]int64
}

func NewTally() *Tally {
	return &Tally{
		zones: make(map[string]int64),
		hours: make(map[string][]int64),
	}
}

// Add records one trip.
func (tally *Tally) Add(zone string, hour int) {
	tally.addN(zone, hour, 1)
}

func (tally *Tally) addN(zone string, hour int, n int64) {
	tally.zones[zone] += n
	slots, ok := tally.hours[zone]
	if !ok {
		slots = make([]int64, HoursPerDay)
		tally.hours[zone] = slots
	}
	slots[hour] += n
}

func (tally *Tally) Count(zone string) int64 {
	return tally.zones[zone]
}

func (tally *Tally) HourCount(zone string, hour int) int64 {
	if hour < 0 || hour >= HoursPerDay {
		return 0
	}
	slots, ok := tally.hours[zone]
	if !ok {
		return 0
	}
	return slots[hour]
}

// Hours returns a copy of the 24 hour slots of zone, or nil if the zone is unseen.
func (tally *Tally) Hours(zone string) []int64 {
	slots, ok := tally.hours[zone]
	if !ok {
		return nil
	}
	return append([]int64(nil), slots...)
}

// Len is the number of distinct zones.
func (tally *Tally) Len() int {
	return len(tally.zones)
}

// ZoneNames returns the zones in ascending order.
func (tally *Tally) ZoneNames() []string {
	names := make([]string, 0, len(tally.zones))
	for zone := range tally.zones {
		names = append(names, zone)
	}
	sort.Strings(names)
	return names
}

func (tally *Tally) Copy() *Tally {
	c := NewTally()
	c.Merge(tally)
	return c
}

// Merge adds every count of other into tally.
func (tally *Tally) Merge(other *Tally) {
	for zone, slots := range other.hours {
		for hour, n := range slots {
			if n != 0 {
				tally.addN(zone, hour, n)
			}
		}
	}
}
