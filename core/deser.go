package core

import (
	"fmt"
	"math"

	capnp "zombiezen.com/go/capnproto2"
)

// Layout of snapshot.capnp.
var (
	snapshotSize  = capnp.ObjectSize{DataSize: 0, PointerCount: 1}
	zoneTallySize = capnp.ObjectSize{DataSize: 8, PointerCount: 2}
)

const (
	snapshotZonesPtr = 0

	zoneTallyCountOff = 0
	zoneTallyZonePtr  = 0
	zoneTallyHoursPtr = 1
)

// NOTE: Tests are in deser_test.go

// TallyToBytes encodes tally with zones in ascending order, so equal tallies
// encode to equal bytes.
func TallyToBytes(tally *Tally) ([]byte, error) {
	msg, seg, err := capnp.NewMessage(capnp.SingleSegment(nil))
	if err != nil {
		return nil, err
	}
	root, err := capnp.NewRootStruct(seg, snapshotSize)
	if err != nil {
		return nil, err
	}

	zones := tally.ZoneNames()
	zoneList, err := capnp.NewCompositeList(seg, zoneTallySize, int32(len(zones)))
	if err != nil {
		return nil, err
	}

	for i, zone := range zones {
		zoneProto := zoneList.Struct(i)
		zoneProto.SetUint64(zoneTallyCountOff, uint64(tally.zones[zone]))
		if err := zoneProto.SetText(zoneTallyZonePtr, zone); err != nil {
			return nil, err
		}

		hoursProto, err := capnp.NewInt64List(seg, HoursPerDay)
		if err != nil {
			return nil, err
		}
		for hour, count := range tally.hours[zone] {
			hoursProto.Set(hour, count)
		}
		if err := zoneProto.SetPtr(zoneTallyHoursPtr, hoursProto.List.ToPtr()); err != nil {
			return nil, err
		}
	}

	if err := root.SetPtr(snapshotZonesPtr, zoneList.ToPtr()); err != nil {
		return nil, err
	}
	return msg.Marshal()
}

// BytesToTally decodes a snapshot written by TallyToBytes. Snapshots whose
// hour slots do not add up to their zone count are rejected.
func BytesToTally(buf []byte) (*Tally, error) {
	msg, err := capnp.Unmarshal(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	msg.TraverseLimit = math.MaxUint64

	rootPtr, err := msg.RootPtr()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	zonesPtr, err := rootPtr.Struct().Ptr(snapshotZonesPtr)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
	}
	zoneList := zonesPtr.List()

	tally := NewTally()
	for i := 0; i < zoneList.Len(); i++ {
		zoneProto := zoneList.Struct(i)

		zonePtr, err := zoneProto.Ptr(zoneTallyZonePtr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		zone := zonePtr.Text()
		if zone == "" {
			return nil, fmt.Errorf("%w: entry %d has no zone", ErrCorruptSnapshot, i)
		}

		hoursPtr, err := zoneProto.Ptr(zoneTallyHoursPtr)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptSnapshot, err)
		}
		hoursProto := capnp.Int64List{List: hoursPtr.List()}
		if hoursProto.Len() != HoursPerDay {
			return nil, fmt.Errorf("%w: zone %q has %d hour slots",
				ErrCorruptSnapshot, zone, hoursProto.Len())
		}

		slots := make([]int64, HoursPerDay)
		var sum int64
		for hour := range slots {
			slots[hour] = hoursProto.At(hour)
			if slots[hour] < 0 {
				return nil, fmt.Errorf("%w: zone %q has a negative count", ErrCorruptSnapshot, zone)
			}
			sum += slots[hour]
		}
		count := int64(zoneProto.Uint64(zoneTallyCountOff))
		if sum != count {
			return nil, fmt.Errorf("%w: zone %q counts %d trips but its hours sum to %d",
				ErrCorruptSnapshot, zone, count, sum)
		}

		tally.zones[zone] = count
		tally.hours[zone] = slots
	}
	return tally, nil
}
