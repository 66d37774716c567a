package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"tripstats/logger"
)

// Lines read between cancellation checks.
const ctxCheckInterval = 1024

// IngestResult counts the non-empty lines of one ingestion call.
type IngestResult struct {
	Lines    int64
	Accepted int64
	Rejected int64
}

// Analyzer folds trip rows into a Tally and ranks it on demand. It is not
// safe for concurrent use.
type Analyzer struct {
	tally *Tally
	log   logger.Logger
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		tally: NewTally(),
		log:   logger.Nop(),
	}
}

func (a *Analyzer) SetLogger(log logger.Logger) *Analyzer {
	a.log = log
	return a
}

// IngestFile folds every valid row of the CSV file at path into the tallies.
// If the file cannot be opened the tallies are left untouched and the error
// wraps both ErrUnreadable and the underlying *os.PathError.
func (a *Analyzer) IngestFile(ctx context.Context, path string) (IngestResult, error) {
	ctx = logger.WithSource(logger.WithAction(ctx, "ingest_file"), path)

	file, err := os.Open(path)
	if err != nil {
		return IngestResult{}, logger.WrapError(ctx, fmt.Errorf("%w: %w", ErrUnreadable, err))
	}
	defer file.Close()

	return a.Ingest(ctx, file)
}

// Ingest folds every valid line of r into the tallies. Lines may end in "\n"
// or "\r\n" and have no length limit. Rejected rows are skipped silently.
// On a read error or cancellation, rows folded so far stay folded.
func (a *Analyzer) Ingest(ctx context.Context, r io.Reader) (IngestResult, error) {
	var result IngestResult
	reader := bufio.NewReaderSize(r, 64*1024)

	a.log.Debug(ctx, "ingestion started", "zones", a.tally.Len())
	for n := 1; ; n++ {
		if n%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return result, logger.WrapError(ctx, err)
			}
		}

		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			a.ingestLine(line, &result)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return result, logger.WrapError(ctx, fmt.Errorf("%w: %w", ErrUnreadable, err))
		}
	}

	a.log.Info(ctx, "ingestion finished",
		"lines", result.Lines,
		"accepted", result.Accepted,
		"rejected", result.Rejected,
		"zones", a.tally.Len())
	return result, nil
}

func (a *Analyzer) ingestLine(line string, result *IngestResult) {
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	if line == "" {
		return
	}

	result.Lines++
	trip, ok := ParseRow(line)
	if !ok {
		result.Rejected++
		return
	}
	a.tally.Add(trip.Zone, trip.Hour)
	result.Accepted++
}

func (a *Analyzer) ZoneCount(zone string) int64 {
	return a.tally.Count(zone)
}

func (a *Analyzer) HourCount(zone string, hour int) int64 {
	return a.tally.HourCount(zone, hour)
}

// Zones is the number of distinct zones seen.
func (a *Analyzer) Zones() int {
	return a.tally.Len()
}

// Snapshot returns a deep copy of the current tallies.
func (a *Analyzer) Snapshot() *Tally {
	return a.tally.Copy()
}

// Merge adds the counts of other, e.g. a tally ingested elsewhere.
func (a *Analyzer) Merge(other *Tally) {
	a.tally.Merge(other)
}

func (a *Analyzer) TopZones(k int) []ZoneCount {
	return a.tally.TopZones(k)
}

func (a *Analyzer) TopBusySlots(k int) []SlotCount {
	return a.tally.TopBusySlots(k)
}

func (a *Analyzer) ZoneProfile(zone string) (ZoneProfile, bool) {
	return a.tally.Profile(zone)
}
