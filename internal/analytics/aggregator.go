// Package analytics folds the scan log into per-manufacturer
// aggregates: totals, per-source splits, a gapless daily series and a
// mismatch heatmap.
package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/tagin-labs/tagin-verifier/internal/adapter"
	"github.com/tagin-labs/tagin-verifier/internal/domain"
	"github.com/tagin-labs/tagin-verifier/internal/scanlog"
	"github.com/tagin-labs/tagin-verifier/internal/store"
)

const (
	DEFAULT_RANGE_DAYS = 30
	MAX_RANGE_DAYS     = 365

	dateLayout = "2006-01-02"
)

// Aggregator computes scan statistics over the log
//
//go:generate mockgen -source=aggregator.go -destination=../mocks/analytics.go -package=mocks -mock_names=Aggregator=MockAggregator
type Aggregator interface {
	// ScanStats aggregates a manufacturer's scans over the trailing
	// rangeDays window ending today
	ScanStats(ctx context.Context, manufacturer string, rangeDays int) (*domain.AggregateWindow, error)
}

type aggregator struct {
	scanlog scanlog.Writer
	clock   adapter.Clock
}

// NewAggregator creates a new analytics aggregator
func NewAggregator(w scanlog.Writer, clock adapter.Clock) Aggregator {
	return &aggregator{scanlog: w, clock: clock}
}

// ScanStats aggregates a manufacturer's scans over the trailing window
func (a *aggregator) ScanStats(ctx context.Context, manufacturer string, rangeDays int) (*domain.AggregateWindow, error) {
	if manufacturer == "" {
		return nil, fmt.Errorf("%w: manufacturer is required", domain.ErrInvalidInput)
	}
	if rangeDays == 0 {
		rangeDays = DEFAULT_RANGE_DAYS
	}
	if rangeDays < 0 || rangeDays > MAX_RANGE_DAYS {
		return nil, fmt.Errorf("%w: range must be between 1 and %d days", domain.ErrInvalidInput, MAX_RANGE_DAYS)
	}

	// The window covers rangeDays calendar days ending today
	today := a.clock.Now().UTC().Truncate(24 * time.Hour)
	since := today.AddDate(0, 0, -(rangeDays - 1))
	until := today.AddDate(0, 0, 1)

	events, err := a.scanlog.Query(ctx, store.ScanEventFilter{
		Manufacturer: &manufacturer,
		Since:        &since,
		Until:        &until,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load scans: %w", err)
	}

	window := &domain.AggregateWindow{
		ScansBySource: make(map[domain.ScanSource]int),
		DailySeries:   make([]domain.DailyStat, rangeDays),
		TopTokens:     []domain.TokenStat{},
		Heatmap:       []domain.CityStat{},
	}

	// Zero-filled series so quiet days still show up
	for i := 0; i < rangeDays; i++ {
		window.DailySeries[i] = domain.DailyStat{
			Date: since.AddDate(0, 0, i).Format(dateLayout),
		}
	}

	tokenStats := make(map[uint64]*domain.TokenStat)
	cityMismatches := make(map[string]int)

	for _, event := range events {
		window.TotalScans++
		window.ScansBySource[event.Source]++

		day := int(event.Timestamp.UTC().Truncate(24 * time.Hour).Sub(since).Hours() / 24)
		if day < 0 || day >= rangeDays {
			continue
		}
		window.DailySeries[day].Total++

		stat, ok := tokenStats[event.TokenID]
		if !ok {
			stat = &domain.TokenStat{TokenID: event.TokenID}
			tokenStats[event.TokenID] = stat
		}
		stat.Total++

		switch event.Outcome {
		case domain.ScanOutcomeVerified:
			window.VerifiedScans++
			window.DailySeries[day].Verified++
		case domain.ScanOutcomeMismatch:
			window.FakeScans++
			window.DailySeries[day].Fake++
			stat.Fake++
			if event.City != "" {
				cityMismatches[event.City]++
			}
		}
		// Error outcomes count toward totals only
	}

	if window.TotalScans > 0 {
		rate := 100 * float64(window.VerifiedScans) / float64(window.TotalScans)
		window.VerificationRate = math.Round(rate*10) / 10
	}

	window.TopTokens = topTokens(tokenStats)
	window.Heatmap = heatmap(cityMismatches)

	return window, nil
}

// topTokens ranks tokens by scan count, most scanned first, token id
// breaking ties
func topTokens(stats map[uint64]*domain.TokenStat) []domain.TokenStat {
	ranked := make([]domain.TokenStat, 0, len(stats))
	for _, stat := range stats {
		ranked = append(ranked, *stat)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Total != ranked[j].Total {
			return ranked[i].Total > ranked[j].Total
		}
		return ranked[i].TokenID < ranked[j].TokenID
	})

	if len(ranked) > domain.TopTokensLimit {
		ranked = ranked[:domain.TopTokensLimit]
	}
	return ranked
}

// heatmap lists cities with at least one mismatch, worst first
func heatmap(cities map[string]int) []domain.CityStat {
	entries := make([]domain.CityStat, 0, len(cities))
	for city, count := range cities {
		entries = append(entries, domain.CityStat{City: city, FakeScans: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].FakeScans != entries[j].FakeScans {
			return entries[i].FakeScans > entries[j].FakeScans
		}
		return entries[i].City < entries[j].City
	})

	return entries
}
