package sqlc

import (
	"context"

	"github.com/sqlc-dev/pqtype"
)

type AnalyticsManager struct {
	queries Querier
}

func NewAnalyticsManager(queries Querier) *AnalyticsManager {
	return &AnalyticsManager{queries: queries}
}

func (a *AnalyticsManager) IncrementPlacementsAcceptedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementPlacementsAcceptedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) IncrementPlacementsRejectedCount(ctx context.Context, serverIpNet pqtype.Inet) error {
	return a.queries.AnalyticsIncrementPlacementsRejectedCount(ctx, serverIpNet)
}

// RecordPlacement bumps the counter that matches the placement outcome.
func (a *AnalyticsManager) RecordPlacement(ctx context.Context, serverIpNet pqtype.Inet, accepted bool) error {
	if accepted {
		return a.IncrementPlacementsAcceptedCount(ctx, serverIpNet)
	}
	return a.IncrementPlacementsRejectedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetPlacementsAcceptedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetPlacementsAcceptedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetPlacementsRejectedCount(ctx context.Context, serverIpNet pqtype.Inet) (int64, error) {
	return a.queries.AnalyticsGetPlacementsRejectedCount(ctx, serverIpNet)
}

func (a *AnalyticsManager) GetPlacementSummary(ctx context.Context, serverIpNet pqtype.Inet) (PlacementAnalytic, error) {
	summary := PlacementAnalytic{ServerIp: serverIpNet}

	accepted, err := a.GetPlacementsAcceptedCount(ctx, serverIpNet)
	if err != nil {
		return summary, err
	}
	rejected, err := a.GetPlacementsRejectedCount(ctx, serverIpNet)
	if err != nil {
		return summary, err
	}

	summary.PlacementsAccepted = accepted
	summary.PlacementsRejected = rejected
	return summary, nil
}
