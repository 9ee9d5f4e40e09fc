package app

import (
	"context"

	"github.com/alexanderramin/rutero/internal/domain"
)

type ListDayUseCase interface {
	ListDay(ctx context.Context, req ListDayRequest) (*DayView, error)
}

type CountsUseCase interface {
	Counts(ctx context.Context, req CountsRequest) (*CountsView, error)
}

type MoveUseCase interface {
	Move(ctx context.Context, req MoveRequest) (*PlacementResult, error)
}

type RestoreUseCase interface {
	Restore(ctx context.Context, req RestoreRequest) (*PlacementResult, error)
}

type BlockUseCase interface {
	Block(ctx context.Context, req BlockRequest) (*PlacementResult, error)
}

type ResetDayUseCase interface {
	ResetDay(ctx context.Context, req ResetDayRequest) (*ResetResult, error)
}

type OverridesUseCase interface {
	Overrides(ctx context.Context, vendor string) ([]domain.OverrideRecord, error)
}

type AuditTrailUseCase interface {
	AuditTrail(ctx context.Context, req AuditTrailRequest) ([]domain.AuditEntry, error)
}
