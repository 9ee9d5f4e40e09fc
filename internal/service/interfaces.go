package service

import "github.com/alexanderramin/rutero/internal/app"

// RouteService is the planner surface offered to transports.
type RouteService interface {
	app.ListDayUseCase
	app.CountsUseCase
	app.MoveUseCase
	app.RestoreUseCase
	app.BlockUseCase
	app.ResetDayUseCase
	app.OverridesUseCase
	app.AuditTrailUseCase
}
