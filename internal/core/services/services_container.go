package services

import (
	portsrepo "github.com/SscSPs/homeledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/homeledger/internal/core/ports/services"
	"github.com/SscSPs/homeledger/internal/platform/config"
	"github.com/SscSPs/homeledger/internal/utils/gamification"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// options apply to every service after the configuration-derived ones.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, options ...ServiceOption) *portssvc.ServiceContainer {
	shared := append([]ServiceOption{
		WithLocation(cfg.Location),
		WithMirror(repos.Mirror),
		WithGroup(cfg.HouseholdGroupID, cfg.HouseholdGroupName),
	}, options...)

	// Both chore services share one engine.
	engine := gamification.NewEngine(cfg.Location)

	return &portssvc.ServiceContainer{
		Contact:    NewContactService(repos.ContactRepo, repos.TransactionRepo, shared...),
		Split:      NewSplitService(repos.TransactionRepo, repos.ContactRepo, shared...),
		Balance:    NewBalanceService(repos.TransactionRepo, repos.ContactRepo, shared...),
		Receipt:    NewReceiptService(repos.ReceiptRepo, repos.TransactionRepo, repos.ContactRepo, cfg.ReceiptScanDelay, shared...),
		Recurring:  NewRecurringService(repos.RecurringRepo, repos.ContactRepo, repos.ProfileRepo, shared...),
		Profile:    NewProfileService(repos.ProfileRepo, shared...),
		Roommate:   NewRoommateService(repos.RoommateRepo, shared...),
		Chore:      NewChoreService(repos.ChoreRepo, repos.RoommateRepo, engine, shared...),
		ChoreStats: NewChoreStatsService(repos.ChoreRepo, repos.RoommateRepo, engine, shared...),
	}
}
