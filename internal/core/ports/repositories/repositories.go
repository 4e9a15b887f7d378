package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ContactRepo     ContactRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	ReceiptRepo     ReceiptRepositoryFacade
	RecurringRepo   RecurringRepositoryFacade
	ProfileRepo     ProfileRepositoryFacade
	RoommateRepo    RoommateRepositoryFacade
	ChoreRepo       ChoreRepositoryFacade
	Mirror          RecordMirror
}
