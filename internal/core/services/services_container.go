package services

import (
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Book = NewBookService(repos.BookRepo, repos.TransactionRepo)
	container.Lifecycle = NewBookLifecycleService(repos.BookRepo, repos.TransactionRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.BookRepo)
	container.Label = NewLabelService(repos.LabelRepo, repos.TransactionRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo, repos.BookRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.BookSvcFacade          = (*bookService)(nil)
	_ portssvc.BookLifecycleSvcFacade = (*bookLifecycleService)(nil)
	_ portssvc.TransactionSvcFacade   = (*transactionService)(nil)
	_ portssvc.LabelSvcFacade         = (*labelService)(nil)
	_ portssvc.ReportingSvcFacade     = (*reportingService)(nil)
)
