package services_test

import (
	"context"
	"time"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portsrepo "github.com/firmanw/ledger_books_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
)

// fakeTx is a stand-in pgx.Tx handed out by the mocked transaction
// managers. Services never call methods on it directly, they only pass
// it back into repository methods, so the embedded interface stays nil.
type fakeTx struct {
	pgx.Tx
}

// --- Mock BookRepository ---

type MockBookRepository struct {
	mock.Mock
}

var _ portsrepo.BookRepositoryWithTx = (*MockBookRepository)(nil)

func (m *MockBookRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockBookRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBookRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockBookRepository) FindBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepository) ListBooks(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}

func (m *MockBookRepository) SaveBook(ctx context.Context, book domain.Book) error {
	args := m.Called(ctx, book)
	return args.Error(0)
}

func (m *MockBookRepository) UpdateBookName(ctx context.Context, bookID string, name string) error {
	args := m.Called(ctx, bookID, name)
	return args.Error(0)
}

func (m *MockBookRepository) FindBookByIDForUpdate(ctx context.Context, tx pgx.Tx, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, tx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookRepository) SaveBookInTx(ctx context.Context, tx pgx.Tx, book domain.Book) error {
	args := m.Called(ctx, tx, book)
	return args.Error(0)
}

func (m *MockBookRepository) CloseBookInTx(ctx context.Context, tx pgx.Tx, bookID string, endDate time.Time) error {
	args := m.Called(ctx, tx, bookID, endDate)
	return args.Error(0)
}

func (m *MockBookRepository) DeleteBookInTx(ctx context.Context, tx pgx.Tx, bookID string) error {
	args := m.Called(ctx, tx, bookID)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
}

var _ portsrepo.TransactionRepositoryWithTx = (*MockTransactionRepository)(nil)

func (m *MockTransactionRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockTransactionRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindUnarchivedByBookInTx(ctx context.Context, tx pgx.Tx, bookID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, tx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ArchiveBookTransactionsInTx(ctx context.Context, tx pgx.Tx, bookID string) (int64, error) {
	args := m.Called(ctx, tx, bookID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) SaveTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	args := m.Called(ctx, tx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteByBookInTx(ctx context.Context, tx pgx.Tx, bookID string) (int64, error) {
	args := m.Called(ctx, tx, bookID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransactionRepository) DetachLabelInTx(ctx context.Context, tx pgx.Tx, labelID string) (int64, error) {
	args := m.Called(ctx, tx, labelID)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock LabelRepository ---

type MockLabelRepository struct {
	mock.Mock
}

var _ portsrepo.LabelRepositoryWithTx = (*MockLabelRepository)(nil)

func (m *MockLabelRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockLabelRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLabelRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockLabelRepository) FindLabelByID(ctx context.Context, labelID string) (*domain.Label, error) {
	args := m.Called(ctx, labelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Label), args.Error(1)
}

func (m *MockLabelRepository) ListLabels(ctx context.Context) ([]domain.Label, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Label), args.Error(1)
}

func (m *MockLabelRepository) SaveLabel(ctx context.Context, label domain.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelRepository) UpdateLabel(ctx context.Context, label domain.Label) error {
	args := m.Called(ctx, label)
	return args.Error(0)
}

func (m *MockLabelRepository) DeleteLabelInTx(ctx context.Context, tx pgx.Tx, labelID string) error {
	args := m.Called(ctx, tx, labelID)
	return args.Error(0)
}

// --- Mock ReportingRepository ---

type MockReportingRepository struct {
	mock.Mock
}

var _ portsrepo.ReportingRepository = (*MockReportingRepository)(nil)

func (m *MockReportingRepository) GetBookSummary(ctx context.Context, bookID string) (*domain.BookSummary, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookSummary), args.Error(1)
}
