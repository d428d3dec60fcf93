package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
	"github.com/firmanw/ledger_books_app/internal/core/services"
	"github.com/firmanw/ledger_books_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type BookLifecycleServiceTestSuite struct {
	suite.Suite
	mockBookRepo *MockBookRepository
	mockTxnRepo  *MockTransactionRepository
	service      portssvc.BookLifecycleSvcFacade

	tx       *fakeTx
	bookID   string
	openBook *domain.Book
}

func (suite *BookLifecycleServiceTestSuite) SetupTest() {
	suite.mockBookRepo = new(MockBookRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.service = services.NewBookLifecycleService(suite.mockBookRepo, suite.mockTxnRepo)

	suite.tx = &fakeTx{}
	suite.bookID = uuid.NewString()
	suite.openBook = &domain.Book{
		BookID:    suite.bookID,
		Name:      "March",
		StartDate: time.Now().UTC().AddDate(0, -1, 0),
		CreatedAt: time.Now().UTC().AddDate(0, -1, 0),
	}
}

// expectTxLifecycle wires the Begin/Rollback pair every CloseBook call
// opens with. Rollback after a commit is a no-op in the real repository,
// so it is always allowed here.
func (suite *BookLifecycleServiceTestSuite) expectTxLifecycle(ctx context.Context) {
	suite.mockBookRepo.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockBookRepo.On("Rollback", ctx, suite.tx).Return(nil).Maybe()
}

func makeTxn(bookID string, kind domain.TransactionKind, amount int64) domain.Transaction {
	return domain.Transaction{
		TransactionID: uuid.NewString(),
		BookID:        bookID,
		Amount:        decimal.NewFromInt(amount),
		Description:   "entry",
		Kind:          kind,
		OccurredAt:    time.Now().UTC(),
		CreatedAt:     time.Now().UTC(),
	}
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_PositiveBalance_SeedsIncome() {
	ctx := context.Background()
	suite.expectTxLifecycle(ctx)

	transactions := []domain.Transaction{
		makeTxn(suite.bookID, domain.Income, 100),
		makeTxn(suite.bookID, domain.Expense, 30),
		makeTxn(suite.bookID, domain.Expense, 20),
	}

	suite.mockBookRepo.On("FindBookByIDForUpdate", ctx, suite.tx, suite.bookID).Return(suite.openBook, nil).Once()
	suite.mockTxnRepo.On("FindUnarchivedByBookInTx", ctx, suite.tx, suite.bookID).Return(transactions, nil).Once()
	suite.mockTxnRepo.On("ArchiveBookTransactionsInTx", ctx, suite.tx, suite.bookID).Return(int64(3), nil).Once()
	suite.mockBookRepo.On("CloseBookInTx", ctx, suite.tx, suite.bookID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBookRepo.On("SaveBookInTx", ctx, suite.tx, mock.AnythingOfType("domain.Book")).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransactionInTx", ctx, suite.tx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Kind == domain.Income && txn.Amount.Equal(decimal.NewFromInt(50))
	})).Return(nil).Once()
	suite.mockBookRepo.On("Commit", ctx, suite.tx).Return(nil).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: true})

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.True(resp.Success)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(50)))
	suite.Equal(suite.bookID, resp.ClosedBookID)
	suite.NotEmpty(resp.NewBookID)
	suite.NotEqual(suite.bookID, resp.NewBookID)

	suite.mockBookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_NegativeBalance_SeedsExpense() {
	ctx := context.Background()
	suite.expectTxLifecycle(ctx)

	transactions := []domain.Transaction{
		makeTxn(suite.bookID, domain.Income, 10),
		makeTxn(suite.bookID, domain.Expense, 40),
	}

	suite.mockBookRepo.On("FindBookByIDForUpdate", ctx, suite.tx, suite.bookID).Return(suite.openBook, nil).Once()
	suite.mockTxnRepo.On("FindUnarchivedByBookInTx", ctx, suite.tx, suite.bookID).Return(transactions, nil).Once()
	suite.mockTxnRepo.On("ArchiveBookTransactionsInTx", ctx, suite.tx, suite.bookID).Return(int64(2), nil).Once()
	suite.mockBookRepo.On("CloseBookInTx", ctx, suite.tx, suite.bookID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBookRepo.On("SaveBookInTx", ctx, suite.tx, mock.AnythingOfType("domain.Book")).Return(nil).Once()
	// The deficit is carried as a positive-amount expense.
	suite.mockTxnRepo.On("SaveTransactionInTx", ctx, suite.tx, mock.MatchedBy(func(txn domain.Transaction) bool {
		return txn.Kind == domain.Expense && txn.Amount.Equal(decimal.NewFromInt(30))
	})).Return(nil).Once()
	suite.mockBookRepo.On("Commit", ctx, suite.tx).Return(nil).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: true})

	suite.Require().NoError(err)
	suite.True(resp.Balance.Equal(decimal.NewFromInt(-30)))

	suite.mockBookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_ZeroBalance_NoSeed() {
	ctx := context.Background()
	suite.expectTxLifecycle(ctx)

	transactions := []domain.Transaction{
		makeTxn(suite.bookID, domain.Income, 25),
		makeTxn(suite.bookID, domain.Expense, 25),
	}

	suite.mockBookRepo.On("FindBookByIDForUpdate", ctx, suite.tx, suite.bookID).Return(suite.openBook, nil).Once()
	suite.mockTxnRepo.On("FindUnarchivedByBookInTx", ctx, suite.tx, suite.bookID).Return(transactions, nil).Once()
	suite.mockTxnRepo.On("ArchiveBookTransactionsInTx", ctx, suite.tx, suite.bookID).Return(int64(2), nil).Once()
	suite.mockBookRepo.On("CloseBookInTx", ctx, suite.tx, suite.bookID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBookRepo.On("SaveBookInTx", ctx, suite.tx, mock.AnythingOfType("domain.Book")).Return(nil).Once()
	suite.mockBookRepo.On("Commit", ctx, suite.tx).Return(nil).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: true})

	suite.Require().NoError(err)
	suite.True(resp.Balance.IsZero())

	// No seed transaction for a zero balance.
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockBookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_CarryForwardDisabled_NoSeed() {
	ctx := context.Background()
	suite.expectTxLifecycle(ctx)

	transactions := []domain.Transaction{
		makeTxn(suite.bookID, domain.Income, 80),
	}

	suite.mockBookRepo.On("FindBookByIDForUpdate", ctx, suite.tx, suite.bookID).Return(suite.openBook, nil).Once()
	suite.mockTxnRepo.On("FindUnarchivedByBookInTx", ctx, suite.tx, suite.bookID).Return(transactions, nil).Once()
	suite.mockTxnRepo.On("ArchiveBookTransactionsInTx", ctx, suite.tx, suite.bookID).Return(int64(1), nil).Once()
	suite.mockBookRepo.On("CloseBookInTx", ctx, suite.tx, suite.bookID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBookRepo.On("SaveBookInTx", ctx, suite.tx, mock.AnythingOfType("domain.Book")).Return(nil).Once()
	suite.mockBookRepo.On("Commit", ctx, suite.tx).Return(nil).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: false})

	suite.Require().NoError(err)
	// The balance is still reported even though nothing was carried.
	suite.True(resp.Balance.Equal(decimal.NewFromInt(80)))

	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransactionInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockBookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_EmptyBook_ClosesWithZero() {
	ctx := context.Background()
	suite.expectTxLifecycle(ctx)

	suite.mockBookRepo.On("FindBookByIDForUpdate", ctx, suite.tx, suite.bookID).Return(suite.openBook, nil).Once()
	suite.mockTxnRepo.On("FindUnarchivedByBookInTx", ctx, suite.tx, suite.bookID).Return([]domain.Transaction{}, nil).Once()
	suite.mockTxnRepo.On("ArchiveBookTransactionsInTx", ctx, suite.tx, suite.bookID).Return(int64(0), nil).Once()
	suite.mockBookRepo.On("CloseBookInTx", ctx, suite.tx, suite.bookID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBookRepo.On("SaveBookInTx", ctx, suite.tx, mock.AnythingOfType("domain.Book")).Return(nil).Once()
	suite.mockBookRepo.On("Commit", ctx, suite.tx).Return(nil).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: true})

	suite.Require().NoError(err)
	suite.True(resp.Balance.IsZero())
	suite.NotEmpty(resp.NewBookID)

	suite.mockBookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_BookNotFound() {
	ctx := context.Background()
	suite.expectTxLifecycle(ctx)

	suite.mockBookRepo.On("FindBookByIDForUpdate", ctx, suite.tx, suite.bookID).Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: true})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.mockBookRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ArchiveBookTransactionsInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_AlreadyClosed() {
	ctx := context.Background()
	suite.expectTxLifecycle(ctx)

	endDate := time.Now().UTC().AddDate(0, 0, -1)
	closedBook := &domain.Book{
		BookID:    suite.bookID,
		Name:      "February",
		StartDate: endDate.AddDate(0, -1, 0),
		EndDate:   &endDate,
		CreatedAt: endDate.AddDate(0, -1, 0),
	}
	suite.mockBookRepo.On("FindBookByIDForUpdate", ctx, suite.tx, suite.bookID).Return(closedBook, nil).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: true})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, services.ErrBookAlreadyClosed)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockBookRepo.AssertNotCalled(suite.T(), "CloseBookInTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "ArchiveBookTransactionsInTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_ArchiveFails_RollsBack() {
	ctx := context.Background()
	boom := errors.New("connection reset")

	suite.mockBookRepo.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockBookRepo.On("Rollback", ctx, suite.tx).Return(nil).Once()
	suite.mockBookRepo.On("FindBookByIDForUpdate", ctx, suite.tx, suite.bookID).Return(suite.openBook, nil).Once()
	suite.mockTxnRepo.On("FindUnarchivedByBookInTx", ctx, suite.tx, suite.bookID).Return([]domain.Transaction{makeTxn(suite.bookID, domain.Income, 5)}, nil).Once()
	suite.mockTxnRepo.On("ArchiveBookTransactionsInTx", ctx, suite.tx, suite.bookID).Return(int64(0), boom).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: true})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, boom)

	suite.mockBookRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockBookRepo.AssertNotCalled(suite.T(), "SaveBookInTx", mock.Anything, mock.Anything, mock.Anything)
	suite.mockBookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_SeedFails_RollsBack() {
	ctx := context.Background()
	boom := errors.New("insert failed")

	suite.mockBookRepo.On("Begin", ctx).Return(suite.tx, nil).Once()
	suite.mockBookRepo.On("Rollback", ctx, suite.tx).Return(nil).Once()
	suite.mockBookRepo.On("FindBookByIDForUpdate", ctx, suite.tx, suite.bookID).Return(suite.openBook, nil).Once()
	suite.mockTxnRepo.On("FindUnarchivedByBookInTx", ctx, suite.tx, suite.bookID).Return([]domain.Transaction{makeTxn(suite.bookID, domain.Income, 100)}, nil).Once()
	suite.mockTxnRepo.On("ArchiveBookTransactionsInTx", ctx, suite.tx, suite.bookID).Return(int64(1), nil).Once()
	suite.mockBookRepo.On("CloseBookInTx", ctx, suite.tx, suite.bookID, mock.AnythingOfType("time.Time")).Return(nil).Once()
	suite.mockBookRepo.On("SaveBookInTx", ctx, suite.tx, mock.AnythingOfType("domain.Book")).Return(nil).Once()
	suite.mockTxnRepo.On("SaveTransactionInTx", ctx, suite.tx, mock.AnythingOfType("domain.Transaction")).Return(boom).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: true})

	suite.Require().Error(err)
	suite.Nil(resp)

	// The failure after a partial sequence must not commit anything.
	suite.mockBookRepo.AssertNotCalled(suite.T(), "Commit", mock.Anything, mock.Anything)
	suite.mockBookRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *BookLifecycleServiceTestSuite) TestCloseBook_BeginFails() {
	ctx := context.Background()
	boom := errors.New("pool exhausted")

	suite.mockBookRepo.On("Begin", ctx).Return(nil, boom).Once()

	resp, err := suite.service.CloseBook(ctx, dto.CloseBookRequest{BookID: suite.bookID, CarryForward: true})

	suite.Require().Error(err)
	suite.Nil(resp)
	suite.mockBookRepo.AssertNotCalled(suite.T(), "FindBookByIDForUpdate", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookLifecycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookLifecycleServiceTestSuite))
}
