package handlers_test

import (
	"context"
	"log/slog"
	"os"

	"github.com/firmanw/ledger_books_app/internal/core/domain"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
	"github.com/firmanw/ledger_books_app/internal/dto"
	"github.com/firmanw/ledger_books_app/internal/handlers"
	"github.com/firmanw/ledger_books_app/internal/middleware"
	"github.com/firmanw/ledger_books_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// --- Mock BookService ---

type MockBookService struct {
	mock.Mock
}

var _ portssvc.BookSvcFacade = (*MockBookService)(nil)

func (m *MockBookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Book), args.Error(1)
}

func (m *MockBookService) GetBookByID(ctx context.Context, bookID string) (*domain.Book, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookService) CreateBook(ctx context.Context, req dto.CreateBookRequest) (*domain.Book, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookService) RenameBook(ctx context.Context, bookID string, req dto.UpdateBookRequest) (*domain.Book, error) {
	args := m.Called(ctx, bookID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}

func (m *MockBookService) DeleteBook(ctx context.Context, bookID string) error {
	args := m.Called(ctx, bookID)
	return args.Error(0)
}

// --- Mock BookLifecycleService ---

type MockBookLifecycleService struct {
	mock.Mock
}

var _ portssvc.BookLifecycleSvcFacade = (*MockBookLifecycleService)(nil)

func (m *MockBookLifecycleService) CloseBook(ctx context.Context, req dto.CloseBookRequest) (*dto.CloseBookResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CloseBookResponse), args.Error(1)
}

// --- Mock TransactionService ---

type MockTransactionService struct {
	mock.Mock
}

var _ portssvc.TransactionSvcFacade = (*MockTransactionService)(nil)

func (m *MockTransactionService) ListTransactions(ctx context.Context, params dto.ListTransactionsParams) ([]domain.Transaction, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	args := m.Called(ctx, transactionID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	args := m.Called(ctx, transactionID)
	return args.Error(0)
}

// --- Mock LabelService ---

type MockLabelService struct {
	mock.Mock
}

var _ portssvc.LabelSvcFacade = (*MockLabelService)(nil)

func (m *MockLabelService) ListLabels(ctx context.Context) ([]domain.Label, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Label), args.Error(1)
}

func (m *MockLabelService) CreateLabel(ctx context.Context, req dto.CreateLabelRequest) (*domain.Label, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Label), args.Error(1)
}

func (m *MockLabelService) UpdateLabel(ctx context.Context, labelID string, req dto.UpdateLabelRequest) (*domain.Label, error) {
	args := m.Called(ctx, labelID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Label), args.Error(1)
}

func (m *MockLabelService) DeleteLabel(ctx context.Context, labelID string) error {
	args := m.Called(ctx, labelID)
	return args.Error(0)
}

// --- Mock ReportingService ---

type MockReportingService struct {
	mock.Mock
}

var _ portssvc.ReportingSvcFacade = (*MockReportingService)(nil)

func (m *MockReportingService) BookSummary(ctx context.Context, bookID string) (*domain.BookSummary, error) {
	args := m.Called(ctx, bookID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookSummary), args.Error(1)
}

// setupTestRouter builds a gin engine with the full route table backed
// by the given mocked services. The limit is high enough that tests
// never trip the rate limiter.
func setupTestRouter(services *portssvc.ServiceContainer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	_ = handlers.RegisterCustomValidations()

	r := gin.New()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	r.Use(middleware.StructuredLoggingMiddleware(logger))

	rate, _ := limiter.NewRateFromFormatted("1000-S")
	rateLimiter := limiter.New(memory.NewStore(), rate)

	cfg := &config.Config{IsProduction: true}
	handlers.RegisterRoutes(r, cfg, services, rateLimiter)
	return r
}
