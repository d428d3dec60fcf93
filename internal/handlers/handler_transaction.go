package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/firmanw/ledger_books_app/internal/apperrors"
	portssvc "github.com/firmanw/ledger_books_app/internal/core/ports/services"
	"github.com/firmanw/ledger_books_app/internal/dto"
	"github.com/firmanw/ledger_books_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions,
// including the close-book operation and book summaries.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
	lifecycleService   portssvc.BookLifecycleSvcFacade
	reportingService   portssvc.ReportingSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade, ls portssvc.BookLifecycleSvcFacade, rs portssvc.ReportingSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
		lifecycleService:   ls,
		reportingService:   rs,
	}
}

// registerTransactionRoutes registers routes related to transactions.
// The route group is named /expenses for continuity with existing
// clients even though it carries incomes as well.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade, lifecycleService portssvc.BookLifecycleSvcFacade, reportingService portssvc.ReportingSvcFacade) {
	h := newTransactionHandler(transactionService, lifecycleService, reportingService)

	expenses := rg.Group("/expenses")
	{
		expenses.GET("", h.listTransactions)
		expenses.POST("", h.createTransaction)
		expenses.PUT("/:id", h.updateTransaction)
		expenses.DELETE("/:id", h.deleteTransaction)
		expenses.POST("/close-book", h.closeBook)
		expenses.GET("/summary", h.bookSummary)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Retrieves transactions ordered by date descending, optionally scoped to a book; archived entries are excluded unless requested
// @Tags transactions
// @Produce json
// @Param bookId query string false "Scope to a single book"
// @Param includeArchived query bool false "Include archived transactions"
// @Success 200 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /expenses [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	transactions, err := h.transactionService.ListTransactions(c.Request.Context(), params)
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionResponses(transactions))
}

// createTransaction godoc
// @Summary Create a transaction
// @Description Records a new income or expense entry in a book
// @Tags transactions
// @Accept json
// @Produce json
// @Param transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create transaction"
// @Router /expenses [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
		}
		return
	}

	logger.Info("Transaction created successfully", slog.String("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// updateTransaction godoc
// @Summary Update a transaction
// @Description Edits a transaction's amount, description, date, kind or label
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param transaction body dto.UpdateTransactionRequest true "Transaction details"
// @Success 200 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to update transaction"
// @Router /expenses/{id} [put]
func (h *transactionHandler) updateTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")

	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("transaction_id", transactionID))

	txn, err := h.transactionService.UpdateTransaction(c.Request.Context(), transactionID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found for update")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating transaction", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to update transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		}
		return
	}

	logger.Info("Transaction updated successfully")
	c.JSON(http.StatusOK, dto.ToTransactionResponse(txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Removes a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Transaction not found"
// @Failure 500 {object} map[string]string "Failed to delete transaction"
// @Router /expenses/{id} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	transactionID := c.Param("id")
	logger = logger.With(slog.String("transaction_id", transactionID))

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), transactionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Transaction not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		} else {
			logger.Error("Failed to delete transaction in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		}
		return
	}

	logger.Info("Transaction deleted successfully")
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// closeBook godoc
// @Summary Close a book
// @Description Archives the book's transactions, seals it, opens a successor book and optionally carries the balance forward; the whole sequence is atomic
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CloseBookRequest true "Close parameters"
// @Success 200 {object} dto.CloseBookResponse
// @Failure 400 {object} map[string]string "Missing bookID or book already closed"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to close book"
// @Router /expenses/close-book [post]
func (h *transactionHandler) closeBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CloseBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CloseBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookID is required"})
		return
	}

	logger = logger.With(slog.String("book_id", req.BookID))

	result, err := h.lifecycleService.CloseBook(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Book not found for close")
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error closing book", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			// Storage failures roll the whole sequence back; the caller may
			// safely retry.
			logger.Error("Failed to close book in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close book"})
		}
		return
	}

	logger.Info("Book closed successfully", slog.String("new_book_id", result.NewBookID))
	c.JSON(http.StatusOK, result)
}

// bookSummary godoc
// @Summary Book summary
// @Description Returns income/expense totals and a per-label expense breakdown for a book's unarchived transactions
// @Tags transactions
// @Produce json
// @Param bookId query string true "Book ID"
// @Success 200 {object} domain.BookSummary
// @Failure 400 {object} map[string]string "Missing bookId"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to compute summary"
// @Router /expenses/summary [get]
func (h *transactionHandler) bookSummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookID := c.Query("bookId")
	if bookID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bookId is required"})
		return
	}

	logger = logger.With(slog.String("book_id", bookID))

	summary, err := h.reportingService.BookSummary(c.Request.Context(), bookID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Book not found for summary")
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else {
			logger.Error("Failed to compute book summary", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute summary"})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}
