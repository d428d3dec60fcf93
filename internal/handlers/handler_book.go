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

// bookHandler handles HTTP requests related to books.
type bookHandler struct {
	bookService portssvc.BookSvcFacade
}

// newBookHandler creates a new bookHandler.
func newBookHandler(bs portssvc.BookSvcFacade) *bookHandler {
	return &bookHandler{
		bookService: bs,
	}
}

// registerBookRoutes registers routes related to books.
func registerBookRoutes(rg *gin.RouterGroup, bookService portssvc.BookSvcFacade) {
	h := newBookHandler(bookService)

	books := rg.Group("/books")
	{
		books.GET("", h.listBooks)
		books.POST("", h.createBook)
		books.PUT("/:id", h.renameBook)
		books.DELETE("/:id", h.deleteBook)
	}
}

// listBooks godoc
// @Summary List books
// @Description Retrieves all ledger books, newest start date first
// @Tags books
// @Produce json
// @Success 200 {array} dto.BookResponse
// @Failure 500 {object} map[string]string "Failed to list books"
// @Router /books [get]
func (h *bookHandler) listBooks(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	books, err := h.bookService.ListBooks(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list books from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list books"})
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponses(books))
}

// createBook godoc
// @Summary Create a new book
// @Description Creates a new open ledger book starting now
// @Tags books
// @Accept json
// @Produce json
// @Param book body dto.CreateBookRequest true "Book details"
// @Success 201 {object} dto.BookResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to create book"
// @Router /books [post]
func (h *bookHandler) createBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating book", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create book in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create book"})
		}
		return
	}

	logger.Info("Book created successfully", slog.String("book_id", book.BookID))
	c.JSON(http.StatusCreated, dto.ToBookResponse(book))
}

// renameBook godoc
// @Summary Rename a book
// @Description Changes a book's display name
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param book body dto.UpdateBookRequest true "New name"
// @Success 200 {object} dto.BookResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to rename book"
// @Router /books/{id} [put]
func (h *bookHandler) renameBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookID := c.Param("id")

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RenameBook", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger = logger.With(slog.String("book_id", bookID))

	book, err := h.bookService.RenameBook(c.Request.Context(), bookID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Book not found for rename")
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error renaming book", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to rename book in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rename book"})
		}
		return
	}

	logger.Info("Book renamed successfully")
	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// deleteBook godoc
// @Summary Delete a book
// @Description Deletes a book and every transaction it owns, atomically
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} map[string]bool
// @Failure 404 {object} map[string]string "Book not found"
// @Failure 500 {object} map[string]string "Failed to delete book"
// @Router /books/{id} [delete]
func (h *bookHandler) deleteBook(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookID := c.Param("id")
	logger = logger.With(slog.String("book_id", bookID))

	if err := h.bookService.DeleteBook(c.Request.Context(), bookID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Book not found for delete")
			c.JSON(http.StatusNotFound, gin.H{"error": "Book not found"})
		} else {
			logger.Error("Failed to delete book in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete book"})
		}
		return
	}

	logger.Info("Book deleted successfully")
	c.JSON(http.StatusOK, gin.H{"success": true})
}
