package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/ledger/transport/http/dto"
)

// BookUsecase defines the book operations consumed by the handler.
// Following Go convention the interface is defined by the consumer.
type BookUsecase interface {
	CreateBook(ctx context.Context, uid, name string) *api.Response
	ReadBooks(ctx context.Context, uid string) *api.Response
	UpdateBook(ctx context.Context, uid, bookID, name string) *api.Response
	DeleteBook(ctx context.Context, uid, bookID string) *api.Response
}

// BookHandler handles the /api/books endpoints.
type BookHandler struct {
	books BookUsecase
}

// NewBookHandler creates a BookHandler with the injected usecase.
func NewBookHandler(books BookUsecase) *BookHandler {
	return &BookHandler{books: books}
}

// Create handles POST /api/books/create.
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "book create", err)
		return
	}
	c.JSON(http.StatusOK, h.books.CreateBook(c.Request.Context(), currentUserID(c), req.Nombre))
}

// Read handles GET /api/books.
func (h *BookHandler) Read(c *gin.Context) {
	c.JSON(http.StatusOK, h.books.ReadBooks(c.Request.Context(), currentUserID(c)))
}

// Update handles POST /api/books/update.
func (h *BookHandler) Update(c *gin.Context) {
	var req dto.UpdateBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "book update", err)
		return
	}
	c.JSON(http.StatusOK, h.books.UpdateBook(c.Request.Context(), currentUserID(c), req.LibroID, req.NuevoNombre))
}

// Destroy handles POST /api/books/destroy.
func (h *BookHandler) Destroy(c *gin.Context) {
	var req dto.DestroyBookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "book destroy", err)
		return
	}
	c.JSON(http.StatusOK, h.books.DeleteBook(c.Request.Context(), currentUserID(c), req.LibroID))
}
