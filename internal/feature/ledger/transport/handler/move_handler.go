package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookkeeping_backend/internal/api"
	"bookkeeping_backend/internal/feature/ledger/transport/http/dto"
	"bookkeeping_backend/internal/feature/ledger/usecase"
)

// MoveUsecase defines the move operations consumed by the handler.
type MoveUsecase interface {
	CreateMove(ctx context.Context, uid, bookID, accountID string, in usecase.MoveInput) *api.Response
	ReadMoves(ctx context.Context, uid, bookID, accountID string) *api.Response
	UpdateMove(ctx context.Context, uid, bookID, accountID, moveID string, in usecase.MoveInput) *api.Response
	DeleteMove(ctx context.Context, uid, bookID, accountID, moveID string) *api.Response
}

// MoveHandler handles the /api/moves endpoints.
type MoveHandler struct {
	moves MoveUsecase
}

// NewMoveHandler creates a MoveHandler with the injected usecase.
func NewMoveHandler(moves MoveUsecase) *MoveHandler {
	return &MoveHandler{moves: moves}
}

// Create handles POST /api/moves/create. The parent account comes in as
// cuentaId on this route.
func (h *MoveHandler) Create(c *gin.Context) {
	var req dto.CreateMoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "move create", err)
		return
	}
	in := usecase.MoveInput{
		Name:       req.Nombre,
		Amount:     *req.Cantidad,
		CategoryID: req.CategoriaID,
		ConceptID:  req.ConceptoID,
		TypeID:     req.TipoMovimientoID,
		Date:       req.Fecha,
	}
	c.JSON(http.StatusOK, h.moves.CreateMove(c.Request.Context(), currentUserID(c), req.BookID, req.CuentaID, in))
}

// Read handles GET /api/moves. An empty cuentaId selects every account of
// the book.
func (h *MoveHandler) Read(c *gin.Context) {
	var req dto.ReadMovesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "move read", err)
		return
	}
	c.JSON(http.StatusOK, h.moves.ReadMoves(c.Request.Context(), currentUserID(c), req.BookID, req.CuentaID))
}

// Update handles POST /api/moves/update.
func (h *MoveHandler) Update(c *gin.Context) {
	var req dto.UpdateMoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "move update", err)
		return
	}
	in := usecase.MoveInput{
		Name:       req.Nombre,
		Amount:     *req.Cantidad,
		CategoryID: req.CategoriaID,
		ConceptID:  req.ConceptoID,
		TypeID:     req.TipoMovimientoID,
		Date:       req.Fecha,
	}
	c.JSON(http.StatusOK, h.moves.UpdateMove(c.Request.Context(), currentUserID(c), req.BookID, req.AccountID, req.MoveID, in))
}

// Destroy handles POST /api/moves/destroy.
func (h *MoveHandler) Destroy(c *gin.Context) {
	var req dto.DestroyMoveReq
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, "move destroy", err)
		return
	}
	c.JSON(http.StatusOK, h.moves.DeleteMove(c.Request.Context(), currentUserID(c), req.BookID, req.AccountID, req.MoveID))
}
