// Package dto defines the request bodies of the ledger endpoints. Field
// names keep the original wire contract (Spanish payload keys); required
// fields are enforced here, before the mutation engine is invoked.
package dto

// CreateBookReq is the body of POST /api/books/create.
type CreateBookReq struct {
	Nombre string `json:"nombre" binding:"required"`
}

// UpdateBookReq is the body of POST /api/books/update.
type UpdateBookReq struct {
	LibroID     string `json:"libroId" binding:"required"`
	NuevoNombre string `json:"nuevoNombre" binding:"required"`
}

// DestroyBookReq is the body of POST /api/books/destroy.
type DestroyBookReq struct {
	LibroID string `json:"libroId" binding:"required"`
}
