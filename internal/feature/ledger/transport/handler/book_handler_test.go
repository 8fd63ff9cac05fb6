package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"bookkeeping_backend/internal/api"
	jwtmw "bookkeeping_backend/internal/platform/jwt"
)

// mockBookUsecase is a func-field mock of the BookUsecase interface.
type mockBookUsecase struct {
	CreateBookFunc func(ctx context.Context, uid, name string) *api.Response
	ReadBooksFunc  func(ctx context.Context, uid string) *api.Response
	UpdateBookFunc func(ctx context.Context, uid, bookID, name string) *api.Response
	DeleteBookFunc func(ctx context.Context, uid, bookID string) *api.Response
}

func (m *mockBookUsecase) CreateBook(ctx context.Context, uid, name string) *api.Response {
	if m.CreateBookFunc != nil {
		return m.CreateBookFunc(ctx, uid, name)
	}
	return &api.Response{Success: true}
}

func (m *mockBookUsecase) ReadBooks(ctx context.Context, uid string) *api.Response {
	if m.ReadBooksFunc != nil {
		return m.ReadBooksFunc(ctx, uid)
	}
	return &api.Response{Success: true}
}

func (m *mockBookUsecase) UpdateBook(ctx context.Context, uid, bookID, name string) *api.Response {
	if m.UpdateBookFunc != nil {
		return m.UpdateBookFunc(ctx, uid, bookID, name)
	}
	return &api.Response{Success: true}
}

func (m *mockBookUsecase) DeleteBook(ctx context.Context, uid, bookID string) *api.Response {
	if m.DeleteBookFunc != nil {
		return m.DeleteBookFunc(ctx, uid, bookID)
	}
	return &api.Response{Success: true}
}

// serve runs one request through a context carrying the authenticated uid,
// the way the session middleware leaves it.
func serve(method, path, body, uid string, handle gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, path, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(jwtmw.ContextUserID, uid)
	handle(c)
	return w
}

// TestBookHandler_Create verifies the create scenarios table-driven.
func TestBookHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockCreateFunc func(ctx context.Context, uid, name string) *api.Response
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success: book created",
			body: `{"nombre":"vacation"}`,
			mockCreateFunc: func(ctx context.Context, uid, name string) *api.Response {
				assert.Equal(t, "u1", uid)
				assert.Equal(t, "vacation", name)
				return &api.Response{Success: true, Message: "Book created", Token: "t"}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"message":"Book created","token":"t"}`,
		},
		{
			name:           "failure: missing nombre",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"invalid request"}`,
		},
		{
			name:           "failure: malformed json",
			body:           `{"nombre":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"success":false,"message":"invalid request"}`,
		},
		{
			name: "failure: semantic failure still 200",
			body: `{"nombre":"x"}`,
			mockCreateFunc: func(ctx context.Context, uid, name string) *api.Response {
				return &api.Response{Success: false, Message: "Create failed"}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":false,"message":"Create failed"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewBookHandler(&mockBookUsecase{CreateBookFunc: tt.mockCreateFunc})

			w := serve(http.MethodPost, "/api/books/create", tt.body, "u1", h.Create)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

// TestBookHandler_Read verifies the uid from the context reaches the
// usecase.
func TestBookHandler_Read(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotUID string
	h := NewBookHandler(&mockBookUsecase{ReadBooksFunc: func(ctx context.Context, uid string) *api.Response {
		gotUID = uid
		return &api.Response{Success: true, Message: "Books retrieved successfully", Data: []string{}, Token: "t"}
	}})

	w := serve(http.MethodGet, "/api/books", "", "u42", h.Read)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "u42", gotUID)
	assert.JSONEq(t, `{"success":true,"message":"Books retrieved successfully","data":[],"token":"t"}`, w.Body.String())
}

// TestBookHandler_Update verifies body binding of the rename request.
func TestBookHandler_Update(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotBookID, gotName string
	h := NewBookHandler(&mockBookUsecase{UpdateBookFunc: func(ctx context.Context, uid, bookID, name string) *api.Response {
		gotBookID, gotName = bookID, name
		return &api.Response{Success: true, Message: "Book updated successfully", Token: "t"}
	}})

	w := serve(http.MethodPost, "/api/books/update", `{"libroId":"b1","nuevoNombre":"renamed"}`, "u1", h.Update)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b1", gotBookID)
	assert.Equal(t, "renamed", gotName)
}

// TestBookHandler_Destroy verifies the delete request binding and the
// pass-through of the usecase envelope.
func TestBookHandler_Destroy(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewBookHandler(&mockBookUsecase{DeleteBookFunc: func(ctx context.Context, uid, bookID string) *api.Response {
		assert.Equal(t, "b1", bookID)
		return &api.Response{Success: false, Message: "Book not found"}
	}})

	w := serve(http.MethodPost, "/api/books/destroy", `{"libroId":"b1"}`, "u1", h.Destroy)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Book not found"}`, w.Body.String())
}
