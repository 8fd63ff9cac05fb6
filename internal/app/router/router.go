package router

import (
	"github.com/gin-gonic/gin"

	authhandler "bookkeeping_backend/internal/feature/auth/transport/handler"
	ledgerhandler "bookkeeping_backend/internal/feature/ledger/transport/handler"
	"bookkeeping_backend/internal/platform/http/handler"
	jwtmw "bookkeeping_backend/internal/platform/jwt"
	"bookkeeping_backend/internal/platform/metrics"
)

// NewRouter wires every endpoint. All bookkeeping routes live under /api and
// require a valid session token in the x-token header; only sign-in, health
// and metrics are open.
func NewRouter(auth *authhandler.AuthHandler, books *ledgerhandler.BookHandler,
	accounts *ledgerhandler.AccountHandler, moves *ledgerhandler.MoveHandler,
	loans *ledgerhandler.LoanHandler) *gin.Engine {
	r := gin.Default()
	r.Use(metrics.Middleware())

	// No authentication required
	r.GET("/healthz", handler.Health)
	r.HEAD("/healthz", handler.Health)
	r.GET("/metrics", metrics.Handler())
	// Sign in with a Google ID token (issues the session token)
	r.POST("/api/login", auth.Login)

	// Authenticated routes
	api := r.Group("/api")
	api.Use(jwtmw.AuthRequired())
	{
		api.GET("/login/renew", auth.Renew)

		b := api.Group("/books")
		{
			b.POST("/create", books.Create)
			b.GET("", books.Read)
			b.POST("/update", books.Update)
			b.POST("/destroy", books.Destroy)
		}

		a := api.Group("/accounts")
		{
			a.POST("/create", accounts.Create)
			a.GET("", accounts.Read)
			a.POST("/update", accounts.Update)
			a.POST("/destroy", accounts.Destroy)
		}

		m := api.Group("/moves")
		{
			m.POST("/create", moves.Create)
			m.GET("", moves.Read)
			m.POST("/update", moves.Update)
			m.POST("/destroy", moves.Destroy)
		}

		l := api.Group("/loans")
		{
			l.POST("/create", loans.Create)
			l.GET("", loans.Read)
			l.POST("/update", loans.Update)
			l.POST("/destroy", loans.Destroy)
		}
	}

	return r
}
