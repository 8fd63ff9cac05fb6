package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"bookkeeping_backend/internal/app/router"
	authhandler "bookkeeping_backend/internal/feature/auth/transport/handler"
	authusecase "bookkeeping_backend/internal/feature/auth/usecase"
	"bookkeeping_backend/internal/feature/ledger/adapters"
	ledgerhandler "bookkeeping_backend/internal/feature/ledger/transport/handler"
	ledgerusecase "bookkeeping_backend/internal/feature/ledger/usecase"
	"bookkeeping_backend/internal/platform/cache"
	platformdb "bookkeeping_backend/internal/platform/db"
	"bookkeeping_backend/internal/platform/events"
	"bookkeeping_backend/internal/platform/googleauth"
	jwtmw "bookkeeping_backend/internal/platform/jwt"
	platformredis "bookkeeping_backend/internal/platform/redis"
	"bookkeeping_backend/internal/shared/ratelimiter"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Store, wrapped with the Redis cache
	userStore := adapters.NewUserGorm(db)
	cachedStore := cache.NewCachingUserStore(rdb, 5*time.Minute, userStore, "users")

	// Session tokens
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	issuer := jwtmw.NewIssuer(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)

	// Google sign-in
	verifier := googleauth.NewVerifier(
		os.Getenv("GOOGLE_CLIENT_ID"),
		os.Getenv("ANDROID_GOOGLE_CLIENT_ID"),
	)
	throttle := ratelimiter.NewRateLimiter(60, time.Minute)

	// Move events
	var publisher ledgerusecase.EventPublisher = events.NoopPublisher{}
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		kp := events.NewKafkaPublisher(strings.Split(brokers, ","), "bookkeeping.moves")
		defer func() {
			if err := kp.Close(); err != nil {
				log.Println("[ERROR] Failed to close Kafka writer:", err)
			}
		}()
		publisher = kp
	}

	// Usecase
	authUC := authusecase.NewAuthUsecase(cachedStore, verifier, issuer, throttle)
	ledgerUC := ledgerusecase.NewLedgerUsecase(cachedStore, issuer, publisher)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	bookH := ledgerhandler.NewBookHandler(ledgerUC)
	accountH := ledgerhandler.NewAccountHandler(ledgerUC)
	moveH := ledgerhandler.NewMoveHandler(ledgerUC)
	loanH := ledgerhandler.NewLoanHandler(ledgerUC)

	router := router.NewRouter(authH, bookH, accountH, moveH, loanH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
