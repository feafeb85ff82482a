package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/manual-labs/quizflow/internal/api/http"
	"github.com/manual-labs/quizflow/internal/auth"
	"github.com/manual-labs/quizflow/internal/catalog"
	"github.com/manual-labs/quizflow/internal/config"
	"github.com/manual-labs/quizflow/internal/db"
	"github.com/manual-labs/quizflow/internal/session"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
	if err != nil {
		log.Fatalf("db open failed: %v", err)
	}
	store := catalog.NewSQLStore(dbh, cfg.DBDriver)
	sessions := session.NewService(store, session.NewSQLStore(dbh))

	authSvc := auth.NewAuthService(cfg.AuthHMACSecret, cfg.AdminUser, cfg.AdminPassHash)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc))
	}

	r.Route("/api", func(ar chi.Router) {
		// Quiz-filling surface (public).
		ar.Route("/filler", func(fr chi.Router) {
			fr.Post("/sessions", api.CreateSessionHandler(sessions))
			fr.Get("/{sessionID}/current_question", api.CurrentQuestionHandler(sessions))
			fr.Post("/{sessionID}/answer", api.AnswerHandler(sessions))
			fr.Post("/{sessionID}/reset_to_previous_question/{questionID}", api.RewindHandler(sessions))
		})

		// Catalog reads (public).
		ar.Get("/quiz/questions", api.ListQuestionsHandler(store))
		ar.Get("/quiz/restriction/{answerID}", api.ListRestrictionsHandler(store))
		ar.Get("/products", api.ListProductsHandler(store))
		ar.Get("/transitions", api.ListTransitionsHandler(store))
		ar.Get("/transitions/{transitionID}", api.GetTransitionHandler(store))

		// Catalog mutations (admin token).
		ar.Group(func(pr chi.Router) {
			pr.Use(auth.JWTMiddleware(authSvc))

			pr.Post("/quiz/question", api.CreateQuestionHandler(store))
			pr.Post("/quiz/question/{questionID}/publish", api.PublishQuestionHandler(store))
			pr.Post("/quiz/question/{questionID}/disable", api.DisableQuestionHandler(store))

			pr.Post("/quiz/answer", api.CreateAnswerHandler(store))
			pr.Post("/quiz/answer/{answerID}/publish", api.PublishAnswerHandler(store))
			pr.Post("/quiz/answer/{answerID}/disable", api.DisableAnswerHandler(store))

			pr.Post("/quiz/restriction", api.CreateRestrictionHandler(store))
			pr.Delete("/quiz/restriction/{restrictionID}", api.DeleteRestrictionHandler(store))

			pr.Post("/product", api.CreateProductHandler(store))
			pr.Put("/product/{productID}", api.UpdateProductHandler(store))
			pr.Post("/product/{productID}/publish", api.PublishProductHandler(store))
			pr.Post("/product/{productID}/disable", api.DisableProductHandler(store))

			pr.Post("/transitions", api.CreateTransitionHandler(store))
			pr.Put("/transitions/{transitionID}", api.UpdateTransitionHandler(store))
			pr.Delete("/transitions/{transitionID}", api.DeleteTransitionHandler(store))
		})
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (db=%s)", cfg.HTTPAddr, cfg.DBDriver)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
