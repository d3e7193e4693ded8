package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"Girder/internal/auth"
	"Girder/internal/calc/analysis"
	"Girder/internal/calc/batch"
	"Girder/internal/calc/importer"
	"Girder/internal/calc/report"
	"Girder/internal/project"
	"Girder/internal/repo"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func HandleList(mux *mux.Router, db *sql.DB) {
	repository := repo.NewPostgresDB(db)

	tokenKey := os.Getenv("TOKEN_KEY")
	if tokenKey == "" {
		log.Fatal("TOKEN_KEY environment variable is not set")
	}

	authEnv := &auth.Env{JWTKey: []byte(tokenKey), Repo: repository}

	limiter := auth.NewIPRateLimiter(1, 3)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	api.HandleFunc("/login", authEnv.LoginHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	analysisH := &analysis.Handler{}
	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	reportH := &report.Handler{}

	api.HandleFunc("/beam/calc", analysisH.Calc).Methods("POST")
	api.HandleFunc("/beam/diagram", analysisH.Diagram).Methods("POST")
	api.HandleFunc("/beam/report", reportH.Generate).Methods("POST")
	api.HandleFunc("/beam/batch", batchH.Calc).Methods("POST")
	api.HandleFunc("/beam/import", importH.Import).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.Middleware)

	projectH := &project.Handler{Repo: repository}
	secureApi.HandleFunc("/projects", projectH.List).Methods("GET")
	secureApi.HandleFunc("/projects", projectH.Save).Methods("POST")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Get).Methods("GET")
	secureApi.HandleFunc("/projects/{id:[0-9]+}", projectH.Delete).Methods("DELETE")
	secureApi.HandleFunc("/projects/{id:[0-9]+}/result", projectH.Result).Methods("GET")

	mainFileServer := http.FileServer(http.Dir("./static/main"))
	mux.PathPrefix("/").
		Handler(mainFileServer)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on process environment")
	}

	db := auth.InitDB()
	defer db.Close()

	router := mux.NewRouter()
	HandleList(router, db)
	handler := CORS(router)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:    addr,
		Handler: handler,
	}

	certFile := os.Getenv("TLS_CERT")
	keyFile := os.Getenv("TLS_KEY")

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Println("Starting server on", addr)
		var err error
		if certFile != "" && keyFile != "" {
			err = server.ListenAndServeTLS(certFile, keyFile)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
