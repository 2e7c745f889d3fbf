package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/leadbook/leadbook/internal/config"
	"github.com/leadbook/leadbook/internal/database"
	"github.com/leadbook/leadbook/internal/mailinglist"
	"github.com/leadbook/leadbook/internal/user"
)

func main() {
	config.LoadConfig()

	ctx := context.Background()

	// Setup database
	db, err := database.InitializePostgresDB(ctx)
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	if err := db.EnsureSchema(ctx); err != nil {
		log.Fatalf("Error initializing database schema: %v", err)
	}

	// Setup routing
	r := mux.NewRouter()
	user.SetupRoutes(r, user.NewService(db, mailinglist.NewSubscriber()))

	// Static API documentation
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "endpoints.json")
	}).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"msg": "Invalid request!"})
	})

	addr := config.Current.Server.Addr()
	srv := http.Server{
		Addr:    addr,
		Handler: r,

		ReadHeaderTimeout: 30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	go func() {
		log.Printf("Listening on %s\n", addr)
		log.Fatal(srv.ListenAndServe())
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)

	<-c

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down server: %v\n", err)
	}

	log.Println("Closing database connection...")
	if err := db.Close(); err != nil {
		log.Printf("Error closing database: %v\n", err)
	}
}
