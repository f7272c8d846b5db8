package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/hawkeyemusic/hawkeyebackend/catalog"
	"github.com/hawkeyemusic/hawkeyebackend/config"
	"github.com/hawkeyemusic/hawkeyebackend/database"
	"github.com/hawkeyemusic/hawkeyebackend/handlers"
	"github.com/hawkeyemusic/hawkeyebackend/realtime"
	"github.com/hawkeyemusic/hawkeyebackend/repository"
	"github.com/hawkeyemusic/hawkeyebackend/workers"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Info: No .env file found or error loading: %v", err)
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: Failed to load configuration: %v", err)
	}

	db, err := database.InitGormDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize database: %v", err)
	}
	if err := database.AutoMigrateModels(db); err != nil {
		log.Fatalf("FATAL: Failed to migrate database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("FATAL: Failed to get underlying sql.DB: %v", err)
	}
	defer sqlDB.Close()

	albumRepo := repository.NewAlbumRepository(db)
	trackRepo := repository.NewTrackRepository(db)
	blogRepo := repository.NewBlogPostRepository(db)
	merchRepo := repository.NewMerchRepository(db)
	subscriberRepo := repository.NewSubscriberRepository(db)

	importer := catalog.NewImporter(albumRepo, trackRepo, merchRepo)

	log.Printf("Initializing import worker pool (Workers: %d, Queue Size: %d)...", cfg.NumImportWorkers, cfg.ImportQueueSize)
	importRunner := workers.NewImportRunner(importer, cfg.ImportQueueSize, cfg.NumImportWorkers)
	defer importRunner.Stop()

	hub := realtime.NewHub()
	go hub.Run()

	log.Printf("Using database: %s", cfg.DatabasePath)
	if cfg.CatalogCSVURL != "" {
		log.Printf("Default catalog CSV source: %s", cfg.CatalogCSVURL)
	}

	r := chi.NewRouter()

	corsOptions := cors.Options{
		AllowedOrigins:   []string{cfg.AllowedOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}

	corsHandler := cors.New(corsOptions)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	albumHandler := &handlers.AlbumHandler{Albums: albumRepo, Tracks: trackRepo}
	trackHandler := &handlers.TrackHandler{Tracks: trackRepo}
	blogHandler := &handlers.BlogHandler{Posts: blogRepo}
	merchHandler := &handlers.MerchHandler{Merch: merchRepo}
	subscriberHandler := &handlers.SubscriberHandler{Subscribers: subscriberRepo, Validate: validator.New()}
	importHandler := &handlers.ImportHandler{Runner: importRunner, DefaultSourceURL: cfg.CatalogCSVURL}
	statsHandler := &handlers.StatsHandler{DB: sqlDB}

	r.Route("/api", func(r chi.Router) {
		r.Route("/albums", func(r chi.Router) {
			r.Get("/", albumHandler.ListAlbums)
			r.Route("/{album_id}", func(r chi.Router) {
				r.Get("/", albumHandler.GetAlbum)
				r.Get("/tracks", albumHandler.ListAlbumTracks)
			})
		})

		r.Get("/tracks/{track_id}", trackHandler.GetTrack)

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", blogHandler.ListBlogPosts)
			r.Post("/", blogHandler.CreateBlogPost)
			r.Get("/{post_id}", blogHandler.GetBlogPost)
		})

		r.Route("/merch", func(r chi.Router) {
			r.Get("/", merchHandler.ListMerchItems)
			r.Get("/{item_id}", merchHandler.GetMerchItem)
		})

		r.Post("/subscribe", subscriberHandler.Subscribe)

		r.Route("/import-csv", func(r chi.Router) {
			r.Post("/", importHandler.StartImport)
			r.Get("/{run_id}", importHandler.GetImportRun)
		})

		r.Get("/stats", statsHandler.GetStats)
	})

	r.Get("/ws", hub.ServeWS)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	serverAddr := ":" + port
	fmt.Printf("Server starting on http://localhost:%s\n", port)
	log.Printf("Server listening on %s", serverAddr)
	server := &http.Server{
		Addr:         serverAddr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	log.Fatal(server.ListenAndServe())
}
