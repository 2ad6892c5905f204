package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/velora-dev/go-storefront/app/cmd"
	"github.com/velora-dev/go-storefront/app/configs"
	"github.com/velora-dev/go-storefront/app/routes"
	"github.com/velora-dev/go-storefront/app/services"
	"github.com/velora-dev/go-storefront/app/utils/renderer"
	"github.com/velora-dev/go-storefront/app/utils/sessions"
	"github.com/velora-dev/go-storefront/app/utils/themes"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	configs.InitMidtransClient()

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	log.Println("Database connected.")

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys missing:", err)
	}
	sessionStore := sessions.NewCookieSessionStore(keys.AuthKey, keys.EncKey)

	// theme and store settings come from the store API; a failed fetch
	// falls back to the built-in defaults so the storefront still boots
	settings := fetchStoreSettings()

	router := routes.NewRouter(db, renderer.New(settings), settings, sessionStore, keys)

	port := configs.LoadENV.Port
	if port == "" {
		port = ":8080"
	}
	server := http.Server{
		Addr:         port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped:", err)
	}
}

func fetchStoreSettings() themes.Settings {
	client := services.NewStoreInfoClient(configs.LoadENV.STORE_API_BASE_URL, configs.LoadENV.STORE_API_KEY)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	settings, err := client.FetchStoreInfo(ctx)
	if err != nil {
		log.Printf("Store info fetch failed, using default theme: %v", err)
	}
	return settings
}
