package main

import (
	"log"
	"net/http"
	"time"

	"github.com/rs/cors"

	"github.com/EISEC/spb-remont/cmd/api/router"
	"github.com/EISEC/spb-remont/config"
	"github.com/EISEC/spb-remont/httpclient"
	"github.com/EISEC/spb-remont/logger"
	"github.com/EISEC/spb-remont/wpclient"
)

// @title           SPB Remont Content API
// @version         1.0
// @description     Blog content adapter and lead capture for the renovation site
// @BasePath        /api/v1
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	httpClient := httpclient.New(httpclient.Config{
		Timeout: time.Duration(cfg.WordPress.TimeoutSeconds) * time.Second,
	})
	client := wpclient.NewWithHTTPClient(httpClient, cfg.WordPress.BaseURL)

	r := router.New(client)

	// the site frontend is served from another origin
	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", "X-Request-Id"},
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: c.Handler(r),
	}
	logger.InfoWithFields("starting api server", logger.Fields{"addr": cfg.Server.Addr})
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
