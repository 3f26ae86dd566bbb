// Package main is the entry point for the production-optimizer application.
//
// @title           Production Optimizer API
// @version         1.0.0
// @description     API for managing a raw material and product catalog and computing
//
//	the production mix that maximizes projected sale value within current stock.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/John-Mota/production-optimizer-back
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key used to obtain an access token. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Bearer token issued by /api/auth/token. Required on mutating catalog routes if authentication is enabled.
//
// @tag.name        Optimization
// @tag.description Production optimization operations
//
// @tag.name        Materials
// @tag.description Raw material catalog operations
//
// @tag.name        Products
// @tag.description Product catalog operations
//
// @tag.name        Auth
// @tag.description Token issuing endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"

	_ "github.com/John-Mota/production-optimizer-back/docs" // swagger docs

	"github.com/rs/zerolog/log"

	"github.com/John-Mota/production-optimizer-back/config"
	"github.com/John-Mota/production-optimizer-back/internal/app"
	"github.com/John-Mota/production-optimizer-back/internal/middleware"
)

func main() {
	cfg := config.Load()

	router := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port)
	server.OnShutdown(func(ctx context.Context) {
		middleware.StopAsyncLogger()
	})

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
