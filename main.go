package main

import (
	"sponlink-api/core/logger"
	"sponlink-api/core/server"
)

// @title SponLink API
// @version 1.0
// @description 活動贊助媒合平台 API，連結活動主辦方與贊助商

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:7070
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
	}
}
