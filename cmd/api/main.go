package main

import (
	_ "carrozzeria/docs"
	"carrozzeria/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Carrozzeria Labor API
// @version         1.0
// @description     Body-shop labor timers, live dashboard, period stats and quotes.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the API token.

func main() {
	routes.Run()
}
