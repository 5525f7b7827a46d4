package main

import (
	_ "bp_analytics/docs"
	"bp_analytics/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           BP Analytics API
// @version         1.0
// @description     Maintenance work order analytics (xlsx ingestion + reporting).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

func main() {
	routes.Run()
}
