package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/eventdeskhq/eventdesk-api/cmd/app"
)

// @title           EventDesk API
// @description     Event-management CRM backend: projects and their attendees, delegates, speakers, sponsors, exhibitors, partners, leads, orders, agenda and UTM tracking.
// @version         1.0
//
// @contact.name   EventDesk Support
//
// @license.name  MIT
//
// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
// @description Signed admin session cookie
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
