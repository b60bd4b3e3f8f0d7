// @title           Pratibha Charitable Trust Donations API
// @version         1.0
// @description     Donation order creation, payment verification and certificate delivery.
// @contact.name    Pratibha Charitable Trust
// @contact.email   no-reply@example.com
// @host            localhost:5000
// @BasePath        /

package main

import "github.com/Hazykiller/NGO-WEBSITE/internal/app"

func main() {
	app.Run()
}
