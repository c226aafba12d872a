package main

import "tutorrec_backend/internal/app"

func main() {
	app.Run()
}
