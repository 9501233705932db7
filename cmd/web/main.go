package main

import "staffhub_backend/internal/app"

func main() {
	app.Run()
}
