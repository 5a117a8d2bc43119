package main

import "modscan/internal/app"

func main() {
	app.Run()
}
