package main

import "github.com/Egor213/EndpointLog/internal/app"

func main() {
	app.Run()
}
