package main

import (
	"github.com/imagine-ke/imagine-api/internal/app"
	"github.com/imagine-ke/imagine-api/internal/server"
)

func main() {
	app.Invoke(server.StartServer).Run()
}
