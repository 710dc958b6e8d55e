package main

import "github.com/DRSN-tech/catalog-backend/internal/app"

func main() {
	app.Run()
}
