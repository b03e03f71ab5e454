package main

import "productcatalog/catalog-service/cmd/commands"

// @title Product Catalog API
// @version 1.0
// @description CRUD API for catalog categories and products.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	commands.Execute()
}
