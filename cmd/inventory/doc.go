// Package cmd/inventory provides the inventory CLI.
//
// Install:
//
//	go install github.com/zackariya14/databasteknik-uppgift-2/cmd/inventory@latest
//
// Then:
//
//	inventory seed     # load the sample catalog, offers and orders
//	inventory run      # start the interactive menu
//
// Configuration is read from .env / the environment: MONGO_URI,
// MONGO_DB, APP_ENV, LOG_TO_MONGO, LOG_COLLECTION.
package main
