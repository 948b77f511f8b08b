// Command userregistry runs the user registry HTTP API and its admin CLI.
//
// @title                      User Registry API
// @version                    1.0
// @description                In-memory or database-backed user store with add, lookup and remove.
// @BasePath                   /
// @securityDefinitions.apikey BearerAuth
// @in                         header
// @name                       Authorization
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
