// Command devtoken prints a bearer token for a device, signed with the
// configured JWT_SECRET.
package main

import (
	"flag"
	"fmt"
	"log"

	"backend-runtracker/internal/auth"
	"backend-runtracker/internal/config"
)

func main() {
	device := flag.String("device", "", "device id to embed in the token")
	flag.Parse()

	cfg := config.Load()
	token, err := auth.NewService(cfg.JWTSecret).IssueToken(*device)
	if err != nil {
		log.Fatalf("issue token: %v", err)
	}
	fmt.Println(token)
}
