// scripts/gcal-auth/main.go
//
// Run once locally to authorize Google Calendar access for schedule export
// and write the token file the API server reads.
//
// Usage:
//   go run ./scripts/gcal-auth [credentials.json] [token.json]

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"

	"task-planner/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}
	tokenPath := gcalendar.DefaultTokenPath
	if len(os.Args) > 2 {
		tokenPath = os.Args[2]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := gcalendar.OAuthConfigFromJSON(data)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\nMake sure %q is an OAuth Desktop App credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Println("=================================================================")
	fmt.Println("STEP 1: open this URL in a browser and sign in with your Google account:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Println("=================================================================")
	fmt.Print("STEP 2: paste the authorization code here and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	tok, err := config.Exchange(context.Background(), code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("Failed to write %s: %v", tokenPath, err)
	}

	fmt.Println()
	fmt.Printf("Token saved to %s\n", tokenPath)
	fmt.Println("Set google_calendar.credentials_path and restart the API to enable POST /api/v1/schedule/export.")
}
