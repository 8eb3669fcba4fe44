// Package main provides the entry point for the balanced news MCP server.
//
// The server lets AI agents browse the political news feed and manage the scraps of the
// user that owns the API token.
//
// Configuration:
//
//	NEWS_API_URL   - Base URL of the API (default: http://localhost:8000)
//	NEWS_API_TOKEN - API token for authentication (required, format: news_api|xxx)
package main

import (
	"log"
	"os"

	"github.com/balancednews/news-feed/cmd/mcp/client"
	"github.com/balancednews/news-feed/cmd/mcp/server"
)

func main() {
	apiURL := os.Getenv("NEWS_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8000"
	}

	apiToken := os.Getenv("NEWS_API_TOKEN")
	if apiToken == "" {
		log.Fatal("NEWS_API_TOKEN environment variable is required")
	}

	apiClient := client.NewClient(apiURL, apiToken)
	srv := server.NewServer(apiClient)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
