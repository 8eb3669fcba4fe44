// Package server provides the MCP server implementation.
package server

import (
	"github.com/balancednews/news-feed/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server is the MCP server for the balanced news API.
type Server struct {
	client    *client.Client
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server with the given API client.
func NewServer(apiClient *client.Client) *Server {
	s := &Server{
		client: apiClient,
	}

	s.mcpServer = server.NewMCPServer(
		"balanced-news",
		"1.0.0",
		server.WithResourceCapabilities(true, false),
		server.WithLogging(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Run starts the MCP server with stdio transport.
func (s *Server) Run() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("latest_news",
		mcp.WithDescription(
			"List the latest Korean political news articles, newest first. Each article "+
				"carries a political score from 1 (conservative) to 100 (progressive), its "+
				"leaning and a neutrality score from 0 to 1."),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of articles per page (default: 20, max: 200)"),
		),
	), s.handleLatestNews)

	s.mcpServer.AddTool(mcp.NewTool("search_news",
		mcp.WithDescription("Search political news articles by a keyword in the title or summary."),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Keyword to search for, e.g. '예산안'"),
		),
		mcp.WithNumber("page",
			mcp.Description("Page number (1-indexed, default: 1)"),
		),
		mcp.WithNumber("page_size",
			mcp.Description("Number of articles per page (default: 20, max: 200)"),
		),
	), s.handleSearchNews)

	s.mcpServer.AddTool(mcp.NewTool("get_article",
		mcp.WithDescription("Get full details of a specific article by its ID."),
		mcp.WithString("article_id",
			mcp.Required(),
			mcp.Description("The id of the article to retrieve"),
		),
	), s.handleGetArticle)

	s.mcpServer.AddTool(mcp.NewTool("balanced_news",
		mcp.WithDescription(
			"Get a balanced reading list: mostly articles close to your political score, "+
				"mixed with articles from the other side. Requires a political score on your profile."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of articles to return (default: 20, max: 100)"),
		),
	), s.handleBalancedNews)

	s.mcpServer.AddTool(mcp.NewTool("political_index",
		mcp.WithDescription(
			"Get your political index: the score on your profile and the score implied by "+
				"the articles you have scrapped."),
	), s.handlePoliticalIndex)

	s.mcpServer.AddTool(mcp.NewTool("list_scraps",
		mcp.WithDescription("List the articles you have scrapped, most recent first."),
	), s.handleListScraps)

	s.mcpServer.AddTool(mcp.NewTool("scrap_article",
		mcp.WithDescription("Scrap an article or remove it from your scraps. This updates your political index."),
		mcp.WithString("article_id",
			mcp.Required(),
			mcp.Description("The id of the article"),
		),
		mcp.WithString("action",
			mcp.Required(),
			mcp.Description("'add' to scrap the article, 'remove' to unscrap it"),
		),
	), s.handleScrapArticle)
}
