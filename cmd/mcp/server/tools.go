package server

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/balancednews/news-feed/cmd/mcp/client"
	"github.com/mark3labs/mcp-go/mcp"
)

func (s *Server) handleLatestNews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	page, pageSize := parsePagination(request.Params.Arguments)

	articles, err := s.client.LatestNews(ctx, page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to list latest news: %v", err)), nil
	}

	return formatArticlesResult(articles)
}

func (s *Server) handleSearchNews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	query, ok := args["query"].(string)
	if !ok || strings.TrimSpace(query) == "" {
		return mcp.NewToolResultError("query is required"), nil
	}

	page, pageSize := parsePagination(args)

	articles, err := s.client.SearchNews(ctx, query, page, pageSize)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to search news: %v", err)), nil
	}

	return formatArticlesResult(articles)
}

func (s *Server) handleGetArticle(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	articleID, ok := args["article_id"].(string)
	if !ok || articleID == "" {
		return mcp.NewToolResultError("article_id is required"), nil
	}

	article, err := s.client.GetArticle(ctx, articleID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to get article: %v", err)), nil
	}

	return formatJSONResult(article)
}

func (s *Server) handleBalancedNews(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	limit := 0
	if l, ok := args["limit"].(float64); ok && l > 0 {
		limit = min(int(l), 100)
	}

	balanced, err := s.client.BalancedNews(ctx, limit)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get balanced news: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	if len(balanced.Data) == 0 {
		return mcp.NewToolResultText("No articles found."), nil
	}

	return formatJSONResult(balanced)
}

func (s *Server) handlePoliticalIndex(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	index, err := s.client.PoliticalIndex(ctx)
	if err != nil {
		errMsg := fmt.Sprintf("failed to get political index: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return formatJSONResult(index)
}

func (s *Server) handleListScraps(
	ctx context.Context,
	_ mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	articles, err := s.client.ListScraps(ctx)
	if err != nil {
		errMsg := fmt.Sprintf("failed to list scraps: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return formatArticlesResult(articles)
}

func (s *Server) handleScrapArticle(
	ctx context.Context,
	request mcp.CallToolRequest,
) (*mcp.CallToolResult, error) {
	args := request.Params.Arguments

	articleID, ok := args["article_id"].(string)
	if !ok || articleID == "" {
		return mcp.NewToolResultError("article_id is required"), nil
	}

	action, _ := args["action"].(string)
	action = strings.ToLower(action)
	if action != "add" && action != "remove" {
		return mcp.NewToolResultError("action must be 'add' or 'remove'"), nil
	}

	res, err := s.client.ScrapArticle(ctx, articleID, action)
	if err != nil {
		errMsg := fmt.Sprintf("failed to update scrap: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	verb := "Scrapped"
	if action == "remove" {
		verb = "Unscrapped"
	}
	if !res.Changed {
		verb = "No change for"
	}
	msg := fmt.Sprintf("%s article %s. Activity score is now %d.", verb, articleID, res.ActivityScore)
	return mcp.NewToolResultText(msg), nil
}

func parsePagination(args map[string]any) (page, pageSize int) {
	page = 1
	pageSize = 20

	if p, ok := args["page"].(float64); ok && p > 0 {
		page = int(p)
	}
	if ps, ok := args["page_size"].(float64); ok && ps > 0 {
		pageSize = min(int(ps), 200)
	}
	return page, pageSize
}

func formatArticlesResult(articles []client.Article) (*mcp.CallToolResult, error) {
	if len(articles) == 0 {
		return mcp.NewToolResultText("No articles found."), nil
	}

	data, err := json.MarshalIndent(articles, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format articles: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	msg := fmt.Sprintf("Found %d article(s):\n\n%s", len(articles), string(data))
	return mcp.NewToolResultText(msg), nil
}

func formatJSONResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		errMsg := fmt.Sprintf("failed to format result: %v", err)
		return mcp.NewToolResultError(errMsg), nil
	}

	return mcp.NewToolResultText(string(data)), nil
}
