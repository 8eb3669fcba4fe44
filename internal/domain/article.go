package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"
)

var ErrArticleNotFound = errors.New("article not found")

type Article struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	URL              string      `json:"url"`
	Summary          string      `json:"summary"`
	Content          string      `json:"-"`
	Source           string      `json:"source"`
	ImageURL         string      `json:"image_url"`
	PoliticalLeaning Affiliation `json:"political_leaning"`
	PoliticalScore   *int        `json:"political_score"`
	NeutralityScore  *float64    `json:"neutrality_score"`
	PublishedAt      *time.Time  `json:"published_at,omitempty"`
	CreatedAt        time.Time   `json:"created_at"`
}

// ArticleID derives the stable identifier of the article stored under the given URL.
func ArticleID(url string) string {
	hash := sha256.Sum256([]byte(url))
	return hex.EncodeToString(hash[:])[:32]
}

// ArticleScores holds the analysis results recomputed for a stored article.
type ArticleScores struct {
	ArticleID        string
	PoliticalLeaning Affiliation
	PoliticalScore   int
	NeutralityScore  float64
}
