package domain

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// Category is a fixed topic enumeration for discovered news
type Category string

// known categories, the only values the pipeline ever stores
const (
	CategoryAI       Category = "ai"
	CategoryRobotics Category = "robotics"
	CategoryBiotech  Category = "biotech"
)

// Categories lists all known categories in processing order
func Categories() []Category {
	return []Category{CategoryAI, CategoryRobotics, CategoryBiotech}
}

// Valid reports whether the category is one of the known values
func (c Category) Valid() bool {
	switch c {
	case CategoryAI, CategoryRobotics, CategoryBiotech:
		return true
	}
	return false
}

// Name returns the human-readable category name used in search prompts
func (c Category) Name() string {
	switch c {
	case CategoryAI:
		return "Artificial Intelligence"
	case CategoryRobotics:
		return "Robotics"
	case CategoryBiotech:
		return "Biotechnology"
	}
	return "Technology"
}

// Keywords returns the search keyword set for the category
func (c Category) Keywords() []string {
	switch c {
	case CategoryAI:
		return []string{"artificial intelligence", "machine learning", "deep learning", "neural network",
			"AI ethics", "generative AI", "large language model", "LLM"}
	case CategoryRobotics:
		return []string{"robotics", "automation", "autonomous", "robot", "drone",
			"robot ethics", "robotic process", "human-robot interaction"}
	case CategoryBiotech:
		return []string{"biotechnology", "genomics", "crispr", "genetic engineering",
			"bioethics", "synthetic biology", "gene editing", "biotech ethics"}
	}
	return []string{"ethics", "technology", "digital ethics"}
}

// NewsItem represents a discovered or curated article
type NewsItem struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary,omitempty"`
	Content  string   `json:"content,omitempty"`
	URL      string   `json:"url"`
	Date     string   `json:"date"` // YYYY-MM-DD
	SourceID string   `json:"sourceId"`
	Category Category `json:"category"`
	ImageURL string   `json:"imageUrl,omitempty"`
}

// NewsSource represents a configured origin to search
type NewsSource struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	Logo        string `json:"logo,omitempty"`
	Reliability int    `json:"reliability"` // 1-10 editorial weight
}

// CandidateResult is an unvalidated article record returned by the search provider
type CandidateResult struct {
	Title    string   `json:"title"`
	URL      string   `json:"url"`
	Summary  string   `json:"summary"`
	Date     string   `json:"date"`
	Category Category `json:"category,omitempty"`
}

// FetchNewsResult is the pipeline's output contract to its callers
type FetchNewsResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message"`
	NewArticlesCount *int   `json:"newArticlesCount,omitempty"`
}

// NewID generates an opaque unique identifier for a news item
func NewID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("can't read random bytes: %v", err)) // crypto/rand never fails on supported platforms
	}
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// ImageURLFor derives a deterministic decorative thumbnail from the title
func ImageURLFor(title string) string {
	seed := strings.ReplaceAll(title, " ", "")
	if seed == "" {
		seed = "news"
	}
	return fmt.Sprintf("https://picsum.photos/seed/%s/400/300", seed)
}
