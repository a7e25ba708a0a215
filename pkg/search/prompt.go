package search

import (
	"fmt"
	"strings"

	"github.com/umputun/newsdigest/pkg/domain"
)

// systemPrompt fixes the assistant's role and recency bias for every request
const systemPrompt = `You are an assistant specialized in finding recent news about the ethical implications of new technologies. ` +
	`Respond only with parsable JSON. Search ONLY for news from the last 7 days, ideally 2-3 days.`

// userPrompt builds the per-pair search instruction naming the source, the
// category and its keyword set
func userPrompt(source domain.NewsSource, category domain.Category) string {
	keywords := strings.Join(category.Keywords(), ", ")

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Search for recent news (at most from the last 7 days) about the ethical implications of technology, "+
		"specifically in the field of %s (%s) from the site %s.\n\n", category.Name(), keywords, source.URL))
	sb.WriteString(fmt.Sprintf("Find at most 3 relevant news items that discuss ethics and %s in some way.\n\n", category.Name()))
	sb.WriteString("For each news item provide the following information in JSON format:\n")
	sb.WriteString("- title: the article title\n")
	sb.WriteString("- url: the full article URL\n")
	sb.WriteString("- summary: a short summary of the article (max 200 characters) mentioning the ethical aspects\n")
	sb.WriteString("- date: the publication date in YYYY-MM-DD format\n\n")
	sb.WriteString("Respond ONLY with a valid JSON array containing the news objects, nothing else.")
	return sb.String()
}
