package store

import (
	"time"

	"github.com/umputun/newsdigest/pkg/domain"
)

// SeedNews returns the built-in demo dataset used when no news is persisted.
// Dates are relative to the current day so the demo set always looks fresh.
func SeedNews() []domain.NewsItem {
	today := time.Now().Format("2006-01-02")
	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	twoDaysAgo := time.Now().AddDate(0, 0, -2).Format("2006-01-02")

	return []domain.NewsItem{
		{
			ID:       "seed-1",
			Title:    "ChatGPT and the debate over generative AI ethics",
			URL:      "https://www.corriere.it/tecnologia/ai-ethics",
			Date:     today,
			SourceID: "corriere",
			Category: domain.CategoryAI,
			Summary:  "Experts discuss the ethical limits of generative artificial intelligence and its potential social consequences.",
		},
		{
			ID:       "seed-2",
			Title:    "Surgical robots: new guidelines for medical liability",
			URL:      "https://www.repubblica.it/salute/robot-chirurgici",
			Date:     today,
			SourceID: "repubblica",
			Category: domain.CategoryRobotics,
			Summary:  "New guidelines published on medical liability in the use of surgical robots.",
		},
		{
			ID:       "seed-3",
			Title:    "Gene editing: scientists call for clearer rules",
			URL:      "https://www.ilsole24ore.com/biotech/crispr",
			Date:     today,
			SourceID: "ilsole24ore",
			Category: domain.CategoryBiotech,
			Summary:  "Researchers ask for clearer regulation of CRISPR gene-editing techniques.",
		},
		{
			ID:       "seed-4",
			Title:    "Facial recognition in cities: privacy watchdog steps in",
			URL:      "https://www.ansa.it/privacy/facial-recognition",
			Date:     yesterday,
			SourceID: "ansa",
			Category: domain.CategoryAI,
			Summary:  "The privacy authority raises concerns over facial recognition technology deployed in public spaces.",
		},
		{
			ID:       "seed-5",
			Title:    "Autonomous drones for environmental monitoring: what risks?",
			URL:      "https://www.wired.it/droni-ambiente",
			Date:     yesterday,
			SourceID: "wired",
			Category: domain.CategoryRobotics,
			Summary:  "An analysis of the risks of using autonomous drones for environmental monitoring.",
		},
		{
			ID:       "seed-6",
			Title:    "Biobanks and informed consent: who owns biological data",
			URL:      "https://www.corriere.it/salute/biobanche",
			Date:     yesterday,
			SourceID: "corriere",
			Category: domain.CategoryBiotech,
			Summary:  "The debate over ownership of biological data stored in biobanks reignites.",
		},
		{
			ID:       "seed-7",
			Title:    "Hiring algorithms: invisible discrimination in the job market",
			URL:      "https://www.repubblica.it/economia/lavoro-algoritmi",
			Date:     twoDaysAgo,
			SourceID: "repubblica",
			Category: domain.CategoryAI,
			Summary:  "A study reveals potential discrimination in algorithms used for candidate screening.",
		},
		{
			ID:       "seed-8",
			Title:    "Exoskeletons on the factory floor: new workplace safety questions",
			URL:      "https://www.ilsole24ore.com/industria/esoscheletri",
			Date:     twoDaysAgo,
			SourceID: "ilsole24ore",
			Category: domain.CategoryRobotics,
			Summary:  "The introduction of exoskeletons in factories raises new questions about worker safety.",
		},
		{
			ID:       "seed-9",
			Title:    "Neurotechnology: the line between therapy and human enhancement",
			URL:      "https://www.ansa.it/scienza/neurotecnologie",
			Date:     twoDaysAgo,
			SourceID: "ansa",
			Category: domain.CategoryBiotech,
			Summary:  "Bioethics experts discuss the thin line between therapeutic applications and enhancement of human capabilities.",
		},
	}
}
