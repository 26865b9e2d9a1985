package normalizer

import (
	"regexp"
	"strings"

	"github.com/holasocioit-bit/visual-info/internal/entities"
)

var (
	// Scheme-prefixed web links.
	urlPattern = regexp.MustCompile(`https?://[^\s"'<>\)\]\}]+`)

	// Academic preprint identifiers, e.g. "arXiv:2104.08691".
	arxivPattern = regexp.MustCompile(`arXiv:\d+\.\d+`)

	// Code-host repository path fragments, e.g. "github.com/org/repo".
	repoPattern = regexp.MustCompile(`(?:github\.com|gitlab\.com|bitbucket\.org)/[\w.-]+/[\w.-]+`)
)

// extractLinks builds the ordered link list for a paper: the first
// non-empty explicit link field (normalized) comes first, followed by
// everything recovered from the free text of summary and contribution.
// The result is deduplicated by exact text, keeping first occurrences,
// which also makes the whole extraction idempotent.
func extractLinks(raw map[string]any, summary, contribution string) entities.StringList {
	links := entities.StringList{}

	if explicit := explicitLink(raw); explicit != "" {
		links = append(links, explicit)
	}
	links = append(links, scanText(summary+" "+contribution)...)

	return dedupe(links)
}

// explicitLink inspects the fixed list of link-bearing fields and
// normalizes the first non-empty value found.
func explicitLink(raw map[string]any) string {
	for _, field := range LinkFields {
		value, ok := raw[field]
		if !ok {
			continue
		}
		text := strings.TrimSpace(asText(value))
		if text != "" {
			return normalizeLink(text)
		}
	}
	return ""
}

// normalizeLink prepends a secure scheme to values that look like bare
// domains. Values that are neither scheme-prefixed nor domain-like (a raw
// DOI, for example) are kept verbatim.
func normalizeLink(link string) string {
	if strings.Contains(link, "://") {
		return link
	}
	if strings.Contains(link, "www") || strings.Contains(link, ".com") || strings.Contains(link, ".org") {
		return "https://" + link
	}
	return link
}

func scanText(text string) []string {
	var found []string
	found = append(found, urlPattern.FindAllString(text, -1)...)
	found = append(found, arxivPattern.FindAllString(text, -1)...)
	found = append(found, repoPattern.FindAllString(text, -1)...)
	return found
}

func dedupe(links entities.StringList) entities.StringList {
	seen := make(map[string]struct{}, len(links))
	deduped := make(entities.StringList, 0, len(links))
	for _, link := range links {
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		deduped = append(deduped, link)
	}
	return deduped
}
