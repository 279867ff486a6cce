package llm

import (
	"regexp"
	"strings"
)

var (
	boldPattern     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern   = regexp.MustCompile(`\*([^*]+)\*`)
	bulletPattern   = regexp.MustCompile(`(?m)^\s*[-*]\s+`)
	numberedPattern = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	newlinePattern  = regexp.MustCompile(`\n{3,}`)
	sentencePattern = regexp.MustCompile(`([.!?])([^ \n])`)
)

// CleanAnswer strips Markdown the model produced despite instructions and
// normalizes spacing into a chat-friendly reply.
func CleanAnswer(text string) string {
	text = boldPattern.ReplaceAllString(text, "$1")
	text = italicPattern.ReplaceAllString(text, "$1")
	text = bulletPattern.ReplaceAllString(text, "")
	text = numberedPattern.ReplaceAllString(text, "")
	text = newlinePattern.ReplaceAllString(text, "\n\n")
	text = sentencePattern.ReplaceAllString(text, "$1 $2")
	return strings.TrimSpace(text)
}
