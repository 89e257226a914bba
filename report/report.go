// Package report renders analysis results into the downloadable PDF report.
package report

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"legaldoc-backend/models"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
)

const (
	// Filename is the attachment name of the rendered report
	Filename = "Legal_Report.pdf"

	title  = "Legal Document Analysis Report"
	footer = "Generated by Legal Document Analyzer"
)

// Renderer turns a report into PDF bytes
type Renderer interface {
	Render(ctx context.Context, r models.Report) ([]byte, error)
}

type section struct {
	heading string
	body    string
	list    []string
}

func sections(r models.Report) []section {
	return []section{
		{heading: "Summary", body: r.Summary},
		{heading: "Case Nature", body: r.CaseNature},
		{heading: "Risk Score", body: string(r.RiskScore)},
		{heading: "Possible Punishments", body: r.Punishments},
		{heading: "Relevant IPC Sections", list: r.IPCSections},
		{heading: "Legal Remedies", list: r.Remedies},
		{heading: "Recommended Lawyers", list: r.Lawyers},
		{heading: "Translation", body: r.Translation},
	}
}

// Markdown lays the report out as markdown; empty sections are skipped
func Markdown(r models.Report) string {
	var b strings.Builder
	b.WriteString("# " + title + "\n\n")
	for _, s := range sections(r) {
		var items []string
		for _, item := range s.list {
			if item = strings.Join(strings.Fields(item), " "); item != "" {
				items = append(items, escapeLine(item))
			}
		}
		body := strings.TrimSpace(s.body)
		if body == "" && len(items) == 0 {
			continue
		}

		b.WriteString("## " + s.heading + "\n\n")
		if body != "" {
			b.WriteString(escapeText(body) + "\n\n")
		}
		for _, item := range items {
			b.WriteString("- " + item + "\n")
		}
		if len(items) > 0 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// orderedMarker matches an ordered list marker such as "1." or "2)"
var orderedMarker = regexp.MustCompile(`^(\d{1,9})([.)])`)

// escapeText keeps client text from opening headings, lists, quotes, fences,
// tables or code blocks; each line stays a line of its paragraph.
func escapeText(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = escapeLine(line)
	}
	return strings.Join(lines, "\n")
}

func escapeLine(line string) string {
	line = strings.TrimLeft(line, " \t")
	if line == "" {
		return line
	}
	if strings.ContainsRune(`#>-+*=|`+"`"+`~_\`, rune(line[0])) {
		return `\` + line
	}
	return orderedMarker.ReplaceAllString(line, `$1\$2`)
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
)

// HTML renders the report as a standalone printable page
func HTML(r models.Report) (string, error) {
	var content strings.Builder
	if err := md.Convert([]byte(Markdown(r)), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>" + html.EscapeString(title) + "</title>" +
		"<style>" +
		"html,body,*{-webkit-print-color-adjust:exact !important;print-color-adjust:exact !important;} " +
		"body{font-family:Helvetica,Arial,sans-serif;font-size:11pt;line-height:1.4;color:#1c1917;padding:0.6rem;} " +
		"h1{color:#0d47a1;text-align:center;font-size:22pt;} " +
		"h2{color:#2a5298;font-size:15pt;margin-top:1.2rem;} " +
		"footer{margin-top:2rem;text-align:center;font-size:9pt;color:#666;}" +
		"</style></head><body>" +
		"<main>" + content.String() + "</main>" +
		"<footer>" + html.EscapeString(footer) + "</footer>" +
		"</body></html>", nil
}
