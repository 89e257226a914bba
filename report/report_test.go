package report

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"legaldoc-backend/models"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReport() models.Report {
	return models.Report{
		Summary:     "The accused committed theft.\nThe court reserved judgment.",
		CaseNature:  "Criminal Case",
		RiskScore:   "70",
		Punishments: "Possible punishments: Fine, Imprisonment",
		IPCSections: models.FlexLines{"IPC 378 - Theft", "IPC 302 - Murder"},
		Remedies:    models.FlexLines{"File FIR", ""},
	}
}

func TestMarkdownSkipsEmptySections(t *testing.T) {
	out := Markdown(sampleReport())

	assert.True(t, strings.HasPrefix(out, "# Legal Document Analysis Report\n"))
	assert.Contains(t, out, "## Summary\n\nThe accused committed theft.")
	assert.Contains(t, out, "## Risk Score\n\n70")
	assert.Contains(t, out, "- IPC 378 - Theft\n- IPC 302 - Murder\n")
	assert.Contains(t, out, "## Legal Remedies\n\n- File FIR\n\n")
	assert.NotContains(t, out, "## Recommended Lawyers")
	assert.NotContains(t, out, "## Translation")
}

func TestMarkdownSectionOrder(t *testing.T) {
	r := sampleReport()
	r.Lawyers = models.FlexLines{"Adv. Rakesh Kumar"}
	r.Translation = "अनुवाद"
	out := Markdown(r)

	order := []string{"## Summary", "## Case Nature", "## Risk Score", "## Possible Punishments",
		"## Relevant IPC Sections", "## Legal Remedies", "## Recommended Lawyers", "## Translation"}
	last := -1
	for _, h := range order {
		idx := strings.Index(out, h)
		require.NotEqual(t, -1, idx, h)
		assert.Greater(t, idx, last, h)
		last = idx
	}
}

func TestHTML(t *testing.T) {
	doc, err := HTML(sampleReport())
	require.NoError(t, err)

	assert.Contains(t, doc, "<h1>Legal Document Analysis Report</h1>")
	assert.Contains(t, doc, "<h2>Case Nature</h2>")
	assert.Contains(t, doc, "The accused committed theft.<br>")
	assert.Contains(t, doc, "<li>IPC 378 - Theft</li>")
	assert.Contains(t, doc, "<footer>Generated by Legal Document Analyzer</footer>")
}

func TestHTMLOmitsRawMarkup(t *testing.T) {
	r := models.Report{Summary: "<script>alert(1)</script>"}
	doc, err := HTML(r)
	require.NoError(t, err)
	assert.NotContains(t, doc, "<script>")
}

func TestMarkdownEscapesStructuralText(t *testing.T) {
	r := models.Report{
		Summary:     "# Forged heading\n- fake bullet\n1. fake step\n    indented code\n---",
		Punishments: "> quoted",
		Translation: "```\nfence",
		Remedies:    models.FlexLines{"## not a heading", "File\nFIR"},
	}
	out := Markdown(r)

	assert.Contains(t, out, "\\# Forged heading\n\\- fake bullet\n1\\. fake step\nindented code\n\\---")
	assert.Contains(t, out, "\\> quoted")
	assert.Contains(t, out, "- \\## not a heading\n- File FIR\n")

	doc, err := HTML(r)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(doc, "<h1>"))
	assert.NotContains(t, doc, "<h1>Forged heading")
	assert.Contains(t, doc, "# Forged heading")
	assert.NotContains(t, doc, "<li>fake bullet")
	assert.NotContains(t, doc, "<ol>")
	assert.NotContains(t, doc, "<hr>")
	assert.NotContains(t, doc, "<blockquote>")
	assert.NotContains(t, doc, "<pre>")
	assert.Contains(t, doc, "<li>## not a heading</li>")
}

func TestChromiumRenderer(t *testing.T) {
	if detectChromePath() == "" {
		t.Skip("chromium not installed")
	}
	pdf, err := NewChromiumRenderer("", time.Minute).Render(context.Background(), sampleReport())
	require.NoError(t, err)

	pages, err := api.PageCount(bytes.NewReader(pdf), nil)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, pages, 1)
}
