package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-pro-network/models"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain", in: "Ada Lovelace", want: "Ada Lovelace"},
		{name: "tags", in: "<b>Ada</b> <i>Lovelace</i>", want: "Ada Lovelace"},
		{name: "entities", in: "Tom &amp; Jerry", want: "Tom & Jerry"},
		{name: "ampersand", in: "R&D", want: "R&D"},
		{name: "attributes", in: `<img src=x onerror="alert(1)">Hi`, want: "Hi"},
		{name: "spaces", in: "  padded  ", want: "padded"},
		{name: "color sequence", in: "\x1b[31mAda\x1b[0m", want: "Ada"},
		{name: "title sequence", in: "Ada\x1b]0;pwned\x07", want: "Ada"},
		{name: "control runes", in: "A\x00d\ba\x7f", want: "Ada"},
		{name: "keeps newline and tab", in: "line one\n\tline two", want: "line one\n\tline two"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanText(tt.in))
		})
	}
}

func TestValueOrDash(t *testing.T) {
	assert.Equal(t, "-", valueOrDash(nil))
	assert.Equal(t, "-", valueOrDash(models.StringPtr("   ")))
	assert.Equal(t, "London", valueOrDash(models.StringPtr("London")))
}

func TestDollars(t *testing.T) {
	tests := map[int]string{
		0:       "$0",
		950:     "$950",
		1000:    "$1,000",
		120000:  "$120,000",
		1234567: "$1,234,567",
		-950:    "-$950",
		-150000: "-$150,000",
	}
	for in, want := range tests {
		assert.Equal(t, want, dollars(in), "dollars(%d)", in)
	}
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "hello", fitText("hello", 10))
	assert.Equal(t, "hello", fitText("hello", 0))
	assert.Equal(t, "hello...", fitText("hello world", 8))
	assert.Equal(t, "при...", fitText("привет мир", 6))
	assert.Equal(t, "he", fitText("hello", 2))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0, clamp(3, 0))
	assert.Equal(t, 2, clamp(5, 3))
	assert.Equal(t, 1, clamp(1, 3))
	assert.Equal(t, 0, clamp(-1, 3))
}

func TestRenderTable(t *testing.T) {
	out := renderTable([]string{"Role", "Avg"}, [][]string{
		{"Engineer", "$120,000"},
		{"Designer", "$95,000"},
	}, 1)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Role")
	assert.Contains(t, lines[1], "─┼─")
	assert.True(t, strings.HasPrefix(lines[2], "  Engineer"))
	assert.True(t, strings.HasPrefix(lines[3], "> Designer"))
	assert.Contains(t, lines[3], " │ $95,000")
}

func TestPeriod(t *testing.T) {
	end := "2022-06-30T00:00:00Z"
	assert.Equal(t, "2020-01-15 – present", period("2020-01-15T00:00:00Z", &end, true))
	assert.Equal(t, "2020-01-15 – 2022-06-30", period("2020-01-15", &end, false))
	assert.Equal(t, "2020-01-15 – -", period("2020-01-15", nil, false))
}

func TestRenderProfileCard(t *testing.T) {
	out := renderProfileCard(models.Profile{
		ID:       "p1",
		Name:     "<b>Ada</b>",
		Headline: models.StringPtr("Engineer"),
		About:    models.StringPtr("Writes <i>programs</i>"),
	})

	assert.Contains(t, out, "Ada")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "Engineer")
	assert.Contains(t, out, "Writes programs")
}

func TestRenderPage(t *testing.T) {
	out := renderPage("JOBS", "", "r: reload")

	assert.Contains(t, out, "JOBS")
	assert.Contains(t, out, "  -\n")
	assert.Contains(t, out, "r: reload")
	assert.Contains(t, out, "ctrl+c: quit")
}
