package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/texcache/internal/app"
	"go.trai.ch/texcache/internal/core/domain"
	"go.trai.ch/texcache/internal/engine/loader"
)

const (
	iconLoaded   = "✓"
	iconFallback = "~"
	iconFailed   = "✗"
	iconAvatar   = "●"
)

var (
	colorAccent = lipgloss.Color("#8B5CF6")
	colorMuted  = lipgloss.Color("#667085")
	colorGood   = lipgloss.Color("#22A06B")
	colorWarn   = lipgloss.Color("#F59E0B")
	colorBad    = lipgloss.Color("#D93025")

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	goodStyle   = lipgloss.NewStyle().Foreground(colorGood)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarn)
	badStyle    = lipgloss.NewStyle().Foreground(colorBad)
	pathStyle   = lipgloss.NewStyle().Width(24)
)

func renderReport(w io.Writer, result *app.LoadResult, keep bool) error {
	var b strings.Builder

	for _, r := range result.Avatars {
		renderAvatar(&b, r)
	}

	s := result.Loaded
	b.WriteString(headerStyle.Render("cache"))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf(
		"%d textures · %d owners · %d aliases · %s · hits %d · misses %d · failures %d · reuse %s",
		s.Textures, s.Owners, s.Aliases, formatBytes(s.PixelBytes),
		s.Hits, s.Misses, s.DecodeFailures, reuseRatio(s),
	)))
	b.WriteString("\n")

	if keep {
		b.WriteString(fmt.Sprintf("kept %d avatars loaded\n", len(result.Avatars)))
	} else {
		b.WriteString(fmt.Sprintf("unloaded %d avatars, swept %d textures, %d remain\n",
			len(result.Avatars), result.Evicted, result.Final.Textures))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func renderAvatar(b *strings.Builder, r *loader.Report) {
	b.WriteString(headerStyle.Render(iconAvatar + " " + r.Avatar))
	b.WriteString(" ")
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d/%d textures · %d new links · %d fallbacks · %s",
		r.Loaded(), len(r.Textures), r.NewLinks(), r.Fallbacks(), r.Duration)))
	b.WriteString("\n")

	for _, t := range r.Textures {
		b.WriteString("  ")
		switch {
		case !t.Failed():
			b.WriteString(goodStyle.Render(iconLoaded))
			b.WriteString(" ")
			b.WriteString(pathStyle.Render(t.Path))
			b.WriteString(mutedStyle.Render(fmt.Sprintf("%s %s", shortKey(t.Key), t.Texture.Info)))
		case t.Fallback != nil:
			b.WriteString(warnStyle.Render(iconFallback))
			b.WriteString(" ")
			b.WriteString(pathStyle.Render(t.Path))
			b.WriteString(warnStyle.Render("fallback texture (" + t.Format + ")"))
		default:
			b.WriteString(badStyle.Render(iconFailed))
			b.WriteString(" ")
			b.WriteString(pathStyle.Render(t.Path))
			b.WriteString(badStyle.Render("failed (" + t.Format + ")"))
		}
		b.WriteString("\n")
	}
}

// shortKey trims the digest so a key fits on one report line.
func shortKey(k domain.ContentKey) string {
	const digestPrefix = 12
	s := k.String()
	i := strings.LastIndexByte(s, '|')
	if i < 0 || len(s)-i-1 <= digestPrefix {
		return s
	}
	return s[:i+1+digestPrefix]
}

func reuseRatio(s domain.CacheStats) string {
	total := s.Hits + s.Misses
	if total == 0 {
		return "n/a"
	}
	return fmt.Sprintf("%.0f%%", float64(s.Hits)*100/float64(total))
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
