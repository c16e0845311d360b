package client

import (
	"bytes"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"owusu1946/portfolio-chat/tools"
	"owusu1946/portfolio-chat/types"
)

var cardTitles = map[tools.Action]string{
	tools.ActionProjects:     "Projects",
	tools.ActionPresentation: "About me",
	tools.ActionResume:       "Resume",
	tools.ActionContact:      "Contact",
	tools.ActionSkills:       "Skills",
	tools.ActionSports:       "Sports",
	tools.ActionCrazy:        "Something crazy",
	tools.ActionInternship:   "Internship search",
}

var markdown = goldmark.New(
	goldmark.WithExtensions(extension.Linkify),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// Format selects the output of Render.
type Format int

const (
	Text Format = iota
	HTML
)

// Render writes an assistant message: at most one tool card, chosen by
// toolName, followed by the free text. Unknown tool names get no card.
func Render(w io.Writer, m types.Message, format Format) error {
	src := toMarkdown(m)
	if format == Text {
		_, err := io.WriteString(w, src)
		return err
	}

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return errors.Wrap(err, "failed to render message")
	}
	_, err := buf.WriteTo(w)
	return err
}

func toMarkdown(m types.Message) string {
	var sb strings.Builder
	if action, ok := tools.Parse(m.ToolName); ok && m.ToolResult != "" {
		sb.WriteString("### ")
		sb.WriteString(cardTitles[action])
		sb.WriteString("\n\n")
		sb.WriteString(m.ToolResult)
		sb.WriteString("\n")
	}
	if content := strings.TrimSpace(m.Content); content != "" {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}
	return sb.String()
}
