// Package table renders the transition model as a printable markdown table.
package table

import (
	"fmt"
	"strings"

	"github.com/aretw0/dicetale/pkg/domain"
)

// endLabel is how the END marker reads on the printed handout.
const endLabel = "END SENTENCE"

// Render produces the markdown transition table for the whole model,
// one section per word in first-seen corpus order. This is the layout the
// classroom handout is generated from.
func Render(model *domain.Model, warnings []domain.Warning) string {
	var sb strings.Builder

	sb.WriteString("# Dice Story Table\n\n")

	starts := model.StartWords()
	if len(starts) > 0 {
		labels := make([]string, 0, len(starts))
		for _, s := range starts {
			labels = append(labels, fmt.Sprintf("**%s**", s))
		}
		sb.WriteString(fmt.Sprintf("Start your story with one of: %s\n\n", strings.Join(labels, ", ")))
	}

	for _, row := range model.Export() {
		sb.WriteString(RenderWord(row))
		sb.WriteString("\n")
	}

	if len(warnings) > 0 {
		sb.WriteString("## Notes for the corpus author\n\n")
		for _, w := range warnings {
			sb.WriteString(fmt.Sprintf("- %s\n", w))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderWord renders a single word's section of the table.
// Single-choice transitions are surfaced explicitly, since students should
// see when a word is deterministic.
func RenderWord(row domain.WordTransitions) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## If current word is \"%s\"\n\n", row.Word))

	if len(row.Entries) == 1 {
		sb.WriteString(fmt.Sprintf("Only one choice: any roll gives *%s*.\n\n", label(row.Entries[0].Next)))
	}

	sb.WriteString("| Roll | Next word | Seen |\n")
	sb.WriteString("|------|-----------|------|\n")
	for _, e := range row.Entries {
		sb.WriteString(fmt.Sprintf("| %s | %s | %d |\n", e.Faces, label(e.Next), e.Count))
	}

	return sb.String()
}

func label(t domain.Token) string {
	if t.IsEnd() {
		return endLabel
	}
	return string(t)
}
