// Package graph exports the transition model as a Mermaid diagram.
package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/dicetale/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart syntax string from the model.
// It applies semantic styling:
// - Start words: ((Circle))
// - Ordinary words: [Rectangle]
// - END: {{Hexagon}}
// Edges are labeled with the face range that triggers them.
func GenerateMermaid(model *domain.Model) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	startSet := make(map[domain.Token]bool)
	for _, s := range model.StartWords() {
		startSet[s] = true
	}

	endID := "END_SENTENCE"
	sb.WriteString(fmt.Sprintf("    %s{{\"END\"}}\n", endID))

	for _, row := range model.Export() {
		safeID := sanitizeMermaidID(string(row.Word))

		opener, closer := "[", "]"
		if startSet[row.Word] {
			opener, closer = "((", "))" // Circle
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", safeID, opener, row.Word, closer))

		for _, e := range row.Entries {
			target := endID
			if !e.Next.IsEnd() {
				target = sanitizeMermaidID(string(e.Next))
			}
			arrow := fmt.Sprintf("-- \"%s\" -->", e.Faces)
			sb.WriteString(fmt.Sprintf("    %s %s %s\n", safeID, arrow, target))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
