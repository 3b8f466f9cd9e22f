package render

import (
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

// UnifiedDiff creates a unified diff between two texts with 3 lines of
// context. It returns "" when they are equal.
func UnifiedDiff(oldName, newName, original, modified string) (string, error) {
	edits := udiff.Strings(original, modified)
	if len(edits) == 0 {
		return "", nil
	}
	return udiff.ToUnified("a/"+oldName, "b/"+newName, original, edits, 3)
}

// ColorDiff colors added and removed lines of a unified diff.
func ColorDiff(unified string) string {
	lines := strings.Split(unified, "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			lines[i] = TitleStyle.Render(line)
		case strings.HasPrefix(line, "@@"):
			lines[i] = DimStyle.Render(line)
		case strings.HasPrefix(line, "+"):
			lines[i] = AddedStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = RemovedStyle.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}
