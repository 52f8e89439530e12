package models

import (
	"fmt"
	"io"
	"strings"
)

// Render writes the list in its human-readable form. The output is assembled first
// and handed to w in a single write.
func Render(w io.StringWriter, list *ModelList) error {
	var out strings.Builder

	out.WriteString("\nAvailable models:\n\n")

	for _, id := range list.IDs() {
		out.WriteString(id)
		out.WriteString("\n")
	}

	fmt.Fprintf(&out, "\nTotal: %d models\n", list.Total)

	_, err := w.WriteString(out.String())

	return err
}
