package catalog

import (
	"fmt"
	"strings"

	"github.com/sandevgo/modelbench/internal/core"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders the model catalog as markdown for the models://available resource.
type Formatter struct {
	printer *message.Printer
}

func NewFormatter() *Formatter {
	return &Formatter{
		printer: message.NewPrinter(language.English),
	}
}

func (f *Formatter) Title(title string) string {
	return fmt.Sprintf("# %s\n", title)
}

func (f *Formatter) Model(m core.Model) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s (`%s`)\n", m.DisplayName, m.ID))
	sb.WriteString(fmt.Sprintf("- Publisher: %s\n", m.Publisher))
	sb.WriteString(f.printer.Sprintf("- Context Window: %d tokens\n", m.ContextWindow))
	sb.WriteString(fmt.Sprintf("- Summary: %s\n", m.Summary))
	return sb.String()
}

func (f *Formatter) Markdown(models []core.Model) string {
	sections := make([]string, 0, len(models)+1)
	sections = append(sections, f.Title("Available Models"))
	for _, m := range models {
		sections = append(sections, f.Model(m))
	}
	return strings.Join(sections, "\n")
}
