package terminal

import (
	"fmt"
	"github.com/de-tools/vmwatch/pkg/models/domain"
	"io"
	"os"
	"text/template"
)

// Reporter outputs run reports to the console in a formatted text form
type Reporter struct {
	writer io.Writer
}

// NewReporter creates a new console reporter
func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{writer: writer}
}

func (c *Reporter) Handle(report *domain.RunReport) error {
	tmpl := `
{{.Source}} VM audit ({{.Elapsed}})
Deployments: {{.Records}}
Total active VMs: {{.TotalActive}}
Notifications: {{.Delivered}}/{{.Attempted}} delivered{{if .Failed}}, {{.Failed}} failed{{end}}
`
	t, err := template.New("report").Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
