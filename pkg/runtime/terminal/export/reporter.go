package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/de-tools/vmwatch/pkg/models/domain"
)

type TableConfig struct {
	TextWidth   int
	StatusWidth int
	DetailWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{
		TextWidth:   52,
		StatusWidth: 10,
		DetailWidth: 44,
	}
}

type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (c *Reporter) Handle(report *domain.RunReport) error {
	funcMap := template.FuncMap{
		"formatRow": func(text, status, detail string) string {
			return fmt.Sprintf("| %-*s | %-*s | %-*s |",
				c.config.TextWidth, text,
				c.config.StatusWidth, status,
				c.config.DetailWidth, detail)
		},
		"separator": func() string {
			return fmt.Sprintf("+%s+%s+%s+",
				strings.Repeat("-", c.config.TextWidth+2),
				strings.Repeat("-", c.config.StatusWidth+2),
				strings.Repeat("-", c.config.DetailWidth+2))
		},
		"status": func(res domain.DeliveryResult) string {
			if res.Delivered() {
				return "delivered"
			}
			return "failed"
		},
		"detail": func(res domain.DeliveryResult) string {
			if res.Err == nil {
				return ""
			}
			return res.Err.Error()
		},
	}

	tmpl := `
{{.Source}} VM audit ({{.Elapsed}})

Deployments: {{.Records}}
Total active VMs: {{.TotalActive}}

{{separator}}
{{formatRow "Message" "Status" "Detail"}}
{{separator}}
{{range .Results}}{{formatRow .Text (status .) (detail .)}}
{{end}}{{separator}}
`

	t, err := template.New("report").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(c.writer, report)
}
