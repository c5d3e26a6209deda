package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/de-tools/vmwatch/pkg/models/domain"
	"github.com/de-tools/vmwatch/pkg/services/inventory"
	"github.com/de-tools/vmwatch/pkg/services/notify"
	"github.com/de-tools/vmwatch/pkg/services/secrets"
	"github.com/rs/zerolog"
)

// Job runs one audit pass: resolve credentials, fetch the inventory,
// aggregate counts and deliver the results to the configured channel.
type Job struct {
	resolver secrets.Resolver
	fetcher  inventory.Fetcher
	notifier notify.Factory
	channel  string
	source   string
}

func NewJob(
	resolver secrets.Resolver,
	fetcher inventory.Fetcher,
	notifier notify.Factory,
	cfg *domain.Config,
) *Job {
	return &Job{
		resolver: resolver,
		fetcher:  fetcher,
		notifier: notifier,
		channel:  cfg.Channel,
		source:   cfg.SourceName,
	}
}

// Run executes the pipeline once. Credential and inventory failures abort
// the run; delivery failures are logged per message and do not.
func (j *Job) Run(ctx context.Context) (domain.RunReport, error) {
	logger := zerolog.Ctx(ctx)
	started := time.Now()

	creds, err := j.resolver.Resolve(ctx)
	if err != nil {
		return domain.RunReport{}, fmt.Errorf("resolve credentials: %w", err)
	}

	records, err := j.fetcher.Fetch(ctx, creds)
	if err != nil {
		return domain.RunReport{}, fmt.Errorf("fetch inventory: %w", err)
	}

	result := Aggregate(records)

	messages := make([]string, 0, len(result.Messages)+1)
	messages = append(messages, result.Messages...)
	messages = append(messages, fmt.Sprintf("%s total active VMs: %d", j.source, result.TotalActive))

	report := domain.RunReport{
		Source:      j.source,
		Records:     len(records),
		TotalActive: result.TotalActive,
		Attempted:   len(messages),
	}

	report.Results = j.notifier(creds.WebhookURL).Notify(ctx, j.channel, messages)
	for _, res := range report.Results {
		if res.Delivered() {
			report.Delivered++
			continue
		}
		report.Failed++
		logger.Warn().Err(res.Err).Str("text", res.Text).Msg("webhook delivery failed")
	}

	report.Elapsed = time.Since(started)
	logger.Info().
		Str("source", j.source).
		Int("records", report.Records).
		Int("total_active", report.TotalActive).
		Int("delivered", report.Delivered).
		Int("failed", report.Failed).
		Msg("audit run complete")

	return report, nil
}
