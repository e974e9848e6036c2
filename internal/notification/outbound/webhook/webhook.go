package webhook

import (
	"context"

	"github.com/codegate-id/codegate/internal/pkg/instrument"
	"github.com/codegate-id/codegate/internal/pkg/webhook"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Webhook delivers formatted notifications to chat webhook endpoints.
type Webhook struct {
	client webhook.Client
	ins    instrument.Instrumentation
}

func New(client webhook.Client, ins instrument.Instrumentation) *Webhook {
	return &Webhook{client: client, ins: ins}
}

func (w *Webhook) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return w.ins.Tracer("notification.outbound.webhook").Start(ctx, name)
}

func (w *Webhook) post(ctx context.Context, span trace.Span, url string, payload any) error {
	if err := w.client.Post(ctx, url, payload); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
