package sync

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/cabaworks/axsync/internal/axonaut"
	"github.com/cabaworks/axsync/internal/notion"
)

//go:generate mockgen -source=service.go -destination=service_mock.go -package=sync

// Source lists records from the accounting API.
type Source interface {
	ListInvoices(ctx context.Context, limit int) ([]axonaut.Invoice, error)
	ListPayments(ctx context.Context, invoiceID *int) ([]axonaut.Payment, error)
}

// Store searches and mutates the target Notion databases.
type Store interface {
	Search(ctx context.Context, databaseID string, filter notion.Filter) ([]notion.Page, error)
	CreatePage(ctx context.Context, databaseID string, props notion.Properties) (*notion.Page, error)
	UpdatePage(ctx context.Context, pageID uuid.UUID, props notion.Properties) (*notion.Page, error)
}

type Options struct {
	InvoicesDBID string
	PaymentsDBID string
	DryRun       bool
	InvoiceLimit int
}

// Service reconciles Axonaut records into Notion: each record is matched by
// its Axonaut id and updated, or created when no match exists.
type Service struct {
	source Source
	store  Store
	opts   Options
}

func NewService(source Source, store Store, opts Options) *Service {
	return &Service{
		source: source,
		store:  store,
		opts:   opts,
	}
}

// Report aggregates the per-record outcomes of one run.
type Report struct {
	InvoicesSynced int
	InvoicesFailed int
	PaymentsSynced int
	PaymentsFailed int

	InvoiceFetchFailed bool
	PaymentFetchFailed bool
}

// Failed reports whether any record failed to sync. Fetch failures are
// surfaced on the report but excluded here: an unreachable source yields
// zero records, not a failed run.
func (r Report) Failed() bool {
	return r.InvoicesFailed > 0 || r.PaymentsFailed > 0
}

// Run fetches all recent invoices and payments and reconciles each one.
// Per-record errors never abort the remaining records.
func (s *Service) Run(ctx context.Context) Report {
	var report Report

	slog.Info("fetching invoices from Axonaut")

	invoices, err := s.source.ListInvoices(ctx, s.opts.InvoiceLimit)
	if err != nil {
		slog.Error("fetching invoices failed, continuing with none", "error", err)
		report.InvoiceFetchFailed = true
	}

	slog.Info("invoices fetched", "count", len(invoices))

	for i := range invoices {
		if s.syncInvoice(ctx, &invoices[i]) {
			report.InvoicesSynced++
		} else {
			report.InvoicesFailed++
		}
	}

	slog.Info("fetching payments from Axonaut")

	payments, err := s.source.ListPayments(ctx, nil)
	if err != nil {
		slog.Error("fetching payments failed, continuing with none", "error", err)
		report.PaymentFetchFailed = true
	}

	slog.Info("payments fetched", "count", len(payments))

	for i := range payments {
		if s.syncPayment(ctx, &payments[i]) {
			report.PaymentsSynced++
		} else {
			report.PaymentsFailed++
		}
	}

	return report
}

func (s *Service) syncInvoice(ctx context.Context, inv *axonaut.Invoice) bool {
	slog.Info("syncing invoice", "number", inv.Number, "id", inv.ID)

	if s.opts.DryRun {
		slog.Info("dry run: invoice would be synced", "number", inv.Number)
		return true
	}

	return s.upsert(ctx, s.opts.InvoicesDBID, upsertParams{
		matchProperty: propAxonautInvoiceID,
		matchID:       inv.ID,
		props:         invoiceProperties(inv),
		kind:          "invoice",
		label:         inv.Number,
	})
}

func (s *Service) syncPayment(ctx context.Context, p *axonaut.Payment) bool {
	slog.Info("syncing payment", "reference", p.Reference, "id", p.ID)

	if s.opts.DryRun {
		slog.Info("dry run: payment would be synced", "reference", p.Reference)
		return true
	}

	return s.upsert(ctx, s.opts.PaymentsDBID, upsertParams{
		matchProperty: propAxonautPaymentID,
		matchID:       p.ID,
		props:         paymentProperties(p),
		kind:          "payment",
		label:         p.Reference,
	})
}

type upsertParams struct {
	matchProperty string
	matchID       int
	props         notion.Properties
	kind          string
	label         string
}

// upsert searches the database for the Axonaut id and updates the first
// match, or creates a new page when there is none. At most one page should
// exist per id; this search-before-create is the only thing enforcing that,
// so two simultaneous runs can still race and duplicate.
func (s *Service) upsert(ctx context.Context, databaseID string, params upsertParams) bool {
	matches, err := s.store.Search(ctx, databaseID, notion.Filter{
		Property: params.matchProperty,
		Equals:   params.matchID,
	})
	if err != nil {
		slog.Error("search failed", "kind", params.kind, "label", params.label, "error", err)
		return false
	}

	if len(matches) > 0 {
		// First match wins; extra matches are duplicates from earlier races.
		if _, err := s.store.UpdatePage(ctx, matches[0].ID, params.props); err != nil {
			slog.Error("update failed", "kind", params.kind, "label", params.label, "error", err)
			return false
		}

		slog.Info("record updated", "kind", params.kind, "label", params.label)

		return true
	}

	if _, err := s.store.CreatePage(ctx, databaseID, params.props); err != nil {
		slog.Error("create failed", "kind", params.kind, "label", params.label, "error", err)
		return false
	}

	slog.Info("record created", "kind", params.kind, "label", params.label)

	return true
}
