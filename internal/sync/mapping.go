package sync

import (
	"github.com/cabaworks/axsync/internal/axonaut"
	"github.com/cabaworks/axsync/internal/notion"
)

// Property names as configured in the target Notion databases. The two
// Axonaut id columns are the reconciliation keys.
const (
	propInvoiceNumber    = "Numéro"
	propAxonautInvoiceID = "ID Facture Axonaut"
	propAmountTTC        = "Montant TTC"
	propAmountHT         = "Montant HT"
	propInvoiceDate      = "Date Facture"
	propDueDate          = "Date Échéance"
	propStatus           = "Statut"
	propClientReference  = "Référence Client"

	propPaymentReference = "Référence"
	propAxonautPaymentID = "ID Paiement Axonaut"
	propAmount           = "Montant"
	propPaymentDate      = "Date Paiement"
	propMethod           = "Méthode"
)

func invoiceProperties(inv *axonaut.Invoice) notion.Properties {
	status := inv.Status
	if status == "" {
		status = "Inconnu"
	}

	return notion.Properties{
		propInvoiceNumber:    notion.Title(inv.Number),
		propAxonautInvoiceID: notion.Number(float64(inv.ID)),
		propAmountTTC:        notion.Number(inv.AmountTTC.InexactFloat64()),
		propAmountHT:         notion.Number(inv.AmountHT.InexactFloat64()),
		propInvoiceDate:      notion.Date(inv.Date),
		propDueDate:          notion.Date(inv.DueDate),
		propStatus:           notion.Select(status),
		propClientReference:  notion.RichText(inv.ClientReference),
	}
}

func paymentProperties(p *axonaut.Payment) notion.Properties {
	nature := p.Nature
	if nature == "" {
		nature = "Autre"
	}

	return notion.Properties{
		propPaymentReference: notion.Title(p.Reference),
		propAxonautPaymentID: notion.Number(float64(p.ID)),
		propAxonautInvoiceID: notion.Number(float64(p.InvoiceID)),
		propAmount:           notion.Number(p.Amount.InexactFloat64()),
		propPaymentDate:      notion.Date(p.Date),
		propMethod:           notion.Select(nature),
	}
}
