package utils

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/opsfin/invoice-engine/constants"
	"github.com/opsfin/invoice-engine/gen/ent"
	invoicespb "github.com/opsfin/invoice-engine/gen/proto/invoices/v1"
	"github.com/opsfin/invoice-engine/internal/entity"
)

func strOrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func timeOrEmpty(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

func moneyOrEmpty(p *float64) string {
	if p == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *p)
}

// ParseYMD parses a date-only string at midnight UTC to match DATE semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func ToSupplier(e *ent.Supplier) *entity.Supplier {
	return &entity.Supplier{
		ID:          e.ID,
		Name:        e.Name,
		TaxNumber:   e.TaxNumber,
		CountryCode: e.CountryCode,
		CreatedAt:   e.CreatedAt,
	}
}

func ToTemplate(e *ent.SupplierTemplate) *entity.SupplierTemplate {
	return &entity.SupplierTemplate{
		ID:         e.ID,
		SupplierID: e.SupplierID,
		Version:    e.Version,
		Rules:      e.Rules,
		Active:     e.Active,
		ApprovedBy: e.ApprovedBy,
		ApprovedAt: e.ApprovedAt,
		CreatedAt:  e.CreatedAt,
	}
}

func ToInvoice(e *ent.Invoice) *entity.Invoice {
	inv := &entity.Invoice{
		ID:                e.ID,
		SupplierID:        e.SupplierID,
		ExternalReference: e.ExternalReference,
		InvoiceDate:       e.InvoiceDate,
		TotalNet:          e.TotalNet,
		TotalTax:          e.TotalTax,
		TotalGross:        e.TotalGross,
		CurrencyCode:      e.CurrencyCode,
		CreatedAt:         e.CreatedAt,
	}
	for _, l := range e.Edges.Lines {
		inv.Lines = append(inv.Lines, *ToInvoiceLine(l))
	}
	return inv
}

func ToInvoiceLine(e *ent.InvoiceLine) *entity.InvoiceLine {
	return &entity.InvoiceLine{
		ID:          e.ID,
		InvoiceID:   e.InvoiceID,
		Description: e.Description,
		Quantity:    e.Quantity,
		UnitPrice:   e.UnitPrice,
		LineTotal:   e.LineTotal,
	}
}

func ToProcessingRun(e *ent.ProcessingRun) *entity.ProcessingRun {
	return &entity.ProcessingRun{
		ID:            e.ID,
		InvoiceID:     e.InvoiceID,
		EngineVersion: e.EngineVersion,
		TemplateID:    e.TemplateID,
		Status:        constants.RunStatus(e.Status),
		Notes:         e.Notes,
		CompletedAt:   e.CompletedAt,
	}
}

func ToPBSupplier(s *entity.Supplier) *invoicespb.Supplier {
	return &invoicespb.Supplier{
		Id:          s.ID.String(),
		Name:        s.Name,
		TaxNumber:   strOrEmpty(s.TaxNumber),
		CountryCode: s.CountryCode,
		CreatedAt:   s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBTemplate(t *entity.SupplierTemplate) *invoicespb.SupplierTemplate {
	rulesJSON, _ := json.Marshal(t.Rules)
	return &invoicespb.SupplierTemplate{
		Id:         t.ID.String(),
		SupplierId: t.SupplierID.String(),
		Version:    int32(t.Version),
		RulesJson:  string(rulesJSON),
		Active:     t.Active,
		ApprovedBy: strOrEmpty(t.ApprovedBy),
		ApprovedAt: timeOrEmpty(t.ApprovedAt),
		CreatedAt:  t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func ToPBInvoice(i *entity.Invoice) *invoicespb.Invoice {
	pb := &invoicespb.Invoice{
		Id:                i.ID.String(),
		SupplierId:        i.SupplierID.String(),
		ExternalReference: i.ExternalReference,
		TotalNet:          moneyOrEmpty(i.TotalNet),
		TotalTax:          moneyOrEmpty(i.TotalTax),
		TotalGross:        moneyOrEmpty(i.TotalGross),
		CurrencyCode:      i.CurrencyCode,
		CreatedAt:         i.CreatedAt.UTC().Format(time.RFC3339),
	}
	if i.InvoiceDate != nil {
		pb.InvoiceDate = i.InvoiceDate.Format("2006-01-02")
	}
	for idx := range i.Lines {
		pb.Lines = append(pb.Lines, ToPBInvoiceLine(&i.Lines[idx]))
	}
	return pb
}

func ToPBInvoiceLine(l *entity.InvoiceLine) *invoicespb.InvoiceLine {
	return &invoicespb.InvoiceLine{
		Id:          l.ID.String(),
		Description: l.Description,
		Quantity:    fmt.Sprintf("%.2f", l.Quantity),
		UnitPrice:   fmt.Sprintf("%.2f", l.UnitPrice),
		LineTotal:   fmt.Sprintf("%.2f", l.LineTotal),
	}
}

func ToPBProcessingRun(r *entity.ProcessingRun) *invoicespb.ProcessingRun {
	pb := &invoicespb.ProcessingRun{
		Id:            r.ID.String(),
		InvoiceId:     r.InvoiceID.String(),
		EngineVersion: r.EngineVersion,
		Status:        string(r.Status),
		Notes:         r.Notes,
		CompletedAt:   r.CompletedAt.UTC().Format(time.RFC3339),
	}
	if r.TemplateID != nil {
		pb.TemplateId = r.TemplateID.String()
	}
	return pb
}
