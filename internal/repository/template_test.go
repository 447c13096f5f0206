package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/opsfin/invoice-engine/internal/common"
	"github.com/opsfin/invoice-engine/internal/entity"
	"github.com/opsfin/invoice-engine/internal/rules"
)

func validRules() rules.Bundle {
	return rules.Bundle{
		Check:         `acme`,
		InvoiceNumber: `Invoice No:\s*(\S+)`,
		Total:         `Total Due:\s*([0-9.]+)`,
		LinePattern:   `(?m)^\s+(.{1,40}?)\s+(\d+) x ([0-9.]+)$`,
	}
}

func createSupplier(t *testing.T, repo SupplierRepository, name string) *entity.Supplier {
	t.Helper()
	sup, err := repo.Create(context.Background(), &CreateSupplierRequest{Name: name})
	if err != nil {
		t.Fatalf("create supplier %s: %v", name, err)
	}
	return sup
}

func TestCreateTemplateStartsInactive(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	logger := testLogger()

	sup := createSupplier(t, NewSupplierRepository(client, logger), "ACME Ltd")
	templates := NewTemplateRepository(client, logger)

	tpl, err := templates.Create(ctx, &CreateTemplateRequest{
		SupplierID: sup.ID,
		Version:    1,
		Rules:      validRules(),
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tpl.Active {
		t.Error("new template must start as an inactive draft")
	}
	if tpl.ApprovedAt != nil || tpl.ApprovedBy != nil {
		t.Error("new template must not carry approval metadata")
	}
}

func TestCreateTemplateRejectsIncompleteRules(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	logger := testLogger()

	sup := createSupplier(t, NewSupplierRepository(client, logger), "ACME Ltd")
	templates := NewTemplateRepository(client, logger)

	broken := validRules()
	broken.Total = ""
	_, err := templates.Create(ctx, &CreateTemplateRequest{
		SupplierID: sup.ID,
		Version:    1,
		Rules:      broken,
	})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}

	broken = validRules()
	broken.InvoiceNumber = `Invoice No \S+` // no capture group
	_, err = templates.Create(ctx, &CreateTemplateRequest{
		SupplierID: sup.ID,
		Version:    2,
		Rules:      broken,
	})
	if !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestApproveSupersedesActiveTemplate(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	logger := testLogger()

	sup := createSupplier(t, NewSupplierRepository(client, logger), "ACME Ltd")
	templates := NewTemplateRepository(client, logger)

	v1, err := templates.Create(ctx, &CreateTemplateRequest{SupplierID: sup.ID, Version: 1, Rules: validRules()})
	if err != nil {
		t.Fatalf("create v1: %v", err)
	}
	v2, err := templates.Create(ctx, &CreateTemplateRequest{SupplierID: sup.ID, Version: 2, Rules: validRules()})
	if err != nil {
		t.Fatalf("create v2: %v", err)
	}

	if _, err := templates.Approve(ctx, v1.ID, "alex"); err != nil {
		t.Fatalf("approve v1: %v", err)
	}
	approved, err := templates.Approve(ctx, v2.ID, "sam")
	if err != nil {
		t.Fatalf("approve v2: %v", err)
	}
	if !approved.Active {
		t.Error("approved template must be active")
	}
	if approved.ApprovedBy == nil || *approved.ApprovedBy != "sam" {
		t.Errorf("approved_by = %v", approved.ApprovedBy)
	}

	// exactly one active template per supplier
	all, err := templates.ListBySupplier(ctx, sup.ID)
	if err != nil {
		t.Fatalf("ListBySupplier: %v", err)
	}
	active := 0
	for _, tpl := range all {
		if tpl.Active {
			active++
			if tpl.ID != v2.ID {
				t.Errorf("active template is %s, want v2", tpl.ID)
			}
		}
	}
	if active != 1 {
		t.Errorf("active templates = %d, want 1", active)
	}
}

func TestApproveRejectsReApproval(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	logger := testLogger()

	sup := createSupplier(t, NewSupplierRepository(client, logger), "ACME Ltd")
	templates := NewTemplateRepository(client, logger)

	tpl, err := templates.Create(ctx, &CreateTemplateRequest{SupplierID: sup.ID, Version: 1, Rules: validRules()})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := templates.Approve(ctx, tpl.ID, "alex"); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if _, err := templates.Approve(ctx, tpl.ID, "sam"); !errors.Is(err, common.ErrInvalidInput) {
		t.Fatalf("second approve err = %v, want ErrInvalidInput", err)
	}
}

func TestListActiveCandidatesOrderAndFilter(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	logger := testLogger()

	suppliers := NewSupplierRepository(client, logger)
	templates := NewTemplateRepository(client, logger)

	first := createSupplier(t, suppliers, "First Ltd")
	second := createSupplier(t, suppliers, "Second Ltd")
	third := createSupplier(t, suppliers, "Drafts Only Ltd")

	for _, sup := range []*entity.Supplier{first, second, third} {
		tpl, err := templates.Create(ctx, &CreateTemplateRequest{SupplierID: sup.ID, Version: 1, Rules: validRules()})
		if err != nil {
			t.Fatalf("create template: %v", err)
		}
		if sup.ID != third.ID {
			if _, err := templates.Approve(ctx, tpl.ID, "alex"); err != nil {
				t.Fatalf("approve: %v", err)
			}
		}
	}

	candidates, err := templates.ListActiveCandidates(ctx)
	if err != nil {
		t.Fatalf("ListActiveCandidates: %v", err)
	}
	if len(candidates) != 2 {
		t.Fatalf("candidates = %d, want 2 (drafts excluded)", len(candidates))
	}
	if candidates[0].Supplier.ID != first.ID || candidates[1].Supplier.ID != second.ID {
		t.Errorf("candidates out of registration order: %s then %s",
			candidates[0].Supplier.Name, candidates[1].Supplier.Name)
	}
	for _, c := range candidates {
		if !c.Template.Active {
			t.Errorf("candidate template for %s is not active", c.Supplier.Name)
		}
	}
}
