// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/opsfin/invoice-engine/db/ent/schema"
	"github.com/opsfin/invoice-engine/gen/ent/invoice"
	"github.com/opsfin/invoice-engine/gen/ent/invoiceline"
	"github.com/opsfin/invoice-engine/gen/ent/processingrun"
	"github.com/opsfin/invoice-engine/gen/ent/supplier"
	"github.com/opsfin/invoice-engine/gen/ent/suppliertemplate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescExternalReference is the schema descriptor for external_reference field.
	invoiceDescExternalReference := invoiceFields[2].Descriptor()
	// invoice.ExternalReferenceValidator is a validator for the "external_reference" field. It is called by the builders before save.
	invoice.ExternalReferenceValidator = invoiceDescExternalReference.Validators[0].(func(string) error)
	// invoiceDescCurrencyCode is the schema descriptor for currency_code field.
	invoiceDescCurrencyCode := invoiceFields[7].Descriptor()
	// invoice.DefaultCurrencyCode holds the default value on creation for the currency_code field.
	invoice.DefaultCurrencyCode = invoiceDescCurrencyCode.Default.(string)
	// invoice.CurrencyCodeValidator is a validator for the "currency_code" field. It is called by the builders before save.
	invoice.CurrencyCodeValidator = func() func(string) error {
		validators := invoiceDescCurrencyCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(currency_code string) error {
			for _, fn := range fns {
				if err := fn(currency_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[8].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	invoicelineFields := schema.InvoiceLine{}.Fields()
	_ = invoicelineFields
	// invoicelineDescID is the schema descriptor for id field.
	invoicelineDescID := invoicelineFields[0].Descriptor()
	// invoiceline.DefaultID holds the default value on creation for the id field.
	invoiceline.DefaultID = invoicelineDescID.Default.(func() uuid.UUID)
	processingrunFields := schema.ProcessingRun{}.Fields()
	_ = processingrunFields
	// processingrunDescEngineVersion is the schema descriptor for engine_version field.
	processingrunDescEngineVersion := processingrunFields[2].Descriptor()
	// processingrun.EngineVersionValidator is a validator for the "engine_version" field. It is called by the builders before save.
	processingrun.EngineVersionValidator = processingrunDescEngineVersion.Validators[0].(func(string) error)
	// processingrunDescStatus is the schema descriptor for status field.
	processingrunDescStatus := processingrunFields[4].Descriptor()
	// processingrun.StatusValidator is a validator for the "status" field. It is called by the builders before save.
	processingrun.StatusValidator = func() func(string) error {
		validators := processingrunDescStatus.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(status string) error {
			for _, fn := range fns {
				if err := fn(status); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// processingrunDescCompletedAt is the schema descriptor for completed_at field.
	processingrunDescCompletedAt := processingrunFields[6].Descriptor()
	// processingrun.DefaultCompletedAt holds the default value on creation for the completed_at field.
	processingrun.DefaultCompletedAt = processingrunDescCompletedAt.Default.(func() time.Time)
	// processingrunDescID is the schema descriptor for id field.
	processingrunDescID := processingrunFields[0].Descriptor()
	// processingrun.DefaultID holds the default value on creation for the id field.
	processingrun.DefaultID = processingrunDescID.Default.(func() uuid.UUID)
	supplierFields := schema.Supplier{}.Fields()
	_ = supplierFields
	// supplierDescName is the schema descriptor for name field.
	supplierDescName := supplierFields[1].Descriptor()
	// supplier.NameValidator is a validator for the "name" field. It is called by the builders before save.
	supplier.NameValidator = supplierDescName.Validators[0].(func(string) error)
	// supplierDescCountryCode is the schema descriptor for country_code field.
	supplierDescCountryCode := supplierFields[3].Descriptor()
	// supplier.DefaultCountryCode holds the default value on creation for the country_code field.
	supplier.DefaultCountryCode = supplierDescCountryCode.Default.(string)
	// supplier.CountryCodeValidator is a validator for the "country_code" field. It is called by the builders before save.
	supplier.CountryCodeValidator = func() func(string) error {
		validators := supplierDescCountryCode.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
			validators[2].(func(string) error),
		}
		return func(country_code string) error {
			for _, fn := range fns {
				if err := fn(country_code); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// supplierDescCreatedAt is the schema descriptor for created_at field.
	supplierDescCreatedAt := supplierFields[4].Descriptor()
	// supplier.DefaultCreatedAt holds the default value on creation for the created_at field.
	supplier.DefaultCreatedAt = supplierDescCreatedAt.Default.(func() time.Time)
	// supplierDescID is the schema descriptor for id field.
	supplierDescID := supplierFields[0].Descriptor()
	// supplier.DefaultID holds the default value on creation for the id field.
	supplier.DefaultID = supplierDescID.Default.(func() uuid.UUID)
	suppliertemplateFields := schema.SupplierTemplate{}.Fields()
	_ = suppliertemplateFields
	// suppliertemplateDescVersion is the schema descriptor for version field.
	suppliertemplateDescVersion := suppliertemplateFields[2].Descriptor()
	// suppliertemplate.VersionValidator is a validator for the "version" field. It is called by the builders before save.
	suppliertemplate.VersionValidator = suppliertemplateDescVersion.Validators[0].(func(int) error)
	// suppliertemplateDescActive is the schema descriptor for active field.
	suppliertemplateDescActive := suppliertemplateFields[4].Descriptor()
	// suppliertemplate.DefaultActive holds the default value on creation for the active field.
	suppliertemplate.DefaultActive = suppliertemplateDescActive.Default.(bool)
	// suppliertemplateDescCreatedAt is the schema descriptor for created_at field.
	suppliertemplateDescCreatedAt := suppliertemplateFields[7].Descriptor()
	// suppliertemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	suppliertemplate.DefaultCreatedAt = suppliertemplateDescCreatedAt.Default.(func() time.Time)
	// suppliertemplateDescID is the schema descriptor for id field.
	suppliertemplateDescID := suppliertemplateFields[0].Descriptor()
	// suppliertemplate.DefaultID holds the default value on creation for the id field.
	suppliertemplate.DefaultID = suppliertemplateDescID.Default.(func() uuid.UUID)
}
