package constants

// EngineVersion tags every processing run with the extraction logic that
// produced it. Bump whenever extraction or reconciliation semantics change.
const EngineVersion = "v3.2"

// UnknownReference is recorded as the external reference when no invoice
// number could be extracted from the document.
const UnknownReference = "UNKNOWN"

// DefaultCurrency is the currency code stamped on invoices; totals are not
// converted, suppliers bill in a single currency per deployment.
const DefaultCurrency = "GBP"
