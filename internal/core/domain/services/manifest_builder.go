package services

import (
	"fmt"
	"strconv"
	"strings"

	"jastip/internal/core/domain/model/batch"
	"jastip/internal/core/domain/model/customer"
	"jastip/internal/core/domain/model/parcel"
	"jastip/internal/pkg/errs"
)

// manifestHeader is the fixed column order shippers and customs agents expect.
const manifestHeader = "resi,customer_code,customer_name,marketplace,weight,billable_weight,rack,bag_id,seal_number,fee"

// utf8BOM lets Excel open the file with the correct encoding.
const utf8BOM = "\ufeff"

// ManifestBuilder is a domain service that renders a shipping batch into a
// CSV manifest document.
//
// Business rules:
//   - Only parcels assigned to the batch appear on the manifest.
//   - Rows preserve the order of the input slice, so two calls over the same
//     data produce byte-identical output.
//   - A parcel whose customer is missing still ships: its customer columns
//     are left empty rather than failing the whole export.
type ManifestBuilder struct{}

// NewManifestBuilder creates a new ManifestBuilder instance.
func NewManifestBuilder() ManifestBuilder {
	return ManifestBuilder{}
}

// Build renders the manifest CSV for the given batch.
//
// Parameters:
//   - b: the batch being exported (must be valid)
//   - parcels: candidate parcels; only those assigned to b are included
//   - customers: owners of the parcels, matched by ID
//
// Returns the CSV content prefixed with a UTF-8 BOM. Every line, including
// the last row, ends with "\n".
func (m ManifestBuilder) Build(b *batch.Batch, parcels []*parcel.Parcel, customers []*customer.Customer) (string, error) {
	if b == nil {
		return "", errs.NewValueIsRequiredError("batch")
	}

	if err := b.Validate(); err != nil {
		return "", err
	}

	byID := make(map[string]*customer.Customer, len(customers))
	for _, c := range customers {
		if c == nil {
			continue
		}
		byID[c.ID().String()] = c
	}

	var sb strings.Builder
	sb.WriteString(utf8BOM)
	sb.WriteString(manifestHeader)
	sb.WriteString("\n")

	for _, p := range parcels {
		if p == nil || p.BatchCode() != b.Code() {
			continue
		}

		var code, name string
		if owner, ok := byID[p.CustomerID().String()]; ok {
			code = owner.Code()
			name = owner.Name()
		}

		sb.WriteString(strings.Join([]string{
			p.TrackingNumber(),
			code,
			name,
			p.Marketplace(),
			formatWeight(p.Measurements().Weight),
			formatWeight(p.BillableWeight()),
			p.Rack(),
			p.BagID(),
			p.SealNumber(),
			strconv.FormatInt(p.Fee(), 10),
		}, ","))
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// ManifestFilename returns the download name for a batch manifest.
func (m ManifestBuilder) ManifestFilename(b *batch.Batch) string {
	return fmt.Sprintf("%s-manifest.csv", b.Code())
}

// formatWeight renders a weight without trailing zeros, so 1.5 stays "1.5"
// and 2 stays "2". An unset weight renders as an empty cell rather than "0".
func formatWeight(w float64) string {
	if w == 0 {
		return ""
	}
	return strconv.FormatFloat(w, 'f', -1, 64)
}
