package queries

import (
	"errors"

	"jastip/internal/pkg/errs"
	"jastip/internal/pkg/guard"
)

var ErrGetBatchManifestQueryIsNotConstructed = errors.New(
	"GetBatchManifestQuery must be created via NewGetBatchManifestQuery constructor",
)

// GetBatchManifestQuery renders the shipping manifest for a batch.
type GetBatchManifestQuery struct {
	batchCode string

	guard guard.ConstructorGuard
}

// NewGetBatchManifestQuery creates a manifest query for the given batch code.
func NewGetBatchManifestQuery(batchCode string) (GetBatchManifestQuery, error) {
	if batchCode == "" {
		return GetBatchManifestQuery{}, errs.NewValueIsRequiredError("batchCode")
	}

	return GetBatchManifestQuery{
		batchCode: batchCode,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// BatchCode returns the code of the batch to render.
func (q GetBatchManifestQuery) BatchCode() string {
	return q.batchCode
}

// Validate ensures the query was created through the constructor.
func (q GetBatchManifestQuery) Validate() error {
	return q.guard.Validate(ErrGetBatchManifestQueryIsNotConstructed)
}

// GetBatchManifestQueryResponse carries the rendered manifest file.
type GetBatchManifestQueryResponse struct {
	Filename string
	Content  string
}
