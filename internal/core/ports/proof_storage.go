package ports

import (
	"context"
	"io"
)

// ProofStorage uploads proof-of-receipt photos to an object store and
// returns a URL the customer can open.
type ProofStorage interface {
	// Upload stores the payload under a name derived from pathHint and
	// returns its public URL. The hint does not have to be unique; the
	// implementation disambiguates stored names itself.
	Upload(ctx context.Context, pathHint string, payload io.Reader) (string, error)
}
