// Package iosubmission implements the submission store over pgx.
// This is an impure I/O package; it runs against whatever query
// surface the caller provides, so the ingestion pipeline can hand it
// a transaction and the read paths a pool.
package iosubmission

import (
	"github.com/PinkDiamond1/biohubbc-platform/pkg/biohub"
)

type store struct {
	q biohub.Querier
}

// NewStore creates a submission store bound to a query surface.
func NewStore(q biohub.Querier) biohub.SubmissionStore {
	return &store{q: q}
}
