package api

import (
	"hireflow/internal/infra"
)

// Read-side lookups surface repository kinds rather than usecase sentinels.
func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
