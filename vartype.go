package nvram

import "github.com/nvramkit/nvram/internal/core"

// VarKind distinguishes the "common" and "system" variable namespaces
// every NVRAM format partitions variables into.
type VarKind = core.Kind

// Common and System are the two variable namespaces (spec.md §3).
const (
	Common = core.KindCommon
	System = core.KindSystem
)
