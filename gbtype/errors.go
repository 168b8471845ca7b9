package gbtype

import "github.com/katalvlaran/gbmatrix/gbstatus"

// Sentinel errors for this package, expressed as gbstatus codes so callers
// can branch with errors.Is against either the gbtype alias or the
// underlying gbstatus.Code (spec.md §7: "errors are values").
var (
	ErrInvalidValue   = gbstatus.ErrInvalidValue
	ErrDomainMismatch = gbstatus.ErrDomainMismatch
)
