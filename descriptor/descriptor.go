// Package descriptor implements the operation-configuration object every
// high-level kernel in this module consumes: output-replace, mask
// complement/structural, transpose-inputs, multiply-algorithm hint, sort
// flag, and thread hints (spec.md §3 "Descriptor").
package descriptor

import (
	"github.com/katalvlaran/gbmatrix/gbstatus"
)

// OutputMode controls whether a kernel's output is cleared before the
// write-through-mask.
type OutputMode int

const (
	OutputDefault OutputMode = iota
	OutputReplace
)

// MaskMode controls how a mask matrix is interpreted.
type MaskMode int

const (
	MaskDefault MaskMode = iota
	MaskComplement
	MaskStructure
	MaskComplementStructure
)

// TransposeMode controls whether an input is transposed before use.
type TransposeMode int

const (
	TransposeDefault TransposeMode = iota
	TransposeYes
)

// AxBMode hints which matrix-multiply algorithm to use.
type AxBMode int

const (
	AxBDefault AxBMode = iota
	AxBGustavson
	AxBHash
	AxBSaxpy
	AxBDot
)

// Descriptor is a field-to-value mapping over the closed enum spec.md §3
// defines; a zero Descriptor is the all-defaults descriptor.
type Descriptor struct {
	Out         OutputMode
	Mask        MaskMode
	In0         TransposeMode
	In1         TransposeMode
	AxB         AxBMode
	Sort        bool
	NThreadsMax int
	Chunk       int64
}

// New returns a Descriptor with every field at its default value.
func New() *Descriptor { return &Descriptor{} }

// Context is the per-call record carrying thread/chunk hints and error
// location (spec.md §3 "Context"): {nthreads_max, chunk, where_fn_name,
// details_string}. It carries no long-lived state: a fresh Context is
// built per call by Resolve.
type Context struct {
	NThreadsMax int
	Chunk       int64
	WhereFnName string
	Details     string
}

// Resolved is the validated, defaulted view of a Descriptor plus the
// booleans kernels actually branch on (spec.md §4.8: "descriptor_get
// validates a descriptor and returns a set of booleans plus the multiply
// hint plus the sort flag").
type Resolved struct {
	OutputReplace     bool
	MaskComplement    bool
	MaskStructureOnly bool
	TransposeIn0      bool
	TransposeIn1      bool
	AxB               AxBMode
	Sort              bool
	Context           Context
}

// Resolve validates d (nil means all-defaults) and returns the resolved
// view plus a Context carrying d's thread/chunk hints, named for where
// (used in error reporting by callers). Invalid field combinations fail
// with InvalidObject (spec.md §3: "Invalid combinations fail with
// InvalidObject").
func Resolve(d *Descriptor, where string) (*Resolved, error) {
	if d == nil {
		d = New()
	}

	if err := validate(d); err != nil {
		return nil, gbstatus.Newf(gbstatus.InvalidObject, where, "%v", err)
	}

	r := &Resolved{
		OutputReplace:     d.Out == OutputReplace,
		MaskComplement:    d.Mask == MaskComplement || d.Mask == MaskComplementStructure,
		MaskStructureOnly: d.Mask == MaskStructure || d.Mask == MaskComplementStructure,
		TransposeIn0:      d.In0 == TransposeYes,
		TransposeIn1:      d.In1 == TransposeYes,
		AxB:               d.AxB,
		Sort:              d.Sort,
		Context: Context{
			NThreadsMax: d.NThreadsMax,
			Chunk:       d.Chunk,
			WhereFnName: where,
		},
	}

	return r, nil
}

func validate(d *Descriptor) error {
	if d.Out < OutputDefault || d.Out > OutputReplace {
		return gbstatus.Newf(gbstatus.InvalidValue, "descriptor.validate", "out: %d", d.Out)
	}
	if d.Mask < MaskDefault || d.Mask > MaskComplementStructure {
		return gbstatus.Newf(gbstatus.InvalidValue, "descriptor.validate", "mask: %d", d.Mask)
	}
	if d.In0 < TransposeDefault || d.In0 > TransposeYes {
		return gbstatus.Newf(gbstatus.InvalidValue, "descriptor.validate", "in0: %d", d.In0)
	}
	if d.In1 < TransposeDefault || d.In1 > TransposeYes {
		return gbstatus.Newf(gbstatus.InvalidValue, "descriptor.validate", "in1: %d", d.In1)
	}
	if d.AxB < AxBDefault || d.AxB > AxBDot {
		return gbstatus.Newf(gbstatus.InvalidValue, "descriptor.validate", "axb: %d", d.AxB)
	}
	if d.NThreadsMax < 0 {
		return gbstatus.Newf(gbstatus.InvalidValue, "descriptor.validate", "nthreads_max: %d", d.NThreadsMax)
	}
	if d.Chunk < 0 {
		return gbstatus.Newf(gbstatus.InvalidValue, "descriptor.validate", "chunk: %d", d.Chunk)
	}

	return nil
}

// MaskEmptyComplementShortCircuit reports whether a complemented, empty
// mask means ¬M selects every entry unconditionally, letting callers skip
// the inner kernel's per-entry mask test entirely (spec.md §4.3.4: "A
// complemented empty mask short-circuits without running the inner
// kernel"; spec.md §4.8: "Any mask-empty-and-complemented check
// short-circuits at descriptor resolution time").
func (r *Resolved) MaskEmptyComplementShortCircuit(maskNvals int64) bool {
	return r.MaskComplement && maskNvals == 0
}
