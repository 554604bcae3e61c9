package nvram

import "github.com/nvramkit/nvram/internal/core"

// v3VariableView adapts a *core.Record to the public Variable interface.
type v3VariableView struct {
	r *core.Record
}

func (vv *v3VariableView) Key() []byte    { return vv.r.Key }
func (vv *v3VariableView) Kind() VarKind  { return vv.r.Kind() }
func (vv *v3VariableView) Value() []byte  { return vv.r.Value }
func (vv *v3VariableView) String() string { return vv.r.String() }
