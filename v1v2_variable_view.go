package nvram

import "github.com/nvramkit/nvram/internal/core"

// v1v2VariableView adapts a *core.V1V2Variable to the public Variable
// interface.
type v1v2VariableView struct {
	v *core.V1V2Variable
}

func (vv *v1v2VariableView) Key() []byte    { return vv.v.Key }
func (vv *v1v2VariableView) Kind() VarKind  { return vv.v.Kind }
func (vv *v1v2VariableView) Value() []byte  { return vv.v.Value() }
func (vv *v1v2VariableView) String() string { return vv.v.String() }
