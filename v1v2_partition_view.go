package nvram

import "github.com/nvramkit/nvram/internal/core"

// v1v2PartitionView adapts a *core.V1V2Partition to the public Partition
// interface.
type v1v2PartitionView struct {
	p *core.V1V2Partition
}

func (v *v1v2PartitionView) Variables() []Variable {
	vars := v.p.Variables()
	out := make([]Variable, len(vars))
	for i, vv := range vars {
		out[i] = &v1v2VariableView{v: vv}
	}
	return out
}

func (v *v1v2PartitionView) GetVariable(key []byte, kind VarKind) (Variable, bool) {
	vv := v.p.GetVariable(key, kind)
	if vv == nil {
		return nil, false
	}
	return &v1v2VariableView{v: vv}, true
}

func (v *v1v2PartitionView) InsertVariable(key, value []byte, kind VarKind) {
	v.p.InsertVariable(key, value, kind)
}

func (v *v1v2PartitionView) RemoveVariable(key []byte, kind VarKind) {
	v.p.RemoveVariable(key, kind)
}

func (v *v1v2PartitionView) String() string { return v.p.String() }
