package nvram

import "github.com/nvramkit/nvram/internal/core"

// v3PartitionView adapts a *core.V3Partition to the public Partition
// interface.
type v3PartitionView struct {
	p *core.V3Partition
}

func (v *v3PartitionView) Variables() []Variable {
	recs := v.p.Variables()
	out := make([]Variable, len(recs))
	for i, r := range recs {
		out[i] = &v3VariableView{r: r}
	}
	return out
}

func (v *v3PartitionView) GetVariable(key []byte, kind VarKind) (Variable, bool) {
	r := v.p.GetVariable(key, kind)
	if r == nil {
		return nil, false
	}
	return &v3VariableView{r: r}, true
}

func (v *v3PartitionView) InsertVariable(key, value []byte, kind VarKind) {
	v.p.InsertVariable(key, value, kind)
}

func (v *v3PartitionView) RemoveVariable(key []byte, kind VarKind) {
	v.p.RemoveVariable(key, kind)
}

func (v *v3PartitionView) String() string { return v.p.String() }
