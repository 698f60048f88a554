package corpus

import (
	"github.com/syssam/solgen/compiler/gen"
)

// FromSource returns the record of a generated source written by run.
func FromSource(run string, src *gen.GeneratedSource) (Record, error) {
	doc, err := gen.MarshalOptions(src.Options)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:          src.ID,
		Run:         run,
		Kind:        string(src.Options.Kind()),
		Name:        src.Contract.Name,
		Upgradeable: src.Contract.Upgradeable,
		Footprint:   src.Contract.Footprint(),
		Options:     string(doc),
		Source:      src.Source,
	}, nil
}
