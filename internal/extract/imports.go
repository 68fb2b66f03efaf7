package extract

import "github.com/dusk-indust/archpy/internal/pyast"

// importEntities reports "import a, b as c" as one entity per module.
func importEntities(s *pyast.Import) []ImportEntity {
	out := make([]ImportEntity, 0, len(s.Names))
	for _, alias := range s.Names {
		out = append(out, ImportEntity{
			Source: alias.Name,
			Names:  []string{alias.Bound()},
		})
	}
	return out
}

func importFromEntity(s *pyast.ImportFrom) ImportEntity {
	names := make([]string, 0, len(s.Names))
	for _, alias := range s.Names {
		names = append(names, alias.Bound())
	}
	return ImportEntity{
		Source:     s.Module,
		Names:      names,
		IsRelative: s.Level > 0,
		Level:      s.Level,
	}
}
