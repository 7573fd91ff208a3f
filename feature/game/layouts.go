package game

import (
	"gamedata-manager/core/container"
	"gamedata-manager/core/datacache"
	"gamedata-manager/feature/game/structures"
)

// layouts lists the aggregate recipe of each version. Versions without an
// entry get an empty aggregate.
var layouts = map[Version]layout{
	GG: {
		prepare: []preparation{
			{file: GameText, filter: container.ByExtension(".dat")},
		},
		bindings: []binding{
			bind(KindMoves, MoveStats, nil,
				datacache.PerEntry(structures.ReadMove, structures.WriteMove),
				func(d *Data) **datacache.Cache[[]*structures.Move] { return &d.Moves }),
			bind(KindLearnsets, Learnsets, nil,
				datacache.PerEntry(structures.ReadLearnset, structures.WriteLearnset),
				func(d *Data) **datacache.Cache[[]*structures.Learnset] { return &d.Learnsets }),
			bind(KindPersonal, PersonalStats, container.ByStem("personal_total"),
				datacache.FirstEntry(structures.ReadPersonalTable, structures.WritePersonalTable),
				func(d *Data) **datacache.Cache[*structures.PersonalTable] { return &d.Personal }),
			bind(KindMegaEvolutions, MegaEvolutions, nil,
				datacache.PerEntry(structures.ReadMegaEvolutionSets, structures.WriteMegaEvolutionSets),
				func(d *Data) **datacache.Cache[[][]*structures.MegaEvolutionSet] { return &d.MegaEvolutions }),
			bind(KindEvolutions, Evolutions, nil,
				datacache.PerEntry(structures.ReadEvolutionSet, structures.WriteEvolutionSet),
				func(d *Data) **datacache.Cache[[]*structures.EvolutionSet] { return &d.Evolutions }),
		},
	},
}

func layoutFor(v Version) layout {
	return layouts[v]
}
