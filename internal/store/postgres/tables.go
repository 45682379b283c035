package postgres

import (
	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/model"
)

// colKind selects the SQL holder a column scans through and how its
// value is pulled out of the entity. colAmount expands to a value and a
// quantity column, everything else is one column.
type colKind int

const (
	colString colKind = iota
	colFloat
	colInt
	colBool
	colDate
	colRef
	colAmount
)

// column binds one database column to one entity property. For almost
// every column the two share a name; recipe references are the
// exception (property "style", column "style_id").
type column struct {
	name     string
	property string
	kind     colKind
}

// col is the common case: column name equals property name.
func col(name string, kind colKind) column {
	return column{name: name, property: name, kind: kind}
}

// tableSpec describes how one entity type persists: its table, its
// columns, and a blank-entity constructor for scanning. Owned tables
// carry their owner's id and take no part in duplicate detection.
type tableSpec struct {
	table      string
	entityType string
	owned      bool
	blank      func() mapping.Entity
	columns    []column
}

var tables = []tableSpec{
	{
		table:      "fermentables",
		entityType: model.TypeFermentable,
		blank:      func() mapping.Entity { return &model.Fermentable{} },
		columns: []column{
			col("name", colString),
			col("type", colString),
			col("grain_group", colString),
			col("origin", colString),
			col("producer", colString),
			col("product_id", colString),
			col("yield_fine_grind", colFloat),
			col("yield_coarse_grind", colFloat),
			col("yield_fine_coarse_difference", colFloat),
			col("yield_potential", colFloat),
			col("color", colFloat),
			col("moisture", colFloat),
			col("diastatic_power", colFloat),
			col("recommend_mash", colBool),
			col("notes", colString),
		},
	},
	{
		table:      "hops",
		entityType: model.TypeHop,
		blank:      func() mapping.Entity { return &model.Hop{} },
		columns: []column{
			col("name", colString),
			col("origin", colString),
			col("producer", colString),
			col("product_id", colString),
			col("year", colString),
			col("form", colString),
			col("alpha_acid", colFloat),
			col("beta_acid", colFloat),
			col("purpose", colString),
			col("percent_lost", colFloat),
			col("substitutes", colString),
			col("notes", colString),
		},
	},
	{
		table:      "cultures",
		entityType: model.TypeCulture,
		blank:      func() mapping.Entity { return &model.Culture{} },
		columns: []column{
			col("name", colString),
			col("type", colString),
			col("form", colString),
			col("producer", colString),
			col("product_id", colString),
			col("temp_min", colFloat),
			col("temp_max", colFloat),
			col("flocculation", colString),
			col("attenuation_min", colFloat),
			col("attenuation_max", colFloat),
			col("alcohol_tolerance", colFloat),
			col("max_reuse", colInt),
			col("pof", colBool),
			col("glucoamylase", colBool),
			col("best_for", colString),
			col("notes", colString),
		},
	},
	{
		table:      "miscs",
		entityType: model.TypeMisc,
		blank:      func() mapping.Entity { return &model.Misc{} },
		columns: []column{
			col("name", colString),
			col("type", colString),
			col("producer", colString),
			col("product_id", colString),
			col("use_for", colString),
			col("notes", colString),
		},
	},
	{
		table:      "waters",
		entityType: model.TypeWater,
		blank:      func() mapping.Entity { return &model.Water{} },
		columns: []column{
			col("name", colString),
			col("producer", colString),
			col("calcium", colFloat),
			col("bicarbonate", colFloat),
			col("carbonate", colFloat),
			col("potassium", colFloat),
			col("iron", colFloat),
			col("nitrate", colFloat),
			col("nitrite", colFloat),
			col("sulfate", colFloat),
			col("chloride", colFloat),
			col("sodium", colFloat),
			col("magnesium", colFloat),
			col("ph", colFloat),
			col("notes", colString),
		},
	},
	{
		table:      "styles",
		entityType: model.TypeStyle,
		blank:      func() mapping.Entity { return &model.Style{} },
		columns: []column{
			col("name", colString),
			col("category", colString),
			col("category_number", colInt),
			col("style_letter", colString),
			col("style_guide", colString),
			col("type", colString),
			col("og_min", colFloat),
			col("og_max", colFloat),
			col("fg_min", colFloat),
			col("fg_max", colFloat),
			col("ibu_min", colFloat),
			col("ibu_max", colFloat),
			col("color_min", colFloat),
			col("color_max", colFloat),
			col("carbonation_min", colFloat),
			col("carbonation_max", colFloat),
			col("abv_min", colFloat),
			col("abv_max", colFloat),
			col("notes", colString),
			col("examples", colString),
		},
	},
	{
		table:      "mashes",
		entityType: model.TypeMash,
		blank:      func() mapping.Entity { return &model.Mash{} },
		columns: []column{
			col("name", colString),
			col("grain_temperature", colFloat),
			col("notes", colString),
		},
	},
	{
		table:      "mash_steps",
		entityType: model.TypeMashStep,
		owned:      true,
		blank:      func() mapping.Entity { return &model.MashStep{} },
		columns: []column{
			col("name", colString),
			col("mash_id", colRef),
			col("type", colString),
			col("amount", colFloat),
			col("step_temperature", colFloat),
			col("end_temperature", colFloat),
			col("step_time", colFloat),
			col("ramp_time", colFloat),
			col("water_grain_ratio", colFloat),
		},
	},
	{
		table:      "recipes",
		entityType: model.TypeRecipe,
		blank:      func() mapping.Entity { return &model.Recipe{} },
		columns: []column{
			col("name", colString),
			col("type", colString),
			col("author", colString),
			col("coauthor", colString),
			col("created", colDate),
			col("batch_size", colFloat),
			col("efficiency_brewhouse", colFloat),
			col("efficiency_mash", colFloat),
			{name: "style_id", property: "style", kind: colRef},
			{name: "mash_id", property: "mash", kind: colRef},
			col("original_gravity", colFloat),
			col("final_gravity", colFloat),
			col("ibu_method", colString),
			col("carbonation", colFloat),
			col("notes", colString),
		},
	},
	{
		table:      "fermentable_additions",
		entityType: model.TypeFermentableAddition,
		owned:      true,
		blank:      func() mapping.Entity { return &model.FermentableAddition{} },
		columns: []column{
			col("name", colString),
			col("recipe_id", colRef),
			col("type", colString),
			col("origin", colString),
			col("amount", colAmount),
			col("use", colString),
			col("timing_time", colFloat),
		},
	},
	{
		table:      "hop_additions",
		entityType: model.TypeHopAddition,
		owned:      true,
		blank:      func() mapping.Entity { return &model.HopAddition{} },
		columns: []column{
			col("name", colString),
			col("recipe_id", colRef),
			col("origin", colString),
			col("form", colString),
			col("alpha_acid", colFloat),
			col("amount", colAmount),
			col("use", colString),
			col("timing_time", colFloat),
			col("timing_duration", colFloat),
		},
	},
	{
		table:      "culture_additions",
		entityType: model.TypeCultureAddition,
		owned:      true,
		blank:      func() mapping.Entity { return &model.CultureAddition{} },
		columns: []column{
			col("name", colString),
			col("recipe_id", colRef),
			col("type", colString),
			col("form", colString),
			col("amount", colAmount),
			col("use", colString),
			col("timing_time", colFloat),
		},
	},
	{
		table:      "misc_additions",
		entityType: model.TypeMiscAddition,
		owned:      true,
		blank:      func() mapping.Entity { return &model.MiscAddition{} },
		columns: []column{
			col("name", colString),
			col("recipe_id", colRef),
			col("type", colString),
			col("amount", colAmount),
			col("use", colString),
			col("timing_time", colFloat),
			col("timing_duration", colFloat),
		},
	},
}

var specByType = buildSpecIndex()

func buildSpecIndex() map[string]*tableSpec {
	m := make(map[string]*tableSpec, len(tables))
	for i := range tables {
		m[tables[i].entityType] = &tables[i]
	}
	return m
}
