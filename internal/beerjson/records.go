package beerjson

import (
	"context"

	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/model"
)

// identity builds an identity enum mapping from typed spellings.
func identity[E ~string](values ...E) *mapping.EnumMapping {
	spellings := make([]string, len(values))
	for i, v := range values {
		spellings[i] = string(v)
	}
	return mapping.IdentityEnum(spellings...)
}

// Enum tables. The document spellings equal the stored values, so every
// table is an identity over the model's constants.
var (
	fermentableTypes = identity(model.FermentableGrain, model.FermentableExtract,
		model.FermentableDryExtract, model.FermentableSugar, model.FermentableFruit,
		model.FermentableJuice, model.FermentableHoney, model.FermentableOther)

	grainGroups = identity(model.GrainBase, model.GrainCaramel, model.GrainFlaked,
		model.GrainRoasted, model.GrainSpecialty, model.GrainSmoked, model.GrainAdjunct)

	hopForms = identity(model.HopExtract, model.HopLeaf, model.HopLeafWet,
		model.HopPellet, model.HopPowder, model.HopPlug)

	hopPurposes = identity(model.HopAroma, model.HopBittering, model.HopFlavor,
		model.HopAromaBittering, model.HopBitteringFlavor, model.HopAromaFlavor,
		model.HopAromaBitteringFlavor)

	cultureTypes = identity(model.CultureAle, model.CultureBacteria,
		model.CultureBrett, model.CultureChampagne, model.CultureKveik,
		model.CultureLacto, model.CultureLager, model.CultureMalt,
		model.CultureMixed, model.CultureOther, model.CulturePedio,
		model.CultureSpontaneous, model.CultureWine)

	cultureForms = identity(model.CultureFormLiquid, model.CultureFormDry,
		model.CultureFormSlant, model.CultureFormCulture)

	flocculations = identity(model.FlocVeryLow, model.FlocLow, model.FlocMediumLow,
		model.FlocMedium, model.FlocMediumHigh, model.FlocHigh, model.FlocVeryHigh)

	miscTypes = identity(model.MiscSpice, model.MiscFining, model.MiscWaterAgent,
		model.MiscHerb, model.MiscFlavor, model.MiscWood, model.MiscOther)

	styleTypes = identity(model.StyleBeverage, model.StyleBeer, model.StyleCider,
		model.StyleKombucha, model.StyleMead, model.StyleOther, model.StyleSoda,
		model.StyleWine)

	mashStepTypes = identity(model.StepInfusion, model.StepTemperature,
		model.StepDecoction, model.StepSouringMash, model.StepSouringWort,
		model.StepDrainMashTun, model.StepSparge)

	recipeTypes = identity(model.RecipeAllGrain, model.RecipePartialMash,
		model.RecipeExtract, model.RecipeCider, model.RecipeKombucha,
		model.RecipeSoda, model.RecipeMead, model.RecipeWine, model.RecipeOther)

	ibuMethods = identity(model.IBURager, model.IBUTinseth, model.IBUGaretz,
		model.IBUOther)

	additionUses = identity(model.UseMash, model.UseBoil, model.UseFermentation,
		model.UsePackage)
)

// construct adapts a concrete entity constructor to the engine's hook
// signature.
func construct[E mapping.Entity](build func(mapping.Bundle) E) mapping.ConstructFunc {
	return func(b mapping.Bundle) (mapping.Entity, error) {
		return build(b), nil
	}
}

// listAll enumerates every stored entity of one type, for the root
// document arrays.
func listAll(entityType string) mapping.EnumerateFunc {
	return func(ctx context.Context, s mapping.EntityStore, _ mapping.Entity) ([]mapping.Entity, error) {
		return s.List(ctx, entityType)
	}
}

// listOwned enumerates the children a parent entity owns, in insertion
// order.
func listOwned(childType, ownerType string) mapping.EnumerateFunc {
	return func(ctx context.Context, s mapping.EntityStore, owner mapping.Entity) ([]mapping.Entity, error) {
		if owner == nil {
			return nil, nil
		}
		return s.ListOwned(ctx, childType, ownerType, owner.GetID())
	}
}

// findRef resolves a wired reference property back to its entity, for
// nested single records.
func findRef(property, entityType string) mapping.EnumerateFunc {
	return func(ctx context.Context, s mapping.EntityStore, owner mapping.Entity) ([]mapping.Entity, error) {
		if owner == nil {
			return nil, nil
		}
		v, ok := owner.Get(property)
		if !ok || v == nil {
			return nil, nil
		}
		id, ok := v.(int64)
		if !ok {
			return nil, nil
		}
		e, err := s.Find(ctx, entityType, id)
		if err != nil || e == nil {
			return nil, err
		}
		return []mapping.Entity{e}, nil
	}
}

// Field groups, in document order. Groups are shared between the
// definitions that map the same entity under different document keys.

func fermentableFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.EnumField("type", "type", fermentableTypes),
		mapping.EnumField("grain_group", "grain_group", grainGroups),
		mapping.StringField("origin", "origin"),
		mapping.StringField("producer", "producer"),
		mapping.StringField("product_id", "product_id"),
		mapping.SingleUnitField("yield/fine_grind", "yield_fine_grind", percent),
		mapping.SingleUnitField("yield/coarse_grind", "yield_coarse_grind", percent),
		mapping.SingleUnitField("yield/fine_coarse_difference", "yield_fine_coarse_difference", percent),
		mapping.MeasurementField("yield/potential", "yield_potential", gravity),
		mapping.MeasurementField("color", "color", color),
		mapping.SingleUnitField("moisture", "moisture", percent),
		mapping.MeasurementField("diastatic_power", "diastatic_power", diastaticPower),
		mapping.BoolField("recommend_mash", "recommend_mash"),
		mapping.StringField("notes", "notes"),
	}
}

func hopFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.StringField("origin", "origin"),
		mapping.StringField("producer", "producer"),
		mapping.StringField("product_id", "product_id"),
		mapping.StringField("year", "year"),
		mapping.EnumField("form", "form", hopForms),
		mapping.SingleUnitField("alpha_acid", "alpha_acid", percent),
		mapping.SingleUnitField("beta_acid", "beta_acid", percent),
		mapping.EnumField("type", "purpose", hopPurposes),
		mapping.SingleUnitField("percent_lost", "percent_lost", percent),
		mapping.StringField("substitutes", "substitutes"),
		mapping.StringField("notes", "notes"),
	}
}

func cultureFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.EnumField("type", "type", cultureTypes),
		mapping.EnumField("form", "form", cultureForms),
		mapping.StringField("producer", "producer"),
		mapping.StringField("product_id", "product_id"),
		mapping.MeasurementField("temperature_range/minimum", "temp_min", temperature),
		mapping.MeasurementField("temperature_range/maximum", "temp_max", temperature),
		mapping.EnumField("flocculation", "flocculation", flocculations),
		mapping.SingleUnitField("attenuation_range/minimum", "attenuation_min", percent),
		mapping.SingleUnitField("attenuation_range/maximum", "attenuation_max", percent),
		mapping.SingleUnitField("alcohol_tolerance", "alcohol_tolerance", percent),
		mapping.UIntField("max_reuse", "max_reuse"),
		mapping.BoolField("pof", "pof"),
		mapping.BoolField("glucoamylase", "glucoamylase"),
		mapping.StringField("best_for", "best_for"),
		mapping.StringField("notes", "notes"),
	}
}

func miscFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.EnumField("type", "type", miscTypes),
		mapping.StringField("producer", "producer"),
		mapping.StringField("product_id", "product_id"),
		mapping.StringField("use_for", "use_for"),
		mapping.StringField("notes", "notes"),
	}
}

func waterFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.StringField("producer", "producer"),
		mapping.MeasurementField("calcium", "calcium", concentration),
		mapping.MeasurementField("bicarbonate", "bicarbonate", concentration),
		mapping.MeasurementField("carbonate", "carbonate", concentration),
		mapping.MeasurementField("potassium", "potassium", concentration),
		mapping.MeasurementField("iron", "iron", concentration),
		mapping.MeasurementField("nitrate", "nitrate", concentration),
		mapping.MeasurementField("nitrite", "nitrite", concentration),
		mapping.MeasurementField("sulfate", "sulfate", concentration),
		mapping.MeasurementField("chloride", "chloride", concentration),
		mapping.MeasurementField("sodium", "sodium", concentration),
		mapping.MeasurementField("magnesium", "magnesium", concentration),
		mapping.MeasurementField("ph", "ph", acidity),
		mapping.StringField("notes", "notes"),
	}
}

func styleFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.StringField("category", "category"),
		mapping.UIntField("category_number", "category_number"),
		mapping.StringField("style_letter", "style_letter"),
		mapping.StringField("style_guide", "style_guide"),
		mapping.EnumField("type", "type", styleTypes),
		mapping.MeasurementField("original_gravity/minimum", "og_min", gravity),
		mapping.MeasurementField("original_gravity/maximum", "og_max", gravity),
		mapping.MeasurementField("final_gravity/minimum", "fg_min", gravity),
		mapping.MeasurementField("final_gravity/maximum", "fg_max", gravity),
		mapping.MeasurementField("international_bitterness_units/minimum", "ibu_min", bitterness),
		mapping.MeasurementField("international_bitterness_units/maximum", "ibu_max", bitterness),
		mapping.MeasurementField("color/minimum", "color_min", color),
		mapping.MeasurementField("color/maximum", "color_max", color),
		mapping.MeasurementField("carbonation/minimum", "carbonation_min", carbonation),
		mapping.MeasurementField("carbonation/maximum", "carbonation_max", carbonation),
		mapping.SingleUnitField("alcohol_by_volume/minimum", "abv_min", percent),
		mapping.SingleUnitField("alcohol_by_volume/maximum", "abv_max", percent),
		mapping.StringField("notes", "notes"),
		mapping.StringField("examples", "examples"),
	}
}

func mashFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.MeasurementField("grain_temperature", "grain_temperature", temperature),
		mapping.StringField("notes", "notes"),
		mapping.ArrayField("mash_steps"),
	}
}

func mashStepFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.EnumField("type", "type", mashStepTypes),
		mapping.MeasurementField("amount", "amount", volume),
		mapping.MeasurementField("step_temperature", "step_temperature", temperature),
		mapping.MeasurementField("end_temperature", "end_temperature", temperature),
		mapping.MeasurementField("step_time", "step_time", brewtime),
		mapping.MeasurementField("ramp_time", "ramp_time", brewtime),
		mapping.MeasurementField("water_grain_ratio", "water_grain_ratio", specificVolume),
	}
}

func recipeFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.EnumField("type", "type", recipeTypes),
		mapping.StringField("author", "author"),
		mapping.StringField("coauthor", "coauthor"),
		mapping.DateField("created", "created"),
		mapping.MeasurementField("batch_size", "batch_size", volume),
		mapping.SingleUnitField("efficiency/brewhouse", "efficiency_brewhouse", percent),
		mapping.SingleUnitField("efficiency/mash", "efficiency_mash", percent),
		mapping.RecordField("style", "style"),
		mapping.ArrayField("ingredients/fermentable_additions"),
		mapping.ArrayField("ingredients/hop_additions"),
		mapping.ArrayField("ingredients/culture_additions"),
		mapping.ArrayField("ingredients/miscellaneous_additions"),
		mapping.RecordField("mash", "mash"),
		mapping.MeasurementField("original_gravity", "original_gravity", gravity),
		mapping.MeasurementField("final_gravity", "final_gravity", gravity),
		mapping.EnumField("ibu_estimate/method", "ibu_method", ibuMethods),
		mapping.DoubleField("carbonation", "carbonation"),
		mapping.StringField("notes", "notes"),
	}
}

func fermentableAdditionFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.EnumField("type", "type", fermentableTypes),
		mapping.StringField("origin", "origin"),
		mapping.OneOfMeasurementsField("amount", "amount", mass, volume),
		mapping.EnumField("timing/use", "use", additionUses),
		mapping.MeasurementField("timing/time", "timing_time", brewtime),
	}
}

func hopAdditionFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.StringField("origin", "origin"),
		mapping.EnumField("form", "form", hopForms),
		mapping.SingleUnitField("alpha_acid", "alpha_acid", percent),
		mapping.OneOfMeasurementsField("amount", "amount", mass, volume),
		mapping.EnumField("timing/use", "use", additionUses),
		mapping.MeasurementField("timing/time", "timing_time", brewtime),
		mapping.MeasurementField("timing/duration", "timing_duration", brewtime),
	}
}

func cultureAdditionFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.EnumField("type", "type", cultureTypes),
		mapping.EnumField("form", "form", cultureForms),
		mapping.OneOfMeasurementsField("amount", "amount", mass, volume, count),
		mapping.EnumField("timing/use", "use", additionUses),
		mapping.MeasurementField("timing/time", "timing_time", brewtime),
	}
}

func miscAdditionFields() []mapping.FieldDefinition {
	return []mapping.FieldDefinition{
		mapping.StringField("name", "name"),
		mapping.EnumField("type", "type", miscTypes),
		mapping.OneOfMeasurementsField("amount", "amount", mass, volume, count),
		mapping.EnumField("timing/use", "use", additionUses),
		mapping.MeasurementField("timing/time", "timing_time", brewtime),
		mapping.MeasurementField("timing/duration", "timing_duration", brewtime),
	}
}

// rootDefinition is the document container: the version constant plus
// one array per collection, each enumerating the full store on export.
func rootDefinition() *mapping.RecordDefinition {
	return mapping.NewRecordDefinition(RootName, "", nil, []mapping.FieldDefinition{
		mapping.ConstantField("version", Version),
		mapping.ArrayField("fermentables"),
		mapping.ArrayField("hop_varieties"),
		mapping.ArrayField("cultures"),
		mapping.ArrayField("miscellaneous_ingredients"),
		mapping.ArrayField("profiles"),
		mapping.ArrayField("styles"),
		mapping.ArrayField("mashes"),
		mapping.ArrayField("recipes"),
	}).
		WithEnumerate("fermentables", listAll(model.TypeFermentable)).
		WithEnumerate("hop_varieties", listAll(model.TypeHop)).
		WithEnumerate("cultures", listAll(model.TypeCulture)).
		WithEnumerate("miscellaneous_ingredients", listAll(model.TypeMisc)).
		WithEnumerate("profiles", listAll(model.TypeWater)).
		WithEnumerate("styles", listAll(model.TypeStyle)).
		WithEnumerate("mashes", listAll(model.TypeMash)).
		WithEnumerate("recipes", listAll(model.TypeRecipe))
}

// mashDefinition maps a mash procedure with its ordered steps. The same
// shape appears as an item of the top-level mashes array and as the
// single mash object nested in a recipe.
func mashDefinition(name string) *mapping.RecordDefinition {
	return mapping.NewRecordDefinition(name, model.TypeMash, construct(model.NewMash), mashFields()).
		WithStats().
		WithEnumerate("mash_steps", listOwned(model.TypeMashStep, model.TypeMash))
}

// styleDefinition maps a style entry, either as an item of the styles
// array or as the single style object nested in a recipe.
func styleDefinition(name string) *mapping.RecordDefinition {
	return mapping.NewRecordDefinition(name, model.TypeStyle, construct(model.NewStyle), styleFields()).
		WithStats()
}

// recipeDefinition is the composite: a recipe stores its nested style
// and mash as full entities, wires them through writable properties,
// owns its additions, and re-checks for duplicates once complete.
func recipeDefinition() *mapping.RecordDefinition {
	return mapping.NewRecordDefinition("recipes", model.TypeRecipe, construct(model.NewRecipe), recipeFields()).
		WithStats().
		WithLateDuplicateCheck().
		WithEnumerate("style", findRef("style", model.TypeStyle)).
		WithEnumerate("mash", findRef("mash", model.TypeMash)).
		WithEnumerate("ingredients/fermentable_additions", listOwned(model.TypeFermentableAddition, model.TypeRecipe)).
		WithEnumerate("ingredients/hop_additions", listOwned(model.TypeHopAddition, model.TypeRecipe)).
		WithEnumerate("ingredients/culture_additions", listOwned(model.TypeCultureAddition, model.TypeRecipe)).
		WithEnumerate("ingredients/miscellaneous_additions", listOwned(model.TypeMiscAddition, model.TypeRecipe))
}

// definitions assembles the full record set of the dialect.
func definitions() []*mapping.RecordDefinition {
	return []*mapping.RecordDefinition{
		rootDefinition(),
		mapping.NewRecordDefinition("fermentables", model.TypeFermentable,
			construct(model.NewFermentable), fermentableFields()).WithStats(),
		mapping.NewRecordDefinition("hop_varieties", model.TypeHop,
			construct(model.NewHop), hopFields()).WithStats(),
		mapping.NewRecordDefinition("cultures", model.TypeCulture,
			construct(model.NewCulture), cultureFields()).WithStats(),
		mapping.NewRecordDefinition("miscellaneous_ingredients", model.TypeMisc,
			construct(model.NewMisc), miscFields()).WithStats(),
		mapping.NewRecordDefinition("profiles", model.TypeWater,
			construct(model.NewWater), waterFields()).WithStats(),
		styleDefinition("styles"),
		styleDefinition("style"),
		mashDefinition("mashes"),
		mashDefinition("mash"),
		mapping.NewRecordDefinition("mash_steps", model.TypeMashStep,
			construct(model.NewMashStep), mashStepFields()),
		recipeDefinition(),
		mapping.NewRecordDefinition("ingredients/fermentable_additions", model.TypeFermentableAddition,
			construct(model.NewFermentableAddition), fermentableAdditionFields()),
		mapping.NewRecordDefinition("ingredients/hop_additions", model.TypeHopAddition,
			construct(model.NewHopAddition), hopAdditionFields()),
		mapping.NewRecordDefinition("ingredients/culture_additions", model.TypeCultureAddition,
			construct(model.NewCultureAddition), cultureAdditionFields()),
		mapping.NewRecordDefinition("ingredients/miscellaneous_additions", model.TypeMiscAddition,
			construct(model.NewMiscAddition), miscAdditionFields()),
	}
}
