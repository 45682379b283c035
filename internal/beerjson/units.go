package beerjson

import (
	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/measure"
)

// Unit tables for the measurement fields of the dialect. The first unit
// of each mapping is the canonical one and the spelling exports prefer.
// Spellings follow the document format's unit enumerations.
var (
	mass = mapping.NewUnitMapping(measure.Mass,
		measure.Kilograms, measure.Grams, measure.Milligrams,
		measure.Pounds, measure.Ounces)

	volume = mapping.NewUnitMapping(measure.Volume,
		measure.Liters, measure.Milliliters, measure.Teaspoons,
		measure.Tablespoons, measure.FluidOunces, measure.Cups,
		measure.Pints, measure.Quarts, measure.Gallons, measure.Barrels,
		measure.ImperialFluidOunces, measure.ImperialPints,
		measure.ImperialQuarts, measure.ImperialGallons,
		measure.ImperialBarrels)

	temperature = mapping.NewUnitMapping(measure.Temperature,
		measure.Celsius, measure.Fahrenheit)

	brewtime = mapping.NewUnitMapping(measure.Time,
		measure.Minutes, measure.Seconds, measure.Hours, measure.Days,
		measure.Weeks)

	color = mapping.NewUnitMapping(measure.Color,
		measure.SRM, measure.EBC, measure.Lovibond)

	gravity = mapping.NewUnitMapping(measure.Gravity,
		measure.SpecificGravity, measure.Plato, measure.Brix)

	acidity = mapping.NewUnitMapping(measure.Acidity, measure.PH)

	concentration = mapping.NewUnitMapping(measure.Concentration,
		measure.PartsPerMillion, measure.PartsPerBillion,
		measure.MilligramsPerLiter)

	diastaticPower = mapping.NewUnitMapping(measure.DiastaticPower,
		measure.Lintner, measure.WindischKolbach)

	bitterness = mapping.NewUnitMapping(measure.Bitterness, measure.IBU)

	carbonation = mapping.NewUnitMapping(measure.Carbonation,
		measure.VolumesCO2, measure.GramsPerLiter)

	specificVolume = mapping.NewUnitMapping(measure.SpecificVolume,
		measure.LitersPerKilogram, measure.LitersPerGram,
		measure.QuartsPerPound, measure.GallonsPerPound,
		measure.FluidOuncesPerOunce,
		measure.NewUnit("gal/oz", measure.SpecificVolume, 3.785411784/0.0283495231, 0),
		measure.NewUnit("m^3/kg", measure.SpecificVolume, 1000, 0),
		measure.NewUnit("ft^3/lb", measure.SpecificVolume, 28.316846592/0.45359237, 0))

	// The document format spells a bare item count five ways.
	count = mapping.NewUnitMapping(measure.Count,
		measure.Each,
		measure.NewUnit("1", measure.Count, 1, 0),
		measure.NewUnit("each", measure.Count, 1, 0),
		measure.NewUnit("dimensionless", measure.Count, 1, 0),
		measure.NewUnit("pkg", measure.Count, 1, 0))

	percent = mapping.NewSingleUnit("%")
)
