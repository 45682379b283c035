package beerjson

import (
	"context"
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/measure"
	"github.com/grainbill/brewdex/internal/model"
)

func almost(got, want float64) bool {
	return math.Abs(got-want) < 1e-9
}

// testDocument is a complete document with one record per collection and
// a recipe whose nested style and mash duplicate the top-level entries.
const testDocument = `{
  "beerjson": {
    "version": "1.0",
    "fermentables": [
      {
        "name": "Pilsner Malt",
        "type": "grain",
        "grain_group": "base",
        "origin": "Czech Republic",
        "producer": "Weyermann",
        "yield": {
          "fine_grind": {"unit": "%", "value": 81},
          "potential": {"unit": "sg", "value": 1.037}
        },
        "color": {"unit": "Lovi", "value": 1.7},
        "moisture": {"unit": "%", "value": 4.5},
        "diastatic_power": {"unit": "WK", "value": 250},
        "recommend_mash": true,
        "notes": "Floor-malted Bohemian pilsner malt."
      }
    ],
    "hop_varieties": [
      {
        "name": "Saaz",
        "origin": "Czech Republic",
        "form": "pellet",
        "alpha_acid": {"unit": "%", "value": 3.5},
        "beta_acid": {"unit": "%", "value": 4},
        "type": "aroma"
      }
    ],
    "cultures": [
      {
        "name": "Czech Budejovice Lager",
        "type": "lager",
        "form": "liquid",
        "producer": "Wyeast",
        "product_id": "2278",
        "temperature_range": {
          "minimum": {"unit": "F", "value": 48},
          "maximum": {"unit": "F", "value": 58}
        },
        "flocculation": "medium",
        "attenuation_range": {
          "minimum": {"unit": "%", "value": 70},
          "maximum": {"unit": "%", "value": 74}
        }
      }
    ],
    "miscellaneous_ingredients": [
      {
        "name": "Irish Moss",
        "type": "fining",
        "use_for": "Kettle finings"
      }
    ],
    "profiles": [
      {
        "name": "Pilsen",
        "calcium": {"unit": "ppm", "value": 7},
        "bicarbonate": {"unit": "ppm", "value": 15},
        "sulfate": {"unit": "ppm", "value": 5},
        "chloride": {"unit": "ppm", "value": 5},
        "sodium": {"unit": "ppm", "value": 2},
        "magnesium": {"unit": "ppm", "value": 2},
        "ph": {"unit": "pH", "value": 7}
      }
    ],
    "styles": [
      {
        "name": "Czech Premium Pale Lager",
        "category": "Czech Lager",
        "category_number": 3,
        "style_letter": "B",
        "style_guide": "BJCP 2021",
        "type": "beer",
        "original_gravity": {
          "minimum": {"unit": "sg", "value": 1.044},
          "maximum": {"unit": "sg", "value": 1.06}
        },
        "final_gravity": {
          "minimum": {"unit": "sg", "value": 1.013},
          "maximum": {"unit": "sg", "value": 1.017}
        },
        "international_bitterness_units": {
          "minimum": {"unit": "IBUs", "value": 30},
          "maximum": {"unit": "IBUs", "value": 45}
        },
        "color": {
          "minimum": {"unit": "SRM", "value": 3.5},
          "maximum": {"unit": "SRM", "value": 6}
        },
        "alcohol_by_volume": {
          "minimum": {"unit": "%", "value": 4.2},
          "maximum": {"unit": "%", "value": 5.8}
        }
      }
    ],
    "mashes": [
      {
        "name": "Single Decoction",
        "grain_temperature": {"unit": "C", "value": 20},
        "mash_steps": [
          {
            "name": "Saccharification Rest",
            "type": "infusion",
            "amount": {"unit": "l", "value": 15},
            "step_temperature": {"unit": "C", "value": 65},
            "step_time": {"unit": "min", "value": 45},
            "water_grain_ratio": {"unit": "l/kg", "value": 3}
          },
          {
            "name": "Mash Out",
            "type": "decoction",
            "step_temperature": {"unit": "C", "value": 75},
            "step_time": {"unit": "min", "value": 15},
            "ramp_time": {"unit": "min", "value": 20}
          }
        ]
      }
    ],
    "recipes": [
      {
        "name": "Bohemian Pilsner",
        "type": "all grain",
        "author": "Jan Novak",
        "created": "2024-03-15",
        "batch_size": {"unit": "gal", "value": 5},
        "efficiency": {
          "brewhouse": {"unit": "%", "value": 72}
        },
        "style": {
          "name": "Czech Premium Pale Lager",
          "category": "Czech Lager",
          "category_number": 3,
          "style_letter": "B",
          "style_guide": "BJCP 2021",
          "type": "beer"
        },
        "ingredients": {
          "fermentable_additions": [
            {
              "name": "Pilsner Malt",
              "type": "grain",
              "amount": {"unit": "lb", "value": 11},
              "timing": {"use": "add_to_mash"}
            }
          ],
          "hop_additions": [
            {
              "name": "Saaz",
              "form": "pellet",
              "alpha_acid": {"unit": "%", "value": 3.5},
              "amount": {"unit": "oz", "value": 2},
              "timing": {"use": "add_to_boil", "time": {"unit": "min", "value": 60}}
            },
            {
              "name": "Saaz",
              "form": "pellet",
              "alpha_acid": {"unit": "%", "value": 3.5},
              "amount": {"unit": "oz", "value": 1},
              "timing": {"use": "add_to_boil", "time": {"unit": "min", "value": 10}}
            }
          ],
          "culture_additions": [
            {
              "name": "Czech Budejovice Lager",
              "type": "lager",
              "form": "liquid",
              "amount": {"unit": "pkg", "value": 2},
              "timing": {"use": "add_to_fermentation"}
            }
          ],
          "miscellaneous_additions": [
            {
              "name": "Irish Moss",
              "type": "fining",
              "amount": {"unit": "tsp", "value": 1},
              "timing": {"use": "add_to_boil", "time": {"unit": "min", "value": 15}}
            }
          ]
        },
        "mash": {
          "name": "Single Decoction",
          "grain_temperature": {"unit": "C", "value": 20},
          "mash_steps": [
            {
              "name": "Saccharification Rest",
              "type": "infusion",
              "step_temperature": {"unit": "C", "value": 65},
              "step_time": {"unit": "min", "value": 45}
            }
          ]
        },
        "original_gravity": {"unit": "sg", "value": 1.048},
        "final_gravity": {"unit": "sg", "value": 1.012},
        "ibu_estimate": {"method": "Tinseth"},
        "carbonation": 2.4,
        "notes": "Classic Bohemian pilsner."
      }
    ]
  }
}`

func TestImportExportRoundTrip(t *testing.T) {
	ctx := context.Background()
	coding := Default()
	store := newMemStore()

	res := coding.ValidateAndStore(ctx, store, []byte(testDocument))
	if !res.OK {
		t.Fatalf("import failed: %s", res.Message)
	}
	want := "read 8 records (1 culture, 1 fermentable, 1 hop, 1 mash, 1 misc, 1 recipe, 1 style, 1 water), skipped 2 duplicates"
	if res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}

	for typ, n := range map[string]int{
		model.TypeFermentable:         1,
		model.TypeHop:                 1,
		model.TypeCulture:             1,
		model.TypeMisc:                1,
		model.TypeWater:               1,
		model.TypeStyle:               1,
		model.TypeMash:                1,
		model.TypeMashStep:            2,
		model.TypeRecipe:              1,
		model.TypeFermentableAddition: 1,
		model.TypeHopAddition:         2,
		model.TypeCultureAddition:     1,
		model.TypeMiscAddition:        1,
	} {
		if got := store.count(typ); got != n {
			t.Errorf("stored %d %s rows, want %d", got, typ, n)
		}
	}

	// Spot-check unit normalisation on the stored entities.
	fe, err := store.FindByName(ctx, model.TypeFermentable, "Pilsner Malt")
	if err != nil || fe == nil {
		t.Fatalf("fermentable not stored: %v", err)
	}
	f := fe.(*model.Fermentable)
	if f.DiastaticPower == nil || !almost(*f.DiastaticPower, 76) {
		t.Errorf("diastatic power = %v Lintner, want 76", f.DiastaticPower)
	}
	if f.Color == nil || !almost(*f.Color, 1.3546*1.7-0.76) {
		t.Errorf("color = %v SRM, want %v", f.Color, 1.3546*1.7-0.76)
	}

	ce, err := store.FindByName(ctx, model.TypeCulture, "Czech Budejovice Lager")
	if err != nil || ce == nil {
		t.Fatalf("culture not stored: %v", err)
	}
	c := ce.(*model.Culture)
	if c.TempMin == nil || !almost(*c.TempMin, 80.0/9.0) {
		t.Errorf("temp_min = %v C, want %v", c.TempMin, 80.0/9.0)
	}

	re, err := store.FindByName(ctx, model.TypeRecipe, "Bohemian Pilsner")
	if err != nil || re == nil {
		t.Fatalf("recipe not stored: %v", err)
	}
	r := re.(*model.Recipe)
	if r.StyleID == 0 || r.MashID == 0 {
		t.Errorf("recipe references not wired: style %d, mash %d", r.StyleID, r.MashID)
	}
	if r.BatchSize == nil || !almost(*r.BatchSize, 5*3.785411784) {
		t.Errorf("batch size = %v l, want %v", r.BatchSize, 5*3.785411784)
	}
	adds, err := store.ListOwned(ctx, model.TypeFermentableAddition, model.TypeRecipe, r.GetID())
	if err != nil || len(adds) != 1 {
		t.Fatalf("fermentable additions = %d (%v), want 1", len(adds), err)
	}
	amount := adds[0].(*model.FermentableAddition).Amount
	if amount == nil || amount.Quantity != measure.Mass || !almost(amount.Value, 11*0.45359237) {
		t.Errorf("addition amount = %v, want %v kg of mass", amount, 11*0.45359237)
	}

	// Exports are canonical, so exporting, re-importing and exporting
	// again must reproduce the same document.
	doc, err := coding.WriteDocument(ctx, store)
	if err != nil {
		t.Fatalf("WriteDocument: %v", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshalling export: %v", err)
	}

	second := newMemStore()
	if res := coding.ValidateAndStore(ctx, second, out); !res.OK {
		t.Fatalf("re-import of export failed: %s", res.Message)
	}
	again, err := coding.WriteDocument(ctx, second)
	if err != nil {
		t.Fatalf("WriteDocument after re-import: %v", err)
	}
	if !reflect.DeepEqual(doc, again) {
		t.Errorf("export changed across a round trip:\nfirst  %v\nsecond %v", doc, again)
	}
}

func TestImport_SkipsDuplicateFermentable(t *testing.T) {
	const doc = `{
  "beerjson": {
    "version": "1.0",
    "fermentables": [
      {
        "name": "Maris Otter",
        "type": "grain",
        "origin": "United Kingdom",
        "yield": {"fine_grind": {"unit": "%", "value": 82}},
        "color": {"unit": "SRM", "value": 3}
      },
      {
        "name": "Maris Otter",
        "type": "grain",
        "origin": "United Kingdom",
        "yield": {"fine_grind": {"unit": "%", "value": 82}},
        "color": {"unit": "SRM", "value": 3},
        "notes": "Second sack, same malt."
      }
    ]
  }
}`
	store := newMemStore()
	res := Default().ValidateAndStore(context.Background(), store, []byte(doc))
	if !res.OK {
		t.Fatalf("import failed: %s", res.Message)
	}
	if want := "read 1 record (1 fermentable), skipped 1 duplicate"; res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}
	if got := store.count(model.TypeFermentable); got != 1 {
		t.Errorf("stored %d fermentables, want 1", got)
	}
}

func TestImport_RenamesNameClash(t *testing.T) {
	const doc = `{
  "beerjson": {
    "version": "1.0",
    "fermentables": [
      {
        "name": "Crystal 60",
        "type": "grain",
        "yield": {"fine_grind": {"unit": "%", "value": 74}},
        "color": {"unit": "SRM", "value": 6}
      },
      {
        "name": "Crystal 60",
        "type": "grain",
        "yield": {"fine_grind": {"unit": "%", "value": 74}},
        "color": {"unit": "SRM", "value": 8}
      }
    ]
  }
}`
	ctx := context.Background()
	store := newMemStore()
	res := Default().ValidateAndStore(ctx, store, []byte(doc))
	if !res.OK {
		t.Fatalf("import failed: %s", res.Message)
	}
	if want := "read 2 records (2 fermentables)"; res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}
	renamed, err := store.FindByName(ctx, model.TypeFermentable, "Crystal 60 (1)")
	if err != nil || renamed == nil {
		t.Fatalf("renamed copy not found: %v", err)
	}
	if c := renamed.(*model.Fermentable).Color; c == nil || *c != 8 {
		t.Errorf("renamed copy color = %v, want 8", c)
	}
}

func TestImport_RejectsInvalidDocument(t *testing.T) {
	const doc = `{"beerjson": {"version": "1.0", "fermentables": [{"name": "Mystery Malt"}]}}`

	store := newMemStore()
	res := Default().ValidateAndStore(context.Background(), store, []byte(doc))
	if res.OK {
		t.Fatalf("import of invalid document succeeded: %s", res.Message)
	}
	if !strings.HasPrefix(res.Message, "document is not valid BeerJSON 1.0") {
		t.Errorf("message = %q, want schema rejection", res.Message)
	}
	if !strings.Contains(res.Message, "/beerjson/fermentables/0") {
		t.Errorf("message %q does not point at the offending record", res.Message)
	}
	if got := store.count(model.TypeFermentable); got != 0 {
		t.Errorf("stored %d fermentables from an invalid document", got)
	}
}

func TestImport_BadStepTypeReadsNothing(t *testing.T) {
	// Without schema validation the bad enum surfaces as a read error,
	// and the whole document is refused before anything is stored.
	const doc = `{
  "beerjson": {
    "version": "1.0",
    "mashes": [
      {
        "name": "Stepped Mash",
        "grain_temperature": {"unit": "C", "value": 20},
        "mash_steps": [
          {"name": "Protein Rest", "type": "temperature", "step_temperature": {"unit": "C", "value": 50}, "step_time": {"unit": "min", "value": 20}},
          {"name": "Sacch Rest", "type": "rest", "step_temperature": {"unit": "C", "value": 65}, "step_time": {"unit": "min", "value": 40}},
          {"name": "Mash Out", "type": "temperature", "step_temperature": {"unit": "C", "value": 76}, "step_time": {"unit": "min", "value": 10}}
        ]
      }
    ]
  }
}`
	store := newMemStore()
	res := NewCoding(nil).ValidateAndStore(context.Background(), store, []byte(doc))
	if res.OK {
		t.Fatalf("import with bad step type succeeded: %s", res.Message)
	}
	if !strings.HasPrefix(res.Message, "could not read document") {
		t.Errorf("message = %q, want read failure", res.Message)
	}
	if !strings.Contains(res.Message, `"rest"`) {
		t.Errorf("message %q does not name the bad value", res.Message)
	}
	if n := store.count(model.TypeMash) + store.count(model.TypeMashStep); n != 0 {
		t.Errorf("%d rows stored from a refused document", n)
	}
}

func TestImport_EmptyDocument(t *testing.T) {
	store := newMemStore()
	res := Default().ValidateAndStore(context.Background(), store, []byte(`{"beerjson": {"version": "1.0"}}`))
	if res.OK {
		t.Fatalf("empty import reported success: %s", res.Message)
	}
	if want := "document contained nothing to import"; res.Message != want {
		t.Errorf("message = %q, want %q", res.Message, want)
	}
}

func TestWriteEntityDocument_Recipe(t *testing.T) {
	ctx := context.Background()
	coding := NewCoding(nil)
	store := newMemStore()

	insert := func(e mapping.Entity) int64 {
		t.Helper()
		id, err := store.Insert(ctx, e)
		if err != nil {
			t.Fatalf("inserting %s: %v", e.EntityType(), err)
		}
		e.SetID(id)
		return id
	}

	style := model.NewStyle(model.Bundle{
		"name": "Altbier", "category": "Amber Bitter European Beer",
		"style_guide": "BJCP 2021", "type": "beer",
	})
	insert(style)

	mash := model.NewMash(model.Bundle{"name": "Single Infusion", "grain_temperature": 18.0})
	insert(mash)
	step := model.NewMashStep(model.Bundle{
		"name": "Conversion", "type": "infusion",
		"step_temperature": 67.0, "step_time": 60.0,
	})
	step.SetOwner(mash)
	insert(step)

	recipe := model.NewRecipe(model.Bundle{
		"name": "Sticke Alt", "type": "all grain", "author": "R. Brauer",
		"batch_size": 20.0, "efficiency_brewhouse": 70.0,
		"original_gravity": 1.055,
	})
	recipe.Set("style", style)
	recipe.Set("mash", mash)
	insert(recipe)

	hop := model.NewHopAddition(model.Bundle{
		"name": "Spalt", "use": "add_to_boil", "timing_time": 60.0,
		"amount": measure.Amount{Quantity: measure.Mass, Value: 0.04},
	})
	hop.SetOwner(recipe)
	insert(hop)

	frag, err := coding.WriteEntityDocument(ctx, store, recipe)
	if err != nil {
		t.Fatalf("WriteEntityDocument: %v", err)
	}

	if got := frag["name"]; got != "Sticke Alt" {
		t.Errorf("name = %v", got)
	}
	if _, present := frag["version"]; present {
		t.Errorf("entity fragment carries a version key")
	}
	styleNode, ok := frag["style"].(map[string]any)
	if !ok || styleNode["name"] != "Altbier" {
		t.Errorf("style node = %v", frag["style"])
	}
	mashNode, ok := frag["mash"].(map[string]any)
	if !ok {
		t.Fatalf("mash node = %v", frag["mash"])
	}
	steps, ok := mashNode["mash_steps"].([]any)
	if !ok || len(steps) != 1 {
		t.Fatalf("mash_steps = %v", mashNode["mash_steps"])
	}
	if name := steps[0].(map[string]any)["name"]; name != "Conversion" {
		t.Errorf("step name = %v", name)
	}
	ingredients, ok := frag["ingredients"].(map[string]any)
	if !ok {
		t.Fatalf("ingredients node = %v", frag["ingredients"])
	}
	hops, ok := ingredients["hop_additions"].([]any)
	if !ok || len(hops) != 1 {
		t.Fatalf("hop_additions = %v", ingredients["hop_additions"])
	}
	amount, ok := hops[0].(map[string]any)["amount"].(map[string]any)
	if !ok || amount["unit"] != "kg" || !almost(amount["value"].(float64), 0.04) {
		t.Errorf("hop amount = %v, want 0.04 kg", hops[0].(map[string]any)["amount"])
	}
	batch, ok := frag["batch_size"].(map[string]any)
	if !ok || batch["unit"] != "l" || !almost(batch["value"].(float64), 20) {
		t.Errorf("batch_size = %v, want 20 l", frag["batch_size"])
	}
	if _, present := frag["ibu_estimate"]; present {
		t.Errorf("unset IBU method was exported: %v", frag["ibu_estimate"])
	}
}

func TestCodingCoversEveryEntityType(t *testing.T) {
	c := Default()
	if c.Root().Name != RootName {
		t.Fatalf("root definition = %q, want %q", c.Root().Name, RootName)
	}
	for _, typ := range []string{
		model.TypeFermentable, model.TypeHop, model.TypeCulture,
		model.TypeMisc, model.TypeWater, model.TypeStyle,
		model.TypeMash, model.TypeMashStep, model.TypeRecipe,
		model.TypeFermentableAddition, model.TypeHopAddition,
		model.TypeCultureAddition, model.TypeMiscAddition,
	} {
		if def := c.DefinitionForEntity(typ); def.EntityType != typ {
			t.Errorf("definition for %q maps %q", typ, def.EntityType)
		}
	}
}
