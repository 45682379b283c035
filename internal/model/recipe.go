package model

import (
	"time"

	"github.com/grainbill/brewdex/internal/measure"
)

// Entity types for recipes and their ingredient additions.
const (
	TypeRecipe              = "recipe"
	TypeFermentableAddition = "fermentable_addition"
	TypeHopAddition         = "hop_addition"
	TypeCultureAddition     = "culture_addition"
	TypeMiscAddition        = "misc_addition"
)

// RecipeType is the production method of a recipe.
type RecipeType string

const (
	RecipeAllGrain    RecipeType = "all grain"
	RecipePartialMash RecipeType = "partial mash"
	RecipeExtract     RecipeType = "extract"
	RecipeCider       RecipeType = "cider"
	RecipeKombucha    RecipeType = "kombucha"
	RecipeSoda        RecipeType = "soda"
	RecipeMead        RecipeType = "mead"
	RecipeWine        RecipeType = "wine"
	RecipeOther       RecipeType = "other"
)

// String returns the string representation of the recipe type.
func (t RecipeType) String() string {
	return string(t)
}

// IsValid checks whether the recipe type is a known value.
func (t RecipeType) IsValid() bool {
	switch t {
	case RecipeAllGrain, RecipePartialMash, RecipeExtract, RecipeCider,
		RecipeKombucha, RecipeSoda, RecipeMead, RecipeWine, RecipeOther:
		return true
	}
	return false
}

// IBUMethod is the formula an IBU estimate was computed with.
type IBUMethod string

const (
	IBURager   IBUMethod = "Rager"
	IBUTinseth IBUMethod = "Tinseth"
	IBUGaretz  IBUMethod = "Garetz"
	IBUOther   IBUMethod = "Other"
)

// String returns the string representation of the method.
func (m IBUMethod) String() string {
	return string(m)
}

// IsValid checks whether the method is a known value.
func (m IBUMethod) IsValid() bool {
	switch m {
	case IBURager, IBUTinseth, IBUGaretz, IBUOther:
		return true
	}
	return false
}

// AdditionUse is the process stage an ingredient addition goes into.
type AdditionUse string

const (
	UseMash         AdditionUse = "add_to_mash"
	UseBoil         AdditionUse = "add_to_boil"
	UseFermentation AdditionUse = "add_to_fermentation"
	UsePackage      AdditionUse = "add_to_package"
)

// String returns the string representation of the use.
func (u AdditionUse) String() string {
	return string(u)
}

// IsValid checks whether the use is a known value.
func (u AdditionUse) IsValid() bool {
	switch u {
	case UseMash, UseBoil, UseFermentation, UsePackage:
		return true
	}
	return false
}

// Recipe is a composite record: scalar attributes plus a referenced
// style and mash and owned ingredient additions. Batch size is liters,
// gravities are specific gravity, carbonation is volumes of CO2.
type Recipe struct {
	Meta
	Type                RecipeType `json:"type,omitempty"`
	Author              string     `json:"author,omitempty"`
	Coauthor            string     `json:"coauthor,omitempty"`
	Created             time.Time  `json:"created,omitzero"`
	BatchSize           *float64   `json:"batch_size,omitempty"`
	EfficiencyBrewhouse *float64   `json:"efficiency_brewhouse,omitempty"`
	EfficiencyMash      *float64   `json:"efficiency_mash,omitempty"`
	StyleID             int64      `json:"style_id,omitempty"`
	MashID              int64      `json:"mash_id,omitempty"`
	OG                  *float64   `json:"original_gravity,omitempty"`
	FG                  *float64   `json:"final_gravity,omitempty"`
	IBUMethod           IBUMethod  `json:"ibu_method,omitempty"`
	Carbonation         *float64   `json:"carbonation,omitempty"`
	Notes               string     `json:"notes,omitempty"`
}

// NewRecipe builds a recipe from a decoded document bundle. The style
// and mash references arrive later, wired through the property surface
// once those records are stored.
func NewRecipe(b Bundle) *Recipe {
	r := &Recipe{
		Type:                RecipeType(bundleString(b, "type")),
		Author:              bundleString(b, "author"),
		Coauthor:            bundleString(b, "coauthor"),
		Created:             bundleTime(b, "created"),
		BatchSize:           bundleFloat(b, "batch_size"),
		EfficiencyBrewhouse: bundleFloat(b, "efficiency_brewhouse"),
		EfficiencyMash:      bundleFloat(b, "efficiency_mash"),
		OG:                  bundleFloat(b, "original_gravity"),
		FG:                  bundleFloat(b, "final_gravity"),
		IBUMethod:           IBUMethod(bundleString(b, "ibu_method")),
		Carbonation:         bundleFloat(b, "carbonation"),
		Notes:               bundleString(b, "notes"),
	}
	r.Name = bundleString(b, "name")
	return r
}

func (r *Recipe) EntityType() string {
	return TypeRecipe
}

func (r *Recipe) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(r.Name), true
	case "type":
		return getString(string(r.Type)), true
	case "author":
		return getString(r.Author), true
	case "coauthor":
		return getString(r.Coauthor), true
	case "created":
		return getTime(r.Created), true
	case "batch_size":
		return getFloat(r.BatchSize), true
	case "efficiency_brewhouse":
		return getFloat(r.EfficiencyBrewhouse), true
	case "efficiency_mash":
		return getFloat(r.EfficiencyMash), true
	case "style":
		return getRef(r.StyleID), true
	case "mash":
		return getRef(r.MashID), true
	case "original_gravity":
		return getFloat(r.OG), true
	case "final_gravity":
		return getFloat(r.FG), true
	case "ibu_method":
		return getString(string(r.IBUMethod)), true
	case "carbonation":
		return getFloat(r.Carbonation), true
	case "notes":
		return getString(r.Notes), true
	}
	return nil, false
}

func (r *Recipe) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&r.Name, value)
	case "type":
		return setEnum(&r.Type, value)
	case "author":
		return setString(&r.Author, value)
	case "coauthor":
		return setString(&r.Coauthor, value)
	case "created":
		return setTime(&r.Created, value)
	case "batch_size":
		return setFloat(&r.BatchSize, value)
	case "efficiency_brewhouse":
		return setFloat(&r.EfficiencyBrewhouse, value)
	case "efficiency_mash":
		return setFloat(&r.EfficiencyMash, value)
	case "style":
		return setRef(&r.StyleID, value)
	case "mash":
		return setRef(&r.MashID, value)
	case "original_gravity":
		return setFloat(&r.OG, value)
	case "final_gravity":
		return setFloat(&r.FG, value)
	case "ibu_method":
		return setEnum(&r.IBUMethod, value)
	case "carbonation":
		return setFloat(&r.Carbonation, value)
	case "notes":
		return setString(&r.Notes, value)
	}
	return false
}

func (r *Recipe) CanSet(property string) bool {
	_, ok := r.Get(property)
	return ok
}

// EquivalentTo reports whether other describes the same recipe. The
// style and mash references take part, so a meaningful comparison is
// only possible after the recipe's subtree has been stored and wired.
func (r *Recipe) EquivalentTo(other Entity) bool {
	o, ok := other.(*Recipe)
	if !ok {
		return false
	}
	return sameName(r.Name, o.Name) &&
		r.Type == o.Type &&
		r.Author == o.Author &&
		eqFloat(r.BatchSize, o.BatchSize) &&
		r.StyleID == o.StyleID &&
		r.MashID == o.MashID &&
		eqFloat(r.OG, o.OG) &&
		eqFloat(r.FG, o.FG)
}

// FermentableAddition is a fermentable charge in a recipe, owned by the
// recipe. The amount is a mass or a volume; the timing offset is
// minutes into the stage.
type FermentableAddition struct {
	Meta
	RecipeID   int64           `json:"recipe_id,omitempty"`
	Type       FermentableType `json:"type,omitempty"`
	Origin     string          `json:"origin,omitempty"`
	Amount     *measure.Amount `json:"amount,omitempty"`
	Use        AdditionUse     `json:"use,omitempty"`
	TimingTime *float64        `json:"timing_time,omitempty"`
}

// NewFermentableAddition builds a fermentable addition from a decoded
// document bundle.
func NewFermentableAddition(b Bundle) *FermentableAddition {
	a := &FermentableAddition{
		Type:       FermentableType(bundleString(b, "type")),
		Origin:     bundleString(b, "origin"),
		Amount:     bundleAmount(b, "amount"),
		Use:        AdditionUse(bundleString(b, "use")),
		TimingTime: bundleFloat(b, "timing_time"),
	}
	a.Name = bundleString(b, "name")
	return a
}

func (a *FermentableAddition) EntityType() string {
	return TypeFermentableAddition
}

// SetOwner attaches the addition to its recipe before it is stored.
func (a *FermentableAddition) SetOwner(owner Entity) {
	a.RecipeID = owner.GetID()
}

func (a *FermentableAddition) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(a.Name), true
	case "recipe_id":
		return getRef(a.RecipeID), true
	case "type":
		return getString(string(a.Type)), true
	case "origin":
		return getString(a.Origin), true
	case "amount":
		return getAmount(a.Amount), true
	case "use":
		return getString(string(a.Use)), true
	case "timing_time":
		return getFloat(a.TimingTime), true
	}
	return nil, false
}

func (a *FermentableAddition) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&a.Name, value)
	case "recipe_id":
		return setRef(&a.RecipeID, value)
	case "type":
		return setEnum(&a.Type, value)
	case "origin":
		return setString(&a.Origin, value)
	case "amount":
		return setAmount(&a.Amount, value)
	case "use":
		return setEnum(&a.Use, value)
	case "timing_time":
		return setFloat(&a.TimingTime, value)
	}
	return false
}

func (a *FermentableAddition) CanSet(property string) bool {
	_, ok := a.Get(property)
	return ok
}

func (a *FermentableAddition) EquivalentTo(other Entity) bool {
	o, ok := other.(*FermentableAddition)
	if !ok {
		return false
	}
	return sameName(a.Name, o.Name) &&
		a.Type == o.Type &&
		eqAmount(a.Amount, o.Amount)
}

// HopAddition is a hop charge in a recipe, owned by the recipe.
type HopAddition struct {
	Meta
	RecipeID       int64           `json:"recipe_id,omitempty"`
	Origin         string          `json:"origin,omitempty"`
	Form           HopForm         `json:"form,omitempty"`
	AlphaAcid      *float64        `json:"alpha_acid,omitempty"`
	Amount         *measure.Amount `json:"amount,omitempty"`
	Use            AdditionUse     `json:"use,omitempty"`
	TimingTime     *float64        `json:"timing_time,omitempty"`
	TimingDuration *float64        `json:"timing_duration,omitempty"`
}

// NewHopAddition builds a hop addition from a decoded document bundle.
func NewHopAddition(b Bundle) *HopAddition {
	a := &HopAddition{
		Origin:         bundleString(b, "origin"),
		Form:           HopForm(bundleString(b, "form")),
		AlphaAcid:      bundleFloat(b, "alpha_acid"),
		Amount:         bundleAmount(b, "amount"),
		Use:            AdditionUse(bundleString(b, "use")),
		TimingTime:     bundleFloat(b, "timing_time"),
		TimingDuration: bundleFloat(b, "timing_duration"),
	}
	a.Name = bundleString(b, "name")
	return a
}

func (a *HopAddition) EntityType() string {
	return TypeHopAddition
}

// SetOwner attaches the addition to its recipe before it is stored.
func (a *HopAddition) SetOwner(owner Entity) {
	a.RecipeID = owner.GetID()
}

func (a *HopAddition) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(a.Name), true
	case "recipe_id":
		return getRef(a.RecipeID), true
	case "origin":
		return getString(a.Origin), true
	case "form":
		return getString(string(a.Form)), true
	case "alpha_acid":
		return getFloat(a.AlphaAcid), true
	case "amount":
		return getAmount(a.Amount), true
	case "use":
		return getString(string(a.Use)), true
	case "timing_time":
		return getFloat(a.TimingTime), true
	case "timing_duration":
		return getFloat(a.TimingDuration), true
	}
	return nil, false
}

func (a *HopAddition) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&a.Name, value)
	case "recipe_id":
		return setRef(&a.RecipeID, value)
	case "origin":
		return setString(&a.Origin, value)
	case "form":
		return setEnum(&a.Form, value)
	case "alpha_acid":
		return setFloat(&a.AlphaAcid, value)
	case "amount":
		return setAmount(&a.Amount, value)
	case "use":
		return setEnum(&a.Use, value)
	case "timing_time":
		return setFloat(&a.TimingTime, value)
	case "timing_duration":
		return setFloat(&a.TimingDuration, value)
	}
	return false
}

func (a *HopAddition) CanSet(property string) bool {
	_, ok := a.Get(property)
	return ok
}

func (a *HopAddition) EquivalentTo(other Entity) bool {
	o, ok := other.(*HopAddition)
	if !ok {
		return false
	}
	return sameName(a.Name, o.Name) &&
		a.Use == o.Use &&
		eqAmount(a.Amount, o.Amount) &&
		eqFloat(a.TimingTime, o.TimingTime)
}

// CultureAddition is a culture pitch in a recipe, owned by the recipe.
// The amount may be a mass, a volume, or a pack count.
type CultureAddition struct {
	Meta
	RecipeID   int64           `json:"recipe_id,omitempty"`
	Type       CultureType     `json:"type,omitempty"`
	Form       CultureForm     `json:"form,omitempty"`
	Amount     *measure.Amount `json:"amount,omitempty"`
	Use        AdditionUse     `json:"use,omitempty"`
	TimingTime *float64        `json:"timing_time,omitempty"`
}

// NewCultureAddition builds a culture addition from a decoded document
// bundle.
func NewCultureAddition(b Bundle) *CultureAddition {
	a := &CultureAddition{
		Type:       CultureType(bundleString(b, "type")),
		Form:       CultureForm(bundleString(b, "form")),
		Amount:     bundleAmount(b, "amount"),
		Use:        AdditionUse(bundleString(b, "use")),
		TimingTime: bundleFloat(b, "timing_time"),
	}
	a.Name = bundleString(b, "name")
	return a
}

func (a *CultureAddition) EntityType() string {
	return TypeCultureAddition
}

// SetOwner attaches the addition to its recipe before it is stored.
func (a *CultureAddition) SetOwner(owner Entity) {
	a.RecipeID = owner.GetID()
}

func (a *CultureAddition) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(a.Name), true
	case "recipe_id":
		return getRef(a.RecipeID), true
	case "type":
		return getString(string(a.Type)), true
	case "form":
		return getString(string(a.Form)), true
	case "amount":
		return getAmount(a.Amount), true
	case "use":
		return getString(string(a.Use)), true
	case "timing_time":
		return getFloat(a.TimingTime), true
	}
	return nil, false
}

func (a *CultureAddition) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&a.Name, value)
	case "recipe_id":
		return setRef(&a.RecipeID, value)
	case "type":
		return setEnum(&a.Type, value)
	case "form":
		return setEnum(&a.Form, value)
	case "amount":
		return setAmount(&a.Amount, value)
	case "use":
		return setEnum(&a.Use, value)
	case "timing_time":
		return setFloat(&a.TimingTime, value)
	}
	return false
}

func (a *CultureAddition) CanSet(property string) bool {
	_, ok := a.Get(property)
	return ok
}

func (a *CultureAddition) EquivalentTo(other Entity) bool {
	o, ok := other.(*CultureAddition)
	if !ok {
		return false
	}
	return sameName(a.Name, o.Name) &&
		a.Type == o.Type &&
		eqAmount(a.Amount, o.Amount)
}

// MiscAddition is a miscellaneous ingredient charge in a recipe, owned
// by the recipe. The amount may be a mass, a volume, or a unit count.
type MiscAddition struct {
	Meta
	RecipeID       int64           `json:"recipe_id,omitempty"`
	Type           MiscType        `json:"type,omitempty"`
	Amount         *measure.Amount `json:"amount,omitempty"`
	Use            AdditionUse     `json:"use,omitempty"`
	TimingTime     *float64        `json:"timing_time,omitempty"`
	TimingDuration *float64        `json:"timing_duration,omitempty"`
}

// NewMiscAddition builds a miscellaneous addition from a decoded
// document bundle.
func NewMiscAddition(b Bundle) *MiscAddition {
	a := &MiscAddition{
		Type:           MiscType(bundleString(b, "type")),
		Amount:         bundleAmount(b, "amount"),
		Use:            AdditionUse(bundleString(b, "use")),
		TimingTime:     bundleFloat(b, "timing_time"),
		TimingDuration: bundleFloat(b, "timing_duration"),
	}
	a.Name = bundleString(b, "name")
	return a
}

func (a *MiscAddition) EntityType() string {
	return TypeMiscAddition
}

// SetOwner attaches the addition to its recipe before it is stored.
func (a *MiscAddition) SetOwner(owner Entity) {
	a.RecipeID = owner.GetID()
}

func (a *MiscAddition) Get(property string) (any, bool) {
	switch property {
	case "name":
		return getString(a.Name), true
	case "recipe_id":
		return getRef(a.RecipeID), true
	case "type":
		return getString(string(a.Type)), true
	case "amount":
		return getAmount(a.Amount), true
	case "use":
		return getString(string(a.Use)), true
	case "timing_time":
		return getFloat(a.TimingTime), true
	case "timing_duration":
		return getFloat(a.TimingDuration), true
	}
	return nil, false
}

func (a *MiscAddition) Set(property string, value any) bool {
	switch property {
	case "name":
		return setString(&a.Name, value)
	case "recipe_id":
		return setRef(&a.RecipeID, value)
	case "type":
		return setEnum(&a.Type, value)
	case "amount":
		return setAmount(&a.Amount, value)
	case "use":
		return setEnum(&a.Use, value)
	case "timing_time":
		return setFloat(&a.TimingTime, value)
	case "timing_duration":
		return setFloat(&a.TimingDuration, value)
	}
	return false
}

func (a *MiscAddition) CanSet(property string) bool {
	_, ok := a.Get(property)
	return ok
}

func (a *MiscAddition) EquivalentTo(other Entity) bool {
	o, ok := other.(*MiscAddition)
	if !ok {
		return false
	}
	return sameName(a.Name, o.Name) &&
		a.Type == o.Type &&
		eqAmount(a.Amount, o.Amount)
}
