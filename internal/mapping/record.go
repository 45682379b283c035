package mapping

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"time"

	"github.com/grainbill/brewdex/internal/measure"
)

// ProcessingResult is the outcome of normalising and storing one record.
type ProcessingResult int

const (
	// Succeeded: the record and all its children are stored.
	Succeeded ProcessingResult = iota
	// Failed: a hard error occurred; everything this record stored has
	// been rolled back.
	Failed
	// FoundDuplicate: an equivalent entity already existed; nothing new
	// remains stored and the record's entity now aliases the original.
	FoundDuplicate
)

func (p ProcessingResult) String() string {
	switch p {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case FoundDuplicate:
		return "found duplicate"
	}
	return fmt.Sprintf("ProcessingResult(%d)", int(p))
}

// Record is one live binding between a RecordDefinition and one node of a
// decoded document. Load pulls field values out of the node into a bundle
// and constructs the entity; NormaliseAndStore resolves duplicates and
// names and persists the entity and its children.
type Record struct {
	coding *Coding
	def    *RecordDefinition
	node   map[string]any

	bundle   Bundle
	entity   Entity
	children []childRecord
	stored   bool
}

// childRecord remembers which field a child was loaded under so the
// parent-side relationship can be wired after the child is stored.
type childRecord struct {
	field *FieldDefinition
	rec   *Record
}

// Entity returns the record's entity: nil before Load, the constructed
// entity after it, and the pre-existing original after a duplicate was
// found.
func (r *Record) Entity() Entity {
	return r.entity
}

// Load walks the definition's fields over the document node, decoding
// each present value into the bundle, recursing into child records, and
// finally constructing the entity when the bundle is non-empty. Absent
// fields are skipped; an undecodable value fails the load when the field
// feeds a property and is logged and dropped when it does not.
func (r *Record) Load() error {
	for i := range r.def.Fields {
		f := &r.def.Fields[i]
		raw, present := f.Path.LookupIn(r.node)
		if !present {
			continue
		}
		switch f.Type {
		case FieldConstant:
			// Structural, carries no information.
		case FieldArray:
			items, ok := raw.([]any)
			if !ok {
				return fmt.Errorf("%s record: field %s: %v is not an array", r.def.Name, f.Path.Pointer(), raw)
			}
			childDef := r.coding.Definition(f.Path.String())
			for idx, item := range items {
				obj, ok := item.(map[string]any)
				if !ok {
					return fmt.Errorf("%s record: field %s[%d]: %v is not an object", r.def.Name, f.Path.Pointer(), idx, item)
				}
				child := childDef.MakeRecord(r.coding, obj)
				if err := child.Load(); err != nil {
					return err
				}
				r.children = append(r.children, childRecord{field: f, rec: child})
			}
		case FieldRecord:
			obj, ok := raw.(map[string]any)
			if !ok {
				return fmt.Errorf("%s record: field %s: %v is not an object", r.def.Name, f.Path.Pointer(), raw)
			}
			childDef := r.coding.Definition(f.Path.String())
			child := childDef.MakeRecord(r.coding, obj)
			if err := child.Load(); err != nil {
				return err
			}
			r.children = append(r.children, childRecord{field: f, rec: child})
		default:
			value, err := decodeValue(f, raw)
			if err != nil {
				if f.PropertyName == "" {
					slog.Warn("dropping unreadable field",
						"record", r.def.Name, "field", f.Path.Pointer(), "error", err)
					continue
				}
				return fmt.Errorf("%s record: field %s: %w", r.def.Name, f.Path.Pointer(), err)
			}
			if f.PropertyName != "" {
				r.bundle[f.PropertyName] = value
			}
		}
	}
	if len(r.bundle) > 0 {
		if r.def.Construct == nil {
			return fmt.Errorf("%s record maps no entity but read %d values", r.def.Name, len(r.bundle))
		}
		e, err := r.def.Construct(r.bundle)
		if err != nil {
			return fmt.Errorf("%s record: %w", r.def.Name, err)
		}
		r.entity = e
	}
	return nil
}

// NormaliseAndStore persists the loaded record tree: the record's own
// entity first (after duplicate detection, name-clash resolution, and
// owner attachment), then every child in document order, then a late
// duplicate re-check for composite records. On failure or on a late
// duplicate everything this subtree stored is deleted again; the
// persistence layer removes owned children with their owner.
func (r *Record) NormaliseAndStore(ctx context.Context, s EntityStore, containing Entity, stats *Stats) (ProcessingResult, error) {
	if r.entity != nil {
		dup, err := s.FindEquivalent(ctx, r.entity)
		if err != nil {
			return Failed, fmt.Errorf("checking for duplicate %s %q: %w", r.entity.EntityType(), r.entity.GetName(), err)
		}
		if dup != nil {
			if r.def.IncludeInStats {
				stats.Skip(r.entity.EntityType())
			}
			r.entity = dup
			return FoundDuplicate, nil
		}
		if _, owned := r.entity.(Owned); !owned {
			if err := r.resolveNameClash(ctx, s); err != nil {
				return Failed, err
			}
		}
		if owned, ok := r.entity.(Owned); ok && containing != nil {
			owned.SetOwner(containing)
		}
		id, err := s.Insert(ctx, r.entity)
		if err != nil {
			return Failed, fmt.Errorf("storing %s %q: %w", r.entity.EntityType(), r.entity.GetName(), err)
		}
		if id <= 0 {
			return Failed, fmt.Errorf("storing %s %q: store returned id %d", r.entity.EntityType(), r.entity.GetName(), id)
		}
		r.entity.SetID(id)
		r.stored = true
	}

	if res, err := r.storeChildren(ctx, s, stats); res == Failed {
		r.rollback(ctx, s)
		return Failed, err
	}

	if r.entity != nil && r.def.LateDuplicateCheck {
		dup, err := s.FindEquivalent(ctx, r.entity)
		if err != nil {
			r.rollback(ctx, s)
			return Failed, fmt.Errorf("re-checking for duplicate %s %q: %w", r.entity.EntityType(), r.entity.GetName(), err)
		}
		if dup != nil {
			r.rollback(ctx, s)
			if r.def.IncludeInStats {
				stats.Skip(r.entity.EntityType())
			}
			r.entity = dup
			return FoundDuplicate, nil
		}
	}

	if r.stored && r.def.IncludeInStats {
		stats.Store(r.entity.EntityType())
	}
	return Succeeded, nil
}

// storeChildren recurses into the children in load order. Children that
// map a parent property (FieldRecord) are wired onto the parent entity
// once stored, pointing at the original when the child turned out to be a
// duplicate; the parent row is then rewritten. Array children relate by
// ownership, attached at their own insert.
func (r *Record) storeChildren(ctx context.Context, s EntityStore, stats *Stats) (ProcessingResult, error) {
	wired := false
	for _, c := range r.children {
		res, err := c.rec.NormaliseAndStore(ctx, s, r.entity, stats)
		if res == Failed {
			return Failed, err
		}
		if r.entity == nil || c.field.PropertyName == "" || c.rec.entity == nil {
			continue
		}
		if !r.entity.CanSet(c.field.PropertyName) {
			continue
		}
		if !r.entity.Set(c.field.PropertyName, c.rec.entity) {
			slog.Warn("could not wire child onto parent",
				"parent", r.entity.EntityType(), "property", c.field.PropertyName,
				"child", c.rec.entity.EntityType())
			continue
		}
		wired = true
	}
	if wired && r.stored {
		if err := s.Update(ctx, r.entity); err != nil {
			return Failed, fmt.Errorf("rewriting %s %q: %w", r.entity.EntityType(), r.entity.GetName(), err)
		}
	}
	return Succeeded, nil
}

// rollback deletes everything this subtree stored, children first.
// Deletion is best-effort; a failed delete is logged, not propagated.
func (r *Record) rollback(ctx context.Context, s EntityStore) {
	for _, c := range r.children {
		c.rec.rollback(ctx, s)
	}
	if !r.stored {
		return
	}
	if err := s.Delete(ctx, r.entity.EntityType(), r.entity.GetID()); err != nil {
		slog.Warn("rollback delete failed",
			"entity", r.entity.EntityType(), "id", r.entity.GetID(), "error", err)
	}
	r.stored = false
}

var renameSuffix = regexp.MustCompile(`^(.*) \((\d+)\)$`)

// BaseName strips the numeric suffixes clash resolution appends, so that
// "Foo (2)" compares equal to "Foo". Entity equivalence checks use it to
// keep renamed copies recognisable as duplicates of their originals.
func BaseName(name string) string {
	for {
		m := renameSuffix.FindStringSubmatch(name)
		if m == nil {
			return name
		}
		name = m[1]
	}
}

// resolveNameClash renames the entity until no stored entity of the same
// type carries the name: "Foo" becomes "Foo (1)", "Foo (1)" becomes
// "Foo (2)", and so on.
func (r *Record) resolveNameClash(ctx context.Context, s EntityStore) error {
	name := r.entity.GetName()
	if name == "" {
		return nil
	}
	for {
		existing, err := s.FindByName(ctx, r.entity.EntityType(), name)
		if err != nil {
			return fmt.Errorf("checking name %q for %s: %w", name, r.entity.EntityType(), err)
		}
		if existing == nil {
			break
		}
		if m := renameSuffix.FindStringSubmatch(name); m != nil {
			n, _ := strconv.Atoi(m[2])
			name = fmt.Sprintf("%s (%d)", m[1], n+1)
		} else {
			name += " (1)"
		}
	}
	r.entity.SetName(name)
	return nil
}

// decodeValue converts one raw document value according to the field's
// type. Errors describe the raw value so callers can surface it.
func decodeValue(f *FieldDefinition, raw any) (any, error) {
	switch f.Type {
	case FieldBool:
		b, ok := raw.(bool)
		if !ok {
			return nil, fmt.Errorf("%v is not a boolean", raw)
		}
		return b, nil
	case FieldInt:
		n, ok := asFloat(raw)
		if !ok || n != math.Trunc(n) {
			return nil, fmt.Errorf("%v is not an integer", raw)
		}
		return int(n), nil
	case FieldUInt:
		n, ok := asFloat(raw)
		if !ok || n != math.Trunc(n) || n < 0 {
			return nil, fmt.Errorf("%v is not a non-negative integer", raw)
		}
		return int(n), nil
	case FieldDouble:
		n, ok := asFloat(raw)
		if !ok {
			return nil, fmt.Errorf("%v is not a number", raw)
		}
		return n, nil
	case FieldString:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%v is not a string", raw)
		}
		return s, nil
	case FieldEnum:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%v is not a string", raw)
		}
		internal, ok := f.Enum.Internal(s)
		if !ok {
			return nil, fmt.Errorf("unrecognised value %q", s)
		}
		return internal, nil
	case FieldDate:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%v is not a string", raw)
		}
		t, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, fmt.Errorf("%q is not a valid date", s)
		}
		return t, nil
	case FieldMeasurement:
		unitName, v, err := unitValue(raw)
		if err != nil {
			return nil, err
		}
		u, ok := f.Units.Unit(unitName)
		if !ok {
			return nil, fmt.Errorf("unrecognised %s unit %q", f.Units.Quantity(), unitName)
		}
		return u.ToCanonical(v), nil
	case FieldOneOfMeasurements:
		unitName, v, err := unitValue(raw)
		if err != nil {
			return nil, err
		}
		for _, m := range f.OneOf {
			if u, ok := m.Unit(unitName); ok {
				return measure.Amount{Quantity: m.Quantity(), Value: u.ToCanonical(v)}, nil
			}
		}
		return nil, fmt.Errorf("unrecognised unit %q", unitName)
	case FieldSingleUnit:
		unitName, v, err := unitValue(raw)
		if err != nil {
			return nil, err
		}
		if !f.Single.Accepts(unitName) {
			return nil, fmt.Errorf("unexpected unit %q (want %q)", unitName, f.Single.Preferred())
		}
		return v, nil
	}
	return nil, fmt.Errorf("unhandled field type %s", f.Type)
}

// unitValue pulls the unit name and numeric value out of a {unit, value}
// object.
func unitValue(raw any) (string, float64, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return "", 0, fmt.Errorf("%v is not a unit/value object", raw)
	}
	unitName, ok := obj["unit"].(string)
	if !ok {
		return "", 0, fmt.Errorf("%v has no unit", raw)
	}
	v, ok := asFloat(obj["value"])
	if !ok {
		return "", 0, fmt.Errorf("%v has no numeric value", raw)
	}
	return unitName, v, nil
}

// encodeValue converts one property value back to its document form, the
// inverse of decodeValue. A nil result with nil error means the value
// should be omitted.
func encodeValue(f *FieldDefinition, v any) (any, error) {
	switch f.Type {
	case FieldBool, FieldInt, FieldUInt, FieldDouble:
		return v, nil
	case FieldString:
		if s, ok := v.(string); ok && s == "" {
			return nil, nil
		}
		return v, nil
	case FieldEnum:
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("enum property holds %T, not string", v)
		}
		external, ok := f.Enum.External(s)
		if !ok {
			return nil, fmt.Errorf("no spelling for enum value %q", s)
		}
		return external, nil
	case FieldDate:
		t, ok := v.(time.Time)
		if !ok {
			return nil, fmt.Errorf("date property holds %T, not time.Time", v)
		}
		if t.IsZero() {
			return nil, nil
		}
		return t.Format(time.DateOnly), nil
	case FieldMeasurement:
		n, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("measurement property holds %T, not a number", v)
		}
		u := f.Units.Preferred()
		return map[string]any{"unit": u.Name, "value": u.FromCanonical(n)}, nil
	case FieldOneOfMeasurements:
		a, ok := v.(measure.Amount)
		if !ok {
			return nil, fmt.Errorf("amount property holds %T, not measure.Amount", v)
		}
		for _, m := range f.OneOf {
			if m.Quantity() == a.Quantity {
				u := m.Preferred()
				return map[string]any{"unit": u.Name, "value": u.FromCanonical(a.Value)}, nil
			}
		}
		return nil, fmt.Errorf("no unit mapping for %s amount", a.Quantity)
	case FieldSingleUnit:
		n, ok := asFloat(v)
		if !ok {
			return nil, fmt.Errorf("single-unit property holds %T, not a number", v)
		}
		return map[string]any{"unit": f.Single.Preferred(), "value": n}, nil
	}
	return nil, fmt.Errorf("unhandled field type %s", f.Type)
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
