package mapping

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Coding is the registry for one document dialect: its record definitions,
// its schema validator, and the import/export entry points. The definition
// set is fixed at construction, so lookup failures are programming errors
// and panic.
type Coding struct {
	name      string
	validator Validator
	byName    map[string]*RecordDefinition
	byEntity  map[string]*RecordDefinition
	root      *RecordDefinition
}

// NewCoding registers the definitions for one dialect. Exactly one
// definition must have an empty entity type; it is the root container the
// whole document maps through. When several definitions share an entity
// type, the first registered one governs single-entity export. A nil
// validator skips schema validation on import.
func NewCoding(name string, validator Validator, defs ...*RecordDefinition) *Coding {
	c := &Coding{
		name:      name,
		validator: validator,
		byName:    make(map[string]*RecordDefinition, len(defs)),
		byEntity:  make(map[string]*RecordDefinition, len(defs)),
	}
	for _, d := range defs {
		if _, dup := c.byName[d.Name]; dup {
			panic(fmt.Sprintf("mapping: duplicate record definition %q", d.Name))
		}
		c.byName[d.Name] = d
		if d.EntityType == "" {
			if c.root != nil {
				panic(fmt.Sprintf("mapping: both %q and %q claim to be the root record", c.root.Name, d.Name))
			}
			c.root = d
			continue
		}
		if _, taken := c.byEntity[d.EntityType]; !taken {
			c.byEntity[d.EntityType] = d
		}
	}
	if c.root == nil {
		panic("mapping: coding has no root record definition")
	}
	return c
}

// Name identifies the dialect in user-facing messages, e.g. "BeerJSON 1.0".
func (c *Coding) Name() string {
	return c.name
}

// Definition resolves a record definition by name. Unknown names panic:
// the definition set is closed at construction.
func (c *Coding) Definition(name string) *RecordDefinition {
	d, ok := c.byName[name]
	if !ok {
		panic(fmt.Sprintf("mapping: no record definition %q in %s", name, c.name))
	}
	return d
}

// DefinitionForEntity resolves the definition governing an entity class,
// used when writing single entities. Unknown entity types panic.
func (c *Coding) DefinitionForEntity(entityType string) *RecordDefinition {
	d, ok := c.byEntity[entityType]
	if !ok {
		panic(fmt.Sprintf("mapping: no record definition for entity type %q in %s", entityType, c.name))
	}
	return d
}

// Root returns the container definition the document maps through.
func (c *Coding) Root() *RecordDefinition {
	return c.root
}

// ImportResult reports one ValidateAndStore run. Message is always set
// and is written for end users; Stats carries the per-entity-type tallies
// behind it.
type ImportResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	Stats   Stats  `json:"stats"`
}

// ValidateAndStore runs a whole document through the dialect: schema
// validation, decode, root record load, then normalise-and-store of the
// record tree. A document that validates but contains nothing to read
// counts as a failure so callers can tell the user nothing happened.
func (c *Coding) ValidateAndStore(ctx context.Context, s EntityStore, doc []byte) ImportResult {
	if c.validator != nil {
		if ok, problems := c.validator.Validate(doc); !ok {
			msg := fmt.Sprintf("document is not valid %s", c.name)
			if len(problems) > 0 {
				msg = fmt.Sprintf("%s: %s", msg, strings.Join(problems, "; "))
			}
			return ImportResult{Message: msg}
		}
	}

	var tree map[string]any
	if err := json.Unmarshal(doc, &tree); err != nil {
		return ImportResult{Message: fmt.Sprintf("document is not parseable JSON: %v", err)}
	}
	rootNode, ok := tree[c.root.Name].(map[string]any)
	if !ok {
		return ImportResult{Message: fmt.Sprintf("document has no %s object", c.root.Name)}
	}

	root := c.root.MakeRecord(c, rootNode)
	if err := root.Load(); err != nil {
		return ImportResult{Message: fmt.Sprintf("could not read document: %v", err)}
	}

	var stats Stats
	if res, err := root.NormaliseAndStore(ctx, s, nil, &stats); res == Failed {
		return ImportResult{Message: fmt.Sprintf("could not store document contents: %v", err), Stats: stats}
	}
	if stats.TotalStored()+stats.TotalSkipped() == 0 {
		return ImportResult{Message: "document contained nothing to import", Stats: stats}
	}
	return ImportResult{OK: true, Message: stats.Summary(), Stats: stats}
}

// WriteDocument exports the whole persistence layer as one document tree,
// ready for JSON marshalling.
func (c *Coding) WriteDocument(ctx context.Context, s EntityStore) (map[string]any, error) {
	rootNode, err := c.WriteRecord(ctx, s, c.root, nil)
	if err != nil {
		return nil, err
	}
	return map[string]any{c.root.Name: rootNode}, nil
}

// WriteEntityDocument exports one entity as a document fragment under its
// record definition, e.g. a single recipe with its nested style, mash and
// additions.
func (c *Coding) WriteEntityDocument(ctx context.Context, s EntityStore, e Entity) (map[string]any, error) {
	return c.WriteRecord(ctx, s, c.DefinitionForEntity(e.EntityType()), e)
}

// WriteRecord renders one entity (nil for the root container) through a
// definition: scalar fields are encoded from entity properties at their
// paths, intermediate objects appearing on demand; record and array fields
// are filled from the definition's enumerations, recursively. Unset
// properties and empty enumerations leave no trace in the output.
func (c *Coding) WriteRecord(ctx context.Context, s EntityStore, def *RecordDefinition, e Entity) (map[string]any, error) {
	out := map[string]any{}
	for i := range def.Fields {
		f := &def.Fields[i]
		switch f.Type {
		case FieldConstant:
			f.Path.SetIn(out, f.Constant)
		case FieldArray, FieldRecord:
			enumerate, ok := def.Enumerate[f.Path.String()]
			if !ok {
				panic(fmt.Sprintf("mapping: %s record has no enumeration for %s", def.Name, f.Path))
			}
			children, err := enumerate(ctx, s, e)
			if err != nil {
				return nil, fmt.Errorf("enumerating %s of %s: %w", f.Path, def.Name, err)
			}
			childDef := c.Definition(f.Path.String())
			if f.Type == FieldRecord {
				if len(children) == 0 || children[0] == nil {
					continue
				}
				node, err := c.WriteRecord(ctx, s, childDef, children[0])
				if err != nil {
					return nil, err
				}
				f.Path.SetIn(out, node)
				continue
			}
			if len(children) == 0 {
				continue
			}
			nodes := make([]any, 0, len(children))
			for _, child := range children {
				node, err := c.WriteRecord(ctx, s, childDef, child)
				if err != nil {
					return nil, err
				}
				nodes = append(nodes, node)
			}
			f.Path.SetIn(out, nodes)
		default:
			if e == nil || f.PropertyName == "" {
				continue
			}
			v, ok := e.Get(f.PropertyName)
			if !ok || v == nil {
				continue
			}
			encoded, err := encodeValue(f, v)
			if err != nil {
				return nil, fmt.Errorf("writing %s of %s %q: %w", f.Path, def.Name, e.GetName(), err)
			}
			if encoded == nil {
				continue
			}
			f.Path.SetIn(out, encoded)
		}
	}
	return out, nil
}
