package postgres

import (
	"database/sql"

	"github.com/grainbill/brewdex/internal/mapping"
	"github.com/grainbill/brewdex/internal/measure"
)

// scannable is the interface satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// dbColumns lists the SQL columns of a spec in declaration order, with
// amount columns expanded into their value/quantity pair.
func dbColumns(spec *tableSpec) []string {
	out := make([]string, 0, len(spec.columns)+1)
	for _, c := range spec.columns {
		if c.kind == colAmount {
			out = append(out, c.name+"_value", c.name+"_quantity")
			continue
		}
		out = append(out, c.name)
	}
	return out
}

// args pulls the column values out of an entity in dbColumns order.
// Unset properties come back nil and persist as NULL.
func args(e mapping.Entity, spec *tableSpec) []any {
	out := make([]any, 0, len(spec.columns)+1)
	for _, c := range spec.columns {
		v, _ := e.Get(c.property)
		if c.kind == colAmount {
			if v == nil {
				out = append(out, nil, nil)
				continue
			}
			a := v.(measure.Amount)
			out = append(out, a.Value, string(a.Quantity))
			continue
		}
		out = append(out, v)
	}
	return out
}

// scanEntity scans a single row into a fresh entity of the spec's type.
// The row must contain an id column followed by the columns in dbColumns
// order. NULL cells leave the matching property unset.
func scanEntity(row scannable, spec *tableSpec) (mapping.Entity, error) {
	var id int64
	cells := make([]any, 0, len(spec.columns)+2)
	cells = append(cells, &id)
	for _, c := range spec.columns {
		switch c.kind {
		case colFloat:
			cells = append(cells, new(sql.NullFloat64))
		case colInt, colRef:
			cells = append(cells, new(sql.NullInt64))
		case colBool:
			cells = append(cells, new(sql.NullBool))
		case colDate:
			cells = append(cells, new(sql.NullTime))
		case colAmount:
			cells = append(cells, new(sql.NullFloat64), new(sql.NullString))
		default:
			cells = append(cells, new(sql.NullString))
		}
	}
	if err := row.Scan(cells...); err != nil {
		return nil, err
	}

	e := spec.blank()
	e.SetID(id)
	i := 1
	for _, c := range spec.columns {
		switch c.kind {
		case colFloat:
			if v := cells[i].(*sql.NullFloat64); v.Valid {
				e.Set(c.property, v.Float64)
			}
			i++
		case colInt, colRef:
			if v := cells[i].(*sql.NullInt64); v.Valid {
				e.Set(c.property, v.Int64)
			}
			i++
		case colBool:
			if v := cells[i].(*sql.NullBool); v.Valid {
				e.Set(c.property, v.Bool)
			}
			i++
		case colDate:
			if v := cells[i].(*sql.NullTime); v.Valid {
				e.Set(c.property, v.Time)
			}
			i++
		case colAmount:
			val := cells[i].(*sql.NullFloat64)
			qty := cells[i+1].(*sql.NullString)
			if val.Valid && qty.Valid {
				e.Set(c.property, measure.Amount{Quantity: measure.Quantity(qty.String), Value: val.Float64})
			}
			i += 2
		default:
			if v := cells[i].(*sql.NullString); v.Valid {
				e.Set(c.property, v.String)
			}
			i++
		}
	}
	return e, nil
}

// scanEntities scans multiple rows into a slice of entities.
func scanEntities(rows *sql.Rows, spec *tableSpec) ([]mapping.Entity, error) {
	var out []mapping.Entity
	for rows.Next() {
		e, err := scanEntity(rows, spec)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
