// Package statement turns typed records and keys into parameterized SQL.
//
// A Mapper produces the text of a statement together with the values that
// must be bound to it. Values never appear in the SQL text itself, so record
// fields and lookup keys cannot change the structure of the executed statement.
// Placeholder syntax differs between drivers and is supplied as a Placeholder.
package statement

import (
	"strconv"
	"strings"
)

// Statement is SQL text plus the arguments bound to its placeholders, in order.
type Statement struct {
	SQL  string
	Args []any
}

// Mapper builds statements for a record type R identified by keys of type K.
type Mapper[R any, K any] interface {
	// Insert returns a single INSERT statement with one VALUES tuple per record.
	Insert(records ...R) Statement
	// Select returns a statement loading the record identified by key.
	Select(key K) Statement
}

// Placeholder renders the bind marker for the n-th argument (1-based).
type Placeholder func(n int) string

// Dollar renders PostgreSQL style markers: $1, $2, ...
func Dollar(n int) string {
	return "$" + strconv.Itoa(n)
}

// Question renders SQLite style markers: ?
func Question(int) string {
	return "?"
}

// Builder accumulates SQL text and bound arguments.
type Builder struct {
	sql         strings.Builder
	args        []any
	placeholder Placeholder
}

// NewBuilder starts a statement with the given SQL prefix.
func NewBuilder(prefix string, placeholder Placeholder) *Builder {
	b := &Builder{placeholder: placeholder}
	b.sql.WriteString(prefix)
	return b
}

// Push appends raw SQL text. It must never be used for values.
func (b *Builder) Push(sql string) *Builder {
	b.sql.WriteString(sql)
	return b
}

// Bind appends a placeholder and records v as its argument.
func (b *Builder) Bind(v any) *Builder {
	b.args = append(b.args, v)
	b.sql.WriteString(b.placeholder(len(b.args)))
	return b
}

// Build returns the accumulated statement.
func (b *Builder) Build() Statement {
	return Statement{SQL: b.sql.String(), Args: b.args}
}

// Tuple binds the columns of one VALUES row, separating them with commas.
type Tuple struct {
	b *Builder
	n int
}

// Bind appends v as the next column of the row.
func (t *Tuple) Bind(v any) *Tuple {
	if t.n > 0 {
		t.b.sql.WriteString(", ")
	}
	t.b.Bind(v)
	t.n++
	return t
}

// PushValues appends a VALUES clause with one parenthesized row per record.
// bind is called once per record and binds that record's columns in order.
// Nothing is appended when records is empty.
func PushValues[T any](b *Builder, records []T, bind func(row *Tuple, record T)) *Builder {
	if len(records) == 0 {
		return b
	}
	b.sql.WriteString(" VALUES ")
	for i, record := range records {
		if i > 0 {
			b.sql.WriteString(", ")
		}
		b.sql.WriteByte('(')
		bind(&Tuple{b: b}, record)
		b.sql.WriteByte(')')
	}
	return b
}
