// Package console serializes a metric graph into the CloudWatch console's
// deep-link fragment syntax: a flattened, order-sensitive token sequence
// delimited by tildes and parentheses, percent-encoded with '*' as the
// escape character.
package console

import "strings"

// item is one token of the console's tilde query grammar.
type item interface {
	writeQuery(b *strings.Builder)
}

// typeStatement is a bare token emitted immediately after an opening
// parenthesis, e.g. "metrics" or "expression".
type typeStatement string

func (t typeStatement) writeQuery(b *strings.Builder) {
	b.WriteString(string(t))
}

// attribute is a token prefixed with "~". The console uses it both for
// keys ("~label") and for bare boolean or numeric values ("~false", "~300").
type attribute string

func (a attribute) writeQuery(b *strings.Builder) {
	b.WriteByte('~')
	b.WriteString(string(a))
}

// value is a quoted string token, prefixed with "~'".
type value string

func (v value) writeQuery(b *strings.Builder) {
	b.WriteString("~'")
	b.WriteString(string(v))
}

// clause is an ordered group of items rendered as "~(...)". Items carry
// their own leading delimiters, so they concatenate with no separator.
type clause struct {
	items []item
}

func (c *clause) push(items ...item) {
	c.items = append(c.items, items...)
}

func (c *clause) writeQuery(b *strings.Builder) {
	b.WriteString("~(")
	for _, it := range c.items {
		it.writeQuery(b)
	}
	b.WriteByte(')')
}

// String renders the clause as an unescaped query string.
func (c *clause) String() string {
	var b strings.Builder
	c.writeQuery(&b)
	return b.String()
}
