package mock

import "github.com/fwojciec/headmeta"

var _ headmeta.HeadDocument = (*Document)(nil)

// Node is an element of an in-memory Document.
type Node struct {
	Tag   string
	Attrs map[string]string
	Text  string
}

// Document is an in-memory headmeta.HeadDocument. Nodes are searched in
// slice order, which stands in for document order.
type Document struct {
	Nodes []Node
}

func (d *Document) First(tag string) *headmeta.Element {
	for _, n := range d.Nodes {
		if n.Tag == tag {
			return element(n)
		}
	}
	return nil
}

func (d *Document) FirstWithAttr(tag, attr, value string) *headmeta.Element {
	for _, n := range d.Nodes {
		if n.Tag != tag {
			continue
		}
		if v, ok := n.Attrs[attr]; ok && v == value {
			return element(n)
		}
	}
	return nil
}

func element(n Node) *headmeta.Element {
	attrs := make(map[string]string, len(n.Attrs))
	for k, v := range n.Attrs {
		attrs[k] = v
	}
	return &headmeta.Element{Attrs: attrs, Text: n.Text}
}

// Meta returns a meta Node with the given attribute pairs.
func Meta(pairs ...string) Node {
	attrs := make(map[string]string, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		attrs[pairs[i]] = pairs[i+1]
	}
	return Node{Tag: "meta", Attrs: attrs}
}
