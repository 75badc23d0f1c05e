// Package xmlnode is the serialization runtime of generated Go models.
//
// A generated class builds a [Node] describing its tag, namespace,
// attributes and child elements, and the node renders itself either as a
// complete document or as a fragment for nesting inside a parent:
//
//	n := xmlnode.New(xmlnode.Props{TagName: "queue", Namespace: ns}).
//		Attr("physicalName", "orders").
//		Attr("DLQ", false)
//	fmt.Println(n.ToXMLString())
//	// <?xml version="1.0" encoding="UTF-8" standalone="yes"?><queue xmlns="..." physicalName="orders" DLQ="false"/>
//
// # Values
//
// Nil values, including typed nil pointers and empty slices, are skipped.
// time.Time values are written in ISO-8601 UTC with millisecond precision.
// Nested values implementing [Marshaler] are rendered recursively. Slices of
// primitive values repeat the element tag; slices of nodes are concatenated.
//
// # Element Wrapping
//
// A child element is written under its wire name. When the nested node has
// no tag of its own, or its tag equals the wire name, it is rendered directly
// under the wire name. Otherwise the wire name wraps the nested fragment, which
// is how choice properties such as <destinations><queue/><topic/></destinations>
// are serialized.
package xmlnode
