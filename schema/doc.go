// Package schema defines the intermediate type graph produced by schema
// ingestion and consumed by conversion.
//
// A [Graph] is an ordered list of named [Type] values. Five kinds exist:
//
//   - [ValueType]: a primitive such as xs:string
//   - [SimpleType]: an alias of another simple or value type
//   - [EnumerationType]: a string restriction with a closed set of literals
//   - [ComplexType]: a named container with no tag identity of its own
//   - [ElementType]: a container serialized under its own tag
//
// Containers own [AttributeProperty] and [ElementProperty] values. An element
// property with more than one assignable type name models an xs:choice.
//
// # Patches
//
// Schemas found in the wild are often incomplete. A graph can be amended after
// ingestion by applying an ordered list of [Patch] values:
//
//	err := g.Apply(
//	    schema.AddTypePatch{Type: &schema.ElementType{Name: "cachedLDAPAuthorizationMap"}},
//	    schema.ExtendChoicePatch{
//	        TypeName:           "authorizationPlugin",
//	        PropertyName:       "map",
//	        AssignableTypeName: "cachedLDAPAuthorizationMap",
//	    },
//	)
//
// Each patch is validated before it mutates the graph. The first failing patch
// aborts the list; patches before it stay applied. A Graph is not safe for
// concurrent patching.
package schema
