// Package model defines the target object model produced by the converter:
// enumerations, structs, behavioral (marker) interfaces and classes.
//
// Every entity renders itself to TypeScript source through Definition. The
// output is deterministic and performs no validation; all checks happen in
// the converter. A TypeSystem keeps the entities in emission order and
// answers lookups by name.
//
// # Rendering
//
//	ts := model.NewTypeSystem(
//		&model.Struct{Name: "ShiptoElements", Properties: []model.Property{
//			{Name: "name", TypeName: "string"},
//		}},
//	)
//	for _, t := range ts.Types() {
//		fmt.Println(t.Definition())
//	}
//
// The renderer package assembles complete files from these definitions.
package model
