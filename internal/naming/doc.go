// Package naming provides the case conversions shared by the converter and
// the renderers.
//
// Schema names arrive in whatever style the schema author chose ("kahaDB",
// "journalDiskSyncStrategy", "DLQ", "openwire"). The converter capitalizes
// them into model type names, upper-cases enumeration literals into symbolic
// keys, and singularizes plural property names when naming synthesized choice
// interfaces. The Go renderer additionally needs exported identifiers.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
