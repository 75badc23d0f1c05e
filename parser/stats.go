package parser

import "github.com/erraggy/xsdmodel/schema"

// SchemaStats contains counts of the constructs in an ingested schema
type SchemaStats struct {
	SimpleTypeCount      int // Aliases of value types
	EnumerationCount     int // Enumeration simple types
	ComplexTypeCount     int // Named complex types
	ElementTypeCount     int // Top-level and hoisted element types
	HoistedElementCount  int // Anonymous element types hoisted to named ones
	AttributeCount       int // Attribute properties across all containers
	ElementPropertyCount int // Element properties across all containers
	ChoiceCount          int // Element properties with more than one assignable type
}

// GetSchemaStats returns statistics for a schema type graph.
// HoistedElementCount is only known at ingestion and is left zero.
func GetSchemaStats(g *schema.Graph) SchemaStats {
	var stats SchemaStats
	for _, t := range g.Types() {
		switch t := t.(type) {
		case *schema.SimpleType:
			stats.SimpleTypeCount++
		case *schema.EnumerationType:
			stats.EnumerationCount++
		case *schema.ComplexType:
			stats.ComplexTypeCount++
			countContent(&stats, &t.Content)
		case *schema.ElementType:
			stats.ElementTypeCount++
			countContent(&stats, &t.Content)
		}
	}
	return stats
}

func countContent(stats *SchemaStats, c *schema.Content) {
	stats.AttributeCount += len(c.Attributes)
	stats.ElementPropertyCount += len(c.Elements)
	for _, e := range c.Elements {
		if e.IsChoice() {
			stats.ChoiceCount++
		}
	}
}
