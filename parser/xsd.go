package parser

import "encoding/xml"

// The xsd* types mirror the subset of XML Schema markup the parser reads.
// Fields are matched by local name, so any prefix bound to the XSD namespace
// decodes the same way.

type xsdSchema struct {
	XMLName         xml.Name
	TargetNamespace string     `xml:"targetNamespace,attr"`
	Attrs           []xml.Attr `xml:",any,attr"`

	SimpleTypes  []xsdSimpleType  `xml:"simpleType"`
	ComplexTypes []xsdComplexType `xml:"complexType"`
	Elements     []xsdElement     `xml:"element"`

	// Declarations below are reported and skipped.
	Attributes      []xsdAttribute `xml:"attribute"`
	Groups          []xsdNamed     `xml:"group"`
	AttributeGroups []xsdNamed     `xml:"attributeGroup"`
	Imports         []xsdNamed     `xml:"import"`
	Includes        []xsdNamed     `xml:"include"`
}

type xsdNamed struct {
	Name           string `xml:"name,attr"`
	Ref            string `xml:"ref,attr"`
	Namespace      string `xml:"namespace,attr"`
	SchemaLocation string `xml:"schemaLocation,attr"`
}

type xsdSimpleType struct {
	Name        string          `xml:"name,attr"`
	Restriction *xsdRestriction `xml:"restriction"`
	List        *xsdNamed       `xml:"list"`
	Union       *xsdNamed       `xml:"union"`
}

type xsdRestriction struct {
	Base         string     `xml:"base,attr"`
	Enumerations []xsdFacet `xml:"enumeration"`
}

type xsdFacet struct {
	Value string `xml:"value,attr"`
}

type xsdComplexType struct {
	Name string `xml:"name,attr"`
	// Type is not legal on a complexType but shows up in hand-written schemas.
	Type string `xml:"type,attr"`

	Attributes      []xsdAttribute `xml:"attribute"`
	AttributeGroups []xsdNamed     `xml:"attributeGroup"`
	Sequence        *xsdGroup      `xml:"sequence"`
	Choice          *xsdGroup      `xml:"choice"`
	All             *xsdGroup      `xml:"all"`
	Group           *xsdNamed      `xml:"group"`
	ComplexContent  *xsdDerivation `xml:"complexContent"`
	SimpleContent   *xsdDerivation `xml:"simpleContent"`
}

// hasModel reports whether the complex type declares any content model.
func (ct *xsdComplexType) hasModel() bool {
	return len(ct.Attributes) > 0 || len(ct.AttributeGroups) > 0 ||
		ct.Sequence != nil || ct.Choice != nil || ct.All != nil || ct.Group != nil
}

type xsdDerivation struct {
	Extension   *xsdNamedBase `xml:"extension"`
	Restriction *xsdNamedBase `xml:"restriction"`
}

type xsdNamedBase struct {
	Base string `xml:"base,attr"`
}

func (d *xsdDerivation) base() string {
	switch {
	case d.Extension != nil:
		return d.Extension.Base
	case d.Restriction != nil:
		return d.Restriction.Base
	}
	return ""
}

// xsdGroup is a sequence, choice or all compositor.
type xsdGroup struct {
	MinOccurs string       `xml:"minOccurs,attr"`
	MaxOccurs string       `xml:"maxOccurs,attr"`
	Elements  []xsdElement `xml:"element"`
	Choices   []xsdGroup   `xml:"choice"`
	Sequences []xsdGroup   `xml:"sequence"`
	Groups    []xsdNamed   `xml:"group"`
	Any       []xsdNamed   `xml:"any"`
}

type xsdElement struct {
	Name        string          `xml:"name,attr"`
	Type        string          `xml:"type,attr"`
	Ref         string          `xml:"ref,attr"`
	MinOccurs   string          `xml:"minOccurs,attr"`
	MaxOccurs   string          `xml:"maxOccurs,attr"`
	ComplexType *xsdComplexType `xml:"complexType"`
	SimpleType  *xsdSimpleType  `xml:"simpleType"`
}

type xsdAttribute struct {
	Name       string         `xml:"name,attr"`
	Type       string         `xml:"type,attr"`
	Ref        string         `xml:"ref,attr"`
	Use        string         `xml:"use,attr"`
	SimpleType *xsdSimpleType `xml:"simpleType"`
}
