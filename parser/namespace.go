package parser

import (
	"encoding/xml"
	"strings"
)

const (
	// DefaultXSDNamespace is the namespace URI of XML Schema 1.0.
	DefaultXSDNamespace = "http://www.w3.org/2001/XMLSchema"

	// xsPrefix is the prefix every XSD-namespaced QName is normalized to.
	xsPrefix = "xs"

	// conventionalTargetPrefix is stripped even when not declared.
	conventionalTargetPrefix = "tns"

	xmlnsPrefix = "xmlns"
)

// namespaces normalizes QName-valued attributes (type, base, ref).
// Names in the XSD namespace become "xs:<local>"; names in the target
// namespace lose their prefix.
type namespaces struct {
	// xsdPrefix is the prefix bound to the XSD namespace; empty when the XSD
	// namespace is the default namespace.
	xsdPrefix      string
	targetPrefixes map[string]bool
	targetDefault  bool
}

// detectNamespaces inspects the namespace declarations of the schema root.
// When no declaration binds xsdNamespace, the conventional "xs" prefix is assumed.
func detectNamespaces(attrs []xml.Attr, xsdNamespace, targetNamespace string) namespaces {
	ns := namespaces{
		xsdPrefix:      xsPrefix,
		targetPrefixes: map[string]bool{conventionalTargetPrefix: true},
	}
	foundXSD := false
	for _, a := range attrs {
		switch {
		case a.Name.Space == xmlnsPrefix:
			if a.Value == xsdNamespace && !foundXSD {
				ns.xsdPrefix = a.Name.Local
				foundXSD = true
			}
			if targetNamespace != "" && a.Value == targetNamespace {
				ns.targetPrefixes[a.Name.Local] = true
			}
		case a.Name.Space == "" && a.Name.Local == xmlnsPrefix:
			if a.Value == xsdNamespace && !foundXSD {
				ns.xsdPrefix = ""
				foundXSD = true
			}
			if targetNamespace != "" && a.Value == targetNamespace {
				ns.targetDefault = true
			}
		}
	}
	return ns
}

// qname normalizes a QName attribute value.
func (ns namespaces) qname(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return ""
	}
	prefix, local, ok := strings.Cut(v, ":")
	if !ok {
		if ns.xsdPrefix == "" && !ns.targetDefault {
			return xsPrefix + ":" + v
		}
		return v
	}
	if prefix == ns.xsdPrefix {
		return xsPrefix + ":" + local
	}
	if ns.targetPrefixes[prefix] {
		return local
	}
	return v
}

// localName returns the part of a QName after its prefix.
func localName(v string) string {
	if _, local, ok := strings.Cut(v, ":"); ok {
		return local
	}
	return v
}
