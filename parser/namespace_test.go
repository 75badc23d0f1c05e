package parser

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
)

func xmlnsAttr(prefix, uri string) xml.Attr {
	if prefix == "" {
		return xml.Attr{Name: xml.Name{Local: "xmlns"}, Value: uri}
	}
	return xml.Attr{Name: xml.Name{Space: "xmlns", Local: prefix}, Value: uri}
}

func TestQName(t *testing.T) {
	const tns = "http://activemq.apache.org/schema/core"

	tests := []struct {
		name  string
		attrs []xml.Attr
		tns   string
		in    string
		want  string
	}{
		{
			name:  "xs prefix",
			attrs: []xml.Attr{xmlnsAttr("xs", DefaultXSDNamespace)},
			in:    "xs:string",
			want:  "xs:string",
		},
		{
			name:  "xsd prefix is normalized",
			attrs: []xml.Attr{xmlnsAttr("xsd", DefaultXSDNamespace)},
			in:    "xsd:decimal",
			want:  "xs:decimal",
		},
		{
			name:  "declared target prefix is stripped",
			attrs: []xml.Attr{xmlnsAttr("xs", DefaultXSDNamespace), xmlnsAttr("amq", tns)},
			tns:   tns,
			in:    "amq:queue",
			want:  "queue",
		},
		{
			name: "tns is stripped without a declaration",
			in:   "tns:queue",
			want: "queue",
		},
		{
			name:  "foreign prefix is kept",
			attrs: []xml.Attr{xmlnsAttr("xs", DefaultXSDNamespace)},
			in:    "spring:bean",
			want:  "spring:bean",
		},
		{
			name:  "unprefixed name with xsd as default namespace",
			attrs: []xml.Attr{xmlnsAttr("", DefaultXSDNamespace)},
			in:    "string",
			want:  "xs:string",
		},
		{
			name:  "unprefixed name with target as default namespace",
			attrs: []xml.Attr{xmlnsAttr("xs", DefaultXSDNamespace), xmlnsAttr("", tns)},
			tns:   tns,
			in:    "broker",
			want:  "broker",
		},
		{
			name: "blank",
			in:   "  ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ns := detectNamespaces(tt.attrs, DefaultXSDNamespace, tt.tns)
			assert.Equal(t, tt.want, ns.qname(tt.in))
		})
	}
}

func TestLocalName(t *testing.T) {
	assert.Equal(t, "queue", localName("tns:queue"))
	assert.Equal(t, "queue", localName("queue"))
}
