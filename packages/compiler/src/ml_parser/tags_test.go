package ml_parser_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"hbsc-go/packages/compiler/src/ml_parser"
)

func TestGetAttrNamespace(t *testing.T) {
	tests := []struct {
		name string
		attr string
		want string
	}{
		{"should resolve xlink attributes", "xlink:href", ml_parser.NamespaceXLink},
		{"should resolve unknown xlink attributes by prefix", "xlink:custom", ml_parser.NamespaceXLink},
		{"should resolve xml attributes", "xml:lang", ml_parser.NamespaceXML},
		{"should resolve xmlns itself", "xmlns", ml_parser.NamespaceXMLNS},
		{"should resolve xmlns prefixes", "xmlns:svg", ml_parser.NamespaceXMLNS},
		{"should leave other attributes in the null namespace", "data-x", ""},
		{"should ignore a leading colon", ":foo", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ml_parser.GetAttrNamespace(tt.attr)); diff != "" {
				t.Errorf("GetAttrNamespace() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNamedBlockTags(t *testing.T) {
	t.Run("should detect named block tags", func(t *testing.T) {
		if !ml_parser.IsNamedBlockTag(":header") || ml_parser.IsNamedBlockTag(":") || ml_parser.IsNamedBlockTag("div") {
			t.Errorf("IsNamedBlockTag() misclassified a tag")
		}
		if got := ml_parser.NamedBlockName(":header"); got != "header" {
			t.Errorf("NamedBlockName() = %q, want header", got)
		}
	})

	t.Run("should split tag paths", func(t *testing.T) {
		head, tail := ml_parser.SplitTagPath("ui.button.icon")
		if head != "ui" {
			t.Errorf("SplitTagPath() head = %q, want ui", head)
		}
		if diff := cmp.Diff([]string{"button", "icon"}, tail); diff != "" {
			t.Errorf("SplitTagPath() tail mismatch (-want +got):\n%s", diff)
		}
	})
}
