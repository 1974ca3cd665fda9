package ml_parser

import (
	"strings"
)

// Namespace URIs for namespaced attributes
const (
	NamespaceXLink = "http://www.w3.org/1999/xlink"
	NamespaceXML   = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS = "http://www.w3.org/2000/xmlns/"
)

// attrNamespaces maps the attribute names the DOM creates with setAttributeNS
var attrNamespaces = map[string]string{
	"xlink:actuate": NamespaceXLink,
	"xlink:arcrole": NamespaceXLink,
	"xlink:href":    NamespaceXLink,
	"xlink:role":    NamespaceXLink,
	"xlink:show":    NamespaceXLink,
	"xlink:title":   NamespaceXLink,
	"xlink:type":    NamespaceXLink,
	"xml:base":      NamespaceXML,
	"xml:lang":      NamespaceXML,
	"xml:space":     NamespaceXML,
	"xmlns":         NamespaceXMLNS,
	"xmlns:xlink":   NamespaceXMLNS,
}

// SplitNsName splits a prefix:name attribute name into prefix and local name
func SplitNsName(attrName string) (string, string) {
	colonIndex := strings.IndexByte(attrName, ':')
	if colonIndex <= 0 {
		return "", attrName
	}
	return attrName[:colonIndex], attrName[colonIndex+1:]
}

// GetAttrNamespace returns the namespace URI for an attribute name, or "" for
// attributes in the null namespace
func GetAttrNamespace(attrName string) string {
	if ns, ok := attrNamespaces[attrName]; ok {
		return ns
	}
	prefix, _ := SplitNsName(attrName)
	switch prefix {
	case "xlink":
		return NamespaceXLink
	case "xml":
		return NamespaceXML
	case "xmlns":
		return NamespaceXMLNS
	}
	return ""
}

// IsNamedBlockTag checks if a tag name is a named block (`<:name>`)
func IsNamedBlockTag(tagName string) bool {
	return len(tagName) > 1 && tagName[0] == ':'
}

// NamedBlockName returns the block name of a named block tag
func NamedBlockName(tagName string) string {
	return strings.TrimPrefix(tagName, ":")
}

// SplitTagPath splits a component tag like `foo.bar.baz` into head and tail
func SplitTagPath(tagName string) (string, []string) {
	parts := strings.Split(tagName, ".")
	return parts[0], parts[1:]
}
