// Package wire defines the tagged-tuple format the compiler emits. Every
// statement and expression is a JSON array whose first element is an Opcode.
package wire

// Opcode tags a wire tuple. Statements and expressions share one space.
type Opcode int

// Statement opcodes
const (
	OpAppend                Opcode = 1
	OpTrustingAppend        Opcode = 2
	OpComment               Opcode = 3
	OpModifier              Opcode = 4
	OpBlock                 Opcode = 6
	OpComponent             Opcode = 8
	OpOpenElement           Opcode = 10
	OpOpenElementWithSplat  Opcode = 11
	OpFlushElement          Opcode = 12
	OpCloseElement          Opcode = 13
	OpStaticAttr            Opcode = 14
	OpDynamicAttr           Opcode = 15
	OpComponentAttr         Opcode = 16
	OpAttrSplat             Opcode = 17
	OpYield                 Opcode = 18
	OpPartial               Opcode = 19
	OpTrustingDynamicAttr   Opcode = 22
	OpTrustingComponentAttr Opcode = 23
	OpStaticComponentAttr   Opcode = 24
	OpDebugger              Opcode = 26
)

// Expression opcodes
const (
	OpUndefined                                    Opcode = 27
	OpCall                                         Opcode = 28
	OpConcat                                       Opcode = 29
	OpGetSymbol                                    Opcode = 30
	OpGetStrictFree                                Opcode = 31
	OpGetFreeAsFallback                            Opcode = 33
	OpGetFreeAsComponentOrHelperHeadOrThisFallback Opcode = 34
	OpGetFreeAsComponentOrHelperHead               Opcode = 35
	OpGetFreeAsHelperHeadOrThisFallback            Opcode = 36
	OpGetFreeAsHelperHead                          Opcode = 37
	OpGetFreeAsModifierHead                        Opcode = 38
	OpGetFreeAsComponentHead                       Opcode = 39
)

// Keyword opcodes
const (
	OpInElement       Opcode = 40
	OpIf              Opcode = 41
	OpEach            Opcode = 42
	OpLet             Opcode = 44
	OpWithDynamicVars Opcode = 45
	OpInvokeComponent Opcode = 46
	OpHasBlock        Opcode = 48
	OpHasBlockParams  Opcode = 49
	OpCurry           Opcode = 50
	OpNot             Opcode = 51
	OpIfInline        Opcode = 52
	OpGetDynamicVar   Opcode = 53
	OpLog             Opcode = 54
)

var opcodeNames = map[Opcode]string{
	OpAppend:                                       "Append",
	OpTrustingAppend:                               "TrustingAppend",
	OpComment:                                      "Comment",
	OpModifier:                                     "Modifier",
	OpBlock:                                        "Block",
	OpComponent:                                    "Component",
	OpOpenElement:                                  "OpenElement",
	OpOpenElementWithSplat:                         "OpenElementWithSplat",
	OpFlushElement:                                 "FlushElement",
	OpCloseElement:                                 "CloseElement",
	OpStaticAttr:                                   "StaticAttr",
	OpDynamicAttr:                                  "DynamicAttr",
	OpComponentAttr:                                "ComponentAttr",
	OpAttrSplat:                                    "AttrSplat",
	OpYield:                                        "Yield",
	OpPartial:                                      "Partial",
	OpTrustingDynamicAttr:                          "TrustingDynamicAttr",
	OpTrustingComponentAttr:                        "TrustingComponentAttr",
	OpStaticComponentAttr:                          "StaticComponentAttr",
	OpDebugger:                                     "Debugger",
	OpUndefined:                                    "Undefined",
	OpCall:                                         "Call",
	OpConcat:                                       "Concat",
	OpGetSymbol:                                    "GetSymbol",
	OpGetStrictFree:                                "GetStrictFree",
	OpGetFreeAsFallback:                            "GetFreeAsFallback",
	OpGetFreeAsComponentOrHelperHeadOrThisFallback: "GetFreeAsComponentOrHelperHeadOrThisFallback",
	OpGetFreeAsComponentOrHelperHead:               "GetFreeAsComponentOrHelperHead",
	OpGetFreeAsHelperHeadOrThisFallback:            "GetFreeAsHelperHeadOrThisFallback",
	OpGetFreeAsHelperHead:                          "GetFreeAsHelperHead",
	OpGetFreeAsModifierHead:                        "GetFreeAsModifierHead",
	OpGetFreeAsComponentHead:                       "GetFreeAsComponentHead",
	OpInElement:                                    "InElement",
	OpIf:                                           "If",
	OpEach:                                         "Each",
	OpLet:                                          "Let",
	OpWithDynamicVars:                              "WithDynamicVars",
	OpInvokeComponent:                              "InvokeComponent",
	OpHasBlock:                                     "HasBlock",
	OpHasBlockParams:                               "HasBlockParams",
	OpCurry:                                        "Curry",
	OpNot:                                          "Not",
	OpIfInline:                                     "IfInline",
	OpGetDynamicVar:                                "GetDynamicVar",
	OpLog:                                          "Log",
}

// String returns the opcode name
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return "Unknown"
}

// IsFreeLookup reports whether the opcode reads a free variable by upvar index
func (o Opcode) IsFreeLookup() bool {
	return o == OpGetStrictFree || (o >= OpGetFreeAsFallback && o <= OpGetFreeAsComponentHead)
}
