package compiler

import (
	"encoding/json"
	"fmt"

	"github.com/tliron/commonlog"

	"hbsc-go/packages/compiler/src/syntax"
	"hbsc-go/packages/compiler/src/template/pipeline"
	"hbsc-go/packages/compiler/src/template/pipeline/wire"
)

var log = commonlog.GetLogger("hbsc.compiler")

// DefaultModuleName is echoed when no module name is configured
const DefaultModuleName = "(unknown template module)"

// Meta is the metadata a template is compiled with
type Meta struct {
	ModuleName string `json:"moduleName,omitempty"`
}

// Options configures Precompile
type Options struct {
	Meta Meta
	// ID computes the template identity from the meta JSON followed by the
	// block JSON. An empty result is written as null. When nil, the function
	// set by SetTemplateIDFunc is used.
	ID                     func(source string) string
	Strict                 bool
	LexicalScope           []string
	CustomizeComponentName func(tag string) string
	Keywords               *pipeline.KeywordSet
}

func (o *Options) pipelineOptions() *pipeline.Options {
	return &pipeline.Options{
		Strict:                 o.Strict,
		LexicalScope:           o.LexicalScope,
		CustomizeComponentName: o.CustomizeComponentName,
		Keywords:               o.Keywords,
	}
}

func (o *Options) moduleName() string {
	if o.Meta.ModuleName == "" {
		return DefaultModuleName
	}
	return o.Meta.ModuleName
}

// TemplateJSON is the compiled template as handed to the runtime
type TemplateJSON struct {
	ID *string `json:"id" cbor:"id"`
	// Block is the JSON of the serialized template block
	Block      string `json:"block" cbor:"block"`
	ModuleName string `json:"moduleName" cbor:"moduleName"`
}

// PrecompileToBlock compiles template and returns the wire block together with
// its JSON text
func PrecompileToBlock(template *syntax.Template, options *Options) (*wire.SerializedTemplateBlock, []byte, error) {
	if options == nil {
		options = &Options{}
	}
	log.Debugf("compiling %s", options.moduleName())
	block, err := pipeline.Compile(template, options.pipelineOptions())
	if err != nil {
		return nil, nil, err
	}
	blockJSON, err := wire.Marshal(block)
	if err != nil {
		return nil, nil, fmt.Errorf("compiler: encode block: %w", err)
	}
	return block, blockJSON, nil
}

// PrecompileJSON compiles template into its TemplateJSON
func PrecompileJSON(template *syntax.Template, options *Options) (*TemplateJSON, error) {
	if options == nil {
		options = &Options{}
	}
	_, blockJSON, err := PrecompileToBlock(template, options)
	if err != nil {
		return nil, err
	}
	metaJSON, err := json.Marshal(options.Meta)
	if err != nil {
		return nil, fmt.Errorf("compiler: encode meta: %w", err)
	}
	result := &TemplateJSON{
		Block:      string(blockJSON),
		ModuleName: options.moduleName(),
	}
	idFunc := options.ID
	if idFunc == nil {
		idFunc = templateIDFunc()
	}
	if id := idFunc(string(metaJSON) + string(blockJSON)); id != "" {
		result.ID = &id
	}
	log.Debugf("compiled %s", result.ModuleName)
	return result, nil
}

// Precompile compiles template and returns the JSON text of its TemplateJSON
func Precompile(template *syntax.Template, options *Options) (string, error) {
	result, err := PrecompileJSON(template, options)
	if err != nil {
		return "", err
	}
	out, err := wire.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("compiler: encode template: %w", err)
	}
	return string(out), nil
}

// PrecompileCBOR compiles template and returns its TemplateJSON in canonical
// CBOR
func PrecompileCBOR(template *syntax.Template, options *Options) ([]byte, error) {
	result, err := PrecompileJSON(template, options)
	if err != nil {
		return nil, err
	}
	out, err := wire.MarshalCanonicalCBOR(result)
	if err != nil {
		return nil, fmt.Errorf("compiler: encode cbor: %w", err)
	}
	return out, nil
}

// PrecompileSource decodes a syntax tree in its JSON form and compiles it.
// source is the template text the tree was parsed from.
func PrecompileSource(ast []byte, source string, options *Options) (string, error) {
	url := ""
	if options != nil {
		url = options.Meta.ModuleName
	}
	template, err := syntax.DecodeJSON(ast, source, url)
	if err != nil {
		return "", err
	}
	return Precompile(template, options)
}
