// Package compiler precompiles Handlebars-style templates into the compact
// wire format consumed by the rendering runtime.
//
// A template arrives as a syntax tree produced by an external parser, either
// built directly with the syntax package or decoded from its JSON form. It is
// compiled in two passes:
//
//   - normalization (template/pipeline): keywords are recognized, variables are
//     classified and given symbol slots or upvar indexes, and free variables are
//     assigned a resolution context
//   - encoding (template/pipeline): the intermediate tree is lowered to opcode
//     tuples (template/pipeline/wire)
//
// Main sub-packages:
//
//   - syntax: input syntax tree, JSON decoding, builders and the symbol table
//   - template/pipeline: normalization, keyword tables, encoding
//   - template/pipeline/ir: intermediate tree and its visitors
//   - template/pipeline/wire: opcodes, tuples, JSON and CBOR serialization
//   - config: compiler configuration and hbsc.toml loading
//   - util: source spans, compile errors, Result and OptionalList
//
// Entry points:
//
//   - Precompile, PrecompileJSON, PrecompileCBOR: compile a syntax tree
//   - PrecompileSource: decode a JSON syntax tree and compile it
//   - PrecompileToBlock: compile to the serialized template block only
//   - SetTemplateIDFunc, DefaultTemplateID: template identity
//
// Compile errors are *util.ParseError values carrying the source span of the
// offending node. The first error in traversal order is reported.
package compiler
