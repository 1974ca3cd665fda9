package ir

// StatementVisitor handles every IR statement kind
type StatementVisitor interface {
	VisitAppendTextNode(stmt *AppendTextNode, context interface{}) interface{}
	VisitAppendTrustedHTML(stmt *AppendTrustedHTML, context interface{}) interface{}
	VisitAppendComment(stmt *AppendComment, context interface{}) interface{}
	VisitComponent(stmt *Component, context interface{}) interface{}
	VisitSimpleElement(stmt *SimpleElement, context interface{}) interface{}
	VisitInvokeBlock(stmt *InvokeBlock, context interface{}) interface{}
	VisitYield(stmt *Yield, context interface{}) interface{}
	VisitPartial(stmt *Partial, context interface{}) interface{}
	VisitDebugger(stmt *Debugger, context interface{}) interface{}
	VisitInElement(stmt *InElement, context interface{}) interface{}
	VisitIf(stmt *If, context interface{}) interface{}
	VisitEach(stmt *Each, context interface{}) interface{}
	VisitLet(stmt *Let, context interface{}) interface{}
	VisitWithDynamicVars(stmt *WithDynamicVars, context interface{}) interface{}
	VisitInvokeComponent(stmt *InvokeComponent, context interface{}) interface{}
}

// ExpressionVisitor handles every IR expression kind
type ExpressionVisitor interface {
	VisitLiteral(expr *Literal, context interface{}) interface{}
	VisitUndefined(expr *Undefined, context interface{}) interface{}
	VisitPath(expr *PathExpression, context interface{}) interface{}
	VisitLocalVar(expr *LocalVar, context interface{}) interface{}
	VisitArgVar(expr *ArgVar, context interface{}) interface{}
	VisitBlockVar(expr *BlockVar, context interface{}) interface{}
	VisitThisVar(expr *ThisVar, context interface{}) interface{}
	VisitFreeVar(expr *FreeVar, context interface{}) interface{}
	VisitCall(expr *CallExpression, context interface{}) interface{}
	VisitInterpolate(expr *InterpolateExpression, context interface{}) interface{}
	VisitHasBlock(expr *HasBlock, context interface{}) interface{}
	VisitHasBlockParams(expr *HasBlockParams, context interface{}) interface{}
	VisitCurry(expr *Curry, context interface{}) interface{}
	VisitNot(expr *Not, context interface{}) interface{}
	VisitIfInline(expr *IfInline, context interface{}) interface{}
	VisitGetDynamicVar(expr *GetDynamicVar, context interface{}) interface{}
	VisitLog(expr *Log, context interface{}) interface{}
}

// ElementParameterVisitor handles every element parameter kind
type ElementParameterVisitor interface {
	VisitStaticAttr(param *StaticAttr, context interface{}) interface{}
	VisitDynamicAttr(param *DynamicAttr, context interface{}) interface{}
	VisitModifier(param *Modifier, context interface{}) interface{}
	VisitSplatAttr(param *SplatAttr, context interface{}) interface{}
}
