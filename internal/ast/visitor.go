package ast

// Visitor dispatches on concrete node type, matching the teacher's
// Accept(v Visitor)/Visit* pairing. Statement visits are void; callers
// that need an expression's resolved type read it back off the visitor
// itself after the Accept call (see resolver.Walker.lastType).
type Visitor interface {
	VisitProgram(*Program)

	VisitVarStatement(*VarStatement)
	VisitExpressionStatement(*ExpressionStatement)
	VisitIfStatement(*IfStatement)
	VisitBlockStatement(*BlockStatement)
	VisitWhileStatement(*WhileStatement)
	VisitReturnStatement(*ReturnStatement)
	VisitFunctionStatement(*FunctionStatement)
	VisitClassStatement(*ClassStatement)
	VisitFieldStatement(*FieldStatement)
	VisitMethodStatement(*MethodStatement)

	VisitLiteralExpression(*LiteralExpression)
	VisitUnaryExpression(*UnaryExpression)
	VisitBinaryExpression(*BinaryExpression)
	VisitGroupingExpression(*GroupingExpression)
	VisitLogicalExpression(*LogicalExpression)
	VisitVarExpression(*VarExpression)
	VisitAssignExpression(*AssignExpression)
	VisitLambdaExpression(*LambdaExpression)
	VisitThisExpression(*ThisExpression)
	VisitSuperExpression(*SuperExpression)
	VisitGetExpression(*GetExpression)
	VisitSetExpression(*SetExpression)
	VisitCallExpression(*CallExpression)
}
