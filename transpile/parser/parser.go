package parser

import (
	"fmt"
	"strings"

	"github.com/dangerclosesec/cpp2py/transpile/model"
)

// SyntaxError is a fatal parse error. The first one abandons the whole
// translation; there is no recovery or re-synchronization.
type SyntaxError struct {
	Found      string
	Line       int
	Column     int
	EndOfInput bool
}

func (e *SyntaxError) Error() string {
	if e.EndOfInput {
		return "syntax error at end of input"
	}
	return fmt.Sprintf("syntax error at '%s' (line %d, column %d)", e.Found, e.Line, e.Column)
}

// Operator precedence levels
const (
	LOWEST     = iota
	COMPARISON // < > <= >=
	SUM        // + -
	PRODUCT    // * /
)

// precedences maps binary operator tokens to their precedence level.
// The source operator's spelling is carried through to the output
// verbatim, so associativity only affects parse order, not the text.
var precedences = map[TokenType]int{
	TokenLT:    COMPARISON,
	TokenGT:    COMPARISON,
	TokenLTE:   COMPARISON,
	TokenGTE:   COMPARISON,
	TokenPlus:  SUM,
	TokenMinus: SUM,
	TokenStar:  PRODUCT,
	TokenSlash: PRODUCT,
}

// Parser performs a single syntax-directed translation pass over the
// token stream. Each parse method is one production of the fixed grammar
// and returns its synthesized attribute: already-valid Python text built
// only from the attributes of its children.
type Parser struct {
	l         *Lexer
	curToken  Token
	peekToken Token
}

// NewParser creates a new Parser
func NewParser(l *Lexer) *Parser {
	p := &Parser{l: l}

	// Read two tokens, so curToken and peekToken are both set
	p.nextToken()
	p.nextToken()

	return p
}

// nextToken advances to the next token
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

// syntaxError builds the fatal error for the current token.
func (p *Parser) syntaxError() *SyntaxError {
	if p.curToken.Type == TokenEOF {
		return &SyntaxError{EndOfInput: true, Line: p.curToken.Line, Column: p.curToken.Column}
	}
	return &SyntaxError{
		Found:  p.curToken.Literal,
		Line:   p.curToken.Line,
		Column: p.curToken.Column,
	}
}

// expect consumes the current token if it has the wanted type
func (p *Parser) expect(tt TokenType) error {
	if p.curToken.Type != tt {
		return p.syntaxError()
	}
	p.nextToken()
	return nil
}

// ParseProgram reduces the whole token stream to the root attribute: the
// newline-joined translation of every top-level statement in source order.
func (p *Parser) ParseProgram() (string, error) {
	var out strings.Builder
	for p.curToken.Type != TokenEOF {
		stmt, err := p.parseStatement()
		if err != nil {
			return "", err
		}
		out.WriteString(stmt)
	}
	if out.Len() == 0 {
		// The grammar requires at least one statement.
		return "", p.syntaxError()
	}
	return out.String(), nil
}

// parseStatement dispatches on the leading token over the closed
// statement set. Anything that matches no alternative is a SyntaxError,
// never a silently wrong translation.
func (p *Parser) parseStatement() (string, error) {
	switch p.curToken.Type {
	case TokenInclude:
		return p.parseInclude()
	case TokenUsing:
		return p.parseUsingNamespace()
	case TokenInt, TokenFloat, TokenString, TokenVoid:
		return p.parseTypeLeading()
	case TokenIdent:
		switch p.peekToken.Type {
		case TokenAssign:
			return p.parseAssignment()
		case TokenLParen:
			return p.parseFunctionCall()
		}
		return p.parseExpressionStatement()
	case TokenCout:
		return p.parseCoutStatement()
	case TokenCin:
		return p.parseCinStatement()
	case TokenIf:
		return p.parseIfStatement()
	case TokenWhile:
		return p.parseWhileStatement()
	case TokenFor:
		return p.parseForStatement()
	case TokenReturn:
		return p.parseReturnStatement()
	case TokenNumber, TokenStringLit, TokenLParen:
		return p.parseExpressionStatement()
	default:
		return "", p.syntaxError()
	}
}

// parseInclude handles `include < iostream >`. The leading '#' never
// reaches the parser: it matches no lexer rule and is skipped with a
// warning, exactly like the original directive handling.
func (p *Parser) parseInclude() (string, error) {
	p.nextToken()
	if err := p.expect(TokenLT); err != nil {
		return "", err
	}
	if err := p.expect(TokenIostream); err != nil {
		return "", err
	}
	if err := p.expect(TokenGT); err != nil {
		return "", err
	}
	return includeMarker, nil
}

// parseUsingNamespace handles `using namespace std;`
func (p *Parser) parseUsingNamespace() (string, error) {
	p.nextToken()
	if err := p.expect(TokenNamespace); err != nil {
		return "", err
	}
	if err := p.expect(TokenStd); err != nil {
		return "", err
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return "", err
	}
	return usingMarker, nil
}

// parseTypeLeading handles the two constructs that begin with a type
// keyword: a declaration list or a function definition. One token of
// lookahead past the identifier decides which.
func (p *Parser) parseTypeLeading() (string, error) {
	typ := p.curToken.Literal
	p.nextToken()
	if p.curToken.Type != TokenIdent {
		return "", p.syntaxError()
	}
	if p.peekToken.Type == TokenLParen {
		return p.parseFunctionDefinition(typ)
	}
	return p.parseDeclaration(typ)
}

// parseDeclaration handles `type d1[=e1], d2[=e2], ... ;` with the
// current token on the first declarator name. Each declarator becomes
// one assignment line; uninitialized names are bound to None.
func (p *Parser) parseDeclaration(typ string) (string, error) {
	var lines []string
	for {
		if p.curToken.Type != TokenIdent {
			return "", p.syntaxError()
		}
		d := model.Declarator{Name: p.curToken.Literal}
		p.nextToken()
		if p.curToken.Type == TokenAssign {
			p.nextToken()
			init, err := p.parseExpression(LOWEST)
			if err != nil {
				return "", err
			}
			d.Init = init
			d.HasInit = true
		}
		lines = append(lines, declarationLine(typ, d))
		if p.curToken.Type != TokenComma {
			break
		}
		p.nextToken()
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return "", err
	}
	return strings.Join(lines, "\n") + "\n", nil
}

// parseAssignment handles `identifier = expression ;`
func (p *Parser) parseAssignment() (string, error) {
	name := p.curToken.Literal
	p.nextToken() // on '='
	p.nextToken()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return "", err
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return "", err
	}
	return name + " = " + expr + "\n", nil
}

// parseCoutStatement handles `cout << e1 << e2 ... ;`, folding each
// chained operand into one positional print argument, left to right.
func (p *Parser) parseCoutStatement() (string, error) {
	p.nextToken()
	if err := p.expect(TokenShiftLeft); err != nil {
		return "", err
	}
	var args []string
	for {
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return "", err
		}
		args = append(args, expr)
		if p.curToken.Type != TokenShiftLeft {
			break
		}
		p.nextToken()
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return "", err
	}
	return "print(" + strings.Join(args, ", ") + ")\n", nil
}

// parseCinStatement handles `cin >> id1 >> id2 ... ;`, one input()
// assignment per identifier, in source order.
func (p *Parser) parseCinStatement() (string, error) {
	p.nextToken()
	if err := p.expect(TokenShiftRight); err != nil {
		return "", err
	}
	var out strings.Builder
	for {
		if p.curToken.Type != TokenIdent {
			return "", p.syntaxError()
		}
		out.WriteString(p.curToken.Literal + " = " + readPrimitive + "\n")
		p.nextToken()
		if p.curToken.Type != TokenShiftRight {
			break
		}
		p.nextToken()
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return "", err
	}
	return out.String(), nil
}

// parseIfStatement handles `if (E) { ... }` with an optional else branch
func (p *Parser) parseIfStatement() (string, error) {
	p.nextToken()
	if err := p.expect(TokenLParen); err != nil {
		return "", err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return "", err
	}
	if err := p.expect(TokenRParen); err != nil {
		return "", err
	}
	body, err := p.parseCompoundStatement()
	if err != nil {
		return "", err
	}
	out := "if " + cond + ":\n" + indentBlock(body)
	if p.curToken.Type == TokenElse {
		p.nextToken()
		elseBody, err := p.parseCompoundStatement()
		if err != nil {
			return "", err
		}
		out += "else:\n" + indentBlock(elseBody)
	}
	return out, nil
}

// parseWhileStatement handles `while (E) { ... }`
func (p *Parser) parseWhileStatement() (string, error) {
	p.nextToken()
	if err := p.expect(TokenLParen); err != nil {
		return "", err
	}
	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return "", err
	}
	if err := p.expect(TokenRParen); err != nil {
		return "", err
	}
	body, err := p.parseCompoundStatement()
	if err != nil {
		return "", err
	}
	return "while " + cond + ":\n" + indentBlock(body), nil
}

// parseForStatement desugars the three-clause loop: the initializer is
// emitted first, unindented, then a condition-tested while loop whose
// body carries the step expression as its last statement.
func (p *Parser) parseForStatement() (string, error) {
	p.nextToken()
	if err := p.expect(TokenLParen); err != nil {
		return "", err
	}

	var init string
	if isType(p.curToken.Type) {
		// declaration-as-init, consumes its own semicolon
		typ := p.curToken.Literal
		p.nextToken()
		decl, err := p.parseDeclaration(typ)
		if err != nil {
			return "", err
		}
		init = decl
	} else {
		clause, err := p.parseForClause()
		if err != nil {
			return "", err
		}
		if err := p.expect(TokenSemicolon); err != nil {
			return "", err
		}
		init = clause + "\n"
	}

	cond, err := p.parseExpression(LOWEST)
	if err != nil {
		return "", err
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return "", err
	}

	step, err := p.parseForClause()
	if err != nil {
		return "", err
	}
	if err := p.expect(TokenRParen); err != nil {
		return "", err
	}

	body, err := p.parseCompoundStatement()
	if err != nil {
		return "", err
	}
	return init + "while " + cond + ":\n" + indentBlock(body+step+"\n"), nil
}

// parseForClause parses an init or step clause: an assignment without
// its statement semicolon, or a bare expression.
func (p *Parser) parseForClause() (string, error) {
	if p.curToken.Type == TokenIdent && p.peekToken.Type == TokenAssign {
		name := p.curToken.Literal
		p.nextToken()
		p.nextToken()
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return "", err
		}
		return name + " = " + expr, nil
	}
	return p.parseExpression(LOWEST)
}

// parseFunctionDefinition handles `type name(params) { ... }` with the
// current token on the function name. The distinguished entry point
// "main" becomes the __main__ guard and drops its parameters.
func (p *Parser) parseFunctionDefinition(typ string) (string, error) {
	_ = typ // return type carries no information in Python
	name := p.curToken.Literal
	p.nextToken() // on '('
	p.nextToken()

	var params []model.Parameter
	for p.curToken.Type != TokenRParen {
		if !isType(p.curToken.Type) {
			return "", p.syntaxError()
		}
		param := model.Parameter{Type: p.curToken.Literal}
		p.nextToken()
		if p.curToken.Type != TokenIdent {
			return "", p.syntaxError()
		}
		param.Name = p.curToken.Literal
		p.nextToken()
		params = append(params, param)
		if p.curToken.Type != TokenComma {
			break
		}
		p.nextToken()
	}
	if err := p.expect(TokenRParen); err != nil {
		return "", err
	}

	body, err := p.parseCompoundStatement()
	if err != nil {
		return "", err
	}

	if name == "main" {
		return mainGuard + indentBlock(body), nil
	}
	names := make([]string, len(params))
	for i, param := range params {
		names[i] = param.Name
	}
	return "def " + name + "(" + strings.Join(names, ", ") + "):\n" + indentBlock(body), nil
}

// parseFunctionCall handles `name(args) ;` as a statement
func (p *Parser) parseFunctionCall() (string, error) {
	name := p.curToken.Literal
	p.nextToken() // on '('
	p.nextToken()

	var args []string
	for p.curToken.Type != TokenRParen {
		expr, err := p.parseExpression(LOWEST)
		if err != nil {
			return "", err
		}
		args = append(args, expr)
		if p.curToken.Type != TokenComma {
			break
		}
		p.nextToken()
	}
	if err := p.expect(TokenRParen); err != nil {
		return "", err
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return "", err
	}
	return name + "(" + strings.Join(args, ", ") + ")\n", nil
}

// parseReturnStatement handles `return E ;`
func (p *Parser) parseReturnStatement() (string, error) {
	p.nextToken()
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return "", err
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return "", err
	}
	return "return " + expr + "\n", nil
}

// parseExpressionStatement handles a bare `expression ;`
func (p *Parser) parseExpressionStatement() (string, error) {
	expr, err := p.parseExpression(LOWEST)
	if err != nil {
		return "", err
	}
	if err := p.expect(TokenSemicolon); err != nil {
		return "", err
	}
	return expr + "\n", nil
}

// parseCompoundStatement handles `{ statements }` and returns the raw,
// unindented statement text. The wrapping production indents it exactly
// once, so nesting depth equals accumulated indentation.
func (p *Parser) parseCompoundStatement() (string, error) {
	if err := p.expect(TokenLBrace); err != nil {
		return "", err
	}
	var out strings.Builder
	for p.curToken.Type != TokenRBrace {
		if p.curToken.Type == TokenEOF {
			return "", p.syntaxError()
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return "", err
		}
		out.WriteString(stmt)
	}
	if out.Len() == 0 {
		// at least one statement per block
		return "", p.syntaxError()
	}
	if err := p.expect(TokenRBrace); err != nil {
		return "", err
	}
	return out.String(), nil
}

// parseExpression implements precedence climbing over the binary
// operators. The synthesized attribute is the flat `left op right` text
// with the source operator spelling preserved; parentheses are kept
// verbatim by parsePrimary.
func (p *Parser) parseExpression(minPrec int) (string, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return "", err
	}
	for {
		prec, ok := precedences[p.curToken.Type]
		if !ok || prec <= minPrec {
			return left, nil
		}
		op := p.curToken.Literal
		p.nextToken()
		right, err := p.parseExpression(prec)
		if err != nil {
			return "", err
		}
		left = left + " " + op + " " + right
	}
}

// parsePrimary handles the expression leaves: identifiers, numeric and
// string literals, and parenthesized sub-expressions.
func (p *Parser) parsePrimary() (string, error) {
	switch p.curToken.Type {
	case TokenIdent, TokenNumber, TokenStringLit:
		lit := p.curToken.Literal
		p.nextToken()
		return lit, nil
	case TokenLParen:
		p.nextToken()
		inner, err := p.parseExpression(LOWEST)
		if err != nil {
			return "", err
		}
		if err := p.expect(TokenRParen); err != nil {
			return "", err
		}
		return "(" + inner + ")", nil
	default:
		return "", p.syntaxError()
	}
}
