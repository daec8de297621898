package codegen

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dkoosis/artisan/pkg/console"
	"github.com/dkoosis/artisan/pkg/style"
)

// sinkRef stands for the identifier the generated code writes to.
type sinkRef struct{}

// replay evaluates generated statements against a recorder. It understands
// exactly the subset of Go that the projector emits.
func replay(t *testing.T, code string) *console.Recorder {
	t.Helper()
	src := "package p\nfunc _() {\n" + code + "\n}"
	file, err := parser.ParseFile(token.NewFileSet(), "", src, 0)
	require.NoError(t, err, src)

	rec := console.NewRecorder()
	body := file.Decls[0].(*ast.FuncDecl).Body
	for _, stmt := range body.List {
		es, ok := stmt.(*ast.ExprStmt)
		require.True(t, ok, "unexpected statement %T", stmt)
		call, ok := es.X.(*ast.CallExpr)
		require.True(t, ok, "unexpected expression %T", es.X)
		require.NoError(t, invoke(rec, call))
	}
	return rec
}

func invoke(rec *console.Recorder, call *ast.CallExpr) error {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		return fmt.Errorf("unsupported call %T", call.Fun)
	}
	pkg, ok := sel.X.(*ast.Ident)
	if !ok {
		return fmt.Errorf("unsupported receiver %T", sel.X)
	}
	args := make([]any, len(call.Args))
	for i, a := range call.Args {
		v, err := eval(a)
		if err != nil {
			return err
		}
		args[i] = v
	}

	switch pkg.Name + "." + sel.Sel.Name {
	case SinkName + ".Log":
		rec.Log(args...)
	case SinkName + ".Group":
		rec.Group(args...)
	case SinkName + ".GroupCollapsed":
		rec.GroupCollapsed(args...)
	case SinkName + ".GroupEnd":
		rec.GroupEnd()
	case SinkName + ".Table":
		rows, _ := args[0].([]any)
		rec.Table(rows)
	case "console.PrettyLog":
		console.PrettyLog(rec, args[1].(string), asStyle(args[2]))
	case "console.LogBadge":
		console.LogBadge(rec, args[1].(console.Badge))
	case "console.LogGradient":
		colors, _ := args[2].([]string)
		console.LogGradient(rec, args[1].(string), colors, args[3].(string), asStyle(args[4]))
	case "console.LogJSON":
		console.LogJSON(rec, args[1].(string), args[2], asStyle(args[3]))
	case "console.LogTable":
		console.LogTable(rec, args[1].(string), args[2], asStyle(args[3]))
	case "console.LogASCII":
		console.LogASCII(rec, args[1].(string), args[2].(string))
	case "console.LogEmoji":
		console.LogEmoji(rec, args[1].(string), asFloat(args[2]))
	default:
		return fmt.Errorf("unsupported call %s.%s", pkg.Name, sel.Sel.Name)
	}
	return nil
}

func eval(e ast.Expr) (any, error) {
	switch x := e.(type) {
	case *ast.BasicLit:
		switch x.Kind {
		case token.STRING:
			return strconv.Unquote(x.Value)
		case token.INT:
			return strconv.Atoi(x.Value)
		case token.FLOAT:
			return strconv.ParseFloat(x.Value, 64)
		}
	case *ast.Ident:
		switch x.Name {
		case "nil":
			return nil, nil
		case "true":
			return true, nil
		case "false":
			return false, nil
		case SinkName:
			return sinkRef{}, nil
		}
	case *ast.UnaryExpr:
		if x.Op == token.SUB {
			v, err := eval(x.X)
			if err != nil {
				return nil, err
			}
			switch n := v.(type) {
			case int:
				return -n, nil
			case float64:
				return -n, nil
			}
		}
	case *ast.SelectorExpr:
		if id, ok := x.X.(*ast.Ident); ok && id.Name == "style" {
			if m, ok := style.Preset(strings.ToLower(x.Sel.Name)); ok {
				return m, nil
			}
		}
	case *ast.CallExpr:
		if sel, ok := x.Fun.(*ast.SelectorExpr); ok && sel.Sel.Name == "Of" {
			kv := make([]string, len(x.Args))
			for i, a := range x.Args {
				v, err := eval(a)
				if err != nil {
					return nil, err
				}
				kv[i] = v.(string)
			}
			return style.Of(kv...), nil
		}
	case *ast.CompositeLit:
		return composite(x)
	}
	return nil, fmt.Errorf("unsupported expression %T", e)
}

func composite(lit *ast.CompositeLit) (any, error) {
	switch typ := lit.Type.(type) {
	case *ast.MapType:
		m := make(map[string]any, len(lit.Elts))
		for _, el := range lit.Elts {
			kv := el.(*ast.KeyValueExpr)
			k, err := eval(kv.Key)
			if err != nil {
				return nil, err
			}
			v, err := eval(kv.Value)
			if err != nil {
				return nil, err
			}
			m[k.(string)] = v
		}
		return m, nil
	case *ast.ArrayType:
		elems := make([]any, len(lit.Elts))
		for i, el := range lit.Elts {
			v, err := eval(el)
			if err != nil {
				return nil, err
			}
			elems[i] = v
		}
		if id, ok := typ.Elt.(*ast.Ident); ok && id.Name == "string" {
			ss := make([]string, len(elems))
			for i, v := range elems {
				ss[i] = v.(string)
			}
			return ss, nil
		}
		return elems, nil
	case *ast.SelectorExpr:
		fields, err := keyed(lit.Elts)
		if err != nil {
			return nil, err
		}
		switch typ.Sel.Name {
		case "Badge":
			str := func(k string) string { s, _ := fields[k].(string); return s }
			return console.Badge{
				Label:      str("Label"),
				Value:      str("Value"),
				LabelColor: str("LabelColor"),
				LabelBg:    str("LabelBg"),
				ValueColor: str("ValueColor"),
				ValueBg:    str("ValueBg"),
			}, nil
		case "Row":
			row := console.Row{}
			for _, el := range lit.Elts {
				cell, err := keyed(el.(*ast.CompositeLit).Elts)
				if err != nil {
					return nil, err
				}
				row = append(row, console.Cell{Key: cell["Key"].(string), Value: cell["Value"]})
			}
			return row, nil
		}
	}
	return nil, fmt.Errorf("unsupported composite literal %T", lit.Type)
}

// keyed evaluates Field: value elements. Unkeyed elements are skipped.
func keyed(elts []ast.Expr) (map[string]any, error) {
	out := map[string]any{}
	for _, el := range elts {
		kv, ok := el.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		v, err := eval(kv.Value)
		if err != nil {
			return nil, err
		}
		out[kv.Key.(*ast.Ident).Name] = v
	}
	return out, nil
}

func asStyle(v any) style.Map {
	m, _ := v.(style.Map)
	return m
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

// shown is one recorded call as a console would show it.
type shown struct {
	Method string
	Args   []string
}

// visual reduces recorded calls to method names and the JSON text of every
// argument. Field order is part of the text, so a replay that reorders
// object keys does not match.
func visual(t *testing.T, rec *console.Recorder) []shown {
	t.Helper()
	out := make([]shown, 0, len(rec.Calls))
	for _, c := range rec.Calls {
		args := make([]string, len(c.Args))
		for i, a := range c.Args {
			args[i] = console.Stringify(a)
		}
		out = append(out, shown{Method: c.Method, Args: args})
	}
	return out
}
