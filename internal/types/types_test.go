package types

import "testing"

func TestVarPretty(t *testing.T) {
	if got := (Var{ID: 7}).Pretty(); got != "T7" {
		t.Errorf("Var{7}.Pretty() = %s, want T7", got)
	}
}

func TestFunctionPrettyParenthesizesSingleFunctionParam(t *testing.T) {
	tests := []struct {
		name string
		fn   Function
		want string
	}{
		{
			name: "single non-function param",
			fn:   Function{Params: []Type{Var{ID: 0}}, Ret: Var{ID: 1}},
			want: "T0 -> T1",
		},
		{
			name: "single function-typed param is parenthesized",
			fn: Function{
				Params: []Type{Function{Params: []Type{Var{ID: 0}}, Ret: Var{ID: 1}}},
				Ret:    Var{ID: 2},
			},
			want: "(T0 -> T1) -> T2",
		},
		{
			name: "multi-param tuple of function types is not parenthesized as a unit",
			fn: Function{
				Params: []Type{
					Function{Params: []Type{Var{ID: 0}}, Ret: Var{ID: 1}},
					Var{ID: 2},
				},
				Ret: Var{ID: 3},
			},
			want: "(T0 -> T1, T2) -> T3",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn.Pretty(); got != tt.want {
				t.Errorf("Pretty() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordPrettyInsertionOrder(t *testing.T) {
	r := Record{Fields: []RecordField{
		{Name: "second", Type: Named{Name: "String"}},
		{Name: "first", Type: Named{Name: "Number"}},
	}}
	want := "rect { second: String, first: Number }"
	if got := r.Pretty(); got != want {
		t.Errorf("Pretty() = %q, want %q", got, want)
	}
}

func TestRecordPrettyOpenWithRowVar(t *testing.T) {
	row := Var{ID: 3}
	r := Record{Fields: []RecordField{{Name: "first", Type: Var{ID: 2}}}, RowVar: &row}
	want := "rect { first: T2 | T3 }"
	if got := r.Pretty(); got != want {
		t.Errorf("Pretty() = %q, want %q", got, want)
	}
}

func TestFreeVarsIncludesRowVariable(t *testing.T) {
	row := Var{ID: 9}
	r := Record{Fields: []RecordField{{Name: "x", Type: Named{Name: "Number"}}}, RowVar: &row}
	fv := r.FreeVars()
	if _, ok := fv[9]; !ok {
		t.Errorf("FreeVars() = %v, want to include row variable 9", fv)
	}
	if len(fv) != 1 {
		t.Errorf("FreeVars() = %v, want exactly {9}", fv)
	}
}

func TestOccursThroughNestedFunction(t *testing.T) {
	target := Var{ID: 5}
	fn := Function{Params: []Type{Named{Name: "Number"}}, Ret: Function{Params: []Type{target}, Ret: Named{Name: "String"}}}
	if !fn.Occurs(5) {
		t.Errorf("Occurs(5) = false, want true")
	}
	if fn.Occurs(6) {
		t.Errorf("Occurs(6) = true, want false")
	}
}

func TestLiteralNeverOccurs(t *testing.T) {
	lit := Literal{Value: 42, Base: Named{Name: "Number"}}
	if lit.Occurs(0) {
		t.Errorf("Literal.Occurs should always be false")
	}
	if len(lit.FreeVars()) != 0 {
		t.Errorf("Literal.FreeVars should always be empty")
	}
}
