package types

import (
	"encoding/json"
	"testing"
)

type patch struct {
	Nombre Optional[string] `json:"nombre"`
	Stock  Optional[int]    `json:"stock"`
	Activo Optional[bool]   `json:"activo"`
}

func TestOptionalDistinguishesAbsentNullAndZero(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"nombre": "", "stock": null}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if !p.Nombre.Set || p.Nombre.Null || p.Nombre.Value != "" {
		t.Errorf("nombre should be set to empty string, got %+v", p.Nombre)
	}
	if !p.Stock.Set || !p.Stock.Null {
		t.Errorf("stock should be set to null, got %+v", p.Stock)
	}
	if p.Activo.Set {
		t.Errorf("activo should be unset, got %+v", p.Activo)
	}
}

func TestOptionalFalseAndZeroArePresent(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"stock": 0, "activo": false}`), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !p.Stock.Present() || p.Stock.Value != 0 {
		t.Errorf("stock = %+v, want present 0", p.Stock)
	}
	if !p.Activo.Present() || p.Activo.Value {
		t.Errorf("activo = %+v, want present false", p.Activo)
	}
}

func TestOptionalTypeMismatch(t *testing.T) {
	var p patch
	if err := json.Unmarshal([]byte(`{"stock": "three"}`), &p); err == nil {
		t.Fatal("expected error for string into Optional[int]")
	}
}

func TestOptionalPtr(t *testing.T) {
	if Null[string]().Ptr() != nil {
		t.Error("null Ptr should be nil")
	}
	if p := Some("x").Ptr(); p == nil || *p != "x" {
		t.Errorf("Some(x).Ptr() = %v", p)
	}
	var unset Optional[int]
	if unset.Ptr() != nil {
		t.Error("unset Ptr should be nil")
	}
}

func TestOptionalMarshal(t *testing.T) {
	b, err := json.Marshal(patch{Nombre: Some("Ana"), Stock: Null[int]()})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"nombre":"Ana","stock":null,"activo":null}`
	if string(b) != want {
		t.Errorf("marshal = %s, want %s", b, want)
	}
}
