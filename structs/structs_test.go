package structs

import (
	"encoding/json"
	"testing"
)

func TestUsuarioCreateDefaults(t *testing.T) {
	var req UsuarioCreate
	if err := json.Unmarshal([]byte(`{"nombre":"Ana","email":"ana@example.com"}`), &req); err != nil {
		t.Fatal(err)
	}
	u := req.Build()
	if !u.Activo {
		t.Error("activo should default to true")
	}

	if err := json.Unmarshal([]byte(`{"nombre":"Ana","email":"ana@example.com","activo":false}`), &req); err != nil {
		t.Fatal(err)
	}
	if req.Build().Activo {
		t.Error("explicit activo=false was lost")
	}
}

func TestProductoCreateDefaults(t *testing.T) {
	var req ProductoCreate
	if err := json.Unmarshal([]byte(`{"nombre":"Widget","precio":0}`), &req); err != nil {
		t.Fatal(err)
	}
	p := req.Build()
	if p.Stock != 0 || p.Precio != 0 || p.Descripcion != nil {
		t.Errorf("unexpected defaults %+v", p)
	}
}

func TestUsuarioUpdateValidate(t *testing.T) {
	tests := []struct {
		body    string
		invalid []string
	}{
		{body: `{}`},
		{body: `{"nombre":""}`},
		{body: `{"activo":false}`},
		{body: `{"email":"nope"}`, invalid: []string{"email"}},
		{body: `{"nombre":null,"activo":null}`, invalid: []string{"nombre", "activo"}},
	}
	for _, tt := range tests {
		var req UsuarioUpdate
		if err := json.Unmarshal([]byte(tt.body), &req); err != nil {
			t.Fatalf("%s: %v", tt.body, err)
		}
		errs := req.Validate()
		if len(errs) != len(tt.invalid) {
			t.Errorf("%s: errs = %v, want %v", tt.body, errs, tt.invalid)
		}
		for _, f := range tt.invalid {
			if _, ok := errs[f]; !ok {
				t.Errorf("%s: missing error for %s", tt.body, f)
			}
		}
	}
}

func TestProductoUpdateValidate(t *testing.T) {
	var req ProductoUpdate
	if err := json.Unmarshal([]byte(`{"descripcion":null,"stock":0}`), &req); err != nil {
		t.Fatal(err)
	}
	if errs := req.Validate(); len(errs) != 0 {
		t.Errorf("errs = %v", errs)
	}
	if req.Empty() {
		t.Error("Empty() = true")
	}

	req = ProductoUpdate{}
	if err := json.Unmarshal([]byte(`{"precio":-1,"stock":null}`), &req); err != nil {
		t.Fatal(err)
	}
	errs := req.Validate()
	if _, ok := errs["precio"]; !ok {
		t.Errorf("precio not rejected: %v", errs)
	}
	if _, ok := errs["stock"]; !ok {
		t.Errorf("null stock not rejected: %v", errs)
	}
}

func TestUpdateEmpty(t *testing.T) {
	if !(&UsuarioUpdate{}).Empty() || !(&ProductoUpdate{}).Empty() {
		t.Error("zero update should be empty")
	}
}
