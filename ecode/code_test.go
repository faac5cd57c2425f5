package ecode

import "testing"

func TestText(t *testing.T) {
	if got := Text(NothingFound); got != "Resource not found" {
		t.Errorf("Text(NothingFound) = %q", got)
	}
	if got := Text(-9999); got != Text(ServerErr) {
		t.Errorf("unknown code should fall back to ServerErr text, got %q", got)
	}
}

func TestRegister(t *testing.T) {
	Register(-1001, "Stock exhausted")
	if got := Text(-1001); got != "Stock exhausted" {
		t.Errorf("Text(-1001) = %q", got)
	}
}

func TestMessages(t *testing.T) {
	if got := NotExist("Usuario", 3); got != "Usuario con ID 3 no encontrado" {
		t.Errorf("NotExist = %q", got)
	}
	if got := Deleted("Producto"); got != "Producto eliminado correctamente" {
		t.Errorf("Deleted = %q", got)
	}
}
