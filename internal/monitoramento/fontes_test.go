package monitoramento

import "testing"

func TestFontesSemEstadosExpandeTodasUFs(t *testing.T) {
	fontes := Fontes(nil)

	if len(fontes) != 54 {
		t.Fatalf("esperava 54 fontes (27 UFs x 2), veio %d", len(fontes))
	}
	if fontes[0] != "Diário Oficial SP" || fontes[1] != "Diário da Justiça SP" {
		t.Fatalf("primeiras fontes incorretas: %v", fontes[:2])
	}
}

func TestFontesComEstadosGeraDuasPorUF(t *testing.T) {
	fontes := Fontes([]string{"SP", "RJ"})

	want := []string{
		"Diário Oficial SP",
		"Diário da Justiça SP",
		"Diário Oficial RJ",
		"Diário da Justiça RJ",
	}
	if len(fontes) != len(want) {
		t.Fatalf("esperava %d fontes, veio %d", len(want), len(fontes))
	}
	for i := range want {
		if fontes[i] != want[i] {
			t.Errorf("fontes[%d] = %q, esperava %q", i, fontes[i], want[i])
		}
	}
}
