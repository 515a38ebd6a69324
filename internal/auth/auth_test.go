package auth

import (
	"strings"
	"testing"
	"time"
)

func TestJWTRoundTrip(t *testing.T) {
	manager := NewJWTManager("segredo-de-teste-com-32-caracteres!", 15*time.Minute)

	token, _, err := manager.GenerateAccessToken("11111111-1111-1111-1111-111111111111", "João Silva")
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	claims, err := manager.ParseAndValidate(token)
	if err != nil {
		t.Fatalf("erro ao validar token: %v", err)
	}
	if claims.Subject != "11111111-1111-1111-1111-111111111111" {
		t.Fatalf("subject incorreto: %s", claims.Subject)
	}
	if claims.Nome != "João Silva" {
		t.Fatalf("nome incorreto: %s", claims.Nome)
	}
	if len(claims.Audience) == 0 || claims.Audience[0] != AudienceAdvogado {
		t.Fatalf("audience incorreta: %v", claims.Audience)
	}
}

func TestJWTRejeitaSegredoErrado(t *testing.T) {
	emissor := NewJWTManager("segredo-de-teste-com-32-caracteres!", 15*time.Minute)
	validador := NewJWTManager("outro-segredo-tambem-com-32-chars!!", 15*time.Minute)

	token, _, err := emissor.GenerateAccessToken("sub", "nome")
	if err != nil {
		t.Fatalf("erro ao gerar token: %v", err)
	}

	if _, err := validador.ParseAndValidate(token); err == nil {
		t.Fatal("token assinado com outro segredo deveria ser rejeitado")
	}
}

func TestRefreshTokenHashDeterministico(t *testing.T) {
	raw, hashed, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("erro ao gerar refresh: %v", err)
	}
	if raw == "" || hashed == "" {
		t.Fatal("refresh vazio")
	}
	if strings.Contains(raw, hashed) {
		t.Fatal("hash não pode aparecer no token cru")
	}
	if HashRefreshToken(raw) != hashed {
		t.Fatal("hash do token cru deveria bater com o hash emitido")
	}
}

func TestArgon2RoundTrip(t *testing.T) {
	hash, err := Hash("senha-super-secreta")
	if err != nil {
		t.Fatalf("erro ao gerar hash: %v", err)
	}

	ok, err := Verify("senha-super-secreta", hash)
	if err != nil || !ok {
		t.Fatalf("senha correta deveria verificar: ok=%v err=%v", ok, err)
	}

	ok, err = Verify("senha-errada", hash)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if ok {
		t.Fatal("senha errada não pode verificar")
	}
}
