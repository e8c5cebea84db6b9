package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withLang(t *testing.T, l string) {
	t.Helper()
	t.Setenv(EnvLang, "")
	prev := GetLang()
	SetLang(l)
	t.Cleanup(func() {
		mu.Lock()
		lang = prev
		mu.Unlock()
	})
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "pt", Normalize("pt_BR"))
	assert.Equal(t, "es", Normalize("es-419"))
	assert.Equal(t, "ru", Normalize(" RU "))
	assert.Equal(t, "en", Normalize("en-US"))
	assert.Equal(t, "en", Normalize("de-DE"))
	assert.Equal(t, "en", Normalize(""))
}

func TestTranslate(t *testing.T) {
	withLang(t, "es")
	assert.Equal(t, "es", GetLang())
	assert.Equal(t, "Vuelta", T("Lap"))
	assert.Equal(t, "Mié", T("Wed"))
	assert.Equal(t, "Vuelta 3: 00:00:01:00", Tf("Lap %d: %s", 3, "00:00:01:00"))
	assert.Equal(t, "unknown key", T("unknown key"))
}

func TestEnglishFallsThroughToKey(t *testing.T) {
	withLang(t, "en")
	assert.Equal(t, "Lap", T("Lap"))
	assert.Equal(t, "Lap 1: 00:00:00:01", Tf("Lap %d: %s", 1, "00:00:00:01"))
}

func TestEnvOverrideWins(t *testing.T) {
	withLang(t, "pt")
	t.Setenv(EnvLang, "ru")
	SetLang("es")
	assert.Equal(t, "pt", GetLang(), "SetLang is ignored while the env override is set")
}
