package i18n

import (
	"fmt"
	"log"
	"os"
	"strings"
	"sync"

	"github.com/jeandeaual/go-locale"
)

// EnvLang forces the UI language when set.
const EnvLang = "CHRONODESK_LANG"

var (
	mu   sync.RWMutex
	lang string
)

var supported = []string{"en", "pt", "es", "ru"}

var translations = map[string]map[string]string{
	"Start": {
		"pt": "Iniciar",
		"es": "Iniciar",
		"ru": "Старт",
	},
	"Pause": {
		"pt": "Pausar",
		"es": "Pausar",
		"ru": "Пауза",
	},
	"Reset": {
		"pt": "Resetar",
		"es": "Reiniciar",
		"ru": "Сброс",
	},
	"Lap": {
		"pt": "Volta",
		"es": "Vuelta",
		"ru": "Круг",
	},
	"Lap %d: %s": {
		"pt": "Volta %d: %s",
		"es": "Vuelta %d: %s",
		"ru": "Круг %d: %s",
	},
	"About Chronodesk": {
		"pt": "Sobre o Chronodesk",
		"es": "Acerca de Chronodesk",
		"ru": "О Chronodesk",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
	"Sun": {"pt": "Dom", "es": "Dom", "ru": "Вс"},
	"Mon": {"pt": "Seg", "es": "Lun", "ru": "Пн"},
	"Tue": {"pt": "Ter", "es": "Mar", "ru": "Вт"},
	"Wed": {"pt": "Qua", "es": "Mié", "ru": "Ср"},
	"Thu": {"pt": "Qui", "es": "Jue", "ru": "Чт"},
	"Fri": {"pt": "Sex", "es": "Vie", "ru": "Пт"},
	"Sat": {"pt": "Sáb", "es": "Sáb", "ru": "Сб"},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv(EnvLang)); forcedLang != "" {
		log.Printf("%s is set to: '%s'", EnvLang, forcedLang)
		lang = Normalize(forcedLang)
		return
	}

	log.Printf("%s is not set, detecting from system locale.", EnvLang)
	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	if len(userLocales) > 0 {
		log.Printf("Detected user locale: %s", userLocales[0])
		lang = Normalize(userLocales[0])
	} else {
		log.Println("No user locale detected, defaulting to english")
		lang = "en"
	}
	log.Printf("Language set to: %s", lang)
}

// Normalize maps a locale such as "pt_BR" or "es-419" to a supported
// language, falling back to english.
func Normalize(loc string) string {
	loc = strings.ToLower(strings.TrimSpace(loc))
	for _, l := range supported {
		if strings.HasPrefix(loc, l) {
			return l
		}
	}
	return "en"
}

// SetLang switches the language. The environment override wins over
// anything set here.
func SetLang(l string) {
	if strings.TrimSpace(os.Getenv(EnvLang)) != "" || strings.TrimSpace(l) == "" {
		return
	}
	mu.Lock()
	lang = Normalize(l)
	mu.Unlock()
}

func T(key string) string {
	mu.RLock()
	defer mu.RUnlock()
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

// Tf translates key and formats it with args.
func Tf(key string, args ...any) string {
	return fmt.Sprintf(T(key), args...)
}

func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return lang
}
