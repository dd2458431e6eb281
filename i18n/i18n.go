package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

var lang string

var translations = map[string]map[string]string{
	"Hold to activate": {
		"pt": "Segure para ativar",
		"es": "Mantenga para activar",
		"ru": "Удерживайте для активации",
	},
	"Long press": {
		"pt": "Pressão longa",
		"es": "Pulsación larga",
		"ru": "Долгое нажатие",
	},
	"Hold seconds": {
		"pt": "Segundos de espera",
		"es": "Segundos de espera",
		"ru": "Секунды удержания",
	},
	"Reset tally": {
		"pt": "Zerar contagem",
		"es": "Reiniciar conteo",
		"ru": "Сбросить счёт",
	},
	"Activations": {
		"pt": "Ativações",
		"es": "Activaciones",
		"ru": "Активации",
	},
	"About HoldButton": {
		"pt": "Sobre o HoldButton",
		"es": "Acerca de HoldButton",
		"ru": "О HoldButton",
	},
	"Help": {
		"pt": "Ajuda",
		"es": "Ayuda",
		"ru": "Помощь",
	},
	"Close": {
		"pt": "Fechar",
		"es": "Cerrar",
		"ru": "Закрыть",
	},
}

func init() {
	// Check for override environment variable
	if forcedLang := strings.TrimSpace(os.Getenv("HOLDBUTTON_LANG")); forcedLang != "" {
		log.Printf("HOLDBUTTON_LANG is set to: '%s'", forcedLang)
		lang = forcedLang
		return
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Println("Could not get user locale, defaulting to english")
		lang = "en"
		return
	}

	if len(userLocales) > 0 {
		locale := userLocales[0]
		log.Printf("Detected user locale: %s", locale)
		if strings.HasPrefix(locale, "pt") {
			lang = "pt"
		} else if strings.HasPrefix(locale, "es") {
			lang = "es"
		} else if strings.HasPrefix(locale, "ru") {
			lang = "ru"
		} else {
			lang = "en"
		}
	} else {
		log.Println("No user locale detected, defaulting to english")
		lang = "en"
	}
	log.Printf("Language set to: %s", lang)
}

func T(key string) string {
	if translated, ok := translations[key][lang]; ok {
		return translated
	}
	return key
}

func GetLang() string {
	return lang
}
