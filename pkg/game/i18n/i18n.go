// Package i18n loads the embedded message catalogs and translates message
// keys for display.
package i18n

import (
	"embed"
	"fmt"
	"sync"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when the requested catalog does not exist
const DefaultLanguage = "en"

//go:embed locales/*.po
var catalogs embed.FS

var (
	mu       sync.RWMutex
	current  *gotext.Po
	language string
)

// Load parses the catalog for lang and makes it current. Unknown languages
// fall back to DefaultLanguage; the returned error reports the fallback.
func Load(lang string) error {
	data, err := catalogs.ReadFile("locales/" + lang + ".po")
	var fallbackErr error
	if err != nil {
		fallbackErr = fmt.Errorf("no catalog for %q, using %q", lang, DefaultLanguage)
		lang = DefaultLanguage
		data, err = catalogs.ReadFile("locales/" + lang + ".po")
		if err != nil {
			return err
		}
	}

	po := gotext.NewPo()
	po.Parse(data)

	mu.Lock()
	current = po
	language = lang
	mu.Unlock()
	return fallbackErr
}

// Language returns the code of the loaded catalog
func Language() string {
	mu.RLock()
	defer mu.RUnlock()
	return language
}

// T translates key and formats it with vars. Keys missing from the
// catalog are returned unchanged, and so are messages without vars.
func T(key string, vars ...any) string {
	mu.RLock()
	po := current
	mu.RUnlock()

	if po == nil {
		if err := Load(DefaultLanguage); err != nil {
			return key
		}
		mu.RLock()
		po = current
		mu.RUnlock()
	}
	msg := po.Get(key)
	if len(vars) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, vars...)
}
