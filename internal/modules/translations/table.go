// Package translations serves the static UI string table.
package translations

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/aftab0khan021/mgnrega/internal/domain"
	"github.com/aftab0khan021/mgnrega/pkg/embedded"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// FallbackLanguage is used for keys that lack the requested language
const FallbackLanguage = "en"

// Language describes one language present in the table
type Language struct {
	Code        string `json:"code"`
	EnglishName string `json:"english_name"`
	NativeName  string `json:"native_name"`
}

// Table is an immutable, validated translation table.
// Safe for concurrent use.
type Table struct {
	entries   []domain.TranslationEntry
	languages []string
}

// LoadDefault loads the table embedded in the binary
func LoadDefault() (*Table, error) {
	data, err := embedded.Files.ReadFile(embedded.TranslationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded translations: %w", err)
	}
	return Parse(data)
}

// LoadFile loads a table from a JSON file on disk
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read translations file: %w", err)
	}
	return Parse(data)
}

// Load reads path when set, the embedded table otherwise
func Load(path string) (*Table, error) {
	if path == "" {
		return LoadDefault()
	}
	return LoadFile(path)
}

// Parse decodes and validates a JSON array of {key, translations} entries.
// Every key must be unique and carry an English text; every language code must be a valid BCP 47 tag.
func Parse(data []byte) (*Table, error) {
	var entries []domain.TranslationEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to decode translations: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("translation table is empty")
	}

	seenKeys := make(map[string]bool, len(entries))
	seenLangs := make(map[string]bool)
	var languages []string

	for _, e := range entries {
		if e.Key == "" {
			return nil, fmt.Errorf("translation entry with empty key")
		}
		if seenKeys[e.Key] {
			return nil, fmt.Errorf("duplicate translation key %q", e.Key)
		}
		seenKeys[e.Key] = true

		if _, ok := e.Translations[FallbackLanguage]; !ok {
			return nil, fmt.Errorf("translation key %q has no %q text", e.Key, FallbackLanguage)
		}

		for code := range e.Translations {
			if seenLangs[code] {
				continue
			}
			if _, err := language.Parse(code); err != nil {
				return nil, fmt.Errorf("translation key %q: invalid language code %q: %w", e.Key, code, err)
			}
			seenLangs[code] = true
			languages = append(languages, code)
		}
	}

	return &Table{entries: entries, languages: sortLanguages(languages)}, nil
}

// Entries returns every entry in definition order
func (t *Table) Entries() []domain.TranslationEntry {
	out := make([]domain.TranslationEntry, len(t.entries))
	for i, e := range t.entries {
		texts := make(map[string]string, len(e.Translations))
		for lang, text := range e.Translations {
			texts[lang] = text
		}
		out[i] = domain.TranslationEntry{Key: e.Key, Translations: texts}
	}
	return out
}

// For returns key -> text for one language.
// Keys without that language fall back to English, so any code (even an unknown one) yields every key.
func (t *Table) For(lang string) map[string]string {
	out := make(map[string]string, len(t.entries))
	for _, e := range t.entries {
		if text, ok := e.Translations[lang]; ok {
			out[e.Key] = text
		} else {
			out[e.Key] = e.Translations[FallbackLanguage]
		}
	}
	return out
}

// Languages lists the language codes present in the table with display names.
// English comes first, the rest in code order.
func (t *Table) Languages() []Language {
	namer := display.English.Tags()
	out := make([]Language, 0, len(t.languages))
	for _, code := range t.languages {
		tag := language.Make(code)
		out = append(out, Language{
			Code:        code,
			EnglishName: namer.Name(tag),
			NativeName:  display.Self.Name(tag),
		})
	}
	return out
}

// Keys returns the entry keys in definition order
func (t *Table) Keys() []string {
	keys := make([]string, len(t.entries))
	for i, e := range t.entries {
		keys[i] = e.Key
	}
	return keys
}

func sortLanguages(codes []string) []string {
	sort.Slice(codes, func(i, j int) bool {
		if codes[i] == FallbackLanguage || codes[j] == FallbackLanguage {
			return codes[i] == FallbackLanguage
		}
		return codes[i] < codes[j]
	})
	return codes
}
