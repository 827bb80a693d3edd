package i18n

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DecodeTOML reads dictionaries from a TOML document with one table per
// language. Within a language, a key maps either to a string or to a table
// of plural forms keyed by category name:
//
//	[en]
//	tooltip = "Word and character count"
//	word = { one = "word", other = "words" }
func DecodeTOML(r io.Reader) (map[string]Dictionary, error) {
	var raw map[string]map[string]interface{}
	if _, err := toml.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("cannot decode catalog: %w", err)
	}
	return buildDictionaries(raw)
}

// DecodeYAML reads dictionaries from a YAML document laid out like the
// TOML one accepted by DecodeTOML.
func DecodeYAML(r io.Reader) (map[string]Dictionary, error) {
	var raw map[string]map[string]interface{}
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("cannot decode catalog: %w", err)
	}
	return buildDictionaries(raw)
}

// LoadFile reads dictionaries from a .toml, .yaml or .yml file.
func LoadFile(path string) (map[string]Dictionary, error) {
	var decode func(io.Reader) (map[string]Dictionary, error)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		decode = DecodeTOML
	case ".yaml", ".yml":
		decode = DecodeYAML
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	dicts, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return dicts, nil
}

func buildDictionaries(raw map[string]map[string]interface{}) (map[string]Dictionary, error) {
	dicts := make(map[string]Dictionary, len(raw))
	for lang, keys := range raw {
		lang = strings.ToLower(lang)
		dict, ok := dicts[lang]
		if !ok {
			dict = make(Dictionary, len(keys))
			dicts[lang] = dict
		}
		for key, value := range keys {
			entry, err := buildEntry(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %q: %w", lang, key, err)
			}
			dict[key] = entry
		}
	}
	return dicts, nil
}

func buildEntry(value interface{}) (Entry, error) {
	switch v := value.(type) {
	case string:
		return Invariant(v), nil
	case map[string]interface{}:
		forms := make(map[Category]string, len(v))
		for name, form := range v {
			c, err := ParseCategory(name)
			if err != nil {
				return Entry{}, err
			}
			s, ok := form.(string)
			if !ok {
				return Entry{}, fmt.Errorf("form %q is a %T, not a string", name, form)
			}
			forms[c] = s
		}
		return Plural(forms)
	}
	return Entry{}, fmt.Errorf("unsupported value of type %T", value)
}
