package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/jessevdk/go-flags"
	"golang.org/x/text/language"

	"github.com/wordcount/go-i18n"
	"github.com/wordcount/go-i18n/internal/textstat"
)

type options struct {
	Lang string `short:"l" long:"lang" value-name:"LANG" description:"language of the output, instead of the one from the environment"`

	Catalog string `long:"catalog" value-name:"FILE" description:"use the TOML or YAML catalog in FILE instead of the builtin one"`

	Tooltip bool `short:"t" long:"tooltip" description:"print the description of the counts first"`

	Verbose bool `short:"v" long:"verbose" description:"report message keys missing from the catalog"`

	Args struct {
		Files []string `positional-arg-name:"FILE"`
	} `positional-args:"yes"`
}

func loadCatalog(opts *options) (*i18n.Catalog, error) {
	var catOpts []i18n.Option
	if opts.Verbose {
		catOpts = append(catOpts, i18n.WithMissingKeyHandler(func(lang, key string) {
			log.Printf("no translation for %q in %q", key, lang)
		}))
	}
	if opts.Catalog == "" {
		if len(catOpts) == 0 {
			return i18n.Builtin(), nil
		}
		return i18n.NewBuiltin(catOpts...)
	}
	dicts, err := i18n.LoadFile(opts.Catalog)
	if err != nil {
		return nil, err
	}
	return i18n.New(append([]i18n.Option{i18n.WithDictionaries(dicts)}, catOpts...)...)
}

// userLanguage picks the catalog language closest to the environment's:
// "ru-ru" is served by "ru" when there is no "ru-ru" dictionary.
func userLanguage(cat *i18n.Catalog) string {
	lang := i18n.UserLanguage()
	if _, ok := cat.Dictionary(lang); ok || lang == "" {
		return lang
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	base, _ := tag.Base()
	if _, ok := cat.Dictionary(base.String()); ok {
		return base.String()
	}
	return lang
}

func count(r io.Reader) (textstat.Stats, error) {
	content, err := ioutil.ReadAll(r)
	if err != nil {
		return textstat.Stats{}, err
	}
	return textstat.Count(string(content)), nil
}

func main() {
	var opts options
	_, err := flags.ParseArgs(&opts, os.Args[1:])
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cat, err := loadCatalog(&opts)
	if err != nil {
		log.Fatalf("cannot load catalog: %s", err)
	}
	lang := opts.Lang
	if lang == "" {
		lang = userLanguage(cat)
	}
	loc := cat.Locale(lang)

	if opts.Tooltip {
		fmt.Println(loc.Gettext(i18n.KeyTooltip))
	}

	if len(opts.Args.Files) == 0 {
		stats, err := count(os.Stdin)
		if err != nil {
			log.Fatalf("cannot read standard input: %s", err)
		}
		fmt.Println(stats.Line(loc))
		return
	}

	var total textstat.Stats
	for _, filename := range opts.Args.Files {
		f, err := os.Open(filename)
		if err != nil {
			log.Fatalf("cannot open %s: %s", filename, err)
		}
		stats, err := count(f)
		f.Close()
		if err != nil {
			log.Fatalf("cannot read %s: %s", filename, err)
		}
		fmt.Printf("%s\t%s\n", stats.Line(loc), filename)
		total = total.Add(stats)
	}
	if len(opts.Args.Files) > 1 {
		fmt.Printf("%s\ttotal\n", total.Line(loc))
	}
}
