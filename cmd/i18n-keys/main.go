package main

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jessevdk/go-flags"

	"github.com/wordcount/go-i18n"
	"github.com/wordcount/go-i18n/internal/keyscan"
)

var formatTime = func() string {
	return time.Now().Format("2006-01-02 15:04-0700")
}

type options struct {
	FilesFrom string `short:"f" long:"files-from" value-name:"FILE" description:"get list of input files from FILE"`

	Directories []string `short:"D" long:"directory" value-name:"DIRECTORY" description:"add DIRECTORY to list for input files search"`

	Output string `short:"o" long:"output" value-name:"FILE" description:"output to specified file"`

	CommentTags []string `short:"c" long:"add-comments" optional:"true" optional-value:"" value-name:"TAG" description:"place comment blocks starting with TAG preceding keyword lines in the template"`

	Keywords []string `short:"k" long:"keyword" optional:"true" optional-value:"" value-name:"WORD" description:"look for WORD as a lookup function"`

	NoLocation bool `long:"no-location" description:"do not write '# filename:line' lines"`

	Catalog string `long:"catalog" value-name:"FILE" description:"check keys against the TOML or YAML catalog in FILE instead of the builtin one"`

	Template string `short:"t" long:"template" value-name:"LANG" description:"write a catalog template for LANG instead of listing keys"`

	Check bool `long:"check" description:"exit with status 1 if a key is missing from the catalog"`
}

func loadCatalog(path string) (*i18n.Catalog, error) {
	if path == "" {
		return i18n.Builtin(), nil
	}
	dicts, err := i18n.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return i18n.New(i18n.WithDictionaries(dicts))
}

func main() {
	// parse args
	var opts options
	args, err := flags.ParseArgs(&opts, os.Args)
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	var files []string
	if opts.FilesFrom != "" {
		content, err := ioutil.ReadFile(opts.FilesFrom)
		if err != nil {
			log.Fatalf("cannot read file %v: %v", opts.FilesFrom, err)
		}
		content = bytes.TrimSpace(content)
		files = strings.Split(string(content), "\n")
	} else {
		files = args[1:]
	}

	scanner := keyscan.Scanner{
		Directories: opts.Directories,
		CommentTags: opts.CommentTags,
		NoLocation:  opts.NoLocation,
	}
	addDefaultKeywords := true
	for _, spec := range opts.Keywords {
		if spec == "" {
			// a bare "-k" option disables the default keywords
			addDefaultKeywords = false
			continue
		}
		kw, err := keyscan.ParseKeyword(spec)
		if err != nil {
			log.Fatalf("cannot parse keyword %s: %s", spec, err)
		}
		scanner.Keywords = append(scanner.Keywords, kw)
	}
	if addDefaultKeywords {
		scanner.AddDefaultKeywords()
	}

	for _, filename := range files {
		if err := scanner.ParseFile(filename); err != nil {
			log.Fatalf("cannot parse file %s: %s", filename, err)
		}
	}

	cat, err := loadCatalog(opts.Catalog)
	if err != nil {
		log.Fatalf("cannot load catalog: %s", err)
	}

	out := os.Stdout
	if opts.Output != "" {
		var err error
		out, err = os.Create(opts.Output)
		if err != nil {
			log.Fatalf("failed to create %s: %s", opts.Output, err)
		}
		defer out.Close()
	}

	if opts.Template != "" {
		lang := strings.ToLower(opts.Template)
		if _, ok := i18n.LookupRule(lang); !ok {
			log.Printf("no plural rule for %q, using the default rule", lang)
		}
		var categories []string
		for _, c := range i18n.RuleFor(lang).Categories() {
			categories = append(categories, c.String())
		}
		if err := scanner.WriteTemplate(out, lang, categories, formatTime()); err != nil {
			log.Fatalf("failed to write template: %s", err)
		}
		return
	}

	missing := scanner.Missing(cat.HasKey)
	for _, key := range scanner.SortedKeys() {
		status := "ok"
		if !cat.HasKey(key) {
			status = "missing"
		}
		fmt.Fprintf(out, "%s\t%s\n", status, key)
	}
	if opts.Check && len(missing) > 0 {
		log.Printf("%d keys missing from the catalog", len(missing))
		os.Exit(1)
	}
}
