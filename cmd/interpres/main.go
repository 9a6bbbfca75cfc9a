// Command interpres translates Latin and English words from the terminal.
//
// Usage:
//
//	interpres [-config FILE] transLat [-m N] [-s] [-p] [-d] [-t] WORD...
//	interpres [-config FILE] transEng [-m N] [-s] [-p] [-d] WORD...
//	interpres [-config FILE] getList [--pos LIST] [--min N] [--max N] [--exact N]
//	                                 [--amount N] [--random] [--display] [--to FILE] TYPE
//	interpres help [COMMAND]
//	interpres [tui]
//
// Without a command an interactive shell is started.
package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/cours-de-latin/interpres"
	"github.com/cours-de-latin/interpres/internal/config"
)

const shellMax = 6

var usages = map[string]string{
	"transLat": `transLat [-m N] [-s] [-p] [-d] [-t] WORD...
    Translate Latin words to English.
    -m, --max N      maximum definitions per word (default from config, 6)
    -s, --sort       sort definitions by frequency
    -p, --pretty     human-readable output instead of JSON
    -d, --detailed   with --pretty, show analyses and decomposition
    -t, --tricks     strip enclitics, prefixes and suffixes when needed`,
	"transEng": `transEng [-m N] [-s] [-p] [-d] WORD...
    Translate English words to Latin.
    -m, --max N      maximum definitions per word
    -s, --sort       sort definitions by frequency
    -p, --pretty     human-readable output instead of JSON
    -d, --detailed   with --pretty, show details`,
	"getList": `getList [flags] TYPE
    List a lexical table. TYPE is one of english, latin, inflections, stems,
    prefixes, suffixes, packons, not_packons, tackons, tickons, unique_latin.
    --pos LIST       comma-separated parts of speech (noun,verb,adj,...)
    --min N          minimum length
    --max N          maximum length
    --exact N        exact length
    --amount N       number of rows to return
    --random         pick the rows at random (requires --amount)
    --display        print the list even when writing to a file
    --to FILE        write the list to FILE.json`,
	"help": `help [COMMAND]
    Show the help of every command, or of one.`,
	"tui": `tui
    Interactive shell. Commands: .help .switch .clear .exit .quit q`,
}

var commandOrder = []string{"transLat", "transEng", "getList", "help", "tui"}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("interpres", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "path to a YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	args = fs.Args()

	cmd := "tui"
	if len(args) > 0 {
		cmd, args = args[0], args[1:]
	}
	if cmd == "help" {
		return help(stdout, stderr, args)
	}
	if _, ok := usages[cmd]; !ok {
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		help(stderr, stderr, nil)
		return 2
	}

	cfg, err := config.Load(*cfgPath, nil)
	if err != nil {
		fmt.Fprintf(stderr, "config: %v\n", err)
		return 1
	}
	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))

	start := time.Now()
	store, err := interpres.Default()
	if err != nil {
		logger.Error("load lexicon", "err", err)
		return 1
	}
	tr, err := interpres.New(store, cfg.Options())
	if err != nil {
		logger.Error("create translator", "err", err)
		return 1
	}
	logger.Debug("lexicon loaded", "elapsed", time.Since(start), "latin", len(store.LatinEntries()))

	switch cmd {
	case "transLat":
		err = translate(tr, cfg, true, args, stdout)
	case "transEng":
		err = translate(tr, cfg, false, args, stdout)
	case "getList":
		err = getList(store, args, stdin, stdout)
	case "tui":
		err = shell(tr, stdin, stdout)
	}
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Error(cmd, "err", err)
		return 1
	}
	return 0
}

func help(stdout, stderr io.Writer, args []string) int {
	if len(args) == 0 {
		fmt.Fprintln(stdout, "usage: interpres [-config FILE] COMMAND [ARGS]")
		fmt.Fprintln(stdout)
		for _, name := range commandOrder {
			fmt.Fprintf(stdout, "  %s\n\n", usages[name])
		}
		return 0
	}
	u, ok := usages[args[0]]
	if !ok {
		fmt.Fprintf(stderr, "unknown command %q\n", args[0])
		return 2
	}
	fmt.Fprintln(stdout, u)
	return 0
}

// newFlags returns a flag set that prints the command's usage on error.
func newFlags(name string, out io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(out)
	fs.Usage = func() { fmt.Fprintln(out, usages[name]) }
	return fs
}

func translate(tr *interpres.Translator, cfg config.Config, latin bool, args []string, stdout io.Writer) error {
	name := "transEng"
	if latin {
		name = "transLat"
	}
	fs := newFlags(name, stdout)
	limit := cfg.Translate.Max
	sort := cfg.Translate.Sort
	tricks := cfg.Translate.Tricks
	var pretty, detailed bool
	fs.IntVar(&limit, "m", limit, "")
	fs.IntVar(&limit, "max", limit, "")
	fs.BoolVar(&sort, "s", sort, "")
	fs.BoolVar(&sort, "sort", sort, "")
	fs.BoolVar(&pretty, "p", false, "")
	fs.BoolVar(&pretty, "pretty", false, "")
	fs.BoolVar(&detailed, "d", false, "")
	fs.BoolVar(&detailed, "detailed", false, "")
	if latin {
		fs.BoolVar(&tricks, "t", tricks, "")
		fs.BoolVar(&tricks, "tricks", tricks, "")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if detailed && !pretty {
		return errors.New("--detailed requires --pretty")
	}
	if limit < 0 {
		return fmt.Errorf("--max must be >= 0, got %d", limit)
	}
	text := strings.Join(fs.Args(), " ")
	if strings.TrimSpace(text) == "" {
		return errors.New("no words given")
	}

	var out []interpres.Translation
	if latin {
		out = tr.LatinToEnglish(text, limit, tricks, sort)
	} else {
		out = tr.EnglishToLatin(text, limit, sort)
	}
	return render(stdout, out, pretty, detailed)
}

func render(w io.Writer, out []interpres.Translation, pretty, detailed bool) error {
	if !pretty {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}
	for _, t := range out {
		if err := t.Format(w, detailed); err != nil {
			return err
		}
	}
	return nil
}

func getList(store *interpres.Store, args []string, stdin io.Reader, stdout io.Writer) error {
	fs := newFlags("getList", stdout)
	var (
		q       interpres.ListQuery
		posList string
		display bool
		to      string
	)
	fs.StringVar(&posList, "pos", "", "")
	fs.IntVar(&q.Min, "min", 0, "")
	fs.IntVar(&q.Max, "max", 0, "")
	fs.IntVar(&q.Exact, "exact", 0, "")
	fs.IntVar(&q.Amount, "amount", 0, "")
	fs.BoolVar(&q.Random, "random", false, "")
	fs.BoolVar(&display, "display", false, "")
	fs.StringVar(&to, "to", "", "")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("getList needs exactly one TYPE")
	}
	if q.Random && q.Amount <= 0 {
		return errors.New("--random requires --amount")
	}
	if q.Min < 0 || q.Max < 0 || q.Exact < 0 || q.Amount < 0 {
		return errors.New("length bounds and amount must be >= 0")
	}
	typ, err := interpres.ParseWordType(fs.Arg(0))
	if err != nil {
		return err
	}
	q.Type = typ
	if posList != "" {
		if q.POS, err = interpres.ParsePOSList(posList); err != nil {
			return err
		}
	}

	res, err := store.List(q)
	if err != nil {
		return err
	}
	if to == "" || display {
		if err := interpres.WriteList(stdout, res); err != nil {
			return err
		}
	}
	if to == "" {
		return nil
	}

	path, err := interpres.ExportList(to, res, false)
	if errors.Is(err, interpres.ErrFileExists) {
		if !confirm(stdin, stdout, fmt.Sprintf("%s exists, overwrite? [y/N] ", path)) {
			fmt.Fprintln(stdout, "not written")
			return nil
		}
		path, err = interpres.ExportList(to, res, true)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %d rows to %s\n", res.Len(), path)
	return nil
}

func confirm(stdin io.Reader, stdout io.Writer, prompt string) bool {
	fmt.Fprint(stdout, prompt)
	sc := bufio.NewScanner(stdin)
	if !sc.Scan() {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(sc.Text())) {
	case "y", "yes":
		return true
	}
	return false
}

// shell is the interactive mode. Lines are translated with tricks and
// sorting on; .switch toggles the input language.
func shell(tr *interpres.Translator, stdin io.Reader, stdout io.Writer) error {
	fmt.Fprintln(stdout, "interpres interactive mode. Type .help for commands.")
	latin := true
	sc := bufio.NewScanner(stdin)
	for {
		if latin {
			fmt.Fprint(stdout, "latin> ")
		} else {
			fmt.Fprint(stdout, "english> ")
		}
		if !sc.Scan() {
			fmt.Fprintln(stdout)
			return sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch line {
		case "":
			continue
		case ".exit", ".quit", "q":
			return nil
		case ".help":
			fmt.Fprintln(stdout, "  .switch  toggle Latin/English input")
			fmt.Fprintln(stdout, "  .clear   clear the screen")
			fmt.Fprintln(stdout, "  .exit, .quit, q  leave")
			continue
		case ".switch":
			latin = !latin
			continue
		case ".clear":
			fmt.Fprint(stdout, "\033[H\033[2J")
			continue
		}

		var out []interpres.Translation
		if latin {
			out = tr.LatinToEnglish(line, shellMax, true, true)
		} else {
			out = tr.EnglishToLatin(line, shellMax, true)
		}
		if err := render(stdout, out, true, false); err != nil {
			return err
		}
	}
}
