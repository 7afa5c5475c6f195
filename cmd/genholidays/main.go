// Command genholidays fetches a holiday list in CSV form and generates a Go
// source file declaring it as a holidays.Table.
//
// The CSV starts with a header row followed by "date,name" rows. A source is
// either an HTTPS URL on an allowed host or a local file. When several
// sources are given they are tried in order until one succeeds.
//
// Usage:
//
//	genholidays \
//	    --source https://www8.cao.go.jp/chosei/shukujitsu/syukujitsu.csv \
//	    --encoding shift_jis --date-layout 2006/1/2 \
//	    --name Japan --var Japan --output ../../holidays/japan.go
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"go/format"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	httpTimeout = 30 * time.Second
	maxRetries  = 3

	// Maximum response size to prevent memory exhaustion.
	maxCSVResponseSize = 5 * 1024 * 1024

	userAgent = "businesstime-genholidays/1.0 (https://github.com/rabitt1ove/businesstime)"
)

// retryBaseDelay is the base delay between retry attempts (variable for testing).
var retryBaseDelay = 2 * time.Second

var encodings = map[string]encoding.Encoding{
	"utf-8":        unicode.UTF8BOM,
	"shift_jis":    japanese.ShiftJIS,
	"euc-jp":       japanese.EUCJP,
	"windows-1252": charmap.Windows1252,
	"iso-8859-1":   charmap.ISO8859_1,
}

type options struct {
	sources    []string
	allowHosts []string
	encoding   string
	dateLayout string
	name       string
	varName    string
	pkg        string
	fromYear   int
	toYear     int
	minRows    int
	output     string
	verbose    bool
}

type holiday struct {
	year  int
	month time.Month
	day   int
	name  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "genholidays",
		Short: "Generate a holidays.Table from a CSV holiday list",
		Long: `genholidays downloads (or reads) a CSV list of holidays and writes a Go
file declaring it as a holidays.Table with bounded year coverage.

The first CSV row is a header. Every following row holds a date and a
holiday name; rows with an empty date or name are skipped.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
			client := &http.Client{Timeout: httpTimeout}
			return run(cmd.Context(), client, logger, opts)
		},
	}

	f := cmd.Flags()
	f.StringSliceVar(&opts.sources, "source", nil, "CSV URL or file; repeat to add fallbacks")
	f.StringSliceVar(&opts.allowHosts, "allow-host", nil, "extra host allowed for HTTPS sources (the hosts of --source URLs are always allowed)")
	f.StringVar(&opts.encoding, "encoding", "utf-8", "CSV character encoding: "+strings.Join(encodingNames(), ", "))
	f.StringVar(&opts.dateLayout, "date-layout", time.DateOnly, "Go time layout of the date column")
	f.StringVar(&opts.name, "name", "", "table name, e.g. \"Japan\"")
	f.StringVar(&opts.varName, "var", "", "Go variable name (default: --name)")
	f.StringVar(&opts.pkg, "package", "holidays", "package of the generated file")
	f.IntVar(&opts.fromYear, "from", 0, "first year to keep (default: earliest year in the data)")
	f.IntVar(&opts.toYear, "to", 0, "last year to keep (default: latest year in the data)")
	f.IntVar(&opts.minRows, "min-rows", 1, "fail if fewer holidays remain")
	f.StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every request")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func encodingNames() []string {
	names := make([]string, 0, len(encodings))
	for n := range encodings {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func run(ctx context.Context, client *http.Client, logger *slog.Logger, opts options) error {
	enc, ok := encodings[strings.ToLower(opts.encoding)]
	if !ok {
		return fmt.Errorf("unknown encoding %q (want one of %s)", opts.encoding, strings.Join(encodingNames(), ", "))
	}
	if opts.varName == "" {
		opts.varName = opts.name
	}
	if !isExported(opts.varName) {
		return fmt.Errorf("variable name %q must be an exported Go identifier", opts.varName)
	}

	allowed := make(map[string]bool)
	for _, h := range opts.allowHosts {
		allowed[strings.ToLower(h)] = true
	}
	for _, s := range opts.sources {
		if u, err := url.Parse(s); err == nil && u.Scheme == "https" {
			allowed[strings.ToLower(u.Hostname())] = true
		}
	}

	// Redirects must stay on allowed hosts too.
	redirecting := *client
	redirecting.CheckRedirect = func(req *http.Request, _ []*http.Request) error {
		return validateSourceURL(req.URL.String(), allowed)
	}
	client = &redirecting

	body, src, err := fetchFirst(ctx, client, logger, opts.sources, allowed)
	if err != nil {
		return fmt.Errorf("failed to fetch CSV: %w", err)
	}

	holidays, err := parseCSV(transform.NewReader(bytes.NewReader(body), enc.NewDecoder()), opts.dateLayout)
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}
	holidays, from, to := clip(holidays, opts.fromYear, opts.toYear)
	if len(holidays) < opts.minRows {
		return fmt.Errorf("validation failed: expected at least %d rows, got %d", opts.minRows, len(holidays))
	}

	code, err := generate(opts.pkg, opts.name, opts.varName, src, from, to, holidays)
	if err != nil {
		return fmt.Errorf("failed to generate source: %w", err)
	}

	if opts.output == "" {
		_, err := os.Stdout.Write(code)
		return err
	}
	if err := os.WriteFile(opts.output, code, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("wrote holidays", "count", len(holidays), "from", from, "to", to, "output", opts.output)
	return nil
}

func isExported(name string) bool {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for _, r := range name {
		if r != '_' && (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}

// validateSourceURL checks that a URL points to an allowed host (SSRF prevention).
func validateSourceURL(rawURL string, allowed map[string]bool) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", rawURL, err)
	}
	if parsed.Scheme != "https" {
		return fmt.Errorf("URL %q: only HTTPS is allowed", rawURL)
	}
	if !allowed[strings.ToLower(parsed.Hostname())] {
		return fmt.Errorf("URL %q: host %q is not in the allowed list", rawURL, parsed.Hostname())
	}
	return nil
}

func isURL(source string) bool {
	return strings.Contains(source, "://")
}

// fetchFirst tries the sources in order and returns the first body read
// together with the source it came from.
func fetchFirst(ctx context.Context, client *http.Client, logger *slog.Logger, sources []string, allowed map[string]bool) ([]byte, string, error) {
	if len(sources) == 0 {
		return nil, "", errors.New("no source given")
	}
	var errs []error
	for _, src := range sources {
		var (
			body []byte
			err  error
		)
		if isURL(src) {
			if err = validateSourceURL(src, allowed); err == nil {
				body, err = fetchWithRetry(ctx, client, logger, src)
			}
		} else {
			body, err = readFile(src)
		}
		if err != nil {
			logger.Warn("source failed", "source", src, "err", err)
			errs = append(errs, err)
			continue
		}
		return body, src, nil
	}
	return nil, "", fmt.Errorf("all sources failed: %w", errors.Join(errs...))
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return readLimited(f, path)
}

func readLimited(r io.Reader, src string) ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r, maxCSVResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", src, err)
	}
	if len(b) > maxCSVResponseSize {
		return nil, fmt.Errorf("%s: larger than %d bytes", src, maxCSVResponseSize)
	}
	return b, nil
}

// fetchWithRetry fetches a URL with exponential backoff retries.
func fetchWithRetry(ctx context.Context, client *http.Client, logger *slog.Logger, url string) ([]byte, error) {
	var lastErr error
	for attempt := range maxRetries {
		if attempt > 0 {
			delay := retryBaseDelay * time.Duration(1<<(attempt-1))
			logger.Debug("retrying", "url", url, "delay", delay, "attempt", attempt+1, "max", maxRetries)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		logger.Debug("fetching", "url", url)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", userAgent)

		resp, err := client.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("GET %s: %w", url, err)
			logger.Debug("request failed", "url", url, "err", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			resp.Body.Close()
			lastErr = fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
			logger.Debug("retryable status", "url", url, "status", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("GET %s: status %d", url, resp.StatusCode)
		}

		body, err := readLimited(resp.Body, url)
		resp.Body.Close()
		return body, err
	}
	return nil, lastErr
}

// parseCSV reads the header and then one holiday per row.
func parseCSV(r io.Reader, layout string) ([]holiday, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("unexpected header columns: %d (expected 2)", len(header))
	}

	var holidays []holiday
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("line %d: expected 2 columns, got %d", line, len(record))
		}

		dateStr := strings.TrimSpace(record[0])
		name := strings.TrimSpace(record[1])
		if dateStr == "" || name == "" {
			continue
		}

		t, err := time.Parse(layout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid date %q: %w", line, dateStr, err)
		}
		holidays = append(holidays, holiday{year: t.Year(), month: t.Month(), day: t.Day(), name: name})
	}
	return holidays, nil
}

// clip keeps the holidays within [from, to] and returns the coverage.
// A zero bound defaults to the data's earliest or latest year.
func clip(hs []holiday, from, to int) ([]holiday, int, int) {
	minYear, maxYear := 0, 0
	for _, h := range hs {
		if minYear == 0 || h.year < minYear {
			minYear = h.year
		}
		if h.year > maxYear {
			maxYear = h.year
		}
	}
	if from == 0 {
		from = minYear
	}
	if to == 0 {
		to = maxYear
	}
	kept := hs[:0:0]
	for _, h := range hs {
		if h.year >= from && h.year <= to {
			kept = append(kept, h)
		}
	}
	return kept, from, to
}

func compareHolidays(a, b holiday) int {
	if a.year != b.year {
		return a.year - b.year
	}
	if a.month != b.month {
		return int(a.month - b.month)
	}
	return a.day - b.day
}

// monthConstName returns the time.Month constant name (e.g., "time.January").
func monthConstName(m time.Month) string {
	return "time." + m.String()
}

// generate produces a formatted Go source file declaring the table.
func generate(pkg, name, varName, source string, from, to int, holidays []holiday) ([]byte, error) {
	holidays = slices.Clone(holidays)
	slices.SortStableFunc(holidays, compareHolidays)

	// Inside package holidays the unexported on helper is available.
	entry := func(h holiday) string {
		return fmt.Sprintf("on(%d, %s, %d, %q)", h.year, monthConstName(h.month), h.day, h.name)
	}
	newTable := "NewTable"
	if pkg != "holidays" {
		entry = func(h holiday) string {
			return fmt.Sprintf("holidays.Holiday{Date: time.Date(%d, %s, %d, 0, 0, 0, 0, time.UTC), Name: %q}",
				h.year, monthConstName(h.month), h.day, h.name)
		}
		newTable = "holidays.NewTable"
	}

	var b strings.Builder
	b.WriteString("// Code generated by cmd/genholidays; DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	if pkg == "holidays" {
		b.WriteString("import \"time\"\n\n")
	} else {
		b.WriteString("import (\n\t\"time\"\n\n\t\"github.com/rabitt1ove/businesstime/holidays\"\n)\n\n")
	}
	fmt.Fprintf(&b, "// %s holds the %s holidays for %d-%d.\n", varName, name, from, to)
	fmt.Fprintf(&b, "// Source: %s\n", source)
	fmt.Fprintf(&b, "var %s = %s(%q, %d, %d,\n", varName, newTable, name, from, to)

	currentYear := 0
	for _, h := range holidays {
		if h.year != currentYear {
			if currentYear != 0 {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "\t// %d\n", h.year)
			currentYear = h.year
		}
		fmt.Fprintf(&b, "\t%s,\n", entry(h))
	}
	b.WriteString(")\n")

	return format.Source([]byte(b.String()))
}
