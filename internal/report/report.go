package report

import (
	"fmt"
	"io"
	"runtime"
	"strings"
	"time"

	"github.com/p7r0x7/vainpath"

	"github.com/ykhdr/dict-crack/internal/digest"
	"github.com/ykhdr/dict-crack/internal/hashcrack"
)

const banner = `
+-----------------------------------------------------------+
|                 D I C T - C R A C K                       |
|        parallel dictionary attack on a single digest      |
+-----------------------------------------------------------+
`

// boxWidth is the width of the value column in the result box.
const boxWidth = 28

type Header struct {
	Target    string
	Algorithm digest.Algorithm
	Wordlist  string
	Threads   int
}

// Printer writes the human readable report. Quiet printers emit only the
// cracked word.
type Printer struct {
	w                     io.Writer
	quiet                 bool
	yell, purp, und, zero string
}

func New(w io.Writer, noFormat, quiet bool) *Printer {
	p := &Printer{w: w, quiet: quiet}
	if runtime.GOOS != "windows" && !noFormat && !quiet {
		p.yell, p.purp, p.und, p.zero = "\033[33m", "\033[35m", "\033[4m", "\033[0m"
	}
	return p
}

func (p *Printer) printf(format string, args ...any) {
	if p.quiet {
		return
	}
	_, _ = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) Banner() {
	p.printf("%s%s%s\n", p.purp, banner, p.zero)
}

func (p *Printer) Header(h Header) {
	path := h.Wordlist
	if path == "-" {
		path = "STDIN"
	} else {
		path = vainpath.Simplify(path)
	}
	p.printf("[*] Target hash: %s\n", h.Target)
	p.printf("[*] Hash type: %s%s%s\n", p.yell, h.Algorithm, p.zero)
	p.printf("[*] Wordlist: %s%s%s\n", p.und, path, p.zero)
	p.printf("[*] Threads: %d\n\n", h.Threads)
}

func (p *Printer) Loaded(words, skipped int) {
	p.printf("[*] Loaded %d words", words)
	if skipped > 0 {
		p.printf(" (%d undecodable lines skipped)", skipped)
	}
	p.printf("\n[*] Starting crack...\n\n")
}

func (p *Printer) Result(res *hashcrack.Result, target string) {
	if p.quiet {
		if res.Found {
			_, _ = fmt.Fprintln(p.w, res.Word)
		}
		return
	}
	if res.Found {
		p.printf("%s+------------------------------------------+\n", p.yell)
		p.printf("|             PASSWORD FOUND!              |\n")
		p.printf("+------------------------------------------+\n")
		p.printf("| Hash:     %-*s   |\n", boxWidth, truncate(target, boxWidth))
		p.printf("| Password: %-*s   |\n", boxWidth, res.Word)
		p.printf("+------------------------------------------+%s\n", p.zero)
	} else {
		p.printf("%s[-] Password not found in wordlist%s\n", p.purp, p.zero)
	}
	p.Statistics(res)
}

func (p *Printer) Statistics(res *hashcrack.Result) {
	p.printf("\n[*] Statistics:\n")
	p.printf("    Attempts: %d\n", res.Attempts)
	p.printf("    Time: %s\n", res.Elapsed.Round(time.Microsecond))
	if rate, ok := res.Throughput(); ok {
		p.printf("    Speed: %.0f H/s\n", rate)
	} else {
		p.printf("    Speed: n/a\n")
	}
}

func (p *Printer) Interrupted() {
	p.printf("%s[-] Interrupted before the wordlist was exhausted%s\n", p.purp, p.zero)
}

// Usage is printed even by quiet printers.
func (p *Printer) Usage(flagUsages string) {
	var detected []string
	for _, a := range []digest.Algorithm{digest.MD5, digest.SHA1, digest.SHA256, digest.SHA512} {
		detected = append(detected, fmt.Sprintf("  %-8s (%d chars)", a, a.HexLen()))
	}
	var named []string
	for _, a := range digest.Algorithms() {
		named = append(named, strings.ToLower(a.String()))
	}
	_, _ = fmt.Fprintf(p.w, "%sParallel dictionary attack against a single hash digest.%s\n\n"+
		"Usage:\n"+
		"  dictcrack [flags] <hash> <wordlist|-> [threads]\n\n"+
		"Detected hash types:\n%s\n\n"+
		"Algorithms for --algorithm:\n  %s\n\n"+
		"Options:\n%s",
		p.yell, p.zero,
		strings.Join(detected, "\n"),
		strings.Join(named, ", "),
		flagUsages)
}

// Failure reports a fatal error on w regardless of quiet mode.
func (p *Printer) Failure(err error) {
	_, _ = fmt.Fprintf(p.w, "%s[-] %v%s\n", p.purp, err, p.zero)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
