package validation

import (
	"fmt"
	"math"
	"path"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"vendor_registration/internal/domain/entities"
)

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<(script|style)\b[^>]*>.*?</(script|style)\s*>`)
	tagRe         = regexp.MustCompile(`(?s)<[^>]*>`)
	jsSchemeRe    = regexp.MustCompile(`(?i)javascript\s*:`)
)

// Engine sanitizes and validates vendor submissions against an injected rule
// table. It holds no mutable state and is safe for concurrent use.
type Engine struct {
	rules RuleSet
	files FileRules
}

func NewEngine(rules RuleSet, files FileRules) *Engine {
	return &Engine{rules: rules, files: files}
}

// Sanitize strips script blocks, HTML tags and javascript: schemes from every
// string field and trims surrounding whitespace.
func (e *Engine) Sanitize(s entities.VendorSubmission) entities.VendorSubmission {
	return s.MapStrings(SanitizeString)
}

func SanitizeString(v string) string {
	v = scriptBlockRe.ReplaceAllString(v, "")
	v = tagRe.ReplaceAllString(v, "")
	v = jsSchemeRe.ReplaceAllString(v, "")
	return strings.TrimSpace(v)
}

// Validate evaluates every field rule and collects one message per failing
// field. It never returns an error.
func (e *Engine) Validate(s entities.VendorSubmission) Result {
	values := s.Values()
	errs := make(map[string]string)

	for _, fr := range e.rules {
		if msg, ok := checkField(fr.Field, values[fr.Field], fr.Rule); !ok {
			errs[fr.Field] = msg
		}
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func checkField(field, value string, r Rule) (string, bool) {
	label := r.Label
	if label == "" {
		label = field
	}

	value = strings.TrimSpace(value)
	if value == "" {
		if r.Required {
			return fmt.Sprintf("%s is required", label), false
		}
		return "", true
	}

	n := utf8.RuneCountInString(value)
	if r.MinLength > 0 && n < r.MinLength {
		return fmt.Sprintf("%s must be at least %d characters", label, r.MinLength), false
	}
	if r.MaxLength > 0 && n > r.MaxLength {
		return fmt.Sprintf("%s must not exceed %d characters", label, r.MaxLength), false
	}

	if r.Numeric {
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return fmt.Sprintf("%s must be a valid number", label), false
		}
		if r.Min != nil && f < *r.Min {
			return fmt.Sprintf("%s must be at least %s", label, formatNumber(*r.Min)), false
		}
		if r.Max != nil && f > *r.Max {
			return fmt.Sprintf("%s must not exceed %s", label, formatNumber(*r.Max)), false
		}
	}

	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		if r.Message != "" {
			return r.Message, false
		}
		return fmt.Sprintf("%s has an invalid format", label), false
	}

	return "", true
}

// ValidateFiles checks the document list against the file rules. Exceeding
// the file count yields a single aggregate error and skips per-file checks.
func (e *Engine) ValidateFiles(docs []entities.Document) []string {
	if e.files.MaxCount > 0 && len(docs) > e.files.MaxCount {
		return []string{fmt.Sprintf("Maximum %d files allowed, received %d", e.files.MaxCount, len(docs))}
	}

	var errs []string
	for i, d := range docs {
		prefix := fmt.Sprintf("File %d (%s)", i+1, d.Name)

		if e.files.MaxSize > 0 && d.Size > e.files.MaxSize {
			errs = append(errs, fmt.Sprintf("%s: size exceeds the maximum of %s", prefix, formatBytes(e.files.MaxSize)))
		}
		if len(e.files.AllowedTypes) > 0 && !containsFold(e.files.AllowedTypes, mediaType(d.MimeType)) {
			errs = append(errs, fmt.Sprintf("%s: file type %q is not allowed", prefix, d.MimeType))
		}
		if len(e.files.AllowedExtensions) > 0 {
			ext := Extension(d.Name)
			if ext == "" || !containsFold(e.files.AllowedExtensions, ext) {
				errs = append(errs, fmt.Sprintf("%s: file extension %q is not allowed", prefix, ext))
			}
		}
	}
	return errs
}

// Extension returns the lower-cased suffix after the last dot, without the dot.
func Extension(name string) string {
	ext := path.Ext(strings.TrimSpace(name))
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

func mediaType(mime string) string {
	if i := strings.IndexByte(mime, ';'); i >= 0 {
		mime = mime[:i]
	}
	return strings.TrimSpace(mime)
}

func containsFold(list []string, v string) bool {
	for _, item := range list {
		if strings.EqualFold(strings.TrimPrefix(strings.TrimSpace(item), "."), v) {
			return true
		}
	}
	return false
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatBytes(n int64) string {
	const mb = 1024 * 1024
	if n >= mb && n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	if n >= mb {
		return fmt.Sprintf("%.1fMB", float64(n)/mb)
	}
	return fmt.Sprintf("%d bytes", n)
}
