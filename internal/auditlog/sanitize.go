package auditlog

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// secretFlags have their values replaced outright.
var secretFlags = map[string]bool{
	"--password":      true,
	"--token":         true,
	"--refresh-token": true,
	"--card":          true,
}

// freeTextFlags carry personal prose (cover letters, profile text). Only
// the length is kept.
var freeTextFlags = map[string]bool{
	"--cover-letter": true,
	"--summary":      true,
	"--about":        true,
	"--description":  true,
}

// SanitizeArgs redacts secrets and personal free text from command-line
// arguments before they are stored. Both "--flag value" and "--flag=value"
// forms are handled.
func SanitizeArgs(args []string) []string {
	out := make([]string, 0, len(args))
	var pending string

	for _, arg := range args {
		if pending != "" {
			out = append(out, redact(pending, arg))
			pending = ""
			continue
		}

		name, value, hasValue := strings.Cut(arg, "=")
		if !secretFlags[name] && !freeTextFlags[name] {
			out = append(out, arg)
			continue
		}
		if hasValue {
			out = append(out, name+"="+redact(name, value))
			continue
		}
		out = append(out, arg)
		pending = name
	}

	if pending != "" {
		out = append(out, "<redacted>")
	}
	return out
}

func redact(flag, value string) string {
	if freeTextFlags[flag] {
		return "<" + strconv.Itoa(utf8.RuneCountInString(value)) + " chars>"
	}
	return "<redacted>"
}
