// Package flagx lets several config stages share one command line: each
// stage keeps only the flags it owns and parses those with its own FlagSet.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// FilterArgs returns the arguments that belong to the named flags, in their
// original order. Names are given without dashes; both "-name" and "--name"
// spellings are recognised, as are "-name value" and "-name=value" forms.
//
// A separate value is only taken when the next argument does not start with
// '-', so boolean flags must be written as "-name" or "-name=true".
func FilterArgs(args []string, names []string) []string {
	owned := make(map[string]struct{}, len(names))
	for _, n := range names {
		owned[n] = struct{}{}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		name, hasValue, ok := flagName(args[i])
		if !ok {
			continue
		}
		if _, mine := owned[name]; !mine {
			continue
		}
		out = append(out, args[i])
		if !hasValue && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			out = append(out, args[i+1])
			i++
		}
	}
	return out
}

// flagName extracts the flag name from "-n", "--n", "-n=v" or "--n=v".
func flagName(arg string) (name string, hasValue bool, ok bool) {
	if len(arg) < 2 || arg[0] != '-' {
		return "", false, false
	}
	s := strings.TrimPrefix(strings.TrimPrefix(arg, "-"), "-")
	if s == "" {
		return "", false, false
	}
	if i := strings.IndexByte(s, '='); i >= 0 {
		return s[:i], true, true
	}
	return s, false, true
}

// ConfigPath returns the JSON config file path given with -c or -config,
// or "" when neither is present.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(FilterArgs(args, []string{"c", "config"}))

	return path
}
