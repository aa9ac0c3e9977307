// Package narrate turns identifier-like names into readable step sentences.
//
// Go has no compile-time capture of the calling member's name, so default
// descriptions are derived at runtime from function symbols:
//
//	narrate.Sentence("TheTemperatureIsBelow0c")   // "The Temperature Is Below0c"
//	narrate.FuncName(IWantToGoPlayOutside)         // "IWantToGoPlayOutside"
//	narrate.Sentence(narrate.CallerName(0))        // name of the calling function
//
// Derived names are a convenience only. Callers that care about wording should
// always pass an explicit description.
package narrate

import (
	"reflect"
	"runtime"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Sentence converts an identifier into a space separated sentence.
//
// A space is inserted before every upper-case rune that is not the first one,
// underscores become spaces, runs of spaces collapse to one and the result is
// trimmed. The output is NFC normalized so identical names always render to
// identical bytes.
func Sentence(identifier string) string {
	var b strings.Builder
	b.Grow(len(identifier) + len(identifier)/4)

	for i, r := range identifier {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case i > 0 && unicode.IsUpper(r):
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}

	return norm.NFC.String(strings.Join(strings.Fields(b.String()), " "))
}

// FuncName returns the declared name of a function value.
//
// Closures resolve to the function that declares them and method values
// resolve to the method name. Returns "" when fn is not a non-nil function.
func FuncName(fn any) string {
	if fn == nil {
		return ""
	}
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return ""
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return ""
	}
	return declaredName(f.Name())
}

// CallerName returns the declared name of the function skip frames above the
// caller of CallerName. CallerName(0) names the function that called it.
func CallerName(skip int) string {
	pcs := make([]uintptr, 1)
	// skip Callers and CallerName
	if runtime.Callers(skip+2, pcs) == 0 {
		return ""
	}
	frame, _ := runtime.CallersFrames(pcs).Next()
	return declaredName(frame.Function)
}

// TrimTestPrefix drops a leading "Test" from a Go test function name, along
// with a following underscore. Names where "Test" is part of a longer word
// ("Testament") are returned unchanged.
func TrimTestPrefix(name string) string {
	rest, ok := strings.CutPrefix(name, "Test")
	if !ok || rest == "" {
		return name
	}
	first := []rune(rest)[0]
	if first == '_' {
		return strings.TrimLeft(rest, "_")
	}
	if unicode.IsUpper(first) || unicode.IsDigit(first) {
		return rest
	}
	return name
}

// declaredName reduces a runtime symbol such as
// "github.com/acme/pkg.(*T).TestFoo.func1.2" to "TestFoo".
func declaredName(symbol string) string {
	name := symbol
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	// package qualifier
	if i := strings.Index(name, "."); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")

	parts := strings.Split(name, ".")
	for len(parts) > 1 && isSyntheticSegment(parts[len(parts)-1]) {
		parts = parts[:len(parts)-1]
	}
	name = parts[len(parts)-1]

	if i := strings.Index(name, "["); i >= 0 {
		name = name[:i]
	}
	name = strings.TrimPrefix(name, "(*")
	name = strings.TrimPrefix(name, "(")
	return strings.TrimSuffix(name, ")")
}

// isSyntheticSegment reports whether a symbol segment was generated by the
// compiler for a closure or go statement wrapper.
func isSyntheticSegment(seg string) bool {
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if rest, ok := strings.CutPrefix(seg, prefix); ok && isDigits(rest) {
			return true
		}
	}
	return isDigits(seg)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
