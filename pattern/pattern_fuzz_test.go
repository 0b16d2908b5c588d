package pattern

import "testing"

// FuzzParse feeds arbitrary strings through Parse, asserting only that it
// never panics and that any successfully compiled Pattern can be matched
// against arbitrary class names without panicking.
func FuzzParse(f *testing.F) {
	seeds := []string{
		"",
		"com.example.Foo",
		"com.example.*",
		"com.example.**",
		"com.(*).Bar",
		"com.example.**=backend",
		"com.****.Foo",
		"com.(a).(b)",
		"(*)=name",
		"com.example.*)",
		"com.(example.*",
		"a.b.c$d",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		p, err := Parse(s)
		if err != nil {
			return
		}
		_, _ = p.Match(s)
		_, _ = p.Match("com.example.Unrelated")
	})
}
