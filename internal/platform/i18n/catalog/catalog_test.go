package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedHasExpectedLocales(t *testing.T) {
	bundle, err := LoadEmbedded()
	if err != nil {
		t.Fatalf("load embedded catalogs: %v", err)
	}
	if !bundle.HasLocale(BaseLocale) {
		t.Fatalf("expected base locale %s", BaseLocale)
	}
	if !bundle.HasLocale("el-GR") {
		t.Fatalf("expected locale el-GR")
	}
	if got := len(bundle.NamespaceMessages("en-US", "errors")); got == 0 {
		t.Fatalf("expected en-US errors namespace messages")
	}
	if got := len(bundle.NamespaceMessages("el-GR", "cli")); got == 0 {
		t.Fatalf("expected el-GR cli namespace messages")
	}
}

func TestEmbeddedLocalesShareKeys(t *testing.T) {
	bundle := Default()
	for _, namespace := range []string{"errors", "cli"} {
		base := bundle.NamespaceMessages(BaseLocale, namespace)
		for _, locale := range bundle.Locales() {
			messages := bundle.NamespaceMessages(locale, namespace)
			for key := range base {
				if _, ok := messages[key]; !ok {
					t.Errorf("locale %s namespace %s missing key %q", locale, namespace, key)
				}
			}
		}
	}
}

func TestMatch(t *testing.T) {
	bundle := Default()
	tests := map[string]string{
		"":                   BaseLocale,
		"en-US":              "en-US",
		"el-GR":              "el-GR",
		"el":                 "el-GR",
		"el-CY":              "el-GR",
		"fr-FR":              BaseLocale,
		"el;q=0.9, en;q=0.1": "el-GR",
		"!!":                 BaseLocale,
	}
	for requested, want := range tests {
		if got := bundle.Match(requested); got != want {
			t.Errorf("Match(%q): expected %s, got %s", requested, want, got)
		}
	}
}

func TestPrinterUsesRegisteredMessages(t *testing.T) {
	bundle := Default()
	if got := bundle.Printer("en-US").Sprintf("cli.argument_count", 2); got != "expected exactly one argument, got 2" {
		t.Fatalf("unexpected en-US message %q", got)
	}
	if got := bundle.Printer("el-GR").Sprintf("cli.argument_count", 2); got != "αναμενόταν ακριβώς ένα όρισμα, δόθηκαν 2" {
		t.Fatalf("unexpected el-GR message %q", got)
	}
	if got := bundle.Printer("en-US").Sprintf("%d", 999999); got != "999,999" {
		t.Fatalf("expected grouped number, got %q", got)
	}
}

func TestMessageFallsBackToBase(t *testing.T) {
	bundle := Default()
	value, ok := bundle.Message("fr-FR", "cli.usage")
	if !ok {
		t.Fatal("expected fallback message")
	}
	if value != "usage: arabic2greek [flags] NUMBER" {
		t.Fatalf("unexpected fallback %q", value)
	}
	if _, ok := bundle.Message("en-US", "missing.key"); ok {
		t.Fatal("expected missing key")
	}
}

func TestNamespaceMessagesWithFallback(t *testing.T) {
	locale, messages := Default().NamespaceMessagesWithFallback("pt-BR", "errors")
	if locale != BaseLocale {
		t.Fatalf("expected fallback locale %s, got %s", BaseLocale, locale)
	}
	if messages["UNKNOWN"] == "" {
		t.Fatal("expected base errors")
	}
}

func TestLoadFromFSRejectsDuplicateKeysAcrossNamespaces(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/cli.yaml"), `locale: "en-US"
namespace: "cli"
messages:
  "a.key": "a"
`)
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/errors.yaml"), `locale: "en-US"
namespace: "errors"
messages:
  "a.key": "b"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected duplicate key error")
	}
}

func TestLoadFromFSRejectsMismatchedLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/en-US/cli.yaml"), `locale: "el-GR"
namespace: "cli"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected locale mismatch error")
	}
}

func TestLoadFromFSRequiresBaseLocale(t *testing.T) {
	tempDir := t.TempDir()
	mustWriteFile(t, filepath.Join(tempDir, "locales/el-GR/cli.yaml"), `locale: "el-GR"
namespace: "cli"
messages:
  "a.key": "a"
`)

	if _, err := LoadFromFS(os.DirFS(tempDir)); err == nil {
		t.Fatal("expected missing base locale error")
	}
}

func TestParseFileErrors(t *testing.T) {
	cases := map[string]string{
		"missing locale":    "namespace: \"cli\"\nmessages:\n  \"a\": \"b\"\n",
		"missing namespace": "locale: \"en-US\"\nmessages:\n  \"a\": \"b\"\n",
		"missing messages":  "locale: \"en-US\"\nnamespace: \"cli\"\nmessages:\n",
		"stray line":        "locale: \"en-US\"\nnamespace: \"cli\"\nstray\n",
		"unquoted key":      "locale: \"en-US\"\nnamespace: \"cli\"\nmessages:\n  a: \"b\"\n",
		"missing colon":     "locale: \"en-US\"\nnamespace: \"cli\"\nmessages:\n  \"a\" \"b\"\n",
		"blank key":         "locale: \"en-US\"\nnamespace: \"cli\"\nmessages:\n  \" \": \"b\"\n",
		"duplicate key":     "locale: \"en-US\"\nnamespace: \"cli\"\nmessages:\n  \"a\": \"b\"\n  \"a\": \"c\"\n",
		"unterminated":      "locale: \"en-US\"\nnamespace: \"cli\"\nmessages:\n  \"a: \"b\n",
	}
	for name, data := range cases {
		if _, err := parseFile([]byte(data)); err == nil {
			t.Errorf("%s: expected parse error", name)
		}
	}
}

func TestParseFileUnescapesValues(t *testing.T) {
	file, err := parseFile([]byte("# comment\nlocale: \"en-US\"\nnamespace: \"cli\"\nmessages:\n  \"quote\": \"say \\\"hi\\\"\"\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if file.messages["quote"] != `say "hi"` {
		t.Fatalf("unexpected value %q", file.messages["quote"])
	}
}

func mustWriteFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
