package wordlist

import "testing"

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("en")
	if !filter("hello") {
		t.Fatalf("expected hello to pass english filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", "Next"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterOtherLanguages(t *testing.T) {
	filter := FilterForLang("de")
	for _, word := range []string{"straße", "über", "co-op"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass", word)
		}
	}
	for _, word := range []string{"", "two words", "tab\there"} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}
