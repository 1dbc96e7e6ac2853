package match

import (
	"reflect"
	"testing"
)

func TestVariants_MixedCase(t *testing.T) {
	got := Variants("fireFox")
	want := []string{"fireFox", "firefox", "Firefox", "FIREFOX"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants(fireFox) = %v, want %v", got, want)
	}
}

func TestVariants_DedupPreservesFirstSeenOrder(t *testing.T) {
	// Lowercase input: literal and lowercase collapse into one entry.
	got := Variants("firefox")
	want := []string{"firefox", "Firefox", "FIREFOX"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants(firefox) = %v, want %v", got, want)
	}
}

func TestVariants_MultiWordIncludesTitleCase(t *testing.T) {
	got := Variants("visual studio code")
	want := []string{
		"visual studio code",
		"Visual studio code",
		"VISUAL STUDIO CODE",
		"Visual Studio Code",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants(visual studio code) = %v, want %v", got, want)
	}
}

func TestVariants_SingleWordTitleEqualsCapitalize(t *testing.T) {
	got := Variants("terminal")
	want := []string{"terminal", "Terminal", "TERMINAL"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Variants(terminal) = %v, want %v", got, want)
	}
}

func TestVariants_Empty(t *testing.T) {
	got := Variants("")
	if !reflect.DeepEqual(got, []string{""}) {
		t.Errorf("Variants(\"\") = %v, want [\"\"]", got)
	}
}
