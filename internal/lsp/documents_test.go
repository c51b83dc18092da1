package lsp

import "testing"

func TestDocumentStore(t *testing.T) {
	store := NewDocumentStore()
	uri := "file:///themes/midnight-dark-color-theme.json"

	if _, ok := store.Get(uri); ok {
		t.Fatal("empty store should not have the document")
	}
	if store.Result(uri) != nil {
		t.Fatal("empty store should have no result")
	}

	result := store.Open(uri, validThemeJSON)
	if result == nil || result.Kind != kindTheme {
		t.Fatalf("Open() result = %+v", result)
	}
	if got, ok := store.Get(uri); !ok || got != validThemeJSON {
		t.Errorf("Get() after Open = %q, %v", got, ok)
	}
	if store.Result(uri) != result {
		t.Error("Result() should return the analysis from Open")
	}

	updated := store.Update(uri, "{")
	if errorCount(updated) == 0 {
		t.Error("expected a syntax error after update")
	}
	if got, _ := store.Get(uri); got != "{" {
		t.Errorf("Get() after Update = %q", got)
	}
	if store.Result(uri) != updated {
		t.Error("Result() should follow Update")
	}

	store.Close(uri)
	if _, ok := store.Get(uri); ok {
		t.Error("document still present after Close")
	}
}
