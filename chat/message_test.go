package chat

import "testing"

func TestMessageRoundTrip(t *testing.T) {
	m := Message{
		Text:  "hello",
		Bold:  true,
		Color: "gold",
		Extra: []Message{{Text: " world", Italic: true}},
	}
	s, err := m.MarshalJSONString()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := UnmarshalJSONString(s)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Text != "hello" || !got.Bold || got.Color != "gold" {
		t.Fatalf("got %+v", got)
	}
	if len(got.Extra) != 1 || got.Extra[0].Text != " world" || !got.Extra[0].Italic {
		t.Fatalf("extra: %+v", got.Extra)
	}

	// canonical form is stable across a second round trip
	s2, err := got.MarshalJSONString()
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if s2 != s {
		t.Fatalf("canonical form changed:\n %v\n %v", s, s2)
	}
}

func TestMessageMalformed(t *testing.T) {
	if _, err := UnmarshalJSONString("{not json"); err == nil {
		t.Fatalf("expected error")
	}
}
