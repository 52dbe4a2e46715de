package segment

import (
	"testing"

	"tsum/internal/domain"
)

func sentenceTexts(sentences []domain.Sentence) []string {
	out := make([]string, len(sentences))
	for i, s := range sentences {
		out[i] = s.Text
	}
	return out
}

func assertSpans(t *testing.T, text string, sentences []domain.Sentence) {
	t.Helper()
	prevEnd := 0
	for i, s := range sentences {
		if s.Index != i {
			t.Errorf("sentence %d has Index %d", i, s.Index)
		}
		if s.Start < prevEnd {
			t.Errorf("sentence %d overlaps previous span (start %d < %d)", i, s.Start, prevEnd)
		}
		if got := text[s.Start:s.End]; got != s.Text {
			t.Errorf("sentence %d span = %q, text = %q", i, got, s.Text)
		}
		prevEnd = s.End
	}
}

func TestRegexSegmenter(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "simple",
			text: "Cats are great. Dogs are also great. Birds can fly.",
			want: []string{"Cats are great.", "Dogs are also great.", "Birds can fly."},
		},
		{
			name: "mixed terminators",
			text: "Really?! Yes. Wow!",
			want: []string{"Really?!", "Yes.", "Wow!"},
		},
		{
			name: "abbreviations",
			text: "Dr. Smith met Mr. Jones at 5 p.m. yesterday. They talked about cats, dogs, etc. and more.",
			want: []string{"Dr. Smith met Mr. Jones at 5 p.m. yesterday.", "They talked about cats, dogs, etc. and more."},
		},
		{
			name: "initials",
			text: "J. R. R. Tolkien wrote books. People read them.",
			want: []string{"J. R. R. Tolkien wrote books.", "People read them."},
		},
		{
			name: "closing quote",
			text: `She said "stop." Then she left.`,
			want: []string{`She said "stop."`, "Then she left."},
		},
		{
			name: "trailing text without terminator",
			text: "first part ends here. and then the captions just keep going",
			want: []string{"first part ends here.", "and then the captions just keep going"},
		},
		{
			name: "no punctuation at all",
			text: "so today we are going to talk about go",
			want: []string{"so today we are going to talk about go"},
		},
		{
			name: "decimal numbers",
			text: "Pi is 3.14 roughly. Yes.",
			want: []string{"Pi is 3.14 roughly.", "Yes."},
		},
		{
			name: "surrounding whitespace",
			text: "   One.   Two.  ",
			want: []string{"One.", "Two."},
		},
	}

	seg := NewRegexSegmenter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seg.Sentences(tt.text)
			texts := sentenceTexts(got)
			if len(texts) != len(tt.want) {
				t.Fatalf("Sentences() = %q, want %q", texts, tt.want)
			}
			for i := range texts {
				if texts[i] != tt.want[i] {
					t.Errorf("sentence[%d] = %q, want %q", i, texts[i], tt.want[i])
				}
			}
			assertSpans(t, tt.text, got)
		})
	}
}

func TestRegexSegmenterEmpty(t *testing.T) {
	seg := NewRegexSegmenter()
	for _, text := range []string{"", "   ", "\n\t"} {
		if got := seg.Sentences(text); len(got) != 0 {
			t.Errorf("Sentences(%q) = %v, want empty", text, got)
		}
	}
}

func TestPunktSegmenter(t *testing.T) {
	seg, err := NewPunktSegmenter()
	if err != nil {
		t.Fatalf("NewPunktSegmenter() error: %v", err)
	}
	if seg.Name() != "punkt" {
		t.Errorf("Name() = %q, want punkt", seg.Name())
	}

	text := "Cats are great. Dogs are also great. Birds can fly."
	got := seg.Sentences(text)
	want := []string{"Cats are great.", "Dogs are also great.", "Birds can fly."}
	texts := sentenceTexts(got)
	if len(texts) != len(want) {
		t.Fatalf("Sentences() = %q, want %q", texts, want)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("sentence[%d] = %q, want %q", i, texts[i], want[i])
		}
	}
	assertSpans(t, text, got)

	abbr := "Mr. Smith went to Washington. He liked it."
	if got := seg.Sentences(abbr); len(got) != 2 {
		t.Errorf("expected abbreviation to stay inside sentence, got %q", sentenceTexts(got))
	}

	if got := seg.Sentences("  "); len(got) != 0 {
		t.Errorf("expected no sentences for blank input, got %v", got)
	}
}

func TestRepeatedSentencesGetDistinctSpans(t *testing.T) {
	seg := NewRegexSegmenter()
	text := "Go is fun. Go is fun. Go is fun."
	got := seg.Sentences(text)
	if len(got) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(got))
	}
	assertSpans(t, text, got)
}

func TestWordTokenizer(t *testing.T) {
	tok := NewWordTokenizer()
	got := tok.Tokens("Don't stop—it's 42%!")
	want := []domain.Token{
		{Text: "Do", Norm: "do"},
		{Text: "n't", Norm: "n't"},
		{Text: "stop", Norm: "stop"},
		{Text: "—", Norm: "—"},
		{Text: "it", Norm: "it"},
		{Text: "'s", Norm: "'s"},
		{Text: "42", Norm: "42"},
		{Text: "%", Norm: "%"},
		{Text: "!", Norm: "!"},
	}
	if len(got) != len(want) {
		t.Fatalf("Tokens() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}

	if got := tok.Tokens("   "); got != nil {
		t.Errorf("expected nil tokens for blank input, got %v", got)
	}
}

func TestWordTokenizerSplitsClitics(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"Don't", []string{"Do", "n't"}},
		{"I'm", []string{"I", "'m"}},
		{"you're", []string{"you", "'re"}},
		{"they've", []string{"they", "'ve"}},
		{"she'd", []string{"she", "'d"}},
		{"we'll", []string{"we", "'ll"}},
		{"CAN'T", []string{"CA", "N'T"}},
		{"it’s", []string{"it", "’s"}},
		{"don’t", []string{"do", "n’t"}},
		{"o'clock", []string{"o'clock"}},
		{"rock'n'roll", []string{"rock'n'roll"}},
		{"n't", []string{"n't"}},
	}

	tok := NewWordTokenizer()
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got := tok.Tokens(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Tokens(%q) = %v, want %q", tt.text, got, tt.want)
			}
			for i, w := range tt.want {
				if got[i].Text != w {
					t.Errorf("token[%d] = %q, want %q", i, got[i].Text, w)
				}
			}
		})
	}
}

func TestStemmingTokenizerLeavesCliticsAlone(t *testing.T) {
	got := NewStemmingTokenizer("english").Tokens("Cats don't")
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens, got %v", got)
	}
	if got[2].Text != "n't" || got[2].Stem != "" || got[2].Key() != "n't" {
		t.Errorf("clitic token = %+v, want unstemmed n't", got[2])
	}
}

func TestStemmingTokenizer(t *testing.T) {
	tok := NewStemmingTokenizer("english")
	got := tok.Tokens("Running cats.")
	if len(got) != 3 {
		t.Fatalf("expected 3 tokens, got %v", got)
	}
	if got[0].Key() != "run" {
		t.Errorf("Key() = %q, want run", got[0].Key())
	}
	if got[0].Text != "Running" || got[0].Norm != "running" {
		t.Errorf("surface and lowercase forms must be kept, got %+v", got[0])
	}
	if got[1].Key() != "cat" {
		t.Errorf("Key() = %q, want cat", got[1].Key())
	}
	if got[2].Stem != "" || got[2].Key() != "." {
		t.Errorf("punctuation should not be stemmed, got %+v", got[2])
	}
}

func TestNewSegmenter(t *testing.T) {
	tests := []struct {
		name     string
		wantName string
		wantErr  bool
	}{
		{"", "punkt", false},
		{"punkt", "punkt", false},
		{"regex", "regex", false},
		{"spacy", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seg, err := NewSegmenter(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSegmenter() error: %v", err)
			}
			if seg.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", seg.Name(), tt.wantName)
			}
		})
	}
}

func TestPipelineSegment(t *testing.T) {
	p := Pipeline{Segmenter: NewRegexSegmenter(), Tokenizer: NewWordTokenizer()}
	sentences, tokens := p.Segment("Hello world. Bye.")
	if len(sentences) != 2 {
		t.Errorf("expected 2 sentences, got %d", len(sentences))
	}
	if len(tokens) != 5 {
		t.Errorf("expected 5 tokens, got %d: %v", len(tokens), tokens)
	}

	sentences, tokens = p.Segment("")
	if len(sentences) != 0 || len(tokens) != 0 {
		t.Errorf("expected empty output for empty input, got %v %v", sentences, tokens)
	}
}
