// Package nlp provides the text analysis capability behind the
// analyze_with_nlp tool.
package nlp

import (
	"context"
	"sort"
	"strings"
	"sync/atomic"
	"time"
	"unicode"

	"hivemcp/internal/api"
)

// Analysis is the result of analysing one text.
type Analysis struct {
	Sentiment      string   `json:"sentiment"`
	SentimentScore float64  `json:"sentiment_score"`
	Keywords       []string `json:"keywords"`
	Length         int      `json:"length"`
	WordCount      int      `json:"word_count"`
}

// Analyzer turns text into an Analysis.
type Analyzer interface {
	Analyze(ctx context.Context, text string) (Analysis, error)
}

// AnalyzerFunc adapts a function to Analyzer.
type AnalyzerFunc func(ctx context.Context, text string) (Analysis, error)

func (f AnalyzerFunc) Analyze(ctx context.Context, text string) (Analysis, error) {
	return f(ctx, text)
}

const maxKeywords = 5

var (
	stopWords = wordSet("a an and are as at be but by for from has have i in is it its of on or that the this to was were will with you your we our they them")
	positive  = wordSet("good great excellent happy love like success successful fast efficient improve improved improvement positive win wins benefit helpful reliable stable amazing nice best better")
	negative  = wordSet("bad poor terrible sad hate dislike fail failed failure slow broken bug bugs error errors negative lose loss crash crashes unstable worse worst problem problems")
)

func wordSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// KeywordAnalyzer is a lexicon based analyzer: sentiment from positive and
// negative word counts, keywords by frequency with stop words removed.
type KeywordAnalyzer struct{}

// NewKeywordAnalyzer returns the built-in analyzer.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

func (KeywordAnalyzer) Analyze(ctx context.Context, text string) (Analysis, error) {
	if err := ctx.Err(); err != nil {
		return Analysis{}, err
	}

	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})

	type counted struct {
		word  string
		count int
		first int
	}
	counts := make(map[string]*counted)
	var pos, neg int
	for i, w := range words {
		if _, ok := positive[w]; ok {
			pos++
		}
		if _, ok := negative[w]; ok {
			neg++
		}
		if _, ok := stopWords[w]; ok || len(w) < 3 {
			continue
		}
		if c, ok := counts[w]; ok {
			c.count++
			continue
		}
		counts[w] = &counted{word: w, count: 1, first: i}
	}

	ranked := make([]*counted, 0, len(counts))
	for _, c := range counts {
		ranked = append(ranked, c)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].first < ranked[j].first
	})

	keywords := make([]string, 0, maxKeywords)
	for i := 0; i < len(ranked) && i < maxKeywords; i++ {
		keywords = append(keywords, ranked[i].word)
	}

	a := Analysis{
		Sentiment: "neutral",
		Keywords:  keywords,
		Length:    len([]rune(text)),
		WordCount: len(strings.Fields(text)),
	}
	if total := pos + neg; total > 0 {
		a.SentimentScore = float64(pos-neg) / float64(total)
	}
	switch {
	case a.SentimentScore > 0:
		a.Sentiment = "positive"
	case a.SentimentScore < 0:
		a.Sentiment = "negative"
	}
	return a, nil
}

// Bounded wraps an Analyzer with a deadline. Any failure, including the
// deadline passing, is returned as an *api.CollaboratorError. The timeout
// can be changed while requests are in flight.
type Bounded struct {
	inner   Analyzer
	timeout atomic.Int64
}

// NewBounded wraps inner with the given timeout.
func NewBounded(inner Analyzer, timeout time.Duration) *Bounded {
	b := &Bounded{inner: inner}
	b.SetTimeout(timeout)
	return b
}

// SetTimeout replaces the deadline used for subsequent calls.
func (b *Bounded) SetTimeout(d time.Duration) {
	b.timeout.Store(int64(d))
}

// Timeout returns the current deadline.
func (b *Bounded) Timeout() time.Duration {
	return time.Duration(b.timeout.Load())
}

func (b *Bounded) Analyze(ctx context.Context, text string) (Analysis, error) {
	ctx, cancel := context.WithTimeout(ctx, b.Timeout())
	defer cancel()

	type outcome struct {
		analysis Analysis
		err      error
	}
	done := make(chan outcome, 1)
	go func() {
		a, err := b.inner.Analyze(ctx, text)
		done <- outcome{a, err}
	}()

	select {
	case <-ctx.Done():
		return Analysis{}, api.NewCollaboratorError("nlp", ctx.Err())
	case out := <-done:
		if out.err != nil {
			return Analysis{}, api.NewCollaboratorError("nlp", out.err)
		}
		return out.analysis, nil
	}
}
