package analyzer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/andrewyi/scraper/src/entity"
	"github.com/andrewyi/scraper/src/enum"
)

const blogPage = `<!doctype html>
<html><head><title>blog</title></head>
<body>
  <h1 class="site-name">My Blog</h1>
  <article>
    <h1 class="entry-title">
      A
    </h1>
    <p>first post</p>
  </article>
  <article>
    <h1 class="entry-title featured"><a href="/b">B</a></h1>
    <p>second post</p>
  </article>
  <h2 class="entry-title">not a heading 1</h2>
</body></html>`

func successPage(body string) entity.PageInfo {
	return entity.PageInfo{
		URL:     "https://example-blog.com",
		State:   enum.PageStateSuccess,
		Content: []byte(body),
	}
}

func TestAnalyzeTagAndClass(t *testing.T) {
	a := NewSimpleAnalyzer()
	parsed := a.Analyze(successPage(blogPage), entity.Selector{Tag: "h1", Class: "entry-title"})

	require.Equal(t, enum.FailureNone, parsed.Kind)
	if diff := cmp.Diff([]string{"A", "B"}, parsed.Texts); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeTagOnly(t *testing.T) {
	a := NewSimpleAnalyzer()
	parsed := a.Analyze(successPage(blogPage), entity.Selector{Tag: "h1"})

	if diff := cmp.Diff([]string{"My Blog", "A", "B"}, parsed.Texts); diff != "" {
		t.Fatalf("texts mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalyzeNoMatch(t *testing.T) {
	a := NewSimpleAnalyzer()
	parsed := a.Analyze(successPage(blogPage), entity.Selector{Tag: "h3", Class: "entry-title"})

	require.Equal(t, uint32(enum.PageStateSuccess), parsed.State)
	require.NotNil(t, parsed.Texts)
	require.Empty(t, parsed.Texts)
}

func TestAnalyzeEmptyTag(t *testing.T) {
	a := NewSimpleAnalyzer()
	parsed := a.Analyze(successPage(blogPage), entity.Selector{Class: "entry-title"})

	require.Equal(t, uint32(enum.PageStateFail), parsed.State)
	require.Equal(t, enum.FailureInvalidRequest, parsed.Kind)
	require.ErrorIs(t, parsed.Err, entity.ErrEmptyTag)
	require.Empty(t, parsed.Texts)
}

func TestAnalyzeFailedPagePassesThrough(t *testing.T) {
	fetchErr := errors.New("boom")
	page := entity.PageInfo{
		URL:    "https://example-blog.com",
		State:  enum.PageStateFail,
		Kind:   enum.FailurePageFetch,
		Remark: fetchErr.Error(),
		Err:    fetchErr,
	}

	parsed := NewSimpleAnalyzer().Analyze(page, entity.Selector{Tag: "h1"})
	require.Equal(t, enum.FailurePageFetch, parsed.Kind)
	require.ErrorIs(t, parsed.Err, fetchErr)
	require.Empty(t, parsed.Texts)
}

func TestAnalyzeTagIsElementName(t *testing.T) {
	page := successPage(`<h1 class="entry-title">A</h1><h2 class="entry-title">X</h2><H1 class="entry-title">C</H1>`)
	a := NewSimpleAnalyzer()

	parsed := a.Analyze(page, entity.Selector{Tag: "H1", Class: "entry-title"})
	require.Equal(t, enum.FailureNone, parsed.Kind)
	require.Equal(t, []string{"A", "C"}, parsed.Texts)

	for _, tag := range []string{"*", "h1, h2", "h1["} {
		parsed := a.Analyze(page, entity.Selector{Tag: tag, Class: "entry-title"})
		require.Equal(t, uint32(enum.PageStateFail), parsed.State, tag)
		require.Equal(t, enum.FailureInvalidRequest, parsed.Kind, tag)
		require.ErrorIs(t, parsed.Err, entity.ErrInvalidTag, tag)
		require.Empty(t, parsed.Texts, tag)
	}
}
