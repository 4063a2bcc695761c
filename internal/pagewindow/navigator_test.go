package pagewindow_test

import (
	"testing"

	"figure_catalog/internal/pagewindow"

	"github.com/stretchr/testify/require"
)

type recorder struct {
	pages []int
}

func (r *recorder) onPageChange(page int) {
	r.pages = append(r.pages, page)
}

func TestNavigator_Previous(t *testing.T) {
	rec := &recorder{}

	pagewindow.NewNavigator(1, 5, rec.onPageChange).Previous()
	require.Empty(t, rec.pages)

	pagewindow.NewNavigator(3, 5, rec.onPageChange).Previous()
	require.Equal(t, []int{2}, rec.pages)
}

func TestNavigator_Next(t *testing.T) {
	rec := &recorder{}

	pagewindow.NewNavigator(5, 5, rec.onPageChange).Next()
	require.Empty(t, rec.pages)

	pagewindow.NewNavigator(3, 5, rec.onPageChange).Next()
	require.Equal(t, []int{4}, rec.pages)
}

func TestNavigator_Disabled(t *testing.T) {
	nav := pagewindow.NewNavigator(1, 1, nil)
	require.True(t, nav.IsPreviousDisabled())
	require.True(t, nav.IsNextDisabled())

	nav = pagewindow.NewNavigator(2, 3, nil)
	require.False(t, nav.IsPreviousDisabled())
	require.False(t, nav.IsNextDisabled())

	nav = pagewindow.NewNavigator(1, 0, nil)
	require.True(t, nav.IsNextDisabled())
}

func TestNavigator_SelectActivePage(t *testing.T) {
	rec := &recorder{}
	nav := pagewindow.NewNavigator(4, 10, rec.onPageChange)

	nav.Select(4)
	nav.Select(4)
	require.Equal(t, []int{4, 4}, rec.pages)
}

func TestNavigator_SelectToken(t *testing.T) {
	rec := &recorder{}
	nav := pagewindow.NewNavigator(5, 10, rec.onPageChange)

	for _, tok := range nav.Tokens() {
		nav.SelectToken(tok)
	}
	require.Equal(t, []int{1, 4, 5, 6, 10}, rec.pages)
}

func TestNavigator_NilCallback(t *testing.T) {
	nav := pagewindow.NewNavigator(3, 5, nil)
	require.NotPanics(t, func() {
		nav.Previous()
		nav.Next()
		nav.Select(2)
	})
}

func findPage(t *testing.T, seq pagewindow.Sequence, n int) pagewindow.Token {
	t.Helper()
	for _, tok := range seq {
		if tok.IsPage() && tok.Number == n {
			return tok
		}
	}
	require.Failf(t, "page not rendered", "page %d not in %v", n, seq)
	return pagewindow.Token{}
}

// На первой из пяти страниц окно [1 2 … 5]: тройка не отрисовывается.
func TestNavigator_ClickThenPrevious(t *testing.T) {
	rec := &recorder{}
	nav := pagewindow.NewNavigator(1, 5, rec.onPageChange)
	require.Equal(t, []int{1, 2, 5}, nav.Tokens().Pages())

	nav.SelectToken(findPage(t, nav.Tokens(), 2))
	require.Equal(t, []int{2}, rec.pages)

	nav.Previous()
	require.Equal(t, []int{2}, rec.pages)
}

// Тройка видна на первой из трёх страниц; "назад" после клика всё ещё отключена.
func TestNavigator_ClickThreeThenPrevious(t *testing.T) {
	rec := &recorder{}
	nav := pagewindow.NewNavigator(1, 3, rec.onPageChange)

	nav.SelectToken(findPage(t, nav.Tokens(), 3))
	require.Equal(t, []int{3}, rec.pages)

	nav.Previous()
	require.Equal(t, []int{3}, rec.pages)
}

func TestNavigator_ZeroTokenNotClickable(t *testing.T) {
	rec := &recorder{}
	nav := pagewindow.NewNavigator(2, 5, rec.onPageChange)

	var zero pagewindow.Token
	require.False(t, zero.IsPage())
	nav.SelectToken(zero)
	require.Empty(t, rec.pages)
}
