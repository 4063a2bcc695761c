package pagewindow

// Navigator связывает окно пагинатора с колбэком смены страницы.
// Сам Navigator своё состояние не меняет: после колбэка вызывающая сторона
// перерисовывает пагинатор с новым Current.
type Navigator struct {
	Current      int
	Total        int
	OnPageChange func(page int)
}

// NewNavigator создаёт Navigator для страницы current из total.
func NewNavigator(current, total int, onPageChange func(page int)) *Navigator {
	return &Navigator{Current: current, Total: total, OnPageChange: onPageChange}
}

// Tokens возвращает окно для текущего состояния.
func (n *Navigator) Tokens() Sequence {
	return Compute(n.Current, n.Total)
}

func (n *Navigator) IsPreviousDisabled() bool {
	return n.Current <= 1
}

func (n *Navigator) IsNextDisabled() bool {
	return n.Current >= n.Total
}

// Previous переходит на предыдущую страницу; на первой ничего не делает.
func (n *Navigator) Previous() {
	if n.IsPreviousDisabled() {
		return
	}
	n.fire(n.Current - 1)
}

// Next переходит на следующую страницу; на последней ничего не делает.
func (n *Navigator) Next() {
	if n.IsNextDisabled() {
		return
	}
	n.fire(n.Current + 1)
}

// Select вызывает колбэк ровно с page, в том числе для уже активной страницы.
func (n *Navigator) Select(page int) {
	n.fire(page)
}

// SelectToken - клик по токену. Многоточие не кликабельно.
func (n *Navigator) SelectToken(t Token) {
	if !t.IsPage() {
		return
	}
	n.fire(t.Number)
}

func (n *Navigator) fire(page int) {
	if n.OnPageChange == nil {
		return
	}
	n.OnPageChange(page)
}
