package browser

func (b *implBrowser) NextPage() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.Next()
}

func (b *implBrowser) PrevPage() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.Prev()
}

func (b *implBrowser) FirstPage() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.First()
}

func (b *implBrowser) LastPage() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.Last()
}

func (b *implBrowser) SetPage(page int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.SetPage(page)
}

func (b *implBrowser) SetPageSize(size int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.SetPageSize(size)
}

func (b *implBrowser) IncreasePageSize() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.IncreasePageSize()
}

func (b *implBrowser) DecreasePageSize() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pager.DecreasePageSize()
}
