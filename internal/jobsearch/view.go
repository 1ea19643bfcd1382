package jobsearch

import "github.com/Nils2312/Fleksibelt-sub000/internal/models"

// View хранит состояние выдачи одной сессии: текущие критерии и страницу.
// Не потокобезопасен, синхронизацию обеспечивает владелец.
type View struct {
	criteria Criteria
	page     int
}

// NewView создаёт представление с критериями по умолчанию на первой странице.
func NewView() *View {
	return &View{criteria: DefaultCriteria(), page: 1}
}

// Criteria returns the current criteria.
func (v *View) Criteria() Criteria {
	return v.criteria
}

// Page returns the current page index.
func (v *View) Page() int {
	return v.page
}

// Apply устанавливает новые критерии. Если они отличаются от текущих,
// страница сбрасывается на первую. Возвращает true при сбросе.
func (v *View) Apply(c Criteria) bool {
	c = c.Normalize()
	if c.Equal(v.criteria) {
		return false
	}
	v.criteria = c
	v.page = 1
	return true
}

// SetPage запоминает запрошенную страницу. Значения меньше 1 дают 1.
func (v *View) SetPage(n int) {
	if n < 1 {
		n = 1
	}
	v.page = n
}

// Reset очищает фильтры.
func (v *View) Reset() {
	v.criteria = DefaultCriteria()
	v.page = 1
}

// Render фильтрует jobs по текущим критериям и возвращает текущую страницу.
func (v *View) Render(jobs []models.JobPosting, size int) Page[models.JobPosting] {
	return v.Show(Filter(jobs, v.criteria), size)
}

// Show paginates an already filtered result at the current page. A page
// beyond the result is clamped and the clamped value is kept.
func (v *View) Show(filtered []models.JobPosting, size int) Page[models.JobPosting] {
	p := Paginate(filtered, v.page, size)
	v.page = p.Page
	return p
}
