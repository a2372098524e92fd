package domain

// Filter represents a task search. Set either a date range or a keyword;
// when both are set a task must satisfy both.
type Filter struct {
	Range   *DateRange
	Keyword string
}

// NewDateFilter matches deadlines due in r and events overlapping r
func NewDateFilter(r DateRange) *Filter {
	return &Filter{Range: &r}
}

// NewKeywordFilter matches descriptions containing keyword, ignoring case
func NewKeywordFilter(keyword string) *Filter {
	return &Filter{Keyword: keyword}
}

// IsActive returns true if any criterion is set
func (f *Filter) IsActive() bool {
	return f.Range != nil || f.Keyword != ""
}

// Matches returns true if the task passes all active criteria
func (f *Filter) Matches(t Task) bool {
	if f.Range != nil && !t.InRange(*f.Range) {
		return false
	}
	if f.Keyword != "" && !t.ContainsKeyword(f.Keyword) {
		return false
	}
	return true
}

// Apply filters a list of tasks, keeping their order
func (f *Filter) Apply(tasks []Task) []Task {
	if !f.IsActive() {
		return tasks
	}

	result := make([]Task, 0, len(tasks))
	for _, task := range tasks {
		if f.Matches(task) {
			result = append(result, task)
		}
	}
	return result
}
