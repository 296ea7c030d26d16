package todo

type TodoList struct {
	Todos  []Todo `json:"todos"`
	Filter string `json:"filter"`
}

type Todo struct {
	Id    string `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

func (list *TodoList) Remaining() int {
	remaining := 0
	for _, todo := range list.Todos {
		if !todo.Done {
			remaining = remaining + 1
		}
	}

	return remaining
}
