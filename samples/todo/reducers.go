package todo

import (
	immerreducer "github.com/Secretmapper/immer-reducer"
)

type TodoReducer struct {
	immerreducer.Base[TodoList]
}

func (r *TodoReducer) AddTodo(id string, title string) {
	draft := r.Draft()
	draft.Todos = append(draft.Todos, Todo{Id: id, Title: title})
}

func (r *TodoReducer) CompleteTodo(id string) {
	draft := r.Draft()
	for i := range draft.Todos {
		if draft.Todos[i].Id == id {
			draft.Todos[i].Done = true
		}
	}
}

// AddCompleted composes two edits in a single dispatch.
func (r *TodoReducer) AddCompleted(id string, title string) {
	r.AddTodo(id, title)
	r.CompleteTodo(id)
}

func (r *TodoReducer) ClearCompleted() {
	draft := r.Draft()

	todos := make([]Todo, 0, len(draft.Todos))
	for _, todo := range draft.Todos {
		if !todo.Done {
			todos = append(todos, todo)
		}
	}

	draft.Todos = todos
}

type FilterReducer struct {
	immerreducer.Base[TodoList]
}

func (r *FilterReducer) ShowAll() {
	r.Draft().Filter = "all"
}

func (r *FilterReducer) ShowCompleted() {
	r.Draft().Filter = "completed"
}
