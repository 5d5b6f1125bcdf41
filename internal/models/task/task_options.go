package task

type TaskOption func(*Task)

func WithTitle(title string) TaskOption {
	return func(task *Task) {
		task.Title = title
	}
}

func WithClient(client string) TaskOption {
	return func(task *Task) {
		task.Client = client
	}
}

func WithDescription(description string) TaskOption {
	return func(task *Task) {
		task.Description = description
	}
}

func WithDueDate(dueDate Date) TaskOption {
	return func(task *Task) {
		task.DueDate = dueDate
	}
}

// WithPriority falls back to medium for an empty value.
func WithPriority(priority Priority) TaskOption {
	if priority == "" {
		priority = PriorityMedium
	}
	return func(task *Task) {
		task.Priority = priority
	}
}

// Apply runs every non-nil option against t.
func Apply(t *Task, options ...TaskOption) {
	for _, opt := range options {
		if opt != nil {
			opt(t)
		}
	}
}
