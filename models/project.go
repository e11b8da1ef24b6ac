package models

type ProjectStatus string

const (
	ProjectStatusPlanned   ProjectStatus = "PLANNED"
	ProjectStatusActive    ProjectStatus = "ACTIVE"
	ProjectStatusCompleted ProjectStatus = "COMPLETED"
)

var projectStatusHumanName = map[ProjectStatus]string{
	ProjectStatusPlanned:   "Planlagt",
	ProjectStatusActive:    "Aktiv",
	ProjectStatusCompleted: "Fullført",
}

func (s ProjectStatus) ToHuman() string {
	if human, exist := projectStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ProjectStatus) IsValid() bool {
	_, exist := projectStatusHumanName[s]
	return exist
}

type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "NOT_STARTED"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusCompleted  TaskStatus = "COMPLETED"
)

var taskStatusHumanName = map[TaskStatus]string{
	TaskStatusNotStarted: "Ikke startet",
	TaskStatusInProgress: "I gang",
	TaskStatusCompleted:  "Fullført",
}

func (s TaskStatus) ToHuman() string {
	if human, exist := taskStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s TaskStatus) IsValid() bool {
	_, exist := taskStatusHumanName[s]
	return exist
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "LOW"
	TaskPriorityMedium TaskPriority = "MEDIUM"
	TaskPriorityHigh   TaskPriority = "HIGH"
)

var taskPriorityHumanName = map[TaskPriority]string{
	TaskPriorityLow:    "Lav",
	TaskPriorityMedium: "Middels",
	TaskPriorityHigh:   "Høy",
}

func (p TaskPriority) ToHuman() string {
	if human, exist := taskPriorityHumanName[p]; exist {
		return human
	}
	return string(p)
}

func (p TaskPriority) IsValid() bool {
	_, exist := taskPriorityHumanName[p]
	return exist
}
