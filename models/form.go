package models

type FormType string

const (
	FormTypeDeviation FormType = "AVVIK"
	FormTypeChange    FormType = "ENDRING"
	FormTypeSJA       FormType = "SJA"
)

var formTypeHumanName = map[FormType]string{
	FormTypeDeviation: "Avviksskjema",
	FormTypeChange:    "Endringsskjema",
	FormTypeSJA:       "Sikker jobb-analyse",
}

func (f FormType) ToHuman() string {
	if human, exist := formTypeHumanName[f]; exist {
		return human
	}
	return string(f)
}

func (f FormType) IsValid() bool {
	_, exist := formTypeHumanName[f]
	return exist
}

type FormStatus string

const (
	FormStatusUnprocessed FormStatus = "UNPROCESSED"
	FormStatusInProgress  FormStatus = "IN_PROGRESS"
	FormStatusDone        FormStatus = "DONE"
	FormStatusArchived    FormStatus = "ARCHIVED"
)

var formStatusHumanName = map[FormStatus]string{
	FormStatusUnprocessed: "Ubehandlet",
	FormStatusInProgress:  "Under behandling",
	FormStatusDone:        "Ferdig behandlet",
	FormStatusArchived:    "Arkivert",
}

func (s FormStatus) ToHuman() string {
	if human, exist := formStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s FormStatus) IsValid() bool {
	_, exist := formStatusHumanName[s]
	return exist
}

// formStatusTransitions lists the statuses a form may move to the key status from.
// Archived is reachable only from Done; the back-transitions mirror the
// "send back" actions on the form board.
var formStatusTransitions = map[FormStatus][]FormStatus{
	FormStatusUnprocessed: {FormStatusInProgress, FormStatusDone},
	FormStatusInProgress:  {FormStatusUnprocessed, FormStatusDone},
	FormStatusDone:        {FormStatusInProgress, FormStatusUnprocessed},
	FormStatusArchived:    {FormStatusDone},
}

// IsAllowStatusChange reports whether a form in the receiver status may move
// to newStatus. Unknown target statuses are never allowed.
func (s FormStatus) IsAllowStatusChange(newStatus FormStatus) bool {
	allowedFrom, exist := formStatusTransitions[newStatus]
	if !exist {
		return false
	}
	for _, from := range allowedFrom {
		if from == s {
			return true
		}
	}
	return false
}

// The change form historically persists the in-progress status as "Åpen"
// ("Open"). The mapping lives here, at the persistence boundary, so status
// logic everywhere else stays type-agnostic.
const changeStatusOpen = "OPEN"

// StorageLabel returns the value persisted for the status on a form of the
// given type.
func (s FormStatus) StorageLabel(formType FormType) string {
	if formType == FormTypeChange && s == FormStatusInProgress {
		return changeStatusOpen
	}
	return string(s)
}

// FormStatusFromStorage maps a persisted status value back to the canonical
// status for the given form type.
func FormStatusFromStorage(label string, formType FormType) FormStatus {
	if formType == FormTypeChange && label == changeStatusOpen {
		return FormStatusInProgress
	}
	return FormStatus(label)
}
