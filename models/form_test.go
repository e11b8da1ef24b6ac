package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormStatusTransitions(t *testing.T) {
	type move struct {
		from    FormStatus
		to      FormStatus
		allowed bool
	}
	cases := []move{
		{FormStatusUnprocessed, FormStatusInProgress, true},
		{FormStatusUnprocessed, FormStatusDone, true},
		{FormStatusUnprocessed, FormStatusArchived, false},
		{FormStatusInProgress, FormStatusUnprocessed, true},
		{FormStatusInProgress, FormStatusDone, true},
		{FormStatusInProgress, FormStatusArchived, false},
		{FormStatusDone, FormStatusUnprocessed, true},
		{FormStatusDone, FormStatusInProgress, true},
		{FormStatusDone, FormStatusArchived, true},
		{FormStatusArchived, FormStatusUnprocessed, false},
		{FormStatusArchived, FormStatusInProgress, false},
		{FormStatusArchived, FormStatusDone, false},
	}
	for _, c := range cases {
		t.Run(string(c.from)+"->"+string(c.to), func(t *testing.T) {
			require.Equal(t, c.allowed, c.from.IsAllowStatusChange(c.to))
		})
	}

	t.Run("no self transitions", func(t *testing.T) {
		for _, s := range []FormStatus{FormStatusUnprocessed, FormStatusInProgress, FormStatusDone, FormStatusArchived} {
			require.False(t, s.IsAllowStatusChange(s))
		}
	})

	t.Run("unknown target is rejected", func(t *testing.T) {
		require.False(t, FormStatusDone.IsAllowStatusChange(FormStatus("DELETED")))
	})
}

func TestFormStatusStorageLabel(t *testing.T) {
	t.Run("change form persists in-progress as open", func(t *testing.T) {
		require.Equal(t, "OPEN", FormStatusInProgress.StorageLabel(FormTypeChange))
		require.Equal(t, FormStatusInProgress, FormStatusFromStorage("OPEN", FormTypeChange))
	})

	t.Run("other statuses keep their canonical value", func(t *testing.T) {
		for _, ft := range []FormType{FormTypeDeviation, FormTypeChange, FormTypeSJA} {
			require.Equal(t, "UNPROCESSED", FormStatusUnprocessed.StorageLabel(ft))
			require.Equal(t, "DONE", FormStatusDone.StorageLabel(ft))
			require.Equal(t, "ARCHIVED", FormStatusArchived.StorageLabel(ft))
		}
	})

	t.Run("in-progress stays canonical outside change forms", func(t *testing.T) {
		require.Equal(t, "IN_PROGRESS", FormStatusInProgress.StorageLabel(FormTypeDeviation))
		require.Equal(t, "IN_PROGRESS", FormStatusInProgress.StorageLabel(FormTypeSJA))
		require.Equal(t, FormStatusInProgress, FormStatusFromStorage("IN_PROGRESS", FormTypeChange))
	})

	t.Run("round trip", func(t *testing.T) {
		for _, ft := range []FormType{FormTypeDeviation, FormTypeChange, FormTypeSJA} {
			for _, s := range []FormStatus{FormStatusUnprocessed, FormStatusInProgress, FormStatusDone, FormStatusArchived} {
				require.Equal(t, s, FormStatusFromStorage(s.StorageLabel(ft), ft))
			}
		}
	})
}

func TestFormStatusHumanNames(t *testing.T) {
	require.Equal(t, "Ubehandlet", FormStatusUnprocessed.ToHuman())
	require.Equal(t, "Under behandling", FormStatusInProgress.ToHuman())
	require.Equal(t, "Ferdig behandlet", FormStatusDone.ToHuman())
	require.Equal(t, "Arkivert", FormStatusArchived.ToHuman())
}
