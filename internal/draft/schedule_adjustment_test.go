package draft

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schedule-admin-panel/internal/models"
)

func TestAddPendingAbsence(t *testing.T) {
	d := &AdjustmentDraft{}
	d.Pending = models.AbsenceInterval{From: "12:00", To: "12:30", Comment: "обед у врача"}

	err := d.AddPendingAbsence()
	require.NoError(t, err)

	require.Len(t, d.Absences, 1)
	assert.Equal(t, "12:00", d.Absences[0].From)
	assert.Equal(t, "12:30", d.Absences[0].To)
	assert.Equal(t, "обед у врача", d.Absences[0].Comment)

	// Pending очищается после добавления
	assert.Equal(t, models.AbsenceInterval{}, d.Pending)
}

func TestAddPendingAbsenceRequiresBothEndpoints(t *testing.T) {
	cases := []struct {
		name    string
		pending models.AbsenceInterval
	}{
		{"empty from", models.AbsenceInterval{To: "12:30"}},
		{"empty to", models.AbsenceInterval{From: "12:00"}},
		{"both empty", models.AbsenceInterval{Comment: "только комментарий"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := &AdjustmentDraft{
				Absences: []models.AbsenceInterval{{From: "10:00", To: "10:15"}},
				Pending:  tc.pending,
			}

			err := d.AddPendingAbsence()
			assert.ErrorIs(t, err, ErrAbsenceTimeRequired)

			// Список не изменился, pending сохранен для исправления
			assert.Len(t, d.Absences, 1)
			assert.Equal(t, tc.pending, d.Pending)
		})
	}
}

func TestAddPendingAbsenceAppendsToEnd(t *testing.T) {
	d := &AdjustmentDraft{}

	for _, iv := range []models.AbsenceInterval{
		{From: "09:00", To: "09:30", Comment: "1"},
		{From: "11:00", To: "11:15", Comment: "2"},
		{From: "16:00", To: "16:45", Comment: "3"},
	} {
		d.Pending = iv
		require.NoError(t, d.AddPendingAbsence())
	}

	require.Len(t, d.Absences, 3)
	assert.Equal(t, "1", d.Absences[0].Comment)
	assert.Equal(t, "2", d.Absences[1].Comment)
	assert.Equal(t, "3", d.Absences[2].Comment)
}

func TestRemoveAbsence(t *testing.T) {
	d := &AdjustmentDraft{
		Absences: []models.AbsenceInterval{
			{From: "09:00", To: "09:30", Comment: "A"},
			{From: "11:00", To: "11:15", Comment: "B"},
			{From: "16:00", To: "16:45", Comment: "C"},
		},
	}

	d.RemoveAbsence(1)

	require.Len(t, d.Absences, 2)
	assert.Equal(t, "A", d.Absences[0].Comment)
	assert.Equal(t, "C", d.Absences[1].Comment)
}

func TestRemoveAbsenceOutOfRange(t *testing.T) {
	d := &AdjustmentDraft{
		Absences: []models.AbsenceInterval{{From: "09:00", To: "09:30"}},
	}

	d.RemoveAbsence(-1)
	d.RemoveAbsence(1)
	d.RemoveAbsence(100)

	assert.Len(t, d.Absences, 1)
}

// Сценарий из жизни: добавить две отлучки, удалить первую, сохранить.
// В payload должна уйти ровно вторая отлучка.
func TestAddRemoveSubmitScenario(t *testing.T) {
	d := AdjustmentDraftFrom(models.ScheduleAdjustment{
		ID:         7,
		EmployeeID: 3,
		Date:       "2026-08-31",
	})

	d.Pending = models.AbsenceInterval{From: "12:00", To: "12:30", Comment: "A"}
	require.NoError(t, d.AddPendingAbsence())
	d.Pending = models.AbsenceInterval{From: "15:00", To: "15:15", Comment: "B"}
	require.NoError(t, d.AddPendingAbsence())

	d.RemoveAbsence(0)

	payload := d.Payload()
	require.Len(t, payload.Absences, 1)
	assert.Equal(t, models.AbsenceInterval{From: "15:00", To: "15:15", Comment: "B"}, payload.Absences[0])
}

func TestPayloadNormalizesBlanksToNull(t *testing.T) {
	d := &AdjustmentDraft{
		EmployeeID: 5,
		Date:       "2026-09-01",
	}

	payload := d.Payload()

	assert.Nil(t, payload.StatusOverride)
	assert.Nil(t, payload.StartTimeOverride)
	assert.Nil(t, payload.EndTimeOverride)
	assert.Nil(t, payload.LunchStartOverride)
	assert.Nil(t, payload.Absences)

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))

	// Пустые переопределения и пустой список уходят как null, не как ""/[]
	for _, field := range []string{
		"status_override",
		"start_time_override",
		"end_time_override",
		"lunch_start_override",
		"absences",
	} {
		assert.Equal(t, "null", string(decoded[field]), field)
	}
}

func TestPayloadKeepsFilledOverrides(t *testing.T) {
	d := &AdjustmentDraft{
		EmployeeID:         5,
		Date:               "2026-09-01",
		StatusOverride:     models.StatusRemote,
		StartTimeOverride:  "10:00",
		EndTimeOverride:    "19:00",
		LunchStartOverride: "14:00",
	}

	payload := d.Payload()

	require.NotNil(t, payload.StatusOverride)
	assert.Equal(t, models.StatusRemote, *payload.StatusOverride)
	require.NotNil(t, payload.StartTimeOverride)
	assert.Equal(t, "10:00", *payload.StartTimeOverride)
	require.NotNil(t, payload.EndTimeOverride)
	assert.Equal(t, "19:00", *payload.EndTimeOverride)
	require.NotNil(t, payload.LunchStartOverride)
	assert.Equal(t, "14:00", *payload.LunchStartOverride)
}

func TestAdjustmentDraftFromCoercesNulls(t *testing.T) {
	d := AdjustmentDraftFrom(models.ScheduleAdjustment{
		ID:         9,
		EmployeeID: 2,
		Date:       "2026-08-30",
	})

	assert.True(t, d.IsEditing())
	assert.Equal(t, "", d.StatusOverride)
	assert.Equal(t, "", d.StartTimeOverride)
	assert.Equal(t, "", d.EndTimeOverride)
	assert.Equal(t, "", d.LunchStartOverride)
	assert.NotNil(t, d.Absences)
	assert.Len(t, d.Absences, 0)
}

func TestAdjustmentDraftFromCopiesAbsences(t *testing.T) {
	source := models.ScheduleAdjustment{
		ID:       9,
		Absences: []models.AbsenceInterval{{From: "12:00", To: "12:30"}},
	}

	d := AdjustmentDraftFrom(source)
	d.Absences[0].From = "13:00"

	// Черновик владеет своей копией списка
	assert.Equal(t, "12:00", source.Absences[0].From)
}

func TestNewAdjustmentDraftDefaults(t *testing.T) {
	employees := []models.Employee{{ID: 11, Fio: "Иванов И.И."}, {ID: 12, Fio: "Петров П.П."}}

	d := NewAdjustmentDraft(employees)

	assert.False(t, d.IsEditing())
	assert.Equal(t, 11, d.EmployeeID)
	assert.Empty(t, d.Absences)

	empty := NewAdjustmentDraft(nil)
	assert.Equal(t, 0, empty.EmployeeID)
}
